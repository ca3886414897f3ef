package travelclock

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", "2024-05-10T10:00:00Z", false},
		{"valid with offset", "2024-05-10T10:00:00+05:30", false},
		{"date only", "2024-05-10", true},
		{"garbage", "ten o'clock", true},
		{"empty", "", true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			_, err := Parse(testCase.raw)

			if testCase.wantErr && err == nil {
				t.Fatalf("Parse(%q) expected an error", testCase.raw)
			}
			if !testCase.wantErr && err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", testCase.raw, err)
			}
			if testCase.wantErr && !errors.Is(err, ErrMalformedTime) {
				t.Fatalf("Parse(%q) error should wrap ErrMalformedTime, got %v", testCase.raw, err)
			}
		})
	}
}

func TestDurationMinutes(t *testing.T) {
	base := time.Date(2024, 5, 10, 10, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		later   time.Time
		earlier time.Time
		want    int
	}{
		{"two hours", base.Add(2 * time.Hour), base, 120},
		{"equal instants", base, base, 0},
		{"truncates seconds toward zero", base.Add(90*time.Minute + 59*time.Second), base, 90},
		{"sub minute gap", base.Add(45 * time.Second), base, 0},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			got := DurationMinutes(testCase.later, testCase.earlier)

			if got != testCase.want {
				t.Errorf("DurationMinutes() = %d, want %d", got, testCase.want)
			}
		})
	}
}
