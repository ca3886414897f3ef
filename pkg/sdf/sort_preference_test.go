package sdf

import "testing"

func TestNormaliseSortPreference(t *testing.T) {
	testCases := []struct {
		raw  string
		want SortPreference
	}{
		{"fastest", SortPreferenceFastest},
		{"cheapest", SortPreferenceCheapest},
		{"balanced", SortPreferenceBalanced},
		{"whatever", SortPreferenceBalanced},
		{"Fastest", SortPreferenceBalanced},
		{"", SortPreferenceBalanced},
	}

	for _, testCase := range testCases {
		t.Run(testCase.raw, func(t *testing.T) {
			if got := NormaliseSortPreference(testCase.raw); got != testCase.want {
				t.Errorf("NormaliseSortPreference(%q) = %s, want %s", testCase.raw, got, testCase.want)
			}
		})
	}
}
