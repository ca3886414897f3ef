package routeplanner

import (
	"reflect"
	"testing"

	"github.com/skyrail/skyrail/pkg/sdf"
)

func testBundle() sdf.ScheduleBundle {
	return sdf.ScheduleBundle{
		DirectTrains: []sdf.ScheduleRecord{
			testTrain("2024-05-10T10:00:00Z"),
		},
		DirectFlights: []sdf.ScheduleRecord{
			testFlight("2024-05-10T12:00:00Z"),
		},
		HubTrains: []sdf.ScheduleRecord{
			testTrain("2024-05-10T10:00:00Z"),
		},
		HubFlights: []sdf.ScheduleRecord{
			testFlight("2024-05-10T11:30:00Z"),
			testFlight("2024-05-10T11:00:00Z"), // too tight, filtered out
		},
	}
}

func TestGenerateRoutes(t *testing.T) {
	result := GenerateRoutes(testBundle(), "cheapest")

	if result.SortPreference != sdf.SortPreferenceCheapest {
		t.Errorf("SortPreference = %s, want %s", result.SortPreference, sdf.SortPreferenceCheapest)
	}

	// One direct train, one direct flight and the single legal pairing
	if len(result.Routes) != 3 {
		t.Fatalf("GenerateRoutes() returned %d routes, want 3", len(result.Routes))
	}

	// Cheapest: train 400, flight 2500, multi-modal 2900
	wantTypes := []sdf.RouteType{sdf.RouteTypeDirectTrain, sdf.RouteTypeDirectFlight, sdf.RouteTypeMultiModal}
	for i, want := range wantTypes {
		if result.Routes[i].Type != want {
			t.Errorf("Routes[%d].Type = %s, want %s", i, result.Routes[i].Type, want)
		}
	}

	if result.BestLayoverRoute == nil {
		t.Fatal("expected a best layover route")
	}
	if result.BestLayoverRoute.LayoverMinutes != 90 {
		t.Errorf("best layover = %d, want 90", result.BestLayoverRoute.LayoverMinutes)
	}
	if result.BestLayoverRoute.Type != sdf.RouteTypeMultiModal {
		t.Error("best layover route can never be a direct route")
	}
}

func TestGenerateRoutesUnknownPreferenceFallsBackToBalanced(t *testing.T) {
	bundle := testBundle()

	fallback := GenerateRoutes(bundle, "whatever")
	balanced := GenerateRoutes(bundle, "balanced")

	if fallback.SortPreference != sdf.SortPreferenceBalanced {
		t.Errorf("SortPreference = %s, want the balanced label, never the caller's literal", fallback.SortPreference)
	}
	if !reflect.DeepEqual(fallback.Routes, balanced.Routes) {
		t.Error("an unknown preference must order exactly as balanced does")
	}
}

func TestGenerateRoutesEmptyBundle(t *testing.T) {
	result := GenerateRoutes(sdf.ScheduleBundle{}, "fastest")

	if result == nil {
		t.Fatal("an empty bundle is a normal result, not a failure")
	}
	if len(result.Routes) != 0 {
		t.Errorf("Routes = %d entries, want 0", len(result.Routes))
	}
	if result.BestLayoverRoute != nil {
		t.Error("BestLayoverRoute must be absent for an empty bundle")
	}
	if result.SortPreference != sdf.SortPreferenceFastest {
		t.Errorf("SortPreference = %s, want %s", result.SortPreference, sdf.SortPreferenceFastest)
	}
}

func TestGenerateRoutesDirectOnly(t *testing.T) {
	bundle := sdf.ScheduleBundle{
		DirectTrains: []sdf.ScheduleRecord{
			testTrain("2024-05-10T10:00:00Z"),
		},
	}

	result := GenerateRoutes(bundle, "fastest")

	if len(result.Routes) != 1 {
		t.Fatalf("GenerateRoutes() returned %d routes, want 1", len(result.Routes))
	}
	if result.BestLayoverRoute != nil {
		t.Error("direct routes never contribute a best layover")
	}
}
