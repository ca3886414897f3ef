package routeplanner

import (
	"reflect"
	"testing"

	"github.com/skyrail/skyrail/pkg/sdf"
)

func routeWith(id string, fare float64, timeMinutes int) sdf.Route {
	return sdf.Route{
		Type: sdf.RouteTypeDirectTrain,
		Legs: []sdf.ScheduleRecord{
			{PrimaryIdentifier: id, Mode: sdf.TransportModeTrain},
		},
		TotalFare:        fare,
		TotalTimeMinutes: timeMinutes,
	}
}

func rankedIdentifiers(routes []sdf.Route) []string {
	identifiers := []string{}
	for _, route := range routes {
		identifiers = append(identifiers, route.Legs[0].PrimaryIdentifier)
	}

	return identifiers
}

func TestRankFastest(t *testing.T) {
	routes := []sdf.Route{
		routeWith("a", 100, 120),
		routeWith("b", 100, 90),
		routeWith("c", 100, 300),
	}

	ranked := Rank(routes, sdf.SortPreferenceFastest)

	want := []string{"b", "a", "c"}
	if got := rankedIdentifiers(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank(fastest) order = %v, want %v", got, want)
	}
}

func TestRankCheapest(t *testing.T) {
	routes := []sdf.Route{
		routeWith("a", 500, 100),
		routeWith("b", 1200, 100),
		routeWith("c", 300, 100),
	}

	ranked := Rank(routes, sdf.SortPreferenceCheapest)

	want := []string{"c", "a", "b"}
	if got := rankedIdentifiers(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank(cheapest) order = %v, want %v", got, want)
	}
}

func TestRankBalanced(t *testing.T) {
	// Hand computed composite scores:
	//   a: 0.7*1000 + 0.3*100 = 730
	//   b: 0.7*500  + 0.3*600 = 530
	//   c: 0.7*900  + 0.3*50  = 645
	routes := []sdf.Route{
		routeWith("a", 1000, 100),
		routeWith("b", 500, 600),
		routeWith("c", 900, 50),
	}

	ranked := Rank(routes, sdf.SortPreferenceBalanced)

	want := []string{"b", "c", "a"}
	if got := rankedIdentifiers(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank(balanced) order = %v, want %v", got, want)
	}
}

func TestRankStableOnTies(t *testing.T) {
	routes := []sdf.Route{
		routeWith("first", 300, 60),
		routeWith("second", 300, 60),
		routeWith("third", 200, 60),
		routeWith("fourth", 300, 60),
	}

	ranked := Rank(routes, sdf.SortPreferenceCheapest)

	want := []string{"third", "first", "second", "fourth"}
	if got := rankedIdentifiers(ranked); !reflect.DeepEqual(got, want) {
		t.Errorf("Rank(cheapest) tie order = %v, want %v", got, want)
	}
}

func TestRankIdempotent(t *testing.T) {
	routes := []sdf.Route{
		routeWith("a", 300, 200),
		routeWith("b", 300, 200),
		routeWith("c", 100, 400),
	}

	first := Rank(routes, sdf.SortPreferenceBalanced)
	second := Rank(routes, sdf.SortPreferenceBalanced)

	if !reflect.DeepEqual(first, second) {
		t.Error("ranking the same routes twice must yield identical output")
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	routes := []sdf.Route{
		routeWith("a", 900, 10),
		routeWith("b", 100, 10),
	}
	original := []string{"a", "b"}

	Rank(routes, sdf.SortPreferenceCheapest)

	if got := rankedIdentifiers(routes); !reflect.DeepEqual(got, original) {
		t.Errorf("input order after Rank = %v, want untouched %v", got, original)
	}
}
