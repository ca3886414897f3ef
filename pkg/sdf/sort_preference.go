package sdf

type SortPreference string

const (
	SortPreferenceFastest  SortPreference = "fastest"
	SortPreferenceCheapest                = "cheapest"
	SortPreferenceBalanced                = "balanced"
)

// NormaliseSortPreference maps a raw preference string onto one of the
// known sort preferences. The upstream query parser emits free text hints
// so anything unrecognised becomes balanced rather than an error.
func NormaliseSortPreference(raw string) SortPreference {
	switch SortPreference(raw) {
	case SortPreferenceFastest:
		return SortPreferenceFastest
	case SortPreferenceCheapest:
		return SortPreferenceCheapest
	default:
		return SortPreferenceBalanced
	}
}
