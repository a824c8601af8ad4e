package analytics

// Band classifies an acute:chronic ratio.
type Band string

const (
	BandUnderLoaded Band = "under-loaded"
	BandOptimal     Band = "optimal"
	BandCaution     Band = "caution"
	BandOverload    Band = "overload"
)

// Classify maps a ratio to its band. Both 1.3 and 1.5 are upper-inclusive.
func Classify(ratio float64) Band {
	switch {
	case ratio < 0.8:
		return BandUnderLoaded
	case ratio <= 1.3:
		return BandOptimal
	case ratio <= 1.5:
		return BandCaution
	default:
		return BandOverload
	}
}
