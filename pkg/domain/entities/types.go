package entities

// ProductID represents a unique product identifier
type ProductID string

// WarehouseID represents a unique warehouse identifier
type WarehouseID string

// Quantity represents an integer quantity value for discrete stock units
type Quantity int64

// WeeksPerYear is the length of a full season curve.
const WeeksPerYear = 52

// DaysPerWeek converts weekly curve buckets into daily demand.
const DaysPerWeek = 7

const (
	// MinTier is the lowest warehouse capability tier.
	MinTier = 1
	// MaxTier is the highest warehouse capability tier.
	MaxTier = 5
)

// ClampTier forces an arbitrary tier input into the valid [MinTier, MaxTier]
// range. Out-of-range tiers are clamped, never rejected.
func ClampTier(tier int) int {
	if tier < MinTier {
		return MinTier
	}
	if tier > MaxTier {
		return MaxTier
	}
	return tier
}

// PerformanceLabel represents the coarse sales-performance classification
type PerformanceLabel int

const (
	LabelPoor PerformanceLabel = iota
	LabelAverage
	LabelGood
	LabelExcellent
)

// Rank returns the fixed sort scalar for a performance label. Ties within a
// label always compare equal on this scalar; ordering among equals is left
// to stable sorting.
func (l PerformanceLabel) Rank() int {
	switch l {
	case LabelPoor:
		return 20
	case LabelAverage:
		return 45
	case LabelGood:
		return 70
	case LabelExcellent:
		return 95
	default:
		return 0
	}
}

// String method for PerformanceLabel enum
func (l PerformanceLabel) String() string {
	switch l {
	case LabelPoor:
		return "Poor"
	case LabelAverage:
		return "Average"
	case LabelGood:
		return "Good"
	case LabelExcellent:
		return "Excellent"
	default:
		return "Unknown"
	}
}

// BandGrade represents the finer-grained band-relative evaluation used for
// list display
type BandGrade int

const (
	GradeWeak BandGrade = iota
	GradeBad
	GradeGood
	GradeVeryGood
	GradeSuper
)

// String method for BandGrade enum
func (g BandGrade) String() string {
	switch g {
	case GradeWeak:
		return "Weak"
	case GradeBad:
		return "Bad"
	case GradeGood:
		return "Good"
	case GradeVeryGood:
		return "Very good"
	case GradeSuper:
		return "Super"
	default:
		return "Unknown"
	}
}

// Tone represents the qualitative display tone attached to an evaluation
type Tone int

const (
	ToneDanger Tone = iota
	ToneWarning
	ToneNeutral
	TonePositive
	ToneSuccess
)

// String method for Tone enum
func (t Tone) String() string {
	switch t {
	case ToneDanger:
		return "danger"
	case ToneWarning:
		return "warning"
	case ToneNeutral:
		return "neutral"
	case TonePositive:
		return "positive"
	case ToneSuccess:
		return "success"
	default:
		return "unknown"
	}
}
