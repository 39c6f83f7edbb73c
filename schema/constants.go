package schema

// Custom string types for type safety.
type (
	// Dimension names one of the five scoring dimensions.
	Dimension string

	// Category is the catalog category of a language.
	Category string

	// TimeCommitment is the user's stated weekly study budget.
	TimeCommitment string

	// ConfidenceLevel grades how trustworthy a recommendation is.
	ConfidenceLevel string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for persistence.
	DatabaseBackend string
)

// Scoring dimensions.
const (
	DifficultyDimension Dimension = "difficulty"
	CulturalDimension   Dimension = "cultural"
	PracticalDimension  Dimension = "practical"
	TimeDimension       Dimension = "time"
	ExperienceDimension Dimension = "experience"
)

// AllDimensions lists every dimension in aggregation order.
var AllDimensions = []Dimension{
	DifficultyDimension,
	CulturalDimension,
	PracticalDimension,
	TimeDimension,
	ExperienceDimension,
}

// DefaultDimensionWeights is the single source of truth for aggregation
// weights when the caller supplies none.
var DefaultDimensionWeights = map[Dimension]float64{
	DifficultyDimension: 0.25,
	CulturalDimension:   0.25,
	PracticalDimension:  0.25,
	TimeDimension:       0.15,
	ExperienceDimension: 0.10,
}

// Catalog categories.
const (
	PopularCategory  Category = "popular"
	CulturalCategory Category = "cultural"
	BusinessCategory Category = "business"
	EmergingCategory Category = "emerging"
	NicheCategory    Category = "niche"
)

// ValidCategories is the closed set of catalog categories.
var ValidCategories = map[Category]struct{}{
	PopularCategory:  {},
	CulturalCategory: {},
	BusinessCategory: {},
	EmergingCategory: {},
	NicheCategory:    {},
}

// Time commitments.
const (
	CasualCommitment    TimeCommitment = "casual"
	RegularCommitment   TimeCommitment = "regular"
	IntensiveCommitment TimeCommitment = "intensive"
)

// TimeBudget maps a commitment to its numeric weekly budget on the same
// 1-5 scale as language difficulty.
var TimeBudget = map[TimeCommitment]int{
	CasualCommitment:    1,
	RegularCommitment:   3,
	IntensiveCommitment: 5,
}

// Confidence levels from worst to best.
const (
	VeryLowConfidence  ConfidenceLevel = "very_low"
	LowConfidence      ConfidenceLevel = "low"
	MediumConfidence   ConfidenceLevel = "medium"
	HighConfidence     ConfidenceLevel = "high"
	VeryHighConfidence ConfidenceLevel = "very_high"
)

// All output modes supported.
const (
	TextOut    OutputMode = "text" // default
	CSVOut     OutputMode = "csv"
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// ValidOutputModes is the closed set of output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut:    {},
	CSVOut:     {},
	JSONOut:    {},
	ParquetOut: {},
}

// All database backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite"
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// ValidDatabaseBackends is the closed set of database backends.
var ValidDatabaseBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// MaxRecommendations bounds the orchestrator's output length.
const MaxRecommendations = 10
