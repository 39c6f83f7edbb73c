package contract

import (
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/langworld/langmatch/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit  = 10
	MaxResultLimit      = 100
	DefaultPrecision    = 2
	DefaultHistoryLimit = 20
	DefaultDraftName    = "default"
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// WeightsRawInput holds custom dimension weights from the YAML config file.
// Use float64 pointers so absent fields keep their defaults.
type WeightsRawInput struct {
	Difficulty *float64 `mapstructure:"difficulty"`
	Cultural   *float64 `mapstructure:"cultural"`
	Practical  *float64 `mapstructure:"practical"`
	Time       *float64 `mapstructure:"time"`
	Experience *float64 `mapstructure:"experience"`
}

// Config holds the runtime configuration for a command invocation.
// This struct remains the "final, validated" config.
type Config struct {
	CatalogPath string // empty means the embedded catalog
	SurveyPath  string
	DraftName   string
	FromDraft   bool
	NoRecord    bool

	ResultLimit int
	Workers     int
	Precision   int
	Detail      bool
	Explain     bool
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	Keyword       string
	Category      schema.Category
	MaxDifficulty int
	MinSpeakers   int64
	PopularOnly   bool

	HistoryLimit int

	StoreBackend   schema.DatabaseBackend
	StoreDBConnect string // Please use env var as this is plaintext

	// AnswerOverrides are parsed question=option pairs from the command line,
	// applied on top of the survey file or draft.
	AnswerOverrides map[string]string

	// CustomWeights holds only the weights the user overrode.
	CustomWeights map[schema.Dimension]float64

	// ComputedWeights is the final weight table, defaults + custom overrides.
	ComputedWeights map[schema.Dimension]float64

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	Catalog        string `mapstructure:"catalog"`
	Limit          int    `mapstructure:"limit"`
	Workers        int    `mapstructure:"workers"`
	Precision      int    `mapstructure:"precision"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Detail         bool   `mapstructure:"detail"`
	Width          int    `mapstructure:"width"`
	Color          string `mapstructure:"color"`
	StoreBackend   string `mapstructure:"store-backend"`
	StoreDBConnect string `mapstructure:"store-db-connect"`

	// --- Fields from recommendCmd.Flags() ---
	Survey    string   `mapstructure:"survey"`
	Answers   []string `mapstructure:"answer"`
	Draft     string   `mapstructure:"draft"`
	FromDraft bool     `mapstructure:"from-draft"`
	NoRecord  bool     `mapstructure:"no-record"`
	Explain   bool     `mapstructure:"explain"`

	// --- Fields from languagesCmd.Flags() ---
	Keyword       string `mapstructure:"keyword"`
	Category      string `mapstructure:"category"`
	MaxDifficulty int    `mapstructure:"max-difficulty"`
	MinSpeakers   int64  `mapstructure:"min-speakers"`
	Popular       bool   `mapstructure:"popular"`

	// --- Fields from historyCmd.Flags() ---
	HistoryLimit int `mapstructure:"history-limit"`

	// --- Custom weights from config file ---
	Weights WeightsRawInput `mapstructure:"weights"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.AnswerOverrides != nil {
		clone.AnswerOverrides = make(map[string]string, len(c.AnswerOverrides))
		maps.Copy(clone.AnswerOverrides, c.AnswerOverrides)
	}
	if c.CustomWeights != nil {
		clone.CustomWeights = make(map[schema.Dimension]float64, len(c.CustomWeights))
		maps.Copy(clone.CustomWeights, c.CustomWeights)
	}
	if c.ComputedWeights != nil {
		clone.ComputedWeights = make(map[schema.Dimension]float64, len(c.ComputedWeights))
		maps.Copy(clone.ComputedWeights, c.ComputedWeights)
	}
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateCatalogFilters(cfg, input); err != nil {
		return err
	}
	if err := processAnswerOverrides(cfg, input); err != nil {
		return err
	}
	if err := processCustomWeights(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection
// strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("store-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all shared fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.CatalogPath = strings.TrimSpace(input.Catalog)
	cfg.SurveyPath = strings.TrimSpace(input.Survey)
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Explain = input.Explain
	cfg.FromDraft = input.FromDraft
	cfg.NoRecord = input.NoRecord
	cfg.Width = input.Width

	cfg.DraftName = strings.TrimSpace(input.Draft)
	if cfg.DraftName == "" {
		cfg.DraftName = DefaultDraftName
	}

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 0 || input.Precision > 2 {
		return fmt.Errorf("precision must be between 0 and 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 4. History Limit Validation ---
	if input.HistoryLimit < 0 {
		return fmt.Errorf("history-limit cannot be negative (received %d)", input.HistoryLimit)
	}
	cfg.HistoryLimit = input.HistoryLimit
	if cfg.HistoryLimit == 0 {
		cfg.HistoryLimit = DefaultHistoryLimit
	}

	// --- 5. Backend Validation ---
	cfg.StoreBackend = schema.DatabaseBackend(strings.ToLower(input.StoreBackend))
	if _, ok := schema.ValidDatabaseBackends[cfg.StoreBackend]; !ok {
		return fmt.Errorf("invalid store backend '%s'. must be sqlite, mysql, postgresql, none", input.StoreBackend)
	}
	cfg.StoreDBConnect = input.StoreDBConnect
	if err := ValidateDatabaseConnectionString(cfg.StoreBackend, cfg.StoreDBConnect); err != nil {
		return err
	}

	return nil
}

// validateCatalogFilters processes the language browsing filters.
func validateCatalogFilters(cfg *Config, input *ConfigRawInput) error {
	cfg.Keyword = strings.TrimSpace(input.Keyword)
	cfg.PopularOnly = input.Popular

	cfg.Category = schema.Category(strings.ToLower(strings.TrimSpace(input.Category)))
	if cfg.Category != "" {
		if _, ok := schema.ValidCategories[cfg.Category]; !ok {
			return fmt.Errorf("invalid category '%s'. must be popular, cultural, business, emerging, niche", input.Category)
		}
	}

	if input.MaxDifficulty < 0 || input.MaxDifficulty > 5 {
		return fmt.Errorf("max-difficulty must be between 0 and 5 (received %d)", input.MaxDifficulty)
	}
	cfg.MaxDifficulty = input.MaxDifficulty

	if input.MinSpeakers < 0 {
		return fmt.Errorf("min-speakers cannot be negative (received %d)", input.MinSpeakers)
	}
	cfg.MinSpeakers = input.MinSpeakers

	return nil
}

// processAnswerOverrides parses question=option pairs from the command line.
func processAnswerOverrides(cfg *Config, input *ConfigRawInput) error {
	if len(input.Answers) == 0 {
		cfg.AnswerOverrides = nil
		return nil
	}

	overrides := make(map[string]string, len(input.Answers))
	for _, pair := range input.Answers {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		question, answer, found := strings.Cut(pair, "=")
		question = strings.TrimSpace(question)
		if !found || question == "" {
			return fmt.Errorf("invalid answer override '%s', expected 'question=option'", pair)
		}
		overrides[question] = strings.TrimSpace(answer)
	}
	cfg.AnswerOverrides = overrides
	return nil
}

// ProcessWeightsRawInput converts WeightsRawInput into a weights map holding
// only the dimensions the user provided.
func ProcessWeightsRawInput(weights WeightsRawInput) (map[schema.Dimension]float64, error) {
	raw := map[schema.Dimension]*float64{
		schema.DifficultyDimension: weights.Difficulty,
		schema.CulturalDimension:   weights.Cultural,
		schema.PracticalDimension:  weights.Practical,
		schema.TimeDimension:       weights.Time,
		schema.ExperienceDimension: weights.Experience,
	}

	result := make(map[schema.Dimension]float64)
	for _, d := range schema.AllDimensions {
		v := raw[d]
		if v == nil {
			continue
		}
		if *v < 0 {
			return nil, fmt.Errorf("weight for dimension %s cannot be negative (received %v)", d, *v)
		}
		result[d] = *v
	}
	return result, nil
}

// processCustomWeights converts the raw input into cfg.CustomWeights and
// computes the final cfg.ComputedWeights from defaults + custom overrides.
// The computed table must keep a positive total so aggregation stays defined.
func processCustomWeights(cfg *Config, input *ConfigRawInput) error {
	weights, err := ProcessWeightsRawInput(input.Weights)
	if err != nil {
		return err
	}
	cfg.CustomWeights = weights

	computed := make(map[schema.Dimension]float64, len(schema.DefaultDimensionWeights))
	maps.Copy(computed, schema.DefaultDimensionWeights)
	maps.Copy(computed, weights)
	cfg.ComputedWeights = computed

	var total float64
	for _, w := range computed {
		total += w
	}
	if total <= 0 {
		return fmt.Errorf("dimension weights must have a positive total, got %.3f", total)
	}

	return nil
}
