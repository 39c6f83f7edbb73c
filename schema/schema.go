// Package schema has configs, models and shared constants for all parts of langmatch.
package schema

import "time"

// Speakers holds speaker counts for a language.
type Speakers struct {
	Total     int64 `json:"total"`     // Total speakers worldwide
	Native    int64 `json:"native"`    // Native speakers
	Secondary int64 `json:"secondary"` // Second-language speakers
}

// Resource is a single learning resource attached to a catalog entry.
type Resource struct {
	Name       string `json:"name"`
	Type       string `json:"type"`       // course, app, book, podcast, ...
	Difficulty int    `json:"difficulty"` // 1-5, intended learner level
}

// LanguageRecord is an immutable catalog entry. Records are loaded once at
// startup and never mutated by the scoring pipeline.
type LanguageRecord struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	NativeName    string     `json:"nativeName"`
	Difficulty    int        `json:"difficulty"` // 1-5 base difficulty
	Category      Category   `json:"category"`
	Speakers      Speakers   `json:"speakers"`
	Family        string     `json:"family"` // language family, e.g. "indo-european"
	CulturalTags  []string   `json:"culturalTags"`
	Regions       []string   `json:"regions"`
	WritingSystem []string   `json:"writingSystem"`
	Resources     []Resource `json:"resources,omitempty"`
}

// UserPreference is the canonical preference structure derived from one survey
// submission. It is immutable once built by the normalizer.
type UserPreference struct {
	DifficultyPreference int                   `json:"difficultyPreference"` // 1-5
	CulturalInterests    []string              `json:"culturalInterests"`    // may be empty (neutral)
	PracticalFocus       int                   `json:"practicalFocus"`       // 1-5
	TimeCommitment       TimeCommitment        `json:"timeCommitment"`
	KnownLanguages       []string              `json:"knownLanguages"` // language ids, may be empty
	DimensionWeights     map[Dimension]float64 `json:"dimensionWeights"`
}

// DimensionScore is one dimension's contribution for a single
// (LanguageRecord, UserPreference) pair.
type DimensionScore struct {
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"` // [0,1]
	Rationale string    `json:"rationale"`
}

// Reason is a human-readable justification attached to a recommendation.
type Reason struct {
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`  // the originating dimension score
	Weight      float64 `json:"weight"` // the dimension's aggregation weight
}

// StudySchedule is the weekly plan attached to a learning path.
type StudySchedule struct {
	HoursPerWeek  int `json:"hoursPerWeek"`
	StudyDays     int `json:"studyDays"`
	SessionLength int `json:"sessionLength"` // minutes
}

// PathPhase is one stage of a learning path.
type PathPhase struct {
	Name       string   `json:"name"`
	Duration   string   `json:"duration"`
	Goals      []string `json:"goals"`
	Milestones []string `json:"milestones"`
}

// LearningPath is a template-filled study plan keyed off time commitment.
type LearningPath struct {
	Phases   []PathPhase   `json:"phases"`
	Schedule StudySchedule `json:"schedule"`
}

// Recommendation is one ranked output record produced by the orchestrator.
type Recommendation struct {
	Language        LanguageRecord        `json:"language"`
	MatchScore      float64               `json:"matchScore"` // 0-100, two decimals
	Rank            int                   `json:"rank"`       // 1-based
	DimensionScores map[Dimension]float64 `json:"dimensionScores"`
	Reasons         []Reason              `json:"reasons"` // sorted by score desc
	Pros            []string              `json:"pros"`    // capped at 4
	Cons            []string              `json:"cons"`    // capped at 3
	Confidence      ConfidenceLevel       `json:"confidence"`
	LearningPath    LearningPath          `json:"learningPath"`
}

// RunRecord is one persisted recommendation run in the history store.
type RunRecord struct {
	RunID       string    `json:"runId"`
	CreatedAt   time.Time `json:"createdAt"`
	Preference  string    `json:"preference"` // JSON-encoded UserPreference
	ResultCount int       `json:"resultCount"`
	TopLanguage string    `json:"topLanguage"`
	TopScore    float64   `json:"topScore"`
}

// StoreStatus holds health information about a configured store backend.
type StoreStatus struct {
	Backend   DatabaseBackend `json:"backend"`
	Location  string          `json:"location"`
	Available bool            `json:"available"`
	RunCount  int64           `json:"runCount"`
}
