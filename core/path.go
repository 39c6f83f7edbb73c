package core

import "github.com/langworld/langmatch/schema"

// schedules maps each time commitment to its weekly study plan.
var schedules = map[schema.TimeCommitment]schema.StudySchedule{
	schema.CasualCommitment:    {HoursPerWeek: 2, StudyDays: 2, SessionLength: 60},
	schema.RegularCommitment:   {HoursPerWeek: 4, StudyDays: 3, SessionLength: 80},
	schema.IntensiveCommitment: {HoursPerWeek: 8, StudyDays: 5, SessionLength: 90},
}

// pathPhases are the fixed stages of every learning path. Phase content is
// template material for the UI; only the schedule varies per user.
var pathPhases = []schema.PathPhase{
	{
		Name:       "Foundations",
		Duration:   "1-3 months",
		Goals:      []string{"Master basic pronunciation", "Learn everyday greetings", "Understand core grammar"},
		Milestones: []string{"Introduce yourself in simple sentences", "Recognize 100 common words"},
	},
	{
		Name:       "Early fluency",
		Duration:   "3-6 months",
		Goals:      []string{"Grow active vocabulary", "Hold simple conversations", "Read short texts"},
		Milestones: []string{"Vocabulary of 500-1000 words", "Describe your daily routine"},
	},
	{
		Name:       "Intermediate depth",
		Duration:   "6-12 months",
		Goals:      []string{"Converse comfortably on familiar topics", "Follow native media", "Explore the culture firsthand"},
		Milestones: []string{"Discuss complex topics", "Understand cultural context"},
	},
}

// buildLearningPath fills the path template for the user's time commitment.
// Unknown commitments fall back to the regular schedule.
func buildLearningPath(pref *schema.UserPreference) schema.LearningPath {
	schedule, ok := schedules[pref.TimeCommitment]
	if !ok {
		schedule = schedules[schema.RegularCommitment]
	}

	phases := make([]schema.PathPhase, len(pathPhases))
	copy(phases, pathPhases)

	return schema.LearningPath{
		Phases:   phases,
		Schedule: schedule,
	}
}
