package models

// StudyStats summarizes the learner's collection at a point in time.
type StudyStats struct {
	TotalWords    int `json:"total_words"`
	NewWords      int `json:"new_words"`
	LearningWords int `json:"learning_words"`
	MasteredWords int `json:"mastered_words"`
	OverdueWords  int `json:"overdue_words"`
	TodayReviews  int `json:"today_reviews"`
	CurrentStreak int `json:"current_streak"`
}
