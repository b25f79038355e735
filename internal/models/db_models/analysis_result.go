package db_models

import "time"

// AnalysisResult is the verdict produced for one AnalysisRequest. Feedback
// rows point at it through result_id.
type AnalysisResult struct {
	ID               int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	RequestID        int64     `gorm:"not null;index" json:"request_id"`
	CredibilityScore float64   `gorm:"not null" json:"credibility_score"`
	FinalVerdict     string    `gorm:"type:text;not null" json:"final_verdict"`
	AnalysisDate     time.Time `json:"analysis_date"`
}

func (AnalysisResult) TableName() string {
	return "analysis_results"
}
