package db_models

import "time"

type AnalysisRequest struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ContentType    string    `gorm:"type:text;not null" json:"content_type"`
	Content        string    `gorm:"type:text;not null" json:"content"`
	UserID         *string   `json:"user_id"`
	SubmissionDate time.Time `json:"submission_date"`
}

func (AnalysisRequest) TableName() string {
	return "analysis_requests"
}
