package db_models

import "time"

// Feedback is a user's verdict on an analysis result. Rows are append-only;
// created_at is always set by the database.
type Feedback struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	FeedbackText string    `gorm:"type:text;not null" json:"feedback_text"`
	UserVerdict  string    `gorm:"type:text;not null" json:"user_verdict"`
	UserID       *int64    `json:"user_id"`
	ResultID     *int64    `json:"result_id"`
	FeedbackDate time.Time `json:"feedback_date"`
	CreatedAt    time.Time `gorm:"<-:false;autoCreateTime:false;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}
