package request_models

type CreateAnalysisRequest struct {
	ContentType string  `json:"content_type" binding:"required,oneof=TEXT URL IMAGE"`
	Content     string  `json:"content" binding:"required,notblank"`
	UserID      *string `json:"user_id"`
}

type CreateAnalysisResult struct {
	CredibilityScore *float64 `json:"credibility_score" binding:"required"`
	FinalVerdict     string   `json:"final_verdict" binding:"required,oneof=REAL FAKE UNSURE"`
}

// StoreAnalysisRequest carries a request and the result computed for it;
// both are stored together.
type StoreAnalysisRequest struct {
	Request *CreateAnalysisRequest `json:"request" binding:"required"`
	Result  *CreateAnalysisResult  `json:"result" binding:"required"`
}
