package response_models

import "factcheck/internal/models/db_models"

type StoredAnalysis struct {
	RequestID int64 `json:"request_id"`
	ResultID  int64 `json:"result_id"`
}

type AnalysisRecord struct {
	Request db_models.AnalysisRequest `json:"request"`
	Result  db_models.AnalysisResult  `json:"result"`
}
