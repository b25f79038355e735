package request_models

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrVerdictShape is returned when UserVerdict is neither a string nor an
// object carrying one.
var ErrVerdictShape = errors.New("UserVerdict must be a string or an object with a UserVerdict string")

// verdictKeys are the keys an object-shaped verdict may carry its value under.
var verdictKeys = []string{"UserVerdict", "user_verdict"}

// Verdict is a user verdict that arrives either flat ("approved") or wrapped
// in an object ({"UserVerdict": "approved", ...}). Decoding always yields the
// flat value.
type Verdict string

// UnmarshalJSON accepts a JSON string or an object with a string under
// UserVerdict or user_verdict.
func (v *Verdict) UnmarshalJSON(data []byte) error {
	var flat string
	if err := json.Unmarshal(data, &flat); err == nil {
		*v = Verdict(flat)
		return nil
	}

	var wrapped map[string]json.RawMessage
	if err := json.Unmarshal(data, &wrapped); err != nil || wrapped == nil {
		return ErrVerdictShape
	}
	for _, key := range verdictKeys {
		raw, ok := wrapped[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, &flat); err != nil {
			return ErrVerdictShape
		}
		*v = Verdict(flat)
		return nil
	}
	return ErrVerdictShape
}

// SubmitFeedbackRequest accepts both the PascalCase names the web client
// sends and the snake_case column names.
type SubmitFeedbackRequest struct {
	FeedbackText string  `json:"FeedbackText" binding:"required,notblank"`
	UserVerdict  Verdict `json:"UserVerdict" binding:"required,verdict"`
	UserID       *int64  `json:"UserID"`
	ResultID     *int64  `json:"ResultID"`
}

// UnmarshalJSON resolves each field from its PascalCase or snake_case key.
// A null value counts as absent.
func (r *SubmitFeedbackRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		FeedbackText      json.RawMessage `json:"FeedbackText"`
		FeedbackTextSnake json.RawMessage `json:"feedback_text"`
		UserVerdict       json.RawMessage `json:"UserVerdict"`
		UserVerdictSnake  json.RawMessage `json:"user_verdict"`
		UserID            json.RawMessage `json:"UserID"`
		UserIDSnake       json.RawMessage `json:"user_id"`
		ResultID          json.RawMessage `json:"ResultID"`
		ResultIDSnake     json.RawMessage `json:"result_id"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out SubmitFeedbackRequest

	if text := firstPresent(raw.FeedbackText, raw.FeedbackTextSnake); text != nil {
		if err := json.Unmarshal(text, &out.FeedbackText); err != nil {
			return errors.New("FeedbackText must be a string")
		}
	}

	if verdict := firstPresent(raw.UserVerdict, raw.UserVerdictSnake); verdict != nil {
		if err := json.Unmarshal(verdict, &out.UserVerdict); err != nil {
			return err
		}
	}

	var err error
	if out.UserID, err = decodeOptionalID("UserID", firstPresent(raw.UserID, raw.UserIDSnake)); err != nil {
		return err
	}
	if out.ResultID, err = decodeOptionalID("ResultID", firstPresent(raw.ResultID, raw.ResultIDSnake)); err != nil {
		return err
	}

	*r = out
	return nil
}

func firstPresent(candidates ...json.RawMessage) json.RawMessage {
	for _, c := range candidates {
		if len(c) > 0 && string(c) != "null" {
			return c
		}
	}
	return nil
}

// decodeOptionalID accepts null, an integral JSON number or a numeric string.
func decodeOptionalID(field string, raw json.RawMessage) (*int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}

	text := string(raw)
	var quoted string
	if err := json.Unmarshal(raw, &quoted); err == nil {
		text = quoted
	}
	text = strings.TrimSpace(text)

	if n, err := strconv.ParseInt(text, 10, 64); err == nil {
		return &n, nil
	}
	if f, err := strconv.ParseFloat(text, 64); err == nil && f == math.Trunc(f) &&
		f >= math.MinInt64 && f < math.MaxInt64 {
		n := int64(f)
		return &n, nil
	}
	return nil, fmt.Errorf("%s must be an integer", field)
}
