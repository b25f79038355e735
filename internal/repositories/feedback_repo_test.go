package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"factcheck/internal/infra"
	"factcheck/internal/models/db_models"
	"factcheck/pkg/utils"
)

func newSQLiteStore(t *testing.T) *infra.Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := infra.InitPostgresql(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { infra.ClosePostgresql(db) })
	return &infra.Store{DB: db}
}

func newRestStore(t *testing.T, handler http.HandlerFunc) *infra.Store {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := infra.NewPostgrestClient(srv.URL, "test-key")
	require.NoError(t, err)
	return &infra.Store{Rest: client}
}

func TestFeedbackRepository_CreateAndList(t *testing.T) {
	repo := NewFeedbackRepository(newSQLiteStore(t))
	ctx := context.Background()
	userID := int64(42)

	first := &db_models.Feedback{FeedbackText: "Great summary", UserVerdict: "helpful", UserID: &userID, FeedbackDate: time.Now().UTC()}
	second := &db_models.Feedback{FeedbackText: "Great summary", UserVerdict: "helpful", UserID: &userID, FeedbackDate: time.Now().UTC()}

	require.NoError(t, repo.CreateFeedback(ctx, first))
	require.NoError(t, repo.CreateFeedback(ctx, second))

	assert.NotZero(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	rows, err := repo.ListFeedback(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, second.ID, rows[0].ID)
	assert.Nil(t, rows[0].ResultID)

	rows, err = repo.ListFeedback(ctx, 2, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
}

func TestFeedbackRepository_CreatedAtSetByStore(t *testing.T) {
	repo := NewFeedbackRepository(newSQLiteStore(t))
	ctx := context.Background()

	stale := time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)
	feedback := &db_models.Feedback{FeedbackText: "x", UserVerdict: "agree", FeedbackDate: time.Now().UTC(), CreatedAt: stale}
	require.NoError(t, repo.CreateFeedback(ctx, feedback))

	rows, err := repo.ListFeedback(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].CreatedAt.After(stale), rows[0].CreatedAt)
}

func TestRestFeedbackRepository_Create(t *testing.T) {
	var received map[string]interface{}
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/rest/v1/feedback"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("apikey"))
		assert.Contains(t, r.Header.Get("Prefer"), "return=representation")

		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[{"id":7,"feedback_text":"Great summary","user_verdict":"helpful","user_id":42,"result_id":null,` +
			`"feedback_date":"2026-10-15T10:00:00.123456+00:00","created_at":"2026-10-15T10:00:00.2+00:00"}]`))
	})
	repo := NewFeedbackRepository(store)

	userID := int64(42)
	feedback := &db_models.Feedback{
		FeedbackText: "Great summary",
		UserVerdict:  "helpful",
		UserID:       &userID,
		FeedbackDate: time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.CreateFeedback(context.Background(), feedback))

	assert.Equal(t, int64(7), feedback.ID)
	assert.Equal(t, "helpful", feedback.UserVerdict)
	assert.False(t, feedback.CreatedAt.IsZero())

	assert.Equal(t, "Great summary", received["feedback_text"])
	assert.Equal(t, "helpful", received["user_verdict"])
	assert.Equal(t, float64(42), received["user_id"])
	assert.Nil(t, received["result_id"])
	assert.Contains(t, received, "feedback_date")
	assert.NotContains(t, received, "id")
	assert.NotContains(t, received, "created_at")
}

func TestRestFeedbackRepository_EmptyInsert(t *testing.T) {
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`[]`))
	})
	repo := NewFeedbackRepository(store)

	err := repo.CreateFeedback(context.Background(), &db_models.Feedback{FeedbackText: "x", UserVerdict: "agree"})
	assert.ErrorIs(t, err, utils.ErrEmptyInsert)
}

func TestRestFeedbackRepository_StoreError(t *testing.T) {
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":"42501","message":"new row violates row-level security policy"}`))
	})
	repo := NewFeedbackRepository(store)

	err := repo.CreateFeedback(context.Background(), &db_models.Feedback{FeedbackText: "x", UserVerdict: "agree"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrEmptyInsert)
}

func TestRestFeedbackRepository_List(t *testing.T) {
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/feedback"), r.URL.Path)
		query := r.URL.Query()
		assert.Equal(t, "created_at.desc.nullslast,id.desc.nullslast", query.Get("order"))
		assert.Equal(t, "10", query.Get("offset"))
		assert.Equal(t, "10", query.Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"id":2,"feedback_text":"b","user_verdict":"agree"},{"id":1,"feedback_text":"a","user_verdict":"agree"}]`))
	})
	repo := NewFeedbackRepository(store)

	rows, err := repo.ListFeedback(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].ID)
}

func TestAnalysisRequestRepository_Create(t *testing.T) {
	repo := NewAnalysisRequestRepository(newSQLiteStore(t))

	req := &db_models.AnalysisRequest{ContentType: "URL", Content: "https://example.com/story", SubmissionDate: time.Now().UTC()}
	require.NoError(t, repo.CreateAnalysisRequest(context.Background(), req))
	assert.NotZero(t, req.ID)
}

func TestAnalysisRequestRepository_StoreAndGet(t *testing.T) {
	repo := NewAnalysisRequestRepository(newSQLiteStore(t))
	ctx := context.Background()
	now := time.Now().UTC()

	req := &db_models.AnalysisRequest{ContentType: "TEXT", Content: "Some claim", SubmissionDate: now}
	res := &db_models.AnalysisResult{CredibilityScore: 0.25, FinalVerdict: "FAKE", AnalysisDate: now}
	require.NoError(t, repo.StoreAnalysis(ctx, req, res))

	assert.NotZero(t, req.ID)
	assert.NotZero(t, res.ID)
	assert.Equal(t, req.ID, res.RequestID)

	gotReq, gotRes, err := repo.GetAnalysis(ctx, req.ID)
	require.NoError(t, err)
	assert.Equal(t, "Some claim", gotReq.Content)
	assert.Equal(t, res.ID, gotRes.ID)
	assert.Equal(t, "FAKE", gotRes.FinalVerdict)
	assert.InDelta(t, 0.25, gotRes.CredibilityScore, 1e-9)

	_, _, err = repo.GetAnalysis(ctx, req.ID+100)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestAnalysisRequestRepository_GetWithoutResult(t *testing.T) {
	repo := NewAnalysisRequestRepository(newSQLiteStore(t))
	ctx := context.Background()

	req := &db_models.AnalysisRequest{ContentType: "URL", Content: "https://example.com", SubmissionDate: time.Now().UTC()}
	require.NoError(t, repo.CreateAnalysisRequest(ctx, req))

	_, _, err := repo.GetAnalysis(ctx, req.ID)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}

func TestRestAnalysisRequestRepository_Store(t *testing.T) {
	var resultBody map[string]interface{}
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		switch {
		case strings.HasSuffix(r.URL.Path, "/analysis_requests"):
			_, _ = w.Write([]byte(`[{"id":11,"content_type":"TEXT","content":"claim","user_id":null,"submission_date":"2026-10-15T10:00:00+00:00"}]`))
		case strings.HasSuffix(r.URL.Path, "/analysis_results"):
			body, _ := io.ReadAll(r.Body)
			assert.NoError(t, json.Unmarshal(body, &resultBody))
			_, _ = w.Write([]byte(`[{"id":21,"request_id":11,"credibility_score":0.9,"final_verdict":"REAL","analysis_date":"2026-10-15T10:00:00+00:00"}]`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	})
	repo := NewAnalysisRequestRepository(store)

	req := &db_models.AnalysisRequest{ContentType: "TEXT", Content: "claim"}
	res := &db_models.AnalysisResult{CredibilityScore: 0.9, FinalVerdict: "REAL"}
	require.NoError(t, repo.StoreAnalysis(context.Background(), req, res))

	assert.Equal(t, int64(11), req.ID)
	assert.Equal(t, int64(21), res.ID)
	assert.Equal(t, float64(11), resultBody["request_id"])
	assert.NotContains(t, resultBody, "id")
}

func TestRestAnalysisRequestRepository_EmptyResultInsert(t *testing.T) {
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if strings.HasSuffix(r.URL.Path, "/analysis_requests") {
			_, _ = w.Write([]byte(`[{"id":11,"content_type":"TEXT","content":"claim"}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	repo := NewAnalysisRequestRepository(store)

	err := repo.StoreAnalysis(context.Background(),
		&db_models.AnalysisRequest{ContentType: "TEXT", Content: "claim"},
		&db_models.AnalysisResult{CredibilityScore: 0.5, FinalVerdict: "UNSURE"})
	assert.ErrorIs(t, err, utils.ErrEmptyResultInsert)
}

func TestRestAnalysisRequestRepository_Get(t *testing.T) {
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		query := r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/analysis_requests"):
			assert.Equal(t, "eq.11", query.Get("id"))
			_, _ = w.Write([]byte(`[{"id":11,"content_type":"TEXT","content":"claim"}]`))
		case strings.HasSuffix(r.URL.Path, "/analysis_results"):
			assert.Equal(t, "eq.11", query.Get("request_id"))
			assert.Equal(t, "1", query.Get("limit"))
			_, _ = w.Write([]byte(`[{"id":21,"request_id":11,"credibility_score":0.9,"final_verdict":"REAL"}]`))
		}
	})
	repo := NewAnalysisRequestRepository(store)

	req, res, err := repo.GetAnalysis(context.Background(), 11)
	require.NoError(t, err)
	assert.Equal(t, "claim", req.Content)
	assert.Equal(t, int64(21), res.ID)
}

func TestRestAnalysisRequestRepository_GetMissingResult(t *testing.T) {
	store := newRestStore(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if strings.HasSuffix(r.URL.Path, "/analysis_requests") {
			_, _ = w.Write([]byte(`[{"id":11,"content_type":"TEXT","content":"claim"}]`))
			return
		}
		_, _ = w.Write([]byte(`[]`))
	})
	repo := NewAnalysisRequestRepository(store)

	_, _, err := repo.GetAnalysis(context.Background(), 11)
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
