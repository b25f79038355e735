package infra

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the tables and row-level-security policies on a
// Postgres database. Safe to call multiple times.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

const schema = `
CREATE TABLE IF NOT EXISTS feedback (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    feedback_text TEXT NOT NULL,
    user_verdict TEXT NOT NULL,
    user_id BIGINT NULL,
    result_id BIGINT NULL,
    feedback_date TIMESTAMPTZ DEFAULT NOW(),
    created_at TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_feedback_created_at ON feedback(created_at DESC);

ALTER TABLE feedback ENABLE ROW LEVEL SECURITY;

DO $$
BEGIN
    IF NOT EXISTS (SELECT 1 FROM pg_policies WHERE tablename = 'feedback' AND policyname = 'feedback_anon_insert') THEN
        CREATE POLICY feedback_anon_insert ON feedback FOR INSERT TO anon WITH CHECK (true);
    END IF;
    IF NOT EXISTS (SELECT 1 FROM pg_policies WHERE tablename = 'feedback' AND policyname = 'feedback_anon_select') THEN
        CREATE POLICY feedback_anon_select ON feedback FOR SELECT TO anon USING (true);
    END IF;
END
$$;

CREATE TABLE IF NOT EXISTS analysis_requests (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    content_type TEXT NOT NULL CHECK (content_type IN ('TEXT', 'URL', 'IMAGE')),
    content TEXT NOT NULL,
    user_id TEXT NULL,
    submission_date TIMESTAMPTZ DEFAULT NOW()
);

ALTER TABLE analysis_requests ENABLE ROW LEVEL SECURITY;

DO $$
BEGIN
    IF NOT EXISTS (SELECT 1 FROM pg_policies WHERE tablename = 'analysis_requests' AND policyname = 'analysis_requests_anon_insert') THEN
        CREATE POLICY analysis_requests_anon_insert ON analysis_requests FOR INSERT TO anon WITH CHECK (true);
    END IF;
    IF NOT EXISTS (SELECT 1 FROM pg_policies WHERE tablename = 'analysis_requests' AND policyname = 'analysis_requests_anon_select') THEN
        CREATE POLICY analysis_requests_anon_select ON analysis_requests FOR SELECT TO anon USING (true);
    END IF;
END
$$;

CREATE TABLE IF NOT EXISTS analysis_results (
    id BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
    request_id BIGINT NOT NULL REFERENCES analysis_requests(id) ON DELETE CASCADE,
    credibility_score DOUBLE PRECISION NOT NULL,
    final_verdict TEXT NOT NULL CHECK (final_verdict IN ('REAL', 'FAKE', 'UNSURE')),
    analysis_date TIMESTAMPTZ DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_analysis_results_request_id ON analysis_results(request_id);

ALTER TABLE analysis_results ENABLE ROW LEVEL SECURITY;

DO $$
BEGIN
    IF NOT EXISTS (SELECT 1 FROM pg_policies WHERE tablename = 'analysis_results' AND policyname = 'analysis_results_anon_insert') THEN
        CREATE POLICY analysis_results_anon_insert ON analysis_results FOR INSERT TO anon WITH CHECK (true);
    END IF;
    IF NOT EXISTS (SELECT 1 FROM pg_policies WHERE tablename = 'analysis_results' AND policyname = 'analysis_results_anon_select') THEN
        CREATE POLICY analysis_results_anon_select ON analysis_results FOR SELECT TO anon USING (true);
    END IF;
END
$$;
`
