// internal/workers/content/create-post-record/handler_test.go
package createpostrecord

import (
	"context"
	"errors"
	"testing"
	"time"

	"carkeypro-workers/internal/common/logger"
	"carkeypro-workers/internal/gbp"
	"carkeypro-workers/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubIndexer struct {
	drafts []*models.PostDraft
	err    error
}

func (s *stubIndexer) IndexPostDraft(_ context.Context, draft *models.PostDraft) error {
	if s.err != nil {
		return s.err
	}
	s.drafts = append(s.drafts, draft)
	return nil
}

func createTestInput(t *testing.T) *Input {
	t.Helper()
	gen := gbp.NewWithClock(func() time.Time {
		return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	})
	bundle, err := gen.Generate(gbp.JobContext{
		ServiceType:    "automotive",
		JobDescription: "Car key replacement",
		Location:       "Barrie, ON, Canada",
	})
	require.NoError(t, err)

	return &Input{
		JobID:        "job-1042",
		FranchiseeID: "franchisee-007",
		ServiceType:  "automotive",
		Location:     "Barrie, ON, Canada",
		GBPPost:      bundle,
	}
}

func expectDuplicateCheck(mock sqlmock.Sqlmock, jobID string, exists bool) {
	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs(jobID).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(exists))
}

func expectDraftInsert(mock sqlmock.Sqlmock) *sqlmock.ExpectedExec {
	return mock.ExpectExec(`INSERT INTO post_drafts`).
		WithArgs(
			sqlmock.AnyArg(), // draft ID (UUID)
			"job-1042",
			"franchisee-007",
			"automotive",
			"Barrie, ON, Canada",
			sqlmock.AnyArg(), // variants JSON
			sqlmock.AnyArg(), // hashtags JSON
			sqlmock.AnyArg(), // campaign ID
			models.DraftStatusPendingReview,
			sqlmock.AnyArg(), // created_at
		)
}

func expectAuditInsert(mock sqlmock.Sqlmock) *sqlmock.ExpectedExec {
	return mock.ExpectExec(`INSERT INTO audit_log`).
		WithArgs(
			"post_draft_created",
			"post_draft",
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
			sqlmock.AnyArg(),
		)
}

func TestHandler_Execute_Success(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectDuplicateCheck(mock, "job-1042", false)
	expectDraftInsert(mock).WillReturnResult(sqlmock.NewResult(1, 1))
	expectAuditInsert(mock).WillReturnResult(sqlmock.NewResult(1, 1))

	indexer := &stubIndexer{}
	handler := NewHandler(LoadConfig(), db, indexer, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput(t))

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NotEmpty(t, output.PostDraftID)
	assert.Equal(t, models.DraftStatusPendingReview, output.DraftStatus)
	assert.True(t, output.Indexed)

	_, err = time.Parse(time.RFC3339, output.CreatedAt)
	assert.NoError(t, err)

	require.Len(t, indexer.drafts, 1)
	draft := indexer.drafts[0]
	assert.Equal(t, output.PostDraftID, draft.ID)
	assert.Len(t, draft.Variants, 3)
	assert.Equal(t, "success", draft.Variants[0].Strategy)
	assert.Equal(t, "educational", draft.Variants[1].Strategy)
	assert.Equal(t, "promotional", draft.Variants[2].Strategy)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_DuplicateDraft(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectDuplicateCheck(mock, "job-1042", true)

	handler := NewHandler(LoadConfig(), db, &stubIndexer{}, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput(t))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicatePostDraft))
	assert.Contains(t, err.Error(), "already exists for job job-1042")
	assert.Nil(t, output)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_DuplicateCheckError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT EXISTS`).
		WithArgs("job-1042").
		WillReturnError(errors.New("database connection failed"))

	handler := NewHandler(LoadConfig(), db, &stubIndexer{}, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput(t))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatabaseInsertFailed))
	assert.Contains(t, err.Error(), "duplicate check failed")
	assert.Nil(t, output)
}

func TestHandler_Execute_InsertError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectDuplicateCheck(mock, "job-1042", false)
	expectDraftInsert(mock).WillReturnError(errors.New("insert failed"))

	handler := NewHandler(LoadConfig(), db, &stubIndexer{}, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput(t))

	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrDatabaseInsertFailed))
	assert.Nil(t, output)
}

func TestHandler_Execute_AuditLogFailureIsNonFatal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectDuplicateCheck(mock, "job-1042", false)
	expectDraftInsert(mock).WillReturnResult(sqlmock.NewResult(1, 1))
	expectAuditInsert(mock).WillReturnError(errors.New("audit log failed"))

	handler := NewHandler(LoadConfig(), db, &stubIndexer{}, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput(t))

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_Execute_IndexFailureIsNonFatal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectDuplicateCheck(mock, "job-1042", false)
	expectDraftInsert(mock).WillReturnResult(sqlmock.NewResult(1, 1))
	expectAuditInsert(mock).WillReturnResult(sqlmock.NewResult(1, 1))

	indexer := &stubIndexer{err: errors.New("index unavailable")}
	handler := NewHandler(LoadConfig(), db, indexer, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput(t))

	assert.NoError(t, err)
	assert.NotNil(t, output)
	assert.False(t, output.Indexed)
}

func TestHandler_Execute_MissingBundle(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	handler := NewHandler(LoadConfig(), db, &stubIndexer{}, logger.NewTestLogger(t))

	tests := []struct {
		name  string
		input *Input
	}{
		{"missing jobId", &Input{GBPPost: &gbp.PostBundle{}}},
		{"missing bundle", &Input{JobID: "job-1"}},
		{"empty variants", &Input{JobID: "job-1", GBPPost: &gbp.PostBundle{}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := handler.Execute(context.Background(), tt.input)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingBundle))
			assert.Nil(t, output)
		})
	}
}

func TestHandler_Execute_NilIndexerSkipsIndexing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	expectDuplicateCheck(mock, "job-1042", false)
	expectDraftInsert(mock).WillReturnResult(sqlmock.NewResult(1, 1))
	expectAuditInsert(mock).WillReturnResult(sqlmock.NewResult(1, 1))

	handler := NewHandler(LoadConfig(), db, nil, logger.NewTestLogger(t))

	output, err := handler.Execute(context.Background(), createTestInput(t))

	assert.NoError(t, err)
	assert.False(t, output.Indexed)
}
