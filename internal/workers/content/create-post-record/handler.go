// internal/workers/content/create-post-record/handler.go
package createpostrecord

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	cmerrors "carkeypro-workers/internal/common/errors"
	"carkeypro-workers/internal/common/logger"
	"carkeypro-workers/internal/common/metrics"
	"carkeypro-workers/internal/gbp"
	"carkeypro-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const (
	TaskType = "create-post-record"
)

var (
	ErrDatabaseInsertFailed = errors.New("DATABASE_INSERT_FAILED")
	ErrDuplicatePostDraft   = errors.New("DUPLICATE_POST_DRAFT")
	ErrMissingBundle        = errors.New("INPUT_VALIDATION_FAILED")
)

// PostIndexer mirrors the draft into the review dashboard's search index.
// Indexing is best effort: a failed index never fails the job.
type PostIndexer interface {
	IndexPostDraft(ctx context.Context, draft *models.PostDraft) error
}

type Handler struct {
	config  *Config
	db      *sql.DB
	indexer PostIndexer
	logger  logger.Logger
}

func NewHandler(config *Config, db *sql.DB, indexer PostIndexer, log logger.Logger) *Handler {
	return &Handler{
		config:  config,
		db:      db,
		indexer: indexer,
		logger:  log.WithFields(map[string]interface{}{"taskType": TaskType}),
	}
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, &cmerrors.BPMNError{
			Code:    string(cmerrors.ErrCodeParseError),
			Message: fmt.Sprintf("parse input: %v", err),
		})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		h.failJob(client, job, cmerrors.FromStandard(convertToStandardError(err, input.JobID)))
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.JobID == "" {
		return nil, fmt.Errorf("%w: jobId is required", ErrMissingBundle)
	}
	if input.GBPPost == nil || len(input.GBPPost.Variants) == 0 {
		return nil, fmt.Errorf("%w: gbpPost bundle with variants is required", ErrMissingBundle)
	}

	var exists bool
	err := h.db.QueryRowContext(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM post_drafts
			WHERE job_id = $1
		)`, input.JobID).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("%w: duplicate check failed: %v", ErrDatabaseInsertFailed, err)
	}
	if exists {
		return nil, fmt.Errorf("%w: post draft already exists for job %s",
			ErrDuplicatePostDraft, input.JobID)
	}

	draftID := uuid.New().String()
	createdAt := time.Now().UTC().Format(time.RFC3339)
	draft := h.buildDraft(draftID, createdAt, input)

	variantsJSON, err := json.Marshal(draft.Variants)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal variants: %v", ErrDatabaseInsertFailed, err)
	}
	hashtagsJSON, err := json.Marshal(draft.Hashtags)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal hashtags: %v", ErrDatabaseInsertFailed, err)
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO post_drafts (
			id, job_id, franchisee_id, service_category, location,
			variants, hashtags, campaign_id, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)`,
		draft.ID,
		draft.JobID,
		draft.FranchiseeID,
		draft.ServiceCategory,
		draft.Location,
		variantsJSON,
		hashtagsJSON,
		draft.CampaignID,
		draft.Status,
		createdAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: insert failed: %v", ErrDatabaseInsertFailed, err)
	}

	h.writeAuditLog(ctx, draft, createdAt)

	indexed := false
	if h.indexer != nil {
		if err := h.indexer.IndexPostDraft(ctx, draft); err != nil {
			h.logger.Warn("search index update failed", map[string]interface{}{
				"error":       err,
				"postDraftId": draft.ID,
			})
		} else {
			indexed = true
		}
	}

	h.logger.Info("post draft created", map[string]interface{}{
		"postDraftId":     draft.ID,
		"jobId":           draft.JobID,
		"serviceCategory": draft.ServiceCategory,
		"campaignId":      draft.CampaignID,
		"indexed":         indexed,
	})

	return &Output{
		PostDraftID: draft.ID,
		DraftStatus: draft.Status,
		CreatedAt:   createdAt,
		Indexed:     indexed,
	}, nil
}

func (h *Handler) buildDraft(draftID, createdAt string, input *Input) *models.PostDraft {
	variants := make([]models.PostVariantRecord, 0, len(input.GBPPost.Variants))
	for i, v := range input.GBPPost.Variants {
		strategy := ""
		if i < len(gbp.VariantNames) {
			strategy = gbp.VariantNames[i]
		}
		variants = append(variants, models.PostVariantRecord{
			Strategy:            strategy,
			Headline:            v.Headline,
			Body:                v.Body,
			CTALabel:            v.CTALabel,
			CTALink:             v.CTALink,
			SuggestedImageStyle: v.SuggestedImageStyle,
			AltText:             v.AltText,
		})
	}
	return &models.PostDraft{
		ID:              draftID,
		JobID:           input.JobID,
		FranchiseeID:    input.FranchiseeID,
		ServiceCategory: input.ServiceType,
		Location:        input.Location,
		Variants:        variants,
		Hashtags:        input.GBPPost.Hashtags,
		CampaignID:      input.GBPPost.CampaignID,
		Status:          models.DraftStatusPendingReview,
		CreatedAt:       createdAt,
	}
}

// Audit entries are non-critical: a failed insert is logged and the job
// continues.
func (h *Handler) writeAuditLog(ctx context.Context, draft *models.PostDraft, createdAt string) {
	detailsJSON, err := json.Marshal(map[string]interface{}{
		"jobId":           draft.JobID,
		"franchiseeId":    draft.FranchiseeID,
		"serviceCategory": draft.ServiceCategory,
		"campaignId":      draft.CampaignID,
		"variantCount":    len(draft.Variants),
	})
	if err != nil {
		h.logger.Warn("failed to marshal audit log details", map[string]interface{}{
			"error": err,
		})
		detailsJSON = []byte("{}")
	}

	_, err = h.db.ExecContext(ctx, `
		INSERT INTO audit_log (event_type, resource_type, resource_id, details, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		"post_draft_created",
		"post_draft",
		draft.ID,
		detailsJSON,
		createdAt,
	)
	if err != nil {
		h.logger.Warn("audit log insert failed", map[string]interface{}{
			"error":       err,
			"postDraftId": draft.ID,
		})
	}
}

func (h *Handler) completeJob(client worker.JobClient, job entities.Job, output *Output) {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.Key).
		VariablesFromObject(output)
	if err != nil {
		h.logger.Error("failed to create complete job command", map[string]interface{}{"error": err})
		return
	}
	if _, err = cmd.Send(context.Background()); err != nil {
		h.logger.Error("failed to send complete job command", map[string]interface{}{"error": err})
		return
	}
	metrics.WorkerJobsCompleted.WithLabelValues(TaskType).Inc()
}

func convertToStandardError(err error, jobID string) *cmerrors.StandardError {
	switch {
	case errors.Is(err, ErrDuplicatePostDraft):
		return cmerrors.NewDuplicatePostDraftError(jobID)
	case errors.Is(err, ErrMissingBundle):
		return cmerrors.NewInputValidationFailedError(err.Error())
	default:
		return cmerrors.NewDatabaseInsertFailedError(err)
	}
}

// Retryable errors go back to the broker as job failures; non-retryable ones
// surface as BPMN errors for the workflow to route.
func (h *Handler) failJob(client worker.JobClient, job entities.Job, bpmnErr *cmerrors.BPMNError) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    bpmnErr.Code,
		"errorMessage": bpmnErr.Message,
		"retryable":    bpmnErr.Retryable,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, bpmnErr.Code).Inc()

	if bpmnErr.Retryable {
		cmd, err := client.NewFailJobCommand().
			JobKey(job.Key).
			Retries(int32(bpmnErr.Retries)).
			ErrorMessage(fmt.Sprintf("[%s] %s", bpmnErr.Code, bpmnErr.Message)).
			VariablesFromMap(bpmnErr.ToErrorVariables())
		if err != nil {
			h.logger.Error("failed to set error variables", map[string]interface{}{"error": err})
			return
		}
		if _, err := cmd.Send(context.Background()); err != nil {
			h.logger.Error("failed to fail job", map[string]interface{}{"error": err})
		}
		return
	}

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{"error": err})
	}
}
