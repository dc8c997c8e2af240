// internal/workers/content/generate-gbp-post/handler.go
package generategbppost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"carkeypro-workers/internal/common/logger"
	"carkeypro-workers/internal/common/metrics"
	"carkeypro-workers/internal/gbp"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/xeipuuv/gojsonschema"
)

const TaskType = "generate-gbp-post"

var (
	ErrCategoryUnknown       = errors.New("CATEGORY_UNKNOWN")
	ErrInputValidationFailed = errors.New("INPUT_VALIDATION_FAILED")
)

// inputSchema gates the job variables before generation. The category enum
// here is advisory; the authoritative check is the knowledge-table lookup.
const inputSchema = `{
	"type": "object",
	"properties": {
		"jobId":          {"type": "string"},
		"serviceType":    {"type": "string", "minLength": 1},
		"jobDescription": {"type": "string"},
		"location":       {"type": "string"},
		"techName":       {"type": "string"}
	},
	"required": ["serviceType", "jobDescription", "location"]
}`

type Handler struct {
	config    *Config
	logger    logger.Logger
	generator *gbp.Generator
	schema    *gojsonschema.Schema
}

func NewHandler(config *Config, log logger.Logger) (*Handler, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(inputSchema))
	if err != nil {
		return nil, fmt.Errorf("compile input schema: %w", err)
	}

	return &Handler{
		config:    config,
		logger:    log.WithFields(map[string]interface{}{"taskType": TaskType}),
		generator: gbp.New(),
		schema:    schema,
	}, nil
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	start := time.Now()
	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.Key,
		"workflowKey": job.ProcessInstanceKey,
	})

	var input Input
	if err := json.Unmarshal([]byte(job.Variables), &input); err != nil {
		h.failJob(client, job, "PARSE_ERROR", fmt.Sprintf("parse input: %v", err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	output, err := h.Execute(ctx, &input)
	if err != nil {
		errorCode := "POST_GENERATION_FAILED"
		if errors.Is(err, ErrCategoryUnknown) {
			errorCode = "CATEGORY_UNKNOWN"
		} else if errors.Is(err, ErrInputValidationFailed) {
			errorCode = "INPUT_VALIDATION_FAILED"
		}
		h.failJob(client, job, errorCode, err.Error())
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	if err := h.validateInput(input); err != nil {
		return nil, err
	}

	category, err := gbp.ParseServiceCategory(input.ServiceType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCategoryUnknown, err)
	}

	bundle, err := h.generator.Generate(input.toJobContext(category))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCategoryUnknown, err)
	}

	metrics.PostDraftsGenerated.WithLabelValues(string(category)).Inc()
	h.logger.Info("post bundle generated", map[string]interface{}{
		"jobId":           input.JobID,
		"serviceCategory": string(category),
		"variants":        len(bundle.Variants),
		"campaignId":      bundle.CampaignID,
	})

	return &Output{JobID: input.JobID, GBPPost: bundle}, nil
}

func (h *Handler) validateInput(input *Input) error {
	doc, err := json.Marshal(input)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputValidationFailed, err)
	}

	result, err := h.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInputValidationFailed, err)
	}
	if !result.Valid() {
		findings := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			findings[i] = desc.String()
		}
		return fmt.Errorf("%w: %v", ErrInputValidationFailed, findings)
	}
	return nil
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

func (h *Handler) failJob(client worker.JobClient, job entities.Job, errorCode, errorMessage string) {
	h.logger.Error("job failed", map[string]interface{}{
		"jobKey":       job.Key,
		"errorCode":    errorCode,
		"errorMessage": errorMessage,
	})
	metrics.WorkerJobsFailed.WithLabelValues(TaskType, errorCode).Inc()

	_, err := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(errorCode).
		ErrorMessage(errorMessage).
		Send(context.Background())
	if err != nil {
		h.logger.Error("failed to throw error", map[string]interface{}{"error": err})
	}
}
