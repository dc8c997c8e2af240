// internal/workers/vehicle/decode-vin/handler.go
package decodevin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	cmerrors "carkeypro-workers/internal/common/errors"
	"carkeypro-workers/internal/common/logger"
	"carkeypro-workers/internal/common/metrics"
	"carkeypro-workers/internal/models"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/redis/go-redis/v9"

	httpclient "carkeypro-workers/internal/common/http"
)

const (
	TaskType = "decode-vin"

	cacheKeyPrefix = "vin:"
)

var (
	ErrVINInvalid       = errors.New("VIN_INVALID")
	ErrVINDecodeFailed  = errors.New("VIN_DECODE_FAILED")
	ErrVINDecodeTimeout = errors.New("VIN_DECODE_TIMEOUT")

	// 17 characters, no I, O or Q.
	vinPattern = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)
)

type Handler struct {
	config     *Config
	redis      *redis.Client
	httpClient *httpclient.Client
	logger     logger.Logger
}

func NewHandler(config *Config, redisClient *redis.Client, log logger.Logger) *Handler {
	return &Handler{
		config:     config,
		redis:      redisClient,
		httpClient: httpclient.NewClient(config.Timeout),
		logger:     log.WithFields(map[string]interface{}{"taskType": TaskType}),
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
		h.failJob(client, job, cmerrors.FromStandard(convertToStandardError(err, input.VIN)))
		return
	}

	metrics.WorkerJobDuration.WithLabelValues(TaskType).Observe(time.Since(start).Seconds())
	h.completeJob(client, job, output)
}

func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	vin := strings.ToUpper(strings.TrimSpace(input.VIN))
	if !vinPattern.MatchString(vin) {
		return nil, fmt.Errorf("%w: %q is not a valid 17-character VIN", ErrVINInvalid, input.VIN)
	}

	if vehicle, ok := h.cacheGet(ctx, vin); ok {
		metrics.VINCacheHits.WithLabelValues("hit").Inc()
		return &Output{
			VIN:          vin,
			VehicleYear:  vehicle.Year,
			VehicleMake:  vehicle.Make,
			VehicleModel: vehicle.Model,
			FromCache:    true,
		}, nil
	}
	metrics.VINCacheHits.WithLabelValues("miss").Inc()

	vehicle, err := h.decodeRemote(ctx, vin)
	if err != nil {
		return nil, err
	}

	h.cacheSet(ctx, vin, vehicle)

	return &Output{
		VIN:          vin,
		VehicleYear:  vehicle.Year,
		VehicleMake:  vehicle.Make,
		VehicleModel: vehicle.Model,
	}, nil
}

func (h *Handler) decodeRemote(ctx context.Context, vin string) (*models.Vehicle, error) {
	url := fmt.Sprintf("%s/vehicles/DecodeVinValues/%s?format=json", h.config.BaseURL, vin)
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %v", ErrVINDecodeFailed, err)
	}

	resp, err := h.httpClient.DoWithContext(ctx, req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, fmt.Errorf("%w: vPIC request timed out", ErrVINDecodeTimeout)
		}
		return nil, fmt.Errorf("%w: vPIC request failed: %v", ErrVINDecodeFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: vPIC returned status %d", ErrVINDecodeFailed, resp.StatusCode)
	}

	var payload vpicResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode vPIC response: %v", ErrVINDecodeFailed, err)
	}
	if len(payload.Results) == 0 {
		return nil, fmt.Errorf("%w: vPIC returned no results", ErrVINDecodeFailed)
	}

	result := payload.Results[0]
	if result.Make == "" && result.Model == "" {
		return nil, fmt.Errorf("%w: vPIC could not decode VIN %s: %s",
			ErrVINDecodeFailed, vin, result.ErrorText)
	}

	return &models.Vehicle{
		VIN:   vin,
		Year:  result.ModelYear,
		Make:  result.Make,
		Model: result.Model,
	}, nil
}

// Cache errors are swallowed: a broken cache degrades to remote lookups.
func (h *Handler) cacheGet(ctx context.Context, vin string) (*models.Vehicle, bool) {
	if h.redis == nil {
		return nil, false
	}

	raw, err := h.redis.Get(ctx, cacheKeyPrefix+vin).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			h.logger.Warn("vin cache read failed", map[string]interface{}{"error": err, "vin": vin})
		}
		return nil, false
	}

	var vehicle models.Vehicle
	if err := json.Unmarshal([]byte(raw), &vehicle); err != nil {
		h.logger.Warn("vin cache entry corrupt", map[string]interface{}{"error": err, "vin": vin})
		return nil, false
	}
	return &vehicle, true
}

func (h *Handler) cacheSet(ctx context.Context, vin string, vehicle *models.Vehicle) {
	if h.redis == nil {
		return
	}

	raw, err := json.Marshal(vehicle)
	if err != nil {
		return
	}
	if err := h.redis.Set(ctx, cacheKeyPrefix+vin, raw, h.config.CacheTTL).Err(); err != nil {
		h.logger.Warn("vin cache write failed", map[string]interface{}{"error": err, "vin": vin})
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

func convertToStandardError(err error, vin string) *cmerrors.StandardError {
	switch {
	case errors.Is(err, ErrVINInvalid):
		return cmerrors.NewVINInvalidError(vin)
	case errors.Is(err, ErrVINDecodeTimeout):
		return cmerrors.NewVINDecodeTimeoutError(err)
	default:
		return cmerrors.NewVINDecodeFailedError(err)
	}
}

// Retryable errors go back to the broker as job failures so it re-dispatches
// them; non-retryable ones surface as BPMN errors for the workflow to route.
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
