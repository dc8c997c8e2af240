package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	WorkerJobsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_completed_total",
			Help: "Total number of jobs completed by worker",
		},
		[]string{"task_type"},
	)

	WorkerJobsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "worker_jobs_failed_total",
			Help: "Total number of jobs failed by worker",
		},
		[]string{"task_type", "error_code"},
	)

	WorkerJobDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "worker_job_duration_seconds",
			Help: "Duration of job processing in seconds",
		},
		[]string{"task_type"},
	)

	PostDraftsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "post_drafts_generated_total",
			Help: "Total number of GBP post bundles generated",
		},
		[]string{"service_category"},
	)

	ComplianceIssuesFound = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "compliance_issues_found_total",
			Help: "Total number of policy issues flagged by the compliance checker",
		},
	)

	VINCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vin_cache_lookups_total",
			Help: "VIN decode cache lookups by result",
		},
		[]string{"result"},
	)
)
