package models

import "time"

// MetricDelta is the change in one numeric metric between the previous and
// latest attempt. Path is a dotted path into the nested metric map, e.g.
// "build.image_size_mb".
type MetricDelta struct {
	Path     string  `json:"path"`
	Previous float64 `json:"previous"`
	Latest   float64 `json:"latest"`
	Delta    float64 `json:"delta"`
}

// TimelinePoint is one attempt summarized for the inspector timeline.
type TimelinePoint struct {
	AttemptID    string    `json:"attempt_id"`
	AttemptIndex int       `json:"attempt_index"`
	CreatedAt    time.Time `json:"created_at"`
	Passed       bool      `json:"passed"`
	FailureCount int       `json:"failure_count"`
	ImageSizeMB  *float64  `json:"image_size_mb,omitempty"`
}

// InspectorReport is returned by GET /sessions/:id/inspector.
type InspectorReport struct {
	SessionID      string                 `json:"session_id"`
	LatestMetrics  map[string]interface{} `json:"latest_metrics,omitempty"`
	PreviousMetric map[string]interface{} `json:"previous_metrics,omitempty"`
	Deltas         []MetricDelta          `json:"deltas"`
	Timeline       []TimelinePoint        `json:"timeline"`
}
