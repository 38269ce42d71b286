package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/codeready-toolchain/dockhand/pkg/models"
)

// defaultTimelineLength is how many attempts the inspector timeline covers.
const defaultTimelineLength = 20

// InspectorService computes the per-session inspector report: latest and
// previous build metrics, per-path numeric deltas, and an attempt timeline.
// Deltas are computed here, on the orchestrator side — the grader only
// reports absolute metrics.
type InspectorService struct {
	attempts *AttemptService
}

// NewInspectorService creates a new InspectorService.
func NewInspectorService(attempts *AttemptService) *InspectorService {
	return &InspectorService{attempts: attempts}
}

// Report builds the inspector report for a session.
func (s *InspectorService) Report(ctx context.Context, sessionID string) (*models.InspectorReport, error) {
	attempts, err := s.attempts.List(ctx, sessionID, defaultTimelineLength)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempts: %w", err)
	}

	report := &models.InspectorReport{
		SessionID: sessionID,
		Deltas:    []models.MetricDelta{},
		Timeline:  make([]models.TimelinePoint, 0, len(attempts)),
	}

	// attempts come newest first.
	if len(attempts) > 0 {
		report.LatestMetrics = attempts[0].Metrics
	}
	if len(attempts) > 1 {
		report.PreviousMetric = attempts[1].Metrics
	}
	report.Deltas = metricDeltas(report.PreviousMetric, report.LatestMetrics)

	// Timeline is rendered oldest first.
	for i := len(attempts) - 1; i >= 0; i-- {
		a := attempts[i]
		point := models.TimelinePoint{
			AttemptID:    a.ID,
			AttemptIndex: a.AttemptIndex,
			CreatedAt:    a.CreatedAt,
			Passed:       a.Passed,
			FailureCount: len(a.Failures),
		}
		if v, ok := numericAt(a.Metrics, "build", "image_size_mb"); ok {
			point.ImageSizeMB = &v
		}
		report.Timeline = append(report.Timeline, point)
	}

	return report, nil
}

// metricDeltas flattens both metric maps to dotted paths and reports the
// change for every numeric path present in both.
func metricDeltas(previous, latest map[string]interface{}) []models.MetricDelta {
	if previous == nil || latest == nil {
		return []models.MetricDelta{}
	}

	prevFlat := flattenNumeric("", previous)
	latestFlat := flattenNumeric("", latest)

	deltas := make([]models.MetricDelta, 0, len(latestFlat))
	for path, latestVal := range latestFlat {
		prevVal, ok := prevFlat[path]
		if !ok {
			continue
		}
		deltas = append(deltas, models.MetricDelta{
			Path:     path,
			Previous: prevVal,
			Latest:   latestVal,
			Delta:    latestVal - prevVal,
		})
	}
	sort.Slice(deltas, func(i, j int) bool { return deltas[i].Path < deltas[j].Path })
	return deltas
}

// flattenNumeric walks a nested metric map and collects numeric leaves
// under dotted paths. Non-numeric leaves and arrays are skipped.
func flattenNumeric(prefix string, node map[string]interface{}) map[string]float64 {
	out := make(map[string]float64)
	for key, value := range node {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := value.(type) {
		case map[string]interface{}:
			for p, n := range flattenNumeric(path, v) {
				out[p] = n
			}
		case float64:
			out[path] = v
		case int:
			out[path] = float64(v)
		case int64:
			out[path] = float64(v)
		case json.Number:
			if f, err := v.Float64(); err == nil {
				out[path] = f
			}
		}
	}
	return out
}

// numericAt reads a numeric leaf at the given path.
func numericAt(node map[string]interface{}, path ...string) (float64, bool) {
	if node == nil {
		return 0, false
	}
	current := node
	for i, key := range path {
		value, ok := current[key]
		if !ok {
			return 0, false
		}
		if i == len(path)-1 {
			switch v := value.(type) {
			case float64:
				return v, true
			case int:
				return float64(v), true
			case int64:
				return float64(v), true
			case json.Number:
				f, err := v.Float64()
				return f, err == nil
			}
			return 0, false
		}
		current, ok = value.(map[string]interface{})
		if !ok {
			return 0, false
		}
	}
	return 0, false
}
