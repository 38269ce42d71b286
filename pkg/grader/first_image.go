package grader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/codeready-toolchain/dockhand/pkg/models"
)

// first-image lab codes.
const (
	CodeDockerignoreMissing    = "dockerignore_missing"
	CodeDockerignoreIncomplete = "dockerignore_incomplete"
)

// firstImageGrader checks the introductory lab: a Dockerfile plus a
// .dockerignore that keeps __pycache__ and venv out of the context, a
// successful build, and a service answering GET /health with JSON.
type firstImageGrader struct{}

func (g *firstImageGrader) Evaluate(ctx context.Context, run *Run) (*models.GradeResult, error) {
	result := &models.GradeResult{}

	_, missing, err := requireFiles(ctx, run.Sup, "Dockerfile", "requirements.txt")
	if err != nil {
		return nil, err
	}
	result.Failures = append(result.Failures, missing...)

	ignore, ignoreExists, err := readWorkspaceFile(ctx, run.Sup, ".dockerignore")
	if err != nil {
		return nil, err
	}
	switch {
	case !ignoreExists:
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeDockerignoreMissing,
			Message: ".dockerignore is missing",
			Hint:    "Add a .dockerignore so build artifacts stay out of the image context.",
		})
	default:
		for _, required := range [][]byte{[]byte("__pycache__"), []byte("venv")} {
			if !bytes.Contains(ignore, required) {
				result.Failures = append(result.Failures, models.Failure{
					Code:    CodeDockerignoreIncomplete,
					Message: fmt.Sprintf(".dockerignore does not exclude %s", required),
					Hint:    fmt.Sprintf("Add a %s line to .dockerignore.", required),
				})
			}
		}
	}

	// Static checks gate the build: don't spend five minutes building a
	// workspace that already failed.
	if len(result.Failures) > 0 {
		return result, nil
	}

	build, built, err := buildImage(ctx, run, result)
	if err != nil {
		return nil, err
	}
	if !built {
		return result, nil
	}

	probe, err := probeHealth(ctx, run, build.ImageTag, result)
	if err != nil {
		return nil, err
	}
	if probe.failed {
		return result, nil
	}
	if !probe.ok {
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeHealthcheckFailed,
			Message: fmt.Sprintf("GET /health did not answer within %d attempts", probe.attempts),
			Hint:    "Make sure the server binds 0.0.0.0 and listens on the lab port.",
		})
		return result, nil
	}

	var body interface{}
	if err := json.Unmarshal([]byte(probe.body), &body); err != nil {
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeInvalidHealthBody,
			Message: "GET /health returned a non-JSON body",
			Hint:    "Return a JSON object such as {\"status\": \"ok\"}.",
		})
	}

	return result, nil
}
