package grader

import (
	"context"
	"fmt"

	"github.com/codeready-toolchain/dockhand/pkg/models"
)

// multi-stage lab codes.
const (
	CodeSingleStage         = "single_stage_build"
	CodeBuilderAliasMissing = "builder_stage_alias_missing"
	CodeCopyFromMissing     = "copy_from_builder_missing"
)

// maxFinalImageMB is the final image size ceiling for the multi-stage lab.
const maxFinalImageMB = 250.0

// multiStageGrader checks that the Dockerfile uses at least two stages, the
// builder stage is aliased and referenced via COPY --from, the final image
// stays under the size ceiling, and the service answers its health probe.
type multiStageGrader struct{}

func (g *multiStageGrader) Evaluate(ctx context.Context, run *Run) (*models.GradeResult, error) {
	result := &models.GradeResult{}

	files, missing, err := requireFiles(ctx, run.Sup, "Dockerfile")
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		result.Failures = missing
		return result, nil
	}

	directives := parseDockerfile(string(files["Dockerfile"]))

	var fromDirectives []Directive
	aliases := map[string]bool{}
	for _, d := range directives {
		if d.Cmd == "FROM" {
			fromDirectives = append(fromDirectives, d)
			if alias := stageAlias(d); alias != "" {
				aliases[alias] = true
			}
		}
	}

	if len(fromDirectives) < 2 {
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeSingleStage,
			Message: "the Dockerfile has a single stage",
			Hint:    "Use one FROM for building and a second FROM for the runtime image.",
		})
	}

	builderAliased := false
	for _, d := range fromDirectives[:max(len(fromDirectives)-1, 0)] {
		if stageAlias(d) != "" {
			builderAliased = true
		}
	}
	if len(fromDirectives) >= 2 && !builderAliased {
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeBuilderAliasMissing,
			Message: "the builder stage has no alias",
			Hint:    "Name the first stage: FROM golang:1.25 AS builder.",
		})
	}

	copiesFromBuilder := false
	for _, d := range directives {
		if d.Cmd == "COPY" {
			if ref := copyFromRef(d); ref != "" && aliases[ref] {
				copiesFromBuilder = true
			}
		}
	}
	if len(fromDirectives) >= 2 && builderAliased && !copiesFromBuilder {
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeCopyFromMissing,
			Message: "the final stage never copies from the builder",
			Hint:    "Copy the built artifact with COPY --from=builder.",
		})
	}

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

	if build.Metrics != nil && build.Metrics.ImageSizeMB > maxFinalImageMB {
		result.Failures = append(result.Failures, models.Failure{
			Code: CodeImageTooLarge,
			Message: fmt.Sprintf("final image is %.1f MB, over the %.0f MB ceiling",
				build.Metrics.ImageSizeMB, maxFinalImageMB),
			Hint: "Keep heavy toolchains in the builder stage; start the final stage from a slim base.",
		})
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
			Hint:    "Make sure the runtime stage actually contains and starts your binary.",
		})
	}

	return result, nil
}
