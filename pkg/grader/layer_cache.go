package grader

import (
	"context"
	"strings"

	"github.com/codeready-toolchain/dockhand/pkg/models"
)

// layer-cache lab codes.
const (
	CodeManifestCopyMissing     = "dependency_manifest_copy_missing"
	CodeInstallAfterSourceCopy  = "dependency_install_before_source_copy"
	CodeManifestCopyAfterSource = "dependency_manifest_after_source_copy"
	CodePipCacheFlagMissing     = "pip_cache_flag_missing"
)

// layerCacheGrader checks Dockerfile step ordering: the dependency manifest
// is copied and installed before the broad source copy, and the installer
// runs with on-disk caching disabled.
type layerCacheGrader struct{}

func (g *layerCacheGrader) Evaluate(ctx context.Context, run *Run) (*models.GradeResult, error) {
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

	manifestCopyIdx := -1
	installIdx := -1
	sourceCopyIdx := -1
	installHasNoCache := false

	for i, d := range directives {
		switch {
		case isManifestCopy(d) && manifestCopyIdx == -1:
			manifestCopyIdx = i
		case isBroadSourceCopy(d) && sourceCopyIdx == -1:
			sourceCopyIdx = i
		case isDependencyInstall(d) && installIdx == -1:
			installIdx = i
			installHasNoCache = strings.Contains(d.Raw, "--no-cache-dir") ||
				strings.Contains(d.Raw, "--no-cache")
		}
	}

	if manifestCopyIdx == -1 {
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeManifestCopyMissing,
			Message: "no COPY of the dependency manifest before installing",
			Hint:    "COPY requirements.txt on its own line before installing dependencies.",
		})
	} else if sourceCopyIdx != -1 && sourceCopyIdx < manifestCopyIdx {
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeManifestCopyAfterSource,
			Message: "the dependency manifest is copied after the broad source copy",
			Hint:    "Copy requirements.txt before COPY . so edits to source code keep the dependency layer cached.",
		})
	}

	switch {
	case installIdx == -1:
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeInstallAfterSourceCopy,
			Message: "no dependency install step found",
			Hint:    "Add a RUN pip install -r requirements.txt step.",
		})
	case sourceCopyIdx != -1 && installIdx > sourceCopyIdx:
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodeInstallAfterSourceCopy,
			Message: "dependencies are installed after the broad source copy",
			Hint:    "Install dependencies before COPY . so the install layer survives source edits.",
		})
	case !installHasNoCache:
		result.Failures = append(result.Failures, models.Failure{
			Code:    CodePipCacheFlagMissing,
			Message: "the dependency install keeps the package cache in the image",
			Hint:    "Install with pip install --no-cache-dir.",
		})
	}

	if len(result.Failures) > 0 {
		return result, nil
	}

	if _, built, err := buildImage(ctx, run, result); err != nil {
		return nil, err
	} else if !built {
		return result, nil
	}

	return result, nil
}
