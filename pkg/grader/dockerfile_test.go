package grader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDockerfile(t *testing.T) {
	t.Run("strips comments and blank lines", func(t *testing.T) {
		directives := parseDockerfile(`
# base image
FROM python:3.12-slim

# deps
COPY requirements.txt .
`)
		require.Len(t, directives, 2)
		assert.Equal(t, "FROM", directives[0].Cmd)
		assert.Equal(t, "COPY", directives[1].Cmd)
	})

	t.Run("joins backslash continuations", func(t *testing.T) {
		directives := parseDockerfile(`RUN apt-get update && \
    apt-get install -y curl && \
    rm -rf /var/lib/apt/lists/*`)
		require.Len(t, directives, 1)
		assert.Contains(t, directives[0].Raw, "rm -rf /var/lib/apt/lists/*")
	})

	t.Run("separates leading flags from args", func(t *testing.T) {
		directives := parseDockerfile(`COPY --from=builder --chown=app /out/server /usr/local/bin/`)
		require.Len(t, directives, 1)
		assert.Equal(t, []string{"--from=builder", "--chown=app"}, directives[0].Flags)
		assert.Equal(t, []string{"/out/server", "/usr/local/bin/"}, directives[0].Args)
	})

	t.Run("instruction case is normalized", func(t *testing.T) {
		directives := parseDockerfile("from alpine:3.20 as builder")
		require.Len(t, directives, 1)
		assert.Equal(t, "FROM", directives[0].Cmd)
		assert.Equal(t, "builder", stageAlias(directives[0]))
	})
}

func TestDirectiveHelpers(t *testing.T) {
	t.Run("copyFromRef", func(t *testing.T) {
		d := parseDockerfile("COPY --from=builder /a /b")[0]
		assert.Equal(t, "builder", copyFromRef(d))

		plain := parseDockerfile("COPY a b")[0]
		assert.Empty(t, copyFromRef(plain))
	})

	t.Run("isBroadSourceCopy", func(t *testing.T) {
		assert.True(t, isBroadSourceCopy(parseDockerfile("COPY . .")[0]))
		assert.True(t, isBroadSourceCopy(parseDockerfile("COPY ./ /app")[0]))
		assert.False(t, isBroadSourceCopy(parseDockerfile("COPY app.py .")[0]))
		assert.False(t, isBroadSourceCopy(parseDockerfile("COPY --from=builder . .")[0]))
	})

	t.Run("isManifestCopy", func(t *testing.T) {
		assert.True(t, isManifestCopy(parseDockerfile("COPY requirements.txt .")[0]))
		assert.True(t, isManifestCopy(parseDockerfile("COPY app/package.json .")[0]))
		assert.False(t, isManifestCopy(parseDockerfile("COPY . .")[0]))
	})

	t.Run("isDependencyInstall", func(t *testing.T) {
		assert.True(t, isDependencyInstall(parseDockerfile("RUN pip install -r requirements.txt")[0]))
		assert.True(t, isDependencyInstall(parseDockerfile("RUN npm ci")[0]))
		assert.False(t, isDependencyInstall(parseDockerfile("RUN echo hi")[0]))
		assert.False(t, isDependencyInstall(parseDockerfile("COPY pip install")[0]))
	})
}
