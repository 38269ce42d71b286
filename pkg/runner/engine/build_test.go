package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountCacheHits(t *testing.T) {
	logs := []string{
		"Step 1/5 : FROM python:3.12-slim",
		"Step 2/5 : COPY requirements.txt .",
		" ---> Using cache",
		"Step 3/5 : RUN pip install --no-cache-dir -r requirements.txt",
		" ---> Using cache",
		"#5 [2/4] COPY go.mod .",
		"#5 CACHED",
		"Step 5/5 : COPY . .",
	}
	assert.Equal(t, 3, countCacheHits(logs))
	assert.Equal(t, 0, countCacheHits(nil))
}

func TestParseHumanSizeMB(t *testing.T) {
	cases := map[string]float64{
		"12.3MB": 12.3,
		"1.5GB":  1536,
		"512kB":  0.5,
		"0B":     0,
		"junk":   0,
	}
	for in, want := range cases {
		assert.InDelta(t, want, parseHumanSizeMB(in), 0.001, "input %q", in)
	}
}

func TestLastNonEmptyLine(t *testing.T) {
	assert.Equal(t, "error: unknown instruction FORM",
		lastNonEmptyLine("step one\nerror: unknown instruction FORM\n\n  \n"))
	assert.Empty(t, lastNonEmptyLine("\n \n"))
}

func TestBuildLogLines(t *testing.T) {
	lines := buildLogLines("a\n\nb\n", "c\n")
	assert.Equal(t, []string{"a", "b", "c"}, lines)

	assert.NotNil(t, buildLogLines("", ""))
	assert.Empty(t, buildLogLines("", ""))
}
