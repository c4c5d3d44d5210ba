package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"mentor-eval/internal/evaluation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleResult() *evaluation.Result {
	return &evaluation.Result{
		OverallScore: 71,
		Metrics:      evaluation.Metrics{Clarity: 70, Empathy: 80, Accuracy: 75, Pacing: 60},
		Summary:      "Good rapport.",
		Interactions: []evaluation.Interaction{{
			Timestamp:          "01:10",
			LearnerQuestion:    "How do I test this?",
			MentorAnswer:       "Start with a table.",
			EffectivenessScore: 73,
			Analysis:           "Practical.",
			Strengths:          []string{"actionable"},
			Improvements:       []string{"show an example"},
		}},
		Sources: []evaluation.Source{{Title: "Docs", URI: "https://go.dev/doc"}},
		Clamped: 2,
	}
}

func TestWriteYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	require.NoError(t, Write(sampleResult(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got evaluation.Result
	require.NoError(t, yaml.Unmarshal(data, &got))
	want := sampleResult()
	want.Clamped = 0
	assert.Equal(t, *want, got)
	assert.Contains(t, string(data), "learnerQuestion: How do I test this?")
}

func TestWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.JSON")
	res := sampleResult()
	res.Sources = nil
	require.NoError(t, Write(res, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.EqualValues(t, 71, raw["overallScore"])
	assert.NotContains(t, raw, "sources")
	assert.NotContains(t, raw, "Clamped")
}

func TestWriteRejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	assert.ErrorIs(t, Write(sampleResult(), path), ErrUnsupportedFormat)
	assert.NoFileExists(t, path)
}

func TestWriteNilResult(t *testing.T) {
	assert.Error(t, Write(nil, filepath.Join(t.TempDir(), "r.yaml")))
}
