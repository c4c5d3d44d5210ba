package evaluation

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidFormat = errors.New("invalid analysis format received")

const (
	minScore = 0
	maxScore = 100
)

// Wire shapes use pointers so a missing field can be told apart from a zero.
type wireMetrics struct {
	Clarity  *int `json:"clarity"`
	Empathy  *int `json:"empathy"`
	Accuracy *int `json:"accuracy"`
	Pacing   *int `json:"pacing"`
}

type wireInteraction struct {
	Timestamp          *string   `json:"timestamp"`
	LearnerQuestion    *string   `json:"learnerQuestion"`
	MentorAnswer       *string   `json:"mentorAnswer"`
	EffectivenessScore *int      `json:"effectivenessScore"`
	Analysis           *string   `json:"analysis"`
	Strengths          []*string `json:"strengths"`
	Improvements       []*string `json:"improvements"`
}

type wireResult struct {
	OverallScore *int              `json:"overallScore"`
	Metrics      *wireMetrics      `json:"metrics"`
	Summary      *string           `json:"summary"`
	Interactions []wireInteraction `json:"interactions"`
}

// Parse decodes model output into a Result. The text must be a single JSON
// object with every required field present; anything else is ErrInvalidFormat.
// Scores outside [0,100] are clamped and counted in Result.Clamped.
func Parse(text string) (*Result, error) {
	var w wireResult
	if err := json.Unmarshal([]byte(text), &w); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}

	v := &validator{}
	res := &Result{
		OverallScore: v.score("overallScore", w.OverallScore),
		Summary:      v.str("summary", w.Summary),
	}

	if w.Metrics == nil {
		v.missing("metrics")
	} else {
		res.Metrics = Metrics{
			Clarity:  v.score("metrics.clarity", w.Metrics.Clarity),
			Empathy:  v.score("metrics.empathy", w.Metrics.Empathy),
			Accuracy: v.score("metrics.accuracy", w.Metrics.Accuracy),
			Pacing:   v.score("metrics.pacing", w.Metrics.Pacing),
		}
	}

	if w.Interactions == nil {
		v.missing("interactions")
	}
	res.Interactions = make([]Interaction, 0, len(w.Interactions))
	for i, wi := range w.Interactions {
		p := fmt.Sprintf("interactions[%d].", i)
		res.Interactions = append(res.Interactions, Interaction{
			Timestamp:          v.str(p+"timestamp", wi.Timestamp),
			LearnerQuestion:    v.str(p+"learnerQuestion", wi.LearnerQuestion),
			MentorAnswer:       v.str(p+"mentorAnswer", wi.MentorAnswer),
			EffectivenessScore: v.score(p+"effectivenessScore", wi.EffectivenessScore),
			Analysis:           v.str(p+"analysis", wi.Analysis),
			Strengths:          v.list(p+"strengths", wi.Strengths),
			Improvements:       v.list(p+"improvements", wi.Improvements),
		})
	}

	if len(v.absent) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidFormat, strings.Join(v.absent, ", "))
	}
	res.Clamped = v.clamped
	return res, nil
}

type validator struct {
	absent  []string
	clamped int
}

func (v *validator) missing(field string) {
	v.absent = append(v.absent, field)
}

func (v *validator) score(field string, p *int) int {
	if p == nil {
		v.missing(field)
		return 0
	}
	s := *p
	if s < minScore {
		v.clamped++
		return minScore
	}
	if s > maxScore {
		v.clamped++
		return maxScore
	}
	return s
}

func (v *validator) str(field string, p *string) string {
	if p == nil {
		v.missing(field)
		return ""
	}
	return *p
}

func (v *validator) list(field string, items []*string) []string {
	if items == nil {
		v.missing(field)
		return nil
	}
	out := make([]string, 0, len(items))
	for j, item := range items {
		out = append(out, v.str(fmt.Sprintf("%s[%d]", field, j), item))
	}
	return out
}
