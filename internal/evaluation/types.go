package evaluation

// Metrics are the four pedagogical sub-scores, each in [0,100].
type Metrics struct {
	Clarity  int `json:"clarity" yaml:"clarity"`
	Empathy  int `json:"empathy" yaml:"empathy"`
	Accuracy int `json:"accuracy" yaml:"accuracy"`
	Pacing   int `json:"pacing" yaml:"pacing"`
}

// Interaction is one learner-question / mentor-answer exchange.
type Interaction struct {
	Timestamp          string   `json:"timestamp" yaml:"timestamp"`
	LearnerQuestion    string   `json:"learnerQuestion" yaml:"learnerQuestion"`
	MentorAnswer       string   `json:"mentorAnswer" yaml:"mentorAnswer"`
	EffectivenessScore int      `json:"effectivenessScore" yaml:"effectivenessScore"`
	Analysis           string   `json:"analysis" yaml:"analysis"`
	Strengths          []string `json:"strengths" yaml:"strengths"`
	Improvements       []string `json:"improvements" yaml:"improvements"`
}

// Source is a grounding citation returned when search retrieval was used.
type Source struct {
	Title string `json:"title,omitempty" yaml:"title,omitempty"`
	URI   string `json:"uri,omitempty" yaml:"uri,omitempty"`
}

// Result is a validated evaluation of a mentoring session.
type Result struct {
	OverallScore int           `json:"overallScore" yaml:"overallScore"`
	Metrics      Metrics       `json:"metrics" yaml:"metrics"`
	Summary      string        `json:"summary" yaml:"summary"`
	Interactions []Interaction `json:"interactions" yaml:"interactions"`
	Sources      []Source      `json:"sources,omitempty" yaml:"sources,omitempty"`

	// Clamped counts scores that were outside [0,100] and pulled into range.
	Clamped int `json:"-" yaml:"-"`
}
