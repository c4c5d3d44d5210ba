package gemini

import "google.golang.org/genai"

func scoreSchema(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeInteger, Description: description}
}

func stringList() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}}
}

// EvaluationSchema is the response contract the model must satisfy. Sources
// are not part of it; they come from grounding metadata.
func EvaluationSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"overallScore": scoreSchema("Overall pedagogical score, 0-100."),
			"metrics": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"clarity":  scoreSchema("0-100"),
					"empathy":  scoreSchema("0-100"),
					"accuracy": scoreSchema("0-100"),
					"pacing":   scoreSchema("0-100"),
				},
				Required: []string{"clarity", "empathy", "accuracy", "pacing"},
			},
			"summary": {Type: genai.TypeString},
			"interactions": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"timestamp":          {Type: genai.TypeString},
						"learnerQuestion":    {Type: genai.TypeString},
						"mentorAnswer":       {Type: genai.TypeString},
						"effectivenessScore": scoreSchema("0-100"),
						"analysis":           {Type: genai.TypeString},
						"strengths":          stringList(),
						"improvements":       stringList(),
					},
					Required: []string{
						"timestamp", "learnerQuestion", "mentorAnswer",
						"effectivenessScore", "analysis", "strengths", "improvements",
					},
				},
			},
		},
		Required: []string{"overallScore", "metrics", "summary", "interactions"},
	}
}
