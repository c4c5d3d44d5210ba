package gemini

const instruction = `Analyze the mentoring session. Extract every specific instance where a learner asks a question and the mentor provides a response.
Focus ONLY on the conversational exchanges.

Return a single JSON object and nothing else:
- overallScore: integer (0-100)
- metrics: { clarity: int, empathy: int, accuracy: int, pacing: int }, each 0-100
- summary: string
- interactions: array, in the order they occur, of {
    timestamp: string,
    learnerQuestion: string,
    mentorAnswer: string,
    effectivenessScore: int (0-100),
    analysis: string,
    strengths: string[],
    improvements: string[]
  }`
