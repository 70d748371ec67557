package aiquiz

import "fmt"

const promptTemplate = `You are an expert educational content creator. Generate exactly 5 high-quality multiple choice questions based on the following topic: "%s"

REQUIREMENTS:
1. Question Quality:
   - Create clear, concise, and unambiguous questions
   - Test understanding, not just memorization
   - Avoid trick questions or overly complex wording
   - Make each question unique and cover a different aspect of the topic

2. Answer Options:
   - Provide exactly 4 options (A, B, C, D) for each question
   - Make all options plausible and similar in length
   - Ensure only ONE option is definitively correct
   - Never use options like "All of the above" or "None of the above"
   - Base the wrong answers on common misconceptions

3. Difficulty:
   - Target an intermediate difficulty level
   - Questions should be challenging but fair
   - Avoid obscure or overly technical details

4. Explanation:
   - Explain briefly why the correct answer is right
   - Keep explanations to 2-3 sentences

5. Sources:
   - Include 1-3 reputable sources that support the answer and explanation
   - Prefer authoritative sources such as Wikipedia, educational institutions, scientific journals, or official documentation
   - Each source must have a descriptive title and a valid URL pointing to a specific, relevant page

OUTPUT FORMAT (respond ONLY with valid JSON: an array of exactly 5 question objects):
[
  {
    "question": "Question text?",
    "options": [
      { "label": "A", "text": "First option" },
      { "label": "B", "text": "Second option" },
      { "label": "C", "text": "Third option" },
      { "label": "D", "text": "Fourth option" }
    ],
    "correctAnswer": "A",
    "explanation": "Brief explanation of why this answer is correct.",
    "sources": [
      { "title": "Wikipedia - Topic Name", "url": "https://en.wikipedia.org/wiki/Topic_Name" }
    ]
  }
]

Generate all 5 questions now.`

// BuildPrompt interpolates topic verbatim. Callers trim and reject empty
// topics before getting here.
func BuildPrompt(topic string) string {
	return fmt.Sprintf(promptTemplate, topic)
}
