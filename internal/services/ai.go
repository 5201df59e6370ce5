package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// AIService drafts custom interview questions from a topic prompt. It is
// optional: without an API key the feature is disabled at the handler.
type AIService struct {
	client *openai.Client
}

// DraftedQuestion is one AI-suggested bank entry. Drafts are always
// reviewed and saved as custom questions; they never enter the seeded bank.
type DraftedQuestion struct {
	Title                   string `json:"title"`
	Content                 string `json:"content"`
	Answer                  string `json:"answer"`
	EvaluatesTechnical      bool   `json:"evaluates_technical"`
	EvaluatesProblemSolving bool   `json:"evaluates_problem_solving"`
	EvaluatesCommunication  bool   `json:"evaluates_communication"`
}

func NewAIService(apiKey string) *AIService {
	return &AIService{
		client: openai.NewClient(apiKey),
	}
}

// DraftQuestions asks the model for count interview questions on the given
// technology and experience level.
func (s *AIService) DraftQuestions(ctx context.Context, technology, level string, count int) ([]DraftedQuestion, error) {
	if s.client == nil {
		return nil, fmt.Errorf("OpenAI client not initialized")
	}

	prompt := fmt.Sprintf(`You are an interview question author. Write %d interview questions for a %s candidate on %s.

Return only a JSON array in this shape:
[
  {
    "title": "short question title",
    "content": "the full question as asked to the candidate",
    "answer": "a model answer for the interviewer",
    "evaluates_technical": true,
    "evaluates_problem_solving": false,
    "evaluates_communication": false
  }
]

Rules:
- The three evaluates_* flags are independent; set every flag the question genuinely exercises.
- Return the JSON array only, with no surrounding prose.`, count, level, technology)

	resp, err := s.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4o,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleUser,
					Content: prompt,
				},
			},
			Temperature: 0.5,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from OpenAI")
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(content, "```")
	content = strings.TrimSpace(content)

	var drafts []DraftedQuestion
	if err := json.Unmarshal([]byte(content), &drafts); err != nil {
		return nil, fmt.Errorf("failed to parse AI response: %w", err)
	}

	return drafts, nil
}
