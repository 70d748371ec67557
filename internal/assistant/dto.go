package assistant

type TextRequest struct {
	Text string `json:"text" validate:"required"`
}

type SummarizeRequest struct {
	Text     string `json:"text" validate:"required"`
	MaxWords int    `json:"maxWords" validate:"omitempty,min=1,max=2000"`
}

type TranslateRequest struct {
	Text           string `json:"text" validate:"required"`
	TargetLanguage string `json:"targetLanguage" validate:"required"`
}

type CreativeRequest struct {
	Topic string      `json:"topic" validate:"required"`
	Kind  ContentKind `json:"kind" validate:"omitempty,oneof=story poem essay article"`
}

type AnswerRequest struct {
	Context  string `json:"context" validate:"required"`
	Question string `json:"question" validate:"required"`
}

type KeyPointsRequest struct {
	Text  string `json:"text" validate:"required"`
	Count int    `json:"count" validate:"omitempty,min=1,max=20"`
}

type ImproveRequest struct {
	Text        string `json:"text" validate:"required"`
	Instruction string `json:"instruction"`
}

type ChatRequest struct {
	Messages []Message `json:"messages" validate:"dive"`
	Message  string    `json:"message" validate:"required"`
}

type QuickQuizRequest struct {
	Content string `json:"content" validate:"required"`
	Count   int    `json:"count" validate:"omitempty,min=1,max=20"`
}

type ResultResponse struct {
	Result string `json:"result"`
}

type KeyPointsResponse struct {
	Points []string `json:"points"`
}

type QuickQuizResponse struct {
	Questions []QuickQuestion `json:"questions"`
}
