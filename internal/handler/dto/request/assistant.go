package request

type AssistantRequest struct {
	Prompt string `json:"prompt" binding:"required"`
	Date   string `json:"date" binding:"omitempty,datetime=2006-01-02"`
}
