package domain

// SendInput is one user message
type SendInput struct {
	ChatID   string `json:"chat_id,omitempty"  validate:"omitempty,uuid"                example:"6f1c2c9e-8d7a-4c1b-9a51-3f0e2b7d9c10"`
	UserID   string `json:"user_id"            validate:"required,max=128"             example:"user-42"`
	Message  string `json:"message"            validate:"required,nonblank,max=4000"   example:"Find me data analyst jobs in Pune"`
	Language string `json:"language,omitempty" validate:"omitempty,max=32"             example:"hi"`
}

// SendOutput is the assistant turn plus the conversation identity it produced
type SendOutput struct {
	ChatID     string  `json:"chat_id"    example:"6f1c2c9e-8d7a-4c1b-9a51-3f0e2b7d9c10"`
	Message    string  `json:"message"`
	Title      string  `json:"title"      example:"Job Search: Data Analyst in Pune"`
	Emoji      string  `json:"emoji"      example:"💼"`
	Intent     string  `json:"intent"     example:"job_search"`
	Language   string  `json:"language"   example:"en"`
	Confidence float64 `json:"confidence" example:"0.5"`
}

// MessagesQuery reads one conversation on behalf of its owner
type MessagesQuery struct {
	ChatID string `json:"chat_id" validate:"required"`
	UserID string `json:"user_id" validate:"required,max=128"`
}

// ChatsQuery lists a user's conversations
type ChatsQuery struct {
	UserID string `json:"user_id" validate:"required,max=128"`
	Limit  int    `json:"limit"   validate:"omitempty,min=1,max=200"`
}
