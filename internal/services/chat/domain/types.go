// Package domain holds chat DTOs and the service contract
package domain

import "time"

// Role is who authored a message
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Chat summarizes one stored conversation
type Chat struct {
	ID        string    `json:"id"         example:"6f1c2c9e-8d7a-4c1b-9a51-3f0e2b7d9c10"`
	Title     string    `json:"title"      example:"Job Search: Data Analyst in Pune"`
	Emoji     string    `json:"emoji"      example:"💼"`
	CreatedAt time.Time `json:"created_at" example:"2026-10-01T09:30:00Z"`
	UpdatedAt time.Time `json:"updated_at" example:"2026-10-01T09:35:00Z"`
}

// Message is one stored turn
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"       example:"assistant"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at" example:"2026-10-01T09:30:00Z"`
}
