package domain

import "time"

type NoticeLevel string

const (
	NoticeLevelError   NoticeLevel = "error"
	NoticeLevelSuccess NoticeLevel = "success"
)

// Notice é uma mensagem transitória exibida ao usuário após uma operação
type Notice struct {
	ID          string      `json:"id"`
	OwnerID     int         `json:"owner_id"`
	Level       NoticeLevel `json:"level"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"created_at"`
}
