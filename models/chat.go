package models

import "time"

// ChatTurn is one exchange kept in the per-user conversation context.
type ChatTurn struct {
	Rol   string    `json:"rol"` // "usuario" or "asistente"
	Texto string    `json:"texto"`
	Hora  time.Time `json:"hora"`
}

// ChatContext is the rolling conversation window stored in Redis.
type ChatContext struct {
	Turns []ChatTurn `json:"turns"`
}

// ChatRequest is the payload for POST /v1/chat.
type ChatRequest struct {
	Mensaje string `json:"mensaje" binding:"required"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Respuesta string `json:"respuesta"`
}
