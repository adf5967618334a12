package domain

import "time"

// PageStatus - состояние страницы админки
type PageStatus string

const (
	PageStatusIdle    PageStatus = "idle"
	PageStatusLoading PageStatus = "loading"
	PageStatusSuccess PageStatus = "success"
	PageStatusError   PageStatus = "error"
)

// PageState - снимок состояния страницы для одной сессии
type PageState struct {
	SessionID  string     `json:"session_id"`
	Page       string     `json:"page"`
	Operation  string     `json:"operation,omitempty"`
	Status     PageStatus `json:"status"`
	Message    string     `json:"message,omitempty"`
	StartedAt  *time.Time `json:"started_at,omitempty"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	UpdatedAt  time.Time  `json:"updated_at"`
}
