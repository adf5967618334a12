package dto

import (
	"github.com/ecotravel-admin/internal/domain"
	"github.com/ecotravel-admin/internal/pkg/record"
)

// MutationResponse - результат создания, изменения или удаления
type MutationResponse struct {
	ID      string        `json:"id"`
	Message string        `json:"message"`
	Result  record.Record `json:"result,omitempty"`
}

// LocationListResponse - список локаций
type LocationListResponse struct {
	Locations []domain.Location `json:"locations"`
	Count     int               `json:"count"`
	Type      string            `json:"type,omitempty"`
}

// NearbyResponse - результат поиска локаций в радиусе
type NearbyResponse struct {
	Center    domain.Point            `json:"center"`
	RadiusKm  float64                 `json:"radius_km"`
	Locations []domain.NearbyLocation `json:"locations"`
	Count     int                     `json:"count"`
}

// TransportListResponse - список транспорта
type TransportListResponse struct {
	Transports []domain.Transport `json:"transports"`
	Count      int                `json:"count"`
}

// AuditListResponse - записи журнала действий
type AuditListResponse struct {
	Entries []domain.AuditEntry `json:"entries"`
	Count   int                 `json:"count"`
}

// PagesResponse - состояния страниц сессии
type PagesResponse struct {
	SessionID string             `json:"session_id,omitempty"`
	Pages     []domain.PageState `json:"pages"`
}
