package v1

import (
	"time"

	"github.com/google/uuid"
)

// LocationReportRequest DTO для отчёта о позиции пользователя
// @Description DTO для отчёта о позиции пользователя
type LocationReportRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"latitude"`
	Longitude float64   `json:"longitude" validate:"longitude"`
	Timestamp time.Time `json:"timestamp" validate:"required"`
}

// PresenceRequest DTO для обновления онлайн-статуса
// @Description DTO для обновления онлайн-статуса
type PresenceRequest struct {
	IsOnline *bool `json:"is_online" validate:"required"`
}

// LocationResponse DTO позиции в ответах API
// @Description DTO позиции в ответах API
type LocationResponse struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID           uuid.UUID         `json:"id"`
	Name         string            `json:"name"`
	MobileNumber string            `json:"mobile_number"`
	Email        string            `json:"email,omitempty"`
	Age          int               `json:"age"`
	Gender       string            `json:"gender"`
	IsOnline     bool              `json:"is_online"`
	LastLocation *LocationResponse `json:"last_location,omitempty"`
}

// PublishAlertRequest DTO для публикации SOS-события
// @Description DTO для публикации SOS-события
type PublishAlertRequest struct {
	Name         string            `json:"name" validate:"required,min=2,max=255"`
	Email        string            `json:"email,omitempty" validate:"omitempty,email"`
	MobileNumber string            `json:"mobile_number" validate:"required"`
	Message      string            `json:"message" validate:"required"`
	Location     *CoordinateEntity `json:"location,omitempty"`
}

// CoordinateEntity DTO пары координат.
// Ноль - валидная координата (экватор, нулевой меридиан), поэтому
// required здесь не используется: для float64 он отвергает ноль.
type CoordinateEntity struct {
	Latitude  float64 `json:"latitude" validate:"latitude"`
	Longitude float64 `json:"longitude" validate:"longitude"`
}

// ComputeRouteRequest DTO для расчёта маршрута
// @Description DTO для расчёта маршрута
type ComputeRouteRequest struct {
	Origin      *CoordinateEntity `json:"origin"`
	Destination *CoordinateEntity `json:"destination"`
	Mode        string            `json:"mode" validate:"omitempty,oneof=driving walking cycling"`
}

// RouteLegResponse DTO участка маршрута
// @Description DTO участка маршрута
type RouteLegResponse struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Summary         string  `json:"summary,omitempty"`
}

// RouteResponse DTO для ответа с маршрутом
// @Description DTO для ответа с маршрутом
type RouteResponse struct {
	DistanceMeters  float64            `json:"distance_meters"`
	DurationSeconds float64            `json:"duration_seconds"`
	Geometry        string             `json:"geometry"`
	Legs            []RouteLegResponse `json:"legs"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	OnlineCount int `json:"online_count"`
}
