package service

import (
	"context"

	"github.com/shenikar/sos_tracking_system/internal/models"
)

// RouteService определяет контракт расчёта маршрута между двумя точками.
// Реализуется шлюзом к внешнему провайдеру (internal/route).
type RouteService interface {
	ComputeRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResult, error)
}
