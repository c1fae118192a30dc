package route

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shenikar/sos_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingEndpoint - отсутствует начальная или конечная точка. Провайдер не вызывается.
	ErrMissingEndpoint = errors.New("route endpoint is missing")
	// ErrInvalidCoordinate - координаты точки вне допустимого диапазона.
	ErrInvalidCoordinate = errors.New("route coordinate out of range")
	// ErrUnsupportedMode - режим передвижения вне поддерживаемого набора.
	ErrUnsupportedMode = errors.New("unsupported travel mode")
	// ErrNoRoute - провайдер не нашёл маршрут между точками.
	ErrNoRoute = errors.New("no route between endpoints")
	// ErrProviderUnavailable - таймаут или транспортная ошибка при обращении к провайдеру.
	ErrProviderUnavailable = errors.New("routing provider unavailable")
)

// Gateway - шлюз к внешнему провайдеру маршрутизации (OSRM-совместимый API).
// Сам маршрут не вычисляет: валидирует вход, пробрасывает запрос и
// нормализует ответ/ошибку провайдера.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	logger     *logrus.Logger
}

func NewGateway(baseURL string, timeout time.Duration, logger *logrus.Logger) *Gateway {
	return &Gateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// osrmResponse - формат ответа OSRM route API.
type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry string  `json:"geometry"`
		Legs     []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Summary  string  `json:"summary"`
		} `json:"legs"`
	} `json:"routes"`
}

func validCoordinate(c *models.Coordinate) bool {
	return c.Latitude >= -90 && c.Latitude <= 90 && c.Longitude >= -180 && c.Longitude <= 180
}

// ComputeRoute запрашивает маршрут между двумя точками. Идемпотентна,
// повторные вызовы с теми же аргументами допустимы. Отмена контекста
// прерывает запрос к провайдеру без утечки ресурсов.
func (g *Gateway) ComputeRoute(ctx context.Context, req models.RouteRequest) (*models.RouteResult, error) {
	log := g.logger.WithFields(logrus.Fields{
		"component": "route_gateway",
		"mode":      req.Mode,
	})

	// Fail-fast до обращения к провайдеру: отсутствие точки - это не (0,0)
	if req.Origin == nil || req.Destination == nil {
		return nil, ErrMissingEndpoint
	}
	if !validCoordinate(req.Origin) || !validCoordinate(req.Destination) {
		return nil, ErrInvalidCoordinate
	}
	if !req.Mode.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMode, req.Mode)
	}

	// OSRM принимает координаты в порядке lon,lat
	endpoint := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f",
		g.baseURL,
		url.PathEscape(string(req.Mode)),
		req.Origin.Longitude, req.Origin.Latitude,
		req.Destination.Longitude, req.Destination.Latitude,
	)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?overview=full&geometries=polyline", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider request: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		log.WithError(err).Warn("Routing provider request failed")
		return nil, fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		log.Warnf("Routing provider returned status %d", resp.StatusCode)
		return nil, fmt.Errorf("%w: status %d", ErrProviderUnavailable, resp.StatusCode)
	}

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		log.WithError(err).Warn("Failed to decode routing provider response")
		return nil, fmt.Errorf("%w: invalid response body", ErrProviderUnavailable)
	}

	switch decoded.Code {
	case "Ok":
	case "NoRoute", "NoSegment":
		return nil, ErrNoRoute
	default:
		log.Warnf("Routing provider returned code %q", decoded.Code)
		return nil, fmt.Errorf("%w: provider code %q", ErrProviderUnavailable, decoded.Code)
	}

	if len(decoded.Routes) == 0 {
		return nil, ErrNoRoute
	}

	best := decoded.Routes[0]
	result := &models.RouteResult{
		DistanceMeters:  best.Distance,
		DurationSeconds: best.Duration,
		Geometry:        best.Geometry,
		Legs:            make([]models.RouteLeg, 0, len(best.Legs)),
	}
	for _, leg := range best.Legs {
		result.Legs = append(result.Legs, models.RouteLeg{
			DistanceMeters:  leg.Distance,
			DurationSeconds: leg.Duration,
			Summary:         leg.Summary,
		})
	}

	log.WithFields(logrus.Fields{
		"distance_meters":  result.DistanceMeters,
		"duration_seconds": result.DurationSeconds,
	}).Debug("Route computed by provider")
	return result, nil
}
