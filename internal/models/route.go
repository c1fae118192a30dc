package models

// TravelMode - способ передвижения для расчёта маршрута.
type TravelMode string

const (
	ModeDriving TravelMode = "driving"
	ModeWalking TravelMode = "walking"
	ModeCycling TravelMode = "cycling"
)

// Valid сообщает, входит ли режим в поддерживаемый набор.
func (m TravelMode) Valid() bool {
	switch m {
	case ModeDriving, ModeWalking, ModeCycling:
		return true
	}
	return false
}

// Coordinate - пара координат без временной метки.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// RouteRequest - запрос маршрута между двумя точками.
// nil у Origin/Destination означает отсутствие точки, а не (0,0).
type RouteRequest struct {
	Origin      *Coordinate `json:"origin"`
	Destination *Coordinate `json:"destination"`
	Mode        TravelMode  `json:"mode"`
}

// RouteLeg - участок маршрута.
type RouteLeg struct {
	DistanceMeters  float64 `json:"distance_meters"`
	DurationSeconds float64 `json:"duration_seconds"`
	Summary         string  `json:"summary,omitempty"`
}

// RouteResult - нормализованный ответ внешнего провайдера маршрутизации.
type RouteResult struct {
	DistanceMeters  float64    `json:"distance_meters"`
	DurationSeconds float64    `json:"duration_seconds"`
	Geometry        string     `json:"geometry"`
	Legs            []RouteLeg `json:"legs"`
}
