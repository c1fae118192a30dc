package v1

import (
	"time"

	"github.com/shenikar/sos_tracking_system/internal/models"
)

// DTOToAlertEvent преобразует DTO публикации в доменное событие
func DTOToAlertEvent(dto PublishAlertRequest) models.AlertEvent {
	event := models.AlertEvent{
		Name:         dto.Name,
		Email:        dto.Email,
		MobileNumber: dto.MobileNumber,
		Message:      dto.Message,
	}
	if dto.Location != nil {
		event.Location = &models.Location{
			Latitude:  dto.Location.Latitude,
			Longitude: dto.Location.Longitude,
			Timestamp: time.Now().UTC(),
		}
	}
	return event
}

// DTOToRouteRequest преобразует DTO в доменный запрос маршрута
func DTOToRouteRequest(dto ComputeRouteRequest) models.RouteRequest {
	req := models.RouteRequest{
		Mode: models.TravelMode(dto.Mode),
	}
	if dto.Mode == "" {
		req.Mode = models.ModeDriving
	}
	if dto.Origin != nil {
		req.Origin = &models.Coordinate{
			Latitude:  dto.Origin.Latitude,
			Longitude: dto.Origin.Longitude,
		}
	}
	if dto.Destination != nil {
		req.Destination = &models.Coordinate{
			Latitude:  dto.Destination.Latitude,
			Longitude: dto.Destination.Longitude,
		}
	}
	return req
}

// ModelToUserResponse преобразует доменную модель в DTO для ответа
func ModelToUserResponse(model *models.User) *UserResponse {
	resp := &UserResponse{
		ID:           model.ID,
		Name:         model.Name,
		MobileNumber: model.MobileNumber,
		Email:        model.Email,
		Age:          model.Age,
		Gender:       model.Gender,
		IsOnline:     model.IsOnline,
	}
	if model.LastLocation != nil {
		resp.LastLocation = &LocationResponse{
			Latitude:  model.LastLocation.Latitude,
			Longitude: model.LastLocation.Longitude,
			Timestamp: model.LastLocation.Timestamp,
		}
	}
	return resp
}

// ModelsToUserResponses преобразует слайс моделей в слайс DTO
func ModelsToUserResponses(models []*models.User) []*UserResponse {
	responses := make([]*UserResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToUserResponse(model)
	}
	return responses
}

// ModelToRouteResponse преобразует результат маршрута в DTO для ответа
func ModelToRouteResponse(model *models.RouteResult) *RouteResponse {
	resp := &RouteResponse{
		DistanceMeters:  model.DistanceMeters,
		DurationSeconds: model.DurationSeconds,
		Geometry:        model.Geometry,
		Legs:            make([]RouteLegResponse, 0, len(model.Legs)),
	}
	for _, leg := range model.Legs {
		resp.Legs = append(resp.Legs, RouteLegResponse{
			DistanceMeters:  leg.DistanceMeters,
			DurationSeconds: leg.DurationSeconds,
			Summary:         leg.Summary,
		})
	}
	return resp
}
