package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/sos_tracking_system/internal/alert"
	"github.com/shenikar/sos_tracking_system/internal/config"
	"github.com/shenikar/sos_tracking_system/internal/models"
	"github.com/shenikar/sos_tracking_system/internal/route"
	"github.com/shenikar/sos_tracking_system/internal/service"
	"github.com/shenikar/sos_tracking_system/internal/service/mocks"
	"github.com/shenikar/sos_tracking_system/internal/store"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	roster *mocks.MockRosterService
	alerts *mocks.MockAlertService
	routes *mocks.MockRouteService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := testMocks{
		roster: mocks.NewMockRosterService(ctrl),
		alerts: mocks.NewMockAlertService(ctrl),
		routes: mocks.NewMockRouteService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		APIKeys: []string{"test-api-key"},
	}

	hub := alert.NewHub(16, logger)
	handler := NewHandler(m.roster, m.alerts, m.routes, hub, logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader, headers ...map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListUsers_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expectedUsers := []*models.User{
		{
			ID:           uuid.New(),
			Name:         "Ivan",
			MobileNumber: "+79001234567",
			IsOnline:     true,
			LastLocation: &models.Location{Latitude: 37.0, Longitude: -122.0, Timestamp: time.Unix(100, 0)},
		},
		{ID: uuid.New(), Name: "Anna"},
	}

	m.roster.EXPECT().ListUsers(gomock.Any()).Return(expectedUsers, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/users", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []UserResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, expectedUsers[0].Name, resp[0].Name)
	require.NotNil(t, resp[0].LastLocation)
	assert.Equal(t, 37.0, resp[0].LastLocation.Latitude)
	// Пользователь без позиции отдается без поля last_location
	assert.Nil(t, resp[1].LastLocation)
}

func TestListUsers_ServiceUnavailable(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.roster.EXPECT().ListUsers(gomock.Any()).Return(nil, service.ErrServiceUnavailable).Times(1)

	w := makeRequest(router, "GET", "/api/v1/users", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "roster unavailable")
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.roster.EXPECT().CountOnline(gomock.Any()).Return(42, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/users/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 42, resp.OnlineCount)
}

func TestReportLocation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	ts := time.Unix(100, 0).UTC()
	reqBody := LocationReportRequest{
		UserID:    userID,
		Latitude:  37.0,
		Longitude: -122.0,
		Timestamp: ts,
	}

	m.roster.EXPECT().
		ReportLocation(gomock.Any(), userID, 37.0, -122.0, ts).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/locations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReportLocation_ZeroCoordinateAccepted(t *testing.T) {
	// Гринвич: долгота 0 - валидная координата, а не отсутствие значения
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	ts := time.Unix(100, 0).UTC()
	reqBody := LocationReportRequest{
		UserID:    userID,
		Latitude:  51.47,
		Longitude: 0,
		Timestamp: ts,
	}

	m.roster.EXPECT().
		ReportLocation(gomock.Any(), userID, 51.47, 0.0, ts).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/locations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestReportLocation_Stale(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LocationReportRequest{
		UserID:    uuid.New(),
		Latitude:  37.0,
		Longitude: -122.0,
		Timestamp: time.Unix(90, 0),
	}

	m.roster.EXPECT().
		ReportLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not report location: %w", store.ErrStaleTimestamp)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/locations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "stale location report")
}

func TestReportLocation_UserNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LocationReportRequest{
		UserID:    uuid.New(),
		Latitude:  37.0,
		Longitude: -122.0,
		Timestamp: time.Unix(100, 0),
	}

	m.roster.EXPECT().
		ReportLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("service: could not report location: %w", store.ErrUserNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/locations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "user not found")
}

func TestReportLocation_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := LocationReportRequest{ // Отсутствует UserID
		Latitude:  37.0,
		Longitude: -122.0,
		Timestamp: time.Unix(100, 0),
	}

	m.roster.EXPECT().ReportLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/locations", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'UserID' failed on the 'required' tag")
}

func TestReportLocation_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.roster.EXPECT().ReportLocation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/locations", bytes.NewBufferString(`{"user_id": "x"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestSetPresence_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	online := true
	reqBody := PresenceRequest{IsOnline: &online}

	m.roster.EXPECT().SetPresence(gomock.Any(), userID, true).Return(nil).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/users/%s/presence", userID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestSetPresence_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)
	online := true
	reqBody := PresenceRequest{IsOnline: &online}

	m.roster.EXPECT().SetPresence(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/users/invalid-uuid/presence", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid user ID")
}

func TestSetPresence_UserNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	userID := uuid.New()
	online := false
	reqBody := PresenceRequest{IsOnline: &online}

	m.roster.EXPECT().
		SetPresence(gomock.Any(), userID, false).
		Return(fmt.Errorf("service: could not set presence: %w", store.ErrUserNotFound)).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/users/%s/presence", userID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPublishAlert_Accepted(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := PublishAlertRequest{
		Name:         "Ivan",
		Email:        "ivan@example.com",
		MobileNumber: "+79001234567",
		Message:      "help",
		Location:     &CoordinateEntity{Latitude: 55.75, Longitude: 37.61},
	}

	m.alerts.EXPECT().
		PublishAlert(gomock.Any(), gomock.Any()).
		Do(func(_ any, event models.AlertEvent) {
			assert.Equal(t, reqBody.Name, event.Name)
			assert.Equal(t, reqBody.Message, event.Message)
			require.NotNil(t, event.Location)
			assert.Equal(t, 55.75, event.Location.Latitude)
		}).
		Return(nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusAccepted, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"accepted"`)
}

func TestPublishAlert_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := PublishAlertRequest{ // Отсутствует Name
		MobileNumber: "+79001234567",
		Message:      "help",
	}

	m.alerts.EXPECT().PublishAlert(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/alerts", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Name' failed on the 'required' tag")
}

func TestComputeRoute_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ComputeRouteRequest{
		Origin:      &CoordinateEntity{Latitude: 55.75, Longitude: 37.61},
		Destination: &CoordinateEntity{Latitude: 59.93, Longitude: 30.33},
		Mode:        "driving",
	}
	expectedResult := &models.RouteResult{
		DistanceMeters:  712345.6,
		DurationSeconds: 28712.3,
		Geometry:        "abc123",
		Legs:            []models.RouteLeg{{DistanceMeters: 712345.6, DurationSeconds: 28712.3, Summary: "M-11"}},
	}

	m.routes.EXPECT().
		ComputeRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.RouteRequest) (*models.RouteResult, error) {
			assert.Equal(t, models.ModeDriving, req.Mode)
			require.NotNil(t, req.Origin)
			assert.Equal(t, 55.75, req.Origin.Latitude)
			return expectedResult, nil
		}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp RouteResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, expectedResult.Geometry, resp.Geometry)
	require.Len(t, resp.Legs, 1)
}

func TestComputeRoute_DefaultModeIsDriving(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ComputeRouteRequest{
		Origin:      &CoordinateEntity{Latitude: 55.75, Longitude: 37.61},
		Destination: &CoordinateEntity{Latitude: 59.93, Longitude: 30.33},
	}

	m.routes.EXPECT().
		ComputeRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.RouteRequest) (*models.RouteResult, error) {
			assert.Equal(t, models.ModeDriving, req.Mode)
			return &models.RouteResult{}, nil
		}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestComputeRoute_ZeroCoordinateAccepted(t *testing.T) {
	// Точка на экваторе и нулевом меридиане проходит валидацию
	_, m, router := newTestHandler(t)
	reqBody := ComputeRouteRequest{
		Origin:      &CoordinateEntity{Latitude: 0, Longitude: 0},
		Destination: &CoordinateEntity{Latitude: 51.47, Longitude: 0},
		Mode:        "walking",
	}

	m.routes.EXPECT().
		ComputeRoute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, req models.RouteRequest) (*models.RouteResult, error) {
			require.NotNil(t, req.Origin)
			assert.Equal(t, 0.0, req.Origin.Latitude)
			assert.Equal(t, 0.0, req.Origin.Longitude)
			return &models.RouteResult{}, nil
		}).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestComputeRoute_MissingEndpoint(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ComputeRouteRequest{ // Origin отсутствует
		Destination: &CoordinateEntity{Latitude: 1.0, Longitude: 1.0},
		Mode:        "driving",
	}

	m.routes.EXPECT().ComputeRoute(gomock.Any(), gomock.Any()).Return(nil, route.ErrMissingEndpoint).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing route endpoint")
}

func TestComputeRoute_NoRoute(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ComputeRouteRequest{
		Origin:      &CoordinateEntity{Latitude: 55.75, Longitude: 37.61},
		Destination: &CoordinateEntity{Latitude: -37.81, Longitude: 144.96},
		Mode:        "driving",
	}

	m.routes.EXPECT().ComputeRoute(gomock.Any(), gomock.Any()).Return(nil, route.ErrNoRoute).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "no route between endpoints")
}

func TestComputeRoute_ProviderUnavailable(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ComputeRouteRequest{
		Origin:      &CoordinateEntity{Latitude: 55.75, Longitude: 37.61},
		Destination: &CoordinateEntity{Latitude: 59.93, Longitude: 30.33},
		Mode:        "driving",
	}

	m.routes.EXPECT().ComputeRoute(gomock.Any(), gomock.Any()).Return(nil, route.ErrProviderUnavailable).Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "routing provider unavailable")
}

func TestComputeRoute_InvalidMode(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := ComputeRouteRequest{
		Origin:      &CoordinateEntity{Latitude: 55.75, Longitude: 37.61},
		Destination: &CoordinateEntity{Latitude: 59.93, Longitude: 30.33},
		Mode:        "teleport",
	}

	m.routes.EXPECT().ComputeRoute(gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/routes", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Mode' failed on the 'oneof' tag")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestAPIKeyAuthMiddleware_Success(t *testing.T) {
	// Создаем Gin-роутер и добавляем middleware
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_BearerToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"Authorization": "Bearer valid-key"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIKeyAuthMiddleware_MissingKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil) // Нет API ключа
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "API key required")
}

func TestAPIKeyAuthMiddleware_InvalidKey(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		APIKeys: []string{"valid-key"},
	}

	router.Use(APIKeyAuthMiddleware(cfg, logger))
	router.GET("/test", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := makeRequest(router, "GET", "/test", nil, map[string]string{"X-API-Key": "invalid-key"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid API key")
}

func TestErrorsIs_WrappedServiceErrors(t *testing.T) {
	// Хендлеры различают ошибки через errors.Is даже после обертывания
	wrapped := fmt.Errorf("service: could not report location: %w", store.ErrStaleTimestamp)
	assert.True(t, errors.Is(wrapped, store.ErrStaleTimestamp))
}
