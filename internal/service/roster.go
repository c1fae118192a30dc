package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_tracking_system/internal/models"
	"github.com/shenikar/sos_tracking_system/internal/store"
	"github.com/sirupsen/logrus"
)

// ErrServiceUnavailable - ростер недоступен, повтор на стороне вызывающего.
var ErrServiceUnavailable = errors.New("roster service unavailable")

// UserRepository определяет контракт для работы с бд пользователей
type UserRepository interface {
	ListUsers(ctx context.Context) ([]*models.User, error)
	SaveLocation(ctx context.Context, userID uuid.UUID, loc models.Location) error
	SetOnline(ctx context.Context, userID uuid.UUID, online bool) error
	GetRosterFromCache(ctx context.Context) ([]*models.User, error)
	SetRosterCache(ctx context.Context, users []*models.User) error
	InvalidateRosterCache(ctx context.Context) error
}

// RosterService определяет контракт для бизнес-логики ростера
type RosterService interface {
	LoadRoster(ctx context.Context) error
	ListUsers(ctx context.Context) ([]*models.User, error)
	ReportLocation(ctx context.Context, userID uuid.UUID, lat, lng float64, ts time.Time) error
	SetPresence(ctx context.Context, userID uuid.UUID, online bool) error
	CountOnline(ctx context.Context) (int, error)
}

type rosterService struct {
	store  *store.LocationStore
	repo   UserRepository
	logger *logrus.Logger
}

func NewRosterService(locStore *store.LocationStore, repo UserRepository, logger *logrus.Logger) RosterService {
	return &rosterService{
		store:  locStore,
		repo:   repo,
		logger: logger,
	}
}

// LoadRoster загружает ростер из бд в стор при старте сервиса
func (s *rosterService) LoadRoster(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "roster",
		"method":  "LoadRoster",
	})
	log.Info("Loading roster from repository")

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to load roster from repository")
		return fmt.Errorf("service: could not load roster: %w", err)
	}

	s.store.Seed(users)
	log.WithField("count", len(users)).Info("Roster loaded successfully")
	return nil
}

// ListUsers возвращает весь ростер с последними позициями.
// Снапшот стора - источник истины, кэш в Redis спасает от шторма запросов.
func (s *rosterService) ListUsers(ctx context.Context) ([]*models.User, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "roster",
		"method":  "ListUsers",
	})

	if s.store == nil {
		log.Error("Location store is not initialized")
		return nil, ErrServiceUnavailable
	}

	cached, err := s.repo.GetRosterFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read roster cache, falling back to store")
	} else if cached != nil {
		log.WithField("count", len(cached)).Debug("Roster served from cache")
		return cached, nil
	}

	users := s.store.Snapshot()
	if err := s.repo.SetRosterCache(ctx, users); err != nil {
		log.WithError(err).Warn("Failed to cache roster")
	}

	log.WithField("count", len(users)).Info("Roster listed successfully")
	return users, nil
}

// ReportLocation принимает отчёт о позиции. Инвариант монотонности меток
// проверяется стором до какой-либо записи в бд; устаревший отчёт отклоняется.
func (s *rosterService) ReportLocation(ctx context.Context, userID uuid.UUID, lat, lng float64, ts time.Time) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "roster",
		"method":  "ReportLocation",
		"user_id": userID,
	})

	if err := s.store.UpsertLocation(userID, lat, lng, ts); err != nil {
		if errors.Is(err, store.ErrStaleTimestamp) {
			// Не фатально: устаревший отчёт просто игнорируется
			log.WithField("timestamp", ts).Warn("Stale location report rejected")
		} else {
			log.WithError(err).Error("Failed to upsert location in store")
		}
		return fmt.Errorf("service: could not report location: %w", err)
	}

	// Запись в бд - best-effort: стор уже обновлён, доставка ростера не страдает
	if err := s.repo.SaveLocation(ctx, userID, models.Location{Latitude: lat, Longitude: lng, Timestamp: ts}); err != nil {
		log.WithError(err).Warn("Failed to persist location")
	}
	if err := s.repo.InvalidateRosterCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate roster cache")
	}

	log.Debug("Location reported successfully")
	return nil
}

// SetPresence выставляет онлайн-статус пользователя
func (s *rosterService) SetPresence(ctx context.Context, userID uuid.UUID, online bool) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "roster",
		"method":  "SetPresence",
		"user_id": userID,
		"online":  online,
	})

	if err := s.store.SetOnline(userID, online); err != nil {
		log.WithError(err).Warn("Failed to set presence in store")
		return fmt.Errorf("service: could not set presence: %w", err)
	}

	if err := s.repo.SetOnline(ctx, userID, online); err != nil {
		log.WithError(err).Warn("Failed to persist presence")
	}
	if err := s.repo.InvalidateRosterCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate roster cache")
	}

	log.Info("Presence updated successfully")
	return nil
}

// CountOnline возвращает число пользователей онлайн
func (s *rosterService) CountOnline(ctx context.Context) (int, error) {
	if s.store == nil {
		return 0, ErrServiceUnavailable
	}
	return s.store.CountOnline(), nil
}
