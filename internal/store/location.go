package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_tracking_system/internal/models"
)

var (
	// ErrStaleTimestamp - отчёт о позиции старше уже сохранённого.
	ErrStaleTimestamp = errors.New("stale location timestamp")
	// ErrInvalidCoordinate - координаты вне диапазона [-90,90]/[-180,180].
	ErrInvalidCoordinate = errors.New("coordinate out of range")
	// ErrUserNotFound - пользователь не зарегистрирован в ростере.
	ErrUserNotFound = errors.New("user not found in roster")
)

// LocationStore хранит последнюю известную позицию и онлайн-статус каждого
// пользователя в памяти. Все мутации проходят через UpsertLocation/SetOnline,
// инвариант монотонности временных меток проверяется централизованно.
// Чтения не блокируют писателей дольше, чем на одно копирование снапшота.
type LocationStore struct {
	mu    sync.RWMutex
	users map[uuid.UUID]*models.User
}

func NewLocationStore() *LocationStore {
	return &LocationStore{
		users: make(map[uuid.UUID]*models.User),
	}
}

// Seed загружает ростер, например из бд при старте.
// Полностью заменяет текущее содержимое стора.
func (s *LocationStore) Seed(users []*models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[uuid.UUID]*models.User, len(users))
	for _, u := range users {
		cp := *u
		if u.LastLocation != nil {
			loc := *u.LastLocation
			cp.LastLocation = &loc
		}
		s.users[u.ID] = &cp
	}
}

// UpsertLocation заменяет позицию пользователя целиком и помечает его онлайн.
// Отчёт с меткой старше сохранённой отклоняется с ErrStaleTimestamp.
func (s *LocationStore) UpsertLocation(userID uuid.UUID, lat, lng float64, ts time.Time) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidCoordinate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}

	if u.LastLocation != nil && ts.Before(u.LastLocation.Timestamp) {
		return ErrStaleTimestamp
	}

	u.LastLocation = &models.Location{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: ts,
	}
	u.IsOnline = true
	return nil
}

// SetOnline выставляет онлайн-статус независимо от позиции: пользователь может
// быть онлайн без позиции (новая сессия) или офлайн с сохранённой позицией.
func (s *LocationStore) SetOnline(userID uuid.UUID, online bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[userID]
	if !ok {
		return ErrUserNotFound
	}
	u.IsOnline = online
	return nil
}

// Snapshot возвращает копию ростера. Писатели блокируются только на время копирования.
func (s *LocationStore) Snapshot() []*models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.User, 0, len(s.users))
	for _, u := range s.users {
		cp := *u
		if u.LastLocation != nil {
			loc := *u.LastLocation
			cp.LastLocation = &loc
		}
		out = append(out, &cp)
	}
	return out
}

// CountOnline возвращает число пользователей со статусом онлайн.
func (s *LocationStore) CountOnline() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, u := range s.users {
		if u.IsOnline {
			count++
		}
	}
	return count
}
