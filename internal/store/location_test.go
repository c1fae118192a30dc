package store

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/sos_tracking_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededStore(t *testing.T, users ...*models.User) *LocationStore {
	t.Helper()
	s := NewLocationStore()
	s.Seed(users)
	return s
}

func TestUpsertLocation_Success(t *testing.T) {
	userID := uuid.New()
	s := newSeededStore(t, &models.User{ID: userID, Name: "Иван"})
	ts := time.Now()

	err := s.UpsertLocation(userID, 37.0, -122.0, ts)
	require.NoError(t, err)

	snapshot := s.Snapshot()
	require.Len(t, snapshot, 1)
	require.NotNil(t, snapshot[0].LastLocation)
	assert.Equal(t, 37.0, snapshot[0].LastLocation.Latitude)
	assert.Equal(t, -122.0, snapshot[0].LastLocation.Longitude)
	assert.True(t, snapshot[0].IsOnline, "отчёт о позиции должен помечать пользователя онлайн")
}

func TestUpsertLocation_StaleRejected(t *testing.T) {
	userID := uuid.New()
	s := newSeededStore(t, &models.User{ID: userID})

	t1 := time.Unix(100, 0)
	t2 := time.Unix(90, 0)

	require.NoError(t, s.UpsertLocation(userID, 37.0, -122.0, t1))

	err := s.UpsertLocation(userID, 37.1, -122.1, t2)
	require.ErrorIs(t, err, ErrStaleTimestamp)

	// Старая позиция не должна быть затёрта
	snapshot := s.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, 37.0, snapshot[0].LastLocation.Latitude)
	assert.Equal(t, -122.0, snapshot[0].LastLocation.Longitude)
	assert.Equal(t, t1, snapshot[0].LastLocation.Timestamp)
}

func TestUpsertLocation_EqualTimestampAccepted(t *testing.T) {
	userID := uuid.New()
	s := newSeededStore(t, &models.User{ID: userID})
	ts := time.Unix(100, 0)

	require.NoError(t, s.UpsertLocation(userID, 37.0, -122.0, ts))
	// Метка не убывает, значит отчёт принимается
	require.NoError(t, s.UpsertLocation(userID, 38.0, -121.0, ts))

	snapshot := s.Snapshot()
	assert.Equal(t, 38.0, snapshot[0].LastLocation.Latitude)
}

func TestUpsertLocation_InvalidCoordinates(t *testing.T) {
	userID := uuid.New()
	s := newSeededStore(t, &models.User{ID: userID})
	ts := time.Now()

	assert.ErrorIs(t, s.UpsertLocation(userID, 91.0, 0, ts), ErrInvalidCoordinate)
	assert.ErrorIs(t, s.UpsertLocation(userID, -91.0, 0, ts), ErrInvalidCoordinate)
	assert.ErrorIs(t, s.UpsertLocation(userID, 0, 181.0, ts), ErrInvalidCoordinate)
	assert.ErrorIs(t, s.UpsertLocation(userID, 0, -181.0, ts), ErrInvalidCoordinate)
}

func TestUpsertLocation_UnknownUser(t *testing.T) {
	s := newSeededStore(t)
	err := s.UpsertLocation(uuid.New(), 10.0, 20.0, time.Now())
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSetOnline_IndependentOfLocation(t *testing.T) {
	userID := uuid.New()
	s := newSeededStore(t, &models.User{ID: userID})

	// Онлайн без позиции - новая сессия
	require.NoError(t, s.SetOnline(userID, true))
	snapshot := s.Snapshot()
	assert.True(t, snapshot[0].IsOnline)
	assert.Nil(t, snapshot[0].LastLocation)

	// Офлайн с сохранённой позицией - для отображения после дисконнекта
	require.NoError(t, s.UpsertLocation(userID, 55.75, 37.61, time.Now()))
	require.NoError(t, s.SetOnline(userID, false))
	snapshot = s.Snapshot()
	assert.False(t, snapshot[0].IsOnline)
	require.NotNil(t, snapshot[0].LastLocation)
	assert.Equal(t, 55.75, snapshot[0].LastLocation.Latitude)
}

func TestSnapshot_IsACopy(t *testing.T) {
	userID := uuid.New()
	s := newSeededStore(t, &models.User{ID: userID, Name: "Анна"})
	require.NoError(t, s.UpsertLocation(userID, 10.0, 20.0, time.Unix(100, 0)))

	snapshot := s.Snapshot()
	snapshot[0].Name = "изменено"
	snapshot[0].LastLocation.Latitude = 99.0

	fresh := s.Snapshot()
	assert.Equal(t, "Анна", fresh[0].Name)
	assert.Equal(t, 10.0, fresh[0].LastLocation.Latitude)
}

func TestCountOnline(t *testing.T) {
	u1, u2, u3 := uuid.New(), uuid.New(), uuid.New()
	s := newSeededStore(t,
		&models.User{ID: u1, IsOnline: true},
		&models.User{ID: u2},
		&models.User{ID: u3},
	)
	assert.Equal(t, 1, s.CountOnline())

	require.NoError(t, s.SetOnline(u2, true))
	assert.Equal(t, 2, s.CountOnline())

	require.NoError(t, s.SetOnline(u1, false))
	assert.Equal(t, 1, s.CountOnline())
}

func TestStore_ConcurrentReadersAndWriters(t *testing.T) {
	userID := uuid.New()
	s := newSeededStore(t, &models.User{ID: userID})

	var wg sync.WaitGroup
	start := time.Now()
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = s.UpsertLocation(userID, 10.0, 20.0, start.Add(time.Duration(n*100+j)*time.Millisecond))
			}
		}(i)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				for _, u := range s.Snapshot() {
					if u.LastLocation != nil {
						// Снапшот не должен содержать частично записанную позицию
						assert.Equal(t, 10.0, u.LastLocation.Latitude)
						assert.Equal(t, 20.0, u.LastLocation.Longitude)
					}
				}
			}
		}()
	}
	wg.Wait()
}
