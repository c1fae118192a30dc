package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_tracking_system/internal/models"
	"github.com/shenikar/sos_tracking_system/internal/service"
)

const (
	rosterCacheKey = "roster:all"
	rosterCacheTTL = 30 * time.Second
)

type UserRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewUserRepository(db *pgxpool.Pool, redisClient *redis.Client) service.UserRepository {
	return &UserRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// ListUsers возвращает всех пользователей с последней известной позицией
func (r *UserRepository) ListUsers(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT
			id,
			name,
			mobile_number,
			COALESCE(email, ''),
			age,
			gender,
			is_online,
			ST_Y(last_location::geometry) as latitude,
			ST_X(last_location::geometry) as longitude,
			last_location_at
		FROM users
		ORDER BY created_at;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := make([]*models.User, 0)
	for rows.Next() {
		user := &models.User{}
		var lat, lng *float64
		var locatedAt *time.Time
		err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.MobileNumber,
			&user.Email,
			&user.Age,
			&user.Gender,
			&user.IsOnline,
			&lat,
			&lng,
			&locatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		// Позиция присутствует только если записаны и точка, и её метка
		if lat != nil && lng != nil && locatedAt != nil {
			user.LastLocation = &models.Location{
				Latitude:  *lat,
				Longitude: *lng,
				Timestamp: *locatedAt,
			}
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return users, nil
}

// SaveLocation записывает последнюю позицию пользователя в бд
func (r *UserRepository) SaveLocation(ctx context.Context, userID uuid.UUID, loc models.Location) error {
	query := `
		UPDATE users SET
			last_location = ST_SetSRID(ST_MakePoint($1, $2), 4326),
			last_location_at = $3,
			is_online = TRUE,
			updated_at = NOW()
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query, loc.Longitude, loc.Latitude, loc.Timestamp, userID)
	if err != nil {
		return fmt.Errorf("failed to save user location: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s not found for location update", userID)
	}
	return nil
}

// SetOnline обновляет онлайн-статус пользователя в бд
func (r *UserRepository) SetOnline(ctx context.Context, userID uuid.UUID, online bool) error {
	query := `
		UPDATE users SET
			is_online = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, online, userID)
	if err != nil {
		return fmt.Errorf("failed to set user online status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("user with id %s not found for presence update", userID)
	}
	return nil
}

// GetRosterFromCache пытается получить ростер из Redis
func (r *UserRepository) GetRosterFromCache(ctx context.Context) ([]*models.User, error) {
	val, err := r.redisClient.Get(ctx, rosterCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get roster from cache: %w", err)
	}

	users := make([]*models.User, 0)
	if err := json.Unmarshal(val, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster from cache: %w", err)
	}
	return users, nil
}

// SetRosterCache сохраняет ростер в Redis
func (r *UserRepository) SetRosterCache(ctx context.Context, users []*models.User) error {
	val, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("failed to marshal roster for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, rosterCacheKey, val, rosterCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set roster in cache: %w", err)
	}
	return nil
}

// InvalidateRosterCache удаляет ростер из Redis кэша
func (r *UserRepository) InvalidateRosterCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, rosterCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate roster cache: %w", err)
	}
	return nil
}
