package models

import (
	"time"

	"github.com/google/uuid"
)

// Location - последняя известная позиция пользователя.
// Заменяется целиком при каждом обновлении, никогда не мержится.
type Location struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Timestamp time.Time `json:"timestamp"`
}

// User представляет отслеживаемого пользователя ростера.
// Регистрация происходит вне этого сервиса, здесь пользователи только читаются
// и у них обновляются позиция и онлайн-статус.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	MobileNumber string    `json:"mobile_number"`
	Email        string    `json:"email,omitempty"`
	Age          int       `json:"age"`
	Gender       string    `json:"gender"`
	IsOnline     bool      `json:"is_online"`
	// nil означает, что позиция ещё не сообщалась. (0,0) не является sentinel-значением.
	LastLocation *Location `json:"last_location,omitempty"`
}
