package models

// AlertEvent - SOS-событие. Эфемерное: создаётся при публикации, доставляется
// всем подключённым подписчикам и отбрасывается, в бд не сохраняется.
type AlertEvent struct {
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	MobileNumber string    `json:"mobile_number"`
	Message      string    `json:"message"`
	Location     *Location `json:"location,omitempty"`
}
