package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/shenikar/sos_tracking_system/internal/models"
)

const eventSOSAlert = "sosAlert"

var upgrader = websocket.Upgrader{
	CheckOrigin:     func(r *http.Request) bool { return true },
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// wsMessage - конверт события для клиента: {"event":"sosAlert","data":{...}}
type wsMessage struct {
	Event string            `json:"event"`
	Data  models.AlertEvent `json:"data"`
}

// @Summary Subscribe to SOS alerts
// @Description Upgrade to a websocket connection and receive sosAlert events until the connection closes.
// @Tags Alerts
// @Success 101 "Switching Protocols"
// @Failure 400 {object} map[string]string "Upgrade failed"
// @Router /alerts/ws [get]
func (h *Handler) subscribeAlerts(c *gin.Context) {
	log := h.logger.WithField("method", "subscribeAlerts")

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.WithError(err).Warn("Failed to upgrade connection")
		return
	}

	sub := h.hub.Subscribe()

	// Клиент после рукопожатия ничего не шлёт: читаем только чтобы заметить
	// закрытие соединения. Ошибка чтения отписывает и завершает writer.
	go func() {
		defer sub.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	defer conn.Close()
	for event := range sub.Events() {
		if err := conn.WriteJSON(wsMessage{Event: eventSOSAlert, Data: event}); err != nil {
			// Транспортная ошибка локальна для этого соединения
			log.WithError(err).Warn("Failed to write alert to websocket")
			sub.Close()
			return
		}
	}
}
