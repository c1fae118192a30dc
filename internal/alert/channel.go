package alert

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/shenikar/sos_tracking_system/internal/models"
	"github.com/sirupsen/logrus"
)

const defaultBufferSize = 16

// Subscription - подписка одного подключённого наблюдателя на SOS-события.
// Новое соединение - новая подписка, переоткрытие закрытой подписки невозможно.
type Subscription struct {
	id     uuid.UUID
	events chan models.AlertEvent
	hub    *Hub
}

// Events возвращает поток событий подписчика. Канал закрывается при отписке.
func (s *Subscription) Events() <-chan models.AlertEvent {
	return s.events
}

// Close отписывает подписчика. Идемпотентна, безопасна в любой момент.
func (s *Subscription) Close() {
	s.hub.Unsubscribe(s)
}

// Hub - канал рассылки SOS-событий всем подключённым подписчикам.
//
// Политика доставки: best-effort, не более одного раза на подписчика,
// FIFO в рамках одного издателя. Очередь каждого подписчика ограничена,
// при переполнении вытесняется самое старое событие (drop-oldest), чтобы
// медленный подписчик не блокировал издателя и остальных подписчиков.
type Hub struct {
	mu      sync.RWMutex
	subs    map[uuid.UUID]*Subscription
	bufSize int
	logger  *logrus.Logger
	dropped atomic.Uint64
}

func NewHub(bufSize int, logger *logrus.Logger) *Hub {
	if bufSize <= 0 {
		bufSize = defaultBufferSize
	}
	return &Hub{
		subs:    make(map[uuid.UUID]*Subscription),
		bufSize: bufSize,
		logger:  logger,
	}
}

// Subscribe регистрирует нового подписчика и возвращает его подписку.
func (h *Hub) Subscribe() *Subscription {
	sub := &Subscription{
		id:     uuid.New(),
		events: make(chan models.AlertEvent, h.bufSize),
		hub:    h,
	}

	h.mu.Lock()
	h.subs[sub.id] = sub
	size := len(h.subs)
	h.mu.Unlock()

	h.logger.WithFields(logrus.Fields{
		"subscriber_id": sub.id,
		"subscribers":   size,
	}).Info("Subscriber connected")
	return sub
}

// Unsubscribe удаляет подписчика из рассылки и закрывает его канал.
// Идемпотентна: повторный вызов для той же подписки - no-op.
func (h *Hub) Unsubscribe(sub *Subscription) {
	h.mu.Lock()
	_, ok := h.subs[sub.id]
	if ok {
		delete(h.subs, sub.id)
		// Закрываем под write-блокировкой: Publish шлёт только под read-блокировкой,
		// поэтому отправка в закрытый канал невозможна.
		close(sub.events)
	}
	size := len(h.subs)
	h.mu.Unlock()

	if ok {
		h.logger.WithFields(logrus.Fields{
			"subscriber_id": sub.id,
			"subscribers":   size,
		}).Info("Subscriber disconnected")
	}
}

// Publish рассылает событие всем текущим подписчикам. Никогда не блокируется:
// при переполненной очереди подписчика вытесняется самое старое событие.
func (h *Hub) Publish(event models.AlertEvent) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subs {
		select {
		case sub.events <- event:
		default:
			// Очередь полна: выталкиваем самое старое событие и пробуем снова.
			select {
			case <-sub.events:
			default:
			}
			select {
			case sub.events <- event:
			default:
			}
			h.dropped.Add(1)
			h.logger.WithField("subscriber_id", sub.id).Warn("Subscriber queue overflow, oldest alert dropped")
		}
	}
}

// Len возвращает число текущих подписчиков.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

// Dropped возвращает число вытесненных из очередей событий.
func (h *Hub) Dropped() uint64 {
	return h.dropped.Load()
}
