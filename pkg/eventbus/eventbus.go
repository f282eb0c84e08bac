package eventbus

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event представляет собой любое событие в системе.
type Event interface {
	Name() string
}

// Listener - это обработчик (слушатель) событий.
type Listener func(ctx context.Context, event Event) error

// Bus - шина событий. Слушатели вызываются асинхронно.
type Bus struct {
	listeners map[string][]Listener
	mu        sync.RWMutex
	inflight  sync.WaitGroup
	timeout   time.Duration
	logger    *zap.Logger
}

// New создает новую шину событий.
func New(logger *zap.Logger) *Bus {
	return &Bus{
		listeners: make(map[string][]Listener),
		timeout:   time.Minute,
		logger:    logger,
	}
}

// Subscribe подписывает слушателя на определенное событие.
func (b *Bus) Subscribe(eventName string, listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners[eventName] = append(b.listeners[eventName], listener)
}

// Publish публикует событие. Каждый подписчик получает его в своей горутине
// с контекстом, ограниченным таймаутом шины.
func (b *Bus) Publish(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	eventName := event.Name()
	for _, listener := range b.listeners[eventName] {
		b.inflight.Add(1)
		go func(l Listener) {
			defer b.inflight.Done()

			// Контекст запроса к этому моменту может быть уже отменён.
			ctxWithTimeout, cancel := context.WithTimeout(context.Background(), b.timeout)
			defer cancel()

			if err := l(ctxWithTimeout, event); err != nil {
				b.logger.Error("Ошибка в обработчике события",
					zap.String("event", eventName),
					zap.Error(err),
				)
			}
		}(listener)
	}
}

// PublishSync вызывает подписчиков по очереди в горутине вызывающего,
// в порядке подписки. Когда метод вернулся, все обработчики уже отработали.
// Ошибки обработчиков логируются и возвращаются вместе.
func (b *Bus) PublishSync(ctx context.Context, event Event) error {
	eventName := event.Name()

	b.mu.RLock()
	listeners := append([]Listener(nil), b.listeners[eventName]...)
	b.mu.RUnlock()

	var errs []error
	for _, l := range listeners {
		if err := l(ctx, event); err != nil {
			b.logger.Error("Ошибка в обработчике события",
				zap.String("event", eventName),
				zap.Error(err),
			)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Wait дожидается завершения всех запущенных обработчиков.
func (b *Bus) Wait() {
	b.inflight.Wait()
}
