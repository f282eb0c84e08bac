package repositories

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"handover-crm/internal/entities"
)

type HistoryRepositoryInterface interface {
	Append(ctx context.Context, entry entities.HistoryEntry) error
	ListByHandover(ctx context.Context, handoverID string) ([]entities.HistoryEntry, error)
}

// HistoryRepository - журнал изменений по хэндоверам, живёт в памяти.
type HistoryRepository struct {
	mu      sync.RWMutex
	entries map[string][]entities.HistoryEntry
	logger  *zap.Logger
}

func NewHistoryRepository(logger *zap.Logger) HistoryRepositoryInterface {
	return &HistoryRepository{
		entries: make(map[string][]entities.HistoryEntry),
		logger:  logger,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, entry entities.HistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	// Записи могут прийти не в порядке переключений, журнал держим отсортированным по Seq.
	list := r.entries[entry.HandoverID]
	i := sort.Search(len(list), func(i int) bool { return list[i].Seq > entry.Seq })
	list = append(list, entities.HistoryEntry{})
	copy(list[i+1:], list[i:])
	list[i] = entry
	r.entries[entry.HandoverID] = list
	r.logger.Debug("Запись истории добавлена",
		zap.String("handover_id", entry.HandoverID),
		zap.String("task_id", entry.TaskID),
	)
	return nil
}

// ListByHandover возвращает копию журнала в порядке переключений.
func (r *HistoryRepository) ListByHandover(ctx context.Context, handoverID string) ([]entities.HistoryEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	src := r.entries[handoverID]
	out := make([]entities.HistoryEntry, len(src))
	copy(out, src)
	return out, nil
}
