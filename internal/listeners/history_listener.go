package listeners

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"handover-crm/internal/entities"
	"handover-crm/internal/events"
	"handover-crm/internal/repositories"
	"handover-crm/pkg/eventbus"
)

// HistoryListener пишет в историю хэндовера переключения привязанных задач.
// Сам хэндовер при этом не меняется.
type HistoryListener struct {
	historyRepo repositories.HistoryRepositoryInterface
	logger      *zap.Logger
}

func NewHistoryListener(historyRepo repositories.HistoryRepositoryInterface, logger *zap.Logger) *HistoryListener {
	return &HistoryListener{historyRepo: historyRepo, logger: logger}
}

// Register подписывает слушателя на шину.
func (l *HistoryListener) Register(bus *eventbus.Bus) {
	bus.Subscribe(events.TaskStatusToggledEventName, l.Handle)
}

func (l *HistoryListener) Handle(ctx context.Context, event eventbus.Event) error {
	e, ok := event.(events.TaskStatusToggledEvent)
	if !ok {
		return fmt.Errorf("HistoryListener: неожиданный тип события %T", event)
	}

	if e.After.HandoverID == nil || *e.After.HandoverID == "" {
		l.logger.Debug("Задача не привязана к хэндоверу, история не пишется", zap.String("task_id", e.After.ID))
		return nil
	}

	entry := entities.HistoryEntry{
		HandoverID: *e.After.HandoverID,
		Seq:        e.Version,
		TaskID:     e.After.ID,
		TaskTitle:  e.After.Title,
		OldStatus:  e.Before.Status,
		NewStatus:  e.After.Status,
		CreatedAt:  e.ToggledAt,
	}
	if err := l.historyRepo.Append(ctx, entry); err != nil {
		return fmt.Errorf("не удалось записать историю хэндовера %s: %w", entry.HandoverID, err)
	}
	return nil
}
