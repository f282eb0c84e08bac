package repositories

import (
	"context"

	"go.uber.org/zap"

	"handover-crm/internal/entities"
	apperrors "handover-crm/pkg/errors"
	"handover-crm/pkg/listing"
	"handover-crm/pkg/types"
)

type HandoverRepositoryInterface interface {
	GetHandovers(ctx context.Context, filter types.Filter) ([]entities.Handover, error)
	FindHandover(ctx context.Context, id string) (*entities.Handover, error)
	Count(ctx context.Context) int
}

type HandoverRepository struct {
	store  *Store
	logger *zap.Logger
}

func NewHandoverRepository(store *Store, logger *zap.Logger) HandoverRepositoryInterface {
	return &HandoverRepository{store: store, logger: logger}
}

// Поиск по клиенту, ИНН и технике.
func handoverFields(h entities.Handover) []string {
	return []string{h.Client.Name, h.Client.INN, h.Equipment}
}

func handoverStatus(h entities.Handover) string { return h.Status }

func (r *HandoverRepository) GetHandovers(ctx context.Context, filter types.Filter) ([]entities.Handover, error) {
	res := listing.Filter(r.store.Handovers(), filter.Search, handoverFields,
		listing.Equals(filter.Value("status"), handoverStatus),
	)
	r.logger.Debug("GetHandovers",
		zap.String("search", filter.Search),
		zap.Any("filter", filter.Filter),
		zap.Int("found", len(res)),
	)
	return res, nil
}

func (r *HandoverRepository) FindHandover(ctx context.Context, id string) (*entities.Handover, error) {
	for _, h := range r.store.Handovers() {
		if h.ID == id {
			found := h
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *HandoverRepository) Count(ctx context.Context) int {
	return len(r.store.Handovers())
}
