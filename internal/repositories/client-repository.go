package repositories

import (
	"context"

	"go.uber.org/zap"

	"handover-crm/internal/entities"
	apperrors "handover-crm/pkg/errors"
	"handover-crm/pkg/listing"
	"handover-crm/pkg/types"
)

type ClientRepositoryInterface interface {
	GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, error)
	FindClient(ctx context.Context, id string) (*entities.Client, error)
	FindClientByINN(ctx context.Context, inn string) (*entities.Client, error)
	Count(ctx context.Context) int
}

type ClientRepository struct {
	store  *Store
	logger *zap.Logger
}

func NewClientRepository(store *Store, logger *zap.Logger) ClientRepositoryInterface {
	return &ClientRepository{store: store, logger: logger}
}

// Поиск по наименованию и ИНН.
func clientFields(c entities.Client) []string {
	return []string{c.Name, c.INN}
}

func (r *ClientRepository) GetClients(ctx context.Context, filter types.Filter) ([]entities.Client, error) {
	res := listing.Filter(r.store.Clients(), filter.Search, clientFields)
	r.logger.Debug("GetClients", zap.String("search", filter.Search), zap.Int("found", len(res)))
	return res, nil
}

func (r *ClientRepository) FindClient(ctx context.Context, id string) (*entities.Client, error) {
	for _, c := range r.store.Clients() {
		if c.ID == id {
			found := c
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ClientRepository) FindClientByINN(ctx context.Context, inn string) (*entities.Client, error) {
	for _, c := range r.store.Clients() {
		if c.INN == inn {
			found := c
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *ClientRepository) Count(ctx context.Context) int {
	return len(r.store.Clients())
}
