package repositories

import (
	"context"

	"go.uber.org/zap"

	"handover-crm/internal/entities"
	apperrors "handover-crm/pkg/errors"
	"handover-crm/pkg/listing"
	"handover-crm/pkg/types"
)

type EquipmentRepositoryInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error)
	FindEquipment(ctx context.Context, id string) (*entities.Equipment, error)
	FindEquipmentBySerial(ctx context.Context, serial string) (*entities.Equipment, error)
	Count(ctx context.Context) int
}

type EquipmentRepository struct {
	store  *Store
	logger *zap.Logger
}

func NewEquipmentRepository(store *Store, logger *zap.Logger) EquipmentRepositoryInterface {
	return &EquipmentRepository{store: store, logger: logger}
}

// Поиск по названию, серийному номеру, владельцу и ИНН владельца.
func equipmentFields(e entities.Equipment) []string {
	return []string{e.Name, e.SerialNumber, e.Owner, e.OwnerINN}
}

func equipmentStatus(e entities.Equipment) string { return e.Status }

func (r *EquipmentRepository) GetEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	res := listing.Filter(r.store.Equipment(), filter.Search, equipmentFields,
		listing.Equals(filter.Value("status"), equipmentStatus),
	)
	r.logger.Debug("GetEquipment",
		zap.String("search", filter.Search),
		zap.Any("filter", filter.Filter),
		zap.Int("found", len(res)),
	)
	return res, nil
}

func (r *EquipmentRepository) FindEquipment(ctx context.Context, id string) (*entities.Equipment, error) {
	for _, e := range r.store.Equipment() {
		if e.ID == id {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *EquipmentRepository) FindEquipmentBySerial(ctx context.Context, serial string) (*entities.Equipment, error) {
	for _, e := range r.store.Equipment() {
		if e.SerialNumber == serial {
			found := e
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *EquipmentRepository) Count(ctx context.Context) int {
	return len(r.store.Equipment())
}
