package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/entities"
	"handover-crm/internal/repositories"
	"handover-crm/pkg/constants"
	"handover-crm/pkg/types"
)

type EquipmentServiceInterface interface {
	GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error)
	FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error)
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	viewCache           *ViewCache
	logger              *zap.Logger
}

func NewEquipmentService(equipmentRepository repositories.EquipmentRepositoryInterface,
	viewCache *ViewCache,
	logger *zap.Logger,
) *EquipmentService {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		viewCache:           viewCache,
		logger:              logger,
	}
}

func toEquipmentDTO(e entities.Equipment) dto.EquipmentDTO {
	return dto.EquipmentDTO{
		ID:             e.ID,
		Name:           e.Name,
		SerialNumber:   e.SerialNumber,
		Manufacturer:   e.Manufacturer,
		Model:          e.Model,
		Owner:          e.Owner,
		OwnerINN:       e.OwnerINN,
		Status:         constants.Lookup(constants.EquipmentStatuses, e.Status),
		LastService:    e.LastService,
		HandoversCount: e.HandoversCount,
	}
}

func (s *EquipmentService) GetEquipment(ctx context.Context, filter types.Filter) ([]dto.EquipmentDTO, error) {
	key := fmt.Sprintf(constants.CacheKeyEquipmentView, filter.Value("status"), filter.Search)
	return loadView(ctx, s.viewCache, key, func() ([]dto.EquipmentDTO, error) {
		items, err := s.equipmentRepository.GetEquipment(ctx, filter)
		if err != nil {
			s.logger.Error("Ошибка при получении списка техники", zap.Error(err))
			return nil, err
		}
		res := make([]dto.EquipmentDTO, 0, len(items))
		for _, e := range items {
			res = append(res, toEquipmentDTO(e))
		}
		return res, nil
	})
}

func (s *EquipmentService) FindEquipment(ctx context.Context, id string) (*dto.EquipmentDTO, error) {
	item, err := s.equipmentRepository.FindEquipment(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toEquipmentDTO(*item)
	return &res, nil
}
