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
	"handover-crm/pkg/utils"
)

type ClientServiceInterface interface {
	GetClients(ctx context.Context, filter types.Filter) ([]dto.ClientDTO, error)
	FindClient(ctx context.Context, id string) (*dto.ClientDTO, error)
}

type ClientService struct {
	clientRepository repositories.ClientRepositoryInterface
	viewCache        *ViewCache
	logger           *zap.Logger
}

func NewClientService(clientRepository repositories.ClientRepositoryInterface, viewCache *ViewCache, logger *zap.Logger) *ClientService {
	return &ClientService{
		clientRepository: clientRepository,
		viewCache:        viewCache,
		logger:           logger,
	}
}

func toClientDTO(c entities.Client) dto.ClientDTO {
	return dto.ClientDTO{
		ID:              c.ID,
		Name:            c.Name,
		AvatarLetter:    utils.FirstLetter(c.Name),
		INN:             c.INN,
		KPP:             c.KPP,
		Address:         c.Address,
		ContactPerson:   c.ContactPerson,
		Phone:           c.Phone,
		Email:           c.Email,
		EquipmentCount:  c.EquipmentCount,
		ActiveHandovers: c.ActiveHandovers,
	}
}

func (s *ClientService) GetClients(ctx context.Context, filter types.Filter) ([]dto.ClientDTO, error) {
	key := fmt.Sprintf(constants.CacheKeyClientView, filter.Search)
	return loadView(ctx, s.viewCache, key, func() ([]dto.ClientDTO, error) {
		clients, err := s.clientRepository.GetClients(ctx, filter)
		if err != nil {
			s.logger.Error("Ошибка при получении клиентов", zap.Error(err))
			return nil, err
		}
		res := make([]dto.ClientDTO, 0, len(clients))
		for _, c := range clients {
			res = append(res, toClientDTO(c))
		}
		return res, nil
	})
}

func (s *ClientService) FindClient(ctx context.Context, id string) (*dto.ClientDTO, error) {
	client, err := s.clientRepository.FindClient(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toClientDTO(*client)
	return &res, nil
}
