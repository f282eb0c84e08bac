package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/entities"
	"handover-crm/internal/repositories"
	"handover-crm/pkg/constants"
	apperrors "handover-crm/pkg/errors"
	"handover-crm/pkg/listing"
	"handover-crm/pkg/types"
	"handover-crm/pkg/utils"
)

type HandoverServiceInterface interface {
	GetHandoverBoard(ctx context.Context, filter types.Filter) (*dto.HandoverBoardDTO, error)
	GetHandoverList(ctx context.Context, filter types.Filter) (*dto.HandoverListDTO, error)
	FindHandover(ctx context.Context, id string) (*dto.HandoverDetailDTO, error)
	GetHistory(ctx context.Context, id string) ([]dto.HistoryEntryDTO, error)
	GetStatuses(ctx context.Context) []dto.StatusDTO
}

type HandoverService struct {
	handoverRepository  repositories.HandoverRepositoryInterface
	clientRepository    repositories.ClientRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	taskRepository      repositories.TaskRepositoryInterface
	historyRepository   repositories.HistoryRepositoryInterface
	viewCache           *ViewCache
	logger              *zap.Logger
}

func NewHandoverService(
	handoverRepository repositories.HandoverRepositoryInterface,
	clientRepository repositories.ClientRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	taskRepository repositories.TaskRepositoryInterface,
	historyRepository repositories.HistoryRepositoryInterface,
	viewCache *ViewCache,
	logger *zap.Logger,
) *HandoverService {
	return &HandoverService{
		handoverRepository:  handoverRepository,
		clientRepository:    clientRepository,
		equipmentRepository: equipmentRepository,
		taskRepository:      taskRepository,
		historyRepository:   historyRepository,
		viewCache:           viewCache,
		logger:              logger,
	}
}

func toHandoverCardDTO(h entities.Handover) dto.HandoverCardDTO {
	card := dto.HandoverCardDTO{
		ID:           h.ID,
		Number:       h.Number,
		Client:       dto.HandoverClientDTO{Name: h.Client.Name, INN: h.Client.INN},
		Equipment:    h.Equipment,
		SerialNumber: h.SerialNumber,
		Status:       constants.Lookup(constants.HandoverStatuses, h.Status),
		Assignee:     h.Assignee,
		StartDate:    h.StartDate,
		EndDate:      h.EndDate,
		IsUrgent:     h.IsUrgent,
		DaysOverdue:  h.DaysOverdue,
	}
	if h.Assignee != nil {
		card.AssigneeInitials = utils.Initials(*h.Assignee)
	}
	return card
}

func toHandoverCards(items []entities.Handover) []dto.HandoverCardDTO {
	cards := make([]dto.HandoverCardDTO, 0, len(items))
	for _, h := range items {
		cards = append(cards, toHandoverCardDTO(h))
	}
	return cards
}

func toHistoryEntryDTO(e entities.HistoryEntry) dto.HistoryEntryDTO {
	return dto.HistoryEntryDTO{
		TaskID:    e.TaskID,
		TaskTitle: e.TaskTitle,
		OldStatus: constants.Lookup(constants.TaskStatuses, e.OldStatus),
		NewStatus: constants.Lookup(constants.TaskStatuses, e.NewStatus),
		CreatedAt: e.CreatedAt,
	}
}

func handoverStatusOf(h entities.Handover) string { return h.Status }

// GetHandoverBoard строит канбан: шесть колонок в порядке статусов, пустые тоже.
func (s *HandoverService) GetHandoverBoard(ctx context.Context, filter types.Filter) (*dto.HandoverBoardDTO, error) {
	key := fmt.Sprintf(constants.CacheKeyHandoverView, constants.ViewKanban, filter.Value("status"), filter.Search)
	return loadView(ctx, s.viewCache, key, func() (*dto.HandoverBoardDTO, error) {
		items, err := s.handoverRepository.GetHandovers(ctx, filter)
		if err != nil {
			s.logger.Error("Ошибка при получении хэндоверов", zap.Error(err))
			return nil, err
		}

		buckets := listing.Group(items, constants.Codes(constants.HandoverStatuses), handoverStatusOf)
		board := &dto.HandoverBoardDTO{
			View:    constants.ViewKanban,
			Total:   len(items),
			Columns: make([]dto.KanbanColumnDTO, 0, len(buckets)),
		}
		for _, b := range buckets {
			board.Columns = append(board.Columns, dto.KanbanColumnDTO{
				Status: constants.Lookup(constants.HandoverStatuses, b.Status),
				Count:  len(b.Items),
				Items:  toHandoverCards(b.Items),
			})
		}
		return board, nil
	})
}

func (s *HandoverService) GetHandoverList(ctx context.Context, filter types.Filter) (*dto.HandoverListDTO, error) {
	key := fmt.Sprintf(constants.CacheKeyHandoverView, constants.ViewList, filter.Value("status"), filter.Search)
	return loadView(ctx, s.viewCache, key, func() (*dto.HandoverListDTO, error) {
		items, err := s.handoverRepository.GetHandovers(ctx, filter)
		if err != nil {
			s.logger.Error("Ошибка при получении хэндоверов", zap.Error(err))
			return nil, err
		}
		return &dto.HandoverListDTO{
			View:  constants.ViewList,
			Total: len(items),
			Items: toHandoverCards(items),
		}, nil
	})
}

// FindHandover собирает данные модального окна. Клиент и техника ищутся
// по скопированным ИНН и серийному номеру; если их нет в справочниках,
// поля остаются пустыми.
func (s *HandoverService) FindHandover(ctx context.Context, id string) (*dto.HandoverDetailDTO, error) {
	h, err := s.handoverRepository.FindHandover(ctx, id)
	if err != nil {
		return nil, err
	}

	detail := &dto.HandoverDetailDTO{
		Handover: toHandoverCardDTO(*h),
		Tasks:    make([]dto.TaskDTO, 0),
	}

	client, err := s.clientRepository.FindClientByINN(ctx, h.Client.INN)
	switch {
	case err == nil:
		c := toClientDTO(*client)
		detail.Client = &c
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, err
	}

	if h.SerialNumber != "" {
		equipment, err := s.equipmentRepository.FindEquipmentBySerial(ctx, h.SerialNumber)
		switch {
		case err == nil:
			e := toEquipmentDTO(*equipment)
			detail.EquipmentDetails = &e
		case !errors.Is(err, apperrors.ErrNotFound):
			return nil, err
		}
	}

	tasks, _, err := s.taskRepository.GetTasks(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.HandoverID != nil && *t.HandoverID == h.ID {
			detail.Tasks = append(detail.Tasks, toTaskDTO(t))
		}
	}

	history, err := s.GetHistory(ctx, h.ID)
	if err != nil {
		return nil, err
	}
	detail.History = history

	return detail, nil
}

func (s *HandoverService) GetHistory(ctx context.Context, id string) ([]dto.HistoryEntryDTO, error) {
	if _, err := s.handoverRepository.FindHandover(ctx, id); err != nil {
		return nil, err
	}
	entries, err := s.historyRepository.ListByHandover(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при получении истории хэндовера", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	res := make([]dto.HistoryEntryDTO, 0, len(entries))
	for _, e := range entries {
		res = append(res, toHistoryEntryDTO(e))
	}
	return res, nil
}

func (s *HandoverService) GetStatuses(ctx context.Context) []dto.StatusDTO {
	res := make([]dto.StatusDTO, len(constants.HandoverStatuses))
	copy(res, constants.HandoverStatuses)
	return res
}
