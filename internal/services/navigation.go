package services

import (
	"context"

	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/repositories"
)

type NavigationServiceInterface interface {
	GetNavigation(ctx context.Context) []dto.NavigationItemDTO
}

type NavigationService struct {
	clientRepository    repositories.ClientRepositoryInterface
	equipmentRepository repositories.EquipmentRepositoryInterface
	handoverRepository  repositories.HandoverRepositoryInterface
	taskRepository      repositories.TaskRepositoryInterface
	logger              *zap.Logger
}

func NewNavigationService(
	clientRepository repositories.ClientRepositoryInterface,
	equipmentRepository repositories.EquipmentRepositoryInterface,
	handoverRepository repositories.HandoverRepositoryInterface,
	taskRepository repositories.TaskRepositoryInterface,
	logger *zap.Logger,
) *NavigationService {
	return &NavigationService{
		clientRepository:    clientRepository,
		equipmentRepository: equipmentRepository,
		handoverRepository:  handoverRepository,
		taskRepository:      taskRepository,
		logger:              logger,
	}
}

// GetNavigation - пункты бокового меню. У разделов без данных счётчика нет.
func (s *NavigationService) GetNavigation(ctx context.Context) []dto.NavigationItemDTO {
	count := func(n int) *int { return &n }

	return []dto.NavigationItemDTO{
		{Path: "/", Icon: "LayoutDashboard", Label: "Хэндоверы", Count: count(s.handoverRepository.Count(ctx))},
		{Path: "/clients", Icon: "Users", Label: "Клиенты", Count: count(s.clientRepository.Count(ctx))},
		{Path: "/equipment", Icon: "Truck", Label: "Техника", Count: count(s.equipmentRepository.Count(ctx))},
		{Path: "/tasks", Icon: "CheckSquare", Label: "Задачи", Count: count(s.taskRepository.Count(ctx))},
		{Path: "/messages", Icon: "Mail", Label: "Переписка"},
		{Path: "/analytics", Icon: "BarChart3", Label: "Аналитика"},
	}
}
