package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/entities"
	"handover-crm/internal/events"
	"handover-crm/internal/repositories"
	"handover-crm/pkg/constants"
	"handover-crm/pkg/eventbus"
	"handover-crm/pkg/listing"
	"handover-crm/pkg/types"
	"handover-crm/pkg/utils"
)

// EventPublisher - то, что сервису нужно от шины событий.
// Публикация синхронная: к возврату из PublishSync запись истории уже сделана.
type EventPublisher interface {
	PublishSync(ctx context.Context, event eventbus.Event) error
}

type TaskServiceInterface interface {
	GetTaskBoard(ctx context.Context, filter types.Filter) (*dto.TaskBoardDTO, error)
	GetTasks(ctx context.Context, filter types.Filter) ([]dto.TaskDTO, error)
	FindTask(ctx context.Context, id string) (*dto.TaskDTO, error)
	ToggleTask(ctx context.Context, id string) (*dto.TaskDTO, error)
}

type TaskService struct {
	taskRepository repositories.TaskRepositoryInterface
	publisher      EventPublisher
	viewCache      *ViewCache
	logger         *zap.Logger
	now            func() time.Time
}

func NewTaskService(
	taskRepository repositories.TaskRepositoryInterface,
	publisher EventPublisher,
	viewCache *ViewCache,
	logger *zap.Logger,
) *TaskService {
	return &TaskService{
		taskRepository: taskRepository,
		publisher:      publisher,
		viewCache:      viewCache,
		logger:         logger,
		now:            time.Now,
	}
}

func toTaskDTO(t entities.Task) dto.TaskDTO {
	return dto.TaskDTO{
		ID:               t.ID,
		Title:            t.Title,
		Description:      t.Description,
		Assignee:         t.Assignee,
		AssigneeInitials: utils.Initials(t.Assignee),
		DueDate:          t.DueDate,
		Priority:         constants.Lookup(constants.TaskPriorities, t.Priority),
		Status:           constants.Lookup(constants.TaskStatuses, t.Status),
		Completed:        t.Status == constants.TaskStatusCompleted,
		HandoverID:       t.HandoverID,
		HandoverNumber:   t.HandoverNumber,
	}
}

func toTaskDTOs(items []entities.Task) []dto.TaskDTO {
	res := make([]dto.TaskDTO, 0, len(items))
	for _, t := range items {
		res = append(res, toTaskDTO(t))
	}
	return res
}

func taskStatusOf(t entities.Task) string { return t.Status }

// GetTaskBoard раскладывает задачи на активные и выполненные.
// Ревизия снимка входит в ключ кеша, поэтому после переключения
// статуса старая доска из кеша больше не читается.
func (s *TaskService) GetTaskBoard(ctx context.Context, filter types.Filter) (*dto.TaskBoardDTO, error) {
	revision := s.taskRepository.Revision(ctx)
	key := fmt.Sprintf(constants.CacheKeyTaskBoard, revision,
		filter.Value("priority"), filter.Value("status"), filter.Search)

	return loadView(ctx, s.viewCache, key, func() (*dto.TaskBoardDTO, error) {
		items, _, err := s.taskRepository.GetTasks(ctx, filter)
		if err != nil {
			s.logger.Error("Ошибка при получении задач", zap.Error(err))
			return nil, err
		}

		buckets := listing.Group(items, constants.Codes(constants.TaskStatuses), taskStatusOf)
		board := &dto.TaskBoardDTO{
			Total:  len(items),
			Groups: make([]dto.TaskGroupDTO, 0, len(buckets)),
		}
		for _, b := range buckets {
			board.Groups = append(board.Groups, dto.TaskGroupDTO{
				Status: constants.Lookup(constants.TaskStatuses, b.Status),
				Count:  len(b.Items),
				Items:  toTaskDTOs(b.Items),
			})
		}
		return board, nil
	})
}

func (s *TaskService) GetTasks(ctx context.Context, filter types.Filter) ([]dto.TaskDTO, error) {
	items, _, err := s.taskRepository.GetTasks(ctx, filter)
	if err != nil {
		s.logger.Error("Ошибка при получении задач", zap.Error(err))
		return nil, err
	}
	return toTaskDTOs(items), nil
}

func (s *TaskService) FindTask(ctx context.Context, id string) (*dto.TaskDTO, error) {
	t, err := s.taskRepository.FindTask(ctx, id)
	if err != nil {
		return nil, err
	}
	res := toTaskDTO(*t)
	return &res, nil
}

// ToggleTask переключает статус и публикует событие для истории хэндовера.
func (s *TaskService) ToggleTask(ctx context.Context, id string) (*dto.TaskDTO, error) {
	toggle, err := s.taskRepository.Toggle(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		err := s.publisher.PublishSync(ctx, events.TaskStatusToggledEvent{
			Before:    toggle.Before,
			After:     toggle.After,
			Version:   toggle.Version,
			ToggledAt: s.now(),
		})
		if err != nil {
			// статус уже переключен, ответ клиенту не откатываем
			s.logger.Error("Ошибка при записи истории переключения",
				zap.String("task_id", id), zap.Error(err))
		}
	}

	res := toTaskDTO(toggle.After)
	return &res, nil
}
