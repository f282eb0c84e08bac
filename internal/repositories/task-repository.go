package repositories

import (
	"context"

	"go.uber.org/zap"

	"handover-crm/internal/entities"
	apperrors "handover-crm/pkg/errors"
	"handover-crm/pkg/listing"
	"handover-crm/pkg/types"
)

type TaskRepositoryInterface interface {
	// GetTasks возвращает отфильтрованные задачи и версию снимка, из которого они взяты.
	GetTasks(ctx context.Context, filter types.Filter) ([]entities.Task, uint64, error)
	FindTask(ctx context.Context, id string) (*entities.Task, error)
	Toggle(ctx context.Context, id string) (*TaskToggle, error)
	Version(ctx context.Context) uint64
	// Revision - версия снимка для ключей кеша, не повторяется после рестарта.
	Revision(ctx context.Context) string
	Count(ctx context.Context) int
}

// TaskToggle - результат переключения: задача до и после и версия снимка,
// в которой изменение стало видно.
type TaskToggle struct {
	Before  entities.Task
	After   entities.Task
	Version uint64
}

type TaskRepository struct {
	store  *Store
	logger *zap.Logger
}

func NewTaskRepository(store *Store, logger *zap.Logger) TaskRepositoryInterface {
	return &TaskRepository{store: store, logger: logger}
}

// Поиск по названию, описанию и номеру хэндовера.
func taskFields(t entities.Task) []string {
	fields := []string{t.Title, t.Description}
	if t.HandoverNumber != nil {
		fields = append(fields, *t.HandoverNumber)
	}
	return fields
}

func taskPriority(t entities.Task) string { return t.Priority }
func taskStatus(t entities.Task) string   { return t.Status }

func (r *TaskRepository) GetTasks(ctx context.Context, filter types.Filter) ([]entities.Task, uint64, error) {
	tasks, version := r.store.Tasks()
	res := listing.Filter(tasks, filter.Search, taskFields,
		listing.Equals(filter.Value("priority"), taskPriority),
		listing.Equals(filter.Value("status"), taskStatus),
	)
	r.logger.Debug("GetTasks",
		zap.String("search", filter.Search),
		zap.Any("filter", filter.Filter),
		zap.Uint64("version", version),
		zap.Int("found", len(res)),
	)
	return res, version, nil
}

func (r *TaskRepository) FindTask(ctx context.Context, id string) (*entities.Task, error) {
	tasks, _ := r.store.Tasks()
	for _, t := range tasks {
		if t.ID == id {
			found := t
			return &found, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// Toggle для неизвестного id ничего не меняет и возвращает ErrNotFound.
func (r *TaskRepository) Toggle(ctx context.Context, id string) (*TaskToggle, error) {
	before, after, version, ok := r.store.ToggleTask(id)
	if !ok {
		r.logger.Warn("Toggle: задача не найдена, снимок не изменён", zap.String("id", id))
		return nil, apperrors.ErrNotFound
	}
	r.logger.Info("Статус задачи переключён",
		zap.String("id", id),
		zap.String("from", before.Status),
		zap.String("to", after.Status),
		zap.Uint64("version", version),
	)
	return &TaskToggle{Before: before, After: after, Version: version}, nil
}

func (r *TaskRepository) Version(ctx context.Context) uint64 {
	_, version := r.store.Tasks()
	return version
}

func (r *TaskRepository) Revision(ctx context.Context) string {
	return r.store.TaskRevision()
}

func (r *TaskRepository) Count(ctx context.Context) int {
	tasks, _ := r.store.Tasks()
	return len(tasks)
}
