package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"handover-crm/internal/entities"
)

// Store держит снимки всех записей в памяти процесса.
// Снимки не изменяются на месте: переключение статуса задачи
// подменяет срез задач целиком, поэтому ранее выданные срезы остаются валидными.
type Store struct {
	mu          sync.RWMutex
	clients     []entities.Client
	equipment   []entities.Equipment
	handovers   []entities.Handover
	tasks       []entities.Task
	taskVersion uint64
	// epoch отличает этот процесс от других, читающих тот же Redis.
	epoch string
}

func NewStore(dataset *entities.Dataset) *Store {
	s := &Store{epoch: uuid.NewString()}
	if dataset == nil {
		return s
	}
	s.clients = append([]entities.Client(nil), dataset.Clients...)
	s.equipment = append([]entities.Equipment(nil), dataset.Equipment...)
	s.handovers = append([]entities.Handover(nil), dataset.Handovers...)
	s.tasks = append([]entities.Task(nil), dataset.Tasks...)
	return s
}

func (s *Store) Clients() []entities.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.clients
}

func (s *Store) Equipment() []entities.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.equipment
}

func (s *Store) Handovers() []entities.Handover {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.handovers
}

// Tasks возвращает текущий снимок задач и его версию.
func (s *Store) Tasks() ([]entities.Task, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tasks, s.taskVersion
}

// TaskRevision - версия снимка задач, уникальная между процессами.
func (s *Store) TaskRevision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fmt.Sprintf("%s.%d", s.epoch, s.taskVersion)
}

// ToggleTask переключает статус задачи и возвращает её до и после
// вместе с новой версией снимка. Для неизвестного id снимок не меняется, ok = false.
func (s *Store) ToggleTask(id string) (before, after entities.Task, version uint64, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return entities.Task{}, entities.Task{}, s.taskVersion, false
	}

	next := make([]entities.Task, len(s.tasks))
	copy(next, s.tasks)
	before = next[idx]
	after = before.Toggled()
	next[idx] = after

	s.tasks = next
	s.taskVersion++
	return before, after, s.taskVersion, true
}
