package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"handover-crm/internal/dto"
	"handover-crm/internal/events"
	"handover-crm/internal/listeners"
	"handover-crm/internal/repositories"
	"handover-crm/pkg/constants"
	"handover-crm/pkg/customvalidator"
	"handover-crm/pkg/eventbus"
	apperrors "handover-crm/pkg/errors"
	"handover-crm/pkg/types"
	"handover-crm/seeders"
)

type fixture struct {
	clients   repositories.ClientRepositoryInterface
	equipment repositories.EquipmentRepositoryInterface
	handovers repositories.HandoverRepositoryInterface
	tasks     repositories.TaskRepositoryInterface
	history   repositories.HistoryRepositoryInterface
	cache     *ViewCache
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	cache := NewViewCache(repositories.NewMemoryCacheRepository(), time.Minute, zap.NewNop())
	return newFixtureWithCache(t, cache)
}

// newFixtureWithCache поднимает отдельный снимок данных поверх переданного кеша,
// как реплика с общим Redis.
func newFixtureWithCache(t *testing.T, cache *ViewCache) fixture {
	t.Helper()
	v, err := customvalidator.New()
	require.NoError(t, err)
	ds, err := seeders.ParseDataset(seeders.SampleData(), v)
	require.NoError(t, err)

	store := repositories.NewStore(ds)
	logger := zap.NewNop()
	return fixture{
		clients:   repositories.NewClientRepository(store, logger),
		equipment: repositories.NewEquipmentRepository(store, logger),
		handovers: repositories.NewHandoverRepository(store, logger),
		tasks:     repositories.NewTaskRepository(store, logger),
		history:   repositories.NewHistoryRepository(logger),
		cache:     cache,
	}
}

func (f fixture) handoverService() *HandoverService {
	return NewHandoverService(f.handovers, f.clients, f.equipment, f.tasks, f.history, f.cache, zap.NewNop())
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []eventbus.Event
}

func (p *recordingPublisher) PublishSync(ctx context.Context, event eventbus.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// withHistory собирает сервис задач на настоящей шине с HistoryListener.
func (f fixture) withHistory() *TaskService {
	bus := eventbus.New(zap.NewNop())
	listeners.NewHistoryListener(f.history, zap.NewNop()).Register(bus)
	return NewTaskService(f.tasks, bus, f.cache, zap.NewNop())
}

func taskIDs(items []dto.TaskDTO) []string {
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.ID)
	}
	return ids
}

func TestHandoverService_Board(t *testing.T) {
	svc := newFixture(t).handoverService()

	board, err := svc.GetHandoverBoard(context.Background(), types.Filter{})
	require.NoError(t, err)

	assert.Equal(t, constants.ViewKanban, board.View)
	assert.Equal(t, 5, board.Total)
	require.Len(t, board.Columns, 6)

	for i, col := range board.Columns {
		assert.Equal(t, constants.HandoverStatuses[i], col.Status)
		if col.Status.Code == constants.HandoverStatusCompleted {
			assert.Equal(t, 0, col.Count)
			assert.NotNil(t, col.Items)
			assert.Empty(t, col.Items)
			continue
		}
		assert.Equal(t, 1, col.Count, col.Status.Code)
	}

	coordination := board.Columns[1].Items[0]
	assert.Equal(t, "HO-2026-002", coordination.Number)
	assert.Equal(t, "ПИ", coordination.AssigneeInitials)
	require.NotNil(t, coordination.DaysOverdue)
	assert.Equal(t, 8, *coordination.DaysOverdue)
}

func TestHandoverService_BoardFiltered(t *testing.T) {
	svc := newFixture(t).handoverService()

	board, err := svc.GetHandoverBoard(context.Background(), types.Filter{}.With("status", constants.HandoverStatusWarehouse))
	require.NoError(t, err)
	assert.Equal(t, 1, board.Total)
	require.Len(t, board.Columns, 6)
	assert.Equal(t, 1, board.Columns[3].Count)

	board, err = svc.GetHandoverBoard(context.Background(), types.Filter{Search: "7702345678"})
	require.NoError(t, err)
	assert.Equal(t, 1, board.Total)
	assert.Equal(t, "HO-2026-002", board.Columns[1].Items[0].Number)
}

func TestHandoverService_List(t *testing.T) {
	svc := newFixture(t).handoverService()

	list, err := svc.GetHandoverList(context.Background(), types.Filter{Search: "caterpillar"})
	require.NoError(t, err)
	assert.Equal(t, constants.ViewList, list.View)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "HO-2026-005", list.Items[0].Number)
	assert.Equal(t, "7705678901", list.Items[0].Client.INN)
}

func TestHandoverService_FindHandover(t *testing.T) {
	svc := newFixture(t).handoverService()
	ctx := context.Background()

	detail, err := svc.FindHandover(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "HO-2026-002", detail.Handover.Number)
	require.NotNil(t, detail.Client)
	assert.Equal(t, "Петрова Анна Сергеевна", detail.Client.ContactPerson)
	require.NotNil(t, detail.EquipmentDetails)
	assert.Equal(t, "D65PX-18", detail.EquipmentDetails.Model)
	require.Len(t, detail.Tasks, 1)
	assert.Equal(t, "1", detail.Tasks[0].ID)
	assert.NotNil(t, detail.History)
	assert.Empty(t, detail.History)

	// Клиента "Энергострой" нет в справочнике клиентов.
	detail, err = svc.FindHandover(ctx, "5")
	require.NoError(t, err)
	assert.Nil(t, detail.Client)
	assert.Nil(t, detail.EquipmentDetails)
	assert.Empty(t, detail.Tasks)

	_, err = svc.FindHandover(ctx, "404")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestHandoverService_Statuses(t *testing.T) {
	svc := newFixture(t).handoverService()
	statuses := svc.GetStatuses(context.Background())
	require.Len(t, statuses, 6)
	assert.Equal(t, "Новый", statuses[0].Label)

	statuses[0].Label = "changed"
	assert.Equal(t, "Новый", constants.HandoverStatuses[0].Label)
}

func TestTaskService_ToggleMovesTaskToCompleted(t *testing.T) {
	f := newFixture(t)
	pub := &recordingPublisher{}
	svc := NewTaskService(f.tasks, pub, f.cache, zap.NewNop())
	ctx := context.Background()

	board, err := svc.GetTaskBoard(ctx, types.Filter{})
	require.NoError(t, err)
	require.Len(t, board.Groups, 2)
	assert.Equal(t, 3, board.Groups[0].Count)
	assert.Equal(t, 1, board.Groups[1].Count)
	assert.Equal(t, "1", board.Groups[0].Items[0].ID)

	toggled, err := svc.ToggleTask(ctx, "1")
	require.NoError(t, err)
	assert.True(t, toggled.Completed)
	assert.Equal(t, constants.TaskStatusCompleted, toggled.Status.Code)

	// Доска из кеша не должна пережить переключение.
	board, err = svc.GetTaskBoard(ctx, types.Filter{})
	require.NoError(t, err)
	assert.Equal(t, 2, board.Groups[0].Count)
	require.Equal(t, 2, board.Groups[1].Count)
	assert.Equal(t, "1", board.Groups[1].Items[0].ID)
	assert.Equal(t, "Согласовать даты выполнения работ", board.Groups[1].Items[0].Title)
	assert.Equal(t, constants.TaskPriorityHigh, board.Groups[1].Items[0].Priority.Code)

	require.Len(t, pub.events, 1)
	ev, ok := pub.events[0].(events.TaskStatusToggledEvent)
	require.True(t, ok)
	assert.Equal(t, constants.TaskStatusPending, ev.Before.Status)
	assert.Equal(t, constants.TaskStatusCompleted, ev.After.Status)
	assert.Equal(t, uint64(1), ev.Version)
}

func TestTaskService_BoardCacheSharedBetweenStores(t *testing.T) {
	shared := NewViewCache(repositories.NewMemoryCacheRepository(), time.Minute, zap.NewNop())
	a := newFixtureWithCache(t, shared)
	b := newFixtureWithCache(t, shared)
	svcA := NewTaskService(a.tasks, nil, shared, zap.NewNop())
	svcB := NewTaskService(b.tasks, nil, shared, zap.NewNop())
	ctx := context.Background()

	_, err := svcA.ToggleTask(ctx, "1")
	require.NoError(t, err)
	boardA, err := svcA.GetTaskBoard(ctx, types.Filter{})
	require.NoError(t, err)
	assert.Contains(t, taskIDs(boardA.Groups[1].Items), "1")

	// У обоих снимков теперь версия 1, но доска A не должна попасть к B.
	_, err = svcB.ToggleTask(ctx, "2")
	require.NoError(t, err)
	boardB, err := svcB.GetTaskBoard(ctx, types.Filter{})
	require.NoError(t, err)

	assert.Contains(t, taskIDs(boardB.Groups[0].Items), "1")
	assert.Contains(t, taskIDs(boardB.Groups[1].Items), "2")
	assert.NotContains(t, taskIDs(boardB.Groups[1].Items), "1")
}

func TestTaskService_ToggleHistoryKeepsOrder(t *testing.T) {
	f := newFixture(t)
	tasks := f.withHistory()
	handovers := f.handoverService()
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		_, err := tasks.ToggleTask(ctx, "1")
		require.NoError(t, err)

		// Запись видна сразу после ответа на переключение.
		history, err := handovers.GetHistory(ctx, "2")
		require.NoError(t, err)
		require.Len(t, history, i+1)
	}

	history, err := handovers.GetHistory(ctx, "2")
	require.NoError(t, err)
	want := []string{
		constants.TaskStatusPending,
		constants.TaskStatusCompleted,
		constants.TaskStatusPending,
		constants.TaskStatusCompleted,
	}
	for i, entry := range history {
		assert.Equal(t, want[i], entry.OldStatus.Code, i)
		assert.NotEqual(t, entry.OldStatus.Code, entry.NewStatus.Code, i)
	}
}

func TestTaskService_ConcurrentTogglesHistoryConsistent(t *testing.T) {
	f := newFixture(t)
	tasks := f.withHistory()
	ctx := context.Background()

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := tasks.ToggleTask(ctx, "1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	entries, err := f.history.ListByHandover(ctx, "2")
	require.NoError(t, err)
	require.Len(t, entries, n)

	for i, entry := range entries {
		assert.Equal(t, uint64(i+1), entry.Seq)
		if i > 0 {
			assert.Equal(t, entries[i-1].NewStatus, entry.OldStatus, i)
		}
	}
	assert.Equal(t, constants.TaskStatusPending, entries[0].OldStatus)
	assert.Equal(t, constants.TaskStatusPending, entries[n-1].NewStatus)
}

func TestTaskService_ToggleUnknown(t *testing.T) {
	f := newFixture(t)
	pub := &recordingPublisher{}
	svc := NewTaskService(f.tasks, pub, nil, zap.NewNop())

	_, err := svc.ToggleTask(context.Background(), "missing")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Empty(t, pub.events)
	assert.Equal(t, uint64(0), f.tasks.Version(context.Background()))
}

func TestTaskService_PriorityFilter(t *testing.T) {
	f := newFixture(t)
	svc := NewTaskService(f.tasks, nil, nil, zap.NewNop())

	tasks, err := svc.GetTasks(context.Background(), types.Filter{}.With("priority", constants.TaskPriorityHigh))
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "1", tasks[0].ID)
	assert.Equal(t, "4", tasks[1].ID)
	assert.Equal(t, "КД", tasks[1].AssigneeInitials)
}

func TestClientService_GetClients(t *testing.T) {
	f := newFixture(t)
	svc := NewClientService(f.clients, f.cache, zap.NewNop())

	res, err := svc.GetClients(context.Background(), types.Filter{Search: "Строймаш"})
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, `ООО "Строймаш"`, res[0].Name)
	assert.Equal(t, "О", res[0].AvatarLetter)

	_, err = svc.FindClient(context.Background(), "nope")
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
}

func TestEquipmentService_GetEquipment(t *testing.T) {
	f := newFixture(t)
	svc := NewEquipmentService(f.equipment, f.cache, zap.NewNop())

	res, err := svc.GetEquipment(context.Background(), types.Filter{}.With("status", constants.EquipmentStatusMaintenance))
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, "KMT65PX67890", res[0].SerialNumber)
	assert.Equal(t, "На обслуживании", res[0].Status.Label)
}

func TestNavigationService(t *testing.T) {
	f := newFixture(t)
	svc := NewNavigationService(f.clients, f.equipment, f.handovers, f.tasks, zap.NewNop())

	items := svc.GetNavigation(context.Background())
	require.Len(t, items, 6)
	assert.Equal(t, "/", items[0].Path)
	require.NotNil(t, items[0].Count)
	assert.Equal(t, 5, *items[0].Count)
	assert.Equal(t, 4, *items[2].Count)
	assert.Nil(t, items[4].Count)
}
