package routes

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"handover-crm/internal/listeners"
	"handover-crm/internal/repositories"
	"handover-crm/internal/services"
	"handover-crm/pkg/config"
	"handover-crm/pkg/eventbus"
	"handover-crm/pkg/utils"
)

type Loggers struct {
	Main     *zap.Logger
	Handover *zap.Logger
	Task     *zap.Logger
	Cache    *zap.Logger
}

func InitRouter(
	e *echo.Echo,
	store *repositories.Store,
	cache repositories.CacheRepositoryInterface,
	bus *eventbus.Bus,
	loggers *Loggers,
	cfg *config.Config,
) {
	loggers.Main.Info("InitRouter: Начало создания маршрутов")

	// --- 0. ОБЩИЕ КОМПОНЕНТЫ ---
	api := e.Group("/api")
	viewCache := services.NewViewCache(cache, cfg.Cache.TTL, loggers.Cache)

	// --- 1. РЕПОЗИТОРИИ ---
	clientRepo := repositories.NewClientRepository(store, loggers.Main)
	equipmentRepo := repositories.NewEquipmentRepository(store, loggers.Main)
	handoverRepo := repositories.NewHandoverRepository(store, loggers.Handover)
	taskRepo := repositories.NewTaskRepository(store, loggers.Task)
	historyRepo := repositories.NewHistoryRepository(loggers.Handover)

	// --- 2. СЛУШАТЕЛИ ---
	listeners.NewHistoryListener(historyRepo, loggers.Handover).Register(bus)

	// --- 3. СЕРВИСЫ ---
	clientService := services.NewClientService(clientRepo, viewCache, loggers.Main)
	equipmentService := services.NewEquipmentService(equipmentRepo, viewCache, loggers.Main)
	handoverService := services.NewHandoverService(
		handoverRepo, clientRepo, equipmentRepo, taskRepo, historyRepo, viewCache, loggers.Handover,
	)
	taskService := services.NewTaskService(taskRepo, bus, viewCache, loggers.Task)
	navigationService := services.NewNavigationService(clientRepo, equipmentRepo, handoverRepo, taskRepo, loggers.Main)

	// --- 4. РОУТЕРЫ ---
	e.GET("/health", func(ctx echo.Context) error {
		return utils.SuccessResponse(ctx, map[string]string{"status": "ok"}, "Сервис работает", http.StatusOK)
	})

	runHandoverRouter(api, handoverService, loggers.Handover)
	runClientRouter(api, clientService, loggers.Main)
	runEquipmentRouter(api, equipmentService, loggers.Main)
	runTaskRouter(api, taskService, loggers.Task)
	runNavigationRouter(api, navigationService, loggers.Main)

	loggers.Main.Info("INIT_ROUTER: Создание маршрутов завершено")
}
