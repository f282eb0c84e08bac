package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"handover-crm/internal/repositories"
	"handover-crm/internal/routes"
	"handover-crm/pkg/config"
	"handover-crm/pkg/customvalidator"
	"handover-crm/pkg/eventbus"
	apperrors "handover-crm/pkg/errors"
	applogger "handover-crm/pkg/logger"
	appmiddleware "handover-crm/pkg/middleware"
	"handover-crm/pkg/utils"
	"handover-crm/seeders"
)

func main() {
	// 1. Конфиг и логгер
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync()

	e := echo.New()
	e.HideBanner = true

	// 2. Middleware
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(appmiddleware.RequestLogger(logger.Named("http")))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		AllowCredentials: true,
		ExposeHeaders:    []string{echo.HeaderContentDisposition, echo.HeaderXRequestID},
	}))

	e.Use(middleware.ContextTimeoutWithConfig(middleware.ContextTimeoutConfig{
		Timeout: cfg.Server.RequestTimeout,
	}))

	// 3. Валидатор
	v, err := customvalidator.New()
	if err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	// 4. Данные
	dataset, err := seeders.LoadDataset(cfg.Seed.File, v, logger)
	if err != nil {
		logger.Fatal("не удалось загрузить данные", zap.Error(err), zap.String("file", cfg.Seed.File))
	}
	store := repositories.NewStore(dataset)

	// 5. Кеш и шина событий
	cacheRepo, closeCache := newCacheRepository(cfg.Redis, logger)
	defer closeCache()

	bus := eventbus.New(logger.Named("eventbus"))

	// 6. Роуты
	loggers := &routes.Loggers{
		Main:     logger,
		Handover: logger.Named("handover"),
		Task:     logger.Named("task"),
		Cache:    logger.Named("cache"),
	}
	routes.InitRouter(e, store, cacheRepo, bus, loggers, cfg)

	// 7. Запуск и остановка
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Ошибка запуска сервера", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("Получен сигнал остановки, завершаем работу")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("Ошибка при остановке сервера", zap.Error(err))
	}
	bus.Wait()
	logger.Info("Сервер остановлен")
}

// newCacheRepository подключает Redis, если задан адрес. Если адреса нет
// или Redis не отвечает, используется кеш в памяти.
func newCacheRepository(cfg config.RedisConfig, logger *zap.Logger) (repositories.CacheRepositoryInterface, func()) {
	if cfg.Address == "" {
		logger.Info("REDIS_ADDRESS не задан, используется кеш в памяти")
		return repositories.NewMemoryCacheRepository(), func() {}
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := redisClient.Ping(ctx).Result(); err != nil {
		logger.Warn("не удалось подключиться к Redis, используется кеш в памяти",
			zap.Error(err), zap.String("address", cfg.Address))
		_ = redisClient.Close()
		return repositories.NewMemoryCacheRepository(), func() {}
	}

	logger.Info("Подключение к Redis установлено", zap.String("address", cfg.Address))
	return repositories.NewRedisCacheRepository(redisClient), func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("Ошибка при закрытии Redis", zap.Error(err))
		}
	}
}
