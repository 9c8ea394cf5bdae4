package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	deleteSchedulingConfigHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/delete_scheduling_config"
	discardRefreshHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/discard_refresh"
	getMentoringWeekHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/get_mentoring_week"
	getSchedulingConfigHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/get_scheduling_config"
	getSessionCalendarHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/get_session_calendar"
	selectSessionDateHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/select_session_date"
	selectSlotHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/select_slot"
	submitBookingHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/submit_booking"
	updateSchedulingConfigHandler "github.com/fillinv/lesson-scheduler/internal/api/handlers/update_scheduling_config"
	"github.com/fillinv/lesson-scheduler/internal/api/middleware"
	"github.com/fillinv/lesson-scheduler/internal/config"
	lessonCache "github.com/fillinv/lesson-scheduler/internal/infra/cache/lesson"
	configRepo "github.com/fillinv/lesson-scheduler/internal/infra/storage/config"
	"github.com/fillinv/lesson-scheduler/internal/integrations/lessonservice"
	"github.com/fillinv/lesson-scheduler/internal/refresh"
	configService "github.com/fillinv/lesson-scheduler/internal/service/config"
	lessonsService "github.com/fillinv/lesson-scheduler/internal/service/lessons"
	getMentoringWeekUC "github.com/fillinv/lesson-scheduler/internal/usecase/get_mentoring_week"
	getSessionCalendarUC "github.com/fillinv/lesson-scheduler/internal/usecase/get_session_calendar"
	selectSessionDateUC "github.com/fillinv/lesson-scheduler/internal/usecase/select_session_date"
	selectSlotUC "github.com/fillinv/lesson-scheduler/internal/usecase/select_slot"
	submitBookingUC "github.com/fillinv/lesson-scheduler/internal/usecase/submit_booking"
	"github.com/fillinv/lesson-scheduler/pkg/dbmetrics"
	"github.com/fillinv/lesson-scheduler/pkg/logger"
	"github.com/fillinv/lesson-scheduler/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting lesson-scheduler...")

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}
	log.Info("Scheduling timezone=%s grid=%dm advance_days=%d weekly_fallback=%t",
		location, cfg.Scheduling.GridMinutes, cfg.Scheduling.AdvanceBookingDays, cfg.Scheduling.WeeklyFallback)

	// Инициализируем метрики (если включены).
	// nil *metrics.Metrics безопасен: все методы записи ничего не делают.
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозиторий конфигурации (с метриками или без)
	var configRepository *configRepo.Repository
	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		configRepository = configRepo.NewRepository(wrappedDB)
		log.Info("Database metrics collection started")
	} else {
		configRepository = configRepo.NewRepository(db)
	}

	// Кэш расписаний в Redis (опционально). При недоступности Redis работаем без кэша.
	var cache lessonsService.LessonCache
	if cfg.Redis.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancelPing := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis unavailable at %s, lesson cache disabled: %v", cfg.Redis.Addr, err)
		} else {
			cache = lessonCache.NewCache(rdb, cfg.Redis.TTL())
			log.Info("Lesson cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTLSeconds)
		}
		cancelPing()
	}

	// Клиент бэкенда уроков
	lessonClient := lessonservice.NewClient(
		cfg.LessonService.URL,
		time.Duration(cfg.LessonService.Timeout)*time.Second,
		location,
		log,
		lessonservice.WithWeeklyFallback(cfg.Scheduling.WeeklyFallback),
	)
	log.Info("Lesson service client initialized (url=%s, timeout=%ds)", cfg.LessonService.URL, cfg.LessonService.Timeout)

	// Сервисы
	lessonSvc := lessonsService.NewService(lessonClient, cache, metricsCollector, log)
	configSvc := configService.NewService(configRepository, lessonSvc, cfg.Scheduling.Defaults(), log)
	coordinator := refresh.NewCoordinator()

	// Use cases
	getMentoringWeekUseCase := getMentoringWeekUC.NewUseCase(lessonSvc, configSvc, coordinator, metricsCollector, location, log)
	selectSlotUseCase := selectSlotUC.NewUseCase(lessonSvc, configSvc, metricsCollector, location, log)
	getSessionCalendarUseCase := getSessionCalendarUC.NewUseCase(lessonSvc, configSvc, coordinator, metricsCollector, location, log)
	selectSessionDateUseCase := selectSessionDateUC.NewUseCase(lessonSvc, configSvc, metricsCollector, location, log)
	submitBookingUseCase := submitBookingUC.NewUseCase(lessonSvc, configSvc, metricsCollector, location, log)

	// Handlers
	getMentoringWeek := getMentoringWeekHandler.NewHandler(getMentoringWeekUseCase, log)
	selectSlot := selectSlotHandler.NewHandler(selectSlotUseCase, log)
	getSessionCalendar := getSessionCalendarHandler.NewHandler(getSessionCalendarUseCase, log)
	selectSessionDate := selectSessionDateHandler.NewHandler(selectSessionDateUseCase, log)
	submitBooking := submitBookingHandler.NewHandler(submitBookingUseCase, log)
	getSchedulingConfig := getSchedulingConfigHandler.NewHandler(configSvc, log)
	updateSchedulingConfig := updateSchedulingConfigHandler.NewHandler(configSvc, log)
	deleteSchedulingConfig := deleteSchedulingConfigHandler.NewHandler(configSvc, log)
	discardRefresh := discardRefreshHandler.NewHandler(coordinator, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter, err := middleware.NewRateLimiter(
			cfg.RateLimit.RequestsPerSecond,
			cfg.RateLimit.Burst,
			cfg.RateLimit.TrustedProxies,
			log,
		)
		if err != nil {
			log.Fatal("Failed to configure rate limiter: %v", err)
		}
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled (%.1f rps, burst=%d)", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// --- Наставничество ---
	api.HandleFunc("/lessons/{lessonId}/mentoring/week", getMentoringWeek.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lessons/{lessonId}/mentoring/slot", selectSlot.Handle).Methods(http.MethodPost)

	// --- Oneday и study ---
	api.HandleFunc("/lessons/{lessonId}/sessions/calendar", getSessionCalendar.Handle).Methods(http.MethodGet)
	api.HandleFunc("/lessons/{lessonId}/sessions/select", selectSessionDate.Handle).Methods(http.MethodPost)

	// Уход со страницы: отбросить незавершённое обновление зрителя
	api.HandleFunc("/refresh", discardRefresh.Handle).Methods(http.MethodDelete)

	// Конфигурация планирования урока
	api.HandleFunc("/lessons/{lessonId}/scheduling-config", getSchedulingConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	protected.HandleFunc("/bookings", submitBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/lessons/{lessonId}/scheduling-config", updateSchedulingConfig.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/lessons/{lessonId}/scheduling-config", deleteSchedulingConfig.Handle).Methods(http.MethodDelete)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully, pending refreshes=%d", coordinator.Pending())
}
