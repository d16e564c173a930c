package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"

	chooseDateHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/choose_date"
	chooseTimeSlotHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/choose_time_slot"
	closeDialogHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/close_dialog"
	confirmBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/confirm_booking"
	contactOwnerHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/contact_owner"
	getAvailabilityHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_availability"
	getBookingHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_booking"
	getCategoriesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_categories"
	getDialogHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_dialog"
	getFavoritesHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_favorites"
	getItemHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_item"
	getUserBookingsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/get_user_bookings"
	healthHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/health"
	openDialogHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/open_dialog"
	searchItemsHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/search_items"
	toggleFavoriteHandler "github.com/m04kA/SMC-RentalService/internal/api/handlers/toggle_favorite"
	"github.com/m04kA/SMC-RentalService/internal/api/middleware"
	"github.com/m04kA/SMC-RentalService/internal/config"
	bookingRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/booking"
	catalogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/catalog"
	dialogRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/dialog"
	favoritesRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/favorites"
	ownerServiceClient "github.com/m04kA/SMC-RentalService/internal/integrations/ownerservice"
	"github.com/m04kA/SMC-RentalService/internal/service/availability"
	bookingsService "github.com/m04kA/SMC-RentalService/internal/service/bookings"
	contactService "github.com/m04kA/SMC-RentalService/internal/service/contact"
	dialogService "github.com/m04kA/SMC-RentalService/internal/service/dialog"
	favoritesService "github.com/m04kA/SMC-RentalService/internal/service/favorites"
	confirmBookingUC "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_booking"
	getAvailabilityUC "github.com/m04kA/SMC-RentalService/internal/usecase/get_availability"
	searchItemsUC "github.com/m04kA/SMC-RentalService/internal/usecase/search_items"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/logger"
	"github.com/m04kA/SMC-RentalService/pkg/metrics"
)

const rateLimitCleanupInterval = time.Minute

// BookingStore хранилище подтвержденных бронирований
type BookingStore interface {
	confirmBookingUC.BookingSink
	bookingsService.BookingRepository
}

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

	log.Info("Starting SMC-RentalService...")
	log.Info("Storage: catalog=%s, bookings=%s, favorites=%s",
		cfg.Catalog.Source, cfg.Bookings.Backend, cfg.Favorites.Backend)

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	healthChecks := map[string]healthHandler.Check{}

	// Подключаемся к базе данных, только если она нужна хотя бы одному хранилищу
	var db *sql.DB
	if cfg.NeedsDatabase() {
		db, err = openDatabase(cfg.Database)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
		healthChecks["postgres"] = db.PingContext

		if metricsCollector != nil {
			dbmetrics.CollectPoolStats(db, metricsCollector, dbmetrics.DefaultCollectInterval, stopMetricsCh)
			log.Info("Database metrics collection started")
		}
	}

	// Каталог загружается один раз и дальше не меняется
	catalog, err := loadCatalog(ctx, cfg.Catalog, db, log)
	if err != nil {
		log.Fatal("Failed to load catalog: %v", err)
	}
	log.Info("Catalog loaded: %d items", catalog.Len())

	// Хранилище бронирований
	var bookingStore BookingStore
	switch cfg.Bookings.Backend {
	case config.BackendPostgres:
		bookingStore = bookingRepo.NewRepository(db)
	default:
		bookingStore = bookingRepo.NewMemoryRepository()
	}

	// Хранилище избранного
	var favoritesStore favoritesService.FavoritesStore
	switch cfg.Favorites.Backend {
	case config.BackendRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Successfully connected to redis (addr=%s, db=%d)", cfg.Redis.Addr, cfg.Redis.DB)

		healthChecks["redis"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		favoritesStore = favoritesRepo.NewRedisStore(rdb, cfg.Redis.KeyPrefix)
	default:
		favoritesStore = favoritesRepo.NewMemoryStore()
	}

	// Сессии диалогов бронирования
	dialogStore := dialogRepo.NewMemoryStore(cfg.Dialogs.TTL(), nil)
	if cfg.Dialogs.TTL() > 0 {
		go dialogStore.RunSweeper(ctx, cfg.Dialogs.SweepInterval())
		log.Info("Dialog sessions expire after %s of inactivity", cfg.Dialogs.TTL())
	}

	// Интеграция с сервисом владельцев
	ownerClient := ownerServiceClient.NewClient(
		cfg.OwnerService.URL,
		time.Duration(cfg.OwnerService.Timeout)*time.Second,
		log,
	)
	if !ownerClient.Enabled() {
		log.Warn("Owner service URL is not configured, contact requests will only be logged")
	}

	// Наблюдатели метрик: nil, если метрики выключены
	var (
		searchObserver  searchItemsUC.SearchObserver
		confirmObserver confirmBookingUC.ConfirmObserver
		toggleObserver  favoritesService.ToggleObserver
	)
	if metricsCollector != nil {
		searchObserver = metricsCollector
		confirmObserver = metricsCollector
		toggleObserver = metricsCollector
	}

	// Правила дат и слотов
	resolver := availability.NewResolver(&availability.RealTimeProvider{})

	// Инициализируем сервисы
	dialogSvc := dialogService.NewService(dialogStore, catalog, resolver, log)
	bookingSvc := bookingsService.NewService(bookingStore, log)
	favoritesSvc := favoritesService.NewService(favoritesStore, catalog, toggleObserver, log)
	contactSvc := contactService.NewService(catalog, ownerClient, log)

	// Инициализируем use cases
	searchItemsUseCase := searchItemsUC.NewUseCase(catalog, searchObserver, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(catalog, resolver, log)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(dialogStore, bookingStore, resolver, confirmObserver, log)

	// Инициализируем handlers
	getCategories := getCategoriesHandler.NewHandler(catalog, log)
	searchItems := searchItemsHandler.NewHandler(searchItemsUseCase, log)
	getItem := getItemHandler.NewHandler(catalog, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, log)
	openDialog := openDialogHandler.NewHandler(dialogSvc, log)
	getDialog := getDialogHandler.NewHandler(dialogSvc, log)
	chooseDate := chooseDateHandler.NewHandler(dialogSvc, log)
	chooseTimeSlot := chooseTimeSlotHandler.NewHandler(dialogSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	closeDialog := closeDialogHandler.NewHandler(dialogSvc, log)
	toggleFavorite := toggleFavoriteHandler.NewHandler(favoritesSvc, log)
	getFavorites := getFavoritesHandler.NewHandler(favoritesSvc, log)
	contactOwner := contactOwnerHandler.NewHandler(contactSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	health := healthHandler.NewHandler(healthChecks, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if metricsCollector != nil {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		go limiter.RunCleanup(ctx, rateLimitCleanupInterval)
		api.Use(limiter.Middleware)
		log.Info("Rate limit enabled: rps=%.1f, burst=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	// ============================================================
	// PUBLIC ROUTES (витрина, без аутентификации)
	// ============================================================

	api.HandleFunc("/categories", getCategories.Handle).Methods(http.MethodGet)
	api.HandleFunc("/items", searchItems.Handle).Methods(http.MethodGet)
	api.HandleFunc("/items/{itemId}", getItem.Handle).Methods(http.MethodGet)
	api.HandleFunc("/items/{itemId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Диалог бронирования ---
	protected.HandleFunc("/dialogs", openDialog.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/dialogs/{dialogId}", getDialog.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/dialogs/{dialogId}/date", chooseDate.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/dialogs/{dialogId}/time-slot", chooseTimeSlot.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/dialogs/{dialogId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/dialogs/{dialogId}", closeDialog.Handle).Methods(http.MethodDelete)

	// --- Избранное и связь с владельцем ---
	protected.HandleFunc("/favorites", getFavorites.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/favorites/{itemId}", toggleFavorite.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/items/{itemId}/contact", contactOwner.Handle).Methods(http.MethodPost)

	// --- Бронирования ---
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// CORS для браузерной витрины
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.UserIDHeader},
	})

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      corsHandler.Handler(r),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем фоновые задачи (очистка сессий, лимитера) и сбор метрик пула
	stop()
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

// openDatabase открывает пул соединений Postgres и проверяет подключение
func openDatabase(cfg config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, err
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// loadCatalog загружает снимок каталога из фикстуры или Postgres.
// При catalog.seed фикстура сначала записывается в базу в одной транзакции.
func loadCatalog(ctx context.Context, cfg config.CatalogConfig, db *sql.DB, log *logger.Logger) (*catalogRepo.Snapshot, error) {
	fixture := catalogRepo.NewFixtureLoader(cfg.FixturePath)

	if cfg.Source != config.CatalogPostgres {
		return catalogRepo.Load(ctx, fixture)
	}

	repo := catalogRepo.NewRepository(db)

	if cfg.Seed {
		items, err := fixture.LoadItems(ctx)
		if err != nil {
			return nil, err
		}
		taxonomy, err := fixture.LoadCategories(ctx)
		if err != nil {
			return nil, err
		}

		err = dbmetrics.NewTxManager(db).Do(ctx, func(ctx context.Context) error {
			return repo.Seed(ctx, items, taxonomy)
		})
		if err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
		log.Info("Catalog seeded into postgres: %d items, %d categories", len(items), len(taxonomy))
	}

	return catalogRepo.Load(ctx, repo)
}
