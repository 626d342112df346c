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

	clearChatHistoryHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/clear_chat_history"
	confirmBookingHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/confirm_booking"
	createSessionHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/create_session"
	getBookingHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/get_booking"
	getBookingFormHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/get_booking_form"
	getChatHistoryHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/get_chat_history"
	listBookingsHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/list_bookings"
	sendMessageHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/send_message"
	updateBookingFormHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/update_booking_form"
	uploadDocumentsHandler "github.com/m04kA/SMC-AssistantService/internal/api/handlers/upload_documents"
	"github.com/m04kA/SMC-AssistantService/internal/api/middleware"
	"github.com/m04kA/SMC-AssistantService/internal/config"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
	bookingRepo "github.com/m04kA/SMC-AssistantService/internal/infra/storage/booking"
	customerRepo "github.com/m04kA/SMC-AssistantService/internal/infra/storage/customer"
	"github.com/m04kA/SMC-AssistantService/internal/integrations/gemini"
	"github.com/m04kA/SMC-AssistantService/internal/integrations/mailer"
	bookingformService "github.com/m04kA/SMC-AssistantService/internal/service/bookingform"
	bookingsService "github.com/m04kA/SMC-AssistantService/internal/service/bookings"
	"github.com/m04kA/SMC-AssistantService/internal/service/documents"
	"github.com/m04kA/SMC-AssistantService/internal/service/ragindex"
	sessionsService "github.com/m04kA/SMC-AssistantService/internal/service/sessions"
	answerQuestionUC "github.com/m04kA/SMC-AssistantService/internal/usecase/answer_question"
	buildIndexUC "github.com/m04kA/SMC-AssistantService/internal/usecase/build_index"
	confirmBookingUC "github.com/m04kA/SMC-AssistantService/internal/usecase/confirm_booking"
	sendMessageUC "github.com/m04kA/SMC-AssistantService/internal/usecase/send_message"
	"github.com/m04kA/SMC-AssistantService/pkg/llmmetrics"
	"github.com/m04kA/SMC-AssistantService/pkg/logger"
	"github.com/m04kA/SMC-AssistantService/pkg/metrics"
	"github.com/m04kA/SMC-AssistantService/pkg/txmanager"
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

	log.Info("Starting SMC-AssistantService...")
	log.Info("Configuration loaded from config.toml")

	ctx := context.Background()

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Подключаемся к Redis для хранения сессий
	store, err := sessionStore.NewRedisStore(
		ctx,
		cfg.Redis.Addr,
		cfg.Redis.Password,
		cfg.Redis.DB,
		time.Duration(cfg.Redis.SessionTTLMinutes)*time.Minute,
	)
	if err != nil {
		log.Fatal("Failed to connect to redis: %v", err)
	}
	defer store.Close()
	log.Info("Successfully connected to redis (addr=%s, session_ttl=%dm)",
		cfg.Redis.Addr, cfg.Redis.SessionTTLMinutes)

	// Инициализируем клиент Gemini
	// Без API-ключа сервис стартует, но операции с моделью отвечают 503
	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, cfg.Gemini.EmbeddingModel, log)
	if err != nil {
		if !errors.Is(err, gemini.ErrNotConfigured) {
			log.Fatal("Failed to initialize gemini client: %v", err)
		}
		log.Warn("GEMINI_API_KEY is not set, language model operations will be unavailable")
		geminiClient = nil
	} else {
		defer geminiClient.Close()
		log.Info("Gemini client initialized (model=%s, embedding_model=%s)",
			cfg.Gemini.Model, cfg.Gemini.EmbeddingModel)
	}

	// Инициализируем SMTP-клиент
	mailClient := mailer.NewClient(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Password, log)
	if mailClient.Configured() {
		log.Info("Mailer initialized (host=%s, port=%d)", cfg.SMTP.Host, cfg.SMTP.Port)
	} else {
		log.Warn("SMTP credentials are not set, confirmation mails will be skipped")
	}

	// Реестр поисковых индексов живет в памяти процесса
	registry := ragindex.NewRegistry()

	// Инициализируем репозитории
	bookingRepository := bookingRepo.NewRepository(db)
	customerRepository := customerRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	sessionSvc := sessionsService.NewService(store, registry, log)
	formSvc := bookingformService.NewService(store, log)
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Интерфейсные переменные, чтобы nil-клиент не превращался
	// в непустой интерфейс с nil-указателем внутри
	var (
		answerModel answerQuestionUC.LanguageModel
		chatModel   sendMessageUC.LanguageModel
		embedder    buildIndexUC.Embedder
	)
	if geminiClient != nil {
		var llm llmmetrics.LanguageModel = geminiClient
		if cfg.Metrics.Enabled {
			llm = llmmetrics.Wrap(geminiClient, metricsCollector)
		}
		answerModel = llm
		chatModel = llm
		embedder = llm
	}

	var chatMetrics sendMessageUC.Metrics
	if cfg.Metrics.Enabled {
		chatMetrics = metricsCollector
	}

	// Инициализируем use cases
	answerQuestionUseCase := answerQuestionUC.NewUseCase(answerModel, registry, cfg.RAG.TopK, log)
	sendMessageUseCase := sendMessageUC.NewUseCase(
		store,
		chatModel,
		answerQuestionUseCase,
		registry,
		chatMetrics,
		cfg.Chat.HistoryLimit,
		log,
	)
	buildIndexUseCase := buildIndexUC.NewUseCase(
		documents.NewParser(),
		embedder,
		registry,
		cfg.RAG.ChunkSize,
		cfg.RAG.ChunkOverlap,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		store,
		customerRepository,
		bookingRepository,
		txManager,
		mailClient,
		log,
	)

	// Инициализируем handlers
	createSession := createSessionHandler.NewHandler(sessionSvc, log)
	sendMessage := sendMessageHandler.NewHandler(sendMessageUseCase, log)
	getChatHistory := getChatHistoryHandler.NewHandler(sessionSvc, log)
	clearChatHistory := clearChatHistoryHandler.NewHandler(sessionSvc, log)
	uploadDocuments := uploadDocumentsHandler.NewHandler(buildIndexUseCase, sessionSvc, log)
	getBookingForm := getBookingFormHandler.NewHandler(formSvc, log)
	updateBookingForm := updateBookingFormHandler.NewHandler(formSvc, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Сессии и диалог ---
	api.HandleFunc("/sessions", createSession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/messages", sendMessage.Handle).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{sessionId}/messages", getChatHistory.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/messages", clearChatHistory.Handle).Methods(http.MethodDelete)

	// --- Документы ---
	api.HandleFunc("/sessions/{sessionId}/documents", uploadDocuments.Handle).Methods(http.MethodPost)

	// --- Форма бронирования ---
	api.HandleFunc("/sessions/{sessionId}/booking", getBookingForm.Handle).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{sessionId}/booking", updateBookingForm.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/sessions/{sessionId}/booking/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// --- Админ-панель (требует X-Admin-Token) ---
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AdminAuth(cfg.Admin.Token, log))
	admin.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

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

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
