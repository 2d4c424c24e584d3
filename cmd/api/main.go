package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"boardhub/pkg/translator"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	dbadapter "boardhub/internal/adapter/db"
	emailadapter "boardhub/internal/adapter/email"
	httpadapter "boardhub/internal/adapter/http"
	"boardhub/internal/adapter/http/handlers"
	httpmiddleware "boardhub/internal/adapter/http/middleware"
	"boardhub/internal/app/service"
	"boardhub/internal/config"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	// Make zap available to packages that log through zap.L().
	zap.ReplaceGlobals(logger)
	defer func() {
		if err := logger.Sync(); err != nil {
			zap.L().Debug("failed to sync logger", zap.Error(err))
		}
	}()

	translator.InitTranslator(translator.Config{
		TranslationFolder:  "pkg/translator/translation",
		SupportedLanguages: []string{translator.LanguageFr, translator.LanguageEn},
	})

	cfg := config.LoadConfig()
	db, err := dbadapter.ConnectDB(cfg)
	if err != nil {
		logger.Fatal("failed to connect to mysql", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("failed to close mysql connection", zap.Error(err))
		}
	}()

	userRepo := dbadapter.NewUserRepository(db)
	boardRepo := dbadapter.NewBoardRepository(db)
	invitationRepo := dbadapter.NewInvitationRepository(db)
	taskRepo := dbadapter.NewTaskRepository(db)
	listRepo := dbadapter.NewListRepository(db)
	notificationRepo := dbadapter.NewNotificationRepository(db)

	emailSender := emailadapter.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	dispatcher := service.NewDispatcher(notificationRepo, emailSender, cfg.EmailQueueSize)
	defer dispatcher.Close()

	r := gin.New()
	r.Use(gin.Recovery(), httpmiddleware.GinZapMiddleware(logger))
	if len(cfg.TrustedProxies) > 0 {
		if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
			logger.Fatal("invalid trusted proxies", zap.Error(err))
		}
	}

	httpadapter.RegisterRoutes(r, httpadapter.Handlers{
		Health:       handlers.NewHealthHandler(db),
		Boards:       handlers.NewBoardHandler(service.NewBoardService(boardRepo)),
		Tasks:        handlers.NewTaskHandler(service.NewTaskService(boardRepo, taskRepo, listRepo, userRepo, dispatcher)),
		Lists:        handlers.NewListHandler(service.NewListService(boardRepo, listRepo)),
		Invitations:  handlers.NewInvitationHandler(service.NewInvitationService(boardRepo, invitationRepo, userRepo, dispatcher)),
		Notification: handlers.NewNotificationHandler(service.NewNotificationService(notificationRepo)),
	})

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("could not start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("forced shutdown", zap.Error(err))
	}
}
