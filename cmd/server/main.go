package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/config"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/handler"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/logging"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/model"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/service"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/pkg/auth"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := repository.NewPool(ctx, cfg.Database)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	userRepo := repository.NewPgUserRepository(pool)
	inquiryRepo := repository.NewPgInquiryRepository(pool)
	eventRepo := repository.NewPgStatusEventRepository(pool)
	reportRepo := repository.NewPgReportRepository(pool)
	messageRepo := repository.NewPgWhatsAppMessageRepository(pool)

	inquiryService := service.NewInquiryService(inquiryRepo, eventRepo, messageRepo)
	reportService := service.NewReportService(
		inquiryRepo,
		reportRepo,
		service.NewBurnClassifier(cfg.Report.BurnedStatuses),
		cfg.Report.TopUpdatersLimit,
	)
	userService := service.NewUserService(userRepo)

	h := handler.New(pool)
	inquiryHandler := handler.NewInquiryHandler(inquiryService)
	reportHandler := handler.NewReportHandler(reportService)
	meHandler := handler.NewMeHandler(userService)
	authHandler := handler.NewAuthHandler(cfg.Auth.CookieName, cfg.Auth.CookieSecure)
	limiter := handler.NewRateLimiter(ctx, cfg.RateLimit.InquiriesPerMinute, cfg.RateLimit.TrustedProxies)

	// 認証: AUTH_REQUIRED=false の開発環境ではダミー管理者を注入する
	var identify func(http.Handler) http.Handler
	if cfg.Auth.Required {
		sessions := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.Issuer, cfg.Auth.SessionTTL)
		identify = auth.Authenticate(sessions, cfg.Auth.CookieName)
	} else {
		slog.Warn("authentication disabled, all requests act as the dev admin", "user_id", auth.DevUserID)
		dev := &model.User{ID: auth.DevUserID, Email: "dev@localhost", Name: "Developer", Role: auth.DevRole}
		if err := userRepo.Ensure(ctx, dev); err != nil {
			logging.Fatal("failed to seed dev user", "error", err)
		}
		identify = auth.DevAuth
	}
	active := handler.RequireActiveUser(userService)
	protected := func(fn http.HandlerFunc) http.Handler {
		return auth.RequireAuth(active(fn))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", h.Health)
	mux.Handle("GET /api/me", protected(meHandler.Me))
	mux.HandleFunc("POST /api/auth/logout", authHandler.Logout)

	// Public inquiry form
	mux.Handle("POST /api/inquiries", limiter.Middleware(http.HandlerFunc(inquiryHandler.Submit)))

	mux.Handle("PATCH /api/inquiries/{id}/read", protected(inquiryHandler.MarkRead))
	mux.Handle("POST /api/inquiries/{id}/status", protected(inquiryHandler.RecordStatus))
	mux.Handle("GET /api/inquiries/{id}/status-history", protected(inquiryHandler.StatusHistory))
	mux.Handle("POST /api/inquiries/{id}/whatsapp-sent", protected(inquiryHandler.InquiryWhatsAppSent))
	mux.Handle("POST /api/registrations/{id}/whatsapp-sent", protected(inquiryHandler.RegistrationWhatsAppSent))

	mux.Handle("GET /api/reports/inquiries-with-status", protected(reportHandler.InquiriesWithStatus))
	mux.Handle("GET /api/reports/inquiry-button-stats", protected(reportHandler.ButtonStats))
	mux.Handle("GET /api/reports/whatsapp-sent-counts", protected(reportHandler.WhatsAppSentCounts))

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      handler.RequestLogger(handler.SecurityHeaders(handler.CORS(cfg.CORS)(identify(mux)))),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		slog.Info("server listening", "addr", server.Addr, "auth_required", cfg.Auth.Required)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal("server error", "error", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
