package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"gorm.io/gorm"

	httpadp "loan-origination-backend/internal/adapter/http"
	"loan-origination-backend/internal/adapter/middleware"
	"loan-origination-backend/internal/adapter/notify"
	"loan-origination-backend/internal/adapter/repository/mysql"
	"loan-origination-backend/internal/adapter/repository/redisstore"
	"loan-origination-backend/internal/adapter/storage"
	"loan-origination-backend/internal/config"
	categoryDomain "loan-origination-backend/internal/domain/category"
	loanDomain "loan-origination-backend/internal/domain/loan"
	notifyDomain "loan-origination-backend/internal/domain/notify"
	"loan-origination-backend/internal/infrastructure/cache"
	"loan-origination-backend/internal/infrastructure/db"
	"loan-origination-backend/internal/infrastructure/logger"
	"loan-origination-backend/internal/infrastructure/mail"
	"loan-origination-backend/internal/infrastructure/metrics"
	"loan-origination-backend/internal/infrastructure/mq"
	"loan-origination-backend/internal/infrastructure/objectstore"
	"loan-origination-backend/internal/usecase/category"
	"loan-origination-backend/internal/usecase/dashboard"
	"loan-origination-backend/internal/usecase/loan"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	lg, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	if err := run(cfg, lg); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg *config.Config, lg *zap.Logger) error {
	gdb, err := db.OpenGorm(cfg.MySQLDSN(), db.Options{Logger: lg, LogLevel: cfg.LogLevel})
	if err != nil {
		return err
	}
	if err := migrate(gdb); err != nil {
		return err
	}

	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB, lg)
	if err != nil {
		return err
	}
	defer rdb.Close()

	mc, err := objectstore.Open(objectstore.Config{
		Endpoint:  cfg.MinioEndpoint,
		AccessKey: cfg.MinioAccessKey,
		SecretKey: cfg.MinioSecretKey,
		Bucket:    cfg.MinioBucket,
		Region:    cfg.MinioRegion,
		Secure:    cfg.MinioSecure,
	}, lg)
	if err != nil {
		return err
	}

	notifier, closeNotifier, err := buildNotifier(cfg, lg)
	if err != nil {
		return err
	}
	defer closeNotifier()

	// usecases
	categoryUC := category.NewUsecase(mysql.NewCategoryRepository(gdb))
	loanRepo := mysql.NewLoanRepository(gdb)
	loanUC := loan.NewUsecase(loan.Deps{
		Loans:          loanRepo,
		Rates:          categoryUC,
		Sequence:       redisstore.NewSequenceRepository(rdb),
		Uploader:       storage.NewMinioUploader(mc, cfg.MinioBucket, cfg.MinioPublicURL),
		Notifier:       notifier,
		Logger:         lg.Named("loan"),
		MaxUploadBytes: cfg.UploadMaxBytes,
	})
	dashboardUC := dashboard.NewUsecase(loanRepo, lg.Named("dashboard"))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = httpadp.NewValidator()
	e.HTTPErrorHandler = httpadp.NewHTTPErrorHandler(lg)
	e.Use(echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogURI:      true,
		LogStatus:   true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				lg.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			lg.Info("request", fields...)
			return nil
		},
	}))
	e.Use(echomw.Recover(), middleware.Metrics())

	httpadp.Routes{
		Health:     httpadp.NewHandler(),
		Loans:      httpadp.NewLoanHandler(loanUC, lg),
		Categories: httpadp.NewCategoryHandler(categoryUC, lg),
		Dashboard:  httpadp.NewDashboardHandler(dashboardUC, lg),
		Auth:       middleware.Auth([]byte(cfg.JWTSecret)),
		Idempotent: middleware.Idempotency(rdb, time.Duration(cfg.IdempTTLSecs)*time.Second, lg),

		MaxBodyBytes: httpadp.UploadBodyLimit(cfg.UploadMaxBytes),
	}.Register(e)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.AppPort
		lg.Info("listening", zap.String("addr", addr))
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	lg.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&loanDomain.Loan{}, &categoryDomain.Category{})
}

// buildNotifier fans status changes out to whichever channels are configured.
func buildNotifier(cfg *config.Config, lg *zap.Logger) (notifyDomain.Notifier, func(), error) {
	var (
		channels []notify.Channel
		closers  []func() error
	)
	if cfg.QueueEnabled() {
		conn, err := mq.Connect(cfg.RabbitMQURL, cfg.NotifyQueue, lg)
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, conn.Close)
		channels = append(channels, notify.Channel{Name: "queue", Notifier: notify.NewQueueNotifier(conn.Channel, cfg.NotifyQueue)})
	}
	if cfg.EmailEnabled() {
		dialer := mail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
		channels = append(channels, notify.Channel{Name: "email", Notifier: notify.NewEmailNotifier(dialer, cfg.SMTPFrom)})
	}
	closeAll := func() {
		for _, c := range closers {
			if err := c(); err != nil {
				lg.Warn("notifier close", zap.Error(err))
			}
		}
	}
	if len(channels) == 0 {
		lg.Info("status notifications disabled")
		return notifyDomain.Nop{}, closeAll, nil
	}
	return notify.NewFanout(metrics.NotificationFailures, lg.Named("notify"), channels...), closeAll, nil
}
