package bootstrap

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/obsworks/telegraf-confd/internal/config"
	"github.com/obsworks/telegraf-confd/internal/logic"
	"github.com/obsworks/telegraf-confd/internal/repo"
	"github.com/obsworks/telegraf-confd/internal/router"
	"github.com/obsworks/telegraf-confd/pkg/log"
	"github.com/obsworks/telegraf-confd/pkg/metrics"
	"github.com/obsworks/telegraf-confd/pkg/pprof"
)

type App struct {
	HttpApp       *fiber.App
	MetricsServer *metrics.Server
	PprofServer   *pprof.Server
	Conf          config.AppConfig
}

// Bootstrap builds the application from its configuration file: logger,
// record store, logic, router, metrics and pprof servers.
func Bootstrap(configFile string) (*App, func(), error) {
	conf := config.NewConf(configFile)

	if err := log.Init(&conf.Log); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	configRepo, err := repo.NewConfigRepo(conf.Storage.Dir)
	if err != nil {
		return nil, nil, err
	}

	validateLogic := logic.NewValidateLogic()
	configLogic := logic.NewConfigLogic(configRepo, validateLogic)

	rt := router.NewRouter(&conf.Http, configLogic, validateLogic)
	httpApp := rt.Router(log.Desugar())

	metricsServer := metrics.NewServer(conf.Metrics)
	metrics.RegisterStoreMetrics(metricsServer.GetRegistry())
	if count, err := configRepo.Count(); err == nil {
		metrics.UpdateStoredConfigs(count)
	}

	pprofServer := pprof.NewServer(conf.Pprof)

	cleanup := func() {
		if pprofServer != nil {
			log.Info("Shutting down pprof server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := pprofServer.Stop(shutdownCtx); err != nil {
				log.Errorw("Failed to stop pprof server", "error", err)
			}
		}

		if metricsServer != nil {
			log.Info("Shutting down metrics server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := metricsServer.Stop(shutdownCtx); err != nil {
				log.Errorw("Failed to stop metrics server", "error", err)
			}
		}
	}

	app := &App{
		HttpApp:       httpApp,
		MetricsServer: metricsServer,
		PprofServer:   pprofServer,
		Conf:          conf,
	}
	return app, cleanup, nil
}

// Run starts the app and waits for an exit signal, then gracefully shuts
// everything down.
func Run(app *App, cleanup func()) {
	appConf := app.Conf

	if app.MetricsServer != nil {
		if err := app.MetricsServer.Start(); err != nil {
			log.Errorw("Metrics server failed", "error", err)
		}
	}

	if app.PprofServer != nil {
		if err := app.PprofServer.Start(); err != nil {
			log.Errorw("Pprof server failed", "error", err)
		}
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGHUP, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		addr := fmt.Sprintf("%s:%d", appConf.Http.Host, appConf.Http.Port)
		log.Infow("HTTP listener started",
			"address", addr,
		)
		if err := app.HttpApp.Listen(addr); err != nil {
			log.Errorw("HTTP listener failed",
				"address", addr,
				"error", err,
			)
		}
	}()

	sig := <-quit
	log.Infow("Received signal, shutting down gracefully...", "signal", sig)

	shutdownTimeout := time.Duration(appConf.Http.ShutdownTimeout) * time.Second
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := app.HttpApp.ShutdownWithContext(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	} else {
		log.Info("HTTP server shut down gracefully")
	}

	cleanup()

	log.Info("Server shutdown complete")
}
