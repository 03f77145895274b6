package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/service"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/catalog"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/event"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/metrics"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/mysql"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/session"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/transport"
)

func runService(c *cli.Context) error {
	cfg, err := parseEnv()
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}

	menu, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(metrics.ObserveEvent)

	if cfg.DatabaseDSN != "" {
		db, err := mysql.Open(cfg.DatabaseDSN)
		if err != nil {
			return err
		}
		defer db.Close()
		dispatcher.Subscribe(model.PurchaseCompleted{}.Type(), event.ReceiptJournal(mysql.NewReceiptRepository(db)))
	} else {
		log.Warn("Database DSN is not set, receipts will not be stored")
	}

	sessions := session.NewStore()
	orderService := service.NewOrderService(menu, dispatcher)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddress,
		Handler: transport.Router(orderService, menu, sessions, cfg.AssetsDir),
	}
	grpcServer, healthServer := transport.HealthServer()

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	g, gCtx := errgroup.WithContext(ctx)

	killSignalChan := getKillSignalChan()
	g.Go(func() error {
		select {
		case killSignal := <-killSignalChan:
			logKillSignal(killSignal)
			cancel()
		case <-gCtx.Done():
		}
		return nil
	})

	g.Go(func() error {
		log.WithFields(log.Fields{"url": cfg.HTTPAddress}).Info("Starting server")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "http server failed")
		}
		return nil
	})

	g.Go(func() error {
		listener, err := net.Listen("tcp", cfg.GRPCAddress)
		if err != nil {
			return errors.Wrapf(err, "failed to listen on %s", cfg.GRPCAddress)
		}
		log.WithFields(log.Fields{"url": cfg.GRPCAddress}).Info("Starting health server")
		return errors.Wrap(grpcServer.Serve(listener), "grpc server failed")
	})

	g.Go(func() error {
		evictSessions(gCtx, sessions, cfg.SessionEvictInterval, cfg.SessionIdleTTL)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		healthServer.Shutdown()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer shutdownCancel()
		err := httpServer.Shutdown(shutdownCtx)
		grpcServer.GracefulStop()
		return errors.Wrap(err, "failed to shutdown http server")
	})

	return g.Wait()
}

func loadCatalog(path string) (*model.Catalog, error) {
	if path == "" {
		log.Info("Catalog path is not set, using built-in menu")
		return catalog.Default(), nil
	}

	menu, err := catalog.Load(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load catalog")
	}
	log.WithFields(log.Fields{"path": path, "items": menu.Len()}).Info("Catalog loaded")
	return menu, nil
}

func evictSessions(ctx context.Context, sessions *session.Store, interval, idleFor time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if evicted := sessions.Evict(idleFor); evicted > 0 {
				log.WithField("evicted", evicted).Debug("Evicted idle sessions")
			}
			metrics.SetActiveSessions(sessions.Len())
		}
	}
}

func getKillSignalChan() chan os.Signal {
	osKillSignalChan := make(chan os.Signal, 1)
	signal.Notify(osKillSignalChan, os.Interrupt, syscall.SIGTERM)
	return osKillSignalChan
}

func logKillSignal(killSignal os.Signal) {
	switch killSignal {
	case os.Interrupt:
		log.Info("Got SIGINT...")
	case syscall.SIGTERM:
		log.Info("Got SIGTERM...")
	}
}
