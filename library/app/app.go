package app

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Astemirdum/biblioteca/library/config"
	"github.com/Astemirdum/biblioteca/library/internal/events"
	"github.com/Astemirdum/biblioteca/library/internal/handler"
	"github.com/Astemirdum/biblioteca/library/internal/ledger"
	"github.com/Astemirdum/biblioteca/library/internal/repository"
	"github.com/Astemirdum/biblioteca/library/internal/repository/memory"
	"github.com/Astemirdum/biblioteca/library/internal/server"
	"github.com/Astemirdum/biblioteca/library/internal/service"
	"github.com/Astemirdum/biblioteca/library/migrations"
	"github.com/Astemirdum/biblioteca/pkg/kafka"
	"github.com/Astemirdum/biblioteca/pkg/logger"
	"github.com/Astemirdum/biblioteca/pkg/postgres"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "library")
	defer log.Sync() //nolint:errcheck

	repo, db, err := newRepository(cfg, log)
	if err != nil {
		log.Fatal("repository init", zap.Error(err))
	}
	publisher, err := newPublisher(cfg.Kafka, log)
	if err != nil {
		log.Fatal("publisher init", zap.Error(err))
	}

	l := ledger.New(log)
	h := handler.New(
		service.NewCatalog(repo, l, log),
		service.NewRegistry(repo, l, publisher, log),
		log,
	)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(srv.Run)
	g.Go(func() error {
		<-ctx.Done()
		log.Debug("Graceful shutdown", zap.Error(context.Cause(ctx)))

		closeCtx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		defer cancel()
		return srv.Stop(closeCtx)
	})
	if err = g.Wait(); err != nil {
		log.Error("server", zap.Error(err))
	}

	if err = publisher.Close(); err != nil {
		log.Warn("publisher close", zap.Error(err))
	}
	if db != nil {
		if err = db.Close(); err != nil {
			log.Warn("db close", zap.Error(err))
		}
	}
	log.Info("Graceful shutdown finished")
}

func newRepository(cfg *config.Config, log *zap.Logger) (repository.Repository, *sqlx.DB, error) {
	if cfg.Storage == config.StorageMemory {
		log.Warn("in-memory storage: data is lost on restart")
		return memory.New(), nil, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*30)
	defer cancel()
	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		return nil, nil, errors.Wrap(err, "db init")
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		db.Close()
		return nil, nil, err
	}
	return repo, db, nil
}

func newPublisher(cfg kafka.Config, log *zap.Logger) (events.Publisher, error) {
	if !cfg.Enabled() {
		log.Info("KAFKA_ADDRS is empty, loan events are not published")
		return events.NewNopPublisher(), nil
	}
	producer, err := kafka.NewProducer(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "kafka.NewProducer")
	}
	return events.NewKafkaPublisher(producer, kafka.LoanTopic, log), nil
}
