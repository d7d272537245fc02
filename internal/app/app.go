package app

import (
	"context"
	"fmt"

	"github.com/Freeeeeet/fitness_club/internal/availability"
	"github.com/Freeeeeet/fitness_club/internal/config"
	"github.com/Freeeeeet/fitness_club/internal/metrics"
	"github.com/Freeeeeet/fitness_club/internal/repository"
	"github.com/Freeeeeet/fitness_club/internal/repository/base"
	"github.com/Freeeeeet/fitness_club/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Services все сервисы клуба, собранные поверх одного пула
type Services struct {
	Members   *service.MemberService
	Schedule  *service.ScheduleService
	Trainers  *service.TrainerService
	Classes   *service.ClassService
	Rooms     *service.RoomService
	Equipment *service.EquipmentService
	Billing   *service.BillingService
}

// App подключение к базе, реестр метрик и сервисы
type App struct {
	Pool     *pgxpool.Pool
	Registry *prometheus.Registry
	Engine   *availability.Engine
	Services Services

	metricsServer *MetricsServer
	logger        *zap.Logger
}

// New подключается к базе, применяет миграции и собирает сервисы
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	pool, err := pgxpool.New(ctx, cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	logger.Info("Connected to PostgreSQL")

	migrator, err := NewMigrator(pool, cfg.MigrationsDir, logger)
	if err != nil {
		pool.Close()
		return nil, err
	}
	defer migrator.Close()

	if err := migrator.Run(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	tx := base.NewTxManager(pool)
	commitments := repository.NewCommitmentRepository(pool)
	members := repository.NewMemberRepository(pool)
	accounts := repository.NewAccountRepository(pool)
	goals := repository.NewGoalRepository(pool)
	routines := repository.NewRoutineRepository(pool)
	classes := repository.NewClassRepository(pool)
	sessions := repository.NewSessionRepository(pool)
	rooms := repository.NewRoomRepository(pool)
	equipment := repository.NewEquipmentRepository(pool)
	payments := repository.NewPaymentRepository(pool)

	engine := availability.NewEngine(commitments, m, logger.Named("availability"))

	a := &App{
		Pool:     pool,
		Registry: registry,
		Engine:   engine,
		Services: Services{
			Members:   service.NewMemberService(members, accounts, goals, routines, tx, logger),
			Schedule:  service.NewScheduleService(engine, classes, sessions, members, accounts, tx, m, logger),
			Trainers:  service.NewTrainerService(engine, commitments, members, accounts, goals, tx, logger),
			Classes:   service.NewClassService(engine, classes, commitments, accounts, tx, m, logger),
			Rooms:     service.NewRoomService(engine, rooms, tx, m, logger),
			Equipment: service.NewEquipmentService(equipment, tx, logger),
			Billing:   service.NewBillingService(payments, members, service.StubProcessor{}, m, logger),
		},
		logger: logger,
	}

	if cfg.MetricsAddr != "" {
		a.metricsServer = NewMetricsServer(cfg.MetricsAddr, registry, pool, logger)
		a.metricsServer.Start()
	}

	return a, nil
}

// Close останавливает сервер метрик и закрывает пул
func (a *App) Close(ctx context.Context) {
	if a.metricsServer != nil {
		if err := a.metricsServer.Shutdown(ctx); err != nil {
			a.logger.Warn("Metrics server shutdown", zap.Error(err))
		}
	}
	a.Pool.Close()
}
