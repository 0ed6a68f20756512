// Command server runs the KYC compliance service: dashboard queries,
// renewal reminders, company register lookups, and the audit outbox
// worker when Kafka is configured.
package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/lib/pq"
	"golang.org/x/sync/errgroup"

	"github.com/deltacloudassociates/optmark-crm-hub/internal/activity"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry"
	registryHandler "github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry/handler"
	registryMetrics "github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry/metrics"
	registryService "github.com/deltacloudassociates/optmark-crm-hub/internal/companyregistry/service"
	complianceHandler "github.com/deltacloudassociates/optmark-crm-hub/internal/compliance/handler"
	complianceMetrics "github.com/deltacloudassociates/optmark-crm-hub/internal/compliance/metrics"
	complianceService "github.com/deltacloudassociates/optmark-crm-hub/internal/compliance/service"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/directory"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/notify"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/config"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/httpserver"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/logger"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/platform/metrics"
	platformredis "github.com/deltacloudassociates/optmark-crm-hub/internal/platform/redis"
	"github.com/deltacloudassociates/optmark-crm-hub/internal/reminder"
	reminderHandler "github.com/deltacloudassociates/optmark-crm-hub/internal/reminder/handler"
	reminderMetrics "github.com/deltacloudassociates/optmark-crm-hub/internal/reminder/metrics"
	reminderService "github.com/deltacloudassociates/optmark-crm-hub/internal/reminder/service"
	httptransport "github.com/deltacloudassociates/optmark-crm-hub/internal/transport/http"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit"
	auditmemory "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/store/memory"
	auditpg "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/store/postgres"
	auditworker "github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/audit/worker"
	"github.com/deltacloudassociates/optmark-crm-hub/pkg/platform/tx"
)

func main() {
	cfg := config.FromEnv()
	log := logger.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Stores: PostgreSQL when configured, seeded memory stores otherwise.
	var (
		directoryStore directory.Store
		reminderStore  reminder.Store
		auditStore     audit.Store
		activityReader activity.Reader
		outboxStore    *auditpg.Store
		db             *sql.DB
	)
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err != nil {
			log.Error("open database", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := db.PingContext(ctx); err != nil {
			log.Error("ping database", "error", err)
			os.Exit(1)
		}
		directoryStore = directory.NewPostgresStore(db)
		reminderStore = reminder.NewPostgresStore(db)
		outboxStore = auditpg.New(db)
		auditStore = outboxStore
		activityReader = outboxStore
		log.Info("using postgresql stores")
	} else {
		memDirectory := directory.NewInMemoryStore()
		memDirectory.SeedDocuments(directory.FixtureDocuments()...)
		memDirectory.SeedBusinesses(directory.FixtureBusinesses()...)
		directoryStore = memDirectory
		reminderStore = reminder.NewInMemoryStore()
		memAudit := auditmemory.NewInMemoryStore()
		auditStore = memAudit
		activityReader = memAudit
		log.Info("using seeded memory stores")
	}

	redisClient, err := platformredis.New(cfg.Redis)
	if err != nil {
		log.Error("connect redis", "error", err)
		os.Exit(1)
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Reminder delivery: SMTP when configured, logging sender otherwise.
	var sender notify.Sender
	if cfg.SMTP.Host != "" {
		sender = notify.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.From)
		log.Info("using smtp sender", "host", cfg.SMTP.Host)
	} else {
		sender = notify.NewLogSender(log)
		log.Info("using logging sender")
	}

	auditor := audit.NewPublisher(auditStore, log)
	httpMetrics := metrics.New()

	complianceSvc := complianceService.New(directoryStore, complianceMetrics.New(), log)
	// On PostgreSQL the reminder record and its audit outbox row commit in
	// one transaction.
	var txRunner reminderService.TxRunner
	if db != nil {
		dbHandle := db
		txRunner = func(ctx context.Context, fn func(ctx context.Context) error) error {
			return tx.Run(ctx, dbHandle, fn)
		}
	}
	reminderSvc := reminderService.New(directoryStore, sender, reminderStore, auditor, txRunner, reminderMetrics.New(), log, cfg.ReminderCooldown)

	registerClient := companyregistry.NewClient(cfg.Registry.BaseURL, cfg.Registry.APIKey, cfg.Registry.Timeout)
	var lookupCache registryService.Cache
	if redisClient != nil {
		lookupCache = companyregistry.NewRedisCache(redisClient.Client, cfg.Registry.CacheTTL)
	}
	registrySvc := registryService.New(directoryStore, registerClient, lookupCache, nil, auditor, registryMetrics.New(), log)

	var checks []httptransport.HealthCheck
	if db != nil {
		checks = append(checks, httptransport.HealthCheck{
			Name:  "postgres",
			Check: db.PingContext,
		})
	}
	if redisClient != nil {
		checks = append(checks, httptransport.HealthCheck{
			Name:  "redis",
			Check: redisClient.Health,
		})
	}

	router := httptransport.NewRouter(log, httpMetrics, []httptransport.Registrar{
		complianceHandler.New(complianceSvc, log),
		reminderHandler.New(reminderSvc, log),
		registryHandler.New(registrySvc, log),
		activity.New(activityReader, log),
	}, checks)

	srv := httpserver.New(cfg.Addr, router.Build())

	group, groupCtx := errgroup.WithContext(ctx)

	if len(cfg.Kafka.Brokers) > 0 && outboxStore != nil {
		worker, err := auditworker.New(ctx, cfg.Kafka.Brokers, cfg.Kafka.Topic, outboxStore, log)
		if err != nil {
			log.Error("start audit worker", "error", err)
			os.Exit(1)
		}
		defer worker.Close()
		group.Go(func() error {
			log.Info("audit outbox worker started", "topic", cfg.Kafka.Topic)
			if err := worker.Run(groupCtx); !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		})
	}

	group.Go(func() error {
		log.Info("http server listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := group.Wait(); err != nil {
		log.Error("service stopped", "error", err)
		os.Exit(1)
	}
	log.Info("service stopped")
}
