package app

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/supplychain/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/supplychain/internal/health"
	"github.com/vladislavdragonenkov/supplychain/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/supplychain/internal/service/outbox"
	"github.com/vladislavdragonenkov/supplychain/internal/service/registry"
	"github.com/vladislavdragonenkov/supplychain/internal/version"
)

// Run собирает сервис реестра и блокируется до отмены ctx.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	storage, err := initStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := storage.Close(); err != nil {
			logger.WithError(err).Warn("failed to close storage")
		}
	}()

	// Kafka опционален: без брокера события копятся в outbox и не публикуются.
	producer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)
	defer closeKafka(producer, logger)

	svc := registry.NewService(
		storage.Clients,
		storage.Suppliers,
		storage.Orders,
		storage.Sequence,
		registry.WithLogger(log.WithField("component", "registry")),
		registry.WithOutbox(storage.Outbox),
	)
	var workerWG sync.WaitGroup
	if producer != nil {
		publisher := kafka.NewOutboxPublisher(producer, "")
		dlqPublisher := kafka.NewOutboxPublisher(producer, kafka.TopicDeadLetterQueue)
		worker := outbox.NewWorker(
			storage.Outbox,
			publisher,
			outbox.WithLogger(log.WithField("component", "outbox-worker")),
			outbox.WithDLQPublisher(dlqPublisher),
		)
		workerWG.Add(1)
		go func() {
			defer workerWG.Done()
			worker.Run(ctx)
		}()
	}

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	healthHandler.RegisterChecker("storage", healthcheck.NewSimpleChecker("storage", storage.Ping))
	// Пустой реестр отвечает NotFound, это штатное состояние.
	healthHandler.RegisterChecker("registry", healthcheck.NewSimpleChecker("registry", func() error {
		if _, err := svc.Orders(); err != nil && !domain.IsNotFound(err) {
			return err
		}
		return nil
	}))

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	logger.WithField("backend", storage.Backend).Info("supply chain registry started")

	<-ctx.Done()
	logger.Info("получен сигнал остановки, останавливаем сервис")

	workerWG.Wait()
	shutdownHTTP(metricsSrv, logger)

	return ctx.Err()
}

// startMetricsServer запускает HTTP-обработчик /metrics и health-пробы.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/livez, %s/readyz", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
