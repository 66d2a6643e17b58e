package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Результаты операций для лейбла result.
const (
	ResultOK               = "ok"
	ResultNotFound         = "not_found"
	ResultInvalidPayload   = "invalid_payload"
	ResultAlreadyCompleted = "already_completed"
	ResultStorageFault     = "storage_fault"
)

// RegistryMetrics содержит метрики операций над реестром сущностей.
type RegistryMetrics struct {
	// Счётчик операций с разбивкой по операции и результату.
	operationsTotal *prometheus.CounterVec
	// Гистограмма времени выполнения операций.
	operationDuration *prometheus.HistogramVec
	// Счётчик созданных сущностей по виду.
	entitiesCreated *prometheus.CounterVec
	// Счётчик завершённых заказов.
	ordersCompleted prometheus.Counter
	// Счётчик удалённых заказов.
	ordersDeleted prometheus.Counter
}

// NewRegistryMetrics создаёт новый экземпляр метрик реестра.
func NewRegistryMetrics() *RegistryMetrics {
	return newRegistryMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newRegistryMetricsWithRegisterer(registerer prometheus.Registerer) *RegistryMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &RegistryMetrics{
		operationsTotal: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "supplychain_operations_total",
			Help: "Total number of registry operations grouped by operation and result",
		}, []string{"op", "result"}),
		operationDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "supplychain_operation_duration_seconds",
			Help:    "Duration of registry operations in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
		}, []string{"op"}),
		entitiesCreated: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "supplychain_entities_created_total",
			Help: "Total number of created entities grouped by kind",
		}, []string{"kind"}),
		ordersCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "supplychain_orders_completed_total",
			Help: "Total number of orders transitioned to the completed state",
		}),
		ordersDeleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "supplychain_orders_deleted_total",
			Help: "Total number of orders removed from the registry",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.HistogramVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOperation увеличивает счётчик операции с заданным результатом.
func (m *RegistryMetrics) RecordOperation(op, result string) {
	m.operationsTotal.WithLabelValues(op, result).Inc()
}

// ObserveOperationDuration записывает время выполнения операции.
func (m *RegistryMetrics) ObserveOperationDuration(op string, duration time.Duration) {
	m.operationDuration.WithLabelValues(op).Observe(duration.Seconds())
}

// RecordEntityCreated увеличивает счётчик созданных сущностей указанного вида.
func (m *RegistryMetrics) RecordEntityCreated(kind string) {
	m.entitiesCreated.WithLabelValues(kind).Inc()
}

// RecordOrderCompleted увеличивает счётчик завершённых заказов.
func (m *RegistryMetrics) RecordOrderCompleted() {
	m.ordersCompleted.Inc()
}

// RecordOrderDeleted увеличивает счётчик удалённых заказов.
func (m *RegistryMetrics) RecordOrderDeleted() {
	m.ordersDeleted.Inc()
}
