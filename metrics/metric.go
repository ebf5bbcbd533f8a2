package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hyperledger-labs/firefly-explorer/logging"
)

var (
	FetchCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "core_fetch_total",
		Help: "Number of fetches issued against the FireFly core API, by resource.",
	}, []string{"resource"})

	FetchFailureCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "core_fetch_failure_total",
		Help: "Number of failed fetches against the FireFly core API, by resource.",
	}, []string{"resource"})

	StaleResponseCount = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "stale_response_dropped_total",
		Help: "Number of response sets dropped because a newer refresh superseded them.",
	})

	PageRenderCount = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "page_render_total",
		Help: "Number of explorer pages rendered, by page.",
	}, []string{"page"})

	MetricsItems = []prometheus.Collector{
		FetchCount,
		FetchFailureCount,
		StaleResponseCount,
		PageRenderCount,
	}
)

const DefaultMetricsAddress = "0.0.0.0:9090"

type Metrics struct {
	httpAddress string
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewMetrics(address string) *Metrics {
	return &Metrics{
		httpAddress: address,
		registry:    prometheus.NewRegistry(),
	}
}

func (m *Metrics) Start() {
	m.registry.MustRegister(MetricsItems...)
	go m.serve()
}

func (m *Metrics) serve() {
	router := mux.NewRouter()
	router.Path("/metrics").Handler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.httpServer = &http.Server{
		Addr:    m.httpAddress,
		Handler: router,
	}
	if err := m.httpServer.ListenAndServe(); err != nil {
		logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
		panic(err)
	}
}
