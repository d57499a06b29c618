package main

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/cloud-gov/password-meter/strength"
)

const metricsNamespace = "password_meter"

type Metrics struct {
	Evaluations *prometheus.CounterVec
	Generated   prometheus.Counter
	Requests    *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "evaluations_total",
			Help:      "Passwords scored, partitioned by strength band.",
		}, []string{"band"}),
		Generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "generated_total",
			Help:      "Passwords generated.",
		}),
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests partitioned by method, route, and status code.",
		}, []string{"method", "route", "status"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request latencies in seconds partitioned by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	for _, c := range []prometheus.Collector{m.Evaluations, m.Generated, m.Requests, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register collector: %w", err)
		}
	}
	return m, nil
}

// NewSessionsGauge reports how many sessions currently hold a saved password.
func NewSessionsGauge(reg prometheus.Registerer, history *HistoryStore) (prometheus.GaugeFunc, error) {
	g := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: metricsNamespace,
		Name:      "sessions",
		Help:      "Sessions holding a saved password.",
	}, func() float64 {
		return float64(history.Len())
	})
	if err := reg.Register(g); err != nil {
		return nil, fmt.Errorf("register collector: %w", err)
	}
	return g, nil
}

func (m *Metrics) ObserveScore(res strength.Result) {
	if m == nil {
		return
	}
	m.Evaluations.WithLabelValues(string(strength.BandFor(res.Score))).Inc()
}

func (m *Metrics) ObserveGenerated() {
	if m == nil {
		return
	}
	m.Generated.Inc()
}

// Middleware records request counts and latencies by route template.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		m.Requests.WithLabelValues(r.Method, route, strconv.Itoa(sw.status)).Inc()
		m.Duration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}
