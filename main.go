package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/gorilla/mux"
	"github.com/kelseyhightower/envconfig"
	"github.com/pivotal-cf/brokerapi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cloud-gov/password-meter/locale"
	"github.com/cloud-gov/password-meter/strength"
)

type Config struct {
	Port              string        `envconfig:"port" default:"3000"`
	LogLevel          string        `envconfig:"log_level" default:"info"`
	DefaultLanguage   string        `envconfig:"default_language" default:"en"`
	HistoryTTL        time.Duration `envconfig:"history_ttl" default:"30m"`
	BrokerUsername    string        `envconfig:"broker_username"`
	BrokerPassword    string        `envconfig:"broker_password"`
	PasswordLength    int           `envconfig:"password_length" default:"32"`
	FugaciousAddress  string        `envconfig:"fugacious_address"`
	FugaciousHours    int           `envconfig:"fugacious_hours" default:"2"`
	FugaciousMaxViews int           `envconfig:"fugacious_max_views" default:"2"`
}

func (c Config) BrokerEnabled() bool {
	return c.BrokerUsername != "" && c.BrokerPassword != ""
}

func (c Config) Validate() error {
	if (c.BrokerUsername == "") != (c.BrokerPassword == "") {
		return fmt.Errorf("broker_username and broker_password must be set together")
	}
	if c.PasswordLength < 1 || c.PasswordLength > maxBindLength {
		return fmt.Errorf("password_length must be between 1 and %d", maxBindLength)
	}
	if c.HistoryTTL <= 0 {
		return fmt.Errorf("history_ttl must be positive")
	}
	return nil
}

func logLevel(name string) (lager.LogLevel, error) {
	switch name {
	case "debug":
		return lager.DEBUG, nil
	case "info":
		return lager.INFO, nil
	case "error":
		return lager.ERROR, nil
	case "fatal":
		return lager.FATAL, nil
	default:
		return lager.INFO, fmt.Errorf("unknown log level %q", name)
	}
}

// NewHandler wires the web form, JSON API, metrics and, when configured, the
// service broker onto one router.
func NewHandler(config Config, logger lager.Logger, registry *prometheus.Registry) (http.Handler, error) {
	catalog, err := locale.Load(config.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	metrics, err := NewMetrics(registry)
	if err != nil {
		return nil, err
	}

	var sender CredentialSender
	if config.FugaciousAddress != "" {
		sender = NewFugaciousCredentialSender(logger, config.FugaciousAddress, config.FugaciousHours, config.FugaciousMaxViews)
	}

	history := NewHistoryStore(config.HistoryTTL)
	if _, err := NewSessionsGauge(registry, history); err != nil {
		return nil, err
	}

	server := &Server{
		logger:           logger.Session("web"),
		catalog:          catalog,
		history:          history,
		generatePassword: strength.Generate,
		credentialSender: sender,
		metrics:          metrics,
	}

	router := mux.NewRouter()
	router.Use(RequestID, SecurityHeaders, Recovery(logger), RequestLogger(logger), metrics.Middleware)
	server.Routes(router)
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	if config.BrokerEnabled() {
		broker := &PasswordBroker{
			generatePassword: strength.GenerateN,
			credentialSender: sender,
			metrics:          metrics,
			logger:           logger.Session("broker"),
			config:           config,
		}
		credentials := brokerapi.BrokerCredentials{
			Username: config.BrokerUsername,
			Password: config.BrokerPassword,
		}
		router.PathPrefix("/v2/").Handler(brokerapi.New(broker, logger, credentials))
	}

	return router, nil
}

func main() {
	config := Config{}
	err := envconfig.Process("", &config)
	if err != nil {
		log.Fatal(err)
	}
	if err := config.Validate(); err != nil {
		log.Fatal(err)
	}

	level, err := logLevel(config.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	logger := lager.NewLogger("password-meter")
	logger.RegisterSink(lager.NewWriterSink(os.Stderr, level))

	registry := prometheus.NewRegistry()
	handler, err := NewHandler(config, logger, registry)
	if err != nil {
		logger.Fatal("setup", err)
	}

	addr := fmt.Sprintf(":%s", config.Port)
	logger.Info("listen", lager.Data{"addr": addr, "broker": config.BrokerEnabled(), "share": config.FugaciousAddress != ""})

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("listen", err)
	}
}
