// Command nmsd runs the tenant reconciliation daemon and exposes the
// provisioning engine over a minimal operational HTTP surface.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	nms "github.com/magma/magma-sub005"
	"github.com/magma/magma-sub005/bolt"
	"github.com/magma/magma-sub005/grafana"
	"github.com/magma/magma-sub005/kit/cli"
	"github.com/magma/magma-sub005/orc8r"
	"github.com/magma/magma-sub005/provision"
	"github.com/magma/magma-sub005/reconcile"
)

var flags struct {
	boltPath           string
	grafanaURL         string
	orc8rURL           string
	apiHost            string
	certFile           string
	keyFile            string
	reconcileInterval  time.Duration
	httpBindAddress    string
	insecureSkipVerify bool
	logLevel           zapcore.Level
}

func main() {
	prog := &cli.Program{
		Name: "nmsd",
		Run:  run,
		Opts: []cli.Opt{
			cli.NewOpt(&flags.boltPath, "bolt-path", "nmsd.bolt", "path to the organization store"),
			cli.NewOpt(&flags.grafanaURL, "grafana-url", "http://localhost:3000", "base URL of the grafana instance"),
			cli.NewOpt(&flags.orc8rURL, "orc8r-url", "https://localhost:9443/magma/v1", "base URL of the orchestrator API"),
			cli.NewOpt(&flags.apiHost, "api-host", "localhost:9443", "host the managed datasources query through"),
			cli.NewOpt(&flags.certFile, "admin-cert", "admin_operator.pem", "path to the admin operator certificate"),
			cli.NewOpt(&flags.keyFile, "admin-key", "admin_operator.key.pem", "path to the admin operator private key"),
			cli.NewOpt(&flags.reconcileInterval, "reconcile-interval", 5*time.Minute, "interval between tenant reconciliation sweeps"),
			cli.NewOpt(&flags.httpBindAddress, "http-bind-address", ":8090", "bind address of the operational HTTP listener"),
			cli.NewOpt(&flags.insecureSkipVerify, "insecure-skip-verify", false, "skip TLS verification on outbound calls"),
			cli.NewOpt(&flags.logLevel, "log-level", zapcore.InfoLevel, "minimum log level"),
		},
	}

	cmd := cli.NewCommand(prog)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	conf := zap.NewProductionConfig()
	conf.Level = zap.NewAtomicLevelAt(flags.logLevel)
	logger, err := conf.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := bolt.NewClient(flags.boltPath, logger.With(zap.String("service", "bolt")))
	if err := store.Open(ctx); err != nil {
		return fmt.Errorf("failed to open organization store: %w", err)
	}
	defer store.Close()

	grafanaBase, err := url.Parse(flags.grafanaURL)
	if err != nil {
		return fmt.Errorf("invalid grafana URL: %w", err)
	}
	orc8rBase, err := url.Parse(flags.orc8rURL)
	if err != nil {
		return fmt.Errorf("invalid orchestrator URL: %w", err)
	}

	reg := prometheus.NewRegistry()

	var grafanaSvc grafana.Service = grafana.NewClient(grafanaBase, flags.insecureSkipVerify)
	grafanaSvc = provision.NewGrafanaMetrics(reg, grafanaSvc)
	grafanaSvc = provision.NewGrafanaLogger(logger.With(zap.String("service", "grafana")), grafanaSvc)

	orcClient := orc8r.NewClient(orc8rBase, flags.insecureSkipVerify)

	provisioner := provision.NewProvisioner(provision.Config{
		Grafana:  grafanaSvc,
		Networks: orcClient,
		Certs: provision.FileCertSource{
			CertPath: flags.certFile,
			KeyPath:  flags.keyFile,
		},
		APIHost: flags.apiHost,
		Logger:  logger.With(zap.String("service", "provision")),
	})

	reconciler := reconcile.NewReconciler(
		logger.With(zap.String("service", "reconcile")),
		store,
		orcClient,
	).WithMetrics(reg)

	runner := &reconcile.Runner{
		Reconciler: reconciler,
		Interval:   flags.reconcileInterval,
		Logger:     logger.With(zap.String("service", "reconcile")),
	}
	go runner.Run(ctx)

	srv := &http.Server{
		Addr:    flags.httpBindAddress,
		Handler: router(logger, reg, grafanaSvc, provisioner, store),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", flags.httpBindAddress))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func router(logger *zap.Logger, reg *prometheus.Registry, g grafana.Service, p *provision.Provisioner, orgs nms.OrganizationService) http.Handler {
	r := chi.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		h := g.Health(req.Context())
		if h.Status/100 != 2 {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, "grafana unreachable: %d %s\n", h.Status, h.Message)
			return
		}
		fmt.Fprintln(w, "ok")
	})

	r.Post("/provision/{orgID}", func(w http.ResponseWriter, req *http.Request) {
		orgID, err := strconv.ParseInt(chi.URLParam(req, "orgID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid organization id", http.StatusBadRequest)
			return
		}
		userID, err := strconv.ParseInt(req.URL.Query().Get("userID"), 10, 64)
		if err != nil {
			http.Error(w, "invalid user id", http.StatusBadRequest)
			return
		}

		org, err := orgs.FindOrganizationByID(req.Context(), orgID)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}

		outcome := p.Provision(req.Context(), provision.Request{
			UserID:       userID,
			Organization: *org,
		})
		if !outcome.Succeeded() {
			outcome = p.Diagnose(req.Context(), outcome)
			logger.Warn("provisioning failed",
				zap.Int64("orgID", orgID),
				zap.String("task", outcome.Failed.Name),
				zap.Int("status", outcome.Failed.Status))
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(outcome)
	})

	return r
}
