// Package cli is the command-line front end of the scoring engine.
package cli

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"

	"github.com/prototypevg/VeriGuard-AI-app/internal/application/dto"
	"github.com/prototypevg/VeriGuard-AI-app/internal/application/usecase"
	"github.com/prototypevg/VeriGuard-AI-app/internal/domain/port"
	"github.com/prototypevg/VeriGuard-AI-app/internal/infrastructure/config"
	"github.com/prototypevg/VeriGuard-AI-app/internal/infrastructure/messaging"
	"github.com/prototypevg/VeriGuard-AI-app/internal/infrastructure/metrics"
	"github.com/prototypevg/VeriGuard-AI-app/internal/presentation/rest"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/observability"
	"github.com/prototypevg/VeriGuard-AI-app/pkg/tlsutil"
)

const (
	serviceName = "veriguard"
	eventTopic  = "risk.events"

	exitOK      = 0
	exitFailure = 1
)

// App runs one veriguard invocation. Results go to Stdout, logs and usage
// to Stderr.
type App struct {
	Config *config.Config
	Logger *slog.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Options are applied to every use case after the flag-derived ones.
	Options []usecase.Option
}

// Run parses args (without the program name) and returns the exit code.
func (a *App) Run(ctx context.Context, args []string) int {
	global := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	global.SetOutput(a.Stderr)
	strict := global.Bool("strict", a.Config.Strict, "reject malformed numbers and times instead of coercing them to zero")
	rulesFile := global.String("rules", a.Config.RulesFile, "YAML file overriding the keyword catalog")
	metricsAddr := global.String("metrics-addr", a.Config.MetricsAddr, "serve /metrics, /healthz and /readyz on this address")
	tlsCert := global.String("metrics-tls-cert", a.Config.MetricsTLSCert, "certificate for serving metrics over TLS")
	tlsKey := global.String("metrics-tls-key", a.Config.MetricsTLSKey, "private key for serving metrics over TLS")
	global.Usage = func() { a.usage(global) }

	if err := global.Parse(args); err != nil {
		return parseExit(err)
	}
	if global.NArg() == 0 {
		global.Usage()
		return exitFailure
	}

	catalog, err := config.LoadCatalog(*rulesFile)
	if err != nil {
		a.Logger.Error("failed to load rules", "error", err)
		return exitFailure
	}
	catalogSource := "default"
	if *rulesFile != "" {
		catalogSource = *rulesFile
	}

	recorder, stop, err := a.startMetrics(metricsServer{
		addr:    *metricsAddr,
		tlsCert: *tlsCert,
		tlsKey:  *tlsKey,
		checks:  map[string]string{"rules_catalog": catalogSource},
	})
	if err != nil {
		a.Logger.Error("failed to initialize metrics", "error", err)
		return exitFailure
	}
	defer stop()

	opts := make([]usecase.Option, 0, len(a.Options)+1)
	if *strict {
		opts = append(opts, usecase.WithStrictValidation())
	}
	opts = append(opts, a.Options...)

	engine := NewEngine(catalog, messaging.NewLogPublisher(eventTopic, a.Logger), recorder, opts...)

	cmd, cmdArgs := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "transaction":
		return a.runTransaction(ctx, engine, cmdArgs)
	case "product":
		return a.runProduct(ctx, engine, cmdArgs)
	case "seller":
		return a.runSeller(ctx, engine, cmdArgs)
	case "security":
		return a.runSecurity(ctx, engine, cmdArgs)
	case "batch":
		return a.runBatch(ctx, engine, cmdArgs)
	default:
		fmt.Fprintf(a.Stderr, "unknown command %q\n\n", cmd)
		global.Usage()
		return exitFailure
	}
}

func (a *App) usage(global *flag.FlagSet) {
	fmt.Fprintf(a.Stderr, `Usage: %s [global flags] <command> [flags]

Commands:
  transaction   score a financial transaction for fraud risk
  product       validate a marketplace listing
  seller        audit a seller's reputation
  security      report the account security snapshot
  batch         score JSON Lines requests concurrently

Global flags:
`, serviceName)
	global.PrintDefaults()
}

func (a *App) subcommand(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.Stderr)
	return fs
}

func parseExit(err error) int {
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	return exitFailure
}

func (a *App) runTransaction(ctx context.Context, engine *Engine, args []string) int {
	var req dto.ScoreTransactionRequest
	fs := a.subcommand("transaction")
	fs.StringVar(&req.Amount, "amount", "", `transaction amount, e.g. "R$ 1.500,00"`)
	fs.StringVar(&req.TransactionType, "type", "", "transaction type, e.g. \"pix\" or \"crypto transfer\"")
	fs.StringVar(&req.OriginDescriptor, "origin", "", "device or network the transaction came from")
	fs.StringVar(&req.TimeOfDay, "time", "", "time of day as HH:MM")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	resp, err := engine.Transaction.Execute(ctx, req)
	return a.emit("transaction", resp, err)
}

func (a *App) runProduct(ctx context.Context, engine *Engine, args []string) int {
	var req dto.ScoreProductRequest
	fs := a.subcommand("product")
	fs.StringVar(&req.Name, "name", "", "product name")
	fs.StringVar(&req.Price, "price", "", "listed price")
	fs.StringVar(&req.Description, "description", "", "listing description")
	fs.StringVar(&req.Category, "category", "", "listing category")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	resp, err := engine.Product.Execute(ctx, req)
	return a.emit("product", resp, err)
}

func (a *App) runSeller(ctx context.Context, engine *Engine, args []string) int {
	var req dto.ScoreSellerRequest
	fs := a.subcommand("seller")
	fs.StringVar(&req.TaxID, "tax-id", "", "seller tax ID (CNPJ)")
	fs.StringVar(&req.ActivityMonths, "months", "", "months of activity")
	fs.StringVar(&req.ComplaintsCount, "complaints", "", "number of complaints")
	fs.StringVar(&req.MonthlyRevenue, "revenue", "", "monthly revenue")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	resp, err := engine.Seller.Execute(ctx, req)
	return a.emit("seller", resp, err)
}

func (a *App) runSecurity(ctx context.Context, engine *Engine, args []string) int {
	fs := a.subcommand("security")
	if err := fs.Parse(args); err != nil {
		return parseExit(err)
	}

	resp, err := engine.Security.Execute(ctx)
	return a.emit("security", resp, err)
}

func (a *App) emit(kind string, resp any, err error) int {
	if err != nil {
		a.Logger.Error("assessment failed", "kind", kind, "error", err)
		return exitFailure
	}

	enc := json.NewEncoder(a.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(resp); err != nil {
		a.Logger.Error("failed to write result", "kind", kind, "error", err)
		return exitFailure
	}
	return exitOK
}

type metricsServer struct {
	checks  map[string]string
	addr    string
	tlsCert string
	tlsKey  string
}

// startMetrics returns the recorder for this run. Without an address the
// global (no-op by default) provider is used and nothing is served.
func (a *App) startMetrics(ms metricsServer) (port.MetricsRecorder, func(), error) {
	if ms.addr == "" {
		rec, err := metrics.NewRecorder(otel.GetMeterProvider())
		return rec, func() {}, err
	}

	var tlsCfg *tls.Config
	if ms.tlsCert != "" || ms.tlsKey != "" {
		cfg, err := tlsutil.ServerConfig(ms.tlsCert, ms.tlsKey)
		if err != nil {
			return nil, nil, err
		}
		tlsCfg = cfg
	}

	provider, handler, err := observability.InitMetrics(observability.MetricsConfig{ServiceName: serviceName})
	if err != nil {
		return nil, nil, err
	}
	rec, err := metrics.NewRecorder(provider)
	if err != nil {
		return nil, nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", handler)
	rest.NewHealthHandler(serviceName, ms.checks, a.Logger).RegisterRoutes(mux)

	ln, err := net.Listen("tcp", ms.addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to listen on %s: %w", ms.addr, err)
	}
	if tlsCfg != nil {
		ln = tls.NewListener(ln, tlsCfg)
	}

	srv := &http.Server{
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.Logger.Error("metrics server error", "error", err)
		}
	}()
	a.Logger.Info("metrics server listening", "address", ln.Addr().String(), "tls", tlsCfg != nil)

	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			a.Logger.Warn("metrics server shutdown", "error", err)
		}
		if err := provider.Shutdown(ctx); err != nil {
			a.Logger.Warn("meter provider shutdown", "error", err)
		}
	}
	return rec, stop, nil
}
