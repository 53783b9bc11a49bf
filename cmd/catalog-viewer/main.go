// cmd/catalog-viewer/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"catalog-viewer/internal/common/config"
	commonhttp "catalog-viewer/internal/common/http"
	"catalog-viewer/internal/common/logger"
	"catalog-viewer/internal/models"
	dd "catalog-viewer/internal/workers/catalog/display-document"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	flags := pflag.NewFlagSet("catalog-viewer", pflag.ContinueOnError)
	configPath := flags.String("config", "", "path to a yaml config file (default: configs/config.yaml)")
	pretty := flags.Bool("pretty", false, "indent the emitted JSON")
	logLevel := flags.String("log-level", "", "override logging.level")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		return 1
	}
	if *logLevel != "" {
		cfg.Logging.Level = *logLevel
	}

	zapLog, err := logger.New(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		return 1
	}
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	urls := flags.Args()
	if len(urls) == 0 && cfg.Source.URL != "" {
		urls = []string{cfg.Source.URL}
	}
	if len(urls) == 0 {
		zapLog.Error("no catalog URL given; pass one as an argument or set source.url")
		return 2
	}

	wcfg, err := dd.LoadConfig(cfg)
	if err != nil {
		zapLog.Error("worker config failed", zap.Error(err))
		return 1
	}

	client := commonhttp.NewClient(commonhttp.Options{
		Timeout:   config.GetDuration(cfg.Source.Timeout),
		RateLimit: cfg.Source.RateLimit,
		Burst:     cfg.Source.Burst,
		UserAgent: cfg.Source.UserAgent,
		MaxBody:   cfg.Source.MaxBody,
	})
	handler := dd.NewHandler(wcfg, client, log)

	var (
		srv       *http.Server
		serverErr <-chan error
	)
	if cfg.Metrics.Enabled {
		srv, serverErr = startMetricsServer(cfg.Metrics.Address, zapLog)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zapLog.Info("rendering catalog documents", zap.Int("count", len(urls)))
	docs := renderAll(ctx, handler, urls)

	failed := 0
	for i, doc := range docs {
		if doc == nil {
			failed++
			continue
		}
		if err := writeDocument(stdout, doc, *pretty); err != nil {
			zapLog.Error("failed to write document", zap.String("url", urls[i]), zap.Error(err))
			failed++
		}
	}

	if srv != nil {
		zapLog.Info("documents rendered, serving metrics until interrupted")
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				zapLog.Error("metrics server shutdown failed", zap.Error(err))
			}
		case err := <-serverErr:
			zapLog.Error("Health/Metrics server stopped, exiting", zap.Error(err))
			return 1
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// renderAll runs every URL concurrently and keeps the results in input order.
func renderAll(ctx context.Context, handler *dd.Handler, urls []string) []*models.DisplayDocument {
	docs := make([]*models.DisplayDocument, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(i int, url string) {
			defer wg.Done()
			docs[i] = handler.Start(ctx, url)
		}(i, url)
	}
	wg.Wait()

	return docs
}

func writeDocument(w io.Writer, doc *models.DisplayDocument, pretty bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}

// startMetricsServer serves /health and /metrics in the background. The
// returned channel receives the error if the listener fails.
func startMetricsServer(addr string, zapLog *zap.Logger) (*http.Server, <-chan error) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)
	go func() {
		zapLog.Info("Health/Metrics server listening", zap.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Error("Health/Metrics server failed", zap.Error(err))
			errCh <- err
		}
	}()
	return srv, errCh
}
