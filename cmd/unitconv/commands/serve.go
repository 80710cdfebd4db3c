package commands

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-unitconv/components/converter"
	"github.com/goliatone/go-unitconv/internal/config"
	"github.com/goliatone/go-unitconv/pkg/convert"
	"github.com/goliatone/go-unitconv/pkg/page"
)

func serveCmd(a *app) *cobra.Command {
	var (
		addr      string
		basePath  string
		locale    string
		templates string
		grace     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the converter pages and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("base-path") {
				cfg.BasePath = basePath
			}
			if flags.Changed("locale") {
				cfg.DefaultLocale = locale
			}
			if flags.Changed("templates") {
				cfg.Templates = templates
			}
			if flags.Changed("grace") {
				cfg.Grace = grace
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			handler, patterns, err := newServerHandler(cfg, a.logger)
			if err != nil {
				return err
			}
			for _, pattern := range patterns {
				a.logger.Printf("route %s", pattern)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx, &http.Server{Addr: cfg.Addr, Handler: handler}, cfg.Grace, a.logger)
		},
	}

	def := config.Default()
	cmd.Flags().StringVar(&addr, "addr", def.Addr, "HTTP listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "", "path prefix for every route")
	cmd.Flags().StringVar(&locale, "locale", def.DefaultLocale, "locale for pages without a locale prefix")
	cmd.Flags().StringVar(&templates, "templates", "", "directory with template overrides")
	cmd.Flags().DurationVar(&grace, "grace", def.Grace, "shutdown grace period")
	return cmd
}

// newServerHandler mounts the converter under cfg.BasePath, a redirect from
// the base path to the first category, and a health check.
func newServerHandler(cfg config.Config, logger *log.Logger) (http.Handler, []string, error) {
	fns := []converter.OptionFn{
		converter.WithDefaultLocale(cfg.DefaultLocale),
		converter.WithLogger(logger),
		converter.WithTheme(cfg.Theme.Manifest(), cfg.Theme.Variant),
		converter.WithTips(cfg.Tips),
	}
	if cfg.Templates != "" {
		info, err := os.Stat(cfg.Templates)
		if err != nil {
			return nil, nil, fmt.Errorf("templates: %w", err)
		}
		if !info.IsDir() {
			return nil, nil, fmt.Errorf("templates: %q is not a directory", cfg.Templates)
		}
		renderer, err := page.NewTemplateRenderer(cfg.Templates)
		if err != nil {
			return nil, nil, err
		}
		fns = append(fns, converter.WithRenderer(renderer))
	}

	mux := http.NewServeMux()
	patterns, err := converter.RegisterRoutes(mux, cfg.BasePath, fns...)
	if err != nil {
		return nil, nil, err
	}

	home := converter.MountPath(cfg.BasePath) + "/" + string(convert.Categories()[0])
	rootPattern := "GET " + joinBase(cfg.BasePath, "/{$}")
	mux.Handle(rootPattern, http.RedirectHandler(home, http.StatusFound))

	healthPattern := joinBase(cfg.BasePath, "/healthz")
	mux.HandleFunc(healthPattern, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	patterns = append(patterns, rootPattern, healthPattern)
	return mux, patterns, nil
}

func joinBase(basePath, route string) string {
	if basePath == "" || basePath == "/" {
		return route
	}
	if !strings.HasPrefix(basePath, "/") {
		basePath = "/" + basePath
	}
	return strings.TrimRight(basePath, "/") + route
}

// runServer serves until ctx is done, then shuts down within grace.
func runServer(ctx context.Context, server *http.Server, grace time.Duration, logger *log.Logger) error {
	logger.Printf("listening on %s", server.Addr)

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Printf("server stopped")
	return nil
}
