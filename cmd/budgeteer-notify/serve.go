package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	clientdist "github.com/budgeteer-dev/notifications/client/dist"
	"github.com/budgeteer-dev/notifications/internal/config"
	"github.com/budgeteer-dev/notifications/pkg/flash"
	"github.com/budgeteer-dev/notifications/pkg/live"
	"github.com/budgeteer-dev/notifications/pkg/notify"
	"github.com/budgeteer-dev/notifications/pkg/render"
	"github.com/budgeteer-dev/notifications/pkg/vdom"
)

func serveCmd() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the notification demo server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadFrom(configPath)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = cfg.Addr()
			}
			return runServer(cfg, addr)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", config.ConfigFileName, "configuration file")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (overrides config)")
	return cmd
}

func runServer(cfg *config.Config, addr string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	registry := prometheus.NewRegistry()
	metrics := notify.NewMetrics(registry)

	hub := live.NewHub(live.HubConfig{Logger: logger})
	defer hub.Close()

	notifier := notify.New(live.NewBridge(hub),
		notify.WithLogger(logger),
		notify.WithMetrics(metrics),
		notify.WithPosition(cfg.Toast.Position),
	)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)

	r.Get("/", demoPageHandler(cfg, notifier, logger))
	r.Get("/notify/client.js", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/javascript")
		w.Write(clientdist.NotifyJS)
	})
	r.Get("/notifications/ws", hub.ServeHTTP)
	r.Get("/demo/{severity}", demoToastHandler(notifier))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("demo server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// demoPageHandler serves the demo page. The page markup is seeded with
// hidden legacy flash alerts; migration strips them and turns each one
// into a toast broadcast before the HTML leaves the server.
func demoPageHandler(cfg *config.Config, notifier *notify.Notifier, logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		html, err := render.New(render.Config{}).RenderToString(demoPage(cfg))
		if err != nil {
			http.Error(w, "render failed", http.StatusInternalServerError)
			return
		}

		cleaned, migrated, err := flash.Migrate(notifier, html)
		if err != nil {
			logger.Warn("flash migration failed", "error", err)
			cleaned = html
		}
		if migrated > 0 {
			logger.Debug("migrated legacy alerts", "count", migrated)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<!DOCTYPE html>" + cleaned))
	}
}

// demoToastHandler shows a toast of the requested severity.
func demoToastHandler(notifier *notify.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		severity := notify.ParseSeverity(chi.URLParam(req, "severity"))
		message := req.URL.Query().Get("message")
		if message == "" {
			message = "Demo " + string(severity) + " notification"
		}
		notifier.Show(severity, message)
		w.WriteHeader(http.StatusAccepted)
	}
}

const bootstrapCSS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/css/bootstrap.min.css"
const bootstrapJS = "https://cdn.jsdelivr.net/npm/bootstrap@5.3.3/dist/js/bootstrap.bundle.min.js"

// demoPage builds the demo page tree, including hidden legacy flash
// markup of every severity so migration is observable.
func demoPage(cfg *config.Config) *vdom.VNode {
	return vdom.Html(
		vdom.Lang("en"),
		vdom.Head(
			vdom.Meta(vdom.Charset("utf-8")),
			vdom.Meta(vdom.Name("viewport"), vdom.Content("width=device-width, initial-scale=1")),
			vdom.Title("Budgeteer Notifications"),
			vdom.Link(vdom.Rel("stylesheet"), vdom.Href(bootstrapCSS)),
		),
		vdom.Body(
			vdom.Class("bg-light"),
			// Legacy flash markup, hidden until migrated.
			vdom.Div(vdom.Class("alert", "alert-success", "d-none"), vdom.Text("Budget saved")),
			vdom.Div(vdom.Class("alert", "alert-warning", "d-none"), vdom.Text(" Low balance ")),
			vdom.Div(vdom.Class("alert", "d-none"), vdom.Text("Welcome back")),

			vdom.Main(
				vdom.Class("container", "py-5"),
				vdom.H1(vdom.Text("Budgeteer Notifications")),
				vdom.P(
					vdom.Class("lead"),
					vdom.Text("Trigger a toast and watch it arrive over the live connection."),
				),
				vdom.Div(
					vdom.Class("d-flex", "gap-2"),
					demoButton("success", "btn-success"),
					demoButton("warning", "btn-warning"),
					demoButton("danger", "btn-danger"),
					demoButton("info", "btn-info"),
				),
			),

			vdom.Script(vdom.Src(bootstrapJS)),
			vdom.Script(
				vdom.Src("/notify/client.js"),
				vdom.Data("ws-path", "/notifications/ws"),
				vdom.Data("autohide", strconv.Itoa(cfg.Toast.AutoHideDelayMS)),
				vdom.Data("max-visible", strconv.Itoa(cfg.Toast.MaxVisible)),
			),
			vdom.Script(vdom.Raw(demoTriggerScript)),
		),
	)
}

func demoButton(severity, class string) *vdom.VNode {
	return vdom.Button(
		vdom.TypeAttr("button"),
		vdom.Class("btn", class),
		vdom.Data("severity", severity),
		vdom.Text(severity),
	)
}

const demoTriggerScript = `
document.querySelectorAll("[data-severity]").forEach(function (btn) {
  btn.addEventListener("click", function () {
    fetch("/demo/" + btn.dataset.severity);
  });
});
`
