package cmd

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/paramkit/core"
	"github.com/dmitrymomot/paramkit/handler"
	"github.com/dmitrymomot/paramkit/pkg/environment"
	"github.com/dmitrymomot/paramkit/pkg/httpserver"
	"github.com/dmitrymomot/paramkit/pkg/requestid"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve validation endpoints for every rule set of the rule file",
		Long: `serve exposes each rule set as

  GET|POST /sets/{set}/query     validate the query string
  POST     /sets/{set}/body      validate a JSON or form body
  GET|POST /sets/{set}/headers   validate the request headers

and answers with the coerced parameters. SIGHUP reloads the rule file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("addr") {
				a.cfg.HTTP.Addr = addr
			}

			reg := newRegistry(a.log)
			if err := reg.load(a.cfg.RulesFile); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			hup := make(chan os.Signal, 1)
			signal.Notify(hup, syscall.SIGHUP)
			defer signal.Stop(hup)

			srv := httpserver.NewFromConfig(a.cfg.HTTP, httpserver.WithLogger(a.log))

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error { return srv.Run(gctx, newRouter(a, reg)) })
			g.Go(func() error { return reg.reload(gctx, a.cfg.RulesFile, hup) })
			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $HTTP_ADDR or :8080)")
	return cmd
}

func newRouter(a *app, reg *registry) http.Handler {
	onError := handler.NewErrorHandler(a.log)

	r := chi.NewRouter()
	r.Use(requestid.Middleware, environment.Middleware(environment.Normalize(a.cfg.Env)))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) { onError(w, req, core.ErrNotFound) })
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) { onError(w, req, core.ErrMethodNotAllowed) })

	r.Get("/healthz", httpserver.HealthCheckHandler(a.log))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.log, reg.ready))

	r.Get("/sets", func(w http.ResponseWriter, req *http.Request) {
		_ = handler.JSON(reg.setNames()).Render(w, req)
	})
	dispatch := func(w http.ResponseWriter, req *http.Request) {
		h, ok := reg.handler(chi.URLParam(req, "set"), chi.URLParam(req, "source"))
		if !ok {
			onError(w, req, core.ErrNotFound)
			return
		}
		h.ServeHTTP(w, req)
	}
	r.Get("/sets/{set}/{source}", dispatch)
	r.Post("/sets/{set}/{source}", dispatch)

	return r
}
