package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/dmitrymomot/paramkit/handler"
	"github.com/dmitrymomot/paramkit/pkg/reqparams"
)

// registry holds the validation endpoints built from a rule file. A reload
// swaps the whole table, so in-flight requests keep the handler they started
// with.
type registry struct {
	log *slog.Logger

	mu       sync.RWMutex
	names    []string
	handlers map[string]http.Handler
}

func newRegistry(log *slog.Logger) *registry {
	return &registry{log: log, handlers: map[string]http.Handler{}}
}

func (r *registry) load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open rule file: %w", err)
	}
	defer f.Close()

	sets, err := reqparams.DecodeRuleSets(f)
	if err != nil {
		return err
	}

	mwOpts := []handler.Option{handler.WithLogger(r.log)}
	handlers := make(map[string]http.Handler, 3*len(sets))
	for _, name := range sets.Names() {
		v, err := sets.Validator(name, reqparams.WithLogger(r.log))
		if err != nil {
			return err
		}
		hv, err := handler.NewHeaders(sets[name], reqparams.WithName(name), reqparams.WithLogger(r.log))
		if err != nil {
			return err
		}

		handlers[key(name, handler.SourceQuery)] = handler.Query(v, mwOpts...)(echo(name, handler.SourceQuery))
		handlers[key(name, handler.SourceBody)] = handler.Body(v, mwOpts...)(echo(name, handler.SourceBody))
		handlers[key(name, handler.SourceHeaders)] = handler.Headers(hv, mwOpts...)(echo(name, handler.SourceHeaders))
	}

	r.mu.Lock()
	r.names = sets.Names()
	r.handlers = handlers
	r.mu.Unlock()

	r.log.Info("rule sets loaded", slog.String("file", path), slog.Int("count", len(sets)))
	return nil
}

func (r *registry) handler(set, source string) (http.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.handlers[key(set, source)]
	return h, ok
}

func (r *registry) setNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names...)
}

func (r *registry) ready(context.Context) error {
	if len(r.setNames()) == 0 {
		return errors.New("no rule sets loaded")
	}
	return nil
}

// reload re-reads path whenever a signal arrives on sig, until ctx is done.
// A failed reload keeps the current rule sets.
func (r *registry) reload(ctx context.Context, path string, sig <-chan os.Signal) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-sig:
			if err := r.load(path); err != nil {
				r.log.ErrorContext(ctx, "rule reload failed", slog.String("file", path), slog.Any("error", err))
			}
		}
	}
}

func key(set, source string) string { return set + "/" + source }

func echo(set, source string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := handler.JSON(handler.Params(r, set), handler.WithJSONMeta(map[string]any{
			"set":    set,
			"source": source,
		}))
		_ = resp.Render(w, r)
	}
}
