package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/afaq-khan2000/auto-skeleton/skeleton"
)

// runServe runs the preview server: resolve a target per request and
// return its skeleton as JSON or standalone HTML.
func runServe(ctx context.Context, logger *slog.Logger, p *skeleton.Pipeline, res *dualResolver, addr string) error {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/skeleton", func(w http.ResponseWriter, req *http.Request) {
		target := req.URL.Query().Get("target")
		if target == "" {
			target = req.URL.Query().Get("url")
		}
		if target == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing target parameter"})
			return
		}
		sel := req.URL.Query().Get("selector")

		root, cleanup, err := res.Resolve(req.Context(), target, sel)
		if err != nil {
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
			return
		}
		defer cleanup()

		out, err := p.Regenerate(req.Context(), root)
		if err != nil {
			status := http.StatusInternalServerError
			if errors.Is(err, skeleton.ErrAnalysisInFlight) {
				status = http.StatusConflict
			}
			writeJSON(w, status, map[string]string{"error": err.Error()})
			return
		}

		if req.URL.Query().Get("format") == "html" {
			htmlOut, err := skeleton.RenderHTML(out)
			if err != nil {
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write([]byte(htmlOut))
			return
		}
		writeJSON(w, http.StatusOK, out)
	})

	srv := &http.Server{Addr: addr, Handler: r}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("autoskeleton: serving", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
