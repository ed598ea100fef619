package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger é satisfeito pela conexão com o banco
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		body := map[string]any{
			"status": "ok",
			"time":   time.Now().UTC(),
		}

		if db != nil {
			if err := db.Ping(ctx); err != nil {
				body["status"] = "degraded"
				body["database"] = err.Error()
				writeJSON(w, r, http.StatusServiceUnavailable, body)
				return
			}
		}

		writeJSON(w, r, http.StatusOK, body)
	})
}
