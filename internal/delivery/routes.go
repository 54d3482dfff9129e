package delivery

import (
	"github.com/Vovarama1992/go-utils/httputil"
	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, h *StatusHandler) {
	r.With(httputil.RecoverMiddleware).
		Get("/ping", h.Ping)

	r.With(httputil.RecoverMiddleware).
		Get("/status", h.Status)
}
