package server

import (
	"time"

	"github.com/felfel/go-felfel/pkg/http"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/urfave/negroni"
)

func NewRouter(cfg http.RouterConfig) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	if cfg.RequestPerSecLimit > 0 {
		r.Use(httprate.LimitAll(cfg.RequestPerSecLimit, time.Second))
	}
	if !cfg.DisableCors {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.AllowedOrigins,
			AllowedMethods:   cfg.AllowedMethods,
			AllowedHeaders:   cfg.AllowedHeaders,
			AllowCredentials: true,
		}))
	}
	return r
}

// AddRoutes registers every endpoint. The stream endpoint is long lived so it is kept
// out of the request timeout.
func AddRoutes(r *chi.Mux, handler *Handler, cfg http.RouterConfig) *chi.Mux {
	var timeout chi.Middlewares
	if cfg.TimeoutSec > 0 {
		timeout = append(timeout, middleware.Timeout(time.Duration(cfg.TimeoutSec)*time.Second))
	}
	r.Route("/name", func(r chi.Router) {
		r.With(timeout...).Get("/", negroni.New(negroni.WrapFunc(handler.GetName)).ServeHTTP)
		r.With(timeout...).Get("/id", negroni.New(negroni.WrapFunc(handler.GetID)).ServeHTTP)
		r.With(timeout...).Get("/generate", negroni.New(negroni.WrapFunc(handler.Generate)).ServeHTTP)
		r.With(timeout...).Post("/reserve", negroni.New(negroni.WrapFunc(handler.Reserve)).ServeHTTP)
		r.With(timeout...).Get("/reserve", negroni.New(negroni.WrapFunc(handler.GetReserved)).ServeHTTP)
		r.Get("/stream", handler.Stream)
	})
	r.With(timeout...).Get("/stats", negroni.New(negroni.WrapFunc(handler.GetStats)).ServeHTTP)
	r.Get("/health", negroni.New(negroni.WrapFunc(handler.Health)).ServeHTTP)
	return r
}
