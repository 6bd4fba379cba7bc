package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/felfel/go-felfel/internal/datastore"
	"github.com/felfel/go-felfel/internal/namegen"
	"github.com/rs/zerolog"
	"github.com/unrolled/render"
)

type Handler struct {
	log       zerolog.Logger
	render    *render.Render
	generator *namegen.Generator
	cfg       GeneratorConfig
	names     datastore.NameStore
	stats     datastore.StatsStore
	adapters  []NameAdapter
}

func NewHandler(log zerolog.Logger, render *render.Render, generator *namegen.Generator, cfg GeneratorConfig,
	names datastore.NameStore, stats datastore.StatsStore, adapters ...NameAdapter) *Handler {
	return &Handler{
		log:       log,
		render:    render,
		generator: generator,
		cfg:       cfg,
		names:     names,
		stats:     stats,
		adapters:  adapters,
	}
}

func (h *Handler) onGenerate(ctx context.Context, kind, name string) {
	for _, adapter := range h.adapters {
		adapter.OnGenerate(ctx, kind, name)
	}
}

func (h *Handler) GetName(w http.ResponseWriter, r *http.Request) {
	name := h.generator.Gen()
	h.onGenerate(r.Context(), KindSimple, name)
	writeJSONResponse(h.render, w, http.StatusOK, NameResponse{Name: name})
}

func (h *Handler) GetID(w http.ResponseWriter, r *http.Request) {
	name := h.generator.GenID()
	h.onGenerate(r.Context(), KindID, name)
	writeJSONResponse(h.render, w, http.StatusOK, NameResponse{Name: name})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	maxSuffix, err := queryInt(r, "max", h.cfg.DefaultMaxSuffix)
	if err != nil {
		writeError(h.render, w, http.StatusBadRequest, err)
		return
	}
	if maxSuffix < 0 {
		writeError(h.render, w, http.StatusBadRequest, ErrInvalidMaxSuffix(maxSuffix))
		return
	}
	delimiter, err := queryRune(r, "delimiter", h.cfg.DefaultDelimiter)
	if err != nil {
		writeError(h.render, w, http.StatusBadRequest, err)
		return
	}
	useLatin, err := queryBool(r, "latin", false)
	if err != nil {
		writeError(h.render, w, http.StatusBadRequest, err)
		return
	}
	name, err := h.generator.Generate(maxSuffix, delimiter, useLatin)
	if err != nil {
		writeError(h.render, w, http.StatusBadRequest, err)
		return
	}
	h.onGenerate(r.Context(), KindCustom, name)
	writeJSONResponse(h.render, w, http.StatusOK, NameResponse{Name: name})
}

// Reserve hands out an identifier that has never been reserved before.
func (h *Handler) Reserve(w http.ResponseWriter, r *http.Request) {
	for i := 0; i < reserveAttempts; i++ {
		name := h.generator.GenID()
		reserved, err := h.names.Reserve(r.Context(), name)
		switch {
		case err == nil:
			h.onGenerate(r.Context(), KindID, name)
			writeJSONResponse(h.render, w, http.StatusCreated, ReserveResponse{
				Name:      reserved.Name,
				CreatedAt: reserved.CreatedAt,
			})
			return
		case errors.Is(err, datastore.ErrNameStoreDuplicate):
			h.log.Debug().Msgf("name '%s' already reserved, retrying", name)
			continue
		case errors.Is(err, datastore.ErrNameStoreNotEnabled):
			writeError(h.render, w, http.StatusServiceUnavailable, err)
			return
		default:
			writeError(h.render, w, http.StatusInternalServerError, err)
			return
		}
	}
	writeError(h.render, w, http.StatusConflict, ErrReserveExhausted)
}

func (h *Handler) GetReserved(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("Name")
	if name == "" {
		writeError(h.render, w, http.StatusBadRequest, ErrMissingParam("Name"))
		return
	}
	reserved, err := h.names.GetName(r.Context(), name)
	switch {
	case errors.Is(err, datastore.ErrNameStoreNotFound):
		writeError(h.render, w, http.StatusNotFound, err)
		return
	case errors.Is(err, datastore.ErrNameStoreNotEnabled):
		writeError(h.render, w, http.StatusServiceUnavailable, err)
		return
	case err != nil:
		writeError(h.render, w, http.StatusInternalServerError, err)
		return
	}
	writeJSONResponse(h.render, w, http.StatusOK, ReserveResponse{
		Name:      reserved.Name,
		CreatedAt: reserved.CreatedAt,
	})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.stats.GetStats(r.Context(), kinds)
	if err != nil {
		h.log.Error().Caller().Err(err).Msg("failed to retrieve generated name stats")
		stats = make(map[string]int)
	}
	writeJSONResponse(h.render, w, http.StatusOK, StatsResponse{Generated: stats})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(http.StatusText(http.StatusOK)))
}
