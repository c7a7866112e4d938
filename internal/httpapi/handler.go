// Package httpapi exposes symbol conversion over HTTP.
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sidc-converter/internal/sidc"
	"sidc-converter/internal/symbol"
)

// Handler serves conversions through a Librarian.
type Handler struct {
	librarian *symbol.Librarian
	gatherer  prometheus.Gatherer
	logger    *slog.Logger
}

// New creates a Handler. A nil gatherer disables /metrics.
func New(librarian *symbol.Librarian, gatherer prometheus.Gatherer, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{librarian: librarian, gatherer: gatherer, logger: logger}
}

// Register mounts the routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/healthz", h.handleHealth)
	r.Get("/v1/sidc/{partA}/{partB}", h.handleDecode)
	r.Get("/v1/legacy/{standard}/{code}", h.handleLegacy)

	if h.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
}

// Router returns a chi router with every route registered.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	h.Register(r)

	return r
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleDecode(w http.ResponseWriter, r *http.Request) {
	partA := chi.URLParam(r, "partA")
	partB := chi.URLParam(r, "partB")

	if !sidc.ValidPart(partA) || !sidc.ValidPart(partB) {
		writeError(w, http.StatusBadRequest, "malformed_sidc", "each part must be 10 decimal digits")
		return
	}

	sym, err := h.librarian.MakeSymbolFromStrings(partA, partB)
	if err != nil {
		h.refuse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewSymbolResponse(sym))
}

func (h *Handler) handleLegacy(w http.ResponseWriter, r *http.Request) {
	standard := chi.URLParam(r, "standard")
	code := chi.URLParam(r, "code")

	sym, err := h.librarian.MakeLegacySymbol(standard, code)
	if err != nil {
		h.refuse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, NewSymbolResponse(sym))
}

func (h *Handler) refuse(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.InfoContext(r.Context(), "conversion refused",
		slog.String("path", r.URL.Path), slog.String("error", err.Error()))

	switch {
	case errors.Is(err, sidc.ErrLegacyLength):
		writeError(w, http.StatusUnprocessableEntity, "legacy_length", err.Error())
	case errors.Is(err, symbol.ErrInvalidSymbol):
		writeError(w, http.StatusUnprocessableEntity, "invalid_symbol", err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal", err.Error())
	}
}
