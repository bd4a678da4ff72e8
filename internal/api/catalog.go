package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

type CatalogHandler struct{}

func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

func (h *CatalogHandler) Attributes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Catalog())
}

func (h *CatalogHandler) Attribute(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	attr, ok := scoring.Lookup(scoring.Key(key))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown attribute "+key)
		return
	}
	writeJSON(w, http.StatusOK, attr)
}

func (h *CatalogHandler) Regions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scoring.Regions())
}

type rankingResponse struct {
	Focus        string                    `json:"focus"`
	FocusMatched bool                      `json:"focus_matched"`
	Ranking      []scoring.RankedAttribute `json:"ranking"`
}

func (h *CatalogHandler) Rankings(w http.ResponseWriter, r *http.Request) {
	focus := r.URL.Query().Get("focus")
	writeJSON(w, http.StatusOK, rankingResponse{
		Focus:        focus,
		FocusMatched: scoring.ParseFocus(focus).Matched(),
		Ranking:      scoring.Rank(focus),
	})
}
