package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MikeSquared-Agency/Tender/internal/hermes"
	"github.com/MikeSquared-Agency/Tender/internal/scoring"
	"github.com/MikeSquared-Agency/Tender/internal/sentiment"
	"github.com/MikeSquared-Agency/Tender/internal/store"
)

// Focus sources reported by the analysis endpoint.
const (
	FocusFromSentiment = "sentiment"
	FocusFromProfile   = "profile"
	FocusFromDefault   = "default"

	GenericFocus = "Generic"
)

const (
	defaultItemID          = "P472A"
	defaultItemDescription = "Custom CNC Aluminum Housing"
)

type BuyersHandler struct {
	store         store.Store
	sentiment     sentiment.Client
	eval          *EvaluationHandler
	defaultRegion scoring.Region
	logger        *slog.Logger
}

func NewBuyersHandler(s store.Store, sc sentiment.Client, eval *EvaluationHandler, defaultRegion scoring.Region, logger *slog.Logger) *BuyersHandler {
	return &BuyersHandler{store: s, sentiment: sc, eval: eval, defaultRegion: defaultRegion, logger: logger}
}

func (h *BuyersHandler) List(w http.ResponseWriter, r *http.Request) {
	buyers, err := h.store.ListBuyers(r.Context())
	if err != nil {
		h.logger.Error("list buyers failed", "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if buyers == nil {
		buyers = []*store.Buyer{}
	}
	writeJSON(w, http.StatusOK, buyers)
}

func (h *BuyersHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	buyer, err := h.store.GetBuyer(r.Context(), name)
	if err != nil {
		h.logger.Error("get buyer failed", "buyer", name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if buyer == nil {
		writeError(w, http.StatusNotFound, "buyer not found")
		return
	}
	writeJSON(w, http.StatusOK, buyer)
}

type AnalysisResponse struct {
	Buyer       string                  `json:"buyer"`
	Known       bool                    `json:"known"`
	Sentiment   string                  `json:"sentiment"`
	Focus       string                  `json:"focus"`
	FocusSource string                  `json:"focus_source"`
	Baseline    *scoring.Quote          `json:"baseline,omitempty"`
	Items       []scoring.LineItem      `json:"items"`
	Evaluation  scoring.SheetEvaluation `json:"evaluation"`
}

// Analyze resolves the buyer's focus, then evaluates a one-line sheet seeded
// from the buyer's historical baseline. An unknown buyer still gets a ranking.
func (h *BuyersHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	buyer, err := h.store.GetBuyer(r.Context(), name)
	if err != nil {
		h.logger.Error("get buyer failed", "buyer", name, "error", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	resp := AnalysisResponse{Buyer: name, Items: []scoring.LineItem{}}
	if buyer != nil {
		resp.Buyer = buyer.Name
		resp.Known = true
		resp.Sentiment = buyer.Sentiment
	}

	resp.Focus, resp.FocusSource = GenericFocus, FocusFromDefault
	if report := h.lookupSentiment(r, resp.Buyer); report != nil {
		if report.Summary != "" {
			resp.Sentiment = report.Summary
		}
		if report.Focus != "" {
			resp.Focus, resp.FocusSource = report.Focus, FocusFromSentiment
		}
	}
	if resp.FocusSource == FocusFromDefault && buyer != nil && buyer.Focus != "" {
		resp.Focus, resp.FocusSource = buyer.Focus, FocusFromProfile
	}

	if buyer != nil {
		q := buyer.Quote()
		resp.Baseline = &q
		resp.Items = append(resp.Items, scoring.NewLineItem(defaultItemID, defaultItemDescription, h.defaultRegion, q))
	}

	resp.Evaluation = scoring.EvaluateSheet(resp.Items, resp.Focus)
	if !sheetFinite(resp.Evaluation) {
		h.logger.Warn("buyer baseline produced a non-finite score", "buyer", resp.Buyer)
		writeError(w, http.StatusUnprocessableEntity, errNonFinite)
		return
	}
	h.eval.observeSheet(resp.Evaluation)

	if resp.Evaluation.Primary != nil {
		h.eval.publish(hermes.SubjectBuyerAnalyzed(buyer.Slug()), hermes.BuyerAnalyzedEvent{
			Buyer:        buyer.Name,
			Focus:        resp.Focus,
			FocusSource:  resp.FocusSource,
			OverallScore: resp.Evaluation.Primary.OverallScore,
			Tier:         resp.Evaluation.Primary.Tier,
			Timestamp:    time.Now().UTC(),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *BuyersHandler) lookupSentiment(r *http.Request, buyer string) *sentiment.Report {
	if h.sentiment == nil {
		return nil
	}
	report, err := h.sentiment.Lookup(r.Context(), buyer)
	if err != nil {
		h.logger.Warn("sentiment lookup failed, using directory focus", "buyer", buyer, "error", err)
		return nil
	}
	return report
}
