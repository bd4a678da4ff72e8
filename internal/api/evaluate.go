package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Tender/internal/hermes"
	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

type EvaluationHandler struct {
	hermes        hermes.Client
	defaultRegion scoring.Region
	logger        *slog.Logger
}

func NewEvaluationHandler(h hermes.Client, defaultRegion scoring.Region, logger *slog.Logger) *EvaluationHandler {
	return &EvaluationHandler{hermes: h, defaultRegion: defaultRegion, logger: logger}
}

// resolveRegion falls back to the configured region when raw is empty and
// canonicalizes known names. Unknown names pass through and score as GLOBAL.
func resolveRegion(raw string, fallback scoring.Region) scoring.Region {
	if raw == "" {
		return fallback
	}
	if rf, ok := scoring.ParseRegion(raw); ok {
		return rf.Region
	}
	return scoring.Region(raw)
}

func (h *EvaluationHandler) publish(subject string, event interface{}) {
	if h.hermes == nil {
		return
	}
	if err := h.hermes.Publish(subject, event); err != nil {
		h.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}

type TargetsRequest struct {
	Baseline scoring.AttributeValues `json:"baseline"`
	Focus    string                  `json:"focus"`
	Region   string                  `json:"region"`
}

type TargetsResponse struct {
	Targets scoring.CompetitiveTargets `json:"targets"`
	Display scoring.TargetDisplay      `json:"display"`
}

func (h *EvaluationHandler) Targets(w http.ResponseWriter, r *http.Request) {
	req := TargetsRequest{Baseline: scoring.AttributeValues{PaymentTerms: scoring.DefaultPaymentTerms}}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	t := scoring.GenerateTargets(req.Baseline, req.Focus, resolveRegion(req.Region, h.defaultRegion))
	if !targetsFinite(t) {
		writeError(w, http.StatusUnprocessableEntity, errNonFinite)
		return
	}
	observeTargets(t)
	writeJSON(w, http.StatusOK, TargetsResponse{Targets: t, Display: t.Display()})
}

type ScoreRequest struct {
	Quote scoring.Quote `json:"quote"`
	Focus string        `json:"focus"`
}

type ScoreResponse struct {
	EvaluationID uuid.UUID                    `json:"evaluation_id"`
	Focus        string                       `json:"focus"`
	Result       scoring.AttractivenessResult `json:"result"`
}

func (h *EvaluationHandler) Score(w http.ResponseWriter, r *http.Request) {
	req := ScoreRequest{Quote: scoring.Quote{AttributeValues: scoring.AttributeValues{PaymentTerms: scoring.DefaultPaymentTerms}}}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res := scoring.Score(req.Quote, req.Focus)
	if !resultFinite(res) {
		writeError(w, http.StatusUnprocessableEntity, errNonFinite)
		return
	}
	observeScore(res)

	id := uuid.New()
	h.publish(hermes.SubjectQuoteScored(id.String()), hermes.QuoteScoredEvent{
		EvaluationID:      id.String(),
		Focus:             req.Focus,
		FocusMatched:      res.FocusMatched,
		OverallScore:      res.OverallScore,
		Tier:              res.Tier,
		EmphasisAttribute: res.EmphasisAttribute,
		Timestamp:         time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, ScoreResponse{EvaluationID: id, Focus: req.Focus, Result: res})
}

// LineItemRequest is a quotation row as submitted. Omitted payment terms
// default to 30 days and an omitted region to the configured one.
type LineItemRequest struct {
	ID              string   `json:"id,omitempty"`
	ItemID          string   `json:"item_id"`
	Description     string   `json:"description"`
	Quantity        float64  `json:"quantity"`
	Unit            string   `json:"unit"`
	Region          string   `json:"region"`
	Price           float64  `json:"price"`
	Quality         float64  `json:"quality"`
	DeliveryTime    float64  `json:"delivery_time"`
	PaymentTerms    *float64 `json:"payment_terms"`
	CarbonFootprint float64  `json:"carbon_footprint"`
	Incoterms       string   `json:"incoterms"`
}

func (li LineItemRequest) toLineItem(defaultRegion scoring.Region) (scoring.LineItem, error) {
	id := uuid.New()
	if li.ID != "" {
		parsed, err := uuid.Parse(li.ID)
		if err != nil {
			return scoring.LineItem{}, err
		}
		id = parsed
	}
	paymentTerms := scoring.DefaultPaymentTerms
	if li.PaymentTerms != nil {
		paymentTerms = *li.PaymentTerms
	}
	return scoring.LineItem{
		ID:          id,
		ItemID:      li.ItemID,
		Description: li.Description,
		Quantity:    li.Quantity,
		Unit:        li.Unit,
		Region:      resolveRegion(li.Region, defaultRegion),
		Quote: scoring.Quote{
			AttributeValues: scoring.AttributeValues{
				Price:           li.Price,
				Quality:         li.Quality,
				DeliveryTime:    li.DeliveryTime,
				PaymentTerms:    paymentTerms,
				CarbonFootprint: li.CarbonFootprint,
			},
			Incoterms: li.Incoterms,
		},
	}, nil
}

type SheetRequest struct {
	Focus string            `json:"focus"`
	Items []LineItemRequest `json:"items"`
}

type SheetResponse struct {
	SheetID    uuid.UUID               `json:"sheet_id"`
	Items      []scoring.LineItem      `json:"items"`
	Evaluation scoring.SheetEvaluation `json:"evaluation"`
}

func (h *EvaluationHandler) EvaluateSheet(w http.ResponseWriter, r *http.Request) {
	var req SheetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := make([]scoring.LineItem, 0, len(req.Items))
	for _, li := range req.Items {
		item, err := li.toLineItem(h.defaultRegion)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid line item id "+li.ID)
			return
		}
		items = append(items, item)
	}

	eval := scoring.EvaluateSheet(items, req.Focus)
	if !sheetFinite(eval) {
		writeError(w, http.StatusUnprocessableEntity, errNonFinite)
		return
	}
	h.observeSheet(eval)

	sheetID := uuid.New()
	event := hermes.SheetEvaluatedEvent{
		SheetID:   sheetID.String(),
		Focus:     req.Focus,
		LineItems: len(items),
		Timestamp: time.Now().UTC(),
	}
	if eval.Primary != nil {
		event.PrimaryItemID = eval.PrimaryID.String()
		event.OverallScore = &eval.Primary.OverallScore
		event.Tier = &eval.Primary.Tier
	}
	h.publish(hermes.SubjectSheetEvaluated(sheetID.String()), event)

	writeJSON(w, http.StatusOK, SheetResponse{SheetID: sheetID, Items: items, Evaluation: eval})
}

func (h *EvaluationHandler) observeSheet(eval scoring.SheetEvaluation) {
	for _, t := range eval.Targets {
		observeTargets(t.Targets)
	}
	if eval.Primary != nil {
		observeScore(*eval.Primary)
	}
}
