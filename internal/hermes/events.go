package hermes

import (
	"time"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

type QuoteScoredEvent struct {
	EvaluationID      string       `json:"evaluation_id"`
	Focus             string       `json:"focus"`
	FocusMatched      bool         `json:"focus_matched"`
	OverallScore      float64      `json:"overall_score"`
	Tier              scoring.Tier `json:"tier"`
	EmphasisAttribute scoring.Key  `json:"emphasis_attribute"`
	Timestamp         time.Time    `json:"timestamp"`
}

type SheetEvaluatedEvent struct {
	SheetID       string        `json:"sheet_id"`
	Focus         string        `json:"focus"`
	LineItems     int           `json:"line_items"`
	PrimaryItemID string        `json:"primary_item_id,omitempty"`
	OverallScore  *float64      `json:"overall_score,omitempty"`
	Tier          *scoring.Tier `json:"tier,omitempty"`
	Timestamp     time.Time     `json:"timestamp"`
}

type BuyerAnalyzedEvent struct {
	Buyer        string       `json:"buyer"`
	Focus        string       `json:"focus"`
	FocusSource  string       `json:"focus_source"`
	OverallScore float64      `json:"overall_score"`
	Tier         scoring.Tier `json:"tier"`
	Timestamp    time.Time    `json:"timestamp"`
}
