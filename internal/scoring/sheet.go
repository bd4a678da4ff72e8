package scoring

import "github.com/google/uuid"

// LineItem is one row of a supplier's quotation sheet.
type LineItem struct {
	ID          uuid.UUID `json:"id"`
	ItemID      string    `json:"item_id"`
	Description string    `json:"description"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Region      Region    `json:"region"`
	Quote
}

// LineItemTargets pairs a line item with the targets derived from its current values.
type LineItemTargets struct {
	LineItemID uuid.UUID          `json:"line_item_id"`
	ItemID     string             `json:"item_id"`
	Targets    CompetitiveTargets `json:"targets"`
	Display    TargetDisplay      `json:"display"`
}

// SheetEvaluation is everything the quotation screen shows for one buyer focus.
type SheetEvaluation struct {
	Focus     string                `json:"focus"`
	Ranking   []RankedAttribute     `json:"ranking"`
	Targets   []LineItemTargets     `json:"targets"`
	Primary   *AttractivenessResult `json:"primary,omitempty"`
	PrimaryID uuid.UUID             `json:"primary_line_item_id"`
}

// NewLineItem builds a single-row sheet entry from a buyer's historical baseline.
func NewLineItem(itemID, description string, region Region, quote Quote) LineItem {
	return LineItem{
		ID:          uuid.New(),
		ItemID:      itemID,
		Description: description,
		Quantity:    1000,
		Unit:        "pcs",
		Region:      region,
		Quote:       quote,
	}
}

// EvaluateSheet ranks attributes for focus, derives targets for every line item
// using that item's own region, and scores the first line item. Items are not modified.
func EvaluateSheet(items []LineItem, focus string) SheetEvaluation {
	eval := SheetEvaluation{
		Focus:   focus,
		Ranking: Rank(focus),
		Targets: make([]LineItemTargets, 0, len(items)),
	}

	for i := range items {
		t := GenerateTargets(items[i].AttributeValues, focus, items[i].Region)
		eval.Targets = append(eval.Targets, LineItemTargets{
			LineItemID: items[i].ID,
			ItemID:     items[i].ItemID,
			Targets:    t,
			Display:    t.Display(),
		})
	}

	if len(items) > 0 {
		primary := Score(items[0].Quote, focus)
		eval.Primary = &primary
		eval.PrimaryID = items[0].ID
	}
	return eval
}
