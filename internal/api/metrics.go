package api

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/MikeSquared-Agency/Tender/internal/scoring"
)

var (
	quotesScored = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tender",
		Name:      "quotes_scored_total",
		Help:      "Quotes scored, by attractiveness tier.",
	}, []string{"tier"})

	unmatchedFocus = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "tender",
		Name:      "unmatched_focus_total",
		Help:      "Evaluations whose buyer focus matched no numeric attribute.",
	})

	targetsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tender",
		Name:      "targets_generated_total",
		Help:      "Competitive target sets generated, by region.",
	}, []string{"region"})

	overallScores = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "tender",
		Name:      "overall_score",
		Help:      "Distribution of overall attractiveness scores.",
		Buckets:   []float64{0, 20, 40, 50, 60, 70, 80, 85, 90, 100},
	})
)

func observeScore(res scoring.AttractivenessResult) {
	quotesScored.WithLabelValues(string(res.Tier)).Inc()
	overallScores.Observe(res.OverallScore)
	if !res.FocusMatched {
		unmatchedFocus.Inc()
	}
}

func observeTargets(t scoring.CompetitiveTargets) {
	targetsGenerated.WithLabelValues(string(t.Region)).Inc()
}
