package engine

import (
	"context"

	"github.com/mfalcao/payagent/internal/domain/models"
)

// ConditionEvaluator decides whether a live market price satisfies a trade
// intent's condition. Its only side effect is the read-only market-data
// query; evaluating the same intent against an unchanged snapshot yields an
// identical Decision.
type ConditionEvaluator struct {
	market MarketData
}

func NewConditionEvaluator(market MarketData) *ConditionEvaluator {
	return &ConditionEvaluator{market: market}
}

// Evaluate fetches a snapshot for the intent's asset and applies the
// operator between the current price and the threshold, or between the
// current price and the baseline for baseline-relative intents.
//
// Errors: models.ErrInvalidIntent before any external call,
// models.ErrUnknownAsset / models.ErrDataUnavailable passed through from the
// market-data port.
func (e *ConditionEvaluator) Evaluate(ctx context.Context, intent models.TradeIntent) (models.Decision, error) {
	if err := intent.Validate(); err != nil {
		return models.Decision{}, err
	}

	snap, err := e.market.GetPrice(ctx, intent.Asset)
	if err != nil {
		return models.Decision{}, err
	}

	reference := intent.Threshold
	if intent.BaselineRelative {
		reference = snap.Baseline
	}

	decision := models.Decision{Kind: models.ConditionNotMet, Snapshot: &snap}
	if intent.Operator.Compare(snap.Current, reference) {
		decision.Kind = models.ConditionMet
		decision.UnitPrice = reference
	}
	return decision, nil
}
