package engine

import (
	"github.com/mfalcao/payagent/internal/domain/models"
)

const (
	// DefaultBaseProbability is the per-round acceptance chance before the
	// price gap and counterparty fatigue are applied.
	DefaultBaseProbability = 0.6

	// DefaultRoundDecay shrinks the acceptance chance each round: later
	// rounds are less likely to concede further.
	DefaultRoundDecay = 0.85
)

// NegotiationParams are the tunable constants of the bargaining model. The
// exact curve is a parameter, not a law; both values come from config.
type NegotiationParams struct {
	// BaseProbability in (0, 1].
	BaseProbability float64
	// RoundDecay in (0, 1]; round r is scaled by RoundDecay^(r-1), which is
	// monotonically non-increasing in r.
	RoundDecay float64
}

// DefaultNegotiationParams returns the stock tuning.
func DefaultNegotiationParams() NegotiationParams {
	return NegotiationParams{
		BaseProbability: DefaultBaseProbability,
		RoundDecay:      DefaultRoundDecay,
	}
}

// NegotiationSimulator runs a round-based stochastic bargaining exchange.
// It is a pure function of the intent and the injected sampler; a seeded
// sampler makes outcomes exactly reproducible.
type NegotiationSimulator struct {
	params  NegotiationParams
	sampler Sampler
}

// NewNegotiationSimulator builds a simulator with the given tuning and
// random source. Out-of-range params fall back to the defaults.
func NewNegotiationSimulator(params NegotiationParams, sampler Sampler) *NegotiationSimulator {
	if params.BaseProbability <= 0 || params.BaseProbability > 1 {
		params.BaseProbability = DefaultBaseProbability
	}
	if params.RoundDecay <= 0 || params.RoundDecay > 1 {
		params.RoundDecay = DefaultRoundDecay
	}
	return &NegotiationSimulator{params: params, sampler: sampler}
}

// Negotiate simulates up to MaxRounds bargaining rounds and returns
// NegotiationAccepted or NegotiationRejected with the full probability trace
// as evidence.
//
// Model:
//   - gap = (listed - target) / listed, clamped to [0, 1]. A target at or
//     above the listed price means there is nothing to haggle over: the deal
//     closes in round 1 at the listed price.
//   - p(r) = base × (1 - gap) × decay^(r-1); the round succeeds when the
//     drawn sample is <= p(r).
//   - An accepted round r prices the deal at
//     listed - (listed - target) × r / maxRounds: early success stays close
//     to the listed price, late success converges on the target.
func (s *NegotiationSimulator) Negotiate(intent models.BargainIntent) (models.Decision, error) {
	if err := intent.Validate(); err != nil {
		return models.Decision{}, err
	}

	gap := (intent.ListedPrice - intent.TargetPrice) / intent.ListedPrice
	if gap < 0 {
		gap = 0
	}
	if gap > 1 {
		gap = 1
	}

	if gap == 0 {
		// Immediate accept: the buyer is already offering the asking price.
		outcome := &models.NegotiationOutcome{
			Accepted:       true,
			FinalUnitPrice: intent.ListedPrice,
			Rounds:         1,
			Trace:          []models.RoundTrace{{Round: 1, Probability: 1, Sample: 0, Accepted: true}},
		}
		return models.Decision{
			Kind:      models.NegotiationAccepted,
			UnitPrice: outcome.FinalUnitPrice,
			Outcome:   outcome,
		}, nil
	}

	trace := make([]models.RoundTrace, 0, intent.MaxRounds)
	decay := 1.0
	for r := 1; r <= intent.MaxRounds; r++ {
		probability := s.params.BaseProbability * (1 - gap) * decay
		sample := s.sampler.Float64()
		accepted := sample <= probability
		trace = append(trace, models.RoundTrace{
			Round:       r,
			Probability: probability,
			Sample:      sample,
			Accepted:    accepted,
		})

		if accepted {
			spread := intent.ListedPrice - intent.TargetPrice
			price := intent.ListedPrice - spread*float64(r)/float64(intent.MaxRounds)
			outcome := &models.NegotiationOutcome{
				Accepted:       true,
				FinalUnitPrice: price,
				Rounds:         r,
				Trace:          trace,
			}
			return models.Decision{
				Kind:      models.NegotiationAccepted,
				UnitPrice: price,
				Outcome:   outcome,
			}, nil
		}

		decay *= s.params.RoundDecay
	}

	// All rounds exhausted: a valid rejected outcome, not an error.
	outcome := &models.NegotiationOutcome{
		Accepted: false,
		Rounds:   intent.MaxRounds,
		Trace:    trace,
	}
	return models.Decision{Kind: models.NegotiationRejected, Outcome: outcome}, nil
}
