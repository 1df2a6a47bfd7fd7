package models

import "time"

// PriceSnapshot is the market evidence behind a condition decision.
// It is fetched fresh per evaluation and never cached by the core.
type PriceSnapshot struct {
	Asset      string    `json:"asset" example:"bitcoin"`
	Current    float64   `json:"current" example:"28000"`
	Baseline   float64   `json:"baseline" example:"30000"`
	ObservedAt time.Time `json:"observed_at"`
}

// RoundTrace records one negotiation round: the success probability the
// simulator computed, the sample it drew, and whether the round closed the
// deal. The trace exists so outcomes can be replayed and audited.
type RoundTrace struct {
	Round       int     `json:"round" example:"3"`
	Probability float64 `json:"probability" example:"0.34"`
	Sample      float64 `json:"sample" example:"0.2"`
	Accepted    bool    `json:"accepted" example:"true"`
}

// NegotiationOutcome is the evidence behind a negotiation decision.
// FinalUnitPrice is meaningful only when Accepted is true.
type NegotiationOutcome struct {
	Accepted       bool         `json:"accepted"`
	FinalUnitPrice float64      `json:"final_unit_price,omitempty" example:"1.05"`
	Rounds         int          `json:"rounds" example:"3"`
	Trace          []RoundTrace `json:"trace"`
}

// DecisionKind tags the closed set of decision variants.
type DecisionKind string

const (
	ConditionMet        DecisionKind = "condition_met"
	ConditionNotMet     DecisionKind = "condition_not_met"
	NegotiationAccepted DecisionKind = "negotiation_accepted"
	NegotiationRejected DecisionKind = "negotiation_rejected"
)

// Decision is the unifying result of evaluating a condition or simulating a
// negotiation. Exactly one of Snapshot (condition kinds) or Outcome
// (negotiation kinds) is set. UnitPrice is the resolved unit price a payment
// would be priced at and is set only on affirmative decisions.
type Decision struct {
	Kind      DecisionKind        `json:"kind"`
	UnitPrice float64             `json:"unit_price,omitempty"`
	Snapshot  *PriceSnapshot      `json:"snapshot,omitempty"`
	Outcome   *NegotiationOutcome `json:"outcome,omitempty"`
}

// Affirmative reports whether the decision authorizes a payment.
func (d Decision) Affirmative() bool {
	return d.Kind == ConditionMet || d.Kind == NegotiationAccepted
}

// PaymentDirective is the instruction handed to the payment gateway. It is
// constructed only from an affirmative Decision; the gateway owns execution
// and receipt state from there on.
type PaymentDirective struct {
	Amount    float64   `json:"amount" example:"210.00"`
	Recipient string    `json:"recipient" example:"Kiran"`
	Memo      string    `json:"memo" example:"purchase 200 x chocolate"`
	Timestamp time.Time `json:"timestamp"`
}

// PaymentStatus is the gateway-reported (or core-assigned) completion state.
type PaymentStatus string

const (
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentPending   PaymentStatus = "pending"

	// PaymentSkipped means the decision was negative and no gateway call
	// was made.
	PaymentSkipped PaymentStatus = "skipped"
)

// PaymentResult is what the gateway reported for a directive, annotated back
// onto the decision that triggered it.
type PaymentResult struct {
	Status      PaymentStatus `json:"status" example:"completed"`
	ReferenceID string        `json:"reference_id,omitempty" example:"pay_8f14e45f"`
}

// ActionReport is the full result of handling one intent: the decision that
// was reached and what (if anything) happened with the payment. Subject is
// the asset or item the intent was about.
type ActionReport struct {
	Subject  string        `json:"subject" example:"chocolate"`
	Quantity int64         `json:"quantity" example:"200"`
	Decision Decision      `json:"decision"`
	Payment  PaymentResult `json:"payment"`
}

// DecisionRecord is the audit row persisted for every evaluation.
type DecisionRecord struct {
	ID            string        `json:"id"`
	Kind          DecisionKind  `json:"kind"`
	Subject       string        `json:"subject" example:"chocolate"`
	Accepted      bool          `json:"accepted"`
	UnitPrice     float64       `json:"unit_price"`
	Quantity      int64         `json:"quantity"`
	Rounds        int           `json:"rounds"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentRef    string        `json:"payment_ref,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}
