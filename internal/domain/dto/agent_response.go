package dto

import (
	"fmt"
	"time"

	"github.com/mfalcao/payagent/internal/domain/models"
)

// AgentResponse is the record every intent endpoint returns to the
// presentation layer: a human-readable summary, a timestamp, and a status.
// This is the only contract the chat front end depends on.
type AgentResponse struct {
	Content   string    `json:"content" example:"bargain accepted: 200 x chocolate at 1.05/unit after 3 rounds; payment completed (ref pay_8f14e45f)"`
	Timestamp time.Time `json:"timestamp"`
	Status    string    `json:"status" example:"completed"`
}

// NewAgentResponse renders an ActionReport into the response record.
//
// Status is the payment status for affirmative decisions and the decision
// kind otherwise, so the front end can distinguish "paid", "pending", and
// "no action taken" without parsing the summary.
func NewAgentResponse(report *models.ActionReport) AgentResponse {
	status := string(report.Decision.Kind)
	if report.Decision.Affirmative() {
		status = string(report.Payment.Status)
	}
	return AgentResponse{
		Content:   summarize(report),
		Timestamp: time.Now().UTC(),
		Status:    status,
	}
}

func summarize(report *models.ActionReport) string {
	d := report.Decision
	switch d.Kind {
	case models.ConditionMet:
		return fmt.Sprintf("condition met for %s: current %.2f vs reference %.2f; %s",
			report.Subject, d.Snapshot.Current, d.UnitPrice, payment(report))
	case models.ConditionNotMet:
		return fmt.Sprintf("condition not met for %s: current %.2f (baseline %.2f); no payment made",
			report.Subject, d.Snapshot.Current, d.Snapshot.Baseline)
	case models.NegotiationAccepted:
		return fmt.Sprintf("bargain accepted: %d x %s at %.2f/unit after %d round(s); %s",
			report.Quantity, report.Subject, d.Outcome.FinalUnitPrice, d.Outcome.Rounds, payment(report))
	case models.NegotiationRejected:
		return fmt.Sprintf("bargain rejected for %s after %d round(s); no payment made",
			report.Subject, d.Outcome.Rounds)
	}
	return "no decision reached"
}

func payment(report *models.ActionReport) string {
	switch report.Payment.Status {
	case models.PaymentCompleted:
		return fmt.Sprintf("payment completed (ref %s)", report.Payment.ReferenceID)
	case models.PaymentPending:
		return fmt.Sprintf("payment pending (ref %s)", report.Payment.ReferenceID)
	default:
		return "no payment made"
	}
}
