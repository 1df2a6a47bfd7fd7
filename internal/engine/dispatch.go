package engine

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/mfalcao/payagent/internal/domain/models"
)

// Dispatcher turns affirmative decisions into payment directives. Negative
// decisions never reach the gateway: the invariant that no PaymentDirective
// is constructed from a ConditionNotMet or NegotiationRejected decision
// lives here.
type Dispatcher struct {
	gateway PaymentGateway
}

func NewDispatcher(gateway PaymentGateway) *Dispatcher {
	return &Dispatcher{gateway: gateway}
}

// Dispatch forwards a directive priced at decision.UnitPrice × quantity to
// the payment gateway and returns whatever the gateway reported, verbatim
// and without retries. For negative decisions it returns PaymentSkipped and
// makes no call.
func (d *Dispatcher) Dispatch(ctx context.Context, decision models.Decision, quantity int64, recipient, memo string) (models.PaymentResult, error) {
	if !decision.Affirmative() {
		return models.PaymentResult{Status: models.PaymentSkipped}, nil
	}

	amount := decision.UnitPrice * float64(quantity)
	if quantity <= 0 || amount <= 0 || math.IsInf(amount, 0) || math.IsNaN(amount) {
		return models.PaymentResult{}, fmt.Errorf("%w: payment amount %v is not strictly positive", models.ErrInvalidIntent, amount)
	}

	directive := models.PaymentDirective{
		Amount:    amount,
		Recipient: recipient,
		Memo:      memo,
		Timestamp: time.Now().UTC(),
	}
	return d.gateway.ExecutePayment(ctx, directive)
}
