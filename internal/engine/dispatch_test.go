package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mfalcao/payagent/internal/domain/models"
)

type fakeGateway struct {
	result     models.PaymentResult
	err        error
	directives []models.PaymentDirective
}

func (f *fakeGateway) ExecutePayment(_ context.Context, d models.PaymentDirective) (models.PaymentResult, error) {
	f.directives = append(f.directives, d)
	return f.result, f.err
}

var _ PaymentGateway = (*fakeGateway)(nil)

// Negative decisions must never construct a PaymentDirective.
func TestDispatch_NegativeDecisionsSkipGateway(t *testing.T) {
	for _, kind := range []models.DecisionKind{models.ConditionNotMet, models.NegotiationRejected} {
		t.Run(string(kind), func(t *testing.T) {
			gw := &fakeGateway{}
			d := NewDispatcher(gw)

			res, err := d.Dispatch(context.Background(), models.Decision{Kind: kind}, 200, "Kiran", "memo")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != models.PaymentSkipped {
				t.Fatalf("want skipped, got %s", res.Status)
			}
			if len(gw.directives) != 0 {
				t.Fatalf("gateway called with %d directive(s) for a negative decision", len(gw.directives))
			}
		})
	}
}

func TestDispatch_AffirmativeDecisionPaysQuantityTimesPrice(t *testing.T) {
	gw := &fakeGateway{result: models.PaymentResult{Status: models.PaymentCompleted, ReferenceID: "pay_1"}}
	d := NewDispatcher(gw)

	decision := models.Decision{Kind: models.NegotiationAccepted, UnitPrice: 1.05}
	res, err := d.Dispatch(context.Background(), decision, 200, "Kiran", "purchase 200 x chocolate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != models.PaymentCompleted || res.ReferenceID != "pay_1" {
		t.Fatalf("gateway result not surfaced verbatim: %+v", res)
	}
	if len(gw.directives) != 1 {
		t.Fatalf("want one directive, got %d", len(gw.directives))
	}
	directive := gw.directives[0]
	if directive.Amount != 1.05*200 {
		t.Fatalf("want amount %v, got %v", 1.05*200, directive.Amount)
	}
	if directive.Recipient != "Kiran" || directive.Memo != "purchase 200 x chocolate" {
		t.Fatalf("unexpected directive: %+v", directive)
	}
	if directive.Timestamp.IsZero() {
		t.Fatalf("directive timestamp not set")
	}
}

func TestDispatch_GatewayFailureSurfacedWithoutRetry(t *testing.T) {
	gwErr := fmt.Errorf("%w: insufficient funds", models.ErrPaymentFailed)
	gw := &fakeGateway{result: models.PaymentResult{Status: models.PaymentFailed}, err: gwErr}
	d := NewDispatcher(gw)

	decision := models.Decision{Kind: models.ConditionMet, UnitPrice: 30000}
	_, err := d.Dispatch(context.Background(), decision, 2, "Coinbase", "buy 2 bitcoin")
	if !errors.Is(err, models.ErrPaymentFailed) {
		t.Fatalf("want ErrPaymentFailed, got %v", err)
	}
	if len(gw.directives) != 1 {
		t.Fatalf("want exactly one attempt (no retry), got %d", len(gw.directives))
	}
}

func TestDispatch_RejectsNonPositiveAmounts(t *testing.T) {
	cases := []struct {
		name     string
		decision models.Decision
		quantity int64
	}{
		{"zero unit price", models.Decision{Kind: models.ConditionMet, UnitPrice: 0}, 10},
		{"zero quantity", models.Decision{Kind: models.ConditionMet, UnitPrice: 5}, 0},
		{"negative quantity", models.Decision{Kind: models.NegotiationAccepted, UnitPrice: 5}, -3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := &fakeGateway{}
			d := NewDispatcher(gw)
			_, err := d.Dispatch(context.Background(), tc.decision, tc.quantity, "Kiran", "memo")
			if !errors.Is(err, models.ErrInvalidIntent) {
				t.Fatalf("want ErrInvalidIntent, got %v", err)
			}
			if len(gw.directives) != 0 {
				t.Fatalf("gateway must not be called for a non-positive amount")
			}
		})
	}
}
