package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/mfalcao/payagent/internal/domain/models"
	"github.com/mfalcao/payagent/internal/engine"
)

type fakeMarket struct {
	snap models.PriceSnapshot
	err  error
}

func (f *fakeMarket) GetPrice(_ context.Context, asset string) (models.PriceSnapshot, error) {
	if f.err != nil {
		return models.PriceSnapshot{}, f.err
	}
	snap := f.snap
	snap.Asset = asset
	return snap, nil
}

type fakeGateway struct {
	result models.PaymentResult
	err    error
	calls  int
}

func (f *fakeGateway) ExecutePayment(_ context.Context, _ models.PaymentDirective) (models.PaymentResult, error) {
	f.calls++
	return f.result, f.err
}

type fakeRepo struct {
	inserted []models.DecisionRecord
	insErr   error
	recent   []models.DecisionRecord
	listErr  error
}

func (f *fakeRepo) InsertDecision(_ context.Context, rec models.DecisionRecord) error {
	f.inserted = append(f.inserted, rec)
	return f.insErr
}

func (f *fakeRepo) ListRecent(_ context.Context, _ int) ([]models.DecisionRecord, error) {
	return f.recent, f.listErr
}

type fixedSampler struct{ v float64 }

func (s fixedSampler) Float64() float64 { return s.v }

func newService(market *fakeMarket, gateway *fakeGateway, repo *fakeRepo, sample float64) AgentService {
	return NewAgentService(
		engine.NewConditionEvaluator(market),
		engine.NewNegotiationSimulator(engine.DefaultNegotiationParams(), fixedSampler{v: sample}),
		engine.NewDispatcher(gateway),
		repo,
	)
}

func TestHandleTrade_ConditionMetPaysAndAudits(t *testing.T) {
	market := &fakeMarket{snap: models.PriceSnapshot{Current: 28000, Baseline: 30000}}
	gateway := &fakeGateway{result: models.PaymentResult{Status: models.PaymentCompleted, ReferenceID: "pay_1"}}
	repo := &fakeRepo{}
	svc := newService(market, gateway, repo, 0)

	intent := models.TradeIntent{
		Asset: "bitcoin", Quantity: 2, Operator: models.OpLess,
		BaselineRelative: true, Recipient: "Coinbase",
	}
	report, err := svc.HandleTrade(context.Background(), intent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Decision.Kind != models.ConditionMet {
		t.Fatalf("want condition met, got %s", report.Decision.Kind)
	}
	if report.Payment.Status != models.PaymentCompleted {
		t.Fatalf("want completed payment, got %+v", report.Payment)
	}
	if gateway.calls != 1 {
		t.Fatalf("want one gateway call, got %d", gateway.calls)
	}
	if len(repo.inserted) != 1 {
		t.Fatalf("want one audit row, got %d", len(repo.inserted))
	}
	rec := repo.inserted[0]
	if !rec.Accepted || rec.Subject != "bitcoin" || rec.UnitPrice != 30000 || rec.PaymentRef != "pay_1" {
		t.Fatalf("unexpected audit row: %+v", rec)
	}
}

func TestHandleTrade_ConditionNotMetSkipsPayment(t *testing.T) {
	market := &fakeMarket{snap: models.PriceSnapshot{Current: 32000, Baseline: 30000}}
	gateway := &fakeGateway{}
	repo := &fakeRepo{}
	svc := newService(market, gateway, repo, 0)

	intent := models.TradeIntent{
		Asset: "bitcoin", Quantity: 2, Operator: models.OpLess,
		Threshold: 30000, Recipient: "Coinbase",
	}
	report, err := svc.HandleTrade(context.Background(), intent)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Decision.Kind != models.ConditionNotMet {
		t.Fatalf("want condition not met, got %s", report.Decision.Kind)
	}
	if report.Payment.Status != models.PaymentSkipped {
		t.Fatalf("want skipped, got %s", report.Payment.Status)
	}
	if gateway.calls != 0 {
		t.Fatalf("gateway must not be called, got %d call(s)", gateway.calls)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Accepted {
		t.Fatalf("negative decision still audited as not accepted: %+v", repo.inserted)
	}
}

func TestHandleTrade_MarketErrorsPassThrough(t *testing.T) {
	for _, want := range []error{models.ErrUnknownAsset, models.ErrDataUnavailable} {
		market := &fakeMarket{err: want}
		gateway := &fakeGateway{}
		repo := &fakeRepo{}
		svc := newService(market, gateway, repo, 0)

		_, err := svc.HandleTrade(context.Background(), models.TradeIntent{
			Asset: "bitcoin", Quantity: 1, Operator: models.OpLess,
			Threshold: 1, Recipient: "Coinbase",
		})
		if !errors.Is(err, want) {
			t.Fatalf("want %v, got %v", want, err)
		}
		if gateway.calls != 0 || len(repo.inserted) != 0 {
			t.Fatalf("no payment or audit on market failure")
		}
	}
}

func TestHandleBargain_AcceptedPaysNegotiatedPrice(t *testing.T) {
	gateway := &fakeGateway{result: models.PaymentResult{Status: models.PaymentCompleted, ReferenceID: "pay_2"}}
	repo := &fakeRepo{}
	// Sample 0 accepts in round 1.
	svc := newService(&fakeMarket{}, gateway, repo, 0)

	report, err := svc.HandleBargain(context.Background(), models.BargainIntent{
		Item: "chocolate", Quantity: 200, Counterparty: "Kiran",
		ListedPrice: 1.20, TargetPrice: 0.95, MaxRounds: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Decision.Kind != models.NegotiationAccepted {
		t.Fatalf("want accepted, got %s", report.Decision.Kind)
	}
	if report.Decision.UnitPrice >= 1.20 || report.Decision.UnitPrice < 0.95 {
		t.Fatalf("negotiated price out of range: %v", report.Decision.UnitPrice)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].Rounds != 1 {
		t.Fatalf("audit row missing round count: %+v", repo.inserted)
	}
}

func TestHandleBargain_RejectedSkipsPayment(t *testing.T) {
	gateway := &fakeGateway{}
	repo := &fakeRepo{}
	// Sample 0.99 exceeds every round probability.
	svc := newService(&fakeMarket{}, gateway, repo, 0.99)

	report, err := svc.HandleBargain(context.Background(), models.BargainIntent{
		Item: "chocolate", Quantity: 200, Counterparty: "Kiran",
		ListedPrice: 1.20, TargetPrice: 0.95, MaxRounds: 5,
	})
	if err != nil {
		t.Fatalf("rejection is not an error, got %v", err)
	}
	if report.Decision.Kind != models.NegotiationRejected {
		t.Fatalf("want rejected, got %s", report.Decision.Kind)
	}
	if gateway.calls != 0 {
		t.Fatalf("gateway must not be called on rejection")
	}
	if report.Payment.Status != models.PaymentSkipped {
		t.Fatalf("want skipped, got %s", report.Payment.Status)
	}
}

func TestHandleBargain_PaymentFailureStillAudited(t *testing.T) {
	gwErr := fmt.Errorf("%w: insufficient funds", models.ErrPaymentFailed)
	gateway := &fakeGateway{result: models.PaymentResult{Status: models.PaymentFailed}, err: gwErr}
	repo := &fakeRepo{}
	svc := newService(&fakeMarket{}, gateway, repo, 0)

	_, err := svc.HandleBargain(context.Background(), models.BargainIntent{
		Item: "chocolate", Quantity: 200, Counterparty: "Kiran",
		ListedPrice: 1.20, TargetPrice: 0.95, MaxRounds: 5,
	})
	if !errors.Is(err, models.ErrPaymentFailed) {
		t.Fatalf("want ErrPaymentFailed, got %v", err)
	}
	if len(repo.inserted) != 1 || repo.inserted[0].PaymentStatus != models.PaymentFailed {
		t.Fatalf("failed payment must still be audited: %+v", repo.inserted)
	}
}

func TestHandleBargain_AuditFailureDoesNotBlockResponse(t *testing.T) {
	gateway := &fakeGateway{result: models.PaymentResult{Status: models.PaymentCompleted}}
	repo := &fakeRepo{insErr: errors.New("db down")}
	svc := newService(&fakeMarket{}, gateway, repo, 0)

	report, err := svc.HandleBargain(context.Background(), models.BargainIntent{
		Item: "chocolate", Quantity: 200, Counterparty: "Kiran",
		ListedPrice: 1.20, TargetPrice: 0.95, MaxRounds: 5,
	})
	if err != nil || report == nil {
		t.Fatalf("audit failure must not fail the request: report=%v err=%v", report, err)
	}
}

func TestRecentDecisions_Delegates(t *testing.T) {
	repo := &fakeRepo{recent: []models.DecisionRecord{{ID: "a"}, {ID: "b"}}}
	svc := newService(&fakeMarket{}, &fakeGateway{}, repo, 0)

	out, err := svc.RecentDecisions(context.Background(), 2)
	if err != nil || len(out) != 2 {
		t.Fatalf("unexpected: out=%v err=%v", out, err)
	}
}
