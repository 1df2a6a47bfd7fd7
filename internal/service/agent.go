package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mfalcao/payagent/internal/domain/models"
	"github.com/mfalcao/payagent/internal/engine"
	"github.com/mfalcao/payagent/internal/logger"
	"github.com/mfalcao/payagent/internal/storage"
)

// AgentService drives the intent pipeline: evaluate or negotiate, dispatch
// the payment for affirmative decisions, persist the audit row, and report.
type AgentService interface {
	HandleTrade(ctx context.Context, intent models.TradeIntent) (*models.ActionReport, error)
	HandleBargain(ctx context.Context, intent models.BargainIntent) (*models.ActionReport, error)
	RecentDecisions(ctx context.Context, limit int) ([]models.DecisionRecord, error)
}

type agentService struct {
	evaluator  *engine.ConditionEvaluator
	simulator  *engine.NegotiationSimulator
	dispatcher *engine.Dispatcher
	repo       storage.DecisionsRepository
}

func NewAgentService(
	evaluator *engine.ConditionEvaluator,
	simulator *engine.NegotiationSimulator,
	dispatcher *engine.Dispatcher,
	repo storage.DecisionsRepository,
) AgentService {
	return &agentService{
		evaluator:  evaluator,
		simulator:  simulator,
		dispatcher: dispatcher,
		repo:       repo,
	}
}

func (s *agentService) HandleTrade(ctx context.Context, intent models.TradeIntent) (*models.ActionReport, error) {
	decision, err := s.evaluator.Evaluate(ctx, intent)
	if err != nil {
		return nil, err
	}

	memo := fmt.Sprintf("buy %d %s", intent.Quantity, intent.Asset)
	return s.finish(ctx, decision, intent.Asset, intent.Quantity, intent.Recipient, memo)
}

func (s *agentService) HandleBargain(ctx context.Context, intent models.BargainIntent) (*models.ActionReport, error) {
	decision, err := s.simulator.Negotiate(intent)
	if err != nil {
		return nil, err
	}

	memo := fmt.Sprintf("purchase %d x %s", intent.Quantity, intent.Item)
	return s.finish(ctx, decision, intent.Item, intent.Quantity, intent.Counterparty, memo)
}

func (s *agentService) RecentDecisions(ctx context.Context, limit int) ([]models.DecisionRecord, error) {
	return s.repo.ListRecent(ctx, limit)
}

// finish dispatches the payment, persists the audit row, and assembles the
// report. An audit write failure is logged but never blocks the response;
// a payment failure is surfaced after the audit row is written.
func (s *agentService) finish(ctx context.Context, decision models.Decision, subject string, quantity int64, recipient, memo string) (*models.ActionReport, error) {
	result, payErr := s.dispatcher.Dispatch(ctx, decision, quantity, recipient, memo)

	s.audit(ctx, decision, subject, quantity, result)

	if payErr != nil {
		return nil, payErr
	}
	return &models.ActionReport{
		Subject:  subject,
		Quantity: quantity,
		Decision: decision,
		Payment:  result,
	}, nil
}

func (s *agentService) audit(ctx context.Context, decision models.Decision, subject string, quantity int64, result models.PaymentResult) {
	rec := models.DecisionRecord{
		ID:            uuid.NewString(),
		Kind:          decision.Kind,
		Subject:       subject,
		Accepted:      decision.Affirmative(),
		UnitPrice:     decision.UnitPrice,
		Quantity:      quantity,
		PaymentStatus: result.Status,
		PaymentRef:    result.ReferenceID,
		CreatedAt:     time.Now().UTC(),
	}
	if decision.Outcome != nil {
		rec.Rounds = decision.Outcome.Rounds
	}

	if err := s.repo.InsertDecision(ctx, rec); err != nil {
		logger.L().Error().Err(err).
			Str("decision_id", rec.ID).
			Str("kind", string(rec.Kind)).
			Msg("audit insert failed")
	}
}
