package engine

import (
	"context"
	"sync"

	"github.com/mfalcao/payagent/internal/domain/models"
)

// MarketData supplies fresh price snapshots for condition evaluation.
//
// Implementations must fail with models.ErrUnknownAsset when the asset
// identifier cannot be resolved and with models.ErrDataUnavailable on
// transient failures, so the caller can tell the two apart.
type MarketData interface {
	GetPrice(ctx context.Context, asset string) (models.PriceSnapshot, error)
}

// PaymentGateway executes payment directives produced by the dispatcher.
// Gateway-reported failures wrap models.ErrPaymentFailed; retries, if any,
// are the gateway's concern, never the core's.
type PaymentGateway interface {
	ExecutePayment(ctx context.Context, directive models.PaymentDirective) (models.PaymentResult, error)
}

// Sampler draws uniform samples in [0, 1). *math/rand.Rand satisfies it; a
// fixed seed makes negotiation outcomes exactly reproducible.
type Sampler interface {
	Float64() float64
}

// LockedSampler serializes access to an underlying Sampler. *math/rand.Rand
// is not safe for concurrent use, so a simulator shared across requests must
// draw through this wrapper.
type LockedSampler struct {
	mu sync.Mutex
	s  Sampler
}

func NewLockedSampler(s Sampler) *LockedSampler {
	return &LockedSampler{s: s}
}

func (l *LockedSampler) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Float64()
}
