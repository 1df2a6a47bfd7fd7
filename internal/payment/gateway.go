package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/mfalcao/payagent/internal/domain/models"
)

const (
	// Gateways meter payment submissions aggressively; keep a small margin.
	requestsPerSec = 5
	requestBurst   = 5
)

// Gateway is the payment-rail adapter. It submits one directive per call and
// never retries: a reported failure is terminal for that request.
type Gateway struct {
	http    *http.Client
	base    string
	apiKey  string
	limiter *rate.Limiter
}

func NewGateway(baseURL, apiKey string) *Gateway {
	return &Gateway{
		http:    &http.Client{Timeout: 15 * time.Second},
		base:    baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSec), requestBurst),
	}
}

type paymentRequest struct {
	Amount    float64 `json:"amount"`
	Recipient string  `json:"recipient"`
	Memo      string  `json:"memo"`
}

type paymentResponse struct {
	Status      string `json:"status"`
	ReferenceID string `json:"reference_id"`
	Detail      string `json:"detail,omitempty"`
}

// ExecutePayment submits the directive and returns the gateway-reported
// status and reference. Transport failures and gateway-reported failures
// both wrap models.ErrPaymentFailed; pending is a success from the core's
// point of view (the gateway owns completion from here).
func (g *Gateway) ExecutePayment(ctx context.Context, directive models.PaymentDirective) (models.PaymentResult, error) {
	if err := g.limiter.Wait(ctx); err != nil {
		return models.PaymentResult{Status: models.PaymentFailed},
			fmt.Errorf("%w: rate limiter: %v", models.ErrPaymentFailed, err)
	}

	body, err := json.Marshal(paymentRequest{
		Amount:    directive.Amount,
		Recipient: directive.Recipient,
		Memo:      directive.Memo,
	})
	if err != nil {
		return models.PaymentResult{Status: models.PaymentFailed},
			fmt.Errorf("%w: marshal directive: %v", models.ErrPaymentFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.base+"/payments", bytes.NewReader(body))
	if err != nil {
		return models.PaymentResult{Status: models.PaymentFailed},
			fmt.Errorf("%w: build request: %v", models.ErrPaymentFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if g.apiKey != "" {
		req.Header.Set("x-api-key", g.apiKey)
	}

	resp, err := g.http.Do(req)
	if err != nil {
		return models.PaymentResult{Status: models.PaymentFailed},
			fmt.Errorf("%w: %v", models.ErrPaymentFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return models.PaymentResult{Status: models.PaymentFailed},
			fmt.Errorf("%w: gateway returned %d: %s", models.ErrPaymentFailed, resp.StatusCode, bytes.TrimSpace(detail))
	}

	var out paymentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return models.PaymentResult{Status: models.PaymentFailed},
			fmt.Errorf("%w: decode response: %v", models.ErrPaymentFailed, err)
	}

	result := models.PaymentResult{
		Status:      models.PaymentStatus(out.Status),
		ReferenceID: out.ReferenceID,
	}
	switch result.Status {
	case models.PaymentCompleted, models.PaymentPending:
		return result, nil
	case models.PaymentFailed:
		return result, fmt.Errorf("%w: %s", models.ErrPaymentFailed, nonEmpty(out.Detail, "gateway reported failure"))
	default:
		return models.PaymentResult{Status: models.PaymentFailed},
			fmt.Errorf("%w: unexpected gateway status %q", models.ErrPaymentFailed, out.Status)
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
