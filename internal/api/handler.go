package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mfalcao/payagent/internal/domain/dto"
	"github.com/mfalcao/payagent/internal/domain/models"
	"github.com/mfalcao/payagent/internal/logger"
	"github.com/mfalcao/payagent/internal/middleware"
	"github.com/mfalcao/payagent/internal/service"
)

// Handler provides HTTP handlers for the intent endpoints.
//
// Responsibilities:
//   - Decode and sanity-check incoming intent bodies
//   - Delegate to the agent service
//   - Translate decision-core errors into HTTP statuses
//   - Return the {content, timestamp, status} response record
type Handler struct {
	svc service.AgentService
}

func NewHandler(svc service.AgentService) *Handler {
	return &Handler{svc: svc}
}

// PostTradeIntent godoc
// @Summary      Evaluate a trade condition
// @Description  Checks the intent's price condition against live market data and pays the recipient when it holds
// @Tags         intents
// @Accept       json
// @Produce      json
// @Param        intent  body      dto.TradeRequest  true  "Structured trade intent"
// @Success      200     {object}  dto.AgentResponse      "Decision reached"
// @Failure      400     {object}  dto.ErrorResponse      "Invalid intent"
// @Failure      404     {object}  dto.ErrorResponse      "Unknown asset"
// @Failure      502     {object}  dto.ErrorResponse      "Payment failed"
// @Failure      503     {object}  dto.ErrorResponse      "Market data unavailable"
// @Router       /api/v1/intents/trade [post]
func (h *Handler) PostTradeIntent(c *gin.Context) {
	var req dto.TradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	logEcho(c, "trade", req.Echo)

	report, err := h.svc.HandleTrade(c.Request.Context(), req.ToIntent())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAgentResponse(report))
}

// PostBargainIntent godoc
// @Summary      Negotiate a purchase price
// @Description  Simulates a bargaining exchange with the counterparty and pays when a price is accepted
// @Tags         intents
// @Accept       json
// @Produce      json
// @Param        intent  body      dto.BargainRequest  true  "Structured bargain intent"
// @Success      200     {object}  dto.AgentResponse      "Decision reached"
// @Failure      400     {object}  dto.ErrorResponse      "Invalid intent"
// @Failure      502     {object}  dto.ErrorResponse      "Payment failed"
// @Router       /api/v1/intents/bargain [post]
func (h *Handler) PostBargainIntent(c *gin.Context) {
	var req dto.BargainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}
	logEcho(c, "bargain", req.Echo)

	report, err := h.svc.HandleBargain(c.Request.Context(), req.ToIntent())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAgentResponse(report))
}

// ListDecisions godoc
// @Summary      List recent decisions
// @Description  Returns the newest audit records, newest first
// @Tags         decisions
// @Produce      json
// @Param        limit  query     int  false  "Maximum records to return (default 20, max 100)"
// @Success      200    {array}   models.DecisionRecord
// @Failure      500    {object}  dto.ErrorResponse  "Internal Error"
// @Router       /api/v1/decisions [get]
func (h *Handler) ListDecisions(c *gin.Context) {
	limit := 20
	if s := c.Query("limit"); s != "" {
		parsed, err := strconv.Atoi(s)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid limit, expected a positive integer", err))
			return
		}
		limit = parsed
	}
	if limit > 100 {
		limit = 100
	}

	records, err := h.svc.RecentDecisions(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch decisions", err))
		return
	}
	if records == nil {
		records = []models.DecisionRecord{}
	}
	c.JSON(http.StatusOK, records)
}

// respondError maps decision-core error kinds onto HTTP statuses. None of
// them crash the process; every failure is terminal for its request.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidIntent):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid intent", err))
	case errors.Is(err, models.ErrUnknownAsset):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("unknown asset", err))
	case errors.Is(err, models.ErrDataUnavailable):
		c.JSON(http.StatusServiceUnavailable, dto.NewErrorResponse("market data unavailable", err))
	case errors.Is(err, models.ErrPaymentFailed):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("payment failed", err))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("internal error", err))
	}
}

// logEcho records the interpreter's raw text for traceability. It is never
// parsed here; the command interpreter already produced the structured form.
func logEcho(c *gin.Context, kind, echo string) {
	if echo == "" {
		return
	}
	rid, _ := c.Get(middleware.RequestIDKey)
	id, _ := rid.(string)
	logger.L().Info().
		Str("request_id", id).
		Str("intent_kind", kind).
		Str("echo", echo).
		Msg("intent received")
}
