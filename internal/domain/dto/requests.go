package dto

import "github.com/mfalcao/payagent/internal/domain/models"

// TradeRequest is the JSON body of POST /api/v1/intents/trade. The command
// interpreter has already turned free text into this structured form; Echo
// carries the raw text for logging only and is never parsed here.
type TradeRequest struct {
	Asset            string  `json:"asset" example:"bitcoin"`
	Quantity         int64   `json:"quantity" example:"2"`
	Operator         string  `json:"operator" example:"<"`
	Threshold        float64 `json:"threshold" example:"30000"`
	BaselineRelative bool    `json:"baseline_relative" example:"false"`
	Recipient        string  `json:"recipient" example:"Coinbase"`
	Echo             string  `json:"echo,omitempty" example:"buy 2 BTC if under 30k"`
}

// ToIntent maps the request onto the immutable domain intent.
func (r TradeRequest) ToIntent() models.TradeIntent {
	return models.TradeIntent{
		Asset:            r.Asset,
		Quantity:         r.Quantity,
		Operator:         models.Operator(r.Operator),
		Threshold:        r.Threshold,
		BaselineRelative: r.BaselineRelative,
		Recipient:        r.Recipient,
	}
}

// BargainRequest is the JSON body of POST /api/v1/intents/bargain.
type BargainRequest struct {
	Item         string  `json:"item" example:"chocolate"`
	Quantity     int64   `json:"quantity" example:"200"`
	Counterparty string  `json:"counterparty" example:"Kiran"`
	ListedPrice  float64 `json:"listed_price" example:"1.20"`
	TargetPrice  float64 `json:"target_price" example:"0.95"`
	MaxRounds    int     `json:"max_rounds" example:"5"`
	Echo         string  `json:"echo,omitempty" example:"buy 200 chocolates from Kiran if under $1 each"`
}

// ToIntent maps the request onto the immutable domain intent.
func (r BargainRequest) ToIntent() models.BargainIntent {
	return models.BargainIntent{
		Item:         r.Item,
		Quantity:     r.Quantity,
		Counterparty: r.Counterparty,
		ListedPrice:  r.ListedPrice,
		TargetPrice:  r.TargetPrice,
		MaxRounds:    r.MaxRounds,
	}
}
