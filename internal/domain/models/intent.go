package models

import "fmt"

// Operator is a price comparison supported by trade intents.
type Operator string

const (
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
	OpEqual          Operator = "=="
)

// Valid reports whether the operator is one of the supported comparisons.
func (o Operator) Valid() bool {
	switch o {
	case OpLess, OpLessOrEqual, OpGreater, OpGreaterOrEqual, OpEqual:
		return true
	}
	return false
}

// Compare applies the operator between the current price and a reference
// price (a literal threshold or the trailing baseline).
func (o Operator) Compare(current, reference float64) bool {
	switch o {
	case OpLess:
		return current < reference
	case OpLessOrEqual:
		return current <= reference
	case OpGreater:
		return current > reference
	case OpGreaterOrEqual:
		return current >= reference
	case OpEqual:
		return current == reference
	}
	return false
}

// TradeIntent is a structured "buy if the price condition holds" instruction.
// It is produced by the command interpreter, immutable once constructed, and
// consumed by exactly one evaluation.
//
// When BaselineRelative is set the operator compares the current price
// against the trailing baseline (e.g. "below its moving average") and the
// literal Threshold is ignored.
type TradeIntent struct {
	Asset            string   `json:"asset" example:"bitcoin"`
	Quantity         int64    `json:"quantity" example:"2"`
	Operator         Operator `json:"operator" example:"<"`
	Threshold        float64  `json:"threshold" example:"30000"`
	BaselineRelative bool     `json:"baseline_relative" example:"false"`
	Recipient        string   `json:"recipient" example:"Coinbase"`
}

// Validate rejects malformed trade intents before any external call.
func (i TradeIntent) Validate() error {
	if i.Asset == "" {
		return fmt.Errorf("%w: asset is required", ErrInvalidIntent)
	}
	if i.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidIntent, i.Quantity)
	}
	if !i.Operator.Valid() {
		return fmt.Errorf("%w: unsupported operator %q", ErrInvalidIntent, i.Operator)
	}
	// The threshold is unused for baseline-relative conditions.
	if !i.BaselineRelative && i.Threshold <= 0 {
		return fmt.Errorf("%w: threshold must be positive, got %v", ErrInvalidIntent, i.Threshold)
	}
	if i.Recipient == "" {
		return fmt.Errorf("%w: recipient is required", ErrInvalidIntent)
	}
	return nil
}

// BargainIntent is a structured "haggle for this item" instruction.
// Immutable once constructed.
type BargainIntent struct {
	Item         string  `json:"item" example:"chocolate"`
	Quantity     int64   `json:"quantity" example:"200"`
	Counterparty string  `json:"counterparty" example:"Kiran"`
	ListedPrice  float64 `json:"listed_price" example:"1.20"`
	TargetPrice  float64 `json:"target_price" example:"0.95"`
	MaxRounds    int     `json:"max_rounds" example:"5"`
}

// Validate rejects malformed bargain intents before any round is simulated.
func (i BargainIntent) Validate() error {
	if i.Item == "" {
		return fmt.Errorf("%w: item is required", ErrInvalidIntent)
	}
	if i.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive, got %d", ErrInvalidIntent, i.Quantity)
	}
	if i.Counterparty == "" {
		return fmt.Errorf("%w: counterparty is required", ErrInvalidIntent)
	}
	if i.ListedPrice <= 0 {
		return fmt.Errorf("%w: listed price must be positive, got %v", ErrInvalidIntent, i.ListedPrice)
	}
	if i.TargetPrice <= 0 {
		return fmt.Errorf("%w: target price must be positive, got %v", ErrInvalidIntent, i.TargetPrice)
	}
	if i.MaxRounds < 1 {
		return fmt.Errorf("%w: max rounds must be at least 1, got %d", ErrInvalidIntent, i.MaxRounds)
	}
	return nil
}
