package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a completed trade written by the external trading process.
// This service never inserts, updates, or deletes rows here.
//
// Datetime is kept as the raw string the trader wrote: the writer is not
// under our control and has produced malformed timestamps before, so parsing
// happens at read time and bad rows are dropped from the metrics.
type Transaction struct {
	gorm.Model
	Datetime    string          `json:"datetime"`
	Title       string          `json:"title"`
	Ticker      string          `json:"ticker"`
	BuyValue    decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"buy_value"`
	SaleValue   decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"sale_value"`
	Fee         decimal.Decimal `gorm:"type:numeric;not null;default:0" json:"fee"`
	ProfitRatio float64         `gorm:"not null;default:0" json:"profit_ratio"`
}

// ProfitKRW is the derived per-trade net profit: sale - buy - fee.
// It is computed on read and never persisted.
func (t Transaction) ProfitKRW() decimal.Decimal {
	return t.SaleValue.Sub(t.BuyValue).Sub(t.Fee)
}
