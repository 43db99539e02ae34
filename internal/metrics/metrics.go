package metrics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"trading-dashboard/internal/models"
)

// Accepted datetime layouts, most specific first. The external trader has
// written both RFC3339 and space-separated local timestamps over time.
var datetimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDatetime parses a stored transaction timestamp. The zone carried by
// the string (if any) is kept as-is; there is no normalization to UTC, so
// daily grouping follows whatever zone the trader wrote.
func ParseDatetime(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TradeRow is one line of the detail table: the stored fields plus the
// parsed timestamp and the derived net profit.
type TradeRow struct {
	Datetime    time.Time       `json:"datetime"`
	Title       string          `json:"title"`
	Ticker      string          `json:"ticker"`
	BuyValue    decimal.Decimal `json:"buy_value"`
	SaleValue   decimal.Decimal `json:"sale_value"`
	Fee         decimal.Decimal `json:"fee"`
	ProfitRatio float64         `json:"profit_ratio"`
	ProfitKRW   decimal.Decimal `json:"profit_krw"`
}

// DailyPoint is one point of the daily chart: the mean profit ratio of that
// date's trades and the running sum of those means up to and including it.
type DailyPoint struct {
	Date             string  `json:"date"`
	AvgProfitRatio   float64 `json:"avg_profit_ratio"`
	CumulativeProfit float64 `json:"cumulative_profit"`
}

// Report bundles everything the dashboard renders from the trade log.
type Report struct {
	AvgProfitRatio float64         `json:"avg_profit_ratio"`
	TotalProfitKRW decimal.Decimal `json:"total_profit_krw"`
	SuccessCount   int             `json:"success_count"`
	FailCount      int             `json:"fail_count"`
	DroppedCount   int             `json:"dropped_count"`
	Daily          []DailyPoint    `json:"daily"`
	Trades         []TradeRow      `json:"trades"`
}

// Compute derives the dashboard report from the full trade log. It is a pure
// function of its input: no state is kept between calls and the database is
// never touched here.
//
// Records whose datetime is missing or unparseable are dropped from every
// aggregate and from the table; the dropped count is logged and reported.
// A nil return means there is nothing to render (no usable trades at all) and
// the caller must show its no-data notice instead of a report.
func Compute(txs []models.Transaction, log *zap.Logger) *Report {
	if len(txs) == 0 {
		return nil
	}

	rows := make([]TradeRow, 0, len(txs))
	for _, tx := range txs {
		ts, ok := ParseDatetime(tx.Datetime)
		if !ok {
			continue
		}
		rows = append(rows, TradeRow{
			Datetime:    ts,
			Title:       tx.Title,
			Ticker:      tx.Ticker,
			BuyValue:    tx.BuyValue,
			SaleValue:   tx.SaleValue,
			Fee:         tx.Fee,
			ProfitRatio: tx.ProfitRatio,
			ProfitKRW:   tx.ProfitKRW(),
		})
	}

	dropped := len(txs) - len(rows)
	if dropped > 0 {
		log.Warn("dropped transactions with unparseable datetime",
			zap.Int("dropped", dropped),
			zap.Int("total", len(txs)))
	}
	if len(rows) == 0 {
		return nil
	}

	// Most recent first; display order only, aggregates below don't care.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Datetime.After(rows[j].Datetime)
	})

	report := &Report{
		TotalProfitKRW: decimal.Zero,
		DroppedCount:   dropped,
		Trades:         rows,
	}

	var ratioSum float64
	type dayAccum struct {
		ratioSum float64
		count    int
	}
	days := make(map[string]*dayAccum)

	for _, row := range rows {
		ratioSum += row.ProfitRatio
		report.TotalProfitKRW = report.TotalProfitKRW.Add(row.ProfitKRW)
		if row.ProfitKRW.IsPositive() {
			report.SuccessCount++
		} else {
			// Zero-profit trades count as failures.
			report.FailCount++
		}

		date := row.Datetime.Format("2006-01-02")
		acc := days[date]
		if acc == nil {
			acc = &dayAccum{}
			days[date] = acc
		}
		acc.ratioSum += row.ProfitRatio
		acc.count++
	}
	report.AvgProfitRatio = ratioSum / float64(len(rows))

	dates := make([]string, 0, len(days))
	for date := range days {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	// Cumulative profit is a running sum of the daily means, not of per-trade
	// profit. That matches the chart the operators are used to.
	var cumulative float64
	report.Daily = make([]DailyPoint, 0, len(dates))
	for _, date := range dates {
		acc := days[date]
		avg := acc.ratioSum / float64(acc.count)
		cumulative += avg
		report.Daily = append(report.Daily, DailyPoint{
			Date:             date,
			AvgProfitRatio:   avg,
			CumulativeProfit: cumulative,
		})
	}

	return report
}
