package metrics

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"trading-dashboard/internal/models"
)

func tx(datetime, ticker string, buy, sale, fee int64, ratio float64) models.Transaction {
	return models.Transaction{
		Datetime:    datetime,
		Title:       ticker + " auto trade",
		Ticker:      ticker,
		BuyValue:    decimal.NewFromInt(buy),
		SaleValue:   decimal.NewFromInt(sale),
		Fee:         decimal.NewFromInt(fee),
		ProfitRatio: ratio,
	}
}

func TestComputeEmptyInput(t *testing.T) {
	assert.Nil(t, Compute(nil, zap.NewNop()))
	assert.Nil(t, Compute([]models.Transaction{}, zap.NewNop()))
}

func TestComputeAllRecordsUnparseable(t *testing.T) {
	txs := []models.Transaction{
		tx("", "BTC", 1000, 1100, 10, 0.01),
		tx("not a date", "ETH", 1000, 1100, 10, 0.01),
	}
	assert.Nil(t, Compute(txs, zap.NewNop()), "nothing usable must read as no data")
}

func TestComputeSingleDay(t *testing.T) {
	// Three trades on the same day: profits +100, +200, -50 KRW.
	txs := []models.Transaction{
		tx("2025-03-10 09:30:00", "BTC", 1000, 1110, 10, 0.01),
		tx("2025-03-10 11:00:00", "ETH", 1000, 1205, 5, 0.02),
		tx("2025-03-10 14:15:00", "XRP", 1000, 960, 10, -0.01),
	}

	report := Compute(txs, zap.NewNop())
	require.NotNil(t, report)

	assert.InDelta(t, 0.00667, report.AvgProfitRatio, 0.0001)
	assert.True(t, report.TotalProfitKRW.Equal(decimal.NewFromInt(250)),
		"total profit, got %s", report.TotalProfitKRW)
	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 1, report.FailCount)
	assert.Equal(t, 0, report.DroppedCount)

	require.Len(t, report.Daily, 1)
	assert.Equal(t, "2025-03-10", report.Daily[0].Date)
	assert.InDelta(t, 0.00667, report.Daily[0].AvgProfitRatio, 0.0001)
	assert.InDelta(t, 0.00667, report.Daily[0].CumulativeProfit, 0.0001)
}

func TestComputeZeroProfitIsFail(t *testing.T) {
	// sale - buy - fee == 0 exactly
	txs := []models.Transaction{
		tx("2025-03-10 09:30:00", "BTC", 1000, 1010, 10, 0.0),
	}

	report := Compute(txs, zap.NewNop())
	require.NotNil(t, report)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 1, report.FailCount)
}

func TestComputeDropsUnparseableDatetimes(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-03-10 09:30:00", "BTC", 1000, 1110, 10, 0.01),
		tx("yesterday-ish", "ETH", 1000, 2000, 0, 0.99),
		tx("", "XRP", 1000, 2000, 0, 0.99),
	}

	report := Compute(txs, zap.NewNop())
	require.NotNil(t, report)

	assert.Equal(t, 2, report.DroppedCount)
	require.Len(t, report.Trades, 1)
	assert.Equal(t, "BTC", report.Trades[0].Ticker)

	// Dropped rows contribute to nothing.
	assert.InDelta(t, 0.01, report.AvgProfitRatio, 1e-9)
	assert.True(t, report.TotalProfitKRW.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, 1, report.SuccessCount+report.FailCount)
	require.Len(t, report.Daily, 1)
}

func TestComputeTableSortedMostRecentFirst(t *testing.T) {
	txs := []models.Transaction{
		tx("2025-03-09 10:00:00", "AAA", 1000, 1100, 10, 0.01),
		tx("2025-03-11 10:00:00", "CCC", 1000, 1100, 10, 0.01),
		tx("2025-03-10 10:00:00", "BBB", 1000, 1100, 10, 0.01),
	}

	report := Compute(txs, zap.NewNop())
	require.NotNil(t, report)
	require.Len(t, report.Trades, 3)
	assert.Equal(t, "CCC", report.Trades[0].Ticker)
	assert.Equal(t, "BBB", report.Trades[1].Ticker)
	assert.Equal(t, "AAA", report.Trades[2].Ticker)
}

func TestComputeCumulativeOverDays(t *testing.T) {
	// Day one mean ratio 0.01, day two mean ratio 0.03.
	txs := []models.Transaction{
		tx("2025-03-11 10:00:00", "ETH", 1000, 1050, 10, 0.03),
		tx("2025-03-10 09:00:00", "BTC", 1000, 1100, 10, 0.00),
		tx("2025-03-10 15:00:00", "BTC", 1000, 1100, 10, 0.02),
	}

	report := Compute(txs, zap.NewNop())
	require.NotNil(t, report)

	require.Len(t, report.Daily, 2)
	assert.Equal(t, "2025-03-10", report.Daily[0].Date)
	assert.InDelta(t, 0.01, report.Daily[0].AvgProfitRatio, 1e-9)
	assert.InDelta(t, 0.01, report.Daily[0].CumulativeProfit, 1e-9)
	assert.Equal(t, "2025-03-11", report.Daily[1].Date)
	assert.InDelta(t, 0.03, report.Daily[1].AvgProfitRatio, 1e-9)
	assert.InDelta(t, 0.04, report.Daily[1].CumulativeProfit, 1e-9)
}

func TestParseDatetimeLayouts(t *testing.T) {
	testCases := []struct {
		in string
		ok bool
	}{
		{"2025-03-10T09:30:00Z", true},
		{"2025-03-10T09:30:00+09:00", true},
		{"2025-03-10T09:30:00.123Z", true},
		{"2025-03-10T09:30:00", true},
		{"2025-03-10 09:30:00", true},
		{"2025-03-10", true},
		{"", false},
		{"10/03/2025", false},
		{"soon", false},
	}

	for _, tc := range testCases {
		_, ok := ParseDatetime(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
	}
}

func TestParseDatetimeKeepsStoredZone(t *testing.T) {
	ts, ok := ParseDatetime("2025-03-11T01:30:00+09:00")
	require.True(t, ok)
	// Grouping date follows the stored zone, not UTC.
	assert.Equal(t, "2025-03-11", ts.Format("2006-01-02"))
	assert.Equal(t, "2025-03-10", ts.UTC().Format("2006-01-02"))
}
