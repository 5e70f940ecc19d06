package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise-app/spendwise/internal/model"
)

func day(t *testing.T, s string) model.Day {
	t.Helper()
	d, err := model.ParseDay(s)
	require.NoError(t, err)
	return d
}

func txn(t *testing.T, date string, amount float64, category string) model.Transaction {
	t.Helper()
	return model.Transaction{
		Date:     day(t, date),
		Amount:   amount,
		Category: category,
		UserID:   1,
	}
}

func TestComputeKPIs(t *testing.T) {
	t.Run("empty snapshot yields zeros", func(t *testing.T) {
		kpis := ComputeKPIs(nil)
		assert.Equal(t, 0.0, kpis.Total)
		assert.Equal(t, 0.0, kpis.AvgPerDay)
		assert.Equal(t, 0, kpis.Count)
	})

	t.Run("average divides by distinct days", func(t *testing.T) {
		kpis := ComputeKPIs([]model.Transaction{
			txn(t, "2024-03-01", 10, "Food & Groceries"),
			txn(t, "2024-03-01", 20, "Transport"),
			txn(t, "2024-03-05", 30, "Food & Groceries"),
		})
		assert.Equal(t, 60.0, kpis.Total)
		assert.Equal(t, 30.0, kpis.AvgPerDay) // 60 over 2 distinct days
		assert.Equal(t, 3, kpis.Count)
	})
}

func TestCategoryBreakdown(t *testing.T) {
	breakdown := CategoryBreakdown([]model.Transaction{
		txn(t, "2024-03-01", 10, "Food & Groceries"),
		txn(t, "2024-03-02", 5, "Food & Groceries"),
		txn(t, "2024-03-02", 7, "Transport"),
	})

	assert.Equal(t, map[string]float64{
		"Food & Groceries": 15,
		"Transport":        7,
	}, breakdown)

	// Categories with no transactions are simply absent.
	_, present := breakdown["Housing"]
	assert.False(t, present)
}

func TestDailySeriesMovingAverage(t *testing.T) {
	t.Run("window grows from the start", func(t *testing.T) {
		series := DailySeriesWithForecast([]model.Transaction{
			txn(t, "2024-03-01", 10, "Other"),
			txn(t, "2024-03-02", 20, "Other"),
			txn(t, "2024-03-03", 30, "Other"),
		})

		require.Len(t, series.Daily, 3)
		assert.Equal(t, []float64{10, 15, 20}, []float64{
			series.Daily[0].MovingAvg,
			series.Daily[1].MovingAvg,
			series.Daily[2].MovingAvg,
		})
	})

	t.Run("window spans observed days, not calendar days", func(t *testing.T) {
		// Two entries ten days apart still form a 2-entry window.
		series := DailySeriesWithForecast([]model.Transaction{
			txn(t, "2024-03-01", 10, "Other"),
			txn(t, "2024-03-11", 30, "Other"),
		})

		require.Len(t, series.Daily, 2)
		assert.Equal(t, 20.0, series.Daily[1].MovingAvg)
	})

	t.Run("window caps at seven observed entries", func(t *testing.T) {
		var transactions []model.Transaction
		dates := []string{
			"2024-03-01", "2024-03-02", "2024-03-03", "2024-03-04",
			"2024-03-05", "2024-03-06", "2024-03-07", "2024-03-08",
		}
		for i, date := range dates {
			transactions = append(transactions, txn(t, date, float64((i+1)*10), "Other"))
		}

		series := DailySeriesWithForecast(transactions)
		require.Len(t, series.Daily, 8)

		// Entry 7 averages entries 1..7, entry 8 averages 2..8.
		assert.InDelta(t, 40.0, series.Daily[6].MovingAvg, 1e-9)
		assert.InDelta(t, 50.0, series.Daily[7].MovingAvg, 1e-9)
	})

	t.Run("multiple transactions on one day sum first", func(t *testing.T) {
		series := DailySeriesWithForecast([]model.Transaction{
			txn(t, "2024-03-01", 10, "Other"),
			txn(t, "2024-03-01", 5, "Transport"),
			txn(t, "2024-03-02", 15, "Other"),
		})

		require.Len(t, series.Daily, 2)
		assert.Equal(t, 15.0, series.Daily[0].Total)
		assert.Equal(t, 15.0, series.Daily[1].MovingAvg)
	})
}

func TestForecast(t *testing.T) {
	t.Run("empty input yields empty series", func(t *testing.T) {
		series := DailySeriesWithForecast(nil)
		assert.Empty(t, series.Daily)
		assert.Empty(t, series.Forecast)
	})

	t.Run("last day of month yields empty forecast", func(t *testing.T) {
		series := DailySeriesWithForecast([]model.Transaction{
			txn(t, "2024-03-31", 10, "Other"),
		})
		require.Len(t, series.Daily, 1)
		assert.Empty(t, series.Forecast)
	})

	t.Run("three days before month end yields three flat points", func(t *testing.T) {
		series := DailySeriesWithForecast([]model.Transaction{
			txn(t, "2024-03-26", 10, "Other"),
			txn(t, "2024-03-27", 20, "Other"),
			txn(t, "2024-03-28", 30, "Other"),
		})

		require.Len(t, series.Forecast, 3)
		finalAvg := series.Daily[len(series.Daily)-1].MovingAvg
		assert.Equal(t, 20.0, finalAvg)

		wantDates := []string{"2024-03-29", "2024-03-30", "2024-03-31"}
		for i, point := range series.Forecast {
			assert.Equal(t, wantDates[i], point.Date.String())
			assert.Equal(t, finalAvg, point.Value)
		}
	})

	t.Run("february leap year boundary", func(t *testing.T) {
		series := DailySeriesWithForecast([]model.Transaction{
			txn(t, "2024-02-28", 10, "Other"),
		})
		require.Len(t, series.Forecast, 1)
		assert.Equal(t, "2024-02-29", series.Forecast[0].Date.String())
	})
}
