// Package analytics derives KPIs, category aggregates, and the daily
// series with its month-end forecast. Everything here is a pure function
// of a transaction snapshot; nothing is cached or persisted.
package analytics

import (
	"sort"

	"github.com/spendwise-app/spendwise/internal/model"
)

// movingWindow is the trailing window length for the daily average. The
// window spans the last up-to-7 observed days, not 7 calendar days: gaps
// between transaction dates are not zero-filled.
const movingWindow = 7

// KPIs are the headline numbers for a transaction snapshot.
type KPIs struct {
	Total     float64
	AvgPerDay float64
	Count     int
}

// DailyPoint is one observed day in the time series.
type DailyPoint struct {
	Date      model.Day
	Total     float64
	MovingAvg float64
}

// ForecastPoint is one projected day through month-end.
type ForecastPoint struct {
	Date  model.Day
	Value float64
}

// Series is the daily history plus its flat forecast.
type Series struct {
	Daily    []DailyPoint
	Forecast []ForecastPoint
}

// ComputeKPIs returns total, average per distinct observed day, and row
// count. An empty snapshot yields all zeros; the distinct-day floor of one
// guards the division.
func ComputeKPIs(transactions []model.Transaction) KPIs {
	var kpis KPIs
	days := make(map[string]struct{})

	for _, txn := range transactions {
		kpis.Total += txn.Amount
		days[txn.Date.String()] = struct{}{}
	}
	kpis.Count = len(transactions)

	distinct := len(days)
	if distinct < 1 {
		distinct = 1
	}
	kpis.AvgPerDay = kpis.Total / float64(distinct)
	return kpis
}

// CategoryBreakdown sums amounts per category. Only categories present in
// the snapshot appear; callers decide presentation order.
func CategoryBreakdown(transactions []model.Transaction) map[string]float64 {
	breakdown := make(map[string]float64)
	for _, txn := range transactions {
		breakdown[txn.Category] += txn.Amount
	}
	return breakdown
}

// DailySeriesWithForecast groups the snapshot by calendar date, attaches
// the trailing moving average, and projects a flat forecast from the day
// after the last observed date through that month's end. The forecast
// value is the final moving average; it is empty when the last observed
// date already is the month's last day, and both sequences are empty for
// an empty snapshot.
func DailySeriesWithForecast(transactions []model.Transaction) Series {
	if len(transactions) == 0 {
		return Series{}
	}

	totals := make(map[string]float64)
	dayByKey := make(map[string]model.Day)
	for _, txn := range transactions {
		key := txn.Date.String()
		totals[key] += txn.Amount
		dayByKey[key] = txn.Date
	}

	keys := make([]string, 0, len(totals))
	for key := range totals {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	daily := make([]DailyPoint, len(keys))
	var windowSum float64
	for i, key := range keys {
		windowSum += totals[key]
		if i >= movingWindow {
			windowSum -= totals[keys[i-movingWindow]]
		}
		size := i + 1
		if size > movingWindow {
			size = movingWindow
		}
		daily[i] = DailyPoint{
			Date:      dayByKey[key],
			Total:     totals[key],
			MovingAvg: windowSum / float64(size),
		}
	}

	last := daily[len(daily)-1]
	monthEnd := last.Date.EndOfMonth()

	var forecast []ForecastPoint
	for day := last.Date.AddDays(1); !day.After(monthEnd.Time); day = day.AddDays(1) {
		forecast = append(forecast, ForecastPoint{
			Date:  day,
			Value: last.MovingAvg,
		})
	}

	return Series{Daily: daily, Forecast: forecast}
}
