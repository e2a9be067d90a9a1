// Package stats derives aggregate figures from a trade sequence. Every
// function is pure: same trades in, same numbers out, no hidden state.
// Sums are exact decimals; rounding happens only when a caller formats
// for display.
package stats

import (
	"github.com/shopspring/decimal"

	"github.com/rustyeddy/pnl/ledger"
)

// Totals are the whole-ledger aggregate figures. TotalLoss is a positive
// magnitude; NetPL equals TotalProfit minus TotalLoss exactly.
type Totals struct {
	TotalProfit decimal.Decimal
	TotalLoss   decimal.Decimal
	NetPL       decimal.Decimal
	TradeCount  int
}

// DayAggregate is the derived summary for one calendar day. It is never
// persisted.
type DayAggregate struct {
	Date  ledger.Date
	Net   decimal.Decimal
	Count int
}

// Compute folds the full trade sequence into Totals.
func Compute(trades []ledger.Trade) Totals {
	t := Totals{
		TotalProfit: decimal.Zero,
		TotalLoss:   decimal.Zero,
	}
	for _, tr := range trades {
		switch tr.Type {
		case ledger.Profit:
			t.TotalProfit = t.TotalProfit.Add(tr.Amount)
		case ledger.Loss:
			t.TotalLoss = t.TotalLoss.Add(tr.Amount)
		}
		t.TradeCount++
	}
	t.NetPL = t.TotalProfit.Sub(t.TotalLoss)
	return t
}

// DayNet sums the signed contributions of the trades on the given day.
func DayNet(trades []ledger.Trade, d ledger.Date) decimal.Decimal {
	net := decimal.Zero
	for _, t := range trades {
		if t.Date == d {
			net = net.Add(t.Signed())
		}
	}
	return net
}

// DayCount counts the trades on the given day.
func DayCount(trades []ledger.Trade, d ledger.Date) int {
	n := 0
	for _, t := range trades {
		if t.Date == d {
			n++
		}
	}
	return n
}

// ByDay buckets the trade sequence into one DayAggregate per distinct
// date, in one pass. Callers that annotate many days at once (the month
// projection) use this instead of rescanning per day.
func ByDay(trades []ledger.Trade) map[ledger.Date]DayAggregate {
	out := make(map[ledger.Date]DayAggregate)
	for _, t := range trades {
		agg, ok := out[t.Date]
		if !ok {
			agg = DayAggregate{Date: t.Date, Net: decimal.Zero}
		}
		agg.Net = agg.Net.Add(t.Signed())
		agg.Count++
		out[t.Date] = agg
	}
	return out
}
