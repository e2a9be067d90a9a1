// Package calendar projects a trade sequence onto a month grid. The
// projection is pure: "today" is an explicit argument, never read from
// the clock, so a grid for any month renders the same way every time.
package calendar

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rustyeddy/pnl/ledger"
	"github.com/rustyeddy/pnl/stats"
)

// Cell is one position in a 7-column month grid. Day 0 marks a leading
// padding cell before the first of the month; padding cells carry no
// aggregate.
type Cell struct {
	Day   int
	Today bool
	Net   decimal.Decimal
	Count int
}

// Empty reports whether the cell is leading padding.
func (c Cell) Empty() bool { return c.Day == 0 }

// DayNames are the column headers of the grid, Sunday first.
var DayNames = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// BuildMonth lays out the given month: one padding cell per weekday
// before the 1st (Sunday = 0), then days 1..N ascending, each annotated
// with its day aggregate. Output length is always
// firstWeekday + DaysInMonth; trailing padding is the renderer's concern.
func BuildMonth(trades []ledger.Trade, year int, month time.Month, today ledger.Date) []Cell {
	first := ledger.NewDate(year, month, 1)
	days := ledger.DaysInMonth(year, month)
	byDay := stats.ByDay(trades)

	cells := make([]Cell, 0, int(first.Weekday())+days)
	for i := 0; i < int(first.Weekday()); i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		d := ledger.NewDate(year, month, day)
		cell := Cell{Day: day, Today: d == today, Net: decimal.Zero}
		if agg, ok := byDay[d]; ok {
			cell.Net = agg.Net
			cell.Count = agg.Count
		}
		cells = append(cells, cell)
	}
	return cells
}
