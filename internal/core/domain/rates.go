package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateTable is an immutable snapshot of exchange rates against a single base
// currency. Rates are expressed as units of currency per one unit of base;
// the base itself is implicit and never stored in Rates. A table is created
// by a successful provider fetch and superseded, never mutated, by the next
// one.
type RateTable struct {
	Base      CurrencyCode
	AsOf      time.Time
	Rates     map[CurrencyCode]float64
	FetchedAt time.Time
}

// RateFor returns the rate for a canonical code. The base currency is always
// exactly 1 and is not looked up.
func (t *RateTable) RateFor(code CurrencyCode) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Decimal{}, false
	}
	if code == t.Base {
		return decimal.NewFromInt(1), true
	}
	rate, ok := t.Rates[code]
	if !ok || rate <= 0 {
		return decimal.Decimal{}, false
	}
	return decimal.NewFromFloat(rate), true
}
