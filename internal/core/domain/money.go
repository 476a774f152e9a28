package domain

import "github.com/shopspring/decimal"

// priceKind distinguishes the sentinel states node agents report in the raw
// price field (-1 meaning free, 0 or missing meaning not applicable).
type priceKind int

const (
	priceNotApplicable priceKind = iota
	priceFree
	priceAmount
)

// Price is a tagged variant for a node's billing price. External records
// encode "free" and "not applicable" as magic numbers; those are decoded once
// at the ingestion boundary so calculators never re-check sentinels.
type Price struct {
	kind   priceKind
	amount decimal.Decimal
}

// FreePrice returns the "free of charge" price.
func FreePrice() Price { return Price{kind: priceFree} }

// NoPrice returns the "not applicable" price.
func NoPrice() Price { return Price{kind: priceNotApplicable} }

// PriceOf returns a priced value. Non-positive amounts collapse to NoPrice.
func PriceOf(amount decimal.Decimal) Price {
	if amount.LessThanOrEqual(decimal.Zero) {
		return NoPrice()
	}
	return Price{kind: priceAmount, amount: amount}
}

// PriceFromRaw decodes the raw numeric price field: -1 is free, zero or
// negative is not applicable, anything else is a real amount.
func PriceFromRaw(raw float64) Price {
	if raw == -1 {
		return FreePrice()
	}
	return PriceOf(decimal.NewFromFloat(raw))
}

// IsFree reports whether the node is explicitly free of charge.
func (p Price) IsFree() bool { return p.kind == priceFree }

// Amount returns the monetary amount and whether the price carries one.
func (p Price) Amount() (decimal.Decimal, bool) {
	return p.amount, p.kind == priceAmount
}

// RawValue re-encodes the price into the wire representation.
func (p Price) RawValue() float64 {
	switch p.kind {
	case priceFree:
		return -1
	case priceAmount:
		return p.amount.InexactFloat64()
	default:
		return 0
	}
}
