package domain

import "strings"

// CurrencyCode is a canonical ISO 4217 currency code, e.g. "USD".
type CurrencyCode string

// aliasToCode maps currency symbols and localized display names to canonical
// codes. Keys that contain letters are stored uppercase; lookup uppercases
// the identifier before matching.
var aliasToCode = map[string]CurrencyCode{
	"$":    "USD",
	"US$":  "USD",
	"美元":   "USD",
	"€":    "EUR",
	"欧元":   "EUR",
	"£":    "GBP",
	"英镑":   "GBP",
	"¥":    "CNY",
	"￥":    "CNY",
	"元":    "CNY",
	"人民币":  "CNY",
	"日元":   "JPY",
	"円":    "JPY",
	"HK$":  "HKD",
	"港币":   "HKD",
	"港元":   "HKD",
	"NT$":  "TWD",
	"新台币":  "TWD",
	"₩":    "KRW",
	"韩元":   "KRW",
	"₽":    "RUB",
	"卢布":   "RUB",
	"₹":    "INR",
	"卢比":   "INR",
	"A$":   "AUD",
	"澳元":   "AUD",
	"C$":   "CAD",
	"加元":   "CAD",
	"S$":   "SGD",
	"新加坡元": "SGD",
	"₺":    "TRY",
	"R$":   "BRL",
	"CHF":  "CHF",
	"瑞士法郎": "CHF",
}

// symbolByCode maps canonical codes back to display symbols.
var symbolByCode = map[CurrencyCode]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"CNY": "¥",
	"JPY": "¥",
	"HKD": "HK$",
	"TWD": "NT$",
	"KRW": "₩",
	"RUB": "₽",
	"INR": "₹",
	"AUD": "A$",
	"CAD": "C$",
	"SGD": "S$",
	"TRY": "₺",
	"BRL": "R$",
	"CHF": "CHF",
}

// ResolveCurrency maps a currency identifier (ISO code, symbol or localized
// name) to a canonical code. Resolution is total: an unknown identifier is
// returned uppercased so that conversion can degrade to identity instead of
// failing.
func ResolveCurrency(identifier string) CurrencyCode {
	id := strings.ToUpper(strings.TrimSpace(identifier))
	if code, ok := aliasToCode[id]; ok {
		return code
	}
	return CurrencyCode(id)
}

// SymbolFor returns the display symbol for a canonical code, echoing the code
// itself when no symbol is known.
func SymbolFor(code CurrencyCode) string {
	if sym, ok := symbolByCode[code]; ok {
		return sym
	}
	return string(code)
}
