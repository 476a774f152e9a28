package dto

// DisplayCurrencyResponse defines the structure for the stored display currency.
type DisplayCurrencyResponse struct {
	Currency string `json:"currency"`
}

// UpdateDisplayCurrencyRequest defines the structure for updating the display currency.
// The identifier may be a code, a symbol or a localized currency name.
type UpdateDisplayCurrencyRequest struct {
	Currency string `json:"currency" binding:"required,currencyid"`
}
