package domain

import "time"

// DefaultCurrency is assigned when a registration omits a currency preference.
const DefaultCurrency = "USD"

// supportedCurrencies is the set of currency codes the tracker can display.
var supportedCurrencies = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {},
	"CAD": {}, "AUD": {}, "INR": {}, "CNY": {},
}

// User models a registered account. The password hash is never serialized.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Currency     string    `json:"currency"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidCurrency reports whether code is a supported currency preference.
func ValidCurrency(code string) bool {
	_, ok := supportedCurrencies[code]
	return ok
}
