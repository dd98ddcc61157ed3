package domain

// PaymentMethod represents how a pending payment will be settled.
type PaymentMethod string

const (
	PaymentMethodCash  PaymentMethod = "cash"
	PaymentMethodCard  PaymentMethod = "card"
	PaymentMethodBkash PaymentMethod = "bkash"
)

// DefaultWalletBalance is the balance a fresh wallet starts with.
const DefaultWalletBalance = 5000.00

// ValidPaymentMethod reports whether m is one of the supported methods.
func ValidPaymentMethod(m PaymentMethod) bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBkash:
		return true
	}
	return false
}
