package domain

import "time"

// PaymentMethod is the channel a simulated payment goes through
type PaymentMethod string

const (
	MethodQR           PaymentMethod = "qr"            // QR scanner
	MethodUPI          PaymentMethod = "upi"           // UPI handle
	MethodBankTransfer PaymentMethod = "bank_transfer" // Bank beneficiary
)

// Valid reports whether m is one of the known channels
func (m PaymentMethod) Valid() bool {
	switch m {
	case MethodQR, MethodUPI, MethodBankTransfer:
		return true
	}
	return false
}

// Label returns the human readable channel name
func (m PaymentMethod) Label() string {
	switch m {
	case MethodQR:
		return "QR Scanner"
	case MethodUPI:
		return "UPI"
	case MethodBankTransfer:
		return "Bank Transfer"
	}
	return string(m)
}

// PaymentRecord is an immutable log entry produced by a successful payment
type PaymentRecord struct {
	ID        string        `json:"id"`        // Record ID
	Recipient string        `json:"recipient"` // Derived per channel
	Amount    int64         `json:"amount"`    // Amount debited
	Method    PaymentMethod `json:"method"`    // Channel used
	Timestamp time.Time     `json:"timestamp"` // When the payment completed
}
