package ledger

import (
	"strings"
	"time"

	"moneywise/internal/domain"
)

const (
	qrRecipient   = "Merchant QR"
	bankRecipient = "Bank Beneficiary"
)

// PaymentResult is the state after a successful payment
type PaymentResult struct {
	NewBalance int64                // Wallet balance after the debit
	Record     domain.PaymentRecord // Entry to prepend to the payment log
}

// Pay debits the wallet for a simulated outgoing payment.
//
// Only UPI requires a recipient; QR and bank transfer carry generic labels and
// their recipient fields are not validated. The record ID is left for the
// caller to assign.
func Pay(balance, amount int64, method domain.PaymentMethod, recipientRef string, now time.Time) (PaymentResult, error) {
	if amount <= 0 || !method.Valid() {
		return PaymentResult{NewBalance: balance}, ErrInvalidAmount
	}
	if amount > balance {
		return PaymentResult{NewBalance: balance}, ErrInsufficientBalance
	}
	recipient := strings.TrimSpace(recipientRef)
	switch method {
	case domain.MethodUPI:
		if recipient == "" {
			return PaymentResult{NewBalance: balance}, ErrMissingRecipient
		}
	case domain.MethodQR:
		recipient = qrRecipient // Scanned code carries no name
	case domain.MethodBankTransfer:
		recipient = bankRecipient
	}
	return PaymentResult{
		NewBalance: balance - amount,
		Record: domain.PaymentRecord{
			Recipient: recipient,
			Amount:    amount,
			Method:    method,
			Timestamp: now,
		},
	}, nil
}
