package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moneywise/internal/domain"
)

func TestPay(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		balance       int64
		amount        int64
		method        domain.PaymentMethod
		recipient     string
		wantErr       error
		wantBalance   int64
		wantRecipient string
	}{
		{name: "insufficient", balance: 100, amount: 150, method: domain.MethodQR, wantErr: ErrInsufficientBalance, wantBalance: 100},
		{name: "exact balance", balance: 150, amount: 150, method: domain.MethodQR, wantBalance: 0, wantRecipient: "Merchant QR"},
		{name: "zero", balance: 150, amount: 0, method: domain.MethodQR, wantErr: ErrInvalidAmount, wantBalance: 150},
		{name: "negative", balance: 150, amount: -1, method: domain.MethodBankTransfer, wantErr: ErrInvalidAmount, wantBalance: 150},
		{name: "unknown method", balance: 150, amount: 10, method: "cash", wantErr: ErrInvalidAmount, wantBalance: 150},
		{name: "upi without handle", balance: 150, amount: 10, method: domain.MethodUPI, recipient: "  ", wantErr: ErrMissingRecipient, wantBalance: 150},
		{name: "upi with handle", balance: 150, amount: 10, method: domain.MethodUPI, recipient: " friend@upi ", wantBalance: 140, wantRecipient: "friend@upi"},
		{name: "bank ignores recipient", balance: 150, amount: 25, method: domain.MethodBankTransfer, recipient: "", wantBalance: 125, wantRecipient: "Bank Beneficiary"},
		{name: "qr ignores recipient", balance: 150, amount: 25, method: domain.MethodQR, recipient: "someone", wantBalance: 125, wantRecipient: "Merchant QR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Pay(tt.balance, tt.amount, tt.method, tt.recipient, now)
			assert.Equal(t, tt.wantBalance, res.NewBalance)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, res.Record)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.PaymentRecord{
				Recipient: tt.wantRecipient,
				Amount:    tt.amount,
				Method:    tt.method,
				Timestamp: now,
			}, res.Record)
		})
	}
}

func TestPayAppendsOneRecord(t *testing.T) {
	s := &domain.Session{Wallet: domain.WalletAccount{Balance: 150}}
	res, err := Pay(s.Wallet.Balance, 150, domain.MethodQR, "", time.Now())
	require.NoError(t, err)
	s.Wallet.Balance = res.NewBalance
	s.RecordPayment(res.Record)

	assert.Equal(t, int64(0), s.Wallet.Balance)
	assert.Len(t, s.Payments, 1)
}
