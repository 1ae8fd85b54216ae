package ledger

// Balances is a wallet/savings pair moved as one step
type Balances struct {
	Wallet  int64 `json:"wallet"`
	Savings int64 `json:"savings"`
}

// MoveToSavings moves amount from the wallet into savings. Savings has no
// upper bound. On error both balances are returned unchanged.
func MoveToSavings(wallet, savings, amount int64) (Balances, error) {
	unchanged := Balances{Wallet: wallet, Savings: savings}
	if amount <= 0 {
		return unchanged, ErrInvalidAmount
	}
	if amount > wallet {
		return unchanged, ErrInsufficientBalance
	}
	return Balances{Wallet: wallet - amount, Savings: savings + amount}, nil
}

// MoveToWallet moves amount from savings back into the wallet, respecting
// WalletLimit. On error both balances are returned unchanged.
func MoveToWallet(wallet, savings, amount int64) (Balances, error) {
	unchanged := Balances{Wallet: wallet, Savings: savings}
	if amount <= 0 {
		return unchanged, ErrInvalidAmount
	}
	if amount > savings {
		return unchanged, ErrInsufficientSavings
	}
	if amount > WalletLimit-wallet { // Savings cannot overfill the wallet
		return unchanged, ErrLimitExceeded
	}
	return Balances{Wallet: wallet + amount, Savings: savings - amount}, nil
}

// SavingsPresetEnabled reports whether a preset transfer can be offered.
func SavingsPresetEnabled(wallet, preset int64) bool {
	return preset <= wallet
}
