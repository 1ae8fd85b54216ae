package ledger

import "slices"

// WalletLimit is the ceiling the wallet balance may never exceed
const WalletLimit int64 = 2000

// nearLimitPercent is the usage above which the child is warned
const nearLimitPercent = 80

// QuickAddAmounts are the fixed top-up denominations offered to the parent
var QuickAddAmounts = []int64{50, 100, 200, 500}

// SavingsPresets are the fixed transfer amounts offered on the savings screen
var SavingsPresets = []int64{50, 100, 200, 500}

// AddFunds tops up the wallet.
func AddFunds(balance, amount int64) (int64, error) {
	if amount <= 0 {
		return balance, ErrInvalidAmount
	}
	if amount > WalletLimit-balance { // Exactly at the limit is allowed
		return balance, ErrLimitExceeded
	}
	return balance + amount, nil
}

// QuickAdd tops up the wallet with one of QuickAddAmounts.
func QuickAdd(balance, preset int64) (int64, error) {
	if !slices.Contains(QuickAddAmounts, preset) {
		return balance, ErrInvalidAmount
	}
	return AddFunds(balance, preset)
}

// QuickAddEnabled reports whether the preset button should be offered.
func QuickAddEnabled(balance, preset int64) bool {
	_, err := QuickAdd(balance, preset)
	return err == nil
}

// AvailableToAdd is the remaining headroom under WalletLimit. It is
// informational and never used to clamp input.
func AvailableToAdd(balance int64) int64 {
	return WalletLimit - balance
}

// WalletOverview is the derived figures shown on the wallet card
type WalletOverview struct {
	Balance        int64 `json:"balance"`
	Limit          int64 `json:"limit"`
	AvailableToAdd int64 `json:"available_to_add"`
	UsagePercent   int64 `json:"usage_percent"`
	NearLimit      bool  `json:"near_limit"`
	Savings        int64 `json:"savings"`
	SavingsRate    int64 `json:"savings_rate"`
}

// Overview derives the wallet card figures from the two balances.
func Overview(wallet, savings int64) WalletOverview {
	usage := Percent(wallet, WalletLimit)
	return WalletOverview{
		Balance:        wallet,
		Limit:          WalletLimit,
		AvailableToAdd: AvailableToAdd(wallet),
		UsagePercent:   usage,
		NearLimit:      wallet*100 > nearLimitPercent*WalletLimit,
		Savings:        savings,
		SavingsRate:    Percent(savings, wallet+savings),
	}
}
