package domain

// WalletAccount is the spendable, capped balance of the child
type WalletAccount struct {
	Balance int64 `json:"balance" gorm:"not null;default:0"` // Whole currency units
}

// SavingsAccount is the uncapped balance set aside from the wallet
type SavingsAccount struct {
	Balance int64 `json:"balance" gorm:"not null;default:0"` // Whole currency units
}
