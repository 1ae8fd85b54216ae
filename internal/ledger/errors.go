package ledger

// Code is the stable identifier of a rule violation
type Code string

const (
	CodeInvalidAmount       Code = "invalid_amount"
	CodeLimitExceeded       Code = "limit_exceeded"
	CodeInsufficientBalance Code = "insufficient_balance"
	CodeInsufficientSavings Code = "insufficient_savings"
	CodeMissingRecipient    Code = "missing_recipient"
	CodeInvalidGoal         Code = "invalid_goal"
)

// RuleError is a recoverable, user-correctable input error. The shell renders
// it as a transient notification; state is never changed when one is returned.
type RuleError struct {
	Code    Code   // Stable identifier
	Title   string // Notification title
	Message string // Notification body
}

func (e *RuleError) Error() string {
	return e.Message
}

// Sentinel rule errors; compare with errors.Is
var (
	ErrInvalidAmount = &RuleError{
		Code:    CodeInvalidAmount,
		Title:   "Invalid Amount",
		Message: "please enter a valid whole amount greater than zero",
	}
	ErrLimitExceeded = &RuleError{
		Code:    CodeLimitExceeded,
		Title:   "Limit Exceeded",
		Message: "this would exceed the wallet limit of 2000",
	}
	ErrInsufficientBalance = &RuleError{
		Code:    CodeInsufficientBalance,
		Title:   "Insufficient Balance",
		Message: "you don't have enough money in your wallet",
	}
	ErrInsufficientSavings = &RuleError{
		Code:    CodeInsufficientSavings,
		Title:   "Insufficient Savings",
		Message: "you don't have enough money in your savings",
	}
	ErrMissingRecipient = &RuleError{
		Code:    CodeMissingRecipient,
		Title:   "Missing Recipient",
		Message: "please enter the UPI ID to pay",
	}
	ErrInvalidGoal = &RuleError{
		Code:    CodeInvalidGoal,
		Title:   "Invalid Goal",
		Message: "a goal needs a name of at most 100 characters and a deadline",
	}
)
