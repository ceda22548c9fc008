package bank

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionRegular   TransactionType = "regular"
	TransactionExpress   TransactionType = "express"
	TransactionScheduled TransactionType = "scheduled"
)

// feeRates is the share of the amount charged on top of a transfer.
var feeRates = map[TransactionType]float64{
	TransactionRegular:   0,
	TransactionExpress:   0.02,
	TransactionScheduled: 0,
}

// Fee returns the fee charged for moving amount with t, and false for an
// unknown type.
func (t TransactionType) Fee(amount float64) (float64, bool) {
	rate, ok := feeRates[t]
	if !ok {
		return 0, false
	}
	return amount * rate, true
}

type Account struct {
	Username string
	Password string
	Balance  float64
}

// DefaultAccounts is the single reference account the simulator ships with.
func DefaultAccounts() []Account {
	return []Account{{Username: "user123", Password: "pass123", Balance: 1000}}
}

type Transaction struct {
	ID       uuid.UUID
	Sender   string
	Receiver string
	Type     TransactionType
	Amount   float64
	Fee      float64
	At       time.Time
}

var (
	ErrUnknownAccount         = errors.New("account not found")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAlreadyLoggedIn        = errors.New("user already logged in")
	ErrNotAuthenticated       = errors.New("sender not authenticated")
	ErrUnknownTransactionType = errors.New("invalid transaction type")
	ErrInvalidAmount          = errors.New("amount must be positive")
	ErrInsufficientFunds      = errors.New("insufficient funds")
)
