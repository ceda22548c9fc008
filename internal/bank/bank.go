// Package bank simulates a session authenticated ledger: users log in
// against in-memory credentials and may then move money out of their own
// account.
package bank

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
)

type account struct {
	password string
	balance  float64
}

type BankingSystem struct {
	mu       sync.Mutex
	accounts map[string]*account
	sessions *sessionRepository
	ledger   []Transaction
	logger   *slog.Logger
	now      func() time.Time
}

func NewBankingSystem(logger *slog.Logger, accounts ...Account) *BankingSystem {
	bs := &BankingSystem{
		accounts: make(map[string]*account, len(accounts)),
		logger:   logger,
		now:      time.Now,
	}
	bs.sessions = newSessionRepository(func() time.Time { return bs.now() })

	for _, a := range accounts {
		if !(a.Balance >= 0) || math.IsInf(a.Balance, 0) {
			logger.Warn("skipping account with invalid balance", "username", a.Username, "balance", a.Balance)
			continue
		}
		if err := bs.sessions.add(a.Username, a.Password); err != nil {
			logger.Warn("skipping duplicate account", "username", a.Username)
			continue
		}
		bs.accounts[a.Username] = &account{password: a.Password, balance: a.Balance}
	}

	return bs
}

// Authenticate opens a session for username. It fails for unknown users,
// wrong passwords and users that are already logged in.
func (bs *BankingSystem) Authenticate(username, password string) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if err := bs.authenticate(username, password); err != nil {
		bs.logger.Warn("authentication failed", "username", username, "error", err)
		return false
	}
	bs.logger.Info("authentication successful", "username", username)
	return true
}

func (bs *BankingSystem) authenticate(username, password string) error {
	state, ok := bs.sessions.state(username)
	if !ok {
		return ErrInvalidCredentials
	}
	if state == SessionLoggedIn {
		if bs.accounts[username].password != password {
			return ErrInvalidCredentials
		}
		return ErrAlreadyLoggedIn
	}
	if err := bs.sessions.trigger(username, eventAuthenticate, password); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}
	return nil
}

// Logout closes the session of username and reports whether one was open.
func (bs *BankingSystem) Logout(username string) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	if err := bs.sessions.trigger(username, eventLogout); err != nil {
		bs.logger.Warn("logout failed", "username", username, "error", err)
		return false
	}
	bs.logger.Info("logged out", "username", username)
	return true
}

func (bs *BankingSystem) IsLoggedIn(username string) bool {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	state, ok := bs.sessions.state(username)
	return ok && state == SessionLoggedIn
}

// LoggedInSince returns when the current session of username started.
func (bs *BankingSystem) LoggedInSince(username string) (time.Time, bool) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	return bs.sessions.since(username)
}

func (bs *BankingSystem) Balance(username string) (float64, bool) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	acc, ok := bs.accounts[username]
	if !ok {
		return 0, false
	}
	return acc.balance, true
}

// TransferMoney reports whether the transfer went through. See Transfer for
// the reason of a refusal.
func (bs *BankingSystem) TransferMoney(sender, receiver string, amount float64, txType string) bool {
	_, err := bs.Transfer(sender, receiver, amount, TransactionType(txType))
	return err == nil
}

// Transfer debits amount plus the type's fee from sender and credits
// receiver when it is a known account. Nothing changes on error.
func (bs *BankingSystem) Transfer(sender, receiver string, amount float64, txType TransactionType) (Transaction, error) {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	tx, err := bs.transfer(sender, receiver, amount, txType)
	if err != nil {
		bs.logger.Warn("transfer refused",
			"sender", sender,
			"receiver", receiver,
			"amount", amount,
			"type", txType,
			"error", err,
		)
		return Transaction{}, err
	}

	bs.logger.Info("transfer completed",
		"id", tx.ID,
		"sender", sender,
		"receiver", receiver,
		"amount", amount,
		"fee", tx.Fee,
	)
	return tx, nil
}

func (bs *BankingSystem) transfer(sender, receiver string, amount float64, txType TransactionType) (Transaction, error) {
	if state, ok := bs.sessions.state(sender); !ok || state != SessionLoggedIn {
		return Transaction{}, ErrNotAuthenticated
	}

	fee, ok := txType.Fee(amount)
	if !ok {
		return Transaction{}, fmt.Errorf("%w: %q", ErrUnknownTransactionType, txType)
	}

	if !(amount > 0) || math.IsInf(amount, 0) {
		return Transaction{}, ErrInvalidAmount
	}

	from := bs.accounts[sender]
	if from.balance < amount+fee {
		return Transaction{}, ErrInsufficientFunds
	}

	from.balance -= amount + fee
	if to, ok := bs.accounts[receiver]; ok && receiver != sender {
		to.balance += amount
	}

	tx := Transaction{
		ID:       uuid.New(),
		Sender:   sender,
		Receiver: receiver,
		Type:     txType,
		Amount:   amount,
		Fee:      fee,
		At:       bs.now(),
	}
	bs.ledger = append(bs.ledger, tx)
	return tx, nil
}

// Ledger returns the completed transfers, oldest first.
func (bs *BankingSystem) Ledger() []Transaction {
	bs.mu.Lock()
	defer bs.mu.Unlock()

	return append([]Transaction(nil), bs.ledger...)
}
