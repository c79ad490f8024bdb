package cashflow

import (
	"iter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Ledger holds the ordered transaction log and the opening balance.
//
// The log is append-only and keeps its insertion order: append order is the
// chronological order, there is no re-sorting. Duplicate descriptions and
// amounts are valid and common.
type Ledger struct {
	openingBalance decimal.Decimal
	transactions   []Transaction
}

// NewLedger creates an empty ledger with a zero opening balance.
func NewLedger() *Ledger {
	return &Ledger{
		transactions: make([]Transaction, 0),
	}
}

// OpeningBalance returns the user-set starting funds.
func (l *Ledger) OpeningBalance() decimal.Decimal {
	return l.openingBalance
}

// SetOpeningBalance replaces the opening balance with any value, including a
// negative one. Coercion of unparseable user input belongs to the caller, see
// ParseBalance.
func (l *Ledger) SetOpeningBalance(v decimal.Decimal) {
	l.openingBalance = v
}

// ParseBalance parses user input into a balance value. Invalid numeric input
// is coerced to zero, matching the entry form behavior.
func ParseBalance(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return v
}

// Append validates a transaction and appends it to the end of the log. A
// transaction failing the gate (empty description, non-positive amount,
// inconsistent category) is not recorded and ErrInvalidTransaction is
// returned. A fresh unique id is minted when the transaction has none.
func (l *Ledger) Append(tx Transaction) error {
	if err := tx.Validate(); err != nil {
		return err
	}
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	l.transactions = append(l.transactions, tx)
	return nil
}

// ReplaceAll unconditionally overwrites the transaction log and the opening
// balance. It is the restore path: incoming transactions are trusted as
// already well-formed and are not validated.
func (l *Ledger) ReplaceAll(transactions []Transaction, openingBalance decimal.Decimal) {
	l.transactions = make([]Transaction, len(transactions))
	copy(l.transactions, transactions)
	l.openingBalance = openingBalance
}

// Clear resets the ledger to the empty state: no transactions, zero balance.
func (l *Ledger) Clear() {
	l.transactions = make([]Transaction, 0)
	l.openingBalance = decimal.Zero
}

// Len returns the number of transactions in the log.
func (l *Ledger) Len() int {
	return len(l.transactions)
}

// Transactions returns an iterator that yields each transaction in log order.
// A transaction is yielded when at least one filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			accept := false
			for _, filter := range filters {
				if filter(tx) {
					accept = true
					break
				}
			}
			if !accept {
				continue
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// TransactionList returns a copy of the full transaction log. The result is
// never nil, so an empty ledger serializes as an empty array.
func (l *Ledger) TransactionList() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// AcceptAll is a predicate that accepts every transaction.
func AcceptAll(Transaction) bool { return true }

// ByType returns a predicate that filters transactions by direction.
func ByType(t Type) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// Suggestions returns up to limit distinct description values among
// transactions of the given type, for input autocompletion. Descriptions are
// deduplicated by first appearance over the filtered log, then the last limit
// of that sequence are kept, preserving order. A limit <= 0 defaults to 5.
func (l *Ledger) Suggestions(t Type, limit int) []string {
	if limit <= 0 {
		limit = 5
	}
	seen := make(map[string]struct{})
	var distinct []string
	for _, tx := range l.transactions {
		if tx.Type != t || tx.Description == "" {
			continue
		}
		if _, ok := seen[tx.Description]; ok {
			continue
		}
		seen[tx.Description] = struct{}{}
		distinct = append(distinct, tx.Description)
	}
	if len(distinct) > limit {
		distinct = distinct[len(distinct)-limit:]
	}
	return distinct
}
