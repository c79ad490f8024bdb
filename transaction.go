package cashflow

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ErrInvalidTransaction is returned by the append path when an entry does not
// pass the validation gate. Callers treat it as "entry not recorded", not as
// a fatal condition.
var ErrInvalidTransaction = errors.New("invalid transaction")

// DateFormat is the display format used for transaction dates. Dates are
// stored and compared as opaque text; this format is only used when minting
// the default date for a new entry.
const DateFormat = "02/01/2006"

// Today returns the current date in the display format.
func Today() string {
	return time.Now().Format(DateFormat)
}

// Type is the direction of a transaction: money coming in or going out.
type Type int

const (
	// CashIn increases the available funds (a sale, a payment received).
	CashIn Type = iota
	// CashOut decreases the available funds (an expense, a withdrawal).
	CashOut
)

func (t Type) String() string {
	switch t {
	case CashIn:
		return "cash-in"
	case CashOut:
		return "cash-out"
	default:
		return "unknown"
	}
}

// ParseType parses a string into a Type.
func ParseType(s string) (Type, error) {
	switch s {
	case "cash-in":
		return CashIn, nil
	case "cash-out":
		return CashOut, nil
	default:
		return 0, fmt.Errorf("unknown transaction type: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Type.
func (t Type) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Type.
func (t *Type) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Category is the sub-classification of a transaction. For a cash-in entry it
// records the payment channel (cash or online); a cash-out entry is always an
// expense.
type Category int

const (
	// CategoryCash is a cash-in entry paid in physical cash.
	CategoryCash Category = iota
	// CategoryOnline is a cash-in entry paid through a digital channel.
	CategoryOnline
	// CategoryExpense is the fixed category of every cash-out entry.
	CategoryExpense
)

func (c Category) String() string {
	switch c {
	case CategoryCash:
		return "cash"
	case CategoryOnline:
		return "online"
	case CategoryExpense:
		return "expense"
	default:
		return "unknown"
	}
}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "cash":
		return CategoryCash, nil
	case "online":
		return CategoryOnline, nil
	case "expense":
		return CategoryExpense, nil
	default:
		return 0, fmt.Errorf("unknown category: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface for Category.
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for Category.
func (c *Category) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseCategory(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Transaction is a single immutable cash movement. Once appended to a ledger
// it is never edited or deleted.
type Transaction struct {
	ID          string          `json:"id"`          // ID is an opaque unique identifier, minted on append.
	Date        string          `json:"date"`        // Date is opaque display-format text, not a structured date.
	Description string          `json:"description"` // Description is a free-text label, required non-empty.
	Type        Type            `json:"type"`        // Type is the direction, fixed at creation.
	Category    Category        `json:"category"`    // Category must be consistent with Type.
	Amount      decimal.Decimal `json:"amount"`      // Amount is a non-negative quantity in the ledger currency.
}

// NewCashIn creates a cash-in transaction. An empty day defaults to today.
func NewCashIn(day, description string, category Category, amount decimal.Decimal) Transaction {
	if day == "" {
		day = Today()
	}
	return Transaction{
		Date:        day,
		Description: description,
		Type:        CashIn,
		Category:    category,
		Amount:      amount,
	}
}

// NewCashOut creates a cash-out transaction. The category is always expense.
// An empty day defaults to today.
func NewCashOut(day, description string, amount decimal.Decimal) Transaction {
	if day == "" {
		day = Today()
	}
	return Transaction{
		Date:        day,
		Description: description,
		Type:        CashOut,
		Category:    CategoryExpense,
		Amount:      amount,
	}
}

// Validate checks the transaction against the append gate: a non-empty
// description, a strictly positive amount, and a category consistent with
// the type.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Description) == "" {
		return fmt.Errorf("%w: description is required", ErrInvalidTransaction)
	}
	if !t.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", ErrInvalidTransaction, t.Amount)
	}
	switch t.Type {
	case CashIn:
		if t.Category != CategoryCash && t.Category != CategoryOnline {
			return fmt.Errorf("%w: cash-in category must be cash or online, got %s", ErrInvalidTransaction, t.Category)
		}
	case CashOut:
		if t.Category != CategoryExpense {
			return fmt.Errorf("%w: cash-out category must be expense, got %s", ErrInvalidTransaction, t.Category)
		}
	default:
		return fmt.Errorf("%w: unknown type %d", ErrInvalidTransaction, t.Type)
	}
	return nil
}

// Equal reports whether two transactions carry the same values.
// decimal.Decimal is not comparable with ==, hence the explicit method.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Date == o.Date &&
		t.Description == o.Description &&
		t.Type == o.Type &&
		t.Category == o.Category &&
		t.Amount.Equal(o.Amount)
}
