package cashflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestEncodeJSONDocument(t *testing.T) {
	// 1. Arrange.
	l := dayLedger(t)

	// 2. Act.
	var b strings.Builder
	if err := EncodeJSON(&b, l, "2026-02-01T18:00:00Z"); err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	got := b.String()

	// 3. Assert: the document carries the report date, raw state and totals.
	for _, want := range []string{
		`"reportDate": "2026-02-01T18:00:00Z"`,
		`"openingBalance": 1000`,
		`"totals"`,
		`"transactions"`,
		`"summary"`,
		`"closingBalance": 1550.00`,
		`"description": "Morning sales"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("JSON backup missing %s:\n%s", want, got)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	// 1. Arrange.
	l := dayLedger(t)

	// 2. Act: encode then decode.
	var b strings.Builder
	if err := EncodeJSON(&b, l, ""); err != nil {
		t.Fatalf("EncodeJSON failed: %v", err)
	}
	got := NewLedger()
	if err := DecodeJSON(strings.NewReader(b.String()), got); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	// 3. Assert: the restore is exact, ids included.
	if got.Len() != l.Len() {
		t.Fatalf("round-trip has %d transactions, want %d", got.Len(), l.Len())
	}
	want := l.TransactionList()
	for i, tx := range got.TransactionList() {
		if !tx.Equal(want[i]) {
			t.Errorf("round-trip transaction %d = %+v, want %+v", i, tx, want[i])
		}
	}
	if !got.OpeningBalance().Equal(l.OpeningBalance()) {
		t.Errorf("round-trip opening balance = %s, want %s", got.OpeningBalance(), l.OpeningBalance())
	}
}

func TestDecodeJSONEmptyBackup(t *testing.T) {
	// An explicitly empty backup empties a ledger that had activity.
	doc := `{"reportDate":"2026-02-01T18:00:00Z","openingBalance":0,"transactions":[]}`

	l := dayLedger(t)
	if err := DecodeJSON(strings.NewReader(doc), l); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("restored %d transactions, want 0", l.Len())
	}
	if !l.OpeningBalance().IsZero() {
		t.Errorf("restored opening balance = %s, want 0", l.OpeningBalance())
	}
}

func TestDecodeJSONStringBalance(t *testing.T) {
	// Older backups carried the balance as a string.
	doc := `{"openingBalance":"1000.50"}`

	l := NewLedger()
	if err := DecodeJSON(strings.NewReader(doc), l); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	assertDecimal(t, "OpeningBalance", l.OpeningBalance(), "1000.50")
}

func TestDecodeJSONBalanceOnlyKeepsLog(t *testing.T) {
	// 1. Arrange: a ledger holding one transaction.
	l := NewLedger()
	if err := l.Append(NewCashIn("01/02/2026", "Morning sales", CategoryCash, decimal.NewFromInt(500))); err != nil {
		t.Fatal(err)
	}

	// 2. Act: apply a backup carrying only a balance.
	if err := DecodeJSON(strings.NewReader(`{"openingBalance":500}`), l); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	// 3. Assert: the balance is replaced, the prior log survives.
	assertDecimal(t, "OpeningBalance", l.OpeningBalance(), "500")
	if l.Len() != 1 {
		t.Fatalf("after balance-only restore the log has %d entries, want 1", l.Len())
	}
	if got := l.TransactionList()[0].Description; got != "Morning sales" {
		t.Errorf("surviving transaction = %q, want Morning sales", got)
	}
}

func TestDecodeJSONTransactionsOnlyKeepsBalance(t *testing.T) {
	// 1. Arrange: a ledger with a balance and an entry.
	l := NewLedger()
	l.SetOpeningBalance(decimal.NewFromInt(1000))
	if err := l.Append(NewCashIn("", "old", CategoryCash, decimal.NewFromInt(1))); err != nil {
		t.Fatal(err)
	}

	// 2. Act: apply a backup carrying only transactions.
	doc := `{"transactions":[{"id":"x","date":"01/02/2026","description":"new","type":"cash-in","category":"online","amount":7}]}`
	if err := DecodeJSON(strings.NewReader(doc), l); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	// 3. Assert: the log is replaced, the prior balance survives.
	assertDecimal(t, "OpeningBalance", l.OpeningBalance(), "1000")
	if l.Len() != 1 || l.TransactionList()[0].ID != "x" {
		t.Errorf("log after transactions-only restore = %+v", l.TransactionList())
	}
}

func TestDecodeJSONMissingFields(t *testing.T) {
	// A document with neither field leaves the ledger exactly as it was.
	l := dayLedger(t)
	if err := DecodeJSON(strings.NewReader(`{"something":"else"}`), l); err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	if l.Len() != 3 {
		t.Errorf("log has %d entries after no-op restore, want 3", l.Len())
	}
	assertDecimal(t, "OpeningBalance", l.OpeningBalance(), "1000")
}

func TestDecodeJSONErrors(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{"invalid json", `{not json`},
		{"transactions not an array", `{"transactions":"nope"}`},
		{"unknown type", `{"transactions":[{"id":"x","type":"transfer","category":"cash","description":"a","amount":1}]}`},
		{"unknown category", `{"transactions":[{"id":"x","type":"cash-in","category":"crypto","description":"a","amount":1}]}`},
		{"non-numeric amount", `{"transactions":[{"id":"x","type":"cash-in","category":"cash","description":"a","amount":"abc"}]}`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// A failed restore must leave the prior ledger untouched.
			l := dayLedger(t)
			if err := DecodeJSON(strings.NewReader(tc.doc), l); err == nil {
				t.Error("DecodeJSON should fail")
			}
			if l.Len() != 3 {
				t.Errorf("log has %d entries after failed restore, want 3", l.Len())
			}
			assertDecimal(t, "OpeningBalance", l.OpeningBalance(), "1000")
		})
	}
}

func TestRestoreDispatch(t *testing.T) {
	// 1. Arrange: a valid JSON backup under different file names.
	doc := `{"openingBalance":7,"transactions":[]}`

	// 2. Act + assert: extension picks the codec, case-insensitively.
	l := NewLedger()
	if err := Restore("backup.json", strings.NewReader(doc), l); err != nil {
		t.Errorf("Restore(.json) failed: %v", err)
	} else {
		assertDecimal(t, "OpeningBalance", l.OpeningBalance(), "7")
	}
	if err := Restore("backup.JSON", strings.NewReader(doc), NewLedger()); err != nil {
		t.Errorf("Restore(.JSON) failed: %v", err)
	}
	if err := Restore("backup.csv", strings.NewReader("Daily Cash Flow Report"), NewLedger()); err != nil {
		t.Errorf("Restore(.csv) failed: %v", err)
	}

	// 3. Unknown extensions are rejected before reading.
	err := Restore("backup.xlsx", strings.NewReader(doc), NewLedger())
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Restore(.xlsx) = %v, want ErrUnsupportedFormat", err)
	}
}
