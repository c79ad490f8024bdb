package cashflow

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts are numbers in the JSON backup, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// EncodeJSON writes the ledger as a pretty-printed JSON backup. The document
// carries the raw state (opening balance and the verbatim transaction log,
// full-precision amounts) plus the derived totals rounded to two decimals,
// so that the backup is readable on its own.
func EncodeJSON(w io.Writer, l *Ledger, reportDate string) error {
	if reportDate == "" {
		reportDate = time.Now().Format(time.RFC3339)
	}
	totals := l.Summarize()

	var obj jsonObjectWriter
	obj.Append("reportDate", reportDate)
	obj.Append("openingBalance", l.openingBalance)
	obj.Append("totals", totals)
	obj.Append("transactions", l.TransactionList())
	obj.Append("summary", totals)

	raw, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("cannot marshal JSON backup: %w", err)
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return fmt.Errorf("cannot format JSON backup: %w", err)
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("cannot write JSON backup: %w", err)
	}
	return nil
}

// DecodeJSON applies a JSON backup onto the ledger.
//
// The backup is read duck-typed: only the "openingBalance" and "transactions"
// fields matter, extracted by path from the generic document so that backups
// carrying extra fields (report date, derived totals) still restore. Each
// field replaces ledger state only when present: a balance-only backup keeps
// the current transaction log and a transactions-only backup keeps the
// current balance. The opening balance accepts a number or a numeric string.
// Transactions are taken verbatim, ids included — unlike the CSV path,
// nothing is re-minted and no row is filtered. A document that cannot map
// onto the record shape (a non-array transactions field, unknown type or
// category strings, a non-numeric amount) aborts the restore and leaves the
// ledger untouched.
func DecodeJSON(r io.Reader, l *Ledger) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("cannot read JSON backup: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot parse JSON backup: %w", err)
	}

	opening := l.OpeningBalance()
	if v, err := jsonpath.Get("$.openingBalance", doc); err == nil {
		switch b := v.(type) {
		case float64:
			opening = decimal.NewFromFloat(b)
		case string:
			if parsed, err := decimal.NewFromString(b); err == nil {
				opening = parsed
			}
		}
	}

	transactions := l.TransactionList()
	if v, err := jsonpath.Get("$.transactions", doc); err == nil {
		list, ok := v.([]any)
		if !ok {
			return fmt.Errorf("cannot parse JSON backup: transactions is not an array")
		}
		raw, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("cannot parse JSON backup: %w", err)
		}
		var decoded []Transaction
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return fmt.Errorf("cannot parse JSON backup transactions: %w", err)
		}
		transactions = decoded
	}

	// Nothing is written until the whole document parsed.
	l.ReplaceAll(transactions, opening)
	return nil
}
