package cashflow

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The CSV backup is not a generic CSV dialect: it is a fixed-section report
// that this package both produces and consumes. The decoder is a line scanner
// deliberately kept compatible with files written by earlier versions of the
// tracker, hence the comma split with quote stripping and the shared
// amount-column fallback instead of encoding/csv.

const (
	csvTitle          = "Daily Cash Flow Report"
	csvOpeningBalance = "Opening Balance"
	csvCashInSection  = "Cash In Transactions"
	csvCashOutSection = "Cash Out Transactions"
	csvSummarySection = "Summary"
)

// EncodeCSV writes the ledger and its derived totals as a sectioned CSV
// report. Row order within each section matches the log order. All amounts
// are rounded to two decimals at this point only.
func EncodeCSV(w io.Writer, l *Ledger, currency, reportDate string) error {
	totals := l.Summarize()

	var b strings.Builder
	b.WriteString(csvTitle + "\n")
	b.WriteString("Date," + reportDate + "\n")
	b.WriteString("\n")
	b.WriteString(csvOpeningBalance + "\n")
	b.WriteString("Balance," + l.openingBalance.StringFixed(2) + "\n")
	b.WriteString("\n")

	b.WriteString(csvCashInSection + "\n")
	fmt.Fprintf(&b, "Date,Description,Type,Amount (%s)\n", currency)
	for _, tx := range l.Transactions(ByType(CashIn)) {
		fmt.Fprintf(&b, "%s,%q,%s,%s\n", tx.Date, tx.Description, tx.Category, tx.Amount.StringFixed(2))
	}
	b.WriteString("\n")

	b.WriteString(csvCashOutSection + "\n")
	fmt.Fprintf(&b, "Date,Description,Amount (%s)\n", currency)
	for _, tx := range l.Transactions(ByType(CashOut)) {
		fmt.Fprintf(&b, "%s,%q,%s\n", tx.Date, tx.Description, tx.Amount.StringFixed(2))
	}
	b.WriteString("\n")

	b.WriteString(csvSummarySection + "\n")
	b.WriteString("Cash Sales," + totals.CashSales.StringFixed(2) + "\n")
	b.WriteString("Online Sales," + totals.OnlineSales.StringFixed(2) + "\n")
	b.WriteString("Total Sales," + totals.TotalSales.StringFixed(2) + "\n")
	b.WriteString("Total Cash Out," + totals.TotalCashOut.StringFixed(2) + "\n")
	b.WriteString("Net Cash Flow," + totals.NetCashFlow.StringFixed(2) + "\n")
	b.WriteString("Closing Balance," + totals.ClosingBalance.StringFixed(2))

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("cannot write CSV backup: %w", err)
	}
	return nil
}

// csvSection tracks which transaction section the decoder is currently in.
type csvSection int

const (
	sectionNone csvSection = iota
	sectionCashIn
	sectionCashOut
)

// DecodeCSV restores a ledger from a CSV backup.
//
// The scan tracks the current section, set by the literal section header
// lines, and skips the column-header row that follows each of them. Any
// other non-empty line inside a section is parsed as a transaction row by
// splitting on commas and stripping quotes. The amount is always read from
// column 3, falling back to column 2 — one shared rule tolerating both the
// four-column cash-in layout and the three-column cash-out layout. The
// opening balance is the second field of the line following the
// "Opening Balance" marker.
//
// A row is accepted only with a non-empty description and a positive amount;
// accepted rows get fresh ids. The result replaces the whole ledger or
// nothing: a read failure aborts the restore.
func DecodeCSV(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV backup: %w", err)
	}

	lines := strings.Split(string(data), "\n")
	opening := decimal.Zero
	var transactions []Transaction
	section := sectionNone

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])

		switch {
		case strings.Contains(line, csvOpeningBalance):
			if i+1 < len(lines) {
				next := strings.TrimSpace(lines[i+1])
				if fields := strings.Split(next, ","); len(fields) > 1 {
					if v, err := decimal.NewFromString(strings.TrimSpace(fields[1])); err == nil {
						opening = v
					}
				}
			}
		case line == csvCashInSection:
			section = sectionCashIn
			i++ // skip the column-header row
		case line == csvCashOutSection:
			section = sectionCashOut
			i++ // skip the column-header row
		case section != sectionNone && line != "" &&
			!strings.Contains(line, "Date,Description") &&
			!strings.Contains(line, csvSummarySection):
			if tx, ok := parseCSVRow(line, section); ok {
				transactions = append(transactions, tx)
			}
		}
	}

	l := NewLedger()
	l.ReplaceAll(transactions, opening)
	return l, nil
}

// parseCSVRow parses one transaction row. Rows with fewer than three fields,
// an empty description or a non-positive amount are dropped, not errors.
func parseCSVRow(line string, section csvSection) (Transaction, bool) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.ReplaceAll(strings.TrimSpace(fields[i]), `"`, "")
	}
	if len(fields) < 3 {
		return Transaction{}, false
	}

	date := fields[0]
	if date == "" {
		date = Today()
	}
	description := fields[1]

	// Shared fallback: column 3 when present, else column 2. Never branch
	// per section.
	amountField := fields[2]
	if len(fields) > 3 && fields[3] != "" {
		amountField = fields[3]
	}
	amount, err := decimal.NewFromString(amountField)
	if err != nil {
		amount = decimal.Zero
	}

	typ := CashIn
	category := CategoryCash
	if section == sectionCashOut {
		typ = CashOut
		category = CategoryExpense
	} else if c, err := ParseCategory(fields[2]); err == nil && c != CategoryExpense {
		category = c
	}

	if description == "" || !amount.IsPositive() {
		return Transaction{}, false
	}
	return Transaction{
		ID:          uuid.NewString(),
		Date:        date,
		Description: description,
		Type:        typ,
		Category:    category,
		Amount:      amount,
	}, true
}
