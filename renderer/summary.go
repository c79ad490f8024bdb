// Package renderer turns ledger data into markdown reports for the terminal.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/cashflow"
)

// SummaryMarkdown renders the opening balance and the six derived totals as a
// markdown report.
func SummaryMarkdown(s cashflow.Summary, opening cashflow.Money, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Cash Flow Summary (%s)", cashflow.Today()))
	doc.PlainText(fmt.Sprintf("Opening Balance: %s", opening))

	doc.H2("Totals")

	closing := cashflow.M(s.ClosingBalance, currency)
	table := md.TableSet{
		Header: []string{"Figure", "Amount"},
		Rows: [][]string{
			{"Cash Sales", cashflow.M(s.CashSales, currency).String()},
			{"Online Sales", cashflow.M(s.OnlineSales, currency).String()},
			{"Total Sales", cashflow.M(s.TotalSales, currency).String()},
			{"Total Cash Out", cashflow.M(s.TotalCashOut, currency).String()},
			{"Net Cash Flow", cashflow.M(s.NetCashFlow, currency).SignedString()},
			{"Closing Balance", closing.String()},
		},
	}
	doc.Table(table)

	if closing.IsNegative() {
		doc.PlainText("Warning: the closing balance is negative.")
	}

	return doc.String()
}
