package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/etnz/cashflow"
)

// Transaction renders a transaction to a one-line string.
func Transaction(tx cashflow.Transaction, currency string) string {
	amount := cashflow.M(tx.Amount, currency)
	switch tx.Type {
	case cashflow.CashIn:
		return fmt.Sprintf("%s received %s for %q (%s)", tx.Date, amount, tx.Description, tx.Category)
	case cashflow.CashOut:
		return fmt.Sprintf("%s paid out %s for %q", tx.Date, amount, tx.Description)
	default:
		return fmt.Sprintf("%s %s %s", tx.Date, amount, tx.Description)
	}
}

// TransactionsMarkdown renders a list of transactions as a markdown table,
// in log order.
func TransactionsMarkdown(transactions []cashflow.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Transactions")
	if len(transactions) == 0 {
		doc.PlainText("No transactions recorded.")
		return doc.String()
	}

	rows := make([][]string, 0, len(transactions))
	for _, tx := range transactions {
		rows = append(rows, []string{
			tx.Date,
			tx.Description,
			tx.Type.String(),
			tx.Category.String(),
			cashflow.M(tx.Amount, currency).String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Description", "Type", "Category", "Amount"},
		Rows:   rows,
	})

	return doc.String()
}
