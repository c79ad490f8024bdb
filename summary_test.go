package cashflow

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarizeDay(t *testing.T) {
	// 1. Arrange: a 1000 opening, one 500 cash sale, one 200 expense.
	l := NewLedger()
	l.SetOpeningBalance(decimal.NewFromInt(1000))
	if err := l.Append(NewCashIn("", "Morning sales", CategoryCash, decimal.NewFromInt(500))); err != nil {
		t.Fatal(err)
	}
	if err := l.Append(NewCashOut("", "Supplies", decimal.NewFromInt(200))); err != nil {
		t.Fatal(err)
	}

	// 2. Act.
	s := l.Summarize()

	// 3. Assert the six figures.
	assertDecimal(t, "CashSales", s.CashSales, "500")
	assertDecimal(t, "OnlineSales", s.OnlineSales, "0")
	assertDecimal(t, "TotalSales", s.TotalSales, "500")
	assertDecimal(t, "TotalCashOut", s.TotalCashOut, "200")
	assertDecimal(t, "NetCashFlow", s.NetCashFlow, "300")
	assertDecimal(t, "ClosingBalance", s.ClosingBalance, "1300")
}

func TestSummarizeEmptyLedger(t *testing.T) {
	l := NewLedger()
	l.SetOpeningBalance(decimal.RequireFromString("-12.50"))

	s := l.Summarize()

	assertDecimal(t, "TotalSales", s.TotalSales, "0")
	assertDecimal(t, "TotalCashOut", s.TotalCashOut, "0")
	assertDecimal(t, "NetCashFlow", s.NetCashFlow, "0")
	// With no activity the closing balance is the opening balance.
	assertDecimal(t, "ClosingBalance", s.ClosingBalance, "-12.50")
}

func TestSummarizeIdentities(t *testing.T) {
	// 1. Arrange: a mixed ledger with fractional amounts.
	l := NewLedger()
	l.SetOpeningBalance(decimal.RequireFromString("100.10"))
	entries := []Transaction{
		NewCashIn("", "a", CategoryCash, decimal.RequireFromString("10.01")),
		NewCashIn("", "b", CategoryOnline, decimal.RequireFromString("20.02")),
		NewCashIn("", "c", CategoryCash, decimal.RequireFromString("0.97")),
		NewCashOut("", "d", decimal.RequireFromString("5.55")),
		NewCashOut("", "e", decimal.RequireFromString("1.01")),
	}
	for _, tx := range entries {
		if err := l.Append(tx); err != nil {
			t.Fatal(err)
		}
	}

	// 2. Act.
	s := l.Summarize()

	// 3. Assert the algebraic identities hold exactly.
	if !s.TotalSales.Equal(s.CashSales.Add(s.OnlineSales)) {
		t.Errorf("TotalSales %s != CashSales %s + OnlineSales %s", s.TotalSales, s.CashSales, s.OnlineSales)
	}
	if !s.NetCashFlow.Equal(s.TotalSales.Sub(s.TotalCashOut)) {
		t.Errorf("NetCashFlow %s != TotalSales %s - TotalCashOut %s", s.NetCashFlow, s.TotalSales, s.TotalCashOut)
	}
	if !s.ClosingBalance.Equal(l.OpeningBalance().Add(s.NetCashFlow)) {
		t.Errorf("ClosingBalance %s != OpeningBalance %s + NetCashFlow %s", s.ClosingBalance, l.OpeningBalance(), s.NetCashFlow)
	}
}

func TestSummaryMarshalJSON(t *testing.T) {
	// 1. Arrange: a summary with a value that needs rounding.
	l := NewLedger()
	if err := l.Append(NewCashIn("", "a", CategoryCash, decimal.RequireFromString("10.005"))); err != nil {
		t.Fatal(err)
	}

	// 2. Act.
	data, err := json.Marshal(l.Summarize())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	// 3. Assert: fixed key order, two-decimal rounding, numeric values.
	got := string(data)
	order := []string{"cashSales", "onlineSales", "totalSales", "totalCashOut", "netCashFlow", "closingBalance"}
	last := -1
	for _, key := range order {
		idx := strings.Index(got, `"`+key+`"`)
		if idx < 0 {
			t.Fatalf("marshaled summary missing key %q: %s", key, got)
		}
		if idx < last {
			t.Errorf("key %q out of order: %s", key, got)
		}
		last = idx
	}
	if !strings.Contains(got, `"cashSales":10.01`) {
		t.Errorf("cashSales should be rounded to two decimals: %s", got)
	}
}

func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}
