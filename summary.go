package cashflow

import "github.com/shopspring/decimal"

// Summary holds the six figures derived from a ledger. It is never stored:
// it is recomputed from (transactions, openingBalance) on every read.
type Summary struct {
	CashSales      decimal.Decimal // sum of cash-in entries paid in cash
	OnlineSales    decimal.Decimal // sum of cash-in entries paid online
	TotalSales     decimal.Decimal // sum of all cash-in entries
	TotalCashOut   decimal.Decimal // sum of all cash-out entries
	NetCashFlow    decimal.Decimal // TotalSales - TotalCashOut
	ClosingBalance decimal.Decimal // openingBalance + NetCashFlow
}

// Summarize derives the summary totals from the full transaction log. Sums
// are carried at full precision; rounding to two decimals happens only at
// presentation or serialization time. An empty log yields all-zero sums and
// a closing balance equal to the opening balance.
func (l *Ledger) Summarize() Summary {
	var s Summary
	for _, tx := range l.transactions {
		switch tx.Type {
		case CashIn:
			s.TotalSales = s.TotalSales.Add(tx.Amount)
			switch tx.Category {
			case CategoryCash:
				s.CashSales = s.CashSales.Add(tx.Amount)
			case CategoryOnline:
				s.OnlineSales = s.OnlineSales.Add(tx.Amount)
			}
		case CashOut:
			s.TotalCashOut = s.TotalCashOut.Add(tx.Amount)
		}
	}
	s.NetCashFlow = s.TotalSales.Sub(s.TotalCashOut)
	s.ClosingBalance = l.openingBalance.Add(s.NetCashFlow)
	return s
}

// MarshalJSON implements the json.Marshaler interface for Summary. The six
// values are rounded to two decimals and emitted in a fixed key order.
func (s Summary) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("cashSales", s.CashSales.Round(2))
	w.Append("onlineSales", s.OnlineSales.Round(2))
	w.Append("totalSales", s.TotalSales.Round(2))
	w.Append("totalCashOut", s.TotalCashOut.Round(2))
	w.Append("netCashFlow", s.NetCashFlow.Round(2))
	w.Append("closingBalance", s.ClosingBalance.Round(2))
	return w.MarshalJSON()
}
