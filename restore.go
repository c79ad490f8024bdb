package cashflow

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ErrUnsupportedFormat is returned by Restore for a file whose extension maps
// to no known backup codec.
var ErrUnsupportedFormat = errors.New("unsupported backup format")

// Restore reads a backup from r and applies it onto the ledger. The codec is
// picked from the file name extension, case-insensitively: ".json" and ".csv"
// are supported, anything else is rejected before reading. A CSV backup
// always replaces the whole ledger; a JSON backup replaces only the fields it
// carries. On error the ledger is left untouched: restore is all-or-nothing.
func Restore(name string, r io.Reader, l *Ledger) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		return DecodeJSON(r, l)
	case ".csv":
		decoded, err := DecodeCSV(r)
		if err != nil {
			return err
		}
		l.ReplaceAll(decoded.TransactionList(), decoded.OpeningBalance())
		return nil
	default:
		return fmt.Errorf("%w: %q (expected .json or .csv)", ErrUnsupportedFormat, name)
	}
}
