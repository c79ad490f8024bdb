// Package store persists a ledger to a small sqlite-backed key-value table,
// one database file per data directory.
//
// The store mirrors the durability contract of the original browser tracker:
// loading never fails the program (a missing or corrupt store yields the empty
// ledger, with the problem logged), and saving is best-effort. Two keys are
// used: "cashflow-transactions" holds the transaction log as a JSON array and
// "cashflow-opening-balance" holds the opening balance as decimal text.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/etnz/cashflow"
)

var logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

const (
	// DefaultFilename is the database file created inside the data directory.
	DefaultFilename = "cashflow.db"

	keyTransactions   = "cashflow-transactions"
	keyOpeningBalance = "cashflow-opening-balance"
)

// Store is a handle on the persisted ledger state.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the store in the given data directory.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}
	path := filepath.Join(dir, DefaultFilename)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := runMigrations(path); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Load reads the persisted ledger. It never returns an error: an absent key
// means a fresh install, and an unreadable or corrupt value is logged and
// treated as absent, so the caller always gets a usable ledger.
func (s *Store) Load() *cashflow.Ledger {
	l := cashflow.NewLedger()

	if raw, ok := s.get(keyOpeningBalance); ok {
		if v, err := decimal.NewFromString(raw); err == nil {
			l.SetOpeningBalance(v)
		} else {
			logger.Warn().Err(err).Str("key", keyOpeningBalance).Msg("corrupt opening balance, using zero")
		}
	}

	if raw, ok := s.get(keyTransactions); ok {
		var transactions []cashflow.Transaction
		if err := json.Unmarshal([]byte(raw), &transactions); err == nil {
			l.ReplaceAll(transactions, l.OpeningBalance())
		} else {
			logger.Warn().Err(err).Str("key", keyTransactions).Msg("corrupt transaction log, starting empty")
		}
	}
	return l
}

// Save writes the full ledger state. Saving is best-effort: a write failure
// is logged, not surfaced, and the in-memory ledger stays authoritative for
// the rest of the run.
func (s *Store) Save(l *cashflow.Ledger) {
	raw, err := json.Marshal(l.TransactionList())
	if err != nil {
		logger.Error().Err(err).Msg("cannot marshal transaction log")
		return
	}
	if err := s.put(keyTransactions, string(raw)); err != nil {
		logger.Error().Err(err).Str("key", keyTransactions).Msg("cannot save transaction log")
	}
	if err := s.put(keyOpeningBalance, l.OpeningBalance().String()); err != nil {
		logger.Error().Err(err).Str("key", keyOpeningBalance).Msg("cannot save opening balance")
	}
}

// Clear removes both persisted keys, returning the store to the fresh-install
// state.
func (s *Store) Clear() {
	for _, key := range []string{keyTransactions, keyOpeningBalance} {
		if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
			logger.Error().Err(err).Str("key", key).Msg("cannot clear key")
		}
	}
}

func (s *Store) get(key string) (string, bool) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		logger.Warn().Err(err).Str("key", key).Msg("cannot read key")
		return "", false
	}
	return value, true
}

func (s *Store) put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value)
	return err
}
