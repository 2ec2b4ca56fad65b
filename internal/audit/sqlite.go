package audit

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/zappabad/tapetrader/internal/ledger"
)

// SQLiteSink persists trade records to a SQLite database, one row per
// executed buy or sell.
type SQLiteSink struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteSink opens (or creates) the database and runs migrations.
func NewSQLiteSink(dbPath string) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL allows offline analysis tools to read while the simulator writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &SQLiteSink{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteSink) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS trades (
			id       TEXT PRIMARY KEY,
			sim_time REAL NOT NULL,
			symbol   TEXT NOT NULL,
			action   TEXT NOT NULL,
			amount   TEXT NOT NULL,
			delta    TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_time ON trades(sim_time)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol)`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("exec %q: %w", stmt[:30], err)
		}
	}
	return nil
}

func (s *SQLiteSink) Append(tr ledger.Trade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO trades (id, sim_time, symbol, action, amount, delta) VALUES (?,?,?,?,?,?)`,
		tr.ID.String(), tr.Time, tr.Symbol, tr.Action.String(),
		tr.Amount.String(), tr.Delta.String(),
	)
	return err
}

func (s *SQLiteSink) Close() error {
	return s.db.Close()
}
