package recorder

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"StockAnalyzer/internal/model"
)

// SQLiteRecorder persists analysis history to a SQLite database.
type SQLiteRecorder struct {
	db  *sql.DB
	mu  sync.Mutex
	log zerolog.Logger
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string, log zerolog.Logger) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Debug().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			instrument     TEXT NOT NULL,
			percent_return REAL,
			beta           REAL,
			high           REAL,
			low            REAL,
			start_price    REAL,
			end_price      REAL,
			live           INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,

		`CREATE TABLE IF NOT EXISTS rankings (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			run_at     INTEGER NOT NULL,
			position   INTEGER NOT NULL,
			instrument TEXT NOT NULL,
			beta       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_rankings_run ON rankings(run_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(res *model.BetaResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var beta sql.NullFloat64
	if v, ok := res.Beta.Value(); ok {
		beta = sql.NullFloat64{Float64: v, Valid: true}
	}
	_, err := r.db.Exec(`INSERT INTO analyses
		(timestamp, instrument, percent_return, beta, high, low, start_price, end_price, live)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), res.Instrument, res.PercentReturn, beta,
		res.High, res.Low, res.StartPrice, res.EndPrice, res.Live,
	)
	return err
}

func (r *SQLiteRecorder) RecordRanking(entries []model.RankEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	now := time.Now().Unix()
	for _, e := range entries {
		if _, err := tx.Exec(`INSERT INTO rankings (run_at, position, instrument, beta) VALUES (?,?,?,?)`,
			now, e.Position, e.Instrument, e.Beta); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert ranking: %w", err)
		}
	}
	return tx.Commit()
}

// RecentAnalyses returns up to limit analyses, newest first.
func (r *SQLiteRecorder) RecentAnalyses(limit int) ([]model.BetaResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT instrument, percent_return, beta, high, low, start_price, end_price, live
		FROM analyses ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query analyses: %w", err)
	}
	defer rows.Close()

	var out []model.BetaResult
	for rows.Next() {
		var (
			res  model.BetaResult
			beta sql.NullFloat64
		)
		if err := rows.Scan(&res.Instrument, &res.PercentReturn, &beta, &res.High, &res.Low,
			&res.StartPrice, &res.EndPrice, &res.Live); err != nil {
			return nil, fmt.Errorf("scan analysis: %w", err)
		}
		if beta.Valid {
			res.Beta = model.BetaOf(beta.Float64)
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Debug().Msg("closing sqlite recorder")
	return r.db.Close()
}
