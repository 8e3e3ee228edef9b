package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/pfrederiksen/nfl-cap-tracker/internal/capdata"
)

// TableName is the cap tracking table written by ReplaceTeam.
const TableName = "cap_tracker"

// Config holds database connection configuration.
type Config struct {
	DSN             string        `yaml:"dsn"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
	QueryTimeout    time.Duration `yaml:"query_timeout"`
}

// DefaultConfig returns reasonable defaults for database connections.
func DefaultConfig() Config {
	return Config{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		QueryTimeout:    30 * time.Second,
	}
}

// Postgres persists cap records in a PostgreSQL table.
type Postgres struct {
	db      *sqlx.DB
	timeout time.Duration
}

// Open connects to PostgreSQL and verifies the connection.
func Open(cfg Config) (*Postgres, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is required")
	}

	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.QueryTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return NewWithDB(db, cfg.QueryTimeout), nil
}

// NewWithDB wraps an existing connection. Used by tests with a mock driver.
func NewWithDB(db *sqlx.DB, timeout time.Duration) *Postgres {
	return &Postgres{
		db:      db,
		timeout: timeout,
	}
}

// Close releases the underlying connection pool.
func (p *Postgres) Close() error {
	return p.db.Close()
}

// EnsureSchema creates the cap tracking table if it does not exist.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	schema := `
		CREATE TABLE IF NOT EXISTS ` + TableName + ` (
			id            bigserial PRIMARY KEY,
			player_name   text,
			position      text,
			cap_hit       bigint,
			roster_status text NOT NULL,
			team          text NOT NULL
		)`
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("creating %s table: %w", TableName, err)
	}
	return nil
}

// ReplaceTeam swaps a team's rows for a freshly verified dataset in a
// single transaction: delete everything for the team, then insert the new
// records in order.
func (p *Postgres) ReplaceTeam(ctx context.Context, team string, records []capdata.PlayerCapRecord) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM `+TableName+` WHERE team = $1`, team); err != nil {
		return fmt.Errorf("deleting rows for %s: %w", team, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO `+TableName+` (player_name, position, cap_hit, roster_status, team)
		VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		_, err := stmt.ExecContext(ctx,
			nullString(rec.Name), nullString(rec.Position), nullInt64(rec.CapHit),
			rec.RosterStatus, rec.Team)
		if err != nil {
			return fmt.Errorf("inserting record for %s: %w", team, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// AllRecords reads back the whole table in insertion order, for the
// spreadsheet mirror.
func (p *Postgres) AllRecords(ctx context.Context) ([]capdata.PlayerCapRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	var rows []capRow
	query := `
		SELECT player_name, position, cap_hit, roster_status, team
		FROM ` + TableName + `
		ORDER BY id`
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("selecting cap records: %w", err)
	}

	records := make([]capdata.PlayerCapRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toRecord())
	}
	return records, nil
}

// capRow maps the cap_tracker table's nullable columns.
type capRow struct {
	Name         sql.NullString `db:"player_name"`
	Position     sql.NullString `db:"position"`
	CapHit       sql.NullInt64  `db:"cap_hit"`
	RosterStatus string         `db:"roster_status"`
	Team         string         `db:"team"`
}

func (r capRow) toRecord() capdata.PlayerCapRecord {
	rec := capdata.PlayerCapRecord{
		RosterStatus: r.RosterStatus,
		Team:         r.Team,
	}
	if r.Name.Valid {
		name := r.Name.String
		rec.Name = &name
	}
	if r.Position.Valid {
		pos := r.Position.String
		rec.Position = &pos
	}
	if r.CapHit.Valid {
		hit := r.CapHit.Int64
		rec.CapHit = &hit
	}
	return rec
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}
