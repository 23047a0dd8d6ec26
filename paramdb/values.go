package paramdb

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"babel.openfisca.ca/internal/logging"
	"babel.openfisca.ca/internal/parameters"
	"babel.openfisca.ca/internal/periods"
)

// Value is a stored parameter value in force from Start
type Value struct {
	Name      string
	Start     periods.Period
	Value     float64
	UpdatedAt time.Time
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// InsertValue records a parameter value, replacing any value with the same start
func (c *Client) InsertValue(ctx context.Context, name string, start periods.Period, value float64) error {
	return insertValue(ctx, c.DB, name, start, value)
}

func insertValue(ctx context.Context, db execer, name string, start periods.Period, value float64) error {
	_, err := db.ExecContext(ctx, `
		INSERT OR REPLACE INTO parameter_values (name, start_period, value, updated_at)
		VALUES (?, ?, ?, ?);
	`, name, start.String(), value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("error inserting value for parameter %s: %w", name, err)
	}
	return nil
}

// QueryValues retrieves the values of one parameter
func (c *Client) QueryValues(ctx context.Context, name string) ([]Value, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT name, start_period, value, updated_at FROM parameter_values WHERE name = ? ORDER BY start_period`,
		name,
	)
	if err != nil {
		return nil, err
	}
	return scanValues(rows)
}

// QueryAllValues retrieves every stored parameter value
func (c *Client) QueryAllValues(ctx context.Context) ([]Value, error) {
	rows, err := c.DB.QueryContext(ctx,
		`SELECT name, start_period, value, updated_at FROM parameter_values ORDER BY name, start_period`,
	)
	if err != nil {
		return nil, err
	}
	return scanValues(rows)
}

func scanValues(rows *sql.Rows) ([]Value, error) {
	defer rows.Close() // nolint:errcheck

	var values []Value
	for rows.Next() {
		var (
			v         Value
			start     string
			updatedAt int64
		)
		if err := rows.Scan(&v.Name, &start, &v.Value, &updatedAt); err != nil {
			return nil, err
		}
		period, err := periods.Parse(start)
		if err != nil {
			return nil, fmt.Errorf("parameter %s has corrupt start period: %w", v.Name, err)
		}
		v.Start = period
		v.UpdatedAt = time.Unix(updatedAt, 0)
		values = append(values, v)
	}
	return values, rows.Err()
}

// SeedDefaults stores the default value of every parameter that has no value yet.
// Existing values are left untouched.
func (c *Client) SeedDefaults(ctx context.Context, logger *slog.Logger) (err error) {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx, logger, "seed_parameter_defaults")

	for name, value := range parameters.DefaultValues() {
		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM parameter_values WHERE name = ?`, name,
		).Scan(&count); err != nil {
			return fmt.Errorf("error counting values for parameter %s: %w", name, err)
		}
		if count > 0 {
			continue
		}
		if err := insertValue(ctx, tx, name, periods.Eternity(), value); err != nil {
			return err
		}
		if c.config.Verbose {
			logging.LogOperation(logger, "seeded_parameter_default",
				slog.String("parameter", name),
				slog.Float64("value", value))
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// LoadTable reads every stored value into an in-memory parameter table
func (c *Client) LoadTable(ctx context.Context) (*parameters.MemoryTable, error) {
	values, err := c.QueryAllValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading parameter values: %w", err)
	}

	table := parameters.NewMemoryTable()
	for _, v := range values {
		table.Set(v.Name, v.Start, v.Value)
	}
	return table, nil
}
