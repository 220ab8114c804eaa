package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lehmann314159/heimwerker/internal/models"
)

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Visitors

func (r *Repository) CountVisitors(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM visitors`).Scan(&n)
	return n, err
}

// Preferences

// Get returns the stored value, or "" when the visitor has none for key.
func (r *Repository) Get(ctx context.Context, visitorID, key string) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx, `
		SELECT value FROM preferences WHERE visitor_id = ? AND key = ?
	`, visitorID, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

func (r *Repository) Set(ctx context.Context, visitorID, key, value string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `INSERT OR IGNORE INTO visitors (id) VALUES (?)`, visitorID); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO preferences (visitor_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(visitor_id, key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, visitorID, key, value); err != nil {
		return err
	}
	return tx.Commit()
}

// Stats

// LanguageCounts returns how many visitors chose each language.
func (r *Repository) LanguageCounts(ctx context.Context) (map[string]int, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT value, COUNT(*) FROM preferences
		WHERE key = ?
		GROUP BY value
		ORDER BY value
	`, models.PreferenceLanguage)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var lang string
		var n int
		if err := rows.Scan(&lang, &n); err != nil {
			return nil, err
		}
		counts[lang] = n
	}
	return counts, rows.Err()
}
