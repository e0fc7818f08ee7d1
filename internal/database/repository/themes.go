package repository

import (
	"context"
	"database/sql"
)

// ThemeRepo handles installed themes.
type ThemeRepo struct {
	db *sql.DB
}

func NewThemeRepo(db *sql.DB) *ThemeRepo { return &ThemeRepo{db: db} }

func (r *ThemeRepo) Upsert(ctx context.Context, t Theme) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO themes(slug, name, is_block_based, active)
	VALUES(?, ?, ?, ?)
	ON CONFLICT(slug) DO UPDATE SET
	 name = excluded.name,
	 is_block_based = excluded.is_block_based,
	 active = excluded.active;
	`, t.Slug, t.Name, t.IsBlockBased, t.Active)
	return err
}

// Active returns the active theme; sql.ErrNoRows when none is marked active.
func (r *ThemeRepo) Active(ctx context.Context) (Theme, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT slug, name, is_block_based, active FROM themes WHERE active = 1 LIMIT 1`)
	var t Theme
	err := row.Scan(&t.Slug, &t.Name, &t.IsBlockBased, &t.Active)
	return t, err
}
