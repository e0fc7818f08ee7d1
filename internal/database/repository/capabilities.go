package repository

import (
	"context"
	"database/sql"
	"errors"
)

// CapabilityRepo handles the acting user's capability grants.
type CapabilityRepo struct {
	db *sql.DB
}

func NewCapabilityRepo(db *sql.DB) *CapabilityRepo { return &CapabilityRepo{db: db} }

func (r *CapabilityRepo) Set(ctx context.Context, c Capability) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO capabilities(action, resource, allowed)
	VALUES(?, ?, ?)
	ON CONFLICT(action, resource) DO UPDATE SET allowed = excluded.allowed;
	`, c.Action, c.Resource, c.Allowed)
	return err
}

// Allowed reports whether action on resource is granted. Missing rows deny.
func (r *CapabilityRepo) Allowed(ctx context.Context, action, resource string) (bool, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT allowed FROM capabilities WHERE action = ? AND resource = ?`, action, resource)
	var allowed bool
	err := row.Scan(&allowed)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return allowed, nil
}
