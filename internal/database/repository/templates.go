package repository

import (
	"context"
	"database/sql"
)

// TemplateRepo handles templates and template parts. The CMS exposes these
// without server-side search or pagination, so listing always returns every
// row of a type; callers rank client-side.
type TemplateRepo struct {
	db *sql.DB
}

func NewTemplateRepo(db *sql.DB) *TemplateRepo { return &TemplateRepo{db: db} }

func (r *TemplateRepo) Upsert(ctx context.Context, t Template) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO templates(id, guid, slug, title, type, theme, updated_at)
	VALUES(?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
	ON CONFLICT(id) DO UPDATE SET
	 title = excluded.title,
	 updated_at = CURRENT_TIMESTAMP;
	`, t.ID, t.GUID, t.Slug, t.Title, t.Type, t.Theme)
	return err
}

func (r *TemplateRepo) ListByType(ctx context.Context, typ string) ([]Template, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, guid, slug, title, type, theme, updated_at
	FROM templates WHERE type = ? ORDER BY slug`, typ)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Template
	for rows.Next() {
		var t Template
		if err := rows.Scan(&t.ID, &t.GUID, &t.Slug, &t.Title, &t.Type, &t.Theme, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
