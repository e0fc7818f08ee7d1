package repository

import (
	"context"
	"database/sql"
	"strings"
)

// ContentFilters defines list filters. Relevance ordering ranks prefix
// matches over substring matches over the rest, newest first within a band;
// it only applies when Search is non-empty.
type ContentFilters struct {
	Type        string
	Search      string
	Statuses    []string
	Limit       int
	ByRelevance bool
}

// ContentRepo handles posts and pages.
type ContentRepo struct {
	db *sql.DB
}

func NewContentRepo(db *sql.DB) *ContentRepo { return &ContentRepo{db: db} }

func (r *ContentRepo) Insert(ctx context.Context, c Content) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
	INSERT INTO contents(guid, title, type, status, created_at, updated_at)
	VALUES(?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP);
	`, c.GUID, c.Title, c.Type, c.Status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ContentRepo) Get(ctx context.Context, id int64) (Content, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, guid, title, type, status, created_at, updated_at
	FROM contents WHERE id = ?`, id)
	var c Content
	err := row.Scan(&c.ID, &c.GUID, &c.Title, &c.Type, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *ContentRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contents`).Scan(&n)
	return n, err
}

func (r *ContentRepo) List(ctx context.Context, f ContentFilters) ([]Content, error) {
	var where []string
	var args []interface{}

	if f.Type != "" {
		where = append(where, "type = ?")
		args = append(args, f.Type)
	}
	if len(f.Statuses) > 0 {
		placeholders := strings.Repeat("?, ", len(f.Statuses))
		where = append(where, "status IN ("+placeholders[:len(placeholders)-2]+")")
		for _, s := range f.Statuses {
			args = append(args, s)
		}
	}
	if f.Search != "" {
		where = append(where, "title LIKE ?")
		args = append(args, "%"+f.Search+"%")
	}

	query := "SELECT id, guid, title, type, status, created_at, updated_at FROM contents"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	if f.ByRelevance && f.Search != "" {
		query += ` ORDER BY CASE
		 WHEN lower(title) = lower(?) THEN 0
		 WHEN lower(title) LIKE lower(?) THEN 1
		 ELSE 2 END, updated_at DESC`
		args = append(args, f.Search, f.Search+"%")
	} else {
		query += " ORDER BY updated_at DESC"
	}
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Content
	for rows.Next() {
		var c Content
		if err := rows.Scan(&c.ID, &c.GUID, &c.Title, &c.Type, &c.Status, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
