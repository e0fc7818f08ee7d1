package database

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/pressnav/pressnav/internal/database/repository"
)

// SeedDefaults ensures a baseline theme, capability grants, and demo content
// exist for new databases. It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	themeRepo := repository.NewThemeRepo(db)
	if _, err := themeRepo.Active(ctx); err == nil {
		return nil
	}

	if err := themeRepo.Upsert(ctx, repository.Theme{
		Slug: "twentytwentyfour", Name: "Twenty Twenty-Four", IsBlockBased: true, Active: true,
	}); err != nil {
		return err
	}

	capRepo := repository.NewCapabilityRepo(db)
	for _, c := range []repository.Capability{
		{Action: "create", Resource: "templates", Allowed: true},
		{Action: "create", Resource: "posts", Allowed: true},
		{Action: "create", Resource: "pages", Allowed: true},
	} {
		if err := capRepo.Set(ctx, c); err != nil {
			return err
		}
	}

	contentRepo := repository.NewContentRepo(db)
	for _, c := range []repository.Content{
		{Title: "Hello World", Type: "post", Status: "publish"},
		{Title: "Sample Page", Type: "page", Status: "publish"},
		{Title: "About", Type: "page", Status: "draft"},
	} {
		c.GUID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("content:"+c.Type+":"+c.Title)).String()
		if _, err := contentRepo.Insert(ctx, c); err != nil {
			return err
		}
	}

	tplRepo := repository.NewTemplateRepo(db)
	for _, t := range []repository.Template{
		{Slug: "home", Title: "Home", Type: "wp_template"},
		{Slug: "single", Title: "Single Posts", Type: "wp_template"},
		{Slug: "page", Title: "Pages", Type: "wp_template"},
		{Slug: "header", Title: "Header", Type: "wp_template_part"},
		{Slug: "footer", Title: "Footer", Type: "wp_template_part"},
	} {
		t.Theme = "twentytwentyfour"
		t.ID = t.Theme + "//" + t.Slug
		t.GUID = uuid.NewSHA1(uuid.NameSpaceURL, []byte("template:"+t.ID)).String()
		if err := tplRepo.Upsert(ctx, t); err != nil {
			return err
		}
	}
	return nil
}
