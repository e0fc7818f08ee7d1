package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/pressnav/pressnav/core"
	"github.com/pressnav/pressnav/internal/database/repository"
)

// Entity kinds and record types mirror the CMS data model.
const (
	KindPostType = "postType"
	KindRoot     = "root"

	TypePost         = "post"
	TypePage         = "page"
	TypeTemplate     = "wp_template"
	TypeTemplatePart = "wp_template_part"
)

// Record is the store's normalized view over contents and templates. ID is a
// string because template IDs follow the theme//slug convention while content
// IDs are numeric.
type Record struct {
	ID     string
	Title  string
	Slug   string
	Type   string
	Status string
}

// Query selects and orders records for one fetch. OrderBy "relevance" pushes
// title matches to the front server-side; templates ignore it because the
// template tables have no server-side search.
type Query struct {
	Search   string
	PerPage  int
	OrderBy  string
	Statuses []string
}

type entry struct {
	records  []Record
	resolved bool
}

// Store caches entity records fetched from the repositories. Fetches run as
// bubbletea commands; results are applied under the mutex before the
// DataLoadedMsg re-render trigger fires.
type Store struct {
	mu       sync.Mutex
	cache    map[string]*entry
	theme    *repository.Theme
	caps     map[string]bool
	contents *repository.ContentRepo
	tpls     *repository.TemplateRepo
	themes   *repository.ThemeRepo
	capRepo  *repository.CapabilityRepo
	log      *zap.Logger
	timeout  time.Duration
}

func New(db *sql.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		cache:    map[string]*entry{},
		caps:     map[string]bool{},
		contents: repository.NewContentRepo(db),
		tpls:     repository.NewTemplateRepo(db),
		themes:   repository.NewThemeRepo(db),
		capRepo:  repository.NewCapabilityRepo(db),
		log:      log,
		timeout:  5 * time.Second,
	}
}

func cacheKey(kind, typ string, q Query) string {
	return strings.Join([]string{
		kind, typ, q.Search, q.OrderBy,
		strconv.Itoa(q.PerPage), strings.Join(q.Statuses, ","),
	}, "|")
}

// GetEntityRecords returns the cached records for the selection. The second
// return is false while the fetch is still in flight; records it returns
// alongside false are stale or nil. The returned slice must not be mutated.
func (s *Store) GetEntityRecords(kind, typ string, q Query) ([]Record, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.cache[cacheKey(kind, typ, q)]; ok {
		return e.records, e.resolved
	}
	return nil, false
}

// HasFinishedResolution reports whether a fetch for the selection completed,
// successfully or not. Failed fetches resolve with zero records.
func (s *Store) HasFinishedResolution(kind, typ string, q Query) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.cache[cacheKey(kind, typ, q)]
	return ok && e.resolved
}

// EnsureCmd starts a fetch for the selection unless a resolved or in-flight
// entry already covers it. The returned command applies records to the cache
// itself; the DataLoadedMsg it emits only triggers a re-render.
func (s *Store) EnsureCmd(kind, typ string, q Query) tea.Cmd {
	key := cacheKey(kind, typ, q)

	s.mu.Lock()
	if _, ok := s.cache[key]; ok {
		s.mu.Unlock()
		return nil
	}
	e := &entry{}
	s.cache[key] = e
	s.mu.Unlock()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
		defer cancel()

		records, err := s.fetch(ctx, kind, typ, q)
		if err != nil {
			s.log.Warn("entity fetch failed",
				zap.String("kind", kind), zap.String("type", typ), zap.Error(err))
			records = nil
		}

		// Pointer identity guards against applying a fetch whose entry was
		// dropped by Invalidate while it was in flight.
		s.mu.Lock()
		if cur, ok := s.cache[key]; ok && cur == e {
			cur.records = records
			cur.resolved = true
		}
		s.mu.Unlock()

		return core.DataLoadedMsg{Key: key, Err: err}
	}
}

func (s *Store) fetch(ctx context.Context, kind, typ string, q Query) ([]Record, error) {
	if kind != KindPostType {
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
	switch typ {
	case TypePost, TypePage:
		contents, err := s.contents.List(ctx, repository.ContentFilters{
			Type:        typ,
			Search:      q.Search,
			Statuses:    q.Statuses,
			Limit:       q.PerPage,
			ByRelevance: q.OrderBy == "relevance",
		})
		if err != nil {
			return nil, err
		}
		records := make([]Record, 0, len(contents))
		for _, c := range contents {
			records = append(records, Record{
				ID:     strconv.FormatInt(c.ID, 10),
				Title:  c.Title,
				Type:   c.Type,
				Status: c.Status,
			})
		}
		return records, nil
	case TypeTemplate, TypeTemplatePart:
		tpls, err := s.tpls.ListByType(ctx, typ)
		if err != nil {
			return nil, err
		}
		records := make([]Record, 0, len(tpls))
		for _, t := range tpls {
			records = append(records, Record{
				ID:    t.ID,
				Title: t.Title,
				Slug:  t.Slug,
				Type:  t.Type,
			})
		}
		return records, nil
	default:
		return nil, fmt.Errorf("unknown record type %q", typ)
	}
}

// CurrentTheme returns the active theme, caching the first successful lookup.
// A database without an active theme yields a zero Theme.
func (s *Store) CurrentTheme() repository.Theme {
	s.mu.Lock()
	if s.theme != nil {
		t := *s.theme
		s.mu.Unlock()
		return t
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	t, err := s.themes.Active(ctx)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			s.log.Warn("active theme lookup failed", zap.Error(err))
		}
		return repository.Theme{}
	}

	s.mu.Lock()
	s.theme = &t
	s.mu.Unlock()
	return t
}

// CanUser reports whether the acting user may perform action on resource.
// Grants are cached; missing rows and lookup failures deny.
func (s *Store) CanUser(action, resource string) bool {
	key := action + ":" + resource
	s.mu.Lock()
	if allowed, ok := s.caps[key]; ok {
		s.mu.Unlock()
		return allowed
	}
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	allowed, err := s.capRepo.Allowed(ctx, action, resource)
	if err != nil {
		s.log.Warn("capability lookup failed",
			zap.String("action", action), zap.String("resource", resource), zap.Error(err))
		return false
	}

	s.mu.Lock()
	s.caps[key] = allowed
	s.mu.Unlock()
	return allowed
}

// Invalidate drops every cached entry so the next EnsureCmd refetches.
// In-flight fetches for dropped entries discard their results on arrival.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = map[string]*entry{}
	s.theme = nil
	s.caps = map[string]bool{}
}
