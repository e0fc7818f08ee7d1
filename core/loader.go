package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

// PaletteCommand is one selectable entry contributed by a command loader.
// Name must be unique across a loader's output for a palette session;
// loaders namespace it with their source type (e.g. "page-5"). SearchLabel
// is what the picker matches the query against; Label is what renders.
type PaletteCommand struct {
	Name        string
	Label       string
	SearchLabel string
	Icon        string
	Callback    func(m *Model) tea.Cmd
}

// LoaderQuery is the input handed to every loader per render. Search is the
// debounced query; Scope is the scope the palette was opened from.
type LoaderQuery struct {
	Search string
	Scope  string
}

// LoaderResult is what a loader must produce synchronously per render.
// IsLoading marks results that may still be stale relative to Search.
type LoaderResult struct {
	Commands  []PaletteCommand
	IsLoading bool
}

// CommandLoader contributes commands to the palette. Load must return
// synchronously; Prefetch may return a command that resolves backing data
// asynchronously, or nil when nothing needs fetching.
type CommandLoader interface {
	Name() string
	Load(q LoaderQuery) LoaderResult
	Prefetch(q LoaderQuery) tea.Cmd
}

// LoaderFunc adapts a plain function into a prefetch-free CommandLoader.
type LoaderFunc struct {
	LoaderName string
	LoadFunc   func(q LoaderQuery) LoaderResult
}

func (l LoaderFunc) Name() string { return l.LoaderName }

func (l LoaderFunc) Load(q LoaderQuery) LoaderResult {
	if l.LoadFunc == nil {
		return LoaderResult{}
	}
	return l.LoadFunc(q)
}

func (l LoaderFunc) Prefetch(q LoaderQuery) tea.Cmd { return nil }

// LoaderRegistry holds named loaders in registration order. Registering a
// loader under an existing name replaces it in place.
type LoaderRegistry struct {
	order   []string
	loaders map[string]CommandLoader
}

func NewLoaderRegistry(loaders ...CommandLoader) *LoaderRegistry {
	r := &LoaderRegistry{loaders: map[string]CommandLoader{}}
	for _, l := range loaders {
		r.Register(l)
	}
	return r
}

func (r *LoaderRegistry) Register(l CommandLoader) {
	if l == nil || l.Name() == "" {
		return
	}
	if _, exists := r.loaders[l.Name()]; !exists {
		r.order = append(r.order, l.Name())
	}
	r.loaders[l.Name()] = l
}

func (r *LoaderRegistry) Loaders() []CommandLoader {
	out := make([]CommandLoader, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.loaders[name])
	}
	return out
}

// Prefetch batches the prefetch commands of every loader for q.
func (r *LoaderRegistry) Prefetch(q LoaderQuery) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.order))
	for _, l := range r.Loaders() {
		if cmd := l.Prefetch(q); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

type registryLoader struct {
	name     string
	registry *CommandRegistry
}

// NewRegistryLoader exposes the app-level CommandRegistry through the
// palette, so registered commands and navigation entries share one surface.
func NewRegistryLoader(name string, registry *CommandRegistry) CommandLoader {
	return registryLoader{name: name, registry: registry}
}

func (l registryLoader) Name() string { return l.name }

func (l registryLoader) Prefetch(q LoaderQuery) tea.Cmd { return nil }

func (l registryLoader) Load(q LoaderQuery) LoaderResult {
	if l.registry == nil {
		return LoaderResult{}
	}
	results := l.registry.Search(q.Search, q.Scope, nil)
	commands := make([]PaletteCommand, 0, len(results))
	for _, res := range results {
		if res.Disabled {
			continue
		}
		id := res.CommandID
		commands = append(commands, PaletteCommand{
			Name:        "command-" + id,
			Label:       res.Name,
			SearchLabel: res.Name + " " + res.Desc,
			Callback: func(m *Model) tea.Cmd {
				return m.commands.Execute(id, m)
			},
		})
	}
	return LoaderResult{Commands: commands}
}
