// Package core implements the terminal shell for pressnav: the root
// bubbletea model, tab and screen routing, scope-aware key bindings, the
// command registry, and the command palette host with its fuzzy picker and
// query debouncer. Domain behavior (the site editor, the entity store) lives
// under internal/ and plugs in through the Tab, Screen and CommandLoader
// interfaces.
package core
