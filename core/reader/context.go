package reader

import (
	"github.com/google/uuid"

	"github.com/FocuswithJustin/Maestro/core/score"
)

// SettingsCompat carries settings whose shape changed across format
// versions, discovered during a legacy parse. It is accumulated on the
// read context and moved out to the caller when the load completes.
type SettingsCompat struct {
	// MigratedStyleIDs maps legacy style IDs encountered in the
	// document to the modern IDs their values were stored under.
	MigratedStyleIDs map[string]string
}

// Context is the per-load mutable state threaded through a parse. A
// master-document context is built once per load; each excerpt parse
// gets its own subordinate context seeded from the master's link table.
//
// The context never owns document entities; it only indexes references
// into them so cross-document links can be resolved.
type Context struct {
	score              *score.Score
	ignoreVersionError bool
	links              map[int]*score.Staff
	tracks             map[int]int
	settings           SettingsCompat
	loadID             string
}

// NewContext creates a context for loading the given document.
func NewContext(s *score.Score) *Context {
	return &Context{
		score:  s,
		links:  make(map[int]*score.Staff),
		tracks: make(map[int]int),
		loadID: uuid.NewString(),
	}
}

// Score returns the document this context is loading.
func (c *Context) Score() *score.Score { return c.score }

// LoadID returns the unique ID of this load, used for log correlation.
func (c *Context) LoadID() string { return c.loadID }

// SetIgnoreVersionError sets whether version-mismatch errors are ignored.
func (c *Context) SetIgnoreVersionError(v bool) { c.ignoreVersionError = v }

// IgnoreVersionError reports whether version-mismatch errors are ignored.
func (c *Context) IgnoreVersionError() bool { return c.ignoreVersionError }

// InitLinks seeds this context's link table by copying the master
// context's table, so references inside a subordinate parse resolve
// against master-document entities. The copy is by value: later
// additions here never touch the master's table.
func (c *Context) InitLinks(master *Context) {
	for id, st := range master.links {
		c.links[id] = st
	}
	c.loadID = master.loadID
}

// AddLink registers an entity under a link ID.
func (c *Context) AddLink(id int, st *score.Staff) {
	c.links[id] = st
}

// Link resolves a link ID to a previously registered entity, nil when
// unknown.
func (c *Context) Link(id int) *score.Staff {
	return c.links[id]
}

// MapTrack records one subordinate-to-master track index mapping.
func (c *Context) MapTrack(src, dst int) {
	c.tracks[src] = dst
}

// Tracks returns a copy of the accumulated track mapping.
func (c *Context) Tracks() map[int]int {
	out := make(map[int]int, len(c.tracks))
	for k, v := range c.tracks {
		out[k] = v
	}
	return out
}

// RecordStyleMigration notes that a legacy style ID was stored under a
// modern ID.
func (c *Context) RecordStyleMigration(legacyID, modernID string) {
	if c.settings.MigratedStyleIDs == nil {
		c.settings.MigratedStyleIDs = make(map[string]string)
	}
	c.settings.MigratedStyleIDs[legacyID] = modernID
}

// TakeSettingsCompat moves the accumulated settings-compatibility data
// out of the context. The context's own copy is reset; the caller owns
// the returned value.
func (c *Context) TakeSettingsCompat() SettingsCompat {
	out := c.settings
	c.settings = SettingsCompat{}
	return out
}
