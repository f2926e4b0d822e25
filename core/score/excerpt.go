package score

// Excerpt is a named subordinate part/arrangement of a master document.
// It owns a subordinate Score whose entities resolve against the
// master's identifier space.
type Excerpt struct {
	master *Score
	score  *Score
	name   string
	tracks map[int]int
}

// NewExcerpt creates an excerpt bound to the given master document.
func NewExcerpt(master *Score) *Excerpt {
	return &Excerpt{master: master}
}

// Master returns the owning master document.
func (e *Excerpt) Master() *Score { return e.master }

// SetExcerptScore attaches the subordinate document.
func (e *Excerpt) SetExcerptScore(s *Score) { e.score = s }

// ExcerptScore returns the subordinate document.
func (e *Excerpt) ExcerptScore() *Score { return e.score }

// SetName sets the excerpt's name.
func (e *Excerpt) SetName(name string) { e.name = name }

// Name returns the excerpt's name.
func (e *Excerpt) Name() string { return e.name }

// SetTracksMapping records the subordinate-to-master track index
// mapping discovered during parsing.
func (e *Excerpt) SetTracksMapping(tracks map[int]int) {
	e.tracks = tracks
}

// TracksMapping returns the subordinate-to-master track index mapping.
func (e *Excerpt) TracksMapping() map[int]int { return e.tracks }
