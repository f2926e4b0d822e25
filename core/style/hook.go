package style

// SeedHook seeds a style table with defaults at most once per load.
//
// Formats older than 4.0 only persisted style values the user changed,
// so the full defaults table must be in place before their structural
// parse runs. The version dispatcher decides whether to invoke the
// hook; the hook itself only guarantees single seeding.
type SeedHook struct {
	style  *Style
	seeded bool
}

// NewSeedHook creates a hook targeting the given style table.
func NewSeedHook(s *Style) *SeedHook {
	return &SeedHook{style: s}
}

// SeedDefaults applies the defaults table to the target style.
// Repeated calls are no-ops.
func (h *SeedHook) SeedDefaults() {
	if h.seeded {
		return
	}
	h.style.ApplyDefaults()
	h.seeded = true
}

// Seeded reports whether defaults were applied.
func (h *SeedHook) Seeded() bool {
	return h.seeded
}
