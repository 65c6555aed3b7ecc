package core

// Color represents a foreground color for a screen cell.
// Mapped to ANSI 256-color codes by the platform layer.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// CascadePalette is the fixed rainbow palette the cascade animation walks
// through. Configurations may use a prefix of it, never more.
var CascadePalette = []Color{
	ColorBrightRed,
	ColorOrange,
	ColorBrightYellow,
	ColorBrightGreen,
	ColorBrightCyan,
	ColorBrightBlue,
	ColorBrightMagenta,
}

// MaxPaletteSize is the number of entries in CascadePalette.
const MaxPaletteSize = 7

// ColorState tracks a segment's position in the cascade palette.
// The zero value is the base color (no cascade phase).
type ColorState struct {
	phase  int
	inWave bool
}

// BaseState returns the base (uncolored) state.
func BaseState() ColorState {
	return ColorState{}
}

// PhaseState returns a state at the given palette index.
func PhaseState(i int) ColorState {
	return ColorState{phase: i, inWave: true}
}

// IsBase reports whether the segment shows the base color.
func (c ColorState) IsBase() bool {
	return !c.inWave
}

// Phase returns the palette index and whether one is set.
func (c ColorState) Phase() (int, bool) {
	return c.phase, c.inWave
}
