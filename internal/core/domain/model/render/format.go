package render

// Orientation is the page orientation derived from a format's geometry.
type Orientation int

const (
	// Portrait pages are taller than wide.
	Portrait Orientation = iota
	// Landscape pages are wider than tall.
	Landscape
)

// String returns the orientation name as the PDF layer expects it.
func (o Orientation) String() string {
	if o == Landscape {
		return "Landscape"
	}
	return "Portrait"
}

// Format is one physical page geometry a label can be printed on.
// The set of formats is closed: labels come out of fixed printer stock.
type Format struct {
	key      string
	widthMM  float64
	heightMM float64
}

// Recognized format keys.
const (
	FormatKeySmallLabel = "50x100"
	FormatKeyLargeLabel = "100x150"
	FormatKeyA4         = "a4"
)

// formats maps recognized keys to their geometry in millimeters.
// 50x100 stock is fed sideways, so it prints as a 100x50 landscape label.
func formats() map[string]Format {
	return map[string]Format{
		FormatKeySmallLabel: {key: FormatKeySmallLabel, widthMM: 100, heightMM: 50},
		FormatKeyLargeLabel: {key: FormatKeyLargeLabel, widthMM: 100, heightMM: 150},
		FormatKeyA4:         {key: FormatKeyA4, widthMM: 210, heightMM: 297},
	}
}

// FormatFromKey resolves a configured format key to its geometry.
// Unrecognized keys fall back to the smallest adhesive format, so a stale
// configuration value still produces printable labels.
func FormatFromKey(key string) Format {
	if f, ok := formats()[key]; ok {
		return f
	}
	return formats()[FormatKeySmallLabel]
}

// Key returns the format's configuration key.
func (f Format) Key() string {
	if f.key == "" {
		return FormatKeySmallLabel
	}
	return f.key
}

// WidthMM returns the page width in millimeters.
func (f Format) WidthMM() float64 {
	if f.key == "" {
		return FormatFromKey(FormatKeySmallLabel).widthMM
	}
	return f.widthMM
}

// HeightMM returns the page height in millimeters.
func (f Format) HeightMM() float64 {
	if f.key == "" {
		return FormatFromKey(FormatKeySmallLabel).heightMM
	}
	return f.heightMM
}

// Orientation derives the page orientation from the geometry: landscape when
// the width exceeds the height, portrait otherwise.
func (f Format) Orientation() Orientation {
	if f.WidthMM() > f.HeightMM() {
		return Landscape
	}
	return Portrait
}
