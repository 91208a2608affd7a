package render

// LayoutStyle selects the visual template a label is rendered with.
type LayoutStyle int

const (
	// StyleDefault is the standard template with the full field set.
	StyleDefault LayoutStyle = iota
	// StyleCompact drops secondary fields to fit dense print runs.
	StyleCompact
	// StyleBranded is the carrier-branded template. It always shows the
	// partner carrier name regardless of what the invoice declares.
	StyleBranded
)

// BrandedCarrierName is the carrier printed by the branded template.
const BrandedCarrierName = "Transul Transporte"

func getLayoutStyleStrings() map[LayoutStyle]string {
	return map[LayoutStyle]string{
		StyleDefault: "enhanced",
		StyleCompact: "compact",
		StyleBranded: "transul",
	}
}

// LayoutStyleFromKey resolves a configured style key. Unrecognized keys fall
// back to the default template.
func LayoutStyleFromKey(key string) LayoutStyle {
	for style, name := range getLayoutStyleStrings() {
		if name == key {
			return style
		}
	}
	return StyleDefault
}

// String returns the style's configuration key.
func (s LayoutStyle) String() string {
	if name, ok := getLayoutStyleStrings()[s]; ok {
		return name
	}
	return getLayoutStyleStrings()[StyleDefault]
}

// CarrierOverride reports whether the style pins the carrier field, and to
// what value.
func (s LayoutStyle) CarrierOverride() (string, bool) {
	if s == StyleBranded {
		return BrandedCarrierName, true
	}
	return "", false
}
