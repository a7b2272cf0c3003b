package fire

// Palette runs from sparse to dense.
var Palette = [10]rune{' ', '.', ':', '^', '*', 'x', 's', 'S', '#', '$'}

const (
	ClassCold = iota + 1
	ClassWarm
	ClassHot
	ClassBlazing
)

// Classify maps a heat value to its glyph and colour class. Heat above the
// densest glyph is clamped; the class thresholds use the raw value.
func Classify(heat int) (rune, int) {
	idx := heat
	if idx > len(Palette)-1 {
		idx = len(Palette) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return Palette[idx], ColorClass(heat)
}

func ColorClass(heat int) int {
	switch {
	case heat > 15:
		return ClassBlazing
	case heat > 9:
		return ClassHot
	case heat > 4:
		return ClassWarm
	default:
		return ClassCold
	}
}
