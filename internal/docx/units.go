package docx

import "math"

// WordprocessingML measures indents, margins and spacing in twips
// (twentieths of a point) and font sizes in half-points.
const (
	twipsPerInch = 1440
	cmPerInch    = 2.54
)

// Line spacing values for w:spacing with lineRule="auto", where 240 twips
// is one line.
const (
	LineSingle     = 240
	LineOneAndHalf = 360
	LineDouble     = 480

	LineRuleAuto = "auto"
)

// Paragraph alignment values for w:jc.
const (
	AlignLeft    = "left"
	AlignCenter  = "center"
	AlignRight   = "right"
	AlignJustify = "both"
)

// CmToTwips converts centimeters to twips, rounding to the nearest unit.
func CmToTwips(cm float64) int {
	return int(math.Round(cm * twipsPerInch / cmPerInch))
}
