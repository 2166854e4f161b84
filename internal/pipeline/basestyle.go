package pipeline

import (
	"strconv"

	"github.com/beatrizcardc/ABNT-formatter/internal/docx"
)

// ApplyBaseStyle rewrites the default paragraph style: Times New Roman at
// 12pt, 1.5 line spacing, no space after, and the configured first line
// indent. Returns docx.ErrNoNormalStyle when the stylesheet defines no
// default paragraph style.
func ApplyBaseStyle(doc *docx.Document, firstLineIndentCm float64) error {
	sheet, err := doc.Styles()
	if err != nil {
		return err
	}
	def, err := sheet.DefaultParagraphStyle()
	if err != nil {
		return err
	}

	rPr := def.EnsureRunProps()
	if rPr.Fonts == nil {
		rPr.Fonts = &docx.Fonts{}
	}
	rPr.Fonts.SetAll(FontName)
	rPr.Size = strconv.Itoa(BodyFontHalfPoints)
	rPr.SizeCS = strconv.Itoa(BodyFontHalfPoints)

	pPr := def.EnsureParaProps()
	if pPr.Spacing == nil {
		pPr.Spacing = &docx.Spacing{}
	}
	pPr.Spacing.Line = strconv.Itoa(docx.LineOneAndHalf)
	pPr.Spacing.LineRule = docx.LineRuleAuto
	pPr.Spacing.Before = "0"
	pPr.Spacing.After = "0"
	if pPr.Indentation == nil {
		pPr.Indentation = &docx.Indentation{}
	}
	pPr.Indentation.FirstLine = strconv.Itoa(FirstLineIndentTwips(firstLineIndentCm))
	pPr.Indentation.Hanging = ""
	return nil
}
