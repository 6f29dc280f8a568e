package report

import "codeberg.org/go-pdf/fpdf"

// Schematic drawing area in page units (mm on an A4 page).
const (
	schematicMaxWidth  = 120.0
	schematicMaxHeight = 80.0
	markerRadius       = 2.0
)

// drawSchematic renders the window outline to scale with one circular
// marker per hardware item, labeled with the item's article.
func drawSchematic(pdf *fpdf.Fpdf, family string, order Order, items []Item) {
	if order.WindowWidth <= 0 || order.WindowHeight <= 0 {
		return
	}

	scale := schematicMaxWidth / order.WindowWidth
	if s := schematicMaxHeight / order.WindowHeight; s < scale {
		scale = s
	}

	boxWidth := order.WindowWidth * scale
	boxHeight := order.WindowHeight * scale

	pageWidth, _ := pdf.GetPageSize()
	left := (pageWidth - boxWidth) / 2
	top := pdf.GetY()

	// Window outline with a lighter inner line for the sash.
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.5)
	pdf.Rect(left, top, boxWidth, boxHeight, "D")

	inset := 4.0
	if boxWidth > 2*inset && boxHeight > 2*inset {
		pdf.SetDrawColor(150, 150, 150)
		pdf.SetLineWidth(0.2)
		pdf.Rect(left+inset, top+inset, boxWidth-2*inset, boxHeight-2*inset, "D")
	}

	pdf.SetFont(family, "", 7)
	pdf.SetFillColor(200, 30, 30)
	pdf.SetDrawColor(120, 0, 0)
	pdf.SetLineWidth(0.2)

	for _, item := range items {
		x := left + item.X*scale
		y := top + item.Y*scale

		// Clamp out-of-range coordinates to the outline so a bad input
		// cannot draw outside the schematic box.
		x = min(max(x, left), left+boxWidth)
		y = min(max(y, top), top+boxHeight)

		pdf.Circle(x, y, markerRadius, "FD")
		pdf.Text(x+markerRadius+1, y+1, item.Article)
	}

	pdf.SetY(top + boxHeight + 2)
}
