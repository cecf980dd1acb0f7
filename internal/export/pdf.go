// Package export renders a placed sheet to shop-floor documents: a layout
// PDF, QR-coded entity labels, and an Excel cut report.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"

	"github.com/Clinery1/laser-cam/internal/geom"
	"github.com/Clinery1/laser-cam/internal/laser"
	"github.com/Clinery1/laser-cam/internal/model"
	"github.com/Clinery1/laser-cam/internal/outline"
)

// entityColor represents an RGB color for a placed entity.
type entityColor struct {
	R, G, B int
}

var entityColors = []entityColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	legendHeight = 8.0
	drawAreaTop  = marginTop + headerHeight + 5.0
)

// ExportPDF renders the sheet layout to a single-page PDF: every entity's
// outer loop and holes drawn to scale, colored by cut order, with the cut
// order number at each entity's centroid.
func ExportPDF(path string, sheet *model.Sheet, conds *laser.Set) error {
	entities := sheet.Entities()
	if len(entities) == 0 {
		return fmt.Errorf("no entities to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Sheet layout (%.0f x %.0f mm)", sheet.Width, sheet.Height)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	totalPath := 0.0
	for _, e := range entities {
		totalPath += e.Geometry().PathLength()
	}
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Entities: %d | Total cut length: %.0f mm", len(entities), totalPath)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the sheet to fit the drawing area.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom - legendHeight
	scale := math.Min(drawWidth/sheet.Width, drawHeight/sheet.Height)

	canvasW := sheet.Width * scale
	canvasH := sheet.Height * scale
	offsetX := marginLeft + (drawWidth-canvasW)/2
	offsetY := drawAreaTop

	// Sheet background
	pdf.SetFillColor(250, 245, 235)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, canvasW, canvasH, "FD")

	// Model space is Y-up, PDF pages are Y-down.
	frame := geom.FrameAdapter{Height: sheet.Height}

	for i, e := range entities {
		col := entityColors[i%len(entityColors)]
		geo := e.Geometry()

		pdf.SetDrawColor(col.R, col.G, col.B)
		pdf.SetLineWidth(0.3)
		drawLoop(pdf, frame, geo.Outer, scale, offsetX, offsetY)
		for _, hole := range geo.Holes {
			drawLoop(pdf, frame, hole, scale, offsetX, offsetY)
		}

		// Cut order number at the centroid
		c := frame.Convert(geo.Outer.Centroid())
		pdf.SetFont("Helvetica", "B", 8)
		pdf.SetTextColor(col.R, col.G, col.B)
		pdf.SetXY(offsetX+c.X*scale-3, offsetY+c.Y*scale-2)
		pdf.CellFormat(6, 4, fmt.Sprintf("%d", i+1), "", 0, "C", false, 0, "")
	}
	pdf.SetTextColor(0, 0, 0)

	// Legend: cut order, model, condition.
	legend := ""
	for i, e := range entities {
		cond, _ := conds.Resolve(e.ConditionID)
		if i > 0 {
			legend += "  |  "
		}
		legend += fmt.Sprintf("%d: %s (%s)", i+1, e.Model().Name(), cond.Name)
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetXY(marginLeft, pageHeight-marginBottom-legendHeight+2)
	pdf.CellFormat(drawWidth, 4, legend, "", 0, "L", false, 0, "")

	return pdf.OutputFileAndClose(path)
}

// drawLoop draws one closed loop as connected page-space line segments.
func drawLoop(pdf *fpdf.Fpdf, frame geom.FrameAdapter, loop outline.Loop, scale, offsetX, offsetY float64) {
	if len(loop) < 2 {
		return
	}
	prev := frame.Convert(loop[len(loop)-1])
	for _, p := range loop {
		cur := frame.Convert(p)
		pdf.Line(
			offsetX+prev.X*scale, offsetY+prev.Y*scale,
			offsetX+cur.X*scale, offsetY+cur.Y*scale,
		)
		prev = cur
	}
}
