package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/Clinery1/laser-cam/internal/laser"
	"github.com/Clinery1/laser-cam/internal/model"
)

// LabelInfo holds the data encoded into each entity label's QR code.
type LabelInfo struct {
	EntityID  string  `json:"entity"`
	ModelName string  `json:"model"`
	Condition string  `json:"condition"`
	CutOrder  int     `json:"cut_order"`
	X         float64 `json:"x_mm"`
	Y         float64 `json:"y_mm"`
	Rotation  float64 `json:"rotation_deg"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page). Each label cell is approximately 66.7mm x 25.4mm on US Letter.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectLabelInfos extracts label data for every entity on the sheet, in
// cut order.
func CollectLabelInfos(sheet *model.Sheet, conds *laser.Set) []LabelInfo {
	var labels []LabelInfo
	for i, e := range sheet.Entities() {
		cond, _ := conds.Resolve(e.ConditionID)
		t := e.Transform()
		labels = append(labels, LabelInfo{
			EntityID:  e.ID,
			ModelName: e.Model().Name(),
			Condition: cond.Name,
			CutOrder:  i + 1,
			X:         t.Translation.X,
			Y:         t.Translation.Y,
			Rotation:  t.Rotation * 180 / math.Pi,
		})
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded labels for the sheet's entities.
// Each label carries the model name, cut order, placement, and a QR code
// encoding the same data as JSON, laid out on an Avery 5160 label sheet.
func ExportLabels(path string, sheet *model.Sheet, conds *laser.Set) error {
	labels := CollectLabelInfos(sheet, conds)
	if len(labels) == 0 {
		return fmt.Errorf("no entities to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, x, y, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.EntityID, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}
	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_%s", info.EntityID)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	name := info.ModelName
	if pdf.GetStringWidth(name) > textW {
		for len(name) > 0 && pdf.GetStringWidth(name+"...") > textW {
			name = name[:len(name)-1]
		}
		name += "..."
	}
	pdf.CellFormat(textW, 4.5, name, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	pdf.CellFormat(textW, 3.5, info.Condition, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	placement := fmt.Sprintf("Cut %d @ (%.0f, %.0f)", info.CutOrder, info.X, info.Y)
	pdf.CellFormat(textW, 3, placement, "", 1, "L", false, 0, "")

	if info.Rotation != 0 {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.SetFont("Helvetica", "I", 6)
		pdf.SetTextColor(150, 100, 0)
		pdf.CellFormat(textW, 3, fmt.Sprintf("Rotated %.0f\xb0", info.Rotation), "", 0, "L", false, 0, "")
	}

	pdf.SetTextColor(0, 0, 0)
	return nil
}
