package export

import (
	"fmt"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/Clinery1/laser-cam/internal/laser"
	"github.com/Clinery1/laser-cam/internal/model"
)

// reportHeaders are the cut report columns, in order.
var reportHeaders = []string{
	"Cut Order", "Model", "Entity ID", "Condition", "Mode",
	"Passes", "Cut Length (mm)", "Area (mm2)", "X (mm)", "Y (mm)", "Rotation (deg)",
}

// ExportCutReport writes an Excel workbook with one row per entity in cut
// order: model, condition, total passes, cut length, area, and placement.
func ExportCutReport(path string, sheet *model.Sheet, conds *laser.Set) error {
	entities := sheet.Entities()
	if len(entities) == 0 {
		return fmt.Errorf("no entities to report")
	}

	f := excelize.NewFile()
	defer f.Close()

	const ws = "Sheet1"
	for col, h := range reportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(ws, cell, h); err != nil {
			return err
		}
	}

	for i, e := range entities {
		cond, _ := conds.Resolve(e.ConditionID)
		t := e.Transform()
		passes := 0
		for _, seq := range cond.Sequence {
			passes += seq.Passes
		}

		values := []any{
			i + 1,
			e.Model().Name(),
			e.ID,
			cond.Name,
			string(cond.Mode),
			passes,
			e.Geometry().PathLength(),
			e.Model().Area(),
			t.Translation.X,
			t.Translation.Y,
			t.Rotation * 180 / math.Pi,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(ws, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}
