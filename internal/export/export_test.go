package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Clinery1/laser-cam/internal/geom"
	"github.com/Clinery1/laser-cam/internal/laser"
	"github.com/Clinery1/laser-cam/internal/model"
	"github.com/Clinery1/laser-cam/internal/outline"
)

func buildTestSheet() (*model.Sheet, *laser.Set) {
	outer := outline.Loop{{X: 0, Y: 0}, {X: 40, Y: 0}, {X: 40, Y: 30}, {X: 0, Y: 30}}
	hole := outline.Loop{{X: 10, Y: 10}, {X: 10, Y: 20}, {X: 20, Y: 20}, {X: 20, Y: 10}}
	plate := model.New("plate", outer, []outline.Loop{hole})

	small := model.New("tab", outline.Loop{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}, nil)

	sheet := model.NewSheet(300, 200)
	conds := laser.NewSet()
	sheet.Place(plate, geom.Translated(20, 20))
	sheet.Place(small, geom.Translated(100, 50))
	return sheet, conds
}

func TestExportPDF_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.pdf")
	sheet, conds := buildTestSheet()

	if err := ExportPDF(path, sheet, conds); err != nil {
		t.Fatalf("ExportPDF returned error: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatal("output file is empty")
	}
}

func TestExportPDF_EmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.pdf")
	if err := ExportPDF(path, model.NewSheet(300, 200), laser.NewSet()); err == nil {
		t.Fatal("expected error for empty sheet")
	}
}

func TestExportLabels_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labels.pdf")
	sheet, conds := buildTestSheet()

	if err := ExportLabels(path, sheet, conds); err != nil {
		t.Fatalf("ExportLabels returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("output file missing: %v", err)
	}
}

func TestCollectLabelInfos(t *testing.T) {
	sheet, conds := buildTestSheet()

	labels := CollectLabelInfos(sheet, conds)
	if len(labels) != 2 {
		t.Fatalf("expected 2 labels, got %d", len(labels))
	}
	first := labels[0]
	if first.ModelName != "plate" {
		t.Errorf("expected model plate, got %q", first.ModelName)
	}
	if first.CutOrder != 1 {
		t.Errorf("expected cut order 1, got %d", first.CutOrder)
	}
	if first.Condition != "Default" {
		t.Errorf("expected default condition name, got %q", first.Condition)
	}
	if first.X != 20 || first.Y != 20 {
		t.Errorf("expected placement (20, 20), got (%g, %g)", first.X, first.Y)
	}
}

func TestExportCutReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	sheet, conds := buildTestSheet()

	if err := ExportCutReport(path, sheet, conds); err != nil {
		t.Fatalf("ExportCutReport returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("cannot reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Sheet1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "Cut Order" || rows[0][1] != "Model" {
		t.Errorf("unexpected headers: %v", rows[0])
	}
	if rows[1][1] != "plate" || rows[2][1] != "tab" {
		t.Errorf("rows not in cut order: %v / %v", rows[1], rows[2])
	}
	if rows[1][3] != "Default" {
		t.Errorf("expected default condition in report, got %q", rows[1][3])
	}
}

func TestExportCutReport_EmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	if err := ExportCutReport(path, model.NewSheet(300, 200), laser.NewSet()); err == nil {
		t.Fatal("expected error for empty sheet")
	}
}
