// laser-cam — DXF to GRBL GCode compiler for laser cutters
//
// Imports 2D DXF drawings, assembles their segments into closed part
// outlines, places the parts on a sheet, and compiles a deterministic
// GCode program using the configured cutting conditions.
//
// Build:
//   go build -o laser-cam ./cmd/laser-cam
//
// Usage:
//   laser-cam -condition "Plywood 3mm" -o parts.gcode parts.dxf
//   laser-cam -pdf layout.pdf -report cuts.xlsx bracket.dxf panel.dxf
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Clinery1/laser-cam/internal/export"
	"github.com/Clinery1/laser-cam/internal/gcode"
	"github.com/Clinery1/laser-cam/internal/geom"
	"github.com/Clinery1/laser-cam/internal/importer"
	"github.com/Clinery1/laser-cam/internal/model"
	"github.com/Clinery1/laser-cam/internal/project"
)

func main() {
	configPath := flag.String("config", project.DefaultConfigPath(), "application config file")
	conditionsPath := flag.String("conditions", project.DefaultConditionsPath(), "cutting conditions file")
	conditionName := flag.String("condition", "", "condition name to assign to all parts (default: the configured default)")
	sheetWidth := flag.Float64("sheet-width", 0, "sheet width in mm (default: from config)")
	sheetHeight := flag.Float64("sheet-height", 0, "sheet height in mm (default: from config)")
	spacing := flag.Float64("spacing", 5, "gap between placed parts in mm")
	output := flag.String("o", "", "output GCode file (default: first input with .gcode suffix)")
	pdfPath := flag.String("pdf", "", "also write a sheet layout PDF")
	labelsPath := flag.String("labels", "", "also write a QR label PDF")
	reportPath := flag.String("report", "", "also write an Excel cut report")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Usage: laser-cam [flags] file.dxf [file2.dxf ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	cfg, err := project.LoadAppConfig(*configPath)
	if err != nil {
		log.Printf("config %s unreadable, using defaults: %v", *configPath, err)
	}
	if *sheetWidth > 0 {
		cfg.SheetWidth = *sheetWidth
	}
	if *sheetHeight > 0 {
		cfg.SheetHeight = *sheetHeight
	}

	conds, err := project.LoadConditions(*conditionsPath)
	if err != nil {
		log.Printf("conditions %s unreadable, using defaults: %v", *conditionsPath, err)
	}

	conditionID := ""
	if *conditionName != "" {
		c, ok := conds.GetByName(*conditionName)
		if !ok {
			log.Fatalf("condition %q not found in %s", *conditionName, *conditionsPath)
		}
		conditionID = c.ID
	}

	importCfg := importer.Config{
		ChordTolerance: cfg.ChordTolerance,
		JoinEpsilon:    cfg.JoinEpsilon,
	}

	store := model.NewStore()
	var models []*model.Model
	for _, path := range flag.Args() {
		result := importer.ImportDXF(path, importCfg)
		for _, w := range result.Warnings {
			log.Printf("%s: %s", path, w)
		}
		for _, e := range result.Errors {
			log.Printf("%s: error: %s", path, e)
		}
		if len(result.Models) == 0 {
			log.Fatalf("%s: no usable models", path)
		}
		for _, m := range result.Models {
			store.Add(m)
			models = append(models, m)
		}
	}

	sheet := model.NewSheet(cfg.SheetWidth, cfg.SheetHeight)
	placeModels(sheet, models, conditionID, *spacing)

	program := gcode.Compile(sheet, conds)

	out := *output
	if out == "" {
		out = flag.Arg(0) + ".gcode"
	}
	if err := os.WriteFile(out, []byte(program), 0644); err != nil {
		log.Fatalf("cannot write %s: %v", out, err)
	}
	fmt.Printf("wrote %s (%d entities)\n", out, len(sheet.Entities()))

	if *pdfPath != "" {
		if err := export.ExportPDF(*pdfPath, sheet, conds); err != nil {
			log.Fatalf("cannot write %s: %v", *pdfPath, err)
		}
		fmt.Printf("wrote %s\n", *pdfPath)
	}
	if *labelsPath != "" {
		if err := export.ExportLabels(*labelsPath, sheet, conds); err != nil {
			log.Fatalf("cannot write %s: %v", *labelsPath, err)
		}
		fmt.Printf("wrote %s\n", *labelsPath)
	}
	if *reportPath != "" {
		if err := export.ExportCutReport(*reportPath, sheet, conds); err != nil {
			log.Fatalf("cannot write %s: %v", *reportPath, err)
		}
		fmt.Printf("wrote %s\n", *reportPath)
	}
}

// placeModels lays the models out in shelf rows, left to right and bottom to
// top, with the given gap. Models wider than the sheet are placed anyway and
// reported; the operator can still reposition in a later pass.
func placeModels(sheet *model.Sheet, models []*model.Model, conditionID string, spacing float64) {
	x, y := spacing, spacing
	rowHeight := 0.0

	for _, m := range models {
		min, max := m.Bounds()
		w := max.X - min.X
		h := max.Y - min.Y

		if x+w+spacing > sheet.Width && x > spacing {
			x = spacing
			y += rowHeight + spacing
			rowHeight = 0
		}
		if w+2*spacing > sheet.Width || y+h+spacing > sheet.Height {
			log.Printf("model %q does not fit the %gx%g sheet", m.Name(), sheet.Width, sheet.Height)
		}

		// Shift the model's own origin to the shelf position.
		e := sheet.Place(m, geom.Translated(x-min.X, y-min.Y))
		e.ConditionID = conditionID

		x += w + spacing
		if h > rowHeight {
			rowHeight = h
		}
	}
}
