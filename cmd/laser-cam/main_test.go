package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Clinery1/laser-cam/internal/geom"
	"github.com/Clinery1/laser-cam/internal/model"
	"github.com/Clinery1/laser-cam/internal/outline"
)

func shelfModel(name string, w, h float64) *model.Model {
	outer := outline.Loop{{X: 0, Y: 0}, {X: w, Y: 0}, {X: w, Y: h}, {X: 0, Y: h}}
	return model.New(name, outer, nil)
}

func TestPlaceModelsShelfLayout(t *testing.T) {
	sheet := model.NewSheet(100, 100)
	models := []*model.Model{
		shelfModel("a", 40, 20),
		shelfModel("b", 40, 30),
		shelfModel("c", 40, 20), // does not fit the first row, wraps
	}

	placeModels(sheet, models, "cond-1", 5)

	entities := sheet.Entities()
	require.Len(t, entities, 3)
	for _, e := range entities {
		assert.Equal(t, "cond-1", e.ConditionID)
	}

	// First row: a at (5,5), b at (50,5). Second row starts above the
	// tallest model of the first.
	assert.Equal(t, 5.0, entities[0].Transform().Translation.X)
	assert.Equal(t, 5.0, entities[0].Transform().Translation.Y)
	assert.Equal(t, 50.0, entities[1].Transform().Translation.X)
	assert.Equal(t, 5.0, entities[1].Transform().Translation.Y)
	assert.Equal(t, 5.0, entities[2].Transform().Translation.X)
	assert.Equal(t, 40.0, entities[2].Transform().Translation.Y)
}

func TestPlaceModelsShiftsModelOrigin(t *testing.T) {
	sheet := model.NewSheet(100, 100)
	// Model drawn away from its own origin still lands at the shelf slot.
	outer := outline.Loop{{X: 30, Y: 30}, {X: 40, Y: 30}, {X: 40, Y: 40}, {X: 30, Y: 40}}
	m := model.New("offset", outer, nil)

	placeModels(sheet, []*model.Model{m}, "", 5)

	e := sheet.Entities()[0]
	geo := e.Geometry()
	min, _ := geom.BoundingBox(geo.Outer)
	assert.Equal(t, 5.0, min.X)
	assert.Equal(t, 5.0, min.Y)
}
