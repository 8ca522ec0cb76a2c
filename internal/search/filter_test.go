package search

import (
	"strings"
	"testing"

	"ev-newsroom/internal/model"

	"github.com/stretchr/testify/assert"
)

func sampleSpecs() []model.VehicleSpec {
	return []model.VehicleSpec{
		{ID: 1, Manufacturer: "Tesla", Model: "Model 3"},
		{ID: 2, Manufacturer: "Hyundai", Model: "Ioniq 5"},
		{ID: 3, Manufacturer: "Kia", Model: "EV6"},
		{ID: 4, Manufacturer: "Tesla", Model: "Model Y"},
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "model 3", Normalize("  Model \t  3 \n"))
	assert.Equal(t, "", Normalize(" \t\n "))
	assert.Equal(t, "ioniq", Normalize("IONIQ"))
	assert.Equal(t, "model 3", Normalize("model\u00a0\u00a03"))
	assert.Equal(t, "ev6", Normalize("\u3000EV6\u2003"))
}

func TestFilter_NonBreakingSpaceQuery(t *testing.T) {
	got := Filter(sampleSpecs(), "model\u00a03")
	assert.Equal(t, []model.VehicleSpec{sampleSpecs()[0]}, got)
}

func TestFilter_ScenarioModel3(t *testing.T) {
	specs := []model.VehicleSpec{
		{ID: 1, Manufacturer: "Tesla", Model: "Model 3"},
		{ID: 2, Manufacturer: "Hyundai", Model: "Ioniq 5"},
	}
	got := Filter(specs, " model 3 ")
	assert.Equal(t, []model.VehicleSpec{specs[0]}, got)
}

func TestFilter_BlankQueryIsEmpty(t *testing.T) {
	for _, q := range []string{"", " ", "\t\t", "\n  \r"} {
		got := Filter(sampleSpecs(), q)
		assert.NotNil(t, got)
		assert.Empty(t, got, "query %q", q)
	}
}

func TestFilter_SubsetAndMatch(t *testing.T) {
	specs := sampleSpecs()
	for _, q := range []string{"tesla", "MODEL", "ev", "5", "i", "nothing"} {
		got := Filter(specs, q)
		norm := Normalize(q)
		for _, s := range got {
			assert.Contains(t, specs, s)
			ok := strings.Contains(strings.ToLower(s.Manufacturer), norm) ||
				strings.Contains(strings.ToLower(s.Model), norm)
			assert.True(t, ok, "%+v does not match %q", s, q)
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleSpecs(), "tesla")
	ids := []int{}
	for _, s := range got {
		ids = append(ids, s.ID)
	}
	assert.Equal(t, []int{1, 4}, ids)
}

func TestFilter_ManufacturerOrModel(t *testing.T) {
	assert.Len(t, Filter(sampleSpecs(), "kia"), 1)
	assert.Len(t, Filter(sampleSpecs(), "ev6"), 1)
	assert.Empty(t, Filter(sampleSpecs(), "tesla model 3 long range"))
}

func TestFilter_NewsPointers(t *testing.T) {
	items := []*model.NewsItem{
		{ID: 1, Title: "Charging network expands", Source: "Yonhap"},
		{ID: 2, Title: "Battery prices fall", Source: "Reuters"},
	}
	got := Filter(items, "reuters")
	if assert.Len(t, got, 1) {
		assert.Same(t, items[1], got[0])
	}
}
