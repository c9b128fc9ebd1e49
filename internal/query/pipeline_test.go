// internal/query/pipeline_test.go
package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/technsat/storefront/internal/models"
)

func testBoxes() []models.AndroidBox {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	mk := func(name, price string, available bool, age int) models.AndroidBox {
		b := models.AndroidBox{
			Name:        name,
			Price:       price,
			IsAvailable: available,
		}
		b.CreatedAt = base.Add(time.Duration(age) * time.Hour)
		return b
	}

	return []models.AndroidBox{
		mk("X96 Max Plus", "120 TND", true, 5),
		mk("Formuler Z11", "450 TND", false, 4),
		mk("A95X F3", "Free", true, 3),
		mk("Tanix TX6", "10 TND", true, 2),
		mk("Zgemma H9", "250 TND", false, 1),
	}
}

func TestApplyDefaultStateReturnsAllNewestFirst(t *testing.T) {
	boxes := testBoxes()
	out := Apply(boxes, State{})

	assert.Len(t, out, len(boxes))
	for i := 1; i < len(out); i++ {
		assert.False(t, out[i].CreatedAt.After(out[i-1].CreatedAt),
			"expected newest-first order at index %d", i)
	}
	assert.Equal(t, "X96 Max Plus", out[0].Name)
}

func TestApplyResultIsSubsequenceAndDeterministic(t *testing.T) {
	boxes := testBoxes()
	st := State{Search: "x"}

	first := Apply(boxes, st)
	second := Apply(boxes, st)

	assert.Equal(t, first, second)

	// Every result element must come from the input.
	names := make(map[string]bool)
	for _, b := range boxes {
		names[b.Name] = true
	}
	for _, b := range first {
		assert.True(t, names[b.Name])
	}

	// Input untouched.
	assert.Equal(t, "X96 Max Plus", boxes[0].Name)
	assert.Len(t, boxes, 5)
}

func TestApplySearchMatchesAnyField(t *testing.T) {
	boxes := testBoxes()
	boxes[1].Specifications = "4K HDR quad-core"

	out := Apply(boxes, State{Search: "quad-core"})

	assert.Len(t, out, 1)
	assert.Equal(t, "Formuler Z11", out[0].Name)

	// Case-insensitive.
	out = Apply(boxes, State{Search: "x96 MAX"})
	assert.Len(t, out, 1)
	assert.Equal(t, "X96 Max Plus", out[0].Name)
}

func TestApplyAvailabilityFilterPreservesOrder(t *testing.T) {
	boxes := testBoxes()

	out := Apply(boxes, State{Availability: models.AvailabilityUnavailable})

	assert.Len(t, out, 2)
	assert.Equal(t, "Zgemma H9", out[0].Name)
	assert.Equal(t, "Formuler Z11", out[1].Name)
}

func TestApplyPriceSortUsesDigitHeuristic(t *testing.T) {
	boxes := testBoxes()

	out := Apply(boxes, State{Sort: models.SortPrice})

	prices := make([]string, len(out))
	for i, b := range out {
		prices[i] = b.Price
	}
	assert.Equal(t, []string{"Free", "10 TND", "120 TND", "250 TND", "450 TND"}, prices)
}

func TestApplyNameSortRespectsLocale(t *testing.T) {
	boxes := testBoxes()

	out := Apply(boxes, State{Sort: models.SortName, Lang: language.French})

	assert.Equal(t, "A95X F3", out[0].Name)
	assert.Equal(t, "Zgemma H9", out[len(out)-1].Name)
}

func TestApplyEmptyCollection(t *testing.T) {
	out := Apply([]models.AndroidBox{}, State{Search: "anything", Sort: models.SortPrice})
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestApplyCategoryFilter(t *testing.T) {
	accessories := []models.Accessory{
		{Name: "HDMI Cable", Category: "cables", IsAvailable: true},
		{Name: "Remote", Category: "remotes", IsAvailable: true},
		{Name: "Ethernet Cable", Category: "cables", IsAvailable: true},
	}

	out := Apply(accessories, State{Category: "cables"})
	assert.Len(t, out, 2)

	// "all" is a no-op.
	out = Apply(accessories, State{Category: "all"})
	assert.Len(t, out, 3)
}

func TestPriceValue(t *testing.T) {
	assert.Equal(t, int64(0), PriceValue("Free"))
	assert.Equal(t, int64(0), PriceValue(""))
	assert.Equal(t, int64(10), PriceValue("10 TND"))
	assert.Equal(t, int64(120), PriceValue("120 TND"))
	assert.Equal(t, int64(1250), PriceValue("1,250 dinars"))
}

func TestFromValuesNormalizesUnknowns(t *testing.T) {
	st := FromValues("tv", "bogus", "", "bogus", "bogus")

	assert.Equal(t, "tv", st.Search)
	assert.Equal(t, models.AvailabilityAll, st.Availability)
	assert.Equal(t, models.SortNewest, st.Sort)
	assert.Equal(t, models.ViewModeGrid, st.View)

	st = FromValues("", "available", "cables", "price", "list")
	assert.Equal(t, models.AvailabilityAvailable, st.Availability)
	assert.Equal(t, "cables", st.Category)
	assert.Equal(t, models.SortPrice, st.Sort)
	assert.Equal(t, models.ViewModeList, st.View)
}
