// internal/query/pipeline.go
package query

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/technsat/storefront/internal/models"
)

// Record is what the pipeline needs from a catalog entry. All four catalog
// types satisfy it.
type Record interface {
	DisplayName() string
	DisplayPrice() string
	SearchText() []string
	Available() bool
	CategoryLabel() string
	CreatedTime() time.Time
}

// State is one page's query state. The zero value means "no filtering,
// newest first", so handlers can pass it straight through.
type State struct {
	Search       string
	Availability models.Availability
	Category     string
	Sort         models.SortKey
	View         models.ViewMode
	Lang         language.Tag
}

// FromValues builds a State from raw query parameters, normalizing unknown
// values to their no-op defaults.
func FromValues(search, availability, category, sortKey, view string) State {
	st := State{
		Search:   search,
		Category: category,
	}

	switch models.Availability(availability) {
	case models.AvailabilityAvailable, models.AvailabilityUnavailable:
		st.Availability = models.Availability(availability)
	default:
		st.Availability = models.AvailabilityAll
	}

	switch models.SortKey(sortKey) {
	case models.SortName, models.SortPrice:
		st.Sort = models.SortKey(sortKey)
	default:
		st.Sort = models.SortNewest
	}

	switch models.ViewMode(view) {
	case models.ViewModeList:
		st.View = models.ViewModeList
	default:
		st.View = models.ViewModeGrid
	}

	return st
}

// Apply filters and sorts items per the query state. The input slice is never
// mutated; the result is a fresh slice and repeated calls with the same
// inputs produce the same order. Ties keep the input order.
func Apply[T Record](items []T, st State) []T {
	out := make([]T, 0, len(items))

	search := strings.ToLower(strings.TrimSpace(st.Search))
	for _, item := range items {
		if search != "" && !matchesSearch(item, search) {
			continue
		}
		if !matchesAvailability(item, st.Availability) {
			continue
		}
		if st.Category != "" && st.Category != "all" && item.CategoryLabel() != st.Category {
			continue
		}
		out = append(out, item)
	}

	switch st.Sort {
	case models.SortName:
		col := collate.New(langOrDefault(st.Lang))
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].DisplayName(), out[j].DisplayName()) < 0
		})
	case models.SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return PriceValue(out[i].DisplayPrice()) < PriceValue(out[j].DisplayPrice())
		})
	default: // newest first
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].CreatedTime().After(out[j].CreatedTime())
		})
	}

	return out
}

func matchesSearch(item Record, search string) bool {
	for _, field := range item.SearchText() {
		if strings.Contains(strings.ToLower(field), search) {
			return true
		}
	}
	return false
}

func matchesAvailability(item Record, availability models.Availability) bool {
	switch availability {
	case models.AvailabilityAvailable:
		return item.Available()
	case models.AvailabilityUnavailable:
		return !item.Available()
	default:
		return true
	}
}

// PriceValue is the ordering heuristic for free-text prices: the integer
// formed by the digits of the string, 0 when there are none. "Free" sorts
// below "10 TND"; currency and units are ignored.
func PriceValue(price string) int64 {
	var digits strings.Builder
	for _, r := range price {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return 0
	}
	v, err := strconv.ParseInt(digits.String(), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func langOrDefault(tag language.Tag) language.Tag {
	if tag == language.Und {
		return language.English
	}
	return tag
}
