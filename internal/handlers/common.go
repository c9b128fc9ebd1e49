// internal/handlers/common.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"

	"github.com/technsat/storefront/internal/query"
	"github.com/technsat/storefront/internal/utils"
)

// queryStateFromRequest reads the listing parameters every public catalog
// endpoint accepts: search, availability, category, sort, view.
func queryStateFromRequest(c *gin.Context) query.State {
	st := query.FromValues(
		c.Query("search"),
		c.Query("availability"),
		c.Query("category"),
		c.Query("sort"),
		c.Query("view"),
	)
	st.Lang = langTag(utils.GetLangFromContext(c))
	return st
}

func langTag(lang string) language.Tag {
	switch lang {
	case "ar":
		return language.Arabic
	case "fr":
		return language.French
	default:
		return language.English
	}
}

// listMeta is the envelope meta for listing responses.
func listMeta(total, shown int, st query.State) gin.H {
	return gin.H{
		"total":   total,
		"shown":   shown,
		"view":    st.View,
		"sort":    st.Sort,
		"filters": gin.H{
			"search":       st.Search,
			"availability": st.Availability,
			"category":     st.Category,
		},
	}
}
