// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// I18nMiddleware resolves the request language. An explicit ?lang= value
// wins over the Accept-Language header.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Query("lang")
		if lang == "" {
			lang = c.GetHeader("Accept-Language")
		}

		c.Set("lang", normalizeLang(lang))
		c.Next()
	}
}

func normalizeLang(lang string) string {
	if lang == "" {
		return "en"
	}

	// Handle cases like "fr-FR,fr;q=0.9,en;q=0.8"
	langs := strings.Split(lang, ",")
	first := strings.TrimSpace(strings.Split(langs[0], ";")[0])

	switch {
	case first == "ar" || strings.HasPrefix(first, "ar-"):
		return "ar"
	case first == "fr" || strings.HasPrefix(first, "fr-"):
		return "fr"
	case first == "en" || strings.HasPrefix(first, "en-"):
		return "en"
	default:
		return "en"
	}
}
