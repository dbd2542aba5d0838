package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/Ajith163/todo-Auth-system-sub000/pkg/translator"
)

const langKey = "lang"

// LanguageMiddleware resolves Accept-Language against the supported translations.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(langKey, translator.Match(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

func GetLang(c *gin.Context) string {
	if lang, exists := c.Get(langKey); exists {
		if s, ok := lang.(string); ok {
			return s
		}
	}
	return translator.LanguageEn
}
