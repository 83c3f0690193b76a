package services

import "strings"

// Supported locales. Anything unrecognized falls back to English.
const (
	LangEN = "en"
	LangZH = "zh-CN"
)

func normalizeLang(lang string) string {
	lang = strings.TrimSpace(lang)
	if strings.HasPrefix(lang, "zh") {
		return LangZH
	}
	return LangEN
}
