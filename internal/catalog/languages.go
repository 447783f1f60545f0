package catalog

import "strings"

// languageCodes 语言名到 ISO 639-1 码的映射。
var languageCodes = map[string]string{
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"hindi":      "hi",
	"italian":    "it",
	"portuguese": "pt",
	"russian":    "ru",
	"japanese":   "ja",
	"korean":     "ko",
	"chinese":    "zh",
	"arabic":     "ar",
	"dutch":      "nl",
	"swedish":    "sv",
	"norwegian":  "no",
	"danish":     "da",
	"finnish":    "fi",
	"turkish":    "tr",
	"thai":       "th",
	"vietnamese": "vi",
	"polish":     "pl",
	"czech":      "cs",
	"hungarian":  "hu",
	"greek":      "el",
	"hebrew":     "he",
}

// LanguageCode 把语言名（如 "Spanish"）转成语言码（"es"）。
// 大小写不敏感；不认识的语言名回落到 "en"。
func LanguageCode(name string) string {
	if code, ok := languageCodes[strings.ToLower(name)]; ok {
		return code
	}
	return "en"
}
