package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// 支持的语言
const (
	LocaleEN = "en-US"
	LocaleZH = "zh-CN"
	LocaleTW = "zh-TW"
)

// DefaultLocale 默认语言
const DefaultLocale = LocaleEN

var supportedTags = []language.Tag{
	language.AmericanEnglish,
	language.SimplifiedChinese,
	language.TraditionalChinese,
}

var matcher = language.NewMatcher(supportedTags)

// ResolveLocale 解析请求语言：?lang= > X-Locale > Accept-Language
func ResolveLocale(c *gin.Context) string {
	if c == nil || c.Request == nil {
		return DefaultLocale
	}
	for _, candidate := range []string{c.Query("lang"), c.GetHeader("X-Locale")} {
		if locale, ok := NormalizeLocale(candidate); ok {
			return locale
		}
	}
	accept := strings.TrimSpace(c.GetHeader("Accept-Language"))
	if accept == "" {
		return DefaultLocale
	}
	tags, _, err := language.ParseAcceptLanguage(accept)
	if err != nil || len(tags) == 0 {
		return DefaultLocale
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return DefaultLocale
	}
	return localeByIndex(index)
}

// NormalizeLocale 将任意语言标记归一到支持的语言
func NormalizeLocale(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return "", false
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return localeByIndex(index), true
}

func localeByIndex(index int) string {
	switch index {
	case 1:
		return LocaleZH
	case 2:
		return LocaleTW
	default:
		return LocaleEN
	}
}

// T 翻译文案，缺失时依次回退到默认语言和键本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if locale == LocaleTW {
		if msg, ok := messages[LocaleZH][key]; ok {
			return msg
		}
	}
	if msg, ok := messages[DefaultLocale][key]; ok {
		return msg
	}
	return key
}

// Sprintf 翻译带参数的文案
func Sprintf(locale, key string, args ...interface{}) string {
	return fmt.Sprintf(T(locale, key), args...)
}
