package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
)

// 站点语言常量
const (
	LocaleEN = "en-US"
	LocaleZH = "zh-CN"
)

// DefaultLocale 未能识别时的回退语言
const DefaultLocale = LocaleEN

// ResolveLocale 解析请求语言：query 参数优先，其次 Accept-Language 头
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale
	}
	if locale := NormalizeLocale(c.Query("locale")); locale != "" {
		return locale
	}
	header := c.GetHeader("Accept-Language")
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if locale := NormalizeLocale(tag); locale != "" {
			return locale
		}
	}
	return DefaultLocale
}

// NormalizeLocale 将语言标签归一到受支持的语言，未命中返回空串
func NormalizeLocale(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return ""
	}
	switch {
	case strings.HasPrefix(tag, "zh"):
		return LocaleZH
	case strings.HasPrefix(tag, "en"):
		return LocaleEN
	}
	return ""
}

// T 按语言取文案，依次回退到默认语言与 key 本身
func T(locale, key string) string {
	if table, ok := messages[locale]; ok {
		if msg, ok := table[key]; ok {
			return msg
		}
	}
	if locale != DefaultLocale {
		if msg, ok := messages[DefaultLocale][key]; ok {
			return msg
		}
	}
	return key
}

// Sprintf 按语言取带占位符的文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}
