package service

import (
	"regexp"
	"strings"
)

var (
	digitsPattern    = regexp.MustCompile(`[0-9]+`)
	unitWordPattern  = regexp.MustCompile(`\b(kg|g|gm|ml|ltr|liter|litre|pack|pcs|piece|pieces)\b`)
	nonLetterPattern = regexp.MustCompile(`[^a-z]+`)
)

// NormalizeProductName 将商品名称归一化为比较键。
// 流程固定：小写 → 去数字 → 去计量单位词 → 去非字母字符 → 去单个词尾 s。
// 归一化键只用于相等性比较，从不对外展示；空键也是合法键。
func NormalizeProductName(raw string) string {
	key := strings.ToLower(raw)
	key = digitsPattern.ReplaceAllString(key, "")
	key = unitWordPattern.ReplaceAllString(key, "")
	key = nonLetterPattern.ReplaceAllString(key, "")
	key = strings.TrimSuffix(key, "s")
	return strings.TrimSpace(key)
}

// IsDuplicateProductName 判断候选名称是否与已有名称重复。
// 候选键只归一化一次，对已有名称逐条归一化比较，命中即返回。
func IsDuplicateProductName(candidate string, existing []string) bool {
	key := NormalizeProductName(candidate)
	for _, name := range existing {
		if NormalizeProductName(name) == key {
			return true
		}
	}
	return false
}
