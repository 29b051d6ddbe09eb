package generator

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxContentLen 输入上限，超长直接截断以保证生成速度
const MaxContentLen = 150000

// ErrEmptyContent 归一化后没有任何可用文本
var ErrEmptyContent = errors.New("empty content")

// Normalize 折叠空白、去首尾空格并限制长度。
// 后续所有组件只接受归一化之后的文本。
func Normalize(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyContent
	}

	var b strings.Builder
	b.Grow(len(trimmed))

	space := false
	for _, r := range trimmed {
		if unicode.IsSpace(r) {
			if !space {
				b.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		b.WriteRune(r)
	}

	out := b.String()
	if len(out) > MaxContentLen {
		// 回退到rune边界，避免截出非法UTF-8
		cut := MaxContentLen
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = out[:cut]
	}
	return out, nil
}

// truncate 超过 max 个字符时截断并追加省略号，结果长度恰好为 max
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
