package generator

import "strings"

const (
	// 短于30个字符的片段不算句子
	minSentenceLen = 30
	// 分句失败时的定宽切块参数
	chunkWindow = 160
	chunkSpan   = 2000
)

// SplitSentences 把归一化文本切成候选句子，保持原文顺序。
// 边界定义为 .!? 连续串后跟空白，标点保留在句子末尾。
// 一个句子都没有时退化为定宽切块，保证下游至少拿到一个句子。
func SplitSentences(text string) []string {
	var sentences []string

	start := 0
	n := len(text)
	for i := 0; i < n; i++ {
		if !isTerminator(text[i]) {
			continue
		}
		j := i
		for j+1 < n && isTerminator(text[j+1]) {
			j++
		}
		// 归一化文本只含单个空格
		if j+1 < n && text[j+1] != ' ' {
			i = j
			continue
		}
		piece := strings.TrimSpace(text[start : j+1])
		if len(piece) >= minSentenceLen {
			sentences = append(sentences, piece)
		}
		start = j + 1
		i = j + 1
	}
	if tail := strings.TrimSpace(text[start:]); len(tail) >= minSentenceLen {
		sentences = append(sentences, tail)
	}

	if len(sentences) == 0 {
		sentences = chunkFallback(text)
	}
	return sentences
}

func isTerminator(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

func chunkFallback(text string) []string {
	span := len(text)
	if span > chunkSpan {
		span = chunkSpan
	}
	var chunks []string
	for i := 0; i < span; i += chunkWindow {
		end := i + chunkWindow
		if end > span {
			end = span
		}
		chunks = append(chunks, text[i:end])
	}
	return chunks
}
