package generator

import (
	"regexp"
	"sort"
	"strings"
)

// KeywordPool 排名取词的内部池大小
const KeywordPool = 14

const minTokenLen = 3

var tokenPattern = regexp.MustCompile(`[A-Za-z][A-Za-z\-']+`)

// Tokenize 提取字母开头、由字母/连字符/撇号组成的词，统一小写
func Tokenize(text string) []string {
	matches := tokenPattern.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}
	return tokens
}

// TopKeywords 按词频排名返回前 k 个关键词。
// 排序规则：频次降序，同频按字典序升序，保证相同输入输出完全一致。
func TopKeywords(text string, k int) []string {
	freq := make(map[string]int)
	for _, tok := range Tokenize(text) {
		if _, stop := stopwords[tok]; stop {
			continue
		}
		if len(tok) < minTokenLen {
			continue
		}
		freq[tok]++
	}

	candidates := make([]string, 0, len(freq))
	for tok := range freq {
		candidates = append(candidates, tok)
	}
	sort.Slice(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if freq[a] != freq[b] {
			return freq[a] > freq[b]
		}
		return a < b
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}
