package generator

import "skriptio_backend/internal/model"

const (
	// FlashcardCount 每份卡组的目标张数
	FlashcardCount = 12

	maxBackLen = 280
)

// BuildFlashcards 按关键词排名出"Define"卡片，背面取第一个包含该词的句子。
// 不足 total 时按句子下标取模循环补"Key idea?"卡片；
// 句子列表为空时跳过补卡，返回已有的部分。
func BuildFlashcards(sentences, keywords []string, total int) []model.Flashcard {
	cards := make([]model.Flashcard, 0, total)

	for _, k := range keywords {
		if len(cards) >= total {
			break
		}
		re := wholeWord(k)
		for _, s := range sentences {
			if re.MatchString(s) {
				cards = append(cards, model.Flashcard{
					Front: "Define: " + k,
					Back:  truncate(s, maxBackLen),
				})
				break
			}
		}
	}

	if len(sentences) > 0 {
		for len(cards) < total {
			s := sentences[len(cards)%len(sentences)]
			cards = append(cards, model.Flashcard{
				Front: "Key idea?",
				Back:  truncate(s, maxBackLen),
			})
		}
	}

	if len(cards) > total {
		cards = cards[:total]
	}
	return cards
}
