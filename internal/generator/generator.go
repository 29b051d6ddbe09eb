// Package generator 从任意文本确定性地派生测验、记忆卡片和学习计划。
// 整条流水线是纯函数：相同的文本和标题产出逐字节相同的结果
// （生成的 id 和时间戳除外），不依赖任何外部服务。
package generator

import (
	"time"

	"github.com/google/uuid"

	"skriptio_backend/internal/model"
)

const titleLen = 40

// Generate 组装一份完整的学习资料：
// 归一化 → 分句+关键词排名 → 三个合成器 → StudyContent。
// 生成结果一次成型，之后不再修改。
func Generate(raw, title string) (*model.StudyContent, error) {
	text, err := Normalize(raw)
	if err != nil {
		return nil, err
	}

	sentences := SplitSentences(text)
	keywords := TopKeywords(text, KeywordPool)

	if title == "" {
		title = defaultTitle(sentences)
	}

	return &model.StudyContent{
		ID:         uuid.New().String(),
		Title:      title,
		Text:       text,
		CreatedAt:  time.Now().UTC(),
		Quiz:       BuildQuiz(sentences, keywords, QuizSize),
		Flashcards: BuildFlashcards(sentences, keywords, FlashcardCount),
		Plan:       BuildStudyPlan(sentences, keywords),
	}, nil
}

// defaultTitle 未提供标题时取第一句的前40个字符加省略号
func defaultTitle(sentences []string) string {
	if len(sentences) == 0 {
		return "Untitled"
	}
	r := []rune(sentences[0])
	if len(r) > titleLen {
		r = r[:titleLen]
	}
	return string(r) + "..."
}
