package generator

import (
	"math/rand"
	"regexp"

	"github.com/google/uuid"

	"skriptio_backend/internal/model"
)

const (
	// QuizSize 每份测验的目标题数
	QuizSize = 10

	// BlankMarker 填空题中替换被测关键词的占位符
	BlankMarker = "_____"

	maxStatementLen = 180

	// 固定种子：相同输入必须产出相同的选项顺序，方便测试与演示。
	// 随机源按请求构造，并发请求之间互不影响。
	quizSeed = 42
)

// BuildQuiz 两阶段生成测验题。
// 第一阶段按句子顺序出填空题：取排名最靠前且出现在句中的未用关键词，
// 整词替换为占位符，选项为正确词加3个随机干扰词。
// 不足 total 时，第二阶段用句子兜底生成判断题（句子允许与第一阶段重复）。
func BuildQuiz(sentences, keywords []string, total int) []model.QuizQuestion {
	rng := rand.New(rand.NewSource(quizSeed))
	used := make(map[string]bool)
	quiz := make([]model.QuizQuestion, 0, total)

	for _, s := range sentences {
		if len(quiz) >= total {
			break
		}
		var key string
		var re *regexp.Regexp
		for _, k := range keywords {
			if used[k] {
				continue
			}
			if r := wholeWord(k); r.MatchString(s) {
				key, re = k, r
				break
			}
		}
		if key == "" {
			continue
		}
		used[key] = true

		question := re.ReplaceAllString(s, BlankMarker)
		options := pickOptions(rng, keywords, key)
		answer := 0
		for i, o := range options {
			if o == key {
				answer = i
				break
			}
		}

		quiz = append(quiz, model.QuizQuestion{
			ID:          uuid.New().String(),
			Question:    question,
			Options:     options,
			AnswerIndex: answer,
			Type:        model.QuestionMCQ,
		})
	}

	// 判断题兜底，正确答案固定为 True（沿用产品现状）
	for i := 0; len(quiz) < total && i < len(sentences); i++ {
		quiz = append(quiz, model.QuizQuestion{
			ID:          uuid.New().String(),
			Question:    "True/False: " + truncate(sentences[i], maxStatementLen),
			Options:     []string{"True", "False"},
			AnswerIndex: 0,
			Type:        model.QuestionTrueFalse,
		})
	}

	if len(quiz) > total {
		quiz = quiz[:total]
	}
	return quiz
}

// pickOptions 正确词加最多3个干扰词，乱序后返回
func pickOptions(rng *rand.Rand, keywords []string, key string) []string {
	distractors := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if k != key {
			distractors = append(distractors, k)
		}
	}
	rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > 3 {
		distractors = distractors[:3]
	}

	options := append([]string{key}, distractors...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})
	return options
}

// wholeWord 关键词的整词匹配，大小写不敏感
func wholeWord(k string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(k) + `\b`)
}
