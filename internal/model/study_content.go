package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// QuestionType 题目类型
type QuestionType string

const (
	QuestionMCQ       QuestionType = "mcq"
	QuestionTrueFalse QuestionType = "tf"
)

// QuizQuestion 单个测验题目（四选一填空题或判断题）
// swagger:model QuizQuestion
type QuizQuestion struct {
	ID          string       `json:"id"`
	Question    string       `json:"question"`
	Options     []string     `json:"options"`
	AnswerIndex int          `json:"answer_index"`
	Type        QuestionType `json:"qtype"`
}

// Flashcard 记忆卡片
// swagger:model Flashcard
type Flashcard struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// StudyPlanDay 学习计划中的一天，固定3个目标
// swagger:model StudyPlanDay
type StudyPlanDay struct {
	Day        int      `json:"day"`
	Title      string   `json:"title"`
	Objectives []string `json:"objectives"`
}

// JSON 列类型，兼容 MySQL json 字段
type (
	QuizQuestionList []QuizQuestion
	FlashcardList    []Flashcard
	StudyPlanDayList []StudyPlanDay
)

func (l QuizQuestionList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *QuizQuestionList) Scan(src interface{}) error  { return jsonScan(src, l) }

func (l FlashcardList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *FlashcardList) Scan(src interface{}) error  { return jsonScan(src, l) }

func (l StudyPlanDayList) Value() (driver.Value, error) { return jsonValue(l) }
func (l *StudyPlanDayList) Scan(src interface{}) error  { return jsonScan(src, l) }

func jsonValue(v interface{}) (driver.Value, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func jsonScan(src, dst interface{}) error {
	switch data := src.(type) {
	case []byte:
		return json.Unmarshal(data, dst)
	case string:
		return json.Unmarshal([]byte(data), dst)
	case nil:
		return nil
	default:
		return errors.New("unsupported type for json column")
	}
}

// StudyContent 一次生成请求产出的完整学习资料
// swagger:model StudyContent
type StudyContent struct {
	ID         string           `gorm:"primaryKey;type:varchar(36)" json:"id"`
	Title      string           `gorm:"size:255" json:"title"`
	Text       string           `gorm:"type:longtext" json:"text"`
	CreatedAt  time.Time        `gorm:"index" json:"created_at"`
	Quiz       QuizQuestionList `gorm:"type:json" json:"quiz"`
	Flashcards FlashcardList    `gorm:"type:json" json:"flashcards"`
	Plan       StudyPlanDayList `gorm:"type:json" json:"plan"`
}

func (StudyContent) TableName() string {
	return "study_contents"
}

// StudyContentSummary 最近列表条目（只取索引字段）
// swagger:model StudyContentSummary
type StudyContentSummary struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
