package generator

import (
	"fmt"

	"skriptio_backend/internal/model"
)

const (
	// PlanDays 学习计划固定7天
	PlanDays = 7

	objectivesPerDay = 3
	maxObjectiveLen  = 120

	fallbackObjective = "Review today's material in your own words"
)

// BuildStudyPlan 把句子均分到7天，每天固定3个目标。
// 目标优先取当天分片的前3句（截断到120字符），不足时用关键词补
// "Review concept: xx"，补词下标越界时收缩到关键词表末尾，
// 仍不足3个时用通用目标填满。
func BuildStudyPlan(sentences, keywords []string) []model.StudyPlanDay {
	total := len(sentences)
	if total < PlanDays {
		total = PlanDays
	}
	perDay := total / PlanDays
	if perDay < 1 {
		perDay = 1
	}

	plan := make([]model.StudyPlanDay, 0, PlanDays)
	for d := 0; d < PlanDays; d++ {
		var chunk []string
		if start := d * perDay; start < len(sentences) {
			end := start + perDay
			if end > len(sentences) {
				end = len(sentences)
			}
			chunk = sentences[start:end]
		}

		objectives := make([]string, 0, objectivesPerDay)
		for _, s := range chunk {
			if len(objectives) == objectivesPerDay {
				break
			}
			objectives = append(objectives, truncate(s, maxObjectiveLen))
		}

		if missing := objectivesPerDay - len(objectives); missing > 0 && len(keywords) > 0 {
			start, end := d, d+missing
			if start > len(keywords) {
				start = len(keywords)
			}
			if end > len(keywords) {
				end = len(keywords)
			}
			for _, k := range keywords[start:end] {
				objectives = append(objectives, "Review concept: "+k)
			}
		}
		for len(objectives) < objectivesPerDay {
			objectives = append(objectives, fallbackObjective)
		}

		title := fmt.Sprintf("Day %d: Focus", d+1)
		if len(keywords) > 0 {
			title = fmt.Sprintf("Day %d: %s", d+1, keywords[d%len(keywords)])
		}

		plan = append(plan, model.StudyPlanDay{
			Day:        d + 1,
			Title:      title,
			Objectives: objectives,
		})
	}
	return plan
}
