package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusCheck 客户端上报的状态检查记录
// swagger:model StatusCheck
type StatusCheck struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)" json:"id"`
	ClientName string    `gorm:"size:255;not null" json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}

func (s *StatusCheck) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	if s.Timestamp.IsZero() {
		s.Timestamp = time.Now().UTC()
	}
	return
}

func (StatusCheck) TableName() string {
	return "status_checks"
}
