package models

import (
	"time"

	"gorm.io/gorm"
)

type Diary struct {
	gorm.Model

	Text      string    `gorm:"column:text"`       // free-text body
	AIComment *string   `gorm:"column:ai_comment"` // generated comment, NULL when none was requested
	Date      time.Time `gorm:"column:date"`       // the day the entry is about

	// Owner. Set at creation time and never reassigned.
	AuthorID uint `gorm:"column:author_id;index"`

	Author User `gorm:"foreignKey:AuthorID"`
}
