package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// OptionList is the four display-order answer options of a question,
// stored as a JSON array column.
type OptionList []string

func (o OptionList) Value() (driver.Value, error) {
	return json.Marshal(o)
}

func (o *OptionList) Scan(value interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, o)
	case string:
		return json.Unmarshal([]byte(v), o)
	default:
		return fmt.Errorf("cannot scan %T into OptionList", value)
	}
}

type QuizQuestion struct {
	ID           uint           `gorm:"primarykey" json:"id"`
	QuizID       uint           `json:"quiz_id" gorm:"not null;index"`
	Question     string         `json:"question" gorm:"type:text;not null"`
	Options      OptionList     `json:"options" gorm:"type:text;not null"` // always exactly 4 entries
	CorrectIndex int            `json:"correct_index" gorm:"not null"`     // 0-3, position of the correct option
	Explanation  *string        `json:"explanation,omitempty" gorm:"type:text"`
	OrderInQuiz  int            `json:"order_in_quiz" gorm:"not null"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
