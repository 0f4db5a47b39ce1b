package entity

import (
	"strings"
	"time"
)

// Exchange bitta savol-javob yozuvi
type Exchange struct {
	ID        string
	UserID    string
	Question  string
	Answer    string
	Timestamp time.Time
}

// IsValid savol ham, javob ham bo'sh emasligini tekshirish
func (e Exchange) IsValid() bool {
	return strings.TrimSpace(e.Question) != "" && strings.TrimSpace(e.Answer) != ""
}
