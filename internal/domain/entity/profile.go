package entity

import "time"

const (
	DefaultAssistantName = "Assistant"
	DefaultOwnerName     = "User"
)

// AssistantProfile foydalanuvchining yordamchi sozlamalari
type AssistantProfile struct {
	UserID        string
	AssistantName string
	OwnerName     string
	UpdatedAt     time.Time
}

// WithDefaults bo'sh maydonlarni standart qiymat bilan to'ldirish
func (p AssistantProfile) WithDefaults() AssistantProfile {
	if p.AssistantName == "" {
		p.AssistantName = DefaultAssistantName
	}
	if p.OwnerName == "" {
		p.OwnerName = DefaultOwnerName
	}
	return p
}
