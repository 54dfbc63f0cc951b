package models

import "time"

// WorkDay guarda o horário de funcionamento do salão para um dia da semana.
// Weekday segue time.Weekday: 0 = domingo ... 6 = sábado.
type WorkDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Weekday int  `gorm:"uniqueIndex;not null" json:"weekday"`
	Open    bool `json:"open"`

	StartTime string `gorm:"size:5" json:"start_time"`
	EndTime   string `gorm:"size:5" json:"end_time"`

	HasLunch   bool   `json:"has_lunch"`
	LunchStart string `gorm:"size:5" json:"lunch_start"`
	LunchEnd   string `gorm:"size:5" json:"lunch_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
