package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID   uint `gorm:"index" json:"user_id"`
	UserName string `gorm:"size:100" json:"user_name"`

	ClientPhone string `gorm:"size:20" json:"client_phone"`
	ClientEmail string `gorm:"size:100" json:"client_email"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ProfessionalID uint         `gorm:"index:idx_appointments_prof_date" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	// Data e hora locais do salão ("2006-01-02" / "15:04")
	Date string `gorm:"size:10;index:idx_appointments_prof_date" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	// Minutos desde meia-noite, redundantes com Time/DurationMin mas
	// necessários para a consulta de conflito e a exclusion constraint.
	StartMinute int `json:"-"`
	EndMinute   int `json:"-"`

	// Duração congelada no momento do agendamento. Editar o serviço
	// depois não muda agendamentos já feitos.
	DurationMin int `json:"duration_min"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	Rating        *int   `json:"rating"`
	ReviewComment string `gorm:"size:500" json:"review_comment"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
