package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name      string `gorm:"size:100;not null" json:"name"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`
	Active    bool   `gorm:"default:true" json:"active"`

	// Serviços que a profissional atende
	Specialties []Service `gorm:"many2many:professional_specialties;" json:"specialties"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CanPerform verifica se o serviço está nas especialidades
func (p *Professional) CanPerform(serviceID uint) bool {
	for _, s := range p.Specialties {
		if s.ID == serviceID {
			return true
		}
	}
	return false
}
