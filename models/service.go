package models

type Service struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Description string  `json:"description"`
	Price       float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	MinDuration int     `gorm:"not null" json:"minDuration"` // minutes
	MaxDuration int     `gorm:"not null" json:"maxDuration"` // minutes
	IsActive    bool    `gorm:"default:true" json:"isActive"`
	Category    string  `gorm:"default:'General'" json:"category"`
	ImageURL    string  `json:"imageUrl"`

	Bookings []Booking `gorm:"foreignKey:ServiceID" json:"-"`
}
