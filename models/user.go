package models

import (
	"time"

	"nailstudio-backend/utils"

	"gorm.io/gorm"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`
	Phone    string `json:"phone"`

	Role      string `gorm:"type:varchar(20);default:'customer'" json:"role"` // 'customer' or 'admin'
	AvatarURL string `json:"avatarUrl"`

	EmailNotificationsEnabled bool `gorm:"default:true" json:"emailNotificationsEnabled"`
	SMSNotificationsEnabled   bool `gorm:"default:false" json:"smsNotificationsEnabled"`

	CreatedAt time.Time `json:"registrationDate"`

	Bookings []Booking `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Hash password before creating
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
