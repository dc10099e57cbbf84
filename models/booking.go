package models

import (
	"time"
)

const (
	BookingStatusPending   = "pending"
	BookingStatusConfirmed = "confirmed"
	BookingStatusCancelled = "cancelled"
	BookingStatusCompleted = "completed"
)

type Booking struct {
	ID        uint  `gorm:"primaryKey" json:"id"`
	UserID    *uint `gorm:"index" json:"userId"` // nil for guest bookings
	ServiceID uint  `gorm:"index;not null" json:"serviceId"`

	Date   string `gorm:"type:varchar(10);not null" json:"date"` // YYYY-MM-DD
	Time   string `gorm:"type:varchar(5);not null" json:"time"`  // HH:MM
	Status string `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Notes  string `json:"notes"`

	// Contact details for anonymous bookings; required when UserID is nil
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	GuestPhone string `json:"guestPhone"`

	ReferenceCode string `gorm:"uniqueIndex" json:"referenceCode"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	User    *User   `gorm:"foreignKey:UserID" json:"-"`
	Service Service `gorm:"foreignKey:ServiceID" json:"-"`
}

// BookingStatusTransitions is the allowed status state machine:
// pending -> confirmed | cancelled, confirmed -> cancelled | completed.
// cancelled and completed are terminal.
var BookingStatusTransitions = map[string][]string{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusCancelled, BookingStatusCompleted},
	BookingStatusCancelled: {},
	BookingStatusCompleted: {},
}

// CanTransitionTo reports whether the booking may move to the given status.
func (b *Booking) CanTransitionTo(status string) bool {
	for _, next := range BookingStatusTransitions[b.Status] {
		if next == status {
			return true
		}
	}
	return false
}

// IsGuest reports whether the booking has no linked account.
func (b *Booking) IsGuest() bool {
	return b.UserID == nil
}
