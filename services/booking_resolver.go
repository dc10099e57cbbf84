// services/booking_resolver.go
package services

import (
	"fmt"
	"strings"

	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// BookingService resolves who a booking belongs to and persists it. A
// booking is either owned by an account (the caller itself, or anyone when
// the caller is an admin) or anonymous, in which case full guest contact
// details are required.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

// CreateBookingInput is the shape accepted by POST /bookings.
type CreateBookingInput struct {
	UserID     *uint  `json:"user_id"`
	ServiceID  uint   `json:"service_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Notes      string `json:"notes"`
	GuestName  string `json:"guest_name"`
	GuestEmail string `json:"guest_email"`
	GuestPhone string `json:"guest_phone"`
}

// BookingResponse is the read-side projection returned to clients. The
// ClientName and ServiceName fields are joined in at read time and never
// stored on the booking row.
type BookingResponse struct {
	models.Booking
	ClientName  string `json:"clientName"`
	ServiceName string `json:"serviceName"`
}

// ResolveBookingActor applies the identity rules for a booking request and
// returns the resolved owner (nil for guests) with normalized guest fields.
// Rule order: named owner requires the caller to be that account or an
// admin; the guest path requires name, email and phone.
func ResolveBookingActor(input CreateBookingInput, actor *models.User) (*uint, error) {
	if input.UserID != nil {
		if actor == nil {
			return nil, fmt.Errorf("%w: authentication required to book for an account", ErrForbidden)
		}
		if !actor.IsAdmin() && actor.ID != *input.UserID {
			return nil, fmt.Errorf("%w: cannot book on behalf of another account", ErrForbidden)
		}
		return input.UserID, nil
	}

	// Anonymous path: all guest contact fields are mandatory.
	if strings.TrimSpace(input.GuestName) == "" ||
		strings.TrimSpace(input.GuestEmail) == "" ||
		strings.TrimSpace(input.GuestPhone) == "" {
		return nil, fmt.Errorf("%w: guest name, email and phone are required for anonymous bookings", ErrValidation)
	}
	if !utils.ValidateEmail(input.GuestEmail) {
		return nil, fmt.Errorf("%w: invalid guest email", ErrValidation)
	}
	if !utils.ValidatePhone(input.GuestPhone) {
		return nil, fmt.Errorf("%w: invalid guest phone", ErrValidation)
	}
	return nil, nil
}

// Create resolves the acting identity, validates the request and persists
// the booking. The reference code incorporates the assigned row ID, so it is
// generated after the insert, inside the same transaction.
func (s *BookingService) Create(input CreateBookingInput, actor *models.User) (*BookingResponse, error) {
	ownerID, err := ResolveBookingActor(input, actor)
	if err != nil {
		return nil, err
	}

	if !utils.ValidDate(input.Date) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, input.Date)
	}
	if !utils.ValidClockTime(input.Time) {
		return nil, fmt.Errorf("%w: invalid time %q", ErrValidation, input.Time)
	}

	var service models.Service
	if err := s.db.First(&service, input.ServiceID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: service %d", ErrNotFound, input.ServiceID)
		}
		return nil, err
	}

	booking := models.Booking{
		UserID:    ownerID,
		ServiceID: service.ID,
		Date:      input.Date,
		Time:      input.Time,
		Status:    models.BookingStatusPending,
		Notes:     input.Notes,
	}
	if ownerID == nil {
		booking.GuestName = strings.TrimSpace(input.GuestName)
		booking.GuestEmail = strings.TrimSpace(input.GuestEmail)
		booking.GuestPhone = strings.TrimSpace(input.GuestPhone)
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		// One retry on the unlikely random-suffix collision.
		for attempt := 0; attempt < 2; attempt++ {
			booking.ReferenceCode = GenerateReferenceCode(booking.ID)
			err := tx.Model(&booking).Update("reference_code", booking.ReferenceCode).Error
			if err == nil {
				return nil
			}
			if attempt == 1 {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Uint("booking_id", booking.ID).
		Str("reference", booking.ReferenceCode).
		Bool("guest", booking.IsGuest()).
		Msg("booking created")

	return s.Project(&booking)
}

// GenerateReferenceCode builds the human-readable code handed to clients:
// the "NA" prefix, six random uppercase alphanumerics, then the booking's
// numeric ID.
func GenerateReferenceCode(bookingID uint) string {
	return fmt.Sprintf("NA%s%d", utils.RandomReferenceSuffix(6), bookingID)
}

// Project joins in the display names for a booking. For owned bookings the
// account's name is used; for guest bookings the guest name.
func (s *BookingService) Project(booking *models.Booking) (*BookingResponse, error) {
	resp := &BookingResponse{Booking: *booking, ClientName: booking.GuestName}

	if booking.UserID != nil {
		var user models.User
		if err := s.db.First(&user, *booking.UserID).Error; err == nil {
			resp.ClientName = user.Name
		}
	}

	var service models.Service
	if err := s.db.First(&service, booking.ServiceID).Error; err == nil {
		resp.ServiceName = service.Name
	}

	return resp, nil
}

// ProjectAll maps a booking list through Project, preserving order.
func (s *BookingService) ProjectAll(bookings []models.Booking) ([]BookingResponse, error) {
	out := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp, err := s.Project(&bookings[i])
		if err != nil {
			return nil, err
		}
		out = append(out, *resp)
	}
	return out, nil
}

// UpdateBookingInput is the shape accepted by PUT /bookings/:id. Non-admin
// callers may only touch Notes.
type UpdateBookingInput struct {
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status"`
	Notes  *string `json:"notes"`
}

// Update applies a partial update honoring role restrictions: owners may
// edit notes on their own bookings, admins may edit anything. Status changes
// go through the transition table.
func (s *BookingService) Update(id uint, input UpdateBookingInput, actor *models.User) (*BookingResponse, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, err
	}

	if !actor.IsAdmin() {
		if booking.UserID == nil || *booking.UserID != actor.ID {
			return nil, fmt.Errorf("%w: not your booking", ErrForbidden)
		}
		if input.Status != nil {
			return nil, fmt.Errorf("%w: only admins may change booking status", ErrForbidden)
		}
		if input.Date != nil || input.Time != nil {
			return nil, fmt.Errorf("%w: only admins may reschedule bookings", ErrForbidden)
		}
	}

	if input.Date != nil {
		if !utils.ValidDate(*input.Date) {
			return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, *input.Date)
		}
		booking.Date = *input.Date
	}
	if input.Time != nil {
		if !utils.ValidClockTime(*input.Time) {
			return nil, fmt.Errorf("%w: invalid time %q", ErrValidation, *input.Time)
		}
		booking.Time = *input.Time
	}
	if input.Status != nil {
		if err := applyStatus(&booking, *input.Status); err != nil {
			return nil, err
		}
	}
	if input.Notes != nil {
		booking.Notes = *input.Notes
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return s.Project(&booking)
}

// UpdateStatus is the admin-only status endpoint.
func (s *BookingService) UpdateStatus(id uint, status string) (*BookingResponse, error) {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, err
	}

	if err := applyStatus(&booking, status); err != nil {
		return nil, err
	}

	if err := s.db.Save(&booking).Error; err != nil {
		return nil, err
	}
	return s.Project(&booking)
}

// Delete removes a booking. Owners may delete their own; admins any.
func (s *BookingService) Delete(id uint, actor *models.User) error {
	var booking models.Booking
	if err := s.db.First(&booking, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return err
	}

	if !actor.IsAdmin() && (booking.UserID == nil || *booking.UserID != actor.ID) {
		return fmt.Errorf("%w: not your booking", ErrForbidden)
	}

	return s.db.Delete(&booking).Error
}

func applyStatus(booking *models.Booking, status string) error {
	switch status {
	case models.BookingStatusPending, models.BookingStatusConfirmed,
		models.BookingStatusCancelled, models.BookingStatusCompleted:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}
	if status == booking.Status {
		return nil
	}
	if !booking.CanTransitionTo(status) {
		return fmt.Errorf("%w: cannot move booking from %s to %s", ErrValidation, booking.Status, status)
	}
	booking.Status = status
	return nil
}
