package services

import (
	"regexp"
	"testing"

	"nailstudio-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var referencePattern = regexp.MustCompile(`^NA[A-Z0-9]{6}[0-9]+$`)

func guestInput(serviceID uint) CreateBookingInput {
	return CreateBookingInput{
		ServiceID:  serviceID,
		Date:       "2026-05-20",
		Time:       "10:00",
		GuestName:  "Walk In",
		GuestEmail: "walkin@example.com",
		GuestPhone: "+15551234567",
	}
}

func TestGuestBookingRequiresAllContactFields(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")

	cases := []struct {
		name   string
		mutate func(*CreateBookingInput)
	}{
		{"missing name", func(in *CreateBookingInput) { in.GuestName = "" }},
		{"missing email", func(in *CreateBookingInput) { in.GuestEmail = "" }},
		{"missing phone", func(in *CreateBookingInput) { in.GuestPhone = "" }},
		{"blank name", func(in *CreateBookingInput) { in.GuestName = "   " }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := guestInput(service.ID)
			tc.mutate(&input)
			_, err := svc.Create(input, nil)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestGuestBookingSucceeds(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")

	resp, err := svc.Create(guestInput(service.ID), nil)
	require.NoError(t, err)

	assert.Nil(t, resp.UserID)
	assert.Equal(t, models.BookingStatusPending, resp.Status)
	assert.Regexp(t, referencePattern, resp.ReferenceCode)
	assert.Equal(t, "Walk In", resp.ClientName)
	assert.Equal(t, "Gel Manicure", resp.ServiceName)
}

func TestBookingForNamedAccountRequiresAuth(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")
	owner := createTestUser(t, db, "owner@example.com", models.RoleCustomer)
	other := createTestUser(t, db, "other@example.com", models.RoleCustomer)
	admin := createTestUser(t, db, "admin@example.com", models.RoleAdmin)

	input := CreateBookingInput{
		UserID:    &owner.ID,
		ServiceID: service.ID,
		Date:      "2026-05-20",
		Time:      "11:00",
	}

	// Anonymous caller naming an account
	_, err := svc.Create(input, nil)
	assert.ErrorIs(t, err, ErrForbidden)

	// Different non-admin account
	_, err = svc.Create(input, other)
	assert.ErrorIs(t, err, ErrForbidden)

	// The account itself
	resp, err := svc.Create(input, owner)
	require.NoError(t, err)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, owner.ID, *resp.UserID)
	assert.Equal(t, owner.Name, resp.ClientName)

	// An admin on the account's behalf
	resp, err = svc.Create(input, admin)
	require.NoError(t, err)
	require.NotNil(t, resp.UserID)
	assert.Equal(t, owner.ID, *resp.UserID)
}

func TestBookingUnknownService(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	input := guestInput(999)
	_, err := svc.Create(input, nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReferenceCodesUnique(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")

	seen := make(map[string]bool)
	for i := 0; i < 25; i++ {
		resp, err := svc.Create(guestInput(service.ID), nil)
		require.NoError(t, err)
		assert.Regexp(t, referencePattern, resp.ReferenceCode)
		assert.False(t, seen[resp.ReferenceCode], "duplicate reference %s", resp.ReferenceCode)
		seen[resp.ReferenceCode] = true
	}
}

func TestNonAdminCannotChangeStatus(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")
	owner := createTestUser(t, db, "owner@example.com", models.RoleCustomer)

	resp, err := svc.Create(CreateBookingInput{
		UserID:    &owner.ID,
		ServiceID: service.ID,
		Date:      "2026-05-20",
		Time:      "11:00",
	}, owner)
	require.NoError(t, err)

	confirmed := models.BookingStatusConfirmed
	_, err = svc.Update(resp.ID, UpdateBookingInput{Status: &confirmed}, owner)
	assert.ErrorIs(t, err, ErrForbidden)

	// Same endpoint still lets the owner touch notes.
	notes := "please use the hypoallergenic polish"
	updated, err := svc.Update(resp.ID, UpdateBookingInput{Notes: &notes}, owner)
	require.NoError(t, err)
	assert.Equal(t, notes, updated.Notes)
	assert.Equal(t, models.BookingStatusPending, updated.Status)
}

func TestNonAdminCannotTouchOthersBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")
	owner := createTestUser(t, db, "owner@example.com", models.RoleCustomer)
	other := createTestUser(t, db, "other@example.com", models.RoleCustomer)

	resp, err := svc.Create(CreateBookingInput{
		UserID:    &owner.ID,
		ServiceID: service.ID,
		Date:      "2026-05-20",
		Time:      "11:00",
	}, owner)
	require.NoError(t, err)

	notes := "hijack"
	_, err = svc.Update(resp.ID, UpdateBookingInput{Notes: &notes}, other)
	assert.ErrorIs(t, err, ErrForbidden)

	assert.ErrorIs(t, svc.Delete(resp.ID, other), ErrForbidden)
	require.NoError(t, svc.Delete(resp.ID, owner))
}

func TestStatusStateMachine(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")

	resp, err := svc.Create(guestInput(service.ID), nil)
	require.NoError(t, err)

	// pending -> completed skips confirmation
	_, err = svc.UpdateStatus(resp.ID, models.BookingStatusCompleted)
	assert.ErrorIs(t, err, ErrValidation)

	updated, err := svc.UpdateStatus(resp.ID, models.BookingStatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, updated.Status)

	updated, err = svc.UpdateStatus(resp.ID, models.BookingStatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusCompleted, updated.Status)

	// completed is terminal
	_, err = svc.UpdateStatus(resp.ID, models.BookingStatusCancelled)
	assert.ErrorIs(t, err, ErrValidation)

	// unknown status strings are rejected outright
	_, err = svc.UpdateStatus(resp.ID, "archived")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestStatusSameValueNoOp(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	service := createTestService(t, db, "Gel Manicure")

	resp, err := svc.Create(guestInput(service.ID), nil)
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(resp.ID, models.BookingStatusPending)
	require.NoError(t, err)
	assert.Equal(t, models.BookingStatusPending, updated.Status)
}
