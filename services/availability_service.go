// services/availability_service.go
package services

import (
	"fmt"
	"sort"

	"nailstudio-backend/models"
	"nailstudio-backend/utils"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AvailabilityService reconciles weekly business hours, holidays, ad-hoc
// unavailable dates and bookable time slots into one settings aggregate.
type AvailabilityService struct {
	db *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{db: db}
}

// BusinessSettings is the combined availability read model returned to
// clients. BusinessHours always holds exactly 7 rows, Monday (1) through
// Sunday (7).
type BusinessSettings struct {
	BusinessHours     []models.BusinessHour     `json:"businessHours"`
	Holidays          []models.Holiday          `json:"holidays"`
	UnavailableDates  []models.UnavailableDate  `json:"unavailableDates"`
	BookableTimeSlots []models.BookableTimeSlot `json:"bookableTimeSlots"`
}

// ReplaceSettingsInput carries the collections to replace. Each field is
// optional; a nil pointer leaves the stored collection untouched, a non-nil
// (even empty) slice replaces it wholesale.
type ReplaceSettingsInput struct {
	BusinessHours     *[]models.BusinessHour     `json:"businessHours"`
	Holidays          *[]models.Holiday          `json:"holidays"`
	UnavailableDates  *[]models.UnavailableDate  `json:"unavailableDates"`
	BookableTimeSlots *[]models.BookableTimeSlot `json:"bookableTimeSlots"`
}

// defaultWeek returns the fallback schedule used when no business hours have
// been configured yet: Monday through Saturday 10:00-19:00, Sunday closed.
func defaultWeek() []models.BusinessHour {
	week := make([]models.BusinessHour, 0, 7)
	for day := 1; day <= 7; day++ {
		week = append(week, models.BusinessHour{
			DayOfWeek: day,
			OpenTime:  "10:00",
			CloseTime: "19:00",
			IsClosed:  day == 7,
		})
	}
	return week
}

// GetAvailability returns the full settings aggregate. When the business
// hours table is empty the default week is seeded first, inside a single
// transaction, so concurrent callers never observe a partial week.
func (s *AvailabilityService) GetAvailability() (*BusinessSettings, error) {
	var hours []models.BusinessHour
	if err := s.db.Order("day_of_week").Find(&hours).Error; err != nil {
		return nil, err
	}

	if len(hours) == 0 {
		seeded := defaultWeek()
		err := s.db.Transaction(func(tx *gorm.DB) error {
			// Re-check inside the transaction; another request may have
			// seeded the week between our read and now.
			var count int64
			if err := tx.Model(&models.BusinessHour{}).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return tx.Order("day_of_week").Find(&seeded).Error
			}
			return tx.Create(&seeded).Error
		})
		if err != nil {
			return nil, err
		}
		log.Info().Msg("seeded default business hours")
		hours = seeded
	}

	// Key rows by day_of_week rather than trusting storage order.
	byDay := make(map[int]models.BusinessHour, len(hours))
	for _, h := range hours {
		byDay[h.DayOfWeek] = h
	}
	week := make([]models.BusinessHour, 0, 7)
	for day := 1; day <= 7; day++ {
		if h, ok := byDay[day]; ok {
			week = append(week, h)
		}
	}

	settings := &BusinessSettings{BusinessHours: week}

	if err := s.db.Order("date").Find(&settings.Holidays).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("date").Find(&settings.UnavailableDates).Error; err != nil {
		return nil, err
	}
	if err := s.db.Order("start_time").Find(&settings.BookableTimeSlots).Error; err != nil {
		return nil, err
	}

	return settings, nil
}

// ReplaceAvailability swaps out each supplied collection in one transaction.
// Business hours must describe a complete week: exactly 7 rows, one per
// weekday 1..7.
func (s *AvailabilityService) ReplaceAvailability(input ReplaceSettingsInput) error {
	if input.BusinessHours != nil {
		if err := validateWeek(*input.BusinessHours); err != nil {
			return err
		}
	}
	if input.Holidays != nil {
		if err := validateDatedRows(holidayDates(*input.Holidays)); err != nil {
			return err
		}
	}
	if input.UnavailableDates != nil {
		if err := validateDatedRows(unavailableDates(*input.UnavailableDates)); err != nil {
			return err
		}
	}
	if input.BookableTimeSlots != nil {
		for _, slot := range *input.BookableTimeSlots {
			if err := validateSlot(slot.StartTime, slot.EndTime); err != nil {
				return err
			}
		}
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if input.BusinessHours != nil {
			if err := tx.Where("1 = 1").Delete(&models.BusinessHour{}).Error; err != nil {
				return err
			}
			rows := stripHourIDs(*input.BusinessHours)
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		if input.Holidays != nil {
			if err := tx.Where("1 = 1").Delete(&models.Holiday{}).Error; err != nil {
				return err
			}
			if rows := stripHolidayIDs(*input.Holidays); len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		if input.UnavailableDates != nil {
			if err := tx.Where("1 = 1").Delete(&models.UnavailableDate{}).Error; err != nil {
				return err
			}
			if rows := stripUnavailableIDs(*input.UnavailableDates); len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		if input.BookableTimeSlots != nil {
			if err := tx.Where("1 = 1").Delete(&models.BookableTimeSlot{}).Error; err != nil {
				return err
			}
			if rows := stripSlotIDs(*input.BookableTimeSlots); len(rows) > 0 {
				if err := tx.Create(&rows).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// CreateHoliday adds a holiday; the date must not already have one.
func (s *AvailabilityService) CreateHoliday(date, description string) (*models.Holiday, error) {
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}
	holiday := models.Holiday{Date: date, Description: description}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Holiday{}).Where("date = ?", date).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: holiday on %s", ErrDuplicate, date)
		}
		return tx.Create(&holiday).Error
	})
	if err != nil {
		return nil, err
	}
	return &holiday, nil
}

func (s *AvailabilityService) DeleteHoliday(id uint) error {
	result := s.db.Delete(&models.Holiday{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: holiday %d", ErrNotFound, id)
	}
	return nil
}

// CreateUnavailableDate adds an ad-hoc blackout date.
func (s *AvailabilityService) CreateUnavailableDate(date, reason string) (*models.UnavailableDate, error) {
	if !utils.ValidDate(date) {
		return nil, fmt.Errorf("%w: invalid date %q", ErrValidation, date)
	}
	row := models.UnavailableDate{Date: date, Reason: reason}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.UnavailableDate{}).Where("date = ?", date).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: unavailable date on %s", ErrDuplicate, date)
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *AvailabilityService) DeleteUnavailableDate(id uint) error {
	result := s.db.Delete(&models.UnavailableDate{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: unavailable date %d", ErrNotFound, id)
	}
	return nil
}

// CreateTimeSlot adds a discrete bookable window. Overlap against business
// hours is intentionally not checked; slots are an independent surface.
func (s *AvailabilityService) CreateTimeSlot(startTime, endTime string) (*models.BookableTimeSlot, error) {
	if err := validateSlot(startTime, endTime); err != nil {
		return nil, err
	}
	slot := models.BookableTimeSlot{StartTime: startTime, EndTime: endTime}
	if err := s.db.Create(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (s *AvailabilityService) DeleteTimeSlot(id uint) error {
	result := s.db.Delete(&models.BookableTimeSlot{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: time slot %d", ErrNotFound, id)
	}
	return nil
}

func validateWeek(week []models.BusinessHour) error {
	if len(week) != 7 {
		return fmt.Errorf("%w: business hours must contain exactly 7 rows, got %d", ErrValidation, len(week))
	}
	seen := make(map[int]bool, 7)
	for _, h := range week {
		if h.DayOfWeek < 1 || h.DayOfWeek > 7 {
			return fmt.Errorf("%w: day_of_week %d out of range 1..7", ErrValidation, h.DayOfWeek)
		}
		if seen[h.DayOfWeek] {
			return fmt.Errorf("%w: duplicate day_of_week %d", ErrValidation, h.DayOfWeek)
		}
		seen[h.DayOfWeek] = true
		if !utils.ValidClockTime(h.OpenTime) || !utils.ValidClockTime(h.CloseTime) {
			return fmt.Errorf("%w: invalid open/close time for day %d", ErrValidation, h.DayOfWeek)
		}
	}
	return nil
}

func validateSlot(start, end string) error {
	if !utils.ValidClockTime(start) || !utils.ValidClockTime(end) {
		return fmt.Errorf("%w: invalid time slot %s-%s", ErrValidation, start, end)
	}
	if start >= end {
		return fmt.Errorf("%w: slot start %s must be before end %s", ErrValidation, start, end)
	}
	return nil
}

func validateDatedRows(dates []string) error {
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if !utils.ValidDate(d) {
			return fmt.Errorf("%w: invalid date %q", ErrValidation, d)
		}
		if seen[d] {
			return fmt.Errorf("%w: duplicate date %s", ErrDuplicate, d)
		}
		seen[d] = true
	}
	return nil
}

func holidayDates(rows []models.Holiday) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Date)
	}
	return out
}

func unavailableDates(rows []models.UnavailableDate) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Date)
	}
	return out
}

func stripHourIDs(rows []models.BusinessHour) []models.BusinessHour {
	out := make([]models.BusinessHour, len(rows))
	copy(out, rows)
	sort.Slice(out, func(i, j int) bool { return out[i].DayOfWeek < out[j].DayOfWeek })
	for i := range out {
		out[i].ID = 0
	}
	return out
}

func stripHolidayIDs(rows []models.Holiday) []models.Holiday {
	out := make([]models.Holiday, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

func stripUnavailableIDs(rows []models.UnavailableDate) []models.UnavailableDate {
	out := make([]models.UnavailableDate, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].ID = 0
	}
	return out
}

func stripSlotIDs(rows []models.BookableTimeSlot) []models.BookableTimeSlot {
	out := make([]models.BookableTimeSlot, len(rows))
	copy(out, rows)
	for i := range out {
		out[i].ID = 0
	}
	return out
}
