package models

// Weekday numbering follows ISO 8601: Monday=1 .. Sunday=7.

type BusinessHour struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	DayOfWeek int    `gorm:"uniqueIndex;not null" json:"dayOfWeek"` // 1=Monday .. 7=Sunday
	OpenTime  string `gorm:"type:varchar(5);not null" json:"openTime"`
	CloseTime string `gorm:"type:varchar(5);not null" json:"closeTime"`
	IsClosed  bool   `gorm:"default:false" json:"isClosed"`
}

type Holiday struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Date        string `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	Description string `json:"description"`
}

type UnavailableDate struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Date   string `gorm:"type:varchar(10);uniqueIndex;not null" json:"date"` // YYYY-MM-DD
	Reason string `json:"reason"`
}

type BookableTimeSlot struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	StartTime string `gorm:"type:varchar(5);not null" json:"startTime"`
	EndTime   string `gorm:"type:varchar(5);not null" json:"endTime"`
}
