package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hoangfish/HotelSystemFull/shared/model"
)

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldBookings  = "bookings"
	FieldVersion   = "version"
)

const (
	BookingStatusBooked    = "booked"
	BookingStatusCancelled = "cancelled"
)

// Booking is an entry in a guest's booking list. Room number and price are
// copied from the room at creation time and never refreshed afterwards.
type Booking struct {
	BookingCode  string    `json:"bookingCode"`
	RoomID       string    `json:"roomId"`
	RoomNumber   string    `json:"roomNumber"`
	Price        float64   `json:"price"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	IsCheckIn    bool      `json:"isCheckIn"`
	IsCheckOut   bool      `json:"isCheckOut"`
	Status       string    `json:"status"`
}

// BookingList is stored as a single JSONB document so the whole list is
// read and written atomically with its guest row.
type BookingList []Booking

func (b BookingList) Value() (driver.Value, error) {
	if b == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal booking list: %w", err)
	}

	return string(raw), nil
}

func (b *BookingList) Scan(src any) error {
	if src == nil {
		*b = BookingList{}

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported source type for booking list")
	}

	if err := json.Unmarshal(raw, b); err != nil {
		return fmt.Errorf("failed to unmarshal booking list: %w", err)
	}

	return nil
}

// Find returns the booking with the given code, or nil.
func (b BookingList) Find(bookingCode string) *Booking {
	for i := range b {
		if b[i].BookingCode == bookingCode {
			return &b[i]
		}
	}

	return nil
}

// Remove returns a copy of the list without the booking with the given code.
func (b BookingList) Remove(bookingCode string) BookingList {
	out := make(BookingList, 0, len(b))

	for i := range b {
		if b[i].BookingCode != bookingCode {
			out = append(out, b[i])
		}
	}

	return out
}

type Guest struct {
	ID        string      `db:"id"`
	FirstName string      `db:"first_name"`
	LastName  string      `db:"last_name"`
	Email     string      `db:"email"`
	Phone     string      `db:"phone"`
	Password  string      `db:"password"`
	Bookings  BookingList `db:"bookings"`
	Version   int         `db:"version"`
	model.Metadata
}
