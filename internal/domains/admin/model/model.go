package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	guestModel "github.com/hoangfish/HotelSystemFull/internal/domains/guest/model"
	"github.com/hoangfish/HotelSystemFull/shared/model"
)

const (
	TableName  = "admins"
	EntityName = "admin"

	FieldID        = "id"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldGuestList = "guest_list"
)

// GuestSnapshot is the denormalized copy of a guest kept on the admin
// aggregate. It trails the guest ledger and is refreshed on lifecycle
// operations, logins, and empty-mirror rebuilds.
type GuestSnapshot struct {
	UserID    string                 `json:"userId"`
	FirstName string                 `json:"firstName"`
	LastName  string                 `json:"lastName"`
	Email     string                 `json:"email"`
	Phone     string                 `json:"phone"`
	Bookings  guestModel.BookingList `json:"bookings"`
}

func SnapshotFromGuest(guest guestModel.Guest) GuestSnapshot {
	return GuestSnapshot{
		UserID:    guest.ID,
		FirstName: guest.FirstName,
		LastName:  guest.LastName,
		Email:     guest.Email,
		Phone:     guest.Phone,
		Bookings:  guest.Bookings,
	}
}

type SnapshotList []GuestSnapshot

func (s SnapshotList) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal guest snapshot list: %w", err)
	}

	return string(raw), nil
}

func (s *SnapshotList) Scan(src any) error {
	if src == nil {
		*s = SnapshotList{}

		return nil
	}

	var raw []byte

	switch v := src.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return errors.New("unsupported source type for guest snapshot list")
	}

	if err := json.Unmarshal(raw, s); err != nil {
		return fmt.Errorf("failed to unmarshal guest snapshot list: %w", err)
	}

	return nil
}

// IndexOf returns the position of the snapshot for the given guest, or -1.
func (s SnapshotList) IndexOf(userID string) int {
	for i := range s {
		if s[i].UserID == userID {
			return i
		}
	}

	return -1
}

type Admin struct {
	ID        string       `db:"id"`
	FirstName string       `db:"first_name"`
	LastName  string       `db:"last_name"`
	Email     string       `db:"email"`
	Phone     string       `db:"phone"`
	Password  string       `db:"password"`
	GuestList SnapshotList `db:"guest_list"`
	model.Metadata
}
