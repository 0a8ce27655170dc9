package model

import "github.com/hoangfish/HotelSystemFull/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldRoomNumber  = "room_number"
	FieldStatus      = "status"
	FieldBedCount    = "bed_count"
	FieldRoomType    = "room_type"
	FieldPrice       = "price"
	FieldDescription = "description"
	FieldImage       = "image"
	FieldGuests      = "guests"
	FieldArea        = "area"
)

// Room availability is a single flag, not a date range. A room is either
// free or taken regardless of the booking dates attached to it.
const (
	StatusAvailable = "available"
	StatusBooked    = "booked"
)

const (
	TypeSingle = "single"
	TypeDouble = "double"
	TypeFamily = "family"
)

type Room struct {
	ID          string  `db:"id"`
	RoomNumber  string  `db:"room_number"`
	Status      string  `db:"status"`
	BedCount    int     `db:"bed_count"`
	RoomType    string  `db:"room_type"`
	Price       float64 `db:"price"`
	Description string  `db:"description"`
	Image       string  `db:"image"`
	Guests      int     `db:"guests"`
	Area        string  `db:"area"`
	model.Metadata
}
