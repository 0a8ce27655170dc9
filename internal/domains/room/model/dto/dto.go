package dto

import (
	"github.com/hoangfish/HotelSystemFull/internal/domains/room/model"
	"github.com/hoangfish/HotelSystemFull/shared"
	gModel "github.com/hoangfish/HotelSystemFull/shared/model"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"
)

type CreateRoomRequest struct {
	RoomID      string  `json:"roomId"      validate:"required,max=64"`
	RoomNumber  string  `json:"roomNumber"  validate:"required,max=16"`
	Status      string  `json:"status"      validate:"omitempty,oneof=available booked"`
	BedCount    int     `json:"bedCount"    validate:"required,min=1"`
	RoomType    string  `json:"roomType"    validate:"required,oneof=single double family"`
	Price       float64 `json:"price"       validate:"required,min=0"`
	Description string  `json:"description" validate:"required"`
	Image       string  `json:"image"       validate:"required"`
	Guests      int     `json:"guests"      validate:"required,min=1"`
	Area        string  `json:"area"        validate:"required"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:          c.RoomID,
		RoomNumber:  c.RoomNumber,
		Status:      status,
		BedCount:    c.BedCount,
		RoomType:    c.RoomType,
		Price:       c.Price,
		Description: c.Description,
		Image:       c.Image,
		Guests:      c.Guests,
		Area:        c.Area,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BulkCreateRoomsRequest struct {
	Rooms []CreateRoomRequest `json:"rooms" validate:"required,min=1"`
}

// BulkCreateRoomsResponse reports the rooms that made it in alongside the
// per-index reasons for the ones that did not.
type BulkCreateRoomsResponse struct {
	Created []RoomResponse `json:"created"`
	Errors  []string       `json:"errors"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=available booked"`
}

type BookRoomRequest struct {
	RoomID string `json:"roomId" validate:"required"`
	UserID string `json:"userId" validate:"required"`
}

type BookRoomResponse struct {
	RoomID     string `json:"roomId"`
	RoomNumber string `json:"roomNumber"`
}

type UploadRoomImageResponse struct {
	Image string `json:"image"`
}

type RoomResponse struct {
	RoomID      string  `json:"roomId"`
	RoomNumber  string  `json:"roomNumber"`
	Status      string  `json:"status"`
	BedCount    int     `json:"bedCount"`
	RoomType    string  `json:"roomType"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Guests      int     `json:"guests"`
	Area        string  `json:"area"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.RoomID = model.ID
	r.RoomNumber = model.RoomNumber
	r.Status = model.Status
	r.BedCount = model.BedCount
	r.RoomType = model.RoomType
	r.Price = model.Price
	r.Description = model.Description
	r.Image = model.Image
	r.Guests = model.Guests
	r.Area = model.Area
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
