package dto

import (
	"github.com/hoangfish/HotelSystemFull/infras/jwt"
	"github.com/hoangfish/HotelSystemFull/internal/domains/guest/model"
	"github.com/hoangfish/HotelSystemFull/shared/constant"
	gModel "github.com/hoangfish/HotelSystemFull/shared/model"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"

	"github.com/google/uuid"
)

type RegisterGuestRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required,numeric,min=10,max=11"`
	Password  string `json:"password"  validate:"required,min=6"`
}

func (r *RegisterGuestRequest) ToModel(hashedPassword string) model.Guest {
	id := uuid.NewString()

	return model.Guest{
		ID:        id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  hashedPassword,
		Bookings:  model.BookingList{},
		Version:   1,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type RegisterGuestResponse struct {
	UserID string `json:"userId"`
}

type LoginGuestRequest struct {
	EmailOrPhone string `json:"emailOrPhone" validate:"required"`
	Password     string `json:"password"     validate:"required"`
}

type LoginGuestResponse struct {
	UserID       string `json:"userId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginGuestResponse) FromModel(guest model.Guest, tokenPair *jwt.TokenPair) {
	l.UserID = guest.ID
	l.FirstName = guest.FirstName
	l.LastName = guest.LastName
	l.Email = guest.Email
	l.Phone = guest.Phone
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type BookingResponse struct {
	BookingCode  string  `json:"bookingCode"`
	RoomID       string  `json:"roomId"`
	RoomNumber   string  `json:"roomNumber"`
	Price        float64 `json:"price"`
	CheckInDate  string  `json:"checkInDate"`
	CheckOutDate string  `json:"checkOutDate"`
	IsCheckIn    bool    `json:"isCheckIn"`
	IsCheckOut   bool    `json:"isCheckOut"`
	Status       string  `json:"status"`
}

func (b *BookingResponse) FromModel(booking model.Booking) {
	b.BookingCode = booking.BookingCode
	b.RoomID = booking.RoomID
	b.RoomNumber = booking.RoomNumber
	b.Price = booking.Price
	b.CheckInDate = timezone.Format(booking.CheckInDate, constant.DateOnlyFormat)
	b.CheckOutDate = timezone.Format(booking.CheckOutDate, constant.DateOnlyFormat)
	b.IsCheckIn = booking.IsCheckIn
	b.IsCheckOut = booking.IsCheckOut
	b.Status = booking.Status
}

type GetBookingsResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

func (g *GetBookingsResponse) FromModels(bookings model.BookingList) {
	g.Bookings = make([]BookingResponse, len(bookings))
	for i, booking := range bookings {
		g.Bookings[i].FromModel(booking)
	}
}
