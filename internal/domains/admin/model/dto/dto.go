package dto

import (
	"github.com/hoangfish/HotelSystemFull/infras/jwt"
	"github.com/hoangfish/HotelSystemFull/internal/domains/admin/model"
	guestDto "github.com/hoangfish/HotelSystemFull/internal/domains/guest/model/dto"
	gModel "github.com/hoangfish/HotelSystemFull/shared/model"
	"github.com/hoangfish/HotelSystemFull/shared/timezone"

	"github.com/google/uuid"
)

type RegisterAdminRequest struct {
	FirstName string `json:"firstName" validate:"required,max=100"`
	LastName  string `json:"lastName"  validate:"required,max=100"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"required,numeric,min=10,max=11"`
	Password  string `json:"password"  validate:"required,min=6"`
}

func (r *RegisterAdminRequest) ToModel(hashedPassword string) model.Admin {
	id := uuid.NewString()

	return model.Admin{
		ID:        id,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Phone:     r.Phone,
		Password:  hashedPassword,
		GuestList: model.SnapshotList{},
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  id,
			ModifiedBy: id,
		},
	}
}

type RegisterAdminResponse struct {
	AdminID string `json:"adminId"`
}

type LoginAdminRequest struct {
	EmailOrPhone string `json:"emailOrPhone" validate:"required"`
	Password     string `json:"password"     validate:"required"`
}

type LoginAdminResponse struct {
	AdminID      string `json:"adminId"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (l *LoginAdminResponse) FromModel(admin model.Admin, tokenPair *jwt.TokenPair) {
	l.AdminID = admin.ID
	l.FirstName = admin.FirstName
	l.LastName = admin.LastName
	l.Email = admin.Email
	l.Phone = admin.Phone
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

// QueryGuestsRequest carries the admin guest-listing filters. Booker and
// RoomID are case-insensitive substring matches, CheckInDate matches the
// calendar date exactly.
type QueryGuestsRequest struct {
	Booker      string `json:"booker"`
	RoomID      string `json:"roomId"`
	CheckInDate string `json:"checkInDate" validate:"omitempty,date"`
}

type GuestSnapshotResponse struct {
	UserID    string                     `json:"userId"`
	FirstName string                     `json:"firstName"`
	LastName  string                     `json:"lastName"`
	Email     string                     `json:"email"`
	Phone     string                     `json:"phone"`
	Bookings  []guestDto.BookingResponse `json:"bookings"`
}

func (g *GuestSnapshotResponse) FromModel(snapshot model.GuestSnapshot) {
	g.UserID = snapshot.UserID
	g.FirstName = snapshot.FirstName
	g.LastName = snapshot.LastName
	g.Email = snapshot.Email
	g.Phone = snapshot.Phone

	g.Bookings = make([]guestDto.BookingResponse, len(snapshot.Bookings))
	for i, booking := range snapshot.Bookings {
		g.Bookings[i].FromModel(booking)
	}
}

type QueryGuestsResponse struct {
	Guests []GuestSnapshotResponse `json:"guests"`
}

func (q *QueryGuestsResponse) FromModels(snapshots []model.GuestSnapshot) {
	q.Guests = make([]GuestSnapshotResponse, len(snapshots))
	for i, snapshot := range snapshots {
		q.Guests[i].FromModel(snapshot)
	}
}
