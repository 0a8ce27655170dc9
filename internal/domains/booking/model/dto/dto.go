package dto

import (
	guestDto "github.com/hoangfish/HotelSystemFull/internal/domains/guest/model/dto"
)

const (
	ActionCancel   = "cancel"
	ActionCheckIn  = "checkIn"
	ActionCheckOut = "checkOut"
)

type CreateBookingRequest struct {
	UserID       string `json:"userId"       validate:"required"`
	RoomID       string `json:"roomId"       validate:"required"`
	BookingCode  string `json:"bookingCode"  validate:"omitempty,max=64"`
	CheckInDate  string `json:"checkInDate"  validate:"required,date"`
	CheckOutDate string `json:"checkOutDate" validate:"required,date"`
}

// CreateBookingResponse returns the guest's full booking list after the
// append, matching what the guest sees on their own listing.
type CreateBookingResponse struct {
	Bookings []guestDto.BookingResponse `json:"bookings"`
}

// TransitionRequest drives a booking through its lifecycle. UserID is
// optional, without it the owning guest is located by booking code.
type TransitionRequest struct {
	UserID      string `json:"userId"      validate:"omitempty"`
	RoomID      string `json:"roomId"      validate:"omitempty"`
	BookingCode string `json:"bookingCode" validate:"required"`
	Action      string `json:"action"      validate:"required"`
}

type TransitionResponse struct {
	BookingCode string `json:"bookingCode"`
	Action      string `json:"action"`
	RoomID      string `json:"roomId"`
}
