package dto

import (
	"time"

	"shareit/internal/models"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ItemResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

type BookingResponse struct {
	ID     int64                `json:"id"`
	Start  time.Time            `json:"start"`
	End    time.Time            `json:"end"`
	Status models.BookingStatus `json:"status"`
	Booker *UserResponse        `json:"booker,omitempty"`
	Item   *ItemResponse        `json:"item,omitempty"`
}

// BookingShortResponse is the compact view embedded in item responses.
type BookingShortResponse struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

type CommentResponse struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

type ItemWithBookingsResponse struct {
	ID          int64                 `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Available   bool                  `json:"available"`
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
}

type ItemRequestResponse struct {
	ID          int64          `json:"id"`
	Description string         `json:"description"`
	Created     time.Time      `json:"created"`
	Items       []ItemResponse `json:"items"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func ToUserResponseList(users []models.User) []UserResponse {
	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = ToUserResponse(&u)
	}
	return resp
}

func ToItemResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		RequestID:   item.RequestID,
	}
}

func ToItemResponseList(items []models.Item) []ItemResponse {
	resp := make([]ItemResponse, len(items))
	for i, item := range items {
		resp[i] = ToItemResponse(&item)
	}
	return resp
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	resp := BookingResponse{
		ID:     b.ID,
		Start:  b.Start,
		End:    b.End,
		Status: b.Status,
	}
	if b.Booker != nil {
		booker := ToUserResponse(b.Booker)
		resp.Booker = &booker
	}
	if b.Item != nil {
		item := ToItemResponse(b.Item)
		resp.Item = &item
	}
	return resp
}

func ToBookingResponseList(bookings []models.Booking) []BookingResponse {
	resp := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = ToBookingResponse(&b)
	}
	return resp
}

func ToBookingShortResponse(b *models.Booking) *BookingShortResponse {
	if b == nil {
		return nil
	}
	return &BookingShortResponse{ID: b.ID, BookerID: b.BookerID}
}

func ToCommentResponse(c *models.Comment) CommentResponse {
	resp := CommentResponse{ID: c.ID, Text: c.Text, Created: c.Created}
	if c.Author != nil {
		resp.AuthorName = c.Author.Name
	}
	return resp
}

func ToCommentResponseList(comments []models.Comment) []CommentResponse {
	resp := make([]CommentResponse, len(comments))
	for i, c := range comments {
		resp[i] = ToCommentResponse(&c)
	}
	return resp
}

func ToItemWithBookingsResponse(item *models.Item, last, next *models.Booking, comments []models.Comment) ItemWithBookingsResponse {
	return ItemWithBookingsResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		LastBooking: ToBookingShortResponse(last),
		NextBooking: ToBookingShortResponse(next),
		Comments:    ToCommentResponseList(comments),
	}
}

func ToItemRequestResponse(r *models.ItemRequest, items []models.Item) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     r.Created,
		Items:       ToItemResponseList(items),
	}
}
