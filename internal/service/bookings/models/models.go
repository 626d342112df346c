package models

import (
	"time"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
)

// BookingResponse бронирование в ответе админ-панели
type BookingResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	BookingType string    `json:"booking_type"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingListResponse список бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// ListBookingsRequest параметры фильтрации списка бронирований
// nil означает отсутствие фильтра по полю
type ListBookingsRequest struct {
	Name  *string
	Email *string
	Date  *string
}

// ToDomainFilter конвертирует запрос в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() domain.BookingsFilter {
	return domain.BookingsFilter{
		Name:  r.Name,
		Email: r.Email,
		Date:  r.Date,
	}
}

// FromDomainBooking конвертирует domain запись в response
func FromDomainBooking(record *domain.BookingRecord) *BookingResponse {
	return &BookingResponse{
		ID:          record.ID,
		Name:        record.Name,
		Email:       record.Email,
		Phone:       record.Phone,
		BookingType: record.BookingType,
		Date:        record.Date,
		Time:        record.Time,
		Status:      string(record.Status),
		CreatedAt:   record.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain записей в response
func FromDomainBookingList(records []*domain.BookingRecord) *BookingListResponse {
	bookings := make([]BookingResponse, 0, len(records))
	for _, record := range records {
		bookings = append(bookings, *FromDomainBooking(record))
	}
	return &BookingListResponse{
		Bookings: bookings,
		Total:    len(bookings),
	}
}
