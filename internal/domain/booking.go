package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
)

// Customer represents a customer record
// Email является естественным ключом дедупликации: повторное бронирование
// с тем же email переиспользует существующую запись
type Customer struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	CreatedAt time.Time
}

// Booking represents a confirmed booking in the system
// Запись неизменяема после создания - операций отмены и обновления нет
type Booking struct {
	ID          int64
	CustomerID  int64
	BookingType string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Status      BookingStatus
	CreatedAt   time.Time
}

// BookingRecord строка списка бронирований для админ-панели
// Содержит денормализованные данные клиента из join с customers
type BookingRecord struct {
	ID          int64
	BookingType string
	Date        string
	Time        string
	Status      BookingStatus
	Name        string
	Email       string
	Phone       string
	CreatedAt   time.Time
}

// BookingsFilter фильтр для списка бронирований в админ-панели
// Name и Email - частичное совпадение, Date - точное
type BookingsFilter struct {
	Name  *string
	Email *string
	Date  *string
}
