package confirm_booking

// Response результат подтверждения бронирования
// EmailSent=false с пустым EmailError означает, что почта не настроена
type Response struct {
	BookingID  int64
	CustomerID int64
	Status     string
	EmailSent  bool
	EmailError string
}
