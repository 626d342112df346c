// Package confirm_booking подтверждение заполненной формы бронирования
// Создание клиента и бронирования выполняется в одной транзакции;
// письмо подтверждения отправляется уже после коммита и его ошибка
// не отменяет сохраненное бронирование
package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
)

const (
	emailSubject = "Booking Confirmation"

	emailBodyTemplate = `Hello %s,

Your booking (ID: %d) is confirmed.
Type: %s
Date: %s
Time: %s

Thank you.`
)

// UseCase use case подтверждения бронирования
type UseCase struct {
	store        SessionStore
	customerRepo CustomerRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	mailer       Mailer
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	store SessionStore,
	customerRepo CustomerRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	mailer Mailer,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:        store,
		customerRepo: customerRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		mailer:       mailer,
		logger:       logger,
	}
}

// Execute подтверждает бронирование по заполненной форме сессии
// После успешного сохранения форма сбрасывается, сессия выходит
// из режима бронирования
func (uc *UseCase) Execute(ctx context.Context, sessionID string) (*Response, error) {
	session, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, sessionStore.ErrSessionNotFound) {
			uc.logger.Warn("ConfirmBooking: session %s not found", sessionID)
			return nil, ErrSessionNotFound
		}
		uc.logger.Error("ConfirmBooking: store error for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}

	form := session.Booking
	if !form.IsComplete() {
		uc.logger.Warn("ConfirmBooking: session %s form is incomplete", sessionID)
		return nil, ErrBookingIncomplete
	}

	var booking *domain.Booking

	// Upsert клиента и вставка бронирования атомарны: либо видим и клиента,
	// и его бронирование, либо ничего
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		customer, err := uc.customerRepo.FindOrCreate(txCtx, form.Name, form.Email, form.Phone)
		if err != nil {
			uc.logger.Error("ConfirmBooking: customer upsert failed for session %s: %v", sessionID, err)
			return fmt.Errorf("%w: customer upsert: %v", ErrInternal, err)
		}

		booking, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			CustomerID:  customer.ID,
			BookingType: form.BookingType,
			Date:        form.Date,
			Time:        form.Time,
			Status:      domain.StatusConfirmed,
		})
		if err != nil {
			uc.logger.Error("ConfirmBooking: booking insert failed for session %s: %v", sessionID, err)
			return fmt.Errorf("%w: booking insert: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("ConfirmBooking: transaction failed for session %s: %v", sessionID, err)
		return nil, fmt.Errorf("%w: transaction: %v", ErrInternal, err)
	}

	uc.logger.Info("ConfirmBooking: booking id=%d created for session %s", booking.ID, sessionID)

	resp := &Response{
		BookingID:  booking.ID,
		CustomerID: booking.CustomerID,
		Status:     string(booking.Status),
	}

	// Письмо не блокирует подтверждение: бронирование уже сохранено
	if uc.mailer != nil && uc.mailer.Configured() {
		body := fmt.Sprintf(emailBodyTemplate, form.Name, booking.ID, form.BookingType, form.Date, form.Time)
		if mailErr := uc.mailer.Send(form.Email, emailSubject, body); mailErr != nil {
			uc.logger.Warn("ConfirmBooking: confirmation mail failed for booking id=%d: %v", booking.ID, mailErr)
			resp.EmailError = mailErr.Error()
		} else {
			resp.EmailSent = true
		}
	} else {
		uc.logger.Warn("ConfirmBooking: mailer is not configured, skipping confirmation mail for booking id=%d", booking.ID)
	}

	session.ResetBooking()
	if err := uc.store.Save(ctx, session); err != nil {
		// Бронирование сохранено; несброшенная форма - меньшее зло,
		// чем потеря подтверждения
		uc.logger.Error("ConfirmBooking: failed to reset session %s after booking id=%d: %v", sessionID, booking.ID, err)
	}

	return resp, nil
}
