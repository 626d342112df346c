package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AssistantService/internal/domain"
	sessionStore "github.com/m04kA/SMC-AssistantService/internal/infra/session"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// fakeCustomerRepo повторяет семантику upsert по email: существующая
// запись переиспользуется, имя и телефон не обновляются
type fakeCustomerRepo struct {
	byEmail map[string]*domain.Customer
	nextID  int64
	err     error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byEmail: make(map[string]*domain.Customer), nextID: 1}
}

func (f *fakeCustomerRepo) FindOrCreate(ctx context.Context, name, email, phone string) (*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.byEmail[email]; ok {
		return existing, nil
	}
	customer := &domain.Customer{ID: f.nextID, Name: name, Email: email, Phone: phone}
	f.nextID++
	f.byEmail[email] = customer
	return customer, nil
}

type fakeBookingRepo struct {
	nextID   int64
	err      error
	bookings []*domain.Booking
}

func (f *fakeBookingRepo) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.nextID++
	booking.ID = f.nextID
	f.bookings = append(f.bookings, booking)
	return booking, nil
}

// fakeTxManager прогоняет fn без реальной транзакции, фиксируя факт вызова
type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fakeMailer struct {
	configured bool
	err        error

	to      string
	subject string
	body    string
	sent    int
}

func (f *fakeMailer) Configured() bool {
	return f.configured
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.sent++
	f.to = to
	f.subject = subject
	f.body = body
	return nil
}

func completeForm() domain.BookingState {
	return domain.BookingState{
		Name:        "Ann",
		Email:       "ann@x.com",
		Phone:       "555-0101",
		BookingType: "haircut",
		Date:        "2024-05-01",
		Time:        "10:00",
	}
}

type env struct {
	store     *sessionStore.MemoryStore
	customers *fakeCustomerRepo
	bookings  *fakeBookingRepo
	tx        *fakeTxManager
	mailer    *fakeMailer
	uc        *UseCase
}

func newEnv(t *testing.T, form domain.BookingState) *env {
	t.Helper()

	e := &env{
		store:     sessionStore.NewMemoryStore(),
		customers: newFakeCustomerRepo(),
		bookings:  &fakeBookingRepo{},
		tx:        &fakeTxManager{},
		mailer:    &fakeMailer{configured: true},
	}
	require.NoError(t, e.store.Save(context.Background(), &domain.Session{
		ID:          "s1",
		Booking:     form,
		BookingMode: true,
	}))
	e.uc = NewUseCase(e.store, e.customers, e.bookings, e.tx, e.mailer, nopLogger{})
	return e
}

func TestExecute_CreatesBookingAndSendsMail(t *testing.T) {
	e := newEnv(t, completeForm())

	resp, err := e.uc.Execute(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.BookingID)
	assert.Equal(t, "confirmed", resp.Status)
	assert.True(t, resp.EmailSent)
	assert.Empty(t, resp.EmailError)

	assert.Equal(t, 1, e.tx.calls)
	require.Len(t, e.bookings.bookings, 1)
	assert.Equal(t, "haircut", e.bookings.bookings[0].BookingType)

	assert.Equal(t, "ann@x.com", e.mailer.to)
	assert.Equal(t, "Booking Confirmation", e.mailer.subject)
	assert.Contains(t, e.mailer.body, "Hello Ann,")
	assert.Contains(t, e.mailer.body, fmt.Sprintf("(ID: %d)", resp.BookingID))
	assert.Contains(t, e.mailer.body, "Date: 2024-05-01")
}

func TestExecute_ResetsFormAfterConfirmation(t *testing.T) {
	e := newEnv(t, completeForm())

	_, err := e.uc.Execute(context.Background(), "s1")
	require.NoError(t, err)

	session, err := e.store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingState{}, session.Booking)
	assert.False(t, session.BookingMode)
}

func TestExecute_IncompleteForm(t *testing.T) {
	form := completeForm()
	form.Phone = ""
	e := newEnv(t, form)

	_, err := e.uc.Execute(context.Background(), "s1")

	assert.ErrorIs(t, err, ErrBookingIncomplete)
	assert.Equal(t, 0, e.tx.calls)
	assert.Equal(t, 0, e.mailer.sent)
}

func TestExecute_SessionNotFound(t *testing.T) {
	e := newEnv(t, completeForm())

	_, err := e.uc.Execute(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestExecute_SameEmailReusesCustomer(t *testing.T) {
	e := newEnv(t, completeForm())

	resp1, err := e.uc.Execute(context.Background(), "s1")
	require.NoError(t, err)

	// Вторая сессия с тем же email, но другим именем
	form := completeForm()
	form.Name = "Annette"
	require.NoError(t, e.store.Save(context.Background(), &domain.Session{ID: "s2", Booking: form}))

	resp2, err := e.uc.Execute(context.Background(), "s2")
	require.NoError(t, err)

	assert.Equal(t, resp1.CustomerID, resp2.CustomerID)
	assert.NotEqual(t, resp1.BookingID, resp2.BookingID)
	assert.Equal(t, "Ann", e.customers.byEmail["ann@x.com"].Name)
}

func TestExecute_MailFailureDoesNotFailBooking(t *testing.T) {
	e := newEnv(t, completeForm())
	e.mailer.err = errors.New("smtp unreachable")

	resp, err := e.uc.Execute(context.Background(), "s1")

	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Contains(t, resp.EmailError, "smtp unreachable")
	assert.Len(t, e.bookings.bookings, 1)

	// Форма все равно сброшена
	session, err := e.store.Get(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.BookingState{}, session.Booking)
}

func TestExecute_MailerNotConfigured(t *testing.T) {
	e := newEnv(t, completeForm())
	e.mailer.configured = false

	resp, err := e.uc.Execute(context.Background(), "s1")

	require.NoError(t, err)
	assert.False(t, resp.EmailSent)
	assert.Empty(t, resp.EmailError)
	assert.Equal(t, 0, e.mailer.sent)
}

func TestExecute_RepositoryErrorRollsUp(t *testing.T) {
	e := newEnv(t, completeForm())
	e.bookings.err = errors.New("insert failed")

	_, err := e.uc.Execute(context.Background(), "s1")

	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 0, e.mailer.sent)

	// Форма не сбрасывается при неудачном подтверждении
	session, storeErr := e.store.Get(context.Background(), "s1")
	require.NoError(t, storeErr)
	assert.True(t, session.Booking.IsComplete())
}
