package cancel_appointment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/appointment"
)

// --- Mocks ---

type mockAppointmentRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Appointment, error)
	cancelFn  func(ctx context.Context, id int64, reason *string) error
}

func (m *mockAppointmentRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockAppointmentRepo) Cancel(ctx context.Context, id int64, reason *string) error {
	return m.cancelFn(ctx, id, reason)
}

type mockSlotRepo struct {
	releaseFn func(ctx context.Context, id int64) error
}

func (m *mockSlotRepo) Release(ctx context.Context, id int64) error {
	return m.releaseFn(ctx, id)
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Helpers ---

func activeAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:          42,
		EventID:     1,
		SlotID:      5,
		ApplicantID: 100,
		AssignedBy:  7,
		Status:      domain.AppointmentStatusActive,
	}
}

// --- Tests ---

func TestExecute_Success(t *testing.T) {
	var cancelledID, releasedSlotID int64
	var passedReason *string

	appointments := &mockAppointmentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return activeAppointment(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason *string) error {
			cancelledID = id
			passedReason = reason
			return nil
		},
	}
	slots := &mockSlotRepo{
		releaseFn: func(ctx context.Context, id int64) error {
			releasedSlotID = id
			return nil
		},
	}

	reason := "el aspirante no puede asistir"
	uc := NewUseCase(appointments, slots, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, CancellationReason: &reason})

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.AppointmentID)
	assert.Equal(t, int64(5), resp.SlotID)
	assert.Equal(t, string(domain.AppointmentStatusCancelled), resp.Status)
	assert.False(t, resp.AlreadyDone)

	assert.Equal(t, int64(42), cancelledID)
	assert.Equal(t, int64(5), releasedSlotID)
	require.NotNil(t, passedReason)
	assert.Equal(t, reason, *passedReason)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	var cancelCalled, releaseCalled bool

	appointments := &mockAppointmentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			appt := activeAppointment()
			appt.Status = domain.AppointmentStatusCancelled
			return appt, nil
		},
		cancelFn: func(ctx context.Context, id int64, reason *string) error {
			cancelCalled = true
			return nil
		},
	}
	slots := &mockSlotRepo{
		releaseFn: func(ctx context.Context, id int64) error {
			releaseCalled = true
			return nil
		},
	}

	uc := NewUseCase(appointments, slots, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})

	require.NoError(t, err)
	assert.True(t, resp.AlreadyDone)
	assert.False(t, cancelCalled)
	assert.False(t, releaseCalled)
}

func TestExecute_CancelRace(t *testing.T) {
	// Запись отменили между чтением и обновлением - операция остается успешной
	appointments := &mockAppointmentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return activeAppointment(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason *string) error {
			return appointmentRepo.ErrAppointmentNotFound
		},
	}

	uc := NewUseCase(appointments, &mockSlotRepo{}, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 42})

	require.NoError(t, err)
	assert.True(t, resp.AlreadyDone)
	assert.Equal(t, string(domain.AppointmentStatusCancelled), resp.Status)
}

func TestExecute_AppointmentNotFound(t *testing.T) {
	appointments := &mockAppointmentRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}

	uc := NewUseCase(appointments, &mockSlotRepo{}, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{AppointmentID: 404})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_ReasonTooLong(t *testing.T) {
	reason := strings.Repeat("x", domain.MaxCancellationReasonLength+1)

	uc := NewUseCase(&mockAppointmentRepo{}, &mockSlotRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{AppointmentID: 42, CancellationReason: &reason})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
