package delete_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	appointmentRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/appointment"
	slotRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/slot"
	"github.com/m04kA/ADM-SchedulingService/internal/integrations/admissions"
)

// --- Mocks ---

type mockSlotRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Slot, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSlotRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockAppointmentRepo struct {
	getActiveBySlotFn func(ctx context.Context, slotID int64) (*domain.Appointment, error)
	cancelFn          func(ctx context.Context, id int64, reason *string) error
}

func (m *mockAppointmentRepo) GetActiveBySlot(ctx context.Context, slotID int64) (*domain.Appointment, error) {
	return m.getActiveBySlotFn(ctx, slotID)
}

func (m *mockAppointmentRepo) Cancel(ctx context.Context, id int64, reason *string) error {
	return m.cancelFn(ctx, id, reason)
}

type mockAdmissionsClient struct {
	getApplicantFn func(ctx context.Context, applicantID int64) (*admissions.Applicant, error)
}

func (m *mockAdmissionsClient) GetApplicant(ctx context.Context, applicantID int64) (*admissions.Applicant, error) {
	return m.getApplicantFn(ctx, applicantID)
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

func bookedSlot() *domain.Slot {
	return &domain.Slot{
		ID:       5,
		WindowID: 2,
		StartsAt: time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC),
		Status:   domain.SlotStatusBooked,
	}
}

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

func TestExecute_FreeSlotDeleted(t *testing.T) {
	var deletedID int64

	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			s := bookedSlot()
			s.Status = domain.SlotStatusFree
			return s, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}

	uc := NewUseCase(slots, &mockAppointmentRepo{}, &mockAdmissionsClient{}, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{SlotID: 5, Force: false})

	require.NoError(t, err)
	assert.Equal(t, int64(5), deletedID)
	assert.Equal(t, int64(0), resp.CancelledAppointments)
}

func TestExecute_BookedSlotRequiresForce(t *testing.T) {
	var deleteCalled bool

	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return bookedSlot(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleteCalled = true
			return nil
		},
	}
	appointments := &mockAppointmentRepo{
		getActiveBySlotFn: func(ctx context.Context, slotID int64) (*domain.Appointment, error) {
			return activeAppointment(), nil
		},
	}
	clients := &mockAdmissionsClient{
		getApplicantFn: func(ctx context.Context, applicantID int64) (*admissions.Applicant, error) {
			return &admissions.Applicant{ID: applicantID, FullName: "María García"}, nil
		},
	}

	uc := NewUseCase(slots, appointments, clients, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{SlotID: 5, Force: false})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrRequiresForce)
	assert.False(t, deleteCalled)

	var forceErr *domain.RequiresForceError
	require.ErrorAs(t, err, &forceErr)
	assert.Equal(t, 1, forceErr.BookedSlots)
	assert.Equal(t, "María García", forceErr.ApplicantName)
}

func TestExecute_ForceResponseFallsBackToApplicantID(t *testing.T) {
	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return bookedSlot(), nil
		},
	}
	appointments := &mockAppointmentRepo{
		getActiveBySlotFn: func(ctx context.Context, slotID int64) (*domain.Appointment, error) {
			return activeAppointment(), nil
		},
	}
	clients := &mockAdmissionsClient{
		getApplicantFn: func(ctx context.Context, applicantID int64) (*admissions.Applicant, error) {
			return nil, admissions.ErrApplicantNotFound
		},
	}

	uc := NewUseCase(slots, appointments, clients, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{SlotID: 5, Force: false})

	var forceErr *domain.RequiresForceError
	require.ErrorAs(t, err, &forceErr)
	assert.Equal(t, "#100", forceErr.ApplicantName)
}

func TestExecute_ForceCancelsAppointment(t *testing.T) {
	// Порядок каскада: отмена записи -> удаление слота
	var order []string
	var lookupCalled bool

	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return bookedSlot(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			order = append(order, "slot")
			return nil
		},
	}
	appointments := &mockAppointmentRepo{
		getActiveBySlotFn: func(ctx context.Context, slotID int64) (*domain.Appointment, error) {
			return activeAppointment(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason *string) error {
			order = append(order, "appointment")
			require.NotNil(t, reason)
			assert.NotEmpty(t, *reason)
			return nil
		},
	}
	clients := &mockAdmissionsClient{
		getApplicantFn: func(ctx context.Context, applicantID int64) (*admissions.Applicant, error) {
			lookupCalled = true
			return nil, nil
		},
	}

	uc := NewUseCase(slots, appointments, clients, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{SlotID: 5, Force: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"appointment", "slot"}, order)
	assert.Equal(t, int64(1), resp.CancelledAppointments)
	assert.False(t, lookupCalled)
}

func TestExecute_BookedSlotWithoutAppointment(t *testing.T) {
	// Статус booked без активной записи: каскад завершает удаление без отмен
	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return bookedSlot(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			return nil
		},
	}
	appointments := &mockAppointmentRepo{
		getActiveBySlotFn: func(ctx context.Context, slotID int64) (*domain.Appointment, error) {
			return nil, appointmentRepo.ErrAppointmentNotFound
		},
	}

	uc := NewUseCase(slots, appointments, &mockAdmissionsClient{}, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{SlotID: 5, Force: true})

	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.CancelledAppointments)
}

func TestExecute_SlotNotFound(t *testing.T) {
	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return nil, slotRepo.ErrSlotNotFound
		},
	}

	uc := NewUseCase(slots, &mockAppointmentRepo{}, &mockAdmissionsClient{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{SlotID: 404})

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_CancelFailureAbortsDeletion(t *testing.T) {
	var deleteCalled bool

	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return bookedSlot(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deleteCalled = true
			return nil
		},
	}
	appointments := &mockAppointmentRepo{
		getActiveBySlotFn: func(ctx context.Context, slotID int64) (*domain.Appointment, error) {
			return activeAppointment(), nil
		},
		cancelFn: func(ctx context.Context, id int64, reason *string) error {
			return errors.New("db connection failed")
		},
	}

	uc := NewUseCase(slots, appointments, &mockAdmissionsClient{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{SlotID: 5, Force: true})

	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, deleteCalled)
}

func TestExecute_InvalidSlotID(t *testing.T) {
	uc := NewUseCase(&mockSlotRepo{}, &mockAppointmentRepo{}, &mockAdmissionsClient{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{SlotID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
