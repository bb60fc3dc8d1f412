package assign_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	slotRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/slot"
)

// --- Mocks ---

type mockEventRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Event, error)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return m.getByIDFn(ctx, id)
}

type mockWindowRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Window, error)
}

func (m *mockWindowRepo) GetByID(ctx context.Context, id int64) (*domain.Window, error) {
	return m.getByIDFn(ctx, id)
}

type mockSlotRepo struct {
	getByIDFn    func(ctx context.Context, id int64) (*domain.Slot, error)
	markBookedFn func(ctx context.Context, id int64) error
}

func (m *mockSlotRepo) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockSlotRepo) MarkBooked(ctx context.Context, id int64) error {
	return m.markBookedFn(ctx, id)
}

type mockAppointmentRepo struct {
	createFn                func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	hasActiveForApplicantFn func(ctx context.Context, eventID, applicantID int64) (bool, error)
}

func (m *mockAppointmentRepo) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	return m.createFn(ctx, appt)
}

func (m *mockAppointmentRepo) HasActiveForApplicant(ctx context.Context, eventID, applicantID int64) (bool, error) {
	return m.hasActiveForApplicantFn(ctx, eventID, applicantID)
}

type mockAdmissionsClient struct {
	isEligibleFn func(ctx context.Context, applicantID int64, programID *int64) (bool, error)
}

func (m *mockAdmissionsClient) IsEligible(ctx context.Context, applicantID int64, programID *int64) (bool, error) {
	return m.isEligibleFn(ctx, applicantID, programID)
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Helpers ---

func sampleRequest() *Request {
	return &Request{
		EventID:     1,
		SlotID:      5,
		ApplicantID: 100,
		AssignedBy:  7,
	}
}

func singleCapacityEvent() *domain.Event {
	programID := int64(3)
	return &domain.Event{
		ID:           1,
		ProgramID:    &programID,
		Type:         domain.TypeInterview,
		Title:        "Entrevista de admisión",
		CreatedBy:    7,
		Status:       domain.EventStatusPublished,
		CapacityType: domain.CapacitySingle,
	}
}

func freeSlot() *domain.Slot {
	return &domain.Slot{
		ID:       5,
		WindowID: 2,
		StartsAt: time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2026, 3, 12, 9, 30, 0, 0, time.UTC),
		Status:   domain.SlotStatusFree,
	}
}

func slotWindow() *domain.Window {
	return &domain.Window{ID: 2, EventID: 1}
}

func newTestUseCase(
	events *mockEventRepo,
	windows *mockWindowRepo,
	slots *mockSlotRepo,
	appointments *mockAppointmentRepo,
	admissions *mockAdmissionsClient,
) *UseCase {
	return NewUseCase(events, windows, slots, appointments, admissions, &mockTxManager{}, nopLogger{})
}

// --- Tests ---

func TestExecute_Success(t *testing.T) {
	var bookedSlotID int64

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return singleCapacityEvent(), nil
		},
	}
	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return slotWindow(), nil
		},
	}
	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return freeSlot(), nil
		},
		markBookedFn: func(ctx context.Context, id int64) error {
			bookedSlotID = id
			return nil
		},
	}
	appointments := &mockAppointmentRepo{
		hasActiveForApplicantFn: func(ctx context.Context, eventID, applicantID int64) (bool, error) {
			return false, nil
		},
		createFn: func(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
			appt.ID = 42
			appt.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
			return appt, nil
		},
	}
	admissions := &mockAdmissionsClient{
		isEligibleFn: func(ctx context.Context, applicantID int64, programID *int64) (bool, error) {
			return true, nil
		},
	}

	uc := newTestUseCase(events, windows, slots, appointments, admissions)
	resp, err := uc.Execute(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.AppointmentID)
	assert.Equal(t, int64(5), resp.SlotID)
	assert.Equal(t, int64(100), resp.ApplicantID)
	assert.Equal(t, string(domain.AppointmentStatusActive), resp.Status)
	assert.Equal(t, time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC), resp.StartsAt)
	assert.Equal(t, int64(5), bookedSlotID)
}

func TestExecute_NotEligible(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return singleCapacityEvent(), nil
		},
	}
	admissions := &mockAdmissionsClient{
		isEligibleFn: func(ctx context.Context, applicantID int64, programID *int64) (bool, error) {
			return false, nil
		},
	}

	uc := newTestUseCase(events, &mockWindowRepo{}, &mockSlotRepo{}, &mockAppointmentRepo{}, admissions)
	resp, err := uc.Execute(context.Background(), sampleRequest())

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotEligible)
}

func TestExecute_SlotNotFree(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return singleCapacityEvent(), nil
		},
	}
	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return slotWindow(), nil
		},
	}
	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			s := freeSlot()
			s.Status = domain.SlotStatusBooked
			return s, nil
		},
		markBookedFn: func(ctx context.Context, id int64) error {
			return slotRepo.ErrSlotNotFree
		},
	}
	appointments := &mockAppointmentRepo{
		hasActiveForApplicantFn: func(ctx context.Context, eventID, applicantID int64) (bool, error) {
			return false, nil
		},
	}
	admissions := &mockAdmissionsClient{
		isEligibleFn: func(ctx context.Context, applicantID int64, programID *int64) (bool, error) {
			return true, nil
		},
	}

	uc := newTestUseCase(events, windows, slots, appointments, admissions)
	_, err := uc.Execute(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrSlotNotFree)
}

func TestExecute_ApplicantAlreadyBooked(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return singleCapacityEvent(), nil
		},
	}
	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return slotWindow(), nil
		},
	}
	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return freeSlot(), nil
		},
	}
	appointments := &mockAppointmentRepo{
		hasActiveForApplicantFn: func(ctx context.Context, eventID, applicantID int64) (bool, error) {
			return true, nil
		},
	}
	admissions := &mockAdmissionsClient{
		isEligibleFn: func(ctx context.Context, applicantID int64, programID *int64) (bool, error) {
			return true, nil
		},
	}

	uc := newTestUseCase(events, windows, slots, appointments, admissions)
	_, err := uc.Execute(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrAlreadyBooked)
}

func TestExecute_SlotBelongsToAnotherEvent(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return singleCapacityEvent(), nil
		},
	}
	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return &domain.Window{ID: 2, EventID: 99}, nil
		},
	}
	slots := &mockSlotRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Slot, error) {
			return freeSlot(), nil
		},
	}
	admissions := &mockAdmissionsClient{
		isEligibleFn: func(ctx context.Context, applicantID int64, programID *int64) (bool, error) {
			return true, nil
		},
	}

	uc := newTestUseCase(events, windows, slots, &mockAppointmentRepo{}, admissions)
	_, err := uc.Execute(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_NotSingleCapacityEvent(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			ev := singleCapacityEvent()
			ev.CapacityType = domain.CapacityUnlimited
			return ev, nil
		},
	}

	uc := newTestUseCase(events, &mockWindowRepo{}, &mockSlotRepo{}, &mockAppointmentRepo{}, &mockAdmissionsClient{})
	_, err := uc.Execute(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrNotSingleCapacity)
}

func TestExecute_EventNotFound(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return nil, eventRepo.ErrEventNotFound
		},
	}

	uc := newTestUseCase(events, &mockWindowRepo{}, &mockSlotRepo{}, &mockAppointmentRepo{}, &mockAdmissionsClient{})
	_, err := uc.Execute(context.Background(), sampleRequest())

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockEventRepo{}, &mockWindowRepo{}, &mockSlotRepo{}, &mockAppointmentRepo{}, &mockAdmissionsClient{})

	req := sampleRequest()
	req.ApplicantID = 0

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
