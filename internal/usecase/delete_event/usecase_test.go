package delete_event

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
)

// --- Mocks ---

type mockEventRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Event, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockEventRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockWindowRepo struct {
	deleteByEventFn func(ctx context.Context, eventID int64) (int64, error)
}

func (m *mockWindowRepo) DeleteByEvent(ctx context.Context, eventID int64) (int64, error) {
	return m.deleteByEventFn(ctx, eventID)
}

type mockSlotRepo struct {
	countBookedByEventFn func(ctx context.Context, eventID int64) (int, error)
	deleteByEventFn      func(ctx context.Context, eventID int64) (int64, error)
}

func (m *mockSlotRepo) CountBookedByEvent(ctx context.Context, eventID int64) (int, error) {
	return m.countBookedByEventFn(ctx, eventID)
}

func (m *mockSlotRepo) DeleteByEvent(ctx context.Context, eventID int64) (int64, error) {
	return m.deleteByEventFn(ctx, eventID)
}

type mockAppointmentRepo struct {
	cancelAllByEventFn func(ctx context.Context, eventID int64, reason string) (int64, error)
}

func (m *mockAppointmentRepo) CancelAllByEvent(ctx context.Context, eventID int64, reason string) (int64, error) {
	return m.cancelAllByEventFn(ctx, eventID, reason)
}

type mockRegistrationRepo struct {
	countByEventFn  func(ctx context.Context, eventID int64) (int, error)
	deleteByEventFn func(ctx context.Context, eventID int64) (int64, error)
}

func (m *mockRegistrationRepo) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	return m.countByEventFn(ctx, eventID)
}

func (m *mockRegistrationRepo) DeleteByEvent(ctx context.Context, eventID int64) (int64, error) {
	return m.deleteByEventFn(ctx, eventID)
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

func existingEvent() *domain.Event {
	return &domain.Event{
		ID:           1,
		Type:         domain.TypeInterview,
		Title:        "Entrevista de admisión",
		CreatedBy:    7,
		Status:       domain.EventStatusPublished,
		CapacityType: domain.CapacitySingle,
	}
}

// --- Tests ---

func TestExecute_CleanEventDeleted(t *testing.T) {
	var deletedEventID int64

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return existingEvent(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deletedEventID = id
			return nil
		},
	}
	windows := &mockWindowRepo{
		deleteByEventFn: func(ctx context.Context, eventID int64) (int64, error) { return 2, nil },
	}
	slots := &mockSlotRepo{
		countBookedByEventFn: func(ctx context.Context, eventID int64) (int, error) { return 0, nil },
		deleteByEventFn:      func(ctx context.Context, eventID int64) (int64, error) { return 8, nil },
	}
	appointments := &mockAppointmentRepo{
		cancelAllByEventFn: func(ctx context.Context, eventID int64, reason string) (int64, error) { return 0, nil },
	}
	registrations := &mockRegistrationRepo{
		countByEventFn:  func(ctx context.Context, eventID int64) (int, error) { return 0, nil },
		deleteByEventFn: func(ctx context.Context, eventID int64) (int64, error) { return 0, nil },
	}

	uc := NewUseCase(events, windows, slots, appointments, registrations, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{EventID: 1, Force: false})

	require.NoError(t, err)
	assert.Equal(t, int64(1), deletedEventID)
	assert.Equal(t, int64(8), resp.DeletedSlots)
	assert.Equal(t, int64(2), resp.DeletedWindows)
	assert.Equal(t, int64(0), resp.CancelledAppointments)
}

func TestExecute_RequiresForce(t *testing.T) {
	var cascadeStarted bool

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return existingEvent(), nil
		},
	}
	slots := &mockSlotRepo{
		countBookedByEventFn: func(ctx context.Context, eventID int64) (int, error) { return 3, nil },
	}
	appointments := &mockAppointmentRepo{
		cancelAllByEventFn: func(ctx context.Context, eventID int64, reason string) (int64, error) {
			cascadeStarted = true
			return 0, nil
		},
	}
	registrations := &mockRegistrationRepo{
		countByEventFn: func(ctx context.Context, eventID int64) (int, error) { return 4, nil },
	}

	uc := NewUseCase(events, &mockWindowRepo{}, slots, appointments, registrations, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{EventID: 1, Force: false})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrRequiresForce)
	assert.False(t, cascadeStarted)

	var forceErr *domain.RequiresForceError
	require.ErrorAs(t, err, &forceErr)
	assert.Equal(t, 3, forceErr.BookedSlots)
	assert.Equal(t, 4, forceErr.ActiveRegistrations)
}

func TestExecute_ForceCascade(t *testing.T) {
	// Порядок каскада: отмена записей -> слоты -> окна -> регистрации -> событие
	var order []string
	var passedReason string

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return existingEvent(), nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			order = append(order, "event")
			return nil
		},
	}
	windows := &mockWindowRepo{
		deleteByEventFn: func(ctx context.Context, eventID int64) (int64, error) {
			order = append(order, "windows")
			return 2, nil
		},
	}
	slots := &mockSlotRepo{
		countBookedByEventFn: func(ctx context.Context, eventID int64) (int, error) { return 3, nil },
		deleteByEventFn: func(ctx context.Context, eventID int64) (int64, error) {
			order = append(order, "slots")
			return 8, nil
		},
	}
	appointments := &mockAppointmentRepo{
		cancelAllByEventFn: func(ctx context.Context, eventID int64, reason string) (int64, error) {
			order = append(order, "appointments")
			passedReason = reason
			return 3, nil
		},
	}
	registrations := &mockRegistrationRepo{
		countByEventFn: func(ctx context.Context, eventID int64) (int, error) { return 4, nil },
		deleteByEventFn: func(ctx context.Context, eventID int64) (int64, error) {
			order = append(order, "registrations")
			return 4, nil
		},
	}

	uc := NewUseCase(events, windows, slots, appointments, registrations, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{EventID: 1, Force: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"appointments", "slots", "windows", "registrations", "event"}, order)
	assert.Equal(t, int64(3), resp.CancelledAppointments)
	assert.Equal(t, int64(8), resp.DeletedSlots)
	assert.Equal(t, int64(2), resp.DeletedWindows)
	assert.Equal(t, int64(4), resp.DeletedRegistrations)
	assert.NotEmpty(t, passedReason)
}

func TestExecute_EventNotFound(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return nil, eventRepo.ErrEventNotFound
		},
	}

	uc := NewUseCase(events, &mockWindowRepo{}, &mockSlotRepo{}, &mockAppointmentRepo{}, &mockRegistrationRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 404})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_InvalidEventID(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{}, &mockWindowRepo{}, &mockSlotRepo{}, &mockAppointmentRepo{}, &mockRegistrationRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: -1})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
