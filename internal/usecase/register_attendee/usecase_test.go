package register_attendee

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	registrationRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/registration"
)

// --- Mocks ---

type mockEventRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Event, error)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return m.getByIDFn(ctx, id)
}

type mockRegistrationRepo struct {
	createFn       func(ctx context.Context, reg *domain.Registration) (*domain.Registration, error)
	countByEventFn func(ctx context.Context, eventID int64) (int, error)
}

func (m *mockRegistrationRepo) Create(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
	return m.createFn(ctx, reg)
}

func (m *mockRegistrationRepo) CountByEvent(ctx context.Context, eventID int64) (int, error) {
	return m.countByEventFn(ctx, eventID)
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

func workshopEvent(maxCapacity int) *domain.Event {
	return &domain.Event{
		ID:           1,
		Type:         domain.TypeWorkshop,
		Title:        "Taller de inducción",
		CreatedBy:    7,
		Status:       domain.EventStatusPublished,
		CapacityType: domain.CapacityMultiple,
		MaxCapacity:  &maxCapacity,
	}
}

// --- Tests ---

func TestExecute_Success(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return workshopEvent(30), nil
		},
	}
	registrations := &mockRegistrationRepo{
		countByEventFn: func(ctx context.Context, eventID int64) (int, error) {
			return 12, nil
		},
		createFn: func(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
			reg.ID = 55
			reg.RegisteredAt = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
			return reg, nil
		},
	}

	uc := NewUseCase(events, registrations, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{EventID: 1, UserID: 100})

	require.NoError(t, err)
	assert.Equal(t, int64(55), resp.RegistrationID)
	assert.Equal(t, string(domain.RegistrationStatusRegistered), resp.Status)
}

func TestExecute_CapacityExceeded(t *testing.T) {
	var createCalled bool

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return workshopEvent(30), nil
		},
	}
	registrations := &mockRegistrationRepo{
		countByEventFn: func(ctx context.Context, eventID int64) (int, error) {
			return 30, nil
		},
		createFn: func(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
			createCalled = true
			return reg, nil
		},
	}

	uc := NewUseCase(events, registrations, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 1, UserID: 100})

	assert.ErrorIs(t, err, ErrCapacityExceeded)
	assert.False(t, createCalled)
}

func TestExecute_UnlimitedEventSkipsCapacityCheck(t *testing.T) {
	var countCalled bool

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			ev := workshopEvent(0)
			ev.CapacityType = domain.CapacityUnlimited
			ev.MaxCapacity = nil
			return ev, nil
		},
	}
	registrations := &mockRegistrationRepo{
		countByEventFn: func(ctx context.Context, eventID int64) (int, error) {
			countCalled = true
			return 0, nil
		},
		createFn: func(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
			reg.ID = 1
			return reg, nil
		},
	}

	uc := NewUseCase(events, registrations, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 1, UserID: 100})

	require.NoError(t, err)
	assert.False(t, countCalled)
}

func TestExecute_DuplicateRegistration(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return workshopEvent(30), nil
		},
	}
	registrations := &mockRegistrationRepo{
		countByEventFn: func(ctx context.Context, eventID int64) (int, error) {
			return 5, nil
		},
		createFn: func(ctx context.Context, reg *domain.Registration) (*domain.Registration, error) {
			return nil, registrationRepo.ErrDuplicateRegistration
		},
	}

	uc := NewUseCase(events, registrations, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 1, UserID: 100})

	assert.ErrorIs(t, err, ErrAlreadyRegistered)
}

func TestExecute_SingleCapacityEventRejected(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			ev := workshopEvent(0)
			ev.CapacityType = domain.CapacitySingle
			ev.MaxCapacity = nil
			return ev, nil
		},
	}

	uc := NewUseCase(events, &mockRegistrationRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 1, UserID: 100})

	assert.ErrorIs(t, err, ErrNotRegistrationEvent)
}

func TestExecute_EventNotOpen(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			ev := workshopEvent(30)
			ev.Status = domain.EventStatusCompleted
			return ev, nil
		},
	}

	uc := NewUseCase(events, &mockRegistrationRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 1, UserID: 100})

	assert.ErrorIs(t, err, ErrEventNotOpen)
}

func TestExecute_EventNotFound(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return nil, eventRepo.ErrEventNotFound
		},
	}

	uc := NewUseCase(events, &mockRegistrationRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 404, UserID: 100})

	assert.ErrorIs(t, err, ErrEventNotFound)
}

func TestExecute_InvalidUserID(t *testing.T) {
	uc := NewUseCase(&mockEventRepo{}, &mockRegistrationRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{EventID: 1, UserID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
