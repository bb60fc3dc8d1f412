package registrations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	eventRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/event"
	registrationRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/registration"
	"github.com/m04kA/ADM-SchedulingService/internal/service/registrations/models"
)

// --- Mocks ---

type mockEventRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Event, error)
}

func (m *mockEventRepo) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return m.getByIDFn(ctx, id)
}

type mockRegistrationRepo struct {
	getByEventAndUserFn func(ctx context.Context, eventID, userID int64) (*domain.Registration, error)
	listByEventFn       func(ctx context.Context, eventID int64) ([]*domain.Registration, error)
	updateStatusFn      func(ctx context.Context, id int64, status domain.RegistrationStatus, attendedAt *time.Time) error
}

func (m *mockRegistrationRepo) GetByEventAndUser(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
	return m.getByEventAndUserFn(ctx, eventID, userID)
}

func (m *mockRegistrationRepo) ListByEvent(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
	return m.listByEventFn(ctx, eventID)
}

func (m *mockRegistrationRepo) UpdateStatus(ctx context.Context, id int64, status domain.RegistrationStatus, attendedAt *time.Time) error {
	return m.updateStatusFn(ctx, id, status, attendedAt)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Helpers ---

func trackedEvent() *domain.Event {
	return &domain.Event{
		ID:                       1,
		Type:                     domain.TypeWorkshop,
		Title:                    "Taller de inducción",
		Status:                   domain.EventStatusOngoing,
		CapacityType:             domain.CapacityMultiple,
		AllowsAttendanceTracking: true,
	}
}

func existingRegistration() *domain.Registration {
	return &domain.Registration{
		ID:           55,
		EventID:      1,
		UserID:       100,
		Status:       domain.RegistrationStatusRegistered,
		RegisteredAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

// --- Tests ---

func TestMarkAttendance_Attended(t *testing.T) {
	var savedStatus domain.RegistrationStatus
	var savedAttendedAt *time.Time

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return trackedEvent(), nil
		},
	}
	registrations := &mockRegistrationRepo{
		getByEventAndUserFn: func(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
			return existingRegistration(), nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status domain.RegistrationStatus, attendedAt *time.Time) error {
			savedStatus = status
			savedAttendedAt = attendedAt
			return nil
		},
	}

	svc := NewService(events, registrations, nopLogger{})
	resp, err := svc.MarkAttendance(context.Background(), &models.MarkAttendanceRequest{
		EventID: 1, UserID: 100, Action: "attended",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.RegistrationStatusAttended), resp.Status)
	assert.Equal(t, domain.RegistrationStatusAttended, savedStatus)
	require.NotNil(t, savedAttendedAt)
	require.NotNil(t, resp.AttendedAt)
}

func TestMarkAttendance_NoShow(t *testing.T) {
	var savedAttendedAt *time.Time

	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return trackedEvent(), nil
		},
	}
	registrations := &mockRegistrationRepo{
		getByEventAndUserFn: func(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
			return existingRegistration(), nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status domain.RegistrationStatus, attendedAt *time.Time) error {
			savedAttendedAt = attendedAt
			return nil
		},
	}

	svc := NewService(events, registrations, nopLogger{})
	resp, err := svc.MarkAttendance(context.Background(), &models.MarkAttendanceRequest{
		EventID: 1, UserID: 100, Action: "no_show",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.RegistrationStatusNoShow), resp.Status)
	assert.Nil(t, savedAttendedAt)
	assert.Nil(t, resp.AttendedAt)
}

func TestMarkAttendance_ResetClearsAttendedAt(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return trackedEvent(), nil
		},
	}
	registrations := &mockRegistrationRepo{
		getByEventAndUserFn: func(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
			reg := existingRegistration()
			reg.Status = domain.RegistrationStatusAttended
			attended := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
			reg.AttendedAt = &attended
			return reg, nil
		},
		updateStatusFn: func(ctx context.Context, id int64, status domain.RegistrationStatus, attendedAt *time.Time) error {
			assert.Nil(t, attendedAt)
			return nil
		},
	}

	svc := NewService(events, registrations, nopLogger{})
	resp, err := svc.MarkAttendance(context.Background(), &models.MarkAttendanceRequest{
		EventID: 1, UserID: 100, Action: "reset",
	})

	require.NoError(t, err)
	assert.Equal(t, string(domain.RegistrationStatusRegistered), resp.Status)
	assert.Nil(t, resp.AttendedAt)
}

func TestMarkAttendance_TrackingDisabled(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			ev := trackedEvent()
			ev.AllowsAttendanceTracking = false
			return ev, nil
		},
	}

	svc := NewService(events, &mockRegistrationRepo{}, nopLogger{})
	_, err := svc.MarkAttendance(context.Background(), &models.MarkAttendanceRequest{
		EventID: 1, UserID: 100, Action: "attended",
	})

	assert.ErrorIs(t, err, ErrTrackingDisabled)
}

func TestMarkAttendance_UnsupportedAction(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return trackedEvent(), nil
		},
	}
	registrations := &mockRegistrationRepo{
		getByEventAndUserFn: func(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
			return existingRegistration(), nil
		},
	}

	svc := NewService(events, registrations, nopLogger{})
	_, err := svc.MarkAttendance(context.Background(), &models.MarkAttendanceRequest{
		EventID: 1, UserID: 100, Action: "present",
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMarkAttendance_NotRegistered(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return trackedEvent(), nil
		},
	}
	registrations := &mockRegistrationRepo{
		getByEventAndUserFn: func(ctx context.Context, eventID, userID int64) (*domain.Registration, error) {
			return nil, registrationRepo.ErrRegistrationNotFound
		},
	}

	svc := NewService(events, registrations, nopLogger{})
	_, err := svc.MarkAttendance(context.Background(), &models.MarkAttendanceRequest{
		EventID: 1, UserID: 100, Action: "attended",
	})

	assert.ErrorIs(t, err, ErrRegistrationNotFound)
}

func TestListByEvent_Success(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return trackedEvent(), nil
		},
	}
	registrations := &mockRegistrationRepo{
		listByEventFn: func(ctx context.Context, eventID int64) ([]*domain.Registration, error) {
			return []*domain.Registration{
				existingRegistration(),
				{ID: 56, EventID: 1, UserID: 101, Status: domain.RegistrationStatusAttended},
			}, nil
		},
	}

	svc := NewService(events, registrations, nopLogger{})
	resp, err := svc.ListByEvent(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, resp.Registrations, 2)
	assert.Equal(t, int64(100), resp.Registrations[0].UserID)
	assert.Equal(t, string(domain.RegistrationStatusAttended), resp.Registrations[1].Status)
}

func TestListByEvent_EventNotFound(t *testing.T) {
	events := &mockEventRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Event, error) {
			return nil, eventRepo.ErrEventNotFound
		},
	}

	svc := NewService(events, &mockRegistrationRepo{}, nopLogger{})
	_, err := svc.ListByEvent(context.Background(), 404)

	assert.ErrorIs(t, err, ErrEventNotFound)
}
