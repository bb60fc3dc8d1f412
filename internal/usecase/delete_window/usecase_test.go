package delete_window

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/ADM-SchedulingService/internal/domain"
	windowRepo "github.com/m04kA/ADM-SchedulingService/internal/infra/storage/window"
)

// --- Mocks ---

type mockWindowRepo struct {
	getByIDFn func(ctx context.Context, id int64) (*domain.Window, error)
	deleteFn  func(ctx context.Context, id int64) error
}

func (m *mockWindowRepo) GetByID(ctx context.Context, id int64) (*domain.Window, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockWindowRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockSlotRepo struct {
	countBookedByWindowFn func(ctx context.Context, windowID int64) (int, error)
	deleteByWindowFn      func(ctx context.Context, windowID int64) (int64, error)
}

func (m *mockSlotRepo) CountBookedByWindow(ctx context.Context, windowID int64) (int, error) {
	return m.countBookedByWindowFn(ctx, windowID)
}

func (m *mockSlotRepo) DeleteByWindow(ctx context.Context, windowID int64) (int64, error) {
	return m.deleteByWindowFn(ctx, windowID)
}

type mockAppointmentRepo struct {
	cancelAllByWindowFn func(ctx context.Context, windowID int64, reason string) (int64, error)
}

func (m *mockAppointmentRepo) CancelAllByWindow(ctx context.Context, windowID int64, reason string) (int64, error) {
	return m.cancelAllByWindowFn(ctx, windowID, reason)
}

type mockTxManager struct{}

func (m *mockTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

// --- Tests ---

func TestExecute_CleanWindowDeleted(t *testing.T) {
	var deletedWindowID int64

	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return &domain.Window{ID: id, EventID: 1}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			deletedWindowID = id
			return nil
		},
	}
	slots := &mockSlotRepo{
		countBookedByWindowFn: func(ctx context.Context, windowID int64) (int, error) {
			return 0, nil
		},
		deleteByWindowFn: func(ctx context.Context, windowID int64) (int64, error) {
			return 6, nil
		},
	}
	appointments := &mockAppointmentRepo{
		cancelAllByWindowFn: func(ctx context.Context, windowID int64, reason string) (int64, error) {
			return 0, nil
		},
	}

	uc := NewUseCase(windows, slots, appointments, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{WindowID: 2, Force: false})

	require.NoError(t, err)
	assert.Equal(t, int64(2), deletedWindowID)
	assert.Equal(t, int64(2), resp.WindowID)
	assert.Equal(t, int64(0), resp.CancelledAppointments)
	assert.Equal(t, int64(6), resp.DeletedSlots)
}

func TestExecute_BookedSlotsRequireForce(t *testing.T) {
	var cascadeStarted bool

	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return &domain.Window{ID: id, EventID: 1}, nil
		},
	}
	slots := &mockSlotRepo{
		countBookedByWindowFn: func(ctx context.Context, windowID int64) (int, error) {
			return 3, nil
		},
	}
	appointments := &mockAppointmentRepo{
		cancelAllByWindowFn: func(ctx context.Context, windowID int64, reason string) (int64, error) {
			cascadeStarted = true
			return 0, nil
		},
	}

	uc := NewUseCase(windows, slots, appointments, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{WindowID: 2, Force: false})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrRequiresForce)
	assert.False(t, cascadeStarted)

	var forceErr *domain.RequiresForceError
	require.ErrorAs(t, err, &forceErr)
	assert.Equal(t, 3, forceErr.BookedSlots)
}

func TestExecute_ForceCascade(t *testing.T) {
	// Порядок каскада: отмена записей -> удаление слотов -> удаление окна
	var order []string
	var passedReason string

	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return &domain.Window{ID: id, EventID: 1}, nil
		},
		deleteFn: func(ctx context.Context, id int64) error {
			order = append(order, "window")
			return nil
		},
	}
	slots := &mockSlotRepo{
		countBookedByWindowFn: func(ctx context.Context, windowID int64) (int, error) {
			return 3, nil
		},
		deleteByWindowFn: func(ctx context.Context, windowID int64) (int64, error) {
			order = append(order, "slots")
			return 8, nil
		},
	}
	appointments := &mockAppointmentRepo{
		cancelAllByWindowFn: func(ctx context.Context, windowID int64, reason string) (int64, error) {
			order = append(order, "appointments")
			passedReason = reason
			return 3, nil
		},
	}

	uc := NewUseCase(windows, slots, appointments, &mockTxManager{}, nopLogger{})
	resp, err := uc.Execute(context.Background(), &Request{WindowID: 2, Force: true})

	require.NoError(t, err)
	assert.Equal(t, []string{"appointments", "slots", "window"}, order)
	assert.NotEmpty(t, passedReason)
	assert.Equal(t, int64(3), resp.CancelledAppointments)
	assert.Equal(t, int64(8), resp.DeletedSlots)
}

func TestExecute_CancelFailureAbortsCascade(t *testing.T) {
	var slotsDeleted bool

	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return &domain.Window{ID: id, EventID: 1}, nil
		},
	}
	slots := &mockSlotRepo{
		countBookedByWindowFn: func(ctx context.Context, windowID int64) (int, error) {
			return 1, nil
		},
		deleteByWindowFn: func(ctx context.Context, windowID int64) (int64, error) {
			slotsDeleted = true
			return 0, nil
		},
	}
	appointments := &mockAppointmentRepo{
		cancelAllByWindowFn: func(ctx context.Context, windowID int64, reason string) (int64, error) {
			return 0, errors.New("db connection failed")
		},
	}

	uc := NewUseCase(windows, slots, appointments, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{WindowID: 2, Force: true})

	assert.ErrorIs(t, err, ErrInternal)
	assert.False(t, slotsDeleted)
}

func TestExecute_WindowNotFound(t *testing.T) {
	windows := &mockWindowRepo{
		getByIDFn: func(ctx context.Context, id int64) (*domain.Window, error) {
			return nil, windowRepo.ErrWindowNotFound
		},
	}

	uc := NewUseCase(windows, &mockSlotRepo{}, &mockAppointmentRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{WindowID: 404})

	assert.ErrorIs(t, err, ErrWindowNotFound)
}

func TestExecute_InvalidWindowID(t *testing.T) {
	uc := NewUseCase(&mockWindowRepo{}, &mockSlotRepo{}, &mockAppointmentRepo{}, &mockTxManager{}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{WindowID: 0})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
