package reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/internal/usecase/send_notification"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

var now = time.Date(2026, 10, 20, 9, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	due      []*domain.Appointment
	from, to time.Time
}

func (f *fakeRepo) ListDueForReminder(_ context.Context, from, to time.Time) ([]*domain.Appointment, error) {
	f.from, f.to = from, to
	return f.due, nil
}

type fakeSettings struct{ automation *domain.Automation }

func (f fakeSettings) Automation(context.Context) (*domain.Automation, error) {
	return f.automation, nil
}

type fakeNotifier struct {
	failFor map[int64]bool
	sent    []int64
}

func (f *fakeNotifier) Execute(_ context.Context, req *send_notification.Request) (*send_notification.Response, error) {
	if req.Trigger != send_notification.TriggerReminder {
		return nil, errors.New("unexpected trigger")
	}
	if f.failFor[req.AppointmentID] {
		return nil, send_notification.ErrGatewayFailed
	}
	f.sent = append(f.sent, req.AppointmentID)
	return &send_notification.Response{AppointmentID: req.AppointmentID}, nil
}

func TestWorker_RunOnce(t *testing.T) {
	repo := &fakeRepo{due: []*domain.Appointment{{ID: 1}, {ID: 2}, {ID: 3}}}
	notifier := &fakeNotifier{failFor: map[int64]bool{2: true}}
	settings := fakeSettings{automation: &domain.Automation{Enabled: true, ReminderLead: domain.ReminderLead30Min}}
	w := NewWorker(repo, settings, notifier, fixedTime{now}, logger.Nop(), time.Minute)

	sent, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, sent)
	assert.Equal(t, []int64{1, 3}, notifier.sent)
	assert.Equal(t, now, repo.from)
	assert.Equal(t, now.Add(30*time.Minute), repo.to)
}

func TestWorker_RunOnceDisabled(t *testing.T) {
	repo := &fakeRepo{due: []*domain.Appointment{{ID: 1}}}
	notifier := &fakeNotifier{}
	w := NewWorker(repo, fakeSettings{automation: domain.DefaultAutomation()}, notifier, fixedTime{now}, logger.Nop(), 0)

	sent, err := w.RunOnce(context.Background())

	require.NoError(t, err)
	assert.Zero(t, sent)
	assert.Empty(t, notifier.sent)
	assert.Equal(t, DefaultInterval, w.interval)
}

func TestWorker_RunStopsOnCancel(t *testing.T) {
	w := NewWorker(&fakeRepo{}, fakeSettings{automation: domain.DefaultAutomation()}, &fakeNotifier{},
		fixedTime{now}, logger.Nop(), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
