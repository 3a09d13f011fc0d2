package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberShop/internal/service/appointments/models"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/ptr"
)

var now = time.Date(2026, 10, 20, 10, 15, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeRepo struct {
	items      map[int64]*domain.Appointment
	lastFilter domain.AppointmentsFilter
	list       []*domain.Appointment
	notes      *string
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeRepo) ListByFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.lastFilter = filter
	return f.list, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.items[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.items[id].Status = status
	return nil
}

func (f *fakeRepo) UpdateNotes(_ context.Context, id int64, notes *string) error {
	if _, ok := f.items[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.notes = notes
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.items[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.items, id)
	return nil
}

func newService() (*Service, *fakeRepo) {
	today := domain.Midnight(now)
	repo := &fakeRepo{
		items: map[int64]*domain.Appointment{
			1: {ID: 1, Date: today, StartTime: "09:00", Status: domain.StatusPending},
			2: {ID: 2, Date: today, StartTime: "11:00", Status: domain.StatusCancelled},
		},
	}
	repo.list = []*domain.Appointment{repo.items[1], {ID: 3, Date: today, StartTime: "10:30", Status: domain.StatusConfirmed}}
	return NewService(repo, fixedTime{now}, logger.Nop()), repo
}

func TestService_ListViews(t *testing.T) {
	today := domain.Midnight(now)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		view     models.View
		wantFrom *time.Time
		wantTo   *time.Time
	}{
		{models.ViewToday, &today, &today},
		{models.ViewTomorrow, &tomorrow, &tomorrow},
		{models.ViewUpcoming, &today, nil},
	}

	for _, tt := range tests {
		t.Run(string(tt.view), func(t *testing.T) {
			s, repo := newService()
			_, err := s.List(context.Background(), &models.ListAppointmentsRequest{View: ptr.Ptr(tt.view)})
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, repo.lastFilter.From)
			assert.Equal(t, tt.wantTo, repo.lastFilter.To)
		})
	}
}

func TestService_ListUpcomingSkipsStarted(t *testing.T) {
	s, _ := newService()

	resp, err := s.List(context.Background(), &models.ListAppointmentsRequest{View: ptr.Ptr(models.ViewUpcoming)})

	require.NoError(t, err)
	require.Len(t, resp.Appointments, 1)
	assert.Equal(t, int64(3), resp.Appointments[0].ID)
	assert.Equal(t, "10:30", resp.Appointments[0].StartTime)
}

func TestService_ListValidation(t *testing.T) {
	s, _ := newService()
	from := now
	to := now.AddDate(0, 0, -1)

	_, err := s.List(context.Background(), &models.ListAppointmentsRequest{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = s.List(context.Background(), &models.ListAppointmentsRequest{Status: ptr.Ptr("done")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.List(context.Background(), &models.ListAppointmentsRequest{View: ptr.Ptr(models.View("yesterday"))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_UpdateStatus(t *testing.T) {
	s, repo := newService()

	resp, err := s.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "confirmed"})
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.items[1].Status)

	_, err = s.UpdateStatus(context.Background(), 2, &models.UpdateStatusRequest{Status: "pending"})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = s.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "pendente"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.UpdateStatus(context.Background(), 42, &models.UpdateStatusRequest{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestService_UpdateNotes(t *testing.T) {
	s, repo := newService()

	require.NoError(t, s.UpdateNotes(context.Background(), 1, &models.UpdateNotesRequest{Notes: ptr.Ptr("  degradê ")}))
	require.NotNil(t, repo.notes)
	assert.Equal(t, "degradê", *repo.notes)

	require.NoError(t, s.UpdateNotes(context.Background(), 1, &models.UpdateNotesRequest{Notes: ptr.Ptr(" ")}))
	assert.Nil(t, repo.notes)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	err := s.UpdateNotes(context.Background(), 1, &models.UpdateNotesRequest{Notes: ptr.Ptr(string(long))})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Delete(t *testing.T) {
	s, repo := newService()

	require.NoError(t, s.Delete(context.Background(), 1))
	assert.NotContains(t, repo.items, int64(1))
	assert.ErrorIs(t, s.Delete(context.Background(), 1), ErrAppointmentNotFound)
}
