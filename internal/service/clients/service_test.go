package clients

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	clientRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
)

type fakeClients struct {
	items      []*domain.Client
	lastSearch string
}

func (f *fakeClients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClients) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	for _, c := range f.items {
		if c.Phone == phone {
			return c, nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClients) List(_ context.Context, search string) ([]*domain.Client, error) {
	f.lastSearch = search
	return f.items, nil
}

type fakeAppointments struct {
	filter domain.AppointmentsFilter
	items  []*domain.Appointment
}

func (f *fakeAppointments) ListByFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	f.filter = filter
	return f.items, nil
}

func newService() (*Service, *fakeClients, *fakeAppointments) {
	clients := &fakeClients{items: []*domain.Client{{ID: 1, Name: "João", Phone: "11987654321"}}}
	day := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	appointments := &fakeAppointments{items: []*domain.Appointment{
		{ID: 1, Date: day, StartTime: "09:00", ServicePrice: 40, Status: domain.StatusConfirmed},
		{ID: 2, Date: day.AddDate(0, 0, 7), StartTime: "10:00", ServicePrice: 30, Status: domain.StatusCancelled},
		{ID: 3, Date: day.AddDate(0, 0, 14), StartTime: "11:00", ServicePrice: 25.5, Status: domain.StatusPending},
	}}
	return NewService(clients, appointments, logger.Nop()), clients, appointments
}

func TestService_List(t *testing.T) {
	s, clients, _ := newService()

	resp, err := s.List(context.Background(), "  joão ")

	require.NoError(t, err)
	assert.Len(t, resp.Clients, 1)
	assert.Equal(t, "joão", clients.lastSearch)
}

func TestService_Lookup(t *testing.T) {
	s, _, _ := newService()

	resp, err := s.Lookup(context.Background(), "(11) 98765-4321")
	require.NoError(t, err)
	assert.Equal(t, "João", resp.Name)

	_, err = s.Lookup(context.Background(), "21999990000")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = s.Lookup(context.Background(), "12-34")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_History(t *testing.T) {
	s, _, appointments := newService()

	resp, err := s.History(context.Background(), 1)

	require.NoError(t, err)
	assert.Len(t, resp.Visits, 3)
	assert.InDelta(t, 65.5, resp.TotalSpent, 0.001)
	assert.True(t, appointments.filter.IncludeCancelled)
	require.NotNil(t, appointments.filter.ClientID)
	assert.Equal(t, int64(1), *appointments.filter.ClientID)

	_, err = s.History(context.Background(), 2)
	assert.ErrorIs(t, err, ErrClientNotFound)
}
