package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/availability"
	"github.com/m04kA/SMC-BarberShop/internal/domain"
	catalogRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/client"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/ptr"
)

var day = time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fakeAppointments struct {
	created []*domain.Appointment
}

func (f *fakeAppointments) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	a.ID = int64(len(f.created) + 1)
	f.created = append(f.created, a)
	return a, nil
}

type fakeClients struct {
	byPhone map[string]*domain.Client
	nextID  int64
}

func (f *fakeClients) Create(_ context.Context, c *domain.Client) (*domain.Client, error) {
	f.nextID++
	c.ID = f.nextID
	f.byPhone[c.Phone] = c
	return c, nil
}

func (f *fakeClients) GetByID(_ context.Context, id int64) (*domain.Client, error) {
	for _, c := range f.byPhone {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, clientRepo.ErrClientNotFound
}

func (f *fakeClients) GetByPhone(_ context.Context, phone string) (*domain.Client, error) {
	if c, ok := f.byPhone[phone]; ok {
		return c, nil
	}
	return nil, clientRepo.ErrClientNotFound
}

type fakeCatalog struct {
	services map[int64]*domain.Service
}

func (f *fakeCatalog) GetByID(_ context.Context, id int64) (*domain.Service, error) {
	if s, ok := f.services[id]; ok {
		return s, nil
	}
	return nil, catalogRepo.ErrServiceNotFound
}

type fakeLoader struct {
	snapshot availability.Snapshot
	err      error
}

func (f *fakeLoader) Load(context.Context, time.Time) (availability.Snapshot, error) {
	return f.snapshot, f.err
}

type fakeTx struct{ calls int }

func (f *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

// conflictTx выполняет fn и возвращает конфликт сериализации, как после исчерпания повторов
type conflictTx struct{}

func (conflictTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, &pq.Error{Code: "40001"})
}

type fakeMetrics struct{ created map[string]int }

func (f *fakeMetrics) IncAppointmentsCreated(client string) { f.created[client]++ }

type fixture struct {
	uc           *UseCase
	appointments *fakeAppointments
	clients      *fakeClients
	loader       *fakeLoader
	metrics      *fakeMetrics
}

func newFixture() *fixture {
	services := []*domain.Service{
		{ID: 1, Name: "Corte", Price: 40, DurationMinutes: 30},
		{ID: 2, Name: "Barba", Price: 30, DurationMinutes: 60},
	}
	f := &fixture{
		appointments: &fakeAppointments{},
		clients: &fakeClients{byPhone: map[string]*domain.Client{
			"11987654321": {ID: 10, Name: "João", Phone: "11987654321"},
		}, nextID: 10},
		loader: &fakeLoader{snapshot: availability.NewSnapshot(
			domain.BusinessHours{Opening: "09:00", Closing: "11:00"},
			services,
			[]*domain.Appointment{{ID: 5, ServiceID: 2, Date: day, StartTime: "09:00", Status: domain.StatusConfirmed}},
		)},
		metrics: &fakeMetrics{created: map[string]int{}},
	}
	catalog := &fakeCatalog{services: map[int64]*domain.Service{1: services[0], 2: services[1]}}
	f.uc = NewUseCase(f.appointments, f.clients, catalog, f.loader, &fakeTx{},
		fixedTime{day.Add(7 * time.Hour)}, f.metrics, logger.Nop())
	return f
}

func TestUseCase_Execute_ExistingClientByPhone(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		ClientName:  "João",
		ClientPhone: "(11) 98765-4321",
		ServiceID:   1,
		Date:        day,
		StartTime:   "10:00",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), resp.ClientID)
	assert.False(t, resp.NewClient)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Corte", resp.ServiceName)
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.Equal(t, 1, f.metrics.created["existing"])
	require.Len(t, f.appointments.created, 1)
	assert.Equal(t, domain.StatusPending, f.appointments.created[0].Status)
}

func TestUseCase_Execute_CreatesClient(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		ClientName:  "  Maria ",
		ClientPhone: "21 99999-0000",
		ServiceID:   1,
		Date:        day,
		StartTime:   "10:30",
	})

	require.NoError(t, err)
	assert.True(t, resp.NewClient)
	assert.Equal(t, "Maria", resp.ClientName)
	assert.Equal(t, "21999990000", resp.ClientPhone)
	assert.Equal(t, 1, f.metrics.created["new"])
}

func TestUseCase_Execute_SlotTaken(t *testing.T) {
	f := newFixture()

	// 09:30 занят записью 09:00 + 60 минут
	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  ptr.Ptr(int64(10)),
		ServiceID: 1,
		Date:      day,
		StartTime: "09:30",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, f.appointments.created)
}

func TestUseCase_Execute_OffGridTime(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  ptr.Ptr(int64(10)),
		ServiceID: 1,
		Date:      day,
		StartTime: "10:15",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		prepare func(f *fixture)
		wantErr error
	}{
		{
			name:    "unknown service",
			req:     &Request{ClientID: ptr.Ptr(int64(10)), ServiceID: 9, Date: day, StartTime: "10:00"},
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "unknown client",
			req:     &Request{ClientID: ptr.Ptr(int64(77)), ServiceID: 1, Date: day, StartTime: "10:00"},
			wantErr: ErrClientNotFound,
		},
		{
			name:    "bad phone",
			req:     &Request{ClientName: "Ana", ClientPhone: "123", ServiceID: 1, Date: day, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "missing name",
			req:     &Request{ClientPhone: "11987654321", ServiceID: 1, Date: day, StartTime: "10:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "bad time",
			req:     &Request{ClientID: ptr.Ptr(int64(10)), ServiceID: 1, Date: day, StartTime: "25:00"},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "loader failure",
			req:     &Request{ClientID: ptr.Ptr(int64(10)), ServiceID: 1, Date: day, StartTime: "10:00"},
			prepare: func(f *fixture) { f.loader.err = errors.New("db down") },
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			if tt.prepare != nil {
				tt.prepare(f)
			}

			_, err := f.uc.Execute(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.appointments.created)
		})
	}
}

func TestUseCase_Execute_SerializationConflict(t *testing.T) {
	f := newFixture()
	f.uc.txManager = conflictTx{}

	_, err := f.uc.Execute(context.Background(), &Request{
		ClientID:  ptr.Ptr(int64(10)),
		ServiceID: 1,
		Date:      day,
		StartTime: "10:00",
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, f.metrics.created["existing"])
}
