package send_notification

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-BarberShop/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-BarberShop/internal/integrations/whatsapp"
	"github.com/m04kA/SMC-BarberShop/pkg/logger"
	"github.com/m04kA/SMC-BarberShop/pkg/ptr"
)

var now = time.Date(2026, 10, 20, 8, 0, 0, 0, time.UTC)

type fakeAppointments struct {
	items   map[int64]*domain.Appointment
	marked  map[int64]time.Time
	markErr error
}

func (f *fakeAppointments) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := f.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	return a, nil
}

func (f *fakeAppointments) MarkReminderSent(_ context.Context, id int64, sentAt time.Time) error {
	if f.markErr != nil {
		return f.markErr
	}
	f.marked[id] = sentAt
	return nil
}

type fakeShop struct {
	automation *domain.Automation
}

func (f fakeShop) Config(context.Context) (*domain.ShopConfig, error) {
	return &domain.ShopConfig{Name: "Barbearia do Zé", Address: "Rua A, 10"}, nil
}

func (f fakeShop) Automation(context.Context) (*domain.Automation, error) {
	return f.automation, nil
}

type fakeSender struct {
	phone, text string
	err         error
}

func (f *fakeSender) Send(_ context.Context, phone, text string) error {
	f.phone, f.text = phone, text
	return f.err
}

type fakeMetrics struct{ counts map[string]int }

func (f *fakeMetrics) IncNotifications(trigger, result string) { f.counts[trigger+"/"+result]++ }

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	uc      *UseCase
	repo    *fakeAppointments
	sender  *fakeSender
	metrics *fakeMetrics
}

func newFixture() *fixture {
	f := &fixture{
		repo: &fakeAppointments{
			items: map[int64]*domain.Appointment{
				1: {
					ID: 1, ClientID: 3, ClientName: "João", ClientPhone: "11987654321",
					ServiceName: "Corte", Date: time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
					StartTime: "10:00", Status: domain.StatusConfirmed,
				},
				2: {ID: 2, Status: domain.StatusCancelled},
			},
			marked: map[int64]time.Time{},
		},
		sender:  &fakeSender{},
		metrics: &fakeMetrics{counts: map[string]int{}},
	}
	shop := fakeShop{automation: &domain.Automation{Enabled: true, ReminderLead: domain.ReminderLead1H, ReminderTemplate: "Oi {nome}, {horario}"}}
	f.uc = NewUseCase(f.repo, shop, f.sender, fixedTime{now}, f.metrics, logger.Nop())
	return f
}

func TestUseCase_Execute_ManualUsesConfirmation(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, Trigger: TriggerManual})

	require.NoError(t, err)
	assert.Equal(t, "11987654321", f.sender.phone)
	assert.Contains(t, resp.Message, "Barbearia do Zé")
	assert.Contains(t, resp.Message, "20/10/2026 às 10:00")
	assert.Empty(t, f.repo.marked)
	assert.Equal(t, 1, f.metrics.counts["manual/sent"])
}

func TestUseCase_Execute_ReminderMarksSent(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, Trigger: TriggerReminder})

	require.NoError(t, err)
	assert.Equal(t, "Oi João, 10:00", resp.Message)
	assert.Equal(t, now, f.repo.marked[1])
}

func TestUseCase_Execute_CustomTemplate(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		Trigger:       TriggerManual,
		Template:      ptr.Ptr("{servico} às {horario}"),
	})

	require.NoError(t, err)
	assert.Equal(t, "Corte às 10:00", resp.Message)
}

func TestUseCase_Execute_GatewayFailure(t *testing.T) {
	f := newFixture()
	f.sender.err = fmt.Errorf("%w: status 502", whatsapp.ErrGatewayFailed)

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, Trigger: TriggerReminder})

	assert.ErrorIs(t, err, ErrGatewayFailed)
	assert.Empty(t, f.repo.marked)
	assert.Equal(t, 1, f.metrics.counts["reminder/failed"])
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		prepare func(f *fixture)
		wantErr error
	}{
		{"not found", &Request{AppointmentID: 9, Trigger: TriggerManual}, nil, ErrAppointmentNotFound},
		{"cancelled", &Request{AppointmentID: 2, Trigger: TriggerManual}, nil, ErrAppointmentCancelled},
		{"unknown trigger", &Request{AppointmentID: 1, Trigger: "push"}, nil, ErrInvalidInput},
		{"blank template", &Request{AppointmentID: 1, Trigger: TriggerManual, Template: ptr.Ptr(" ")}, nil, ErrInvalidInput},
		{
			"invalid phone",
			&Request{AppointmentID: 1, Trigger: TriggerManual},
			func(f *fixture) { f.sender.err = whatsapp.ErrInvalidPhone },
			ErrInvalidPhone,
		},
		{
			"mark failure",
			&Request{AppointmentID: 1, Trigger: TriggerReminder},
			func(f *fixture) { f.repo.markErr = errors.New("db down") },
			ErrInternal,
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
		})
	}
}
