package reminders

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/usecase/send_notification"
)

// DefaultInterval период опроса по умолчанию
const DefaultInterval = time.Minute

// Worker периодически отправляет напоминания о предстоящих записях
// Неудачные отправки не отмечаются и повторяются на следующем тике
type Worker struct {
	appointments AppointmentRepository
	settings     AutomationSettings
	notifier     Notifier
	timeProvider TimeProvider
	logger       Logger
	interval     time.Duration
}

// NewWorker создает воркер напоминаний
func NewWorker(
	appointments AppointmentRepository,
	settings AutomationSettings,
	notifier Notifier,
	timeProvider TimeProvider,
	logger Logger,
	interval time.Duration,
) *Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Worker{
		appointments: appointments,
		settings:     settings,
		notifier:     notifier,
		timeProvider: timeProvider,
		logger:       logger,
		interval:     interval,
	}
}

// Run запускает цикл опроса до отмены ctx
func (w *Worker) Run(ctx context.Context) {
	w.logger.Info("Reminders: worker started, interval=%s", w.interval)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Reminders: worker stopped")
			return
		case <-ticker.C:
			if _, err := w.RunOnce(ctx); err != nil {
				w.logger.Error("Reminders: batch failed: %v", err)
			}
		}
	}
}

// RunOnce обрабатывает записи, начинающиеся в интервале (now, now+lead]
// Возвращает количество отправленных напоминаний
func (w *Worker) RunOnce(ctx context.Context) (int, error) {
	automation, err := w.settings.Automation(ctx)
	if err != nil {
		return 0, fmt.Errorf("get automation: %w", err)
	}
	if !automation.Enabled {
		return 0, nil
	}

	lead := automation.ReminderLead.Duration()
	if lead <= 0 {
		w.logger.Warn("Reminders: unknown reminder lead %q, skipping", automation.ReminderLead)
		return 0, nil
	}

	now := w.timeProvider.Now()
	due, err := w.appointments.ListDueForReminder(ctx, now, now.Add(lead))
	if err != nil {
		return 0, fmt.Errorf("list due appointments: %w", err)
	}

	sent := 0
	for _, appointment := range due {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}

		_, err := w.notifier.Execute(ctx, &send_notification.Request{
			AppointmentID: appointment.ID,
			Trigger:       send_notification.TriggerReminder,
		})
		if err != nil {
			w.logger.Warn("Reminders: appointment id=%d not notified: %v", appointment.ID, err)
			continue
		}
		sent++
	}

	if len(due) > 0 {
		w.logger.Info("Reminders: sent %d of %d reminders", sent, len(due))
	}
	return sent, nil
}
