package availability

import (
	"time"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/types"
)

// Request параметры расчета свободных слотов
type Request struct {
	Date                 time.Time // календарный день, время суток игнорируется
	ServiceID            int64
	ExcludeAppointmentID *int64 // запись, которую редактируют: ее время не считается занятым
}

// Snapshot неизменяемый срез данных, на котором выполняется один расчет
type Snapshot struct {
	Hours        domain.BusinessHours
	Durations    map[int64]int // длительность услуги в минутах по ее ID
	Appointments []*domain.Appointment
}

// NewSnapshot собирает срез из настроек, каталога услуг и записей
// Отмененные записи не занимают слоты и в срез не попадают
func NewSnapshot(hours domain.BusinessHours, services []*domain.Service, appointments []*domain.Appointment) Snapshot {
	durations := make(map[int64]int, len(services))
	for _, s := range services {
		durations[s.ID] = s.DurationMinutes
	}

	active := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.IsActive() {
			active = append(active, a)
		}
	}

	return Snapshot{Hours: hours, Durations: durations, Appointments: active}
}

// ComputeSlots возвращает свободные времена начала на req.Date по возрастанию
//
// Правила:
//   - дата раньше сегодняшней (по календарному дню now) - пустой результат;
//   - неизвестная услуга или услуга с неположительной длительностью - пустой результат;
//   - сетка с шагом SlotGranularityMinutes от открытия, слот t допустим при t + duration <= closing;
//   - слот t занят, если для записи a того же дня a.start <= t < a.start + duration(a);
//     записи с удаленной услугой не учитываются;
//   - для сегодняшнего дня остаются только слоты строго позже текущей минуты.
//
// Проверяется только попадание начала слота в интервал записи, а не пересечение интервалов:
// слот 09:30 для услуги 50 минут допустим перед записью на 10:00.
//
// Функция чистая: не обращается к часам, не выполняет ввод-вывод и никогда не возвращает ошибку.
// Все значения сравниваются как локальное время в собственной локации, без конвертаций.
func ComputeSlots(req Request, snap Snapshot, now time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)

	// 1. Прошедшие дни не бронируются
	if dayBefore(req.Date, now) {
		return slots
	}

	// 2. Длительность запрошенной услуги
	duration, ok := snap.Durations[req.ServiceID]
	if !ok || duration <= 0 {
		return slots
	}

	opening, err := snap.Hours.Opening.Minutes()
	if err != nil {
		return slots
	}
	closing, err := snap.Hours.Closing.Minutes()
	if err != nil {
		return slots
	}

	// 3. Занятые интервалы этого дня
	busy := occupiedSpans(req, snap)

	// 4. Для сегодняшнего дня отбрасываем уже прошедшее время
	cutoff := -1
	if domain.SameDay(req.Date, now) {
		cutoff = now.Hour()*60 + now.Minute()
	}

	// 5. Обход сетки сразу дает возрастающий порядок
	for t := opening; t+duration <= closing; t += domain.SlotGranularityMinutes {
		if t <= cutoff || busy.contains(t) {
			continue
		}
		slot, err := types.FromMinutes(t)
		if err != nil {
			break
		}
		slots = append(slots, slot)
	}

	return slots
}

// Contains проверяет, что время start есть среди слотов
func Contains(slots []types.TimeString, start types.TimeString) bool {
	want, err := start.Minutes()
	if err != nil {
		return false
	}
	for _, s := range slots {
		if m, err := s.Minutes(); err == nil && m == want {
			return true
		}
	}
	return false
}

// span полуинтервал [start, end) в минутах от полуночи
type span struct {
	start int
	end   int
}

type spans []span

func (ss spans) contains(t int) bool {
	for _, s := range ss {
		if s.start <= t && t < s.end {
			return true
		}
	}
	return false
}

func occupiedSpans(req Request, snap Snapshot) spans {
	busy := make(spans, 0, len(snap.Appointments))
	for _, a := range snap.Appointments {
		if a == nil || !a.OnDay(req.Date) {
			continue
		}
		if req.ExcludeAppointmentID != nil && a.ID == *req.ExcludeAppointmentID {
			continue
		}
		// Устаревшая ссылка на услугу: запись не блокирует слоты
		d, ok := snap.Durations[a.ServiceID]
		if !ok || d <= 0 {
			continue
		}
		start, err := a.StartTime.Minutes()
		if err != nil {
			continue
		}
		busy = append(busy, span{start: start, end: start + d})
	}
	return busy
}

// dayBefore сравнивает только календарные дни: a раньше b
func dayBefore(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	if ay != by {
		return ay < by
	}
	if am != bm {
		return am < bm
	}
	return ad < bd
}
