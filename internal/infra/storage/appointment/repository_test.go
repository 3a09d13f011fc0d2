package appointment

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberShop/internal/domain"
	"github.com/m04kA/SMC-BarberShop/pkg/ptr"
)

func TestBuildListQuery_SingleDayInTransactionLocksRows(t *testing.T) {
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	query, args, err := buildListQuery(domain.AppointmentsFilter{From: &day, To: &day}, true)

	require.NoError(t, err)
	assert.Contains(t, query, "a.appointment_date >= $1")
	assert.Contains(t, query, "a.appointment_date <= $2")
	assert.Contains(t, query, "a.status NOT IN ($3)")
	assert.Contains(t, query, "LEFT JOIN services s ON s.id = a.service_id")
	assert.True(t, strings.HasSuffix(query, "FOR UPDATE OF a"))
	assert.Equal(t, []interface{}{"2026-10-20", "2026-10-20", "cancelled"}, args)
}

func TestBuildListQuery_NoLockOutsideTransaction(t *testing.T) {
	day := time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC)

	query, _, err := buildListQuery(domain.AppointmentsFilter{From: &day, To: &day}, false)

	require.NoError(t, err)
	assert.NotContains(t, query, "FOR UPDATE")
}

func TestBuildListQuery_StatusAndClient(t *testing.T) {
	status := domain.StatusConfirmed

	query, args, err := buildListQuery(domain.AppointmentsFilter{
		Status:   &status,
		ClientID: ptr.Ptr(int64(5)),
	}, true)

	require.NoError(t, err)
	assert.Contains(t, query, "a.client_id = $1")
	assert.Contains(t, query, "a.status = $2")
	assert.NotContains(t, query, "NOT IN")
	assert.NotContains(t, query, "FOR UPDATE")
	assert.Equal(t, []interface{}{int64(5), domain.StatusConfirmed}, args)
}

func TestBuildListQuery_IncludeCancelled(t *testing.T) {
	query, args, err := buildListQuery(domain.AppointmentsFilter{IncludeCancelled: true}, false)

	require.NoError(t, err)
	assert.NotContains(t, query, "WHERE")
	assert.Empty(t, args)
}

func TestBuildDueQuery(t *testing.T) {
	from := time.Date(2026, 10, 20, 9, 0, 0, 0, time.Local)
	to := from.Add(time.Hour)

	query, args, err := buildDueQuery(from, to)

	require.NoError(t, err)
	assert.Contains(t, query, "a.reminder_sent_at IS NULL")
	assert.Contains(t, query, "(a.appointment_date + a.start_time) > $2::timestamp")
	assert.Contains(t, query, "(a.appointment_date + a.start_time) <= $3::timestamp")
	assert.Equal(t, []interface{}{"cancelled", "2026-10-20 09:00:00", "2026-10-20 10:00:00"}, args)
}
