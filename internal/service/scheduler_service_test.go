package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildDailySpec(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "08:30", want: "0 30 8 * * *"},
		{in: "0:0", want: "0 0 0 * * *"},
		{in: "23:59", want: "0 59 23 * * *"},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
		{in: "1:2:3", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tc := range testCases {
		got, err := buildDailySpec(tc.in)
		if tc.wantErr {
			assert.Errorf(t, err, "input %q", tc.in)
			continue
		}
		require.NoErrorf(t, err, "input %q", tc.in)
		assert.Equal(t, tc.want, got)
	}
}

func Test_SchedulerService_Schedule(t *testing.T) {
	t.Parallel()

	s := NewSchedulerService(time.UTC)
	noop := func() {}

	_, err := s.Schedule("", 0, noop)
	assert.ErrorIs(t, err, ErrNoSchedule)

	_, err = s.Schedule("25:00", 0, noop)
	assert.Error(t, err)

	_, err = s.ScheduleInterval(-time.Second, noop)
	assert.Error(t, err)

	_, err = s.Schedule("07:15", time.Hour, noop)
	require.NoError(t, err)
	_, err = s.Schedule("", 90*time.Minute, noop)
	require.NoError(t, err)

	assert.Len(t, s.cron.Entries(), 2)
}

func Test_SchedulerService_Runs_Interval_Job(t *testing.T) {
	t.Parallel()

	s := NewSchedulerService(time.UTC)
	fired := make(chan struct{}, 1)
	_, err := s.ScheduleInterval(time.Second, func() {
		select {
		case fired <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)

	s.Start()
	defer s.Stop()

	select {
	case <-fired:
	case <-time.After(5 * time.Second):
		t.Fatal("interval job did not fire")
	}
}
