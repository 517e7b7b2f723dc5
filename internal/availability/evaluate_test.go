package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2026-01-05 é segunda, 2026-01-07 é quarta.
func saoPaulo(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Sao_Paulo")
	require.NoError(t, err)
	return loc
}

func weekdayOnly(day string, intervals ...Interval) OperatingConfig {
	return OperatingConfig{
		ManualOpen: true,
		Schedule: Schedule{
			Timezone: "America/Sao_Paulo",
			Weekly:   WeeklySchedule{day: intervals},
		},
	}
}

func TestEvaluate_HalfOpenBoundary(t *testing.T) {
	loc := saoPaulo(t)
	cfg := weekdayOnly("mon", Interval{Start: "08:00", End: "18:00"})

	t.Run("abre exatamente no inicio", func(t *testing.T) {
		v, err := Evaluate(cfg, time.Date(2026, time.January, 5, 8, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, v.IsOpen)
		assert.Equal(t, SourceSchedule, v.Source)
		assert.Equal(t, "Loja aberta", v.Message)
	})

	t.Run("no minuto de fechar ja fechou", func(t *testing.T) {
		v, err := Evaluate(cfg, time.Date(2026, time.January, 5, 18, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.False(t, v.IsOpen)
		assert.Equal(t, SourceScheduleClosed, v.Source)
	})

	t.Run("um minuto antes de fechar ainda aberto", func(t *testing.T) {
		v, err := Evaluate(cfg, time.Date(2026, time.January, 5, 17, 59, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, v.IsOpen)
	})
}

func TestEvaluate_LunchGapWednesday(t *testing.T) {
	loc := saoPaulo(t)
	cfg := weekdayOnly("wed",
		Interval{Start: "08:00", End: "12:00"},
		Interval{Start: "13:00", End: "18:00"},
	)

	v, err := Evaluate(cfg, time.Date(2026, time.January, 7, 12, 30, 0, 0, loc))
	require.NoError(t, err)

	assert.False(t, v.IsOpen)
	assert.Equal(t, SourceScheduleClosed, v.Source)
	assert.Equal(t, "Loja fechada • Abre às 13:00", v.Message)
	require.NotNil(t, v.NextOpenAt)
	assert.Equal(t, &NextOpening{DayKey: "wed", Time: "13:00", OffsetDays: 0}, v.NextOpenAt)
}

func TestEvaluate_OverridePrecedence(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.January, 5, 10, 0, 0, 0, loc)

	allDay := weekdayOnly("mon", Interval{Start: "00:00", End: "23:59"})

	t.Run("CLOSED ganha de agenda aberta o dia todo", func(t *testing.T) {
		cfg := allDay
		cfg.Override = Override{Enabled: true, Mode: OverrideClosed, Reason: "Estoque em contagem"}

		v, err := Evaluate(cfg, now)
		require.NoError(t, err)
		assert.False(t, v.IsOpen)
		assert.Equal(t, SourceOverrideClosed, v.Source)
		assert.Equal(t, "Estoque em contagem", v.Message)
		assert.Equal(t, "Estoque em contagem", v.Reason)
	})

	t.Run("CLOSED sem motivo usa mensagem generica", func(t *testing.T) {
		cfg := allDay
		cfg.Override = Override{Enabled: true, Mode: OverrideClosed}

		v, err := Evaluate(cfg, now)
		require.NoError(t, err)
		assert.Equal(t, "Loja fechada no momento", v.Message)
		assert.Empty(t, v.Reason)
	})

	t.Run("OPEN ganha da pausa manual e de agenda vazia", func(t *testing.T) {
		cfg := OperatingConfig{
			ManualOpen: false,
			Schedule:   Schedule{Timezone: "America/Sao_Paulo"},
			Override:   Override{Enabled: true, Mode: OverrideOpen},
		}

		v, err := Evaluate(cfg, now)
		require.NoError(t, err)
		assert.True(t, v.IsOpen)
		assert.Equal(t, SourceOverrideOpen, v.Source)
		assert.Equal(t, "Loja aberta por exceção", v.Message)
	})

	t.Run("modo desconhecido cai na agenda", func(t *testing.T) {
		cfg := allDay
		cfg.Override = Override{Enabled: true, Mode: "MAYBE"}

		v, err := Evaluate(cfg, now)
		require.NoError(t, err)
		assert.True(t, v.IsOpen)
		assert.Equal(t, SourceSchedule, v.Source)
	})
}

func TestEvaluate_ManualPause(t *testing.T) {
	loc := saoPaulo(t)
	cfg := weekdayOnly("mon", Interval{Start: "00:00", End: "23:59"})
	cfg.ManualOpen = false

	v, err := Evaluate(cfg, time.Date(2026, time.January, 5, 10, 0, 0, 0, loc))
	require.NoError(t, err)

	assert.False(t, v.IsOpen)
	assert.Equal(t, SourceManualClosed, v.Source)
	assert.Equal(t, "Loja fechada (pausada pelo gestor)", v.Message)
}

func TestEvaluate_OverrideExpiry(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.January, 5, 10, 0, 0, 0, loc)

	cfg := weekdayOnly("mon", Interval{Start: "08:00", End: "18:00"})
	cfg.Override = Override{
		Enabled: true,
		Mode:    OverrideClosed,
		Until:   now.Add(time.Hour).Format(time.RFC3339),
	}

	before, err := Evaluate(cfg, now)
	require.NoError(t, err)
	assert.False(t, before.IsOpen)
	assert.Equal(t, SourceOverrideClosed, before.Source)

	// mesmo documento, duas horas depois: override expirou sozinho
	after, err := Evaluate(cfg, now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.True(t, after.IsOpen)
	assert.Equal(t, SourceSchedule, after.Source)
}

func TestEvaluate_SourceIsScheduleWithoutOverrides(t *testing.T) {
	loc := saoPaulo(t)

	configs := []OperatingConfig{
		weekdayOnly("mon", Interval{Start: "08:00", End: "18:00"}),
		weekdayOnly("tue", Interval{Start: "08:00", End: "18:00"}),
		weekdayOnly("mon"),
		{ManualOpen: true, Schedule: Schedule{Timezone: "America/Sao_Paulo"}},
	}

	for _, cfg := range configs {
		for hour := 0; hour < 24; hour += 6 {
			v, err := Evaluate(cfg, time.Date(2026, time.January, 5, hour, 0, 0, 0, loc))
			require.NoError(t, err)
			assert.Contains(t, []Source{SourceSchedule, SourceScheduleClosed}, v.Source)
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	loc := saoPaulo(t)
	now := time.Date(2026, time.January, 7, 12, 30, 0, 0, loc)
	cfg := weekdayOnly("wed",
		Interval{Start: "08:00", End: "12:00"},
		Interval{Start: "13:00", End: "18:00"},
	)

	first, err := Evaluate(cfg, now)
	require.NoError(t, err)
	second, err := Evaluate(cfg, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestEvaluate_Timezones(t *testing.T) {
	t.Run("timezone invalido falha alto", func(t *testing.T) {
		cfg := weekdayOnly("mon", Interval{Start: "08:00", End: "18:00"})
		cfg.Schedule.Timezone = "Marte/Olympus_Mons"

		_, err := Evaluate(cfg, time.Now())
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})

	t.Run("timezone ausente usa o default do avaliador", func(t *testing.T) {
		cfg := weekdayOnly("mon", Interval{Start: "08:00", End: "18:00"})
		cfg.Schedule.Timezone = ""

		// 10:00 UTC = 07:00 em São Paulo: fechado no default, aberto em UTC
		instant := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.UTC)

		v, err := Evaluate(cfg, instant)
		require.NoError(t, err)
		assert.False(t, v.IsOpen)

		utcEval := Evaluator{DefaultTimezone: "UTC"}
		v, err = utcEval.Evaluate(cfg, instant)
		require.NoError(t, err)
		assert.True(t, v.IsOpen)
	})

	t.Run("dia da semana segue a hora civil local", func(t *testing.T) {
		// 01:30 UTC de terça ainda é segunda 22:30 em São Paulo
		cfg := weekdayOnly("mon", Interval{Start: "22:00", End: "23:00"})

		v, err := Evaluate(cfg, time.Date(2026, time.January, 6, 1, 30, 0, 0, time.UTC))
		require.NoError(t, err)
		assert.True(t, v.IsOpen)
	})
}

func TestEvaluate_DegenerateIntervals(t *testing.T) {
	loc := saoPaulo(t)

	t.Run("end menor que start nunca abre", func(t *testing.T) {
		cfg := weekdayOnly("mon", Interval{Start: "18:00", End: "08:00"})

		for _, hhmm := range []int{7, 12, 20} {
			v, err := Evaluate(cfg, time.Date(2026, time.January, 5, hhmm, 0, 0, 0, loc))
			require.NoError(t, err)
			assert.False(t, v.IsOpen)
		}
	})

	t.Run("faixa invalida descartada sem derrubar o resto", func(t *testing.T) {
		cfg := weekdayOnly("mon",
			Interval{Start: "banana", End: "10:00"},
			Interval{Start: "08:00", End: "18:00"},
		)

		v, err := Evaluate(cfg, time.Date(2026, time.January, 5, 9, 0, 0, 0, loc))
		require.NoError(t, err)
		assert.True(t, v.IsOpen)
	})
}
