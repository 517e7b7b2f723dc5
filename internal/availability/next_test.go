package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindNextOpening(t *testing.T) {
	loc := saoPaulo(t)
	monday := func(hour, minute int) time.Time {
		return time.Date(2026, time.January, 5, hour, minute, 0, 0, loc)
	}

	t.Run("agenda so de segunda vista segunda 15h devolve nil", func(t *testing.T) {
		// a faixa de hoje já começou e a janela vai só até domingo:
		// a próxima segunda fica fora dos 7 dias de busca
		cfg := weekdayOnly("mon", Interval{Start: "09:00", End: "14:00"})

		next, err := FindNextOpening(cfg, monday(15, 0))
		require.NoError(t, err)
		assert.Nil(t, next)
	})

	t.Run("mais tarde hoje", func(t *testing.T) {
		cfg := weekdayOnly("mon", Interval{Start: "09:00", End: "14:00"})

		next, err := FindNextOpening(cfg, monday(8, 30))
		require.NoError(t, err)
		assert.Equal(t, &NextOpening{DayKey: "mon", Time: "09:00", OffsetDays: 0}, next)
	})

	t.Run("faixa que ja comecou nao conta como proxima", func(t *testing.T) {
		cfg := weekdayOnly("mon",
			Interval{Start: "09:00", End: "14:00"},
			Interval{Start: "16:00", End: "20:00"},
		)

		next, err := FindNextOpening(cfg, monday(10, 0))
		require.NoError(t, err)
		assert.Equal(t, &NextOpening{DayKey: "mon", Time: "16:00", OffsetDays: 0}, next)
	})

	t.Run("pula dias vazios ate o proximo com agenda", func(t *testing.T) {
		cfg := weekdayOnly("thu", Interval{Start: "10:00", End: "16:00"})

		next, err := FindNextOpening(cfg, monday(20, 0))
		require.NoError(t, err)
		assert.Equal(t, &NextOpening{DayKey: "thu", Time: "10:00", OffsetDays: 3}, next)
	})

	t.Run("busca circula pelo fim de semana", func(t *testing.T) {
		cfg := weekdayOnly("mon", Interval{Start: "09:00", End: "14:00"})

		// sábado 2026-01-10: segunda está dois dias à frente
		saturday := time.Date(2026, time.January, 10, 12, 0, 0, 0, loc)
		next, err := FindNextOpening(cfg, saturday)
		require.NoError(t, err)
		assert.Equal(t, &NextOpening{DayKey: "mon", Time: "09:00", OffsetDays: 2}, next)
	})

	t.Run("semana inteira vazia devolve nil", func(t *testing.T) {
		cfg := OperatingConfig{
			ManualOpen: true,
			Schedule:   Schedule{Timezone: "America/Sao_Paulo", Weekly: WeeklySchedule{}},
		}

		next, err := FindNextOpening(cfg, monday(12, 0))
		require.NoError(t, err)
		assert.Nil(t, next)

		v, err := Evaluate(cfg, monday(12, 0))
		require.NoError(t, err)
		assert.False(t, v.IsOpen)
		assert.Equal(t, "Loja fechada", v.Message)
		assert.Nil(t, v.NextOpenAt)
	})

	t.Run("timezone invalido tambem falha aqui", func(t *testing.T) {
		cfg := weekdayOnly("mon", Interval{Start: "09:00", End: "14:00"})
		cfg.Schedule.Timezone = "Lua/Mare_Tranquillitatis"

		_, err := FindNextOpening(cfg, monday(8, 0))
		assert.ErrorIs(t, err, ErrInvalidTimezone)
	})
}
