package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

// ErrInvalidTimezone indica timezone informado mas desconhecido pelo IANA.
// Timezone ausente não é erro: cai no default configurado.
var ErrInvalidTimezone = errors.New("invalid timezone")

// ClockParts é o instante convertido para hora civil local.
type ClockParts struct {
	Weekday Weekday
	Hour    int
	Minute  int
}

func (p ClockParts) minuteOfDay() int {
	return p.Hour*60 + p.Minute
}

// location resolve o timezone efetivo. Vazio usa o fallback; inválido
// falha alto em vez de substituir em silêncio.
func location(tz, fallback string) (*time.Location, error) {
	tz = strings.TrimSpace(tz)
	if tz == "" {
		tz = fallback
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, tz)
	}
	return loc, nil
}

// resolveClock extrai dia da semana, hora e minuto civis (com DST correto).
func resolveClock(now time.Time, loc *time.Location) ClockParts {
	local := now.In(loc)
	return ClockParts{
		Weekday: weekdayOf(local),
		Hour:    local.Hour(),
		Minute:  local.Minute(),
	}
}
