package availability

import "time"

// NextOpening descreve a próxima abertura encontrada na janela de busca.
type NextOpening struct {
	DayKey     string `json:"dayKey"`
	Time       string `json:"time"`
	OffsetDays int    `json:"offsetDays"`
}

// FindNextOpening com o default America/Sao_Paulo.
func FindNextOpening(cfg OperatingConfig, now time.Time) (*NextOpening, error) {
	return std.FindNextOpening(cfg, now)
}

// FindNextOpening varre hoje + seis dias à frente e devolve a primeira
// abertura futura, ou nil se a agenda inteira está vazia.
func (e Evaluator) FindNextOpening(cfg OperatingConfig, now time.Time) (*NextOpening, error) {
	loc, err := location(cfg.Schedule.Timezone, e.DefaultTimezone)
	if err != nil {
		return nil, err
	}

	return findNext(cfg.Schedule.Weekly, resolveClock(now, loc)), nil
}

// findNext é a varredura circular sobre a semana:
//   - offset 0 (hoje): só conta faixa com início estritamente depois do
//     minuto atual — faixa que já começou não é "próxima abertura";
//   - offsets 1..6: a faixa mais cedo do primeiro dia com agenda;
//   - sete dias vazios: nil.
func findNext(weekly WeeklySchedule, parts ClockParts) *NextOpening {
	nowMinutes := parts.minuteOfDay()

	for offset := 0; offset < 7; offset++ {
		day := parts.Weekday.Add(offset)
		spans := intervalsFor(weekly, day.Key())
		if len(spans) == 0 {
			continue
		}

		if offset == 0 {
			for _, sp := range spans {
				if int(sp.start) > nowMinutes {
					return &NextOpening{DayKey: day.Key(), Time: sp.Start, OffsetDays: 0}
				}
			}
			continue
		}

		return &NextOpening{DayKey: day.Key(), Time: spans[0].Start, OffsetDays: offset}
	}

	return nil
}
