package availability

import (
	"sort"
	"strings"
)

// ===============================
// Documento de operação da loja
// ===============================

// Interval é uma faixa de funcionamento dentro de um dia ("08:00" até "18:00").
type Interval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type DaySchedule []Interval

// WeeklySchedule mapeia "sun".."sat" para as faixas do dia.
// Dia ausente equivale a fechado o dia inteiro.
type WeeklySchedule map[string]DaySchedule

type Schedule struct {
	Timezone string         `json:"timezone"`
	Weekly   WeeklySchedule `json:"weekly"`
}

// OperatingConfig é o snapshot imutável avaliado pelo motor.
type OperatingConfig struct {
	ManualOpen bool     `json:"manualOpen"`
	Schedule   Schedule `json:"schedule"`
	Override   Override `json:"override"`
}

// ===============================
// TimeOfDay
// ===============================

// TimeOfDay é um horário de parede em minutos desde a meia-noite local [0, 1440).
type TimeOfDay int

// ParseTimeOfDay aceita somente "HH:MM" com dois dígitos em cada campo
// e valor dentro do dia. Qualquer outra coisa é rejeitada, nunca corrigida.
func ParseTimeOfDay(s string) (TimeOfDay, bool) {
	if len(s) != 5 || s[2] != ':' {
		return 0, false
	}
	for _, i := range [4]int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if h > 23 || m > 59 {
		return 0, false
	}

	return TimeOfDay(h*60 + m), true
}

// ===============================
// Normalização
// ===============================

// span é um Interval já validado, com os minutos resolvidos.
type span struct {
	Interval
	start TimeOfDay
	end   TimeOfDay
}

// normalizeInterval descarta a faixa (não o documento inteiro) quando
// start/end não casam com HH:MM.
func normalizeInterval(raw Interval) (span, bool) {
	start := strings.TrimSpace(raw.Start)
	end := strings.TrimSpace(raw.End)

	startMin, ok := ParseTimeOfDay(start)
	if !ok {
		return span{}, false
	}
	endMin, ok := ParseTimeOfDay(end)
	if !ok {
		return span{}, false
	}

	return span{
		Interval: Interval{Start: start, End: end},
		start:    startMin,
		end:      endMin,
	}, true
}

// intervalsFor devolve as faixas válidas do dia, ordenadas por início.
// Duplicadas e sobrepostas são preservadas; cada uma é testada sozinha.
func intervalsFor(weekly WeeklySchedule, dayKey string) []span {
	raw := weekly[dayKey]
	if len(raw) == 0 {
		return nil
	}

	spans := make([]span, 0, len(raw))
	for _, interval := range raw {
		if sp, ok := normalizeInterval(interval); ok {
			spans = append(spans, sp)
		}
	}

	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].start < spans[j].start
	})

	return spans
}

// ===============================
// Default (mesmo documento criado para lojas novas)
// ===============================

func DefaultOperatingConfig() OperatingConfig {
	businessDay := DaySchedule{{Start: "08:00", End: "18:00"}}

	return OperatingConfig{
		ManualOpen: true,
		Schedule: Schedule{
			Timezone: DefaultTimezone,
			Weekly: WeeklySchedule{
				"mon": businessDay,
				"tue": businessDay,
				"wed": businessDay,
				"thu": businessDay,
				"fri": businessDay,
				"sat": {{Start: "09:00", End: "14:00"}},
				"sun": {},
			},
		},
		Override: Override{
			Enabled: false,
			Mode:    OverrideClosed,
		},
	}
}
