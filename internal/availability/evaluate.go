// Package availability decide se uma loja está aberta num instante e quando
// abre de novo, a partir do documento de operação (agenda semanal, pausa
// manual e override). Tudo aqui é puro: sem estado, sem I/O, seguro para
// chamadas concorrentes. O mesmo motor atende o checkout e a vitrine.
package availability

import (
	"fmt"
	"time"
)

// ===============================
// Verdict
// ===============================

type Source string

const (
	SourceOverrideClosed Source = "override-closed"
	SourceOverrideOpen   Source = "override-open"
	SourceManualClosed   Source = "manual-closed"
	SourceSchedule       Source = "schedule"
	SourceScheduleClosed Source = "schedule-closed"
)

// Verdict é o resultado de uma avaliação. Campos que não pertencem ao
// source ficam zerados/omitidos.
type Verdict struct {
	IsOpen     bool         `json:"isOpen"`
	Message    string       `json:"message"`
	Source     Source       `json:"source"`
	NextOpenAt *NextOpening `json:"nextOpenAt,omitempty"`
	Reason     string       `json:"reason,omitempty"`
}

// ===============================
// Evaluator
// ===============================

// Evaluator carrega o timezone usado quando o documento não informa um.
type Evaluator struct {
	DefaultTimezone string
}

var std = Evaluator{DefaultTimezone: DefaultTimezone}

// Evaluate com o default America/Sao_Paulo.
func Evaluate(cfg OperatingConfig, now time.Time) (Verdict, error) {
	return std.Evaluate(cfg, now)
}

// Evaluate aplica a precedência: override ativo > pausa manual > agenda.
// O único erro possível é ErrInvalidTimezone.
func (e Evaluator) Evaluate(cfg OperatingConfig, now time.Time) (Verdict, error) {
	loc, err := location(cfg.Schedule.Timezone, e.DefaultTimezone)
	if err != nil {
		return Verdict{}, err
	}

	// 1️⃣ Override sempre ganha da pausa manual e da agenda
	if overrideActive(cfg.Override, now) {
		switch cfg.Override.Mode {
		case OverrideClosed:
			message := cfg.Override.Reason
			if message == "" {
				message = "Loja fechada no momento"
			}
			return Verdict{
				IsOpen:  false,
				Message: message,
				Reason:  cfg.Override.Reason,
				Source:  SourceOverrideClosed,
			}, nil

		case OverrideOpen:
			return Verdict{
				IsOpen:  true,
				Message: "Loja aberta por exceção",
				Source:  SourceOverrideOpen,
			}, nil
		}
		// modo desconhecido cai na agenda
	}

	// 2️⃣ Pausa manual do gestor
	if !cfg.ManualOpen {
		return Verdict{
			IsOpen:  false,
			Message: "Loja fechada (pausada pelo gestor)",
			Source:  SourceManualClosed,
		}, nil
	}

	// 3️⃣ Agenda semanal: aberto se alguma faixa contém o minuto atual.
	// Início inclusivo, fim exclusivo — no minuto de fechar já fechou.
	parts := resolveClock(now, loc)
	nowMinutes := parts.minuteOfDay()

	for _, sp := range intervalsFor(cfg.Schedule.Weekly, parts.Weekday.Key()) {
		if nowMinutes >= int(sp.start) && nowMinutes < int(sp.end) {
			return Verdict{
				IsOpen:  true,
				Message: "Loja aberta",
				Source:  SourceSchedule,
			}, nil
		}
	}

	// 4️⃣ Fechado agora: procura a próxima abertura para a mensagem
	if next := findNext(cfg.Schedule.Weekly, parts); next != nil {
		return Verdict{
			IsOpen:     false,
			Message:    fmt.Sprintf("Loja fechada • Abre às %s", next.Time),
			NextOpenAt: next,
			Source:     SourceScheduleClosed,
		}, nil
	}

	return Verdict{
		IsOpen:  false,
		Message: "Loja fechada",
		Source:  SourceScheduleClosed,
	}, nil
}
