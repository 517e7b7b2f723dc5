package availability

import (
	"strings"
	"time"
)

// ===============================
// Override (força aberto/fechado com validade opcional)
// ===============================

type OverrideMode string

const (
	OverrideOpen   OverrideMode = "OPEN"
	OverrideClosed OverrideMode = "CLOSED"
)

// Override é o estado forçado pelo gestor. Until fica como string RFC3339
// do documento persistido; vazio significa sem validade.
type Override struct {
	Enabled bool         `json:"enabled"`
	Mode    OverrideMode `json:"mode"`
	Reason  string       `json:"reason,omitempty"`
	Until   string       `json:"until,omitempty"`
}

// overrideActive decide se o override vale neste instante.
//   - desabilitado nunca vale;
//   - sem until, vale até alguém desligar;
//   - com until, vale enquanto now < until (estrito); expira sozinho,
//     sem job de limpeza;
//   - until que não parseia conta como inativo.
func overrideActive(o Override, now time.Time) bool {
	if !o.Enabled {
		return false
	}

	raw := strings.TrimSpace(o.Until)
	if raw == "" {
		return true
	}

	until, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return false
	}

	return now.Before(until)
}
