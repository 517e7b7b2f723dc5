package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestOverrideActive(t *testing.T) {
	now := time.Date(2026, time.January, 5, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		override Override
		expected bool
	}{
		{
			name:     "desabilitado nunca vale",
			override: Override{Enabled: false, Mode: OverrideClosed, Until: now.Add(time.Hour).Format(time.RFC3339)},
			expected: false,
		},
		{
			name:     "sem until vale indefinidamente",
			override: Override{Enabled: true, Mode: OverrideClosed},
			expected: true,
		},
		{
			name:     "until no futuro vale",
			override: Override{Enabled: true, Mode: OverrideOpen, Until: now.Add(time.Hour).Format(time.RFC3339)},
			expected: true,
		},
		{
			name:     "until no passado expirou",
			override: Override{Enabled: true, Mode: OverrideOpen, Until: now.Add(-time.Hour).Format(time.RFC3339)},
			expected: false,
		},
		{
			name:     "until igual a now ja expirou (estrito)",
			override: Override{Enabled: true, Mode: OverrideClosed, Until: now.Format(time.RFC3339)},
			expected: false,
		},
		{
			name:     "until que nao parseia conta como inativo",
			override: Override{Enabled: true, Mode: OverrideClosed, Until: "amanha de manha"},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, overrideActive(tt.override, now))
		})
	}
}
