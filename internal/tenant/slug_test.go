package tenant

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSlug(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "valido", input: "pizzaria-bella", expected: "pizzaria-bella"},
		{name: "normaliza caixa e espacos", input: "  Pizzaria-Bella ", expected: "pizzaria-bella"},
		{name: "curto demais", input: "a", expected: ""},
		{name: "caracteres invalidos", input: "pizzaria_bella", expected: ""},
		{name: "vazio", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeSlug(tt.input))
		})
	}
}

func TestSlugFromHostname(t *testing.T) {
	const root = "apfood.com.br"

	tests := []struct {
		name     string
		hostname string
		query    url.Values
		expected string
	}{
		{name: "subdominio direto", hostname: "pizzaria-bella.apfood.com.br", expected: "pizzaria-bella"},
		{name: "host com porta", hostname: "pizzaria-bella.apfood.com.br:8080", expected: "pizzaria-bella"},
		{name: "caixa alta", hostname: "PIZZARIA-BELLA.APFOOD.COM.BR", expected: "pizzaria-bella"},
		{name: "dominio raiz sem subdominio", hostname: "apfood.com.br", expected: ""},
		{name: "subdominio aninhado", hostname: "a.b.apfood.com.br", expected: ""},
		{name: "dominio estranho", hostname: "pizzaria-bella.outro.com", expected: ""},
		{
			name:     "localhost usa query param",
			hostname: "localhost",
			query:    url.Values{"loja": []string{"pizzaria-bella"}},
			expected: "pizzaria-bella",
		},
		{
			name:     "localhost sem param",
			hostname: "127.0.0.1",
			expected: "",
		},
		{
			name:     "localhost com param invalido",
			hostname: "localhost",
			query:    url.Values{"loja": []string{"Não Válido"}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SlugFromHostname(tt.hostname, tt.query, root))
		})
	}
}

func TestHostnameFromHeaders(t *testing.T) {
	t.Run("prefere x-forwarded-host", func(t *testing.T) {
		h := http.Header{}
		h.Set("X-Forwarded-Host", "Loja.Apfood.com.br, proxy.interno")

		assert.Equal(t, "loja.apfood.com.br", HostnameFromHeaders(h, "fallback.com"))
	})

	t.Run("cai no host da requisicao", func(t *testing.T) {
		assert.Equal(t, "loja.apfood.com.br", HostnameFromHeaders(http.Header{}, "loja.apfood.com.br"))
	})
}
