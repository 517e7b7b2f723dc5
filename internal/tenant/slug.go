// Package tenant resolve a loja dona da requisição a partir do hostname
// (<slug>.apfood.com.br). Em host local o slug vem do query param "loja".
package tenant

import (
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const FallbackQueryParam = "loja"

var localHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"0.0.0.0":   true,
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]{2,50}$`)

// SanitizeSlug normaliza e valida um slug; devolve "" quando inválido.
func SanitizeSlug(value string) string {
	normalized := strings.ToLower(strings.TrimSpace(value))
	if !slugPattern.MatchString(normalized) {
		return ""
	}
	return normalized
}

// SlugFromHostname extrai o slug do tenant do hostname:
//   - host local usa o query param de fallback;
//   - fora disso o host precisa ser subdomínio direto do domínio raiz
//     (um nível só, sem pontos no subdomínio).
func SlugFromHostname(hostname string, query url.Values, rootDomain string) string {
	lowerHost := strings.ToLower(strings.TrimSpace(hostname))
	if host, _, ok := strings.Cut(lowerHost, ":"); ok {
		lowerHost = host
	}

	if localHosts[lowerHost] {
		return SanitizeSlug(query.Get(FallbackQueryParam))
	}

	suffix := "." + strings.ToLower(rootDomain)
	if !strings.HasSuffix(lowerHost, suffix) {
		return ""
	}

	subdomain := strings.TrimSuffix(lowerHost, suffix)
	if subdomain == "" || strings.Contains(subdomain, ".") {
		return ""
	}

	return SanitizeSlug(subdomain)
}

// HostnameFromHeaders respeita proxy: X-Forwarded-Host antes do Host.
func HostnameFromHeaders(header http.Header, fallbackHost string) string {
	forwarded := header.Get("X-Forwarded-Host")
	if forwarded == "" {
		forwarded = fallbackHost
	}

	host, _, _ := strings.Cut(forwarded, ",")
	return strings.ToLower(strings.TrimSpace(host))
}
