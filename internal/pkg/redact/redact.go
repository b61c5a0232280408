// Пакет redact маскирует чувствительные значения перед записью в лог:
// адреса почты, reset-ссылки (токен живёт в query) и одноразовые коды.
package redact

import "strings"

// Email маскирует локальную часть адреса, сохраняя домен.
// Невалидный формат целиком заменяется на "***".
func Email(s string) string {
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return "***"
	}

	if r := []rune(local); len(r) > 2 {
		return string(r[:2]) + "***@" + domain
	}

	return "***@" + domain
}

// Link обрезает query-часть URL: токен восстановления передаётся параметром.
func Link(s string) string {
	base, _, ok := strings.Cut(s, "?")
	if !ok {
		return s
	}

	return base + "?***"
}

// Passcode — литерал вместо одноразового кода.
func Passcode() string { return "[REDACTED_CODE]" }
