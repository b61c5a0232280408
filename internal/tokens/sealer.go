package tokens

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
)

// headerBlob — константный заголовочный сегмент.
// Его запечатка одинакова для всех токенов одного сервера и играет роль
// маркера формата.
const headerBlob = `{"alg":"HS256","typ":"KAT"}`

// Sealer детерминированно запечатывает пейлоады под серверным HMAC-ключом.
//
// Токен — три независимых HMAC-SHA256 (заголовок, пейлоад, статический
// секрет), закодированных base64 RawURL и склеенных точками. Один и тот же
// пейлоад всегда даёт одну и ту же строку: проверка валидности — это
// повторная запечатка и сравнение, отдельного шага verify не существует.
//
// Sealer иммутабелен после создания и безопасен для конкурентного
// использования.
type Sealer struct {
	key    []byte
	secret string
}

// NewSealer создаёт Sealer с серверным ключом key и статическим секретом secret.
func NewSealer(key, secret string) *Sealer {
	return &Sealer{
		key:    []byte(key),
		secret: secret,
	}
}

// Seal запечатывает пейлоад в строку токена.
func (s *Sealer) Seal(payload string) string {
	return s.mac(headerBlob) + "." + s.mac(payload) + "." + s.mac(s.secret)
}

// Matches повторно запечатывает payload и сравнивает с token за константное
// время. Сравнение не ветвится по позиции несовпадения и не завершается
// раньше на совпадающих префиксах.
func (s *Sealer) Matches(token, payload string) bool {
	if payload == "" {
		// Пустой пейлоад (prev до первой ротации) не совпадает ни с чем.
		return false
	}

	return ConstantTimeEqual(token, s.Seal(payload))
}

func (s *Sealer) mac(data string) string {
	h := hmac.New(sha256.New, s.key)
	h.Write([]byte(data))

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil))
}

// ConstantTimeEqual сравнивает две строки за константное по содержимому время.
// Различие длин обнаруживается, но позиция первого расхождения не влияет
// на длительность сравнения.
func ConstantTimeEqual(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// RandomString возвращает криптослучайную строку из n байт энтропии
// в кодировке base64 RawURL.
func RandomString(n int) (string, error) {
	const op = "tokens.RandomString"

	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
