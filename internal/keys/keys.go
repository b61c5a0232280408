// keys содержит менеджер асимметричной пары сервиса.
//
// Пара RSA генерируется один раз на жизнь процесса (или загружается из PEM,
// сохранённого внешним конфигурационным хранилищем) и не ротируется.
// Публичная половина отдаётся клиентам: они шифруют ею пароли и секреты,
// чтобы TLS не был единственным слоем защиты. Приватная половина используется
// только сервером — для расшифровки и для подписей одноразовых
// (reset/MFA) токенов, независимых от HMAC-запечатки движка ротации.
package keys

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
)

// ErrCrypto — криптооперация не удалась: битый ключевой материал, чужой
// шифртекст, неверная подпись. Наружу никогда не уходит сырая низкоуровневая
// ошибка. Транспорт: codes.InvalidArgument (HTTP 400).
var ErrCrypto = errors.New("crypto operation failed")

// Manager владеет парой RSA и выполняет все операции над ней.
// После создания иммутабелен и безопасен для конкурентного использования.
type Manager struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
}

// Generate создаёт свежую пару RSA указанного размера (минимум 2048 бит).
func Generate(bits int) (*Manager, error) {
	const op = "keys.Generate"

	if bits < 2048 {
		return nil, fmt.Errorf("%s: key size %d is below 2048: %w", op, bits, ErrCrypto)
	}

	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrCrypto)
	}

	return &Manager{private: key, public: &key.PublicKey}, nil
}

// FromPEM восстанавливает менеджер из PEM-блока приватного ключа (PKCS#8 или
// PKCS#1).
func FromPEM(privatePEM []byte) (*Manager, error) {
	const op = "keys.FromPEM"

	block, _ := pem.Decode(privatePEM)
	if block == nil {
		return nil, fmt.Errorf("%s: no PEM block: %w", op, ErrCrypto)
	}

	var key *rsa.PrivateKey
	if parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := parsed.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("%s: not an RSA key: %w", op, ErrCrypto)
		}
		key = rsaKey
	} else if parsed, err := x509.ParsePKCS1PrivateKey(block.Bytes); err == nil {
		key = parsed
	} else {
		return nil, fmt.Errorf("%s: unparsable private key: %w", op, ErrCrypto)
	}

	return &Manager{private: key, public: &key.PublicKey}, nil
}

// PrivatePEM сериализует приватный ключ в PKCS#8 PEM.
func (m *Manager) PrivatePEM() ([]byte, error) {
	const op = "keys.PrivatePEM"

	der, err := x509.MarshalPKCS8PrivateKey(m.private)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrCrypto)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}

// PublicPEM сериализует публичный ключ в PKIX PEM; эта форма отдаётся клиентам.
func (m *Manager) PublicPEM() ([]byte, error) {
	const op = "keys.PublicPEM"

	der, err := x509.MarshalPKIXPublicKey(m.public)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrCrypto)
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}), nil
}

// Encrypt шифрует plaintext публичным ключом (RSA-OAEP, SHA-256).
func (m *Manager) Encrypt(plaintext []byte) ([]byte, error) {
	const op = "keys.Encrypt"

	ciphertext, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, m.public, plaintext, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrCrypto)
	}

	return ciphertext, nil
}

// Decrypt расшифровывает ciphertext приватным ключом (RSA-OAEP, SHA-256).
func (m *Manager) Decrypt(ciphertext []byte) ([]byte, error) {
	const op = "keys.Decrypt"

	plaintext, err := rsa.DecryptOAEP(sha256.New(), rand.Reader, m.private, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrCrypto)
	}

	return plaintext, nil
}

// Sign подписывает text приватным ключом (PKCS#1 v1.5, SHA-256).
func (m *Manager) Sign(text []byte) ([]byte, error) {
	const op = "keys.Sign"

	digest := sha256.Sum256(text)
	sig, err := rsa.SignPKCS1v15(rand.Reader, m.private, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, ErrCrypto)
	}

	return sig, nil
}

// Verify проверяет подпись text публичным ключом.
func (m *Manager) Verify(text, signature []byte) bool {
	digest := sha256.Sum256(text)

	return rsa.VerifyPKCS1v15(m.public, crypto.SHA256, digest[:], signature) == nil
}

// Private возвращает приватный ключ для подписи RS256-токенов (reset/MFA).
func (m *Manager) Private() *rsa.PrivateKey { return m.private }

// Public возвращает публичный ключ для проверки RS256-токенов.
func (m *Manager) Public() *rsa.PublicKey { return m.public }
