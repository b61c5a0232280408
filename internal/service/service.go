// service содержит бизнес-логику auth-сервиса приложения kinship:
// выпуск/проверку/ротацию пары access+refresh токенов, обнаружение
// повторного предъявления (кражи) refresh-токена, парольные дайджесты и
// одноразовые reset/MFA-токены. Работа с хранилищем идёт только через
// интерфейсы пакета storage.
//
// Основные аспекты:
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при условии,
//     что переданное хранилище (storage.Storage) потокобезопасно.
//   - Движок ротации — единственный мутатор записей AuthRecord; каждый вызов
//     Provision/Check — один read-modify-write по user_id без межвызовных
//     транзакций (конкурентные Check по одному пользователю — известная гонка,
//     её поглощает допуск на одно поколение ротации).
//   - Ошибки возвращаются сентинелами и далее маппятся транспортом
//     на gRPC-коды (см. комментарии к переменным ошибок ниже).
package service

import (
	"errors"

	"github.com/avilovaa/kinship/auth-service/internal/cache"
	"github.com/avilovaa/kinship/auth-service/internal/config"
	"github.com/avilovaa/kinship/auth-service/internal/keys"
	"github.com/avilovaa/kinship/auth-service/internal/mailer"
	"github.com/avilovaa/kinship/auth-service/internal/storage"
	"github.com/avilovaa/kinship/auth-service/internal/tokens"
)

var (
	// ErrNoSession — для пользователя нет записи аутентификации
	// (Check до первого Provision либо после удаления пользователя).
	// Транспорт: codes.NotFound (HTTP 404).
	ErrNoSession = errors.New("no active session")

	// ErrInvalidAccessToken — предъявленный access-токен не совпадает с
	// последним выпущенным (даже просроченный access обязан совпадать — это
	// первичная проверка учётных данных). Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidAccessToken = errors.New("invalid access token")

	// ErrAccessDenied — предъявлен refresh-токен предыдущего поколения:
	// достоверный признак кражи. Сессия сожжена для всех держателей.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrAccessDenied = errors.New("access denied")

	// ErrReauthRequired — access просрочен, а валидного refresh нет;
	// пользователь должен войти заново. Транспорт: codes.Unauthenticated (HTTP 401).
	ErrReauthRequired = errors.New("re-authentication required")

	// ErrInvalidToken — токен (хранимый пейлоад/reset/MFA) некорректен по
	// формату или подписи, отсутствует либо уже погашен.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrInvalidToken = errors.New("invalid token")

	// ErrTokenExpired — срок действия одноразового (reset/MFA) токена истёк.
	// Транспорт: codes.Unauthenticated (HTTP 401).
	ErrTokenExpired = errors.New("token expired")

	// ErrEmptyPassword — пустой плейнтекст передан в парольные операции.
	// Транспорт: codes.InvalidArgument (HTTP 400).
	ErrEmptyPassword = errors.New("password is empty")

	// ErrPasswordTooLong — плейнтекст длиннее допустимого предела.
	// Транспорт: codes.InvalidArgument (HTTP 400).
	ErrPasswordTooLong = errors.New("password is too long")

	// ErrPasswordReused — новый пароль совпадает с действующим
	// (проверка переиспользования в reset-флоу).
	// Транспорт: codes.InvalidArgument (HTTP 400).
	ErrPasswordReused = errors.New("password was already used")
)

// Service описывает бизнес-логику auth-сервиса.
type Service struct {
	storage storage.Storage
	cfg     config.AuthConfig
	keys    *keys.Manager
	sealer  *tokens.Sealer
	mailer  mailer.Mailer    // может быть nil, если доставка не сконфигурирована
	rcache  cache.AuthCache  // может быть nil, если кэш не сконфигурирован
}

// New создаёт новый экземпляр Service.
func New(storage storage.Storage, cfg config.AuthConfig, km *keys.Manager) *Service {
	return &Service{
		storage: storage,
		cfg:     cfg,
		keys:    km,
		sealer:  tokens.NewSealer(cfg.HMACSecret, cfg.StaticSecret),
	}
}

// SetMailer устанавливает отправителя писем (опционально).
func (s *Service) SetMailer(m mailer.Mailer) {
	s.mailer = m
}

// SetAuthCache устанавливает кэш записей аутентификации (опционально).
func (s *Service) SetAuthCache(c cache.AuthCache) {
	s.rcache = c
}

// PublicKeyPEM возвращает публичную половину серверной пары в PEM:
// клиенты шифруют ею пароли перед отправкой и проверяют подписи
// одноразовых токенов.
func (s *Service) PublicKeyPEM() (string, error) {
	pem, err := s.keys.PublicPEM()
	if err != nil {
		return "", err
	}

	return string(pem), nil
}
