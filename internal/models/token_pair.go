package models

import "time"

// TokenPair — пара запечатанных токенов, возвращаемая Provision/Check.
//
// Описание:
//   - AccessToken — короткоживущая запечатка access-пейлоада; проверяется
//     на каждом запросе;
//   - RefreshToken — запечатка refresh-пейлоада; сама ротируется при каждом
//     успешном использовании;
//   - AccessExpiresAt — момент истечения access-пейлоада (UTC).
//
// Клиент обязан заменить обе ранее выданные строки на возвращённые,
// даже если они выглядят неизменными.
type TokenPair struct {
	// AccessToken — запечатанный access-токен.
	AccessToken string
	// RefreshToken — запечатанный refresh-токен.
	RefreshToken string
	// AccessExpiresAt — время истечения access-токена (UTC).
	AccessExpiresAt time.Time
}
