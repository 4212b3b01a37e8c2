// Package obfuscate — обратимое клиентское преобразование секретов.
//
// Это НЕ криптография: детерминированный XOR с фиксированным ключом плюс
// base64. Преобразование защищает только от случайного просмотра байтов
// в хранилище; настоящая конфиденциальность потребует рандомизированного
// аутентифицированного шифрования с пользовательским ключом.
package obfuscate

import "encoding/base64"

// transformKey — фиксированный повторяющийся ключ преобразования.
const transformKey = "VOLT_VAULT_SECURE_2025"

func xorWithKey(data []byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ transformKey[i%len(transformKey)]
	}
	return out
}

// Obscure превращает открытый текст в транспортобезопасную строку.
// Пустой вход остаётся пустым. Результат детерминирован:
// один и тот же вход всегда даёт один и тот же выход.
func Obscure(plain string) string {
	if plain == "" {
		return ""
	}
	return base64.StdEncoding.EncodeToString(xorWithKey([]byte(plain)))
}

// Reveal обращает Obscure. Если вход не декодируется как base64
// (данные старше преобразования или испорчены), возвращается вход
// как есть: путь чтения не должен падать из-за легаси-записей.
func Reveal(obscured string) string {
	if obscured == "" {
		return ""
	}
	raw, err := base64.StdEncoding.DecodeString(obscured)
	if err != nil {
		return obscured
	}
	return string(xorWithKey(raw))
}
