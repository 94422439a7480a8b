// Package password хэширует пароли пользователей и сверяет их с хэшем (bcrypt).
package password

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hash возвращает bcrypt-хэш пароля.
func Hash(password string) (string, error) {
	const op = "password.Hash"
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return string(hashed), nil
}

// Compare сверяет пароль с bcrypt-хэшем.
//
// Возвращает nil при совпадении, ErrMismatch при несовпадении
// и обёрнутую ошибку bcrypt, если хэш повреждён.
func Compare(hash, password string) error {
	const op = "password.Compare"
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return fmt.Errorf("%s: %w", op, err)
}

// Matches сообщает, подходит ли пароль к хэшу. Повреждённый хэш не подходит ни к чему.
func Matches(hash, password string) bool {
	return Compare(hash, password) == nil
}

// ErrMismatch пароль не соответствует хэшу.
var ErrMismatch = errors.New("password does not match")
