package models

import "slices"

// Identity личность, установленная для одного запроса после проверки токена.
type Identity struct {
	Username string
	Role     Role
}

// Principal аутентифицированный участник запроса: личность из токена и
// загруженная запись пользователя с его полномочиями.
type Principal struct {
	Identity    Identity
	User        User
	Authorities []string
}

// HasAuthority проверяет, есть ли у участника указанное полномочие.
func (p Principal) HasAuthority(authority string) bool {
	return slices.Contains(p.Authorities, authority)
}
