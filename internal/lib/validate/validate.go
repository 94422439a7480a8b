// Package validate настраивает валидатор входных данных HTTP-обработчиков.
package validate

import (
	"strings"

	"github.com/go-playground/validator"
)

// TagNoSpaces тег проверки строки на отсутствие пробелов.
const TagNoSpaces = "nospaces"

// New возвращает валидатор с зарегистрированными пользовательскими тегами.
func New() *validator.Validate {
	v := validator.New()
	// регистрация может упасть только на пустом теге или nil-функции
	_ = v.RegisterValidation(TagNoSpaces, noSpaces)
	return v
}

func noSpaces(fl validator.FieldLevel) bool {
	return !strings.Contains(fl.Field().String(), " ")
}
