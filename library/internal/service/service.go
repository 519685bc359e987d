package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/Astemirdum/biblioteca/library/internal/errs"
	"github.com/Astemirdum/biblioteca/library/internal/model"
)

// requireText checks a required text field against the column width.
func requireText(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errs.Validation(fmt.Sprintf("O campo %q é obrigatório", field))
	}
	if utf8.RuneCountInString(value) > model.MaxTextLen {
		return errs.Validation(fmt.Sprintf("O campo %q deve ser menor ou igual a %d", field, model.MaxTextLen))
	}
	return nil
}
