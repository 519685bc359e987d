package validate_test

import (
	"testing"

	"github.com/Astemirdum/biblioteca/pkg/validate"
	"github.com/stretchr/testify/require"
)

type book struct {
	Title  string `json:"titulo" validate:"required"`
	Year   *int   `json:"ano_publicacao" validate:"required"`
	Status string `json:"status" validate:"omitempty,oneof=ativo devolvido"`
	Copies int    `json:"quantidade_total" validate:"gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	t.Parallel()
	year := 1899

	tests := []struct {
		name    string
		input   book
		wantErr string
	}{
		{
			name:  "ok",
			input: book{Title: "Dom Casmurro", Year: &year, Status: "ativo"},
		},
		{
			name:    "err. required string",
			input:   book{Year: &year},
			wantErr: `O campo "titulo" é obrigatório`,
		},
		{
			name:    "err. required pointer",
			input:   book{Title: "Dom Casmurro"},
			wantErr: `O campo "ano_publicacao" é obrigatório`,
		},
		{
			name:    "err. oneof",
			input:   book{Title: "Dom Casmurro", Year: &year, Status: "perdido"},
			wantErr: `Valor inválido para o campo "status". Use um de: ativo devolvido`,
		},
		{
			name:    "err. gte",
			input:   book{Title: "Dom Casmurro", Year: &year, Copies: -1},
			wantErr: `O campo "quantidade_total" deve ser maior ou igual a 0`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := validate.NewCustomValidator().Validate(tt.input)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
		})
	}
}
