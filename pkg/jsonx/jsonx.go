// Package jsonx provides an echo.JSONSerializer backed by json-iterator.
package jsonx

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// MsgInvalidJSON is returned to clients for any undecodable body; the decoder
// error stays internal.
const MsgInvalidJSON = "JSON inválido"

func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

type Serializer struct{}

var _ echo.JSONSerializer = Serializer{}

func (Serializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (Serializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if errors.Is(err, io.EOF) {
		// body without content, treated like an empty object
		return nil
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, MsgInvalidJSON).SetInternal(err)
	}
	return nil
}
