package server

import (
	"encoding/json"

	"github.com/labstack/echo/v4"
)

const malformedBodyMessage = "Malformed JSON in request body"

// respond writes a success payload. The catalog's bytes go out untouched so
// its key order survives; the gateway never reshapes backend output.
func respond(c echo.Context, status int, payload json.RawMessage) error {
	return c.JSONBlob(status, payload)
}

type errorBody struct {
	Error string `json:"error"`
}

// respondError writes the error envelope. Together with respond this is the
// only place the wire format lives.
func respondError(c echo.Context, status int, message string) error {
	return c.JSON(status, errorBody{Error: message})
}

// decodePayload parses the request body as a JSON object. Content-Type is
// ignored on purpose; clients of the original API never sent one reliably.
// Numbers are kept as json.Number so the validator can tell ints from floats.
func decodePayload(c echo.Context) (map[string]any, error) {
	dec := json.NewDecoder(c.Request().Body)
	dec.UseNumber()

	var data map[string]any
	if err := dec.Decode(&data); err != nil {
		return nil, err
	}
	if data == nil || dec.More() {
		return nil, echo.ErrBadRequest
	}
	return data, nil
}
