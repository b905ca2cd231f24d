package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var entryFields = []fieldSpec{
	{"slug", kindString},
}

func (s *server) handleEntry(c echo.Context) error {
	data, err := decodePayload(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, malformedBodyMessage)
	}

	if verr := validatePayload([]string{"slug"}, data, entryFields); verr != nil {
		return respondError(c, http.StatusBadRequest, verr.Message)
	}

	slug, _ := data["slug"].(string)

	result, err := s.catalog.Entry(c.Request().Context(), slug, false)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result)
}

func (s *server) handleRandomEntry(c echo.Context) error {
	result, err := s.catalog.Entry(c.Request().Context(), "", true)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result)
}
