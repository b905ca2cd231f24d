package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// The metadata endpoints take no input; any request body is ignored.

func (s *server) handlePlatforms(c echo.Context) error {
	result, err := s.catalog.Platforms(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

func (s *server) handleRegions(c echo.Context) error {
	result, err := s.catalog.Regions(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}

func (s *server) handleInfo(c echo.Context) error {
	result, err := s.catalog.Info(c.Request().Context())
	if err != nil {
		return err
	}
	return respond(c, http.StatusOK, result)
}
