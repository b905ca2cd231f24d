package server

import (
	"net/http"

	"github.com/crocdb/gateway/catalog"
	"github.com/labstack/echo/v4"
)

var searchFields = []fieldSpec{
	{"search_key", kindString},
	{"platforms", kindList},
	{"regions", kindList},
	{"rom_id", kindString},
	{"max_results", kindInt},
	{"page", kindInt},
}

func (s *server) handleSearch(c echo.Context) error {
	data, err := decodePayload(c)
	if err != nil {
		return respondError(c, http.StatusBadRequest, malformedBodyMessage)
	}

	if verr := validatePayload(nil, data, searchFields); verr != nil {
		return respondError(c, http.StatusBadRequest, verr.Message)
	}

	filters := catalog.SearchFilters{
		SearchKey:  stringField(data, "search_key"),
		Platforms:  listField(data, "platforms"),
		Regions:    listField(data, "regions"),
		RomID:      stringField(data, "rom_id"),
		MaxResults: intField(data, "max_results", 100),
		Page:       intField(data, "page", 1),
	}

	result, err := s.catalog.Search(c.Request().Context(), filters)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, result)
}
