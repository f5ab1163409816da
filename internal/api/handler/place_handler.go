package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
	"github.com/worldwise/trip-planner-api/internal/core/ports"
)

// PlaceHandler serves one place resource. The router mounts two instances,
// /cities and /plans, over separate service instances.
type PlaceHandler struct {
	service ports.PlaceService
}

func NewPlaceHandler(service ports.PlaceService) *PlaceHandler {
	return &PlaceHandler{service: service}
}

type positionRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type createPlaceRequest struct {
	CityName string           `json:"cityName" validate:"required"`
	Country  string           `json:"country"`
	Emoji    string           `json:"emoji"`
	Date     *time.Time       `json:"date"`
	Notes    string           `json:"notes"`
	Position *positionRequest `json:"position"`
}

type positionResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type placeResponse struct {
	ID        string            `json:"id"`
	CityName  string            `json:"cityName"`
	Country   string            `json:"country,omitempty"`
	Emoji     string            `json:"emoji,omitempty"`
	Date      *time.Time        `json:"date,omitempty"`
	Notes     string            `json:"notes,omitempty"`
	Position  *positionResponse `json:"position,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

func toPlaceResponse(p domain.Place) placeResponse {
	resp := placeResponse{
		ID:        p.ID,
		CityName:  p.CityName,
		Country:   p.Country,
		Emoji:     p.Emoji,
		Date:      p.Date,
		Notes:     p.Notes,
		CreatedAt: p.CreatedAt,
	}
	if p.Position != nil {
		resp.Position = &positionResponse{Lat: p.Position.Lat, Lng: p.Position.Lng}
	}
	return resp
}

// List returns all of the caller's places, creation time ascending.
//
// @Summary      List places
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   placeResponse
// @Failure      401  {object}  map[string]string
// @Router       /cities [get]
func (h *PlaceHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	places, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	resp := make([]placeResponse, 0, len(places))
	for _, p := range places {
		resp = append(resp, toPlaceResponse(p))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get returns one place owned by the caller; anyone else's place is a 404.
//
// @Summary      Get a place
// @Tags         places
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Place id"
// @Success      200  {object}  placeResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /cities/{id} [get]
func (h *PlaceHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	place, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPlaceResponse(*place))
}

// Create stores a new place for the caller.
//
// @Summary      Create a place
// @Tags         places
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPlaceRequest  true  "Place fields"
// @Success      201   {object}  placeResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /cities [post]
func (h *PlaceHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req createPlaceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := ports.PlaceInput{
		CityName: req.CityName,
		Country:  req.Country,
		Emoji:    req.Emoji,
		Date:     req.Date,
		Notes:    req.Notes,
	}
	if req.Position != nil {
		input.Position = &domain.Position{Lat: req.Position.Lat, Lng: req.Position.Lng}
	}

	place, err := h.service.Create(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toPlaceResponse(*place))
}

// Delete removes the caller's place. Deleting a missing or foreign id is a
// silent no-op and still answers 204.
//
// @Summary      Delete a place
// @Tags         places
// @Security     BearerAuth
// @Param        id  path  string  true  "Place id"
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /cities/{id} [delete]
func (h *PlaceHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
