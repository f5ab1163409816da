package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/worldwise/trip-planner-api/internal/core/domain"
	"github.com/worldwise/trip-planner-api/internal/core/ports"
)

type stubPlaceService struct {
	listFn   func(ctx context.Context, ownerID string) ([]domain.Place, error)
	getFn    func(ctx context.Context, ownerID, id string) (*domain.Place, error)
	createFn func(ctx context.Context, ownerID string, input ports.PlaceInput) (*domain.Place, error)
	deleteFn func(ctx context.Context, ownerID, id string) error
}

func (s *stubPlaceService) List(ctx context.Context, ownerID string) ([]domain.Place, error) {
	return s.listFn(ctx, ownerID)
}

func (s *stubPlaceService) Get(ctx context.Context, ownerID, id string) (*domain.Place, error) {
	return s.getFn(ctx, ownerID, id)
}

func (s *stubPlaceService) Create(ctx context.Context, ownerID string, input ports.PlaceInput) (*domain.Place, error) {
	return s.createFn(ctx, ownerID, input)
}

func (s *stubPlaceService) Delete(ctx context.Context, ownerID, id string) error {
	return s.deleteFn(ctx, ownerID, id)
}

func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID string) echo.Context {
	c := e.NewContext(req, rec)
	c.Set("user_id", userID)
	return c
}

func TestPlaceHandler_List(t *testing.T) {
	e := newTestEcho()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	h := NewPlaceHandler(&stubPlaceService{
		listFn: func(ctx context.Context, ownerID string) ([]domain.Place, error) {
			if ownerID != "u1" {
				t.Fatalf("unexpected owner %q", ownerID)
			}
			return []domain.Place{
				{ID: "p1", OwnerID: "u1", CityName: "Lisbon", CreatedAt: created},
				{ID: "p2", OwnerID: "u1", CityName: "Porto", CreatedAt: created.Add(time.Hour)},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 2 || resp[0]["cityName"] != "Lisbon" || resp[1]["cityName"] != "Porto" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestPlaceHandler_List_Empty(t *testing.T) {
	e := newTestEcho()
	h := NewPlaceHandler(&stubPlaceService{
		listFn: func(ctx context.Context, ownerID string) ([]domain.Place, error) {
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	// An empty list must serialize as [], not null.
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" {
		t.Fatalf("expected [], got %s", got)
	}
}

func TestPlaceHandler_Get_NotFound(t *testing.T) {
	e := newTestEcho()
	h := NewPlaceHandler(&stubPlaceService{
		getFn: func(ctx context.Context, ownerID, id string) (*domain.Place, error) {
			return nil, domain.ErrPlaceNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/cities/p1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Get(c); !errors.Is(err, domain.ErrPlaceNotFound) {
		t.Fatalf("expected ErrPlaceNotFound to propagate, got %v", err)
	}
}

func TestPlaceHandler_Create(t *testing.T) {
	e := newTestEcho()
	h := NewPlaceHandler(&stubPlaceService{
		createFn: func(ctx context.Context, ownerID string, input ports.PlaceInput) (*domain.Place, error) {
			if ownerID != "u1" {
				t.Fatalf("unexpected owner %q", ownerID)
			}
			if input.CityName != "Lisbon" || input.Position == nil || input.Position.Lat != 38.7 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Place{ID: "p1", OwnerID: ownerID, CityName: input.CityName, Position: input.Position, CreatedAt: time.Now().UTC()}, nil
		},
	})

	body := strings.NewReader(`{"cityName":"Lisbon","country":"Portugal","position":{"lat":38.7,"lng":-9.1}}`)
	req := httptest.NewRequest(http.MethodPost, "/cities", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"id":"p1"`) {
		t.Fatalf("unexpected payload: %s", rec.Body.String())
	}
}

func TestPlaceHandler_Create_MissingCityName(t *testing.T) {
	e := newTestEcho()
	h := NewPlaceHandler(&stubPlaceService{
		createFn: func(ctx context.Context, ownerID string, input ports.PlaceInput) (*domain.Place, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	})

	body := strings.NewReader(`{"country":"Portugal"}`)
	req := httptest.NewRequest(http.MethodPost, "/cities", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestPlaceHandler_Delete(t *testing.T) {
	e := newTestEcho()
	deleted := ""
	h := NewPlaceHandler(&stubPlaceService{
		deleteFn: func(ctx context.Context, ownerID, id string) error {
			deleted = ownerID + "/" + id
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/cities/p1", nil)
	rec := httptest.NewRecorder()
	c := authedContext(e, req, rec, "u1")
	c.SetParamNames("id")
	c.SetParamValues("p1")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "u1/p1" {
		t.Fatalf("unexpected delete call %q", deleted)
	}
}

func TestPlaceHandler_Unauthenticated(t *testing.T) {
	e := newTestEcho()
	h := NewPlaceHandler(&stubPlaceService{})

	req := httptest.NewRequest(http.MethodGet, "/cities", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
