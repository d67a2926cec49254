package main

import (
	"net/http"
	"time"

	"UserHubAPI/internal/middleware"
	"UserHubAPI/internal/model"
	"UserHubAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type profileRequest struct {
	AccountID   int64      `json:"account_id"`
	Bio         *string    `json:"bio,omitempty"`
	Avatar      *string    `json:"avatar,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
}

func (r *profileRequest) toModel() *model.Profile {
	return &model.Profile{
		AccountID:   r.AccountID,
		Bio:         r.Bio,
		Avatar:      r.Avatar,
		PhoneNumber: r.PhoneNumber,
		BirthDate:   r.BirthDate,
	}
}

func registerProfileRoutes(api *echo.Group, ps *services.ProfileService, guard *middleware.Guard, protectWrites bool) {
	var writeMW []echo.MiddlewareFunc
	if protectWrites {
		writeMW = append(writeMW, guard.Middleware())
	}

	// GET /api/profiles
	api.GET("/profiles", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "profiles retrieved", list)
	})

	// GET /api/profiles/:id
	api.GET("/profiles/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return fail(c, err)
		}
		if p == nil {
			return notFound(c, "profile not found")
		}
		return ok(c, http.StatusOK, "profile found", p)
	})

	// POST /api/profiles
	api.POST("/profiles", func(c echo.Context) error {
		req := new(profileRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		p, err := ps.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusCreated, "profile created", p)
	}, writeMW...)

	// PUT /api/profiles/:id
	api.PUT("/profiles/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		req := new(profileRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		p, err := ps.Update(c.Request().Context(), id, req.toModel())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "profile updated", p)
	}, writeMW...)

	// DELETE /api/profiles/:id
	api.DELETE("/profiles/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		n, err := ps.Delete(c.Request().Context(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "profile deleted", echo.Map{"rows_affected": n})
	}, writeMW...)
}
