package main

import (
	"net/http"

	"UserHubAPI/internal/middleware"
	"UserHubAPI/internal/model"
	"UserHubAPI/internal/services"

	"github.com/labstack/echo/v4"
)

// full payload: create and update are both full-replace
type accountRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
}

func (r *accountRequest) toModel() *model.Account {
	return &model.Account{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      model.Role(r.Role),
	}
}

func registerAccountRoutes(api *echo.Group, as *services.AccountService, guard *middleware.Guard, protectWrites bool) {
	var writeMW []echo.MiddlewareFunc
	if protectWrites {
		writeMW = append(writeMW, guard.Middleware())
	}

	// GET /api/accounts
	api.GET("/accounts", func(c echo.Context) error {
		list, err := as.List(c.Request().Context())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "accounts retrieved", list)
	})

	// GET /api/accounts/:id
	api.GET("/accounts/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		a, err := as.Get(c.Request().Context(), id)
		if err != nil {
			return fail(c, err)
		}
		if a == nil {
			return notFound(c, "account not found")
		}
		return ok(c, http.StatusOK, "account found", a)
	})

	// POST /api/accounts
	api.POST("/accounts", func(c echo.Context) error {
		req := new(accountRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		a, err := as.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusCreated, "account created", a)
	}, writeMW...)

	// PUT /api/accounts/:id
	api.PUT("/accounts/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		req := new(accountRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		a, err := as.Update(c.Request().Context(), id, req.toModel())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "account updated", a)
	}, writeMW...)

	// DELETE /api/accounts/:id
	api.DELETE("/accounts/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		n, err := as.Delete(c.Request().Context(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "account deleted", echo.Map{"rows_affected": n})
	}, writeMW...)
}
