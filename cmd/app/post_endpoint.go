package main

import (
	"net/http"

	"UserHubAPI/internal/middleware"
	"UserHubAPI/internal/model"
	"UserHubAPI/internal/services"

	"github.com/labstack/echo/v4"
)

type postRequest struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	Status    string `json:"status"`
	AccountID int64  `json:"account_id"`
}

func (r *postRequest) toModel() *model.Post {
	return &model.Post{
		Title:     r.Title,
		Content:   r.Content,
		Status:    model.PostStatus(r.Status),
		AccountID: r.AccountID,
	}
}

// content-items are posts; the route name follows the public API surface.
func registerPostRoutes(api *echo.Group, ps *services.PostService, guard *middleware.Guard, protectWrites bool) {
	var writeMW []echo.MiddlewareFunc
	if protectWrites {
		writeMW = append(writeMW, guard.Middleware())
	}

	// GET /api/content-items
	api.GET("/content-items", func(c echo.Context) error {
		list, err := ps.List(c.Request().Context())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "content items retrieved", list)
	})

	// GET /api/content-items/:id
	api.GET("/content-items/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		p, err := ps.Get(c.Request().Context(), id)
		if err != nil {
			return fail(c, err)
		}
		if p == nil {
			return notFound(c, "content item not found")
		}
		return ok(c, http.StatusOK, "content item found", p)
	})

	// POST /api/content-items
	api.POST("/content-items", func(c echo.Context) error {
		req := new(postRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		p, err := ps.Create(c.Request().Context(), req.toModel())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusCreated, "content item created", p)
	}, writeMW...)

	// PUT /api/content-items/:id
	api.PUT("/content-items/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		req := new(postRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		p, err := ps.Update(c.Request().Context(), id, req.toModel())
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "content item updated", p)
	}, writeMW...)

	// DELETE /api/content-items/:id
	api.DELETE("/content-items/:id", func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return badRequest(c, "invalid id")
		}
		n, err := ps.Delete(c.Request().Context(), id)
		if err != nil {
			return fail(c, err)
		}
		return ok(c, http.StatusOK, "content item deleted", echo.Map{"rows_affected": n})
	}, writeMW...)
}
