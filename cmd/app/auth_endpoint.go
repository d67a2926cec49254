package main

import (
	"net/http"

	"UserHubAPI/internal/response"
	"UserHubAPI/internal/services"
	"UserHubAPI/internal/token"

	"github.com/labstack/echo/v4"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func registerAuthRoutes(api *echo.Group, authSvc *services.AuthService, tokens *token.Service) {
	// POST /api/login
	api.POST("/login", func(c echo.Context) error {
		req := new(loginRequest)
		if err := c.Bind(req); err != nil {
			return badRequest(c, "invalid request")
		}
		acct, err := authSvc.Login(c.Request().Context(), req.Email, req.Password)
		if err != nil {
			return fail(c, err)
		}
		t, err := tokens.Issue(acct)
		if err != nil {
			return c.JSON(http.StatusInternalServerError,
				response.Error(http.StatusInternalServerError, "could not create token"))
		}
		return ok(c, http.StatusOK, "login successful", echo.Map{
			"token":      t,
			"token_type": "Bearer",
		})
	})
}
