package handlers

import (
	"github.com/labstack/echo/v4"
)

func (a *App) er(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, &ErrorMessage{
		Error: message,
	})
}
