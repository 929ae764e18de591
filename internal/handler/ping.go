// File: internal/handler/ping.go
package handler

import (
	"net/http"

	"github.com/Ravi30T/invoice-management-backend/internal/api"
	"github.com/Ravi30T/invoice-management-backend/internal/database"

	"github.com/labstack/echo/v4"
)

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "pong"})
	}
}
