// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/Ravi30T/invoice-management-backend/internal/cache"
	"github.com/Ravi30T/invoice-management-backend/internal/database"
	"github.com/Ravi30T/invoice-management-backend/internal/handler"
	"github.com/Ravi30T/invoice-management-backend/internal/handler/auth"
	"github.com/Ravi30T/invoice-management-backend/internal/handler/invoices"
	"github.com/Ravi30T/invoice-management-backend/internal/middleware"
	"github.com/Ravi30T/invoice-management-backend/internal/worker"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, wp worker.Pool) {
	// 健康檢查（公開）
	e.GET("/ping", handler.PingHandler(db))

	// 註冊與登入
	e.POST("/register", auth.RegisterHandler(db))
	e.POST("/login", auth.LoginHandler(db, rdb, wp))

	// 當前使用者的發票 CRUD
	inv := e.Group("/invoices", middleware.RequireAuth)
	inv.POST("", invoices.CreateInvoiceHandler(db, rdb, wp))
	inv.GET("", invoices.ListInvoicesHandler(db, rdb, wp))
	inv.PUT("/:id", invoices.UpdateInvoiceHandler(db, rdb, wp))
	inv.DELETE("/:id", invoices.DeleteInvoiceHandler(db, rdb, wp))
}
