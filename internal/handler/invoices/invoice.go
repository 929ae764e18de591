package invoices

import (
	"errors"
	"net/http"

	"github.com/Ravi30T/invoice-management-backend/internal/api"
	"github.com/Ravi30T/invoice-management-backend/internal/cache"
	"github.com/Ravi30T/invoice-management-backend/internal/database"
	"github.com/Ravi30T/invoice-management-backend/internal/middleware"
	"github.com/Ravi30T/invoice-management-backend/internal/model"
	"github.com/Ravi30T/invoice-management-backend/internal/service"
	"github.com/Ravi30T/invoice-management-backend/internal/store"
	"github.com/Ravi30T/invoice-management-backend/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	resolveUser         = service.ResolveUser
	createInvoice       = store.CreateInvoice
	listInvoicesByUser  = store.ListInvoicesByUser
	updateInvoiceStatus = store.UpdateInvoiceStatus
	deleteInvoice       = store.DeleteInvoice
	newInvoiceID        = uuid.NewString
)

// actingUser resolves the caller behind the verified claims. Every invoice
// operation goes through here, so a deleted or bogus identity can never
// reach the repository.
func actingUser(c echo.Context, db database.DB, rdb cache.Cache, wp worker.Pool) (*model.User, error) {
	claims, ok := c.Get(middleware.ContextUserKey).(*service.CustomClaims)
	if !ok || claims.UserID == "" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid JWT Token")
	}
	user, err := resolveUser(c.Request().Context(), db, rdb, wp, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "Invalid User Request")
		}
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	}
	return user, nil
}

func toResponse(inv model.Invoice) api.InvoiceResponse {
	return api.InvoiceResponse{
		InvoiceID:  inv.InvoiceID,
		ClientName: inv.ClientName,
		Date:       inv.CreatedAt,
		Amount:     inv.Amount,
		Status:     inv.Status,
	}
}

// @Summary     Create a new invoice
// @Description 為當前使用者建立發票，發票編號與日期由伺服器產生
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       body body api.CreateInvoiceRequest true "invoice payload"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /invoices [post]
func CreateInvoiceHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateInvoiceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := actingUser(c, db, rdb, wp)
		if err != nil {
			return err
		}

		_, err = createInvoice(c.Request().Context(), db, &model.Invoice{
			InvoiceID:  newInvoiceID(),
			UserID:     user.UserID,
			ClientName: req.ClientName,
			Amount:     req.Amount,
			Status:     req.Status,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "New Invoice, has been added successfully"})
	}
}

// @Summary     List invoices
// @Description 回傳當前使用者的所有發票；沒有資料時回傳訊息而非空陣列
// @Tags        invoices
// @Produce     json
// @Success     200 {array} api.InvoiceResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /invoices [get]
func ListInvoicesHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := actingUser(c, db, rdb, wp)
		if err != nil {
			return err
		}

		invs, err := listInvoicesByUser(c.Request().Context(), db, user.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}
		if len(invs) == 0 {
			return c.JSON(http.StatusOK, api.MessageResponse{Message: "No Invoice Data Found"})
		}

		resp := make([]api.InvoiceResponse, 0, len(invs))
		for _, inv := range invs {
			resp = append(resp, toResponse(inv))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// @Summary     Update invoice status
// @Description 只更新狀態欄位；發票必須屬於當前使用者
// @Tags        invoices
// @Accept      json
// @Produce     json
// @Param       id   path string                   true "invoice identity token"
// @Param       body body api.UpdateInvoiceRequest true "status payload"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /invoices/{id} [put]
func UpdateInvoiceHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateInvoiceRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		user, err := actingUser(c, db, rdb, wp)
		if err != nil {
			return err
		}

		_, err = updateInvoiceStatus(c.Request().Context(), db, user.UserID, c.Param("id"), req.Status)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid Invoice Details"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Invoice Status Updated Successfully"})
	}
}

// @Summary     Delete an invoice
// @Description 刪除當前使用者的發票
// @Tags        invoices
// @Produce     json
// @Param       id path string true "invoice identity token"
// @Success     200 {object} api.MessageResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /invoices/{id} [delete]
func DeleteInvoiceHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, err := actingUser(c, db, rdb, wp)
		if err != nil {
			return err
		}

		if err := deleteInvoice(c.Request().Context(), db, user.UserID, c.Param("id")); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "Invalid Invoice Details"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		return c.JSON(http.StatusOK, api.MessageResponse{Message: "Invoice Details Deleted Successfully"})
	}
}
