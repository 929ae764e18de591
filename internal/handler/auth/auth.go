package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/Ravi30T/invoice-management-backend/internal/api"
	"github.com/Ravi30T/invoice-management-backend/internal/cache"
	"github.com/Ravi30T/invoice-management-backend/internal/database"
	"github.com/Ravi30T/invoice-management-backend/internal/model"
	"github.com/Ravi30T/invoice-management-backend/internal/service"
	"github.com/Ravi30T/invoice-management-backend/internal/store"
	"github.com/Ravi30T/invoice-management-backend/internal/worker"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const accessTokenTTL = 24 * time.Hour

var (
	hashPassword     = service.HashPassword
	authenticateUser = service.AuthenticateUser
	issueAccessToken = service.IssueAccessToken
	cacheUser        = service.CacheUser
	createUser       = store.CreateUser
	getUserByEmail   = store.GetUserByEmail
	newUserID        = uuid.NewString
)

// @Summary     Register a new user
// @Description 建立新帳號；Email 重複或欄位缺漏都回 401，payload 區分原因
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.RegisterRequest true "registration payload"
// @Success     201 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Please Enter Valid User Details"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Please Enter Valid User Details"})
		}

		ctx := c.Request().Context()

		// duplicate check is a case-sensitive exact match on email
		if _, err := getUserByEmail(ctx, db, req.Email); err == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "User Already Exists"})
		} else if !errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		_, err = createUser(ctx, db, &model.User{
			UserID:       newUserID(),
			Name:         req.Username,
			Email:        req.Email,
			PasswordHash: hash,
		})
		if err != nil {
			// lost the race against a concurrent registration
			if errors.Is(err, store.ErrDuplicateEmail) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "User Already Exists"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		return c.JSON(http.StatusCreated, api.MessageResponse{Message: "User Registered Successfully"})
	}
}

// @Summary     Login
// @Description 以 Email 與密碼驗證，成功回傳 JWT 與使用者資訊
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "login payload"
// @Success     201 {object} api.LoginResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, rdb cache.Cache, wp worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Please Enter Valid User Details"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Please Enter Valid User Details"})
		}

		ctx := c.Request().Context()

		user, err := getUserByEmail(ctx, db, req.Email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "User Doesn't Exist"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		// lookup-then-compare: the only password check is the bcrypt hash
		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "Incorrect Password"})
		}

		token, err := issueAccessToken(*user, accessTokenTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal Server Error"})
		}

		// warm the resolver cache for the requests this token will make
		cacheUser(rdb, wp, user)

		return c.JSON(http.StatusCreated, api.LoginResponse{
			UserID:   user.UserID,
			JWTToken: token,
			Username: user.Name,
		})
	}
}
