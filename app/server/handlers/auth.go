package handlers

import (
	"errors"
	"net/http"
	"time"

	"kokoro-diary/app/server/constants"
	"kokoro-diary/app/server/jwt"
	"kokoro-diary/app/server/middlewares"
	"kokoro-diary/app/server/models"

	"github.com/alexedwards/argon2id"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// currentUser returns the identity the auth middleware attached, or nil when
// the route was somehow reached without it.
func currentUser(c echo.Context) *jwt.User {
	user, _ := c.Get(middlewares.ContextKeyUser).(*jwt.User)
	return user
}

func (a *App) Register(c echo.Context) error {
	rctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, constants.MsgMissingCredentials)
	}

	if req.Name == "" || req.Password == "" {
		return a.er(c, http.StatusBadRequest, constants.MsgMissingCredentials)
	}

	password, err := argon2id.CreateHash(req.Password, argon2id.DefaultParams)
	if err != nil {
		a.l.Error("failed to hash password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	user := models.User{
		Name:     req.Name,
		Password: password,
	}
	if err := a.db.WithContext(rctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return a.er(c, http.StatusBadRequest, constants.MsgDuplicateName)
		}
		a.l.Error("failed to create user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	return c.JSON(http.StatusOK, &MessageResponse{Message: constants.MsgRegistered})
}

func (a *App) Login(c echo.Context) error {
	rctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return a.er(c, http.StatusBadRequest, constants.MsgMissingCredentials)
	}

	var user models.User
	if err := a.db.WithContext(rctx).First(&user, "name = ?", req.Name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusUnauthorized, constants.MsgUnknownUser)
		}
		a.l.Error("failed to find user", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	if match, _, err := argon2id.CheckHash(req.Password, user.Password); err != nil {
		a.l.Error("failed to check password", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	} else if !match {
		return a.er(c, http.StatusUnauthorized, constants.MsgWrongPassword)
	}

	expires := time.Now().Add(constants.AuthTokenDuration)
	token, err := a.jwt.Sign(&jwt.User{
		ID:      user.ID,
		Name:    user.Name,
		Expires: expires.Unix(),
	})
	if err != nil {
		a.l.Error("failed to sign token", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	return c.JSON(http.StatusOK, &LoginResponse{
		Message: constants.MsgLoggedIn,
		Token:   token,
	})
}
