package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"kokoro-diary/app/server/constants"
	"kokoro-diary/app/server/models"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func diaryRecord(diary *models.Diary) *DiaryRecord {
	return &DiaryRecord{
		ID:        diary.ID,
		Text:      diary.Text,
		AIComment: diary.AIComment,
		Date:      diary.Date,
		AuthorID:  diary.AuthorID,
		CreatedAt: diary.CreatedAt,
		UpdatedAt: diary.UpdatedAt,
	}
}

func parseID(c echo.Context) (uint, error) {
	idUint64, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}
	return uint(idUint64), nil
}

// invalidateDiaryList drops the cached list after any mutation. A failed
// delete only costs a stale read until the TTL runs out, so it is logged
// rather than failing the request.
func (a *App) invalidateDiaryList(ctx context.Context, userID uint) {
	cacheKey := fmt.Sprintf(constants.CacheKeyDiaryList, userID)
	if err := a.rdb.Del(ctx, cacheKey).Err(); err != nil {
		a.l.Error("failed to invalidate diary list cache", zap.Uint("userId", userID), zap.Error(err))
	}
}

func (a *App) DiaryList(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	var records []*DiaryRecord

	// Read-through cache keyed by owner; every query below is already scoped
	// to the requester, so the cache never mixes users' records.
	cacheKey := fmt.Sprintf(constants.CacheKeyDiaryList, user.ID)
	if cacheBytes, err := a.rdb.Get(rctx, cacheKey).Bytes(); err != nil {
		if !errors.Is(err, redis.Nil) {
			a.l.Error("failed to query cache for diary list", zap.Uint("userId", user.ID), zap.Error(err))
		}
	} else if err = json.Unmarshal(cacheBytes, &records); err != nil {
		a.l.Error("failed to unmarshal diary list", zap.Uint("userId", user.ID), zap.Error(err))
		a.rdb.Del(rctx, cacheKey)
	} else {
		return c.JSON(http.StatusOK, records)
	}

	var diaries []models.Diary
	if err := a.db.WithContext(rctx).Where("author_id = ?", user.ID).Order("date DESC").Find(&diaries).Error; err != nil {
		a.l.Error("failed to get diary list", zap.Uint("userId", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	records = make([]*DiaryRecord, 0, len(diaries))
	for i := range diaries {
		records = append(records, diaryRecord(&diaries[i]))
	}

	if cacheBytes, err := json.Marshal(records); err != nil {
		a.l.Error("failed to marshal diary list", zap.Uint("userId", user.ID), zap.Error(err))
	} else {
		a.rdb.Set(rctx, cacheKey, cacheBytes, constants.CacheExpireDiaryList)
	}

	return c.JSON(http.StatusOK, records)
}

func (a *App) DiaryGet(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	id, err := parseID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// Scoped to the requester up front instead of fetch-then-check: a record
	// that is not theirs is never loaded at all.
	var diary models.Diary
	if err := a.db.WithContext(rctx).First(&diary, "id = ? AND author_id = ?", id, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusNotFound, constants.MsgDiaryNotFound)
		}
		a.l.Error("failed to get diary", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	return c.JSON(http.StatusOK, diaryRecord(&diary))
}

func (a *App) DiaryCreate(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	var req DiaryInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return c.NoContent(http.StatusBadRequest)
	}

	diary := models.Diary{
		Text:      req.Text,
		AIComment: req.AIComment,
		AuthorID:  user.ID,
	}
	if req.Date != nil {
		diary.Date = *req.Date
	}

	if err := a.db.WithContext(rctx).Create(&diary).Error; err != nil {
		a.l.Error("failed to create diary", zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	a.invalidateDiaryList(rctx, user.ID)

	return c.JSON(http.StatusOK, diaryRecord(&diary))
}

func (a *App) DiaryUpdate(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	id, err := parseID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var req DiaryInput
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return c.NoContent(http.StatusBadRequest)
	}

	// Ownership guard: a diary that does not exist and a diary owned by
	// someone else produce the same response, so existence never leaks.
	var diary models.Diary
	if err := a.db.WithContext(rctx).First(&diary, "id = ? AND author_id = ?", id, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusForbidden, constants.MsgForbidden)
		}
		a.l.Error("failed to get diary for update", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	updates := map[string]interface{}{
		"text":       req.Text,
		"ai_comment": req.AIComment,
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}

	// The write is keyed by owner again, so a row deleted between the check
	// and this statement fails the whole operation instead of half-applying.
	res := a.db.WithContext(rctx).Model(&models.Diary{}).Where("id = ? AND author_id = ?", id, user.ID).Updates(updates)
	if res.Error != nil {
		a.l.Error("failed to update diary", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}
	if res.RowsAffected == 0 {
		return a.er(c, http.StatusForbidden, constants.MsgForbidden)
	}

	if err := a.db.WithContext(rctx).First(&diary, "id = ?", id).Error; err != nil {
		a.l.Error("failed to reload diary", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	a.invalidateDiaryList(rctx, user.ID)

	return c.JSON(http.StatusOK, diaryRecord(&diary))
}

func (a *App) DiaryDelete(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	id, err := parseID(c)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	var diary models.Diary
	if err := a.db.WithContext(rctx).First(&diary, "id = ? AND author_id = ?", id, user.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.er(c, http.StatusForbidden, constants.MsgForbidden)
		}
		a.l.Error("failed to get diary for delete", zap.Uint("id", id), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	res := a.db.WithContext(rctx).Where("author_id = ?", user.ID).Delete(&models.Diary{}, id)
	if res.Error != nil {
		a.l.Error("failed to delete diary", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}
	if res.RowsAffected == 0 {
		return a.er(c, http.StatusForbidden, constants.MsgForbidden)
	}

	a.invalidateDiaryList(rctx, user.ID)

	return c.JSON(http.StatusOK, diaryRecord(&diary))
}
