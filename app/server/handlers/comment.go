package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"kokoro-diary/app/server/constants"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) Comment(c echo.Context) error {
	user := currentUser(c)
	if user == nil {
		return c.NoContent(http.StatusUnauthorized)
	}

	rctx := c.Request().Context()

	var req CommentRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind json body", zap.Error(err))
		return c.NoContent(http.StatusBadRequest)
	}

	if strings.TrimSpace(req.DiaryText) == "" {
		return a.er(c, http.StatusBadRequest, constants.MsgEmptyDiaryText)
	}

	writerGender, okW := constants.PromptGenders[req.WriterGenderKey]
	aiGender, okA := constants.PromptGenders[req.AIGenderKey]
	relation, okR := constants.PromptRelations[req.RelationKey]
	style, okS := constants.PromptStyles[req.StyleKey]
	if !okW || !okA || !okR || !okS {
		return a.er(c, http.StatusBadRequest, constants.MsgInvalidPromptKey)
	}

	diaryText := strings.ReplaceAll(req.DiaryText, "\r\n", "\n")

	userPrompt := fmt.Sprintf("[Diary]\n%s", diaryText)
	systemPrompt := fmt.Sprintf(`# Instructions
You write comments on personal diary entries. Follow these settings:
- Your gender is %q.
- The diary writer's gender is %q.
- You are %s.
- Write in %s.
- Reply to the diary that follows with a warm, positive comment of roughly %d characters.`,
		aiGender, writerGender, relation, style, constants.CommentLengthBudget)

	comment, err := a.ai.Generate(rctx, systemPrompt, userPrompt)
	if err != nil {
		a.l.Error("failed to generate comment", zap.Uint("userId", user.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError, constants.MsgServerError)
	}

	return c.JSON(http.StatusOK, &CommentResponse{Comment: comment})
}
