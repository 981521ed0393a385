package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"kokoro-diary/app/server/constants"
	"kokoro-diary/app/server/jwt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commentUser() *jwt.User {
	return &jwt.User{ID: 1, Name: "alice", Expires: time.Now().Add(time.Hour).Unix()}
}

func TestComment_Success(t *testing.T) {
	ta := newTestApp(t)

	body := `{"diaryText":"Today was a good day.\r\nI went for a walk.","writerGenderKey":"female","aiGenderKey":"male","relationKey":"friend","styleKey":"empathy"}`
	c, rec := newContext(t, http.MethodPost, "/api/comment", body, commentUser(), "")
	require.NoError(t, ta.app.Comment(c))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CommentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, ta.ai.comment, resp.Comment)

	// Line endings are normalized before the text reaches the prompt.
	assert.Contains(t, ta.ai.lastUserPrompt, "Today was a good day.\nI went for a walk.")
	assert.NotContains(t, ta.ai.lastUserPrompt, "\r\n")
	assert.Contains(t, ta.ai.lastSystemPrompt, constants.PromptStyles["empathy"])
	assert.Contains(t, ta.ai.lastSystemPrompt, constants.PromptRelations["friend"])
}

func TestComment_EmptyText(t *testing.T) {
	ta := newTestApp(t)

	body := `{"diaryText":"   ","writerGenderKey":"female","aiGenderKey":"male","relationKey":"friend","styleKey":"empathy"}`
	c, rec := newContext(t, http.MethodPost, "/api/comment", body, commentUser(), "")
	require.NoError(t, ta.app.Comment(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, constants.MsgEmptyDiaryText, resp.Error)
}

func TestComment_UnknownKey(t *testing.T) {
	ta := newTestApp(t)

	body := `{"diaryText":"hello","writerGenderKey":"female","aiGenderKey":"male","relationKey":"nemesis","styleKey":"empathy"}`
	c, rec := newContext(t, http.MethodPost, "/api/comment", body, commentUser(), "")
	require.NoError(t, ta.app.Comment(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, constants.MsgInvalidPromptKey, resp.Error)
}

func TestComment_GeneratorFailure(t *testing.T) {
	ta := newTestApp(t)
	ta.ai.err = errors.New("upstream unavailable")

	body := `{"diaryText":"hello","writerGenderKey":"female","aiGenderKey":"male","relationKey":"friend","styleKey":"empathy"}`
	c, rec := newContext(t, http.MethodPost, "/api/comment", body, commentUser(), "")
	require.NoError(t, ta.app.Comment(c))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Upstream details never reach the user.
	var resp ErrorMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, constants.MsgServerError, resp.Error)
}
