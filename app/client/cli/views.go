package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"kokoro-diary/app/client/api"
	"kokoro-diary/app/client/nav"
)

func (a *App) viewHome(ctx context.Context, _ ...string) error {
	_, userName := a.session.Current()
	a.printf("Welcome back, %s. Type 'help' to see what you can do.", userName)
	return nil
}

func (a *App) viewLogin(ctx context.Context, _ ...string) error {
	if notice := a.router.TakeNotice(); notice != "" {
		a.printf("(%s, please log in again)", notice)
	}

	name, err := getSimpleText(a.reader, "User name")
	if err != nil {
		return err
	}
	password, err := getPassword("Password")
	if err != nil {
		return err
	}

	token, err := a.api.Login(ctx, name, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			a.printf("Login failed: %s", apiErr.Message)
			return nil
		}
		return err
	}

	if err := a.session.Login(token); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	a.printf("Logged in.")
	return a.router.AfterLogin(ctx)
}

func (a *App) viewRegister(ctx context.Context, _ ...string) error {
	name, err := getSimpleText(a.reader, "User name")
	if err != nil {
		return err
	}
	password, err := getPassword("Password")
	if err != nil {
		return err
	}

	message, err := a.api.Register(ctx, name, password)
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) {
			a.printf("Registration failed: %s", apiErr.Message)
			return nil
		}
		return err
	}

	a.printf("%s", message)
	return a.router.Go(ctx, nav.ViewLogin)
}

func (a *App) viewDiaries(ctx context.Context, _ ...string) error {
	diaries, err := a.api.Diaries(ctx)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}

	if len(diaries) == 0 {
		a.printf("No diaries yet. Use 'new' to write your first one.")
		return nil
	}

	for _, diary := range diaries {
		marker := " "
		if diary.AIComment != nil {
			marker = "*" // has an AI comment
		}
		a.printf("%4d  %s %s  %s", diary.ID, diary.Date.Format("2006-01-02"), marker, firstLine(diary.Text))
	}
	return nil
}

func (a *App) viewDiaryDetail(ctx context.Context, params ...string) error {
	if len(params) == 0 {
		a.printf("Usage: show <id>")
		return nil
	}
	id, err := parseDiaryID(params[0])
	if err != nil {
		a.printf("Invalid diary id: %s", params[0])
		return nil
	}

	diary, err := a.api.Diary(ctx, id)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}

	a.printf("Diary %d (%s)", diary.ID, diary.Date.Format("2006-01-02"))
	a.printf("%s", diary.Text)
	if diary.AIComment != nil {
		a.printf("--- comment ---")
		a.printf("%s", *diary.AIComment)
	}
	return nil
}

func (a *App) viewDiaryNew(ctx context.Context, _ ...string) error {
	text, err := getMultilineText(a.reader, "Diary")
	if err != nil {
		return err
	}

	input := &api.DiaryInput{Text: text}
	now := time.Now()
	input.Date = &now

	if comment := a.maybeGenerateComment(ctx, text); comment != "" {
		input.AIComment = &comment
	}

	diary, err := a.api.CreateDiary(ctx, input)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}

	a.printf("Saved diary %d.", diary.ID)
	return nil
}

// maybeGenerateComment walks the user through the comment settings and asks
// the server for an AI comment. Any failure just skips the comment.
func (a *App) maybeGenerateComment(ctx context.Context, text string) string {
	answer, err := getSimpleText(a.reader, "Generate an AI comment? (y/N)")
	if err != nil || answer != "y" {
		return ""
	}

	writerGender, _ := getSimpleText(a.reader, "Your gender (male/female/other)")
	aiGender, _ := getSimpleText(a.reader, "Commenter gender (male/female/other)")
	relation, _ := getSimpleText(a.reader, "Relation (lover/friend/olderSister/youngerSister/olderBrother/youngerBrother/other)")
	style, _ := getSimpleText(a.reader, "Style (empathy/advice/encouragement/suggestion)")

	comment, err := a.api.Comment(ctx, &api.CommentInput{
		DiaryText:       text,
		WriterGenderKey: writerGender,
		AIGenderKey:     aiGender,
		RelationKey:     relation,
		StyleKey:        style,
	})
	if err != nil {
		a.printf("Could not generate a comment: %v", err)
		return ""
	}

	a.printf("--- comment ---")
	a.printf("%s", comment)
	return comment
}

func (a *App) editDiary(ctx context.Context, idParam string) error {
	id, err := parseDiaryID(idParam)
	if err != nil {
		a.printf("Invalid diary id: %s", idParam)
		return nil
	}

	diary, err := a.api.Diary(ctx, id)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}
	a.printf("Current text:\n%s", diary.Text)

	text, err := getMultilineText(a.reader, "New text")
	if err != nil {
		return err
	}

	updated, err := a.api.UpdateDiary(ctx, id, &api.DiaryInput{
		Text:      text,
		AIComment: diary.AIComment,
		Date:      &diary.Date,
	})
	if err != nil {
		return a.reportAPIError(ctx, err)
	}

	a.printf("Updated diary %d.", updated.ID)
	return nil
}

func (a *App) deleteDiary(ctx context.Context, idParam string) error {
	id, err := parseDiaryID(idParam)
	if err != nil {
		a.printf("Invalid diary id: %s", idParam)
		return nil
	}

	deleted, err := a.api.DeleteDiary(ctx, id)
	if err != nil {
		return a.reportAPIError(ctx, err)
	}

	a.printf("Deleted diary %d.", deleted.ID)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.session.Logout(); err != nil {
		return err
	}
	a.printf("Logged out.")
	return a.router.Go(ctx, nav.ViewLogin)
}

// reportAPIError turns API failures into user-facing output. A rejected
// credential has already ended the session, so the user is routed to the
// login view; an ownership rejection leaves the session untouched.
func (a *App) reportAPIError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, api.ErrSessionExpired):
		return a.router.Go(ctx, nav.ViewLogin)

	case errors.Is(err, api.ErrForbidden):
		a.printf("You do not have permission for this operation.")
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		a.printf("Request failed: %s", apiErr.Error())
		return nil
	}

	return err
}

func parseDiaryID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id: %w", err)
	}
	return uint(id), nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
