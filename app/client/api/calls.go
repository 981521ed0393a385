package api

import (
	"context"
	"fmt"
	"net/http"
)

// Register creates an account and returns the server's confirmation message.
func (c *Client) Register(ctx context.Context, name, password string) (string, error) {
	var resp messageResponse
	if err := c.do(ctx, http.MethodPost, "/api/register", map[string]string{
		"name":     name,
		"password": password,
	}, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// Login authenticates and returns the issued bearer token.
func (c *Client) Login(ctx context.Context, name, password string) (string, error) {
	var resp loginResponse
	if err := c.do(ctx, http.MethodPost, loginPath, map[string]string{
		"name":     name,
		"password": password,
	}, &resp); err != nil {
		return "", err
	}
	return resp.Token, nil
}

func (c *Client) Diaries(ctx context.Context) ([]Diary, error) {
	var diaries []Diary
	if err := c.do(ctx, http.MethodGet, "/api/diaries", nil, &diaries); err != nil {
		return nil, err
	}
	return diaries, nil
}

func (c *Client) Diary(ctx context.Context, id uint) (*Diary, error) {
	var diary Diary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/diaries/%d", id), nil, &diary); err != nil {
		return nil, err
	}
	return &diary, nil
}

func (c *Client) CreateDiary(ctx context.Context, input *DiaryInput) (*Diary, error) {
	var diary Diary
	if err := c.do(ctx, http.MethodPost, "/api/diaries", input, &diary); err != nil {
		return nil, err
	}
	return &diary, nil
}

func (c *Client) UpdateDiary(ctx context.Context, id uint, input *DiaryInput) (*Diary, error) {
	var diary Diary
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/diaries/%d", id), input, &diary); err != nil {
		return nil, err
	}
	return &diary, nil
}

// DeleteDiary removes a diary and returns the deleted record.
func (c *Client) DeleteDiary(ctx context.Context, id uint) (*Diary, error) {
	var diary Diary
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/diaries/%d", id), nil, &diary); err != nil {
		return nil, err
	}
	return &diary, nil
}

// Comment asks the server to generate an AI comment for the given diary text.
func (c *Client) Comment(ctx context.Context, input *CommentInput) (string, error) {
	var resp commentResponse
	if err := c.do(ctx, http.MethodPost, "/api/comment", input, &resp); err != nil {
		return "", err
	}
	return resp.Comment, nil
}
