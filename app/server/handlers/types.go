package handlers

import "time"

type ErrorMessage struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type DiaryInput struct {
	Text      string     `json:"text"`
	AIComment *string    `json:"aiComment"`
	Date      *time.Time `json:"date"`
}

type DiaryRecord struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	AIComment *string   `json:"aiComment"`
	Date      time.Time `json:"date"`
	AuthorID  uint      `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentRequest struct {
	DiaryText       string `json:"diaryText"`
	WriterGenderKey string `json:"writerGenderKey"`
	AIGenderKey     string `json:"aiGenderKey"`
	RelationKey     string `json:"relationKey"`
	StyleKey        string `json:"styleKey"`
}

type CommentResponse struct {
	Comment string `json:"comment"`
}
