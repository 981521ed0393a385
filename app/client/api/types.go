package api

import "time"

type errorMessage struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type DiaryInput struct {
	Text      string     `json:"text"`
	AIComment *string    `json:"aiComment"`
	Date      *time.Time `json:"date"`
}

type Diary struct {
	ID        uint      `json:"id"`
	Text      string    `json:"text"`
	AIComment *string   `json:"aiComment"`
	Date      time.Time `json:"date"`
	AuthorID  uint      `json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentInput struct {
	DiaryText       string `json:"diaryText"`
	WriterGenderKey string `json:"writerGenderKey"`
	AIGenderKey     string `json:"aiGenderKey"`
	RelationKey     string `json:"relationKey"`
	StyleKey        string `json:"styleKey"`
}

type commentResponse struct {
	Comment string `json:"comment"`
}
