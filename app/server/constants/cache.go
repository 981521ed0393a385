package constants

import "time"

const (
	CacheKeyDiaryList = "diary:list:%d" // %d -> user id
)

const (
	CacheExpireDiaryList = 10 * time.Minute
)
