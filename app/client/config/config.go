package config

type Config struct {
	IsProd bool

	// Server communication
	APIBaseURL string

	// Durable client storage: the file holding exactly one token at a time
	TokenPath string
}
