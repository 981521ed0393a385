package config

type Config struct {
	System struct {
		IsProd                bool   // production mode switch
		Listen                string // listen address
		DBConnectionString    string // Postgres connection string
		RedisConnectionString string // Redis connection string
	}
	Security struct {
		SignatureSecretKey string // key used to sign JWTs; rotating it invalidates existing sessions
	}
	AI struct {
		GeminiAPIKey string // key for the outbound comment-generation call
	}
}
