package utils

import (
	"log"
	"os"
)

var (
	// JWTSecretKey signs every issued token. Read-only after InitJWT.
	JWTSecretKey string
	// JWTExpirationTime is the token lifetime in seconds (default one hour).
	JWTExpirationTime int64
)

func InitJWT() {
	// Tests run without a .env file; give them a working default.
	if os.Getenv("GO_ENV") == "test" && os.Getenv("JWT_SECRET_KEY") == "" {
		os.Setenv("JWT_SECRET_KEY", "test_secret_key")
	}

	JWTSecretKey = os.Getenv("JWT_SECRET_KEY")
	if JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY not set")
	}

	JWTExpirationTime = GetEnvAsInt64("JWT_EXPIRATION_TIME", 3600)
}
