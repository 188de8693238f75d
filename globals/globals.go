package globals

import (
	"context"
	"os"
)

var JwtSecret = []byte(jwtSecretFromEnv())

func jwtSecretFromEnv() string {
	if s := os.Getenv("JWT_SECRET"); s != "" {
		return s
	}
	return "change_me_in_production"
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "roles"

// Elevated roles. Holders may manage any sede's reservations.
const (
	RoleAdminCancha  = "admin_cancha"
	RoleAdminSistema = "admin_sistema"
)

var Ctx = context.Background()
