// Command token issues an access token for an operator account. Accounts are
// managed by the barangay's identity system; this tool signs with the same
// JWT_SECRET_KEY the API verifies with.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/brgy-portal/staff-backend-go/internal/config"
	"github.com/brgy-portal/staff-backend-go/internal/domain/user"
	"github.com/brgy-portal/staff-backend-go/internal/pkg/jwt"
)

func main() {
	userID := flag.String("user", "", "user id to put in the token")
	role := flag.String("role", string(user.RoleSecretary), "admin, secretary or staff")
	flag.Parse()

	if *userID == "" || !user.Role(*role).IsValid() {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Error loading config", "error", err)
		os.Exit(1)
	}

	token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).
		GenerateAccessToken(*userID, user.Role(*role))
	if err != nil {
		slog.Error("Failed to sign token", "error", err)
		os.Exit(1)
	}

	slog.Info("Token issued", "user_id", *userID, "role", *role, "expires_at", time.Unix(expiresAt, 0).Format(time.RFC3339))
	fmt.Println(token)
}
