// Command devtoken mints an access token signed with the configured
// JWT_SECRET, for calling the API in local setups without an identity provider.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/personal_finance_app/internal/platform/config"
	"github.com/SscSPs/personal_finance_app/internal/utils"
	"github.com/google/uuid"
)

func main() {
	owner := flag.String("owner", "", "owner id to put in the subject claim (random uuid when empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ownerID := *owner
	if ownerID == "" {
		ownerID = uuid.NewString()
	}

	token, err := utils.GenerateJWT(ownerID, cfg.JWTSecret, *ttl, cfg.JWTIssuer)
	if err != nil {
		slog.Error("Failed to sign token", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Token issued", slog.String("owner_id", ownerID), slog.Duration("ttl", *ttl))
	fmt.Println(token)
}
