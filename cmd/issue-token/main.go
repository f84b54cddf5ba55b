// Command issue-token mints a dashboard session token for an existing user.
//
//	issue-token -user <uuid>
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/config"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/logging"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/internal/repository"
	"github.com/alams-innovative/delta-dashbaord-fawad-sub001/pkg/auth"
)

func main() {
	userFlag := flag.String("user", "", "user id (uuid)")
	flag.Parse()

	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("load config failed", "error", err)
	}
	logging.Setup(cfg.Log)

	userID, err := uuid.Parse(*userFlag)
	if err != nil {
		fmt.Fprintln(os.Stderr, "usage: issue-token -user <uuid>")
		os.Exit(2)
	}

	ctx := context.Background()
	pool, err := repository.NewPool(ctx, cfg.Database)
	if err != nil {
		logging.Fatal("failed to connect to database", "error", err)
	}
	defer pool.Close()

	user, err := repository.NewPgUserRepository(pool).FindByID(ctx, userID)
	if err != nil {
		logging.Fatal("user lookup failed", "user_id", userID, "error", err)
	}
	if user.IsSuspended() {
		logging.Fatal("user is suspended", "user_id", userID)
	}

	token, err := auth.NewSessionManager(cfg.Auth.SessionSecret, cfg.Auth.Issuer, cfg.Auth.SessionTTL).Issue(user.ID, user.Role)
	if err != nil {
		logging.Fatal("sign token failed", "error", err)
	}
	fmt.Println(token)
}
