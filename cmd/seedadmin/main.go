// Command seedadmin creates an admin account, or promotes and resets the
// password of an existing one, in the configured store.
//
//	go run ./cmd/seedadmin --email admin@sekolah.sch.id --password rahasia123 --name "Admin PPDB"
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"

	"ppdb/config"
	"ppdb/connection"
	"ppdb/model"
	"ppdb/services"
	"ppdb/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	email := flag.String("email", "", "admin email (required)")
	password := flag.String("password", "", "admin password, at least 6 characters (required)")
	name := flag.String("name", "Administrator", "admin full name")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	st, err := connection.OpenStore(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	u, created, err := seedAdmin(ctx, st, services.NewBcryptHasher(cfg.BcryptCost), *email, *password, *name)
	if err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}
	verb := "updated"
	if created {
		verb = "created"
	}
	fmt.Printf("admin %s %s (id %s)\n", u.Email, verb, u.ID)
}

// seedAdmin reports whether a new record was created.
func seedAdmin(ctx context.Context, users store.UserStore, hasher services.PasswordHasher, email, password, name string) (*model.User, bool, error) {
	email = model.NormalizeEmail(email)
	name = strings.TrimSpace(name)
	if email == "" || password == "" {
		return nil, false, errors.New("--email and --password are required")
	}
	if !services.ValidEmail(email) {
		return nil, false, fmt.Errorf("invalid email %q", email)
	}
	if len([]rune(password)) < services.MinPasswordLength {
		return nil, false, fmt.Errorf("password must be at least %d characters", services.MinPasswordLength)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return nil, false, fmt.Errorf("hash password: %w", err)
	}

	existing, err := users.FindUserByEmail(ctx, email)
	switch {
	case err == nil:
		role := model.RoleAdmin
		active := true
		patch := store.UserPatch{Password: &hash, Role: &role, IsActive: &active}
		if name != "" {
			patch.FullName = &name
		}
		if err := users.UpdateUser(ctx, existing.ID, patch); err != nil {
			return nil, false, fmt.Errorf("update user: %w", err)
		}
		patch.Apply(existing)
		return existing, false, nil
	case !errors.Is(err, store.ErrNotFound):
		return nil, false, fmt.Errorf("find user: %w", err)
	}

	u := &model.User{
		FullName: name,
		Email:    email,
		Password: hash,
		Role:     model.RoleAdmin,
		IsActive: true,
	}
	if err := users.CreateUser(ctx, u); err != nil {
		return nil, false, fmt.Errorf("create user: %w", err)
	}
	return u, true, nil
}
