package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/ferryhill/kanbord/internal/config"
	"github.com/ferryhill/kanbord/internal/vault"
	"github.com/jackc/pgx/v5/pgxpool"
)

// OpenApp opens a pool using the app role credentials. An empty password in
// config falls back to the vault secret for the app role.
func OpenApp(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	user := cfg.Postgres.App.User
	pass := cfg.Postgres.App.Password
	if pass == "" {
		pass = secretOrEmpty(ctx, vault.SecretAppPassword)
	}
	return openDSN(ctx, dsn(cfg, user, pass, cfg.Postgres.DBName))
}

// OpenAdmin opens a pool using the admin role (schema management). Falls back
// to the app role when no admin user is configured.
func OpenAdmin(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	user := cfg.Postgres.Admin.User
	pass := cfg.Postgres.Admin.Password
	if pass == "" {
		pass = secretOrEmpty(ctx, vault.SecretAdminPassword)
	}
	if user == "" {
		user = cfg.Postgres.App.User
		pass = cfg.Postgres.App.Password
		if pass == "" {
			pass = secretOrEmpty(ctx, vault.SecretAppPassword)
		}
	}
	return openDSN(ctx, dsn(cfg, user, pass, cfg.Postgres.DBName))
}

func dsn(cfg config.Config, user, pass, dbName string) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Postgres.Host, cfg.Postgres.Port, user, pass, dbName, cfg.Postgres.SSLMode)
}

func openDSN(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, err
	}
	pc.MaxConns = 10
	pc.MinConns = 1
	pc.MaxConnLifetime = 30 * time.Minute
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, err
	}
	// Ping to validate connectivity
	ctxPing, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}

func secretOrEmpty(ctx context.Context, name string) string {
	b, err := vault.GetSecret(ctx, name)
	if err != nil {
		return ""
	}
	return string(b)
}
