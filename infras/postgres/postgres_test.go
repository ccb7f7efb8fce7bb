package postgres_test

import (
	"concierge/config"
	"concierge/infras/postgres"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDSN(t *testing.T) {
	cfg := &config.Config{}
	cfg.DB.Postgres.Prefix = "staging_"

	ep := config.PostgresEndpoint{
		Host:     "db.internal",
		Port:     "5432",
		Username: "concierge",
		Password: "p@ss/word",
		Name:     "concierge",
		Timezone: "Asia/Jakarta",
		SSLMode:  "disable",
	}

	dsn := postgres.DSN(cfg, ep, url.Values{"x-migrations-table": {"schema_migrations"}})

	parsed, err := url.Parse(dsn)
	require.NoError(t, err)

	password, _ := parsed.User.Password()

	assert.Equal(t, "postgres", parsed.Scheme)
	assert.Equal(t, "db.internal:5432", parsed.Host)
	assert.Equal(t, "/staging_concierge", parsed.Path)
	assert.Equal(t, "concierge", parsed.User.Username())
	assert.Equal(t, "p@ss/word", password)
	assert.Equal(t, "disable", parsed.Query().Get("sslmode"))
	assert.Equal(t, "Asia/Jakarta", parsed.Query().Get("timezone"))
	assert.Equal(t, "schema_migrations", parsed.Query().Get("x-migrations-table"))
}

func TestDSN_Minimal(t *testing.T) {
	dsn := postgres.DSN(&config.Config{}, config.PostgresEndpoint{Host: "localhost", Port: "5432", Username: "postgres", Name: "concierge"}, nil)

	assert.Equal(t, "postgres://postgres:@localhost:5432/concierge", dsn)
}
