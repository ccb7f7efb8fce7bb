package postgres

//nolint:revive
import (
	"concierge/config"
	"net"
	"net/url"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	maxIdleConns    = 10
	maxOpenConns    = 10
	connMaxLifetime = 30 * time.Minute
)

// Connection splits reads (catalog lists, chat history) from writes.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	return &Connection{
		Read:  connect("read", DSN(cfg, pg.Read, nil), pg.MaxRetry, pg.RetryWaitTime),
		Write: connect("write", DSN(cfg, pg.Write, nil), pg.MaxRetry, pg.RetryWaitTime),
	}
}

// DSN builds a postgres:// URL for ep. DB_POSTGRES_PREFIX is prepended to the database
// name and the endpoint timezone becomes the session TimeZone.
func DSN(cfg *config.Config, ep config.PostgresEndpoint, extra url.Values) string {
	query := url.Values{}
	if ep.SSLMode != "" {
		query.Set("sslmode", ep.SSLMode)
	}

	if ep.Timezone != "" {
		query.Set("timezone", ep.Timezone)
	}

	for key, values := range extra {
		query[key] = values
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(ep.Username, ep.Password),
		Host:     net.JoinHostPort(ep.Host, ep.Port),
		Path:     "/" + cfg.DB.Postgres.Prefix + ep.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

// connect retries until the database answers. The API cannot serve anything without it,
// so running out of attempts is fatal.
func connect(name, dsn string, maxRetry, waitSeconds int) *sqlx.DB {
	attempts := max(maxRetry, 1)

	for attempt := 1; ; attempt++ {
		db, err := sqlx.Connect("postgres", dsn)
		if err == nil {
			db.SetMaxIdleConns(maxIdleConns)
			db.SetMaxOpenConns(maxOpenConns)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().Str("name", name).Int("attempt", attempt).Msg("Connected to database")

			return db
		}

		if attempt >= attempts {
			log.Fatal().Err(err).Str("name", name).Int("attempts", attempts).Msg("Giving up connecting to database")
		}

		log.Error().Err(err).Str("name", name).Int("attempt", attempt).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(waitSeconds) * time.Second)
	}
}
