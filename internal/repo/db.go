package repo

import (
	"fmt"

	"github.com/lueurxax/tweet-keeper/internal/log"
	"github.com/lueurxax/tweet-keeper/pkg/sqlclient"
)

type Dialect string

const (
	DialectMySQL  Dialect = "mysql"
	DialectSQLite Dialect = "sqlite"
)

func ParseDialect(s string) (Dialect, error) {
	switch d := Dialect(s); d {
	case DialectMySQL, DialectSQLite:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, s)
	}
}

type DB interface {
	tweetRepo
}

type db struct {
	dialect Dialect
	db      sqlclient.Database

	upsertTweets string

	log log.Logger
}

func NewDB(database sqlclient.Database, dialect Dialect, logger log.Logger) DB {
	return &db{
		dialect:      dialect,
		db:           database,
		upsertTweets: upsertStatement(dialect, tweetsTable, tweetKey),
		log:          logger,
	}
}
