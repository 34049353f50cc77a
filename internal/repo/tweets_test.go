package repo

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/tweet-keeper/internal/common"
	"github.com/lueurxax/tweet-keeper/internal/log"
	"github.com/lueurxax/tweet-keeper/pkg/sqlclient"
)

const createTweets = `CREATE TABLE tweets (
	tweet_id INTEGER PRIMARY KEY,
	account_id INTEGER NOT NULL,
	account_name TEXT NOT NULL,
	username TEXT NOT NULL,
	tweet TEXT NOT NULL,
	favorites INTEGER NOT NULL,
	retweets INTEGER NOT NULL,
	searched_at TEXT NOT NULL,
	tweeted_at TEXT NOT NULL
)`

func testLogger() log.Logger {
	return log.NewLogger(logrus.New())
}

func record(id int64, favorites int) common.TweetRecord {
	return common.TweetRecord{
		TweetID:     id,
		AccountID:   42,
		AccountName: "gopher",
		Username:    "Gopher",
		Tweet:       "#golang rocks",
		Favorites:   favorites,
		Retweets:    3,
		SearchedAt:  "2024-02-06 19:00:00",
		TweetedAt:   "2024-02-06 18:59:59",
	}
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("sqlite")
	require.NoError(t, err)
	assert.Equal(t, DialectSQLite, d)

	d, err = ParseDialect("mysql")
	require.NoError(t, err)
	assert.Equal(t, DialectMySQL, d)

	_, err = ParseDialect("postgres")
	assert.ErrorIs(t, err, ErrUnknownDialect)
}

func Test_upsertStatement(t *testing.T) {
	t.Run("mysql", func(t *testing.T) {
		stmt := upsertStatement(DialectMySQL, tweetsTable, tweetKey)
		assert.Equal(t,
			"INSERT INTO tweets (tweet_id,account_id,account_name,username,tweet,favorites,retweets,searched_at,tweeted_at) "+
				"VALUES (?,?,?,?,?,?,?,?,?) ON DUPLICATE KEY UPDATE "+
				"tweet_id = VALUES(tweet_id),account_id = VALUES(account_id),account_name = VALUES(account_name),"+
				"username = VALUES(username),tweet = VALUES(tweet),favorites = VALUES(favorites),"+
				"retweets = VALUES(retweets),searched_at = VALUES(searched_at),tweeted_at = VALUES(tweeted_at)",
			stmt)
	})

	t.Run("sqlite", func(t *testing.T) {
		stmt := upsertStatement(DialectSQLite, tweetsTable, tweetKey)
		assert.Contains(t, stmt, "ON CONFLICT(tweet_id) DO UPDATE SET tweet_id = excluded.tweet_id,")
		assert.Contains(t, stmt, "favorites = excluded.favorites")
		assert.NotContains(t, stmt, "VALUES(")
	})
}

func Test_db_UpsertTweets_sqlite(t *testing.T) {
	ctx := context.Background()
	database := sqlclient.NewSQLite(filepath.Join(t.TempDir(), "tweets.db"))

	_, err := database.Execute(ctx, createTweets, sqlclient.Autocommit())
	require.NoError(t, err)

	d := NewDB(database, DialectSQLite, testLogger())

	require.NoError(t, d.UpsertTweets(ctx, common.Project([]common.TweetRecord{record(1, 10), record(2, 5)})))
	require.NoError(t, d.UpsertTweets(ctx, common.Project([]common.TweetRecord{record(1, 99)})))

	total, err := d.CountTweets(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	got, err := d.GetTweet(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, record(1, 99), got)

	_, err = d.GetTweet(ctx, 3)
	assert.ErrorIs(t, err, ErrTweetNotFound)
	assert.ErrorIs(t, err, common.ErrPersistence)
}

func Test_db_UpsertTweets_mysql(t *testing.T) {
	t.Run("one prepared upsert per row", func(t *testing.T) {
		conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
		require.NoError(t, err)

		database := sqlclient.NewDatabaseFromOpener(func() (*sql.DB, error) { return conn, nil })
		d := NewDB(database, DialectMySQL, testLogger())
		tweet := record(7, 1)

		mock.ExpectBegin()
		mock.ExpectPrepare(upsertStatement(DialectMySQL, tweetsTable, tweetKey)).
			ExpectExec().
			WithArgs(
				tweet.TweetID, tweet.AccountID, tweet.AccountName, tweet.Username, tweet.Tweet,
				tweet.Favorites, tweet.Retweets, tweet.SearchedAt, tweet.TweetedAt,
			).
			WillReturnResult(sqlmock.NewResult(7, 1))
		mock.ExpectCommit()
		mock.ExpectClose()

		require.NoError(t, d.UpsertTweets(context.Background(), common.Project([]common.TweetRecord{tweet})))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("failure is a persistence error", func(t *testing.T) {
		conn, mock, err := sqlmock.New()
		require.NoError(t, err)

		database := sqlclient.NewDatabaseFromOpener(func() (*sql.DB, error) { return conn, nil })
		d := NewDB(database, DialectMySQL, testLogger())
		cause := errors.New("table doesn't exist")

		mock.ExpectBegin()
		mock.ExpectPrepare("INSERT INTO tweets").WillReturnError(cause)
		mock.ExpectRollback()
		mock.ExpectClose()

		err = d.UpsertTweets(context.Background(), common.Project([]common.TweetRecord{record(7, 1)}))
		assert.ErrorIs(t, err, cause)
		assert.ErrorIs(t, err, common.ErrPersistence)
		assert.Equal(t, common.KindPersistence, common.KindOf(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty rows are skipped", func(t *testing.T) {
		database := sqlclient.NewDatabaseFromOpener(func() (*sql.DB, error) {
			t.Fatal("opener must not be called")
			return nil, nil
		})

		assert.NoError(t, NewDB(database, DialectMySQL, testLogger()).UpsertTweets(context.Background(), nil))
	})
}

func Test_decodeTweet_text_protocol(t *testing.T) {
	got, err := decodeTweet(map[string]any{
		"tweet_id":     "7",
		"account_id":   "42",
		"account_name": "gopher",
		"username":     "Gopher",
		"tweet":        "#golang rocks",
		"favorites":    "1",
		"retweets":     "3",
		"searched_at":  "2024-02-06 19:00:00",
		"tweeted_at":   "2024-02-06 18:59:59",
	})
	require.NoError(t, err)
	assert.Equal(t, record(7, 1), got)

	_, err = decodeTweet(map[string]any{"tweet_id": 1.5})
	assert.Error(t, err)
}
