package repo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/lueurxax/tweet-keeper/internal/common"
	"github.com/lueurxax/tweet-keeper/pkg/sqlclient"
)

const (
	tweetsTable = "tweets"
	tweetKey    = "tweet_id"

	opUpsertTweets = "upsert tweets"
	opGetTweet     = "get tweet"
	opCountTweets  = "count tweets"
	rowsKey        = "rows"
)

type tweetRepo interface {
	// UpsertTweets writes rows in common.TweetColumns order in one transaction.
	UpsertTweets(ctx context.Context, rows [][]any) error
	GetTweet(ctx context.Context, id int64) (common.TweetRecord, error)
	CountTweets(ctx context.Context) (int64, error)
}

func (d *db) UpsertTweets(ctx context.Context, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	if err := d.db.ExecuteMany(ctx, d.upsertTweets, rows); err != nil {
		d.log.WithField(rowsKey, len(rows)).WithError(err).Error("upsert failed, rolled back")
		return common.NewError(common.KindPersistence, opUpsertTweets, err)
	}

	d.log.WithField(rowsKey, len(rows)).Info("tweets inserted")

	return nil
}

func (d *db) GetTweet(ctx context.Context, id int64) (common.TweetRecord, error) {
	statement := fmt.Sprintf("SELECT %s FROM %s WHERE %s = %d",
		strings.Join(common.TweetColumns, ", "), tweetsTable, tweetKey, id)

	res, err := d.db.Execute(ctx, statement)
	if err != nil {
		return common.TweetRecord{}, common.NewError(common.KindPersistence, opGetTweet, err)
	}

	if len(res.Rows) == 0 {
		return common.TweetRecord{}, common.NewError(common.KindPersistence, opGetTweet,
			fmt.Errorf("%w: %d", ErrTweetNotFound, id))
	}

	tweet, err := decodeTweet(res.Rows[0])
	if err != nil {
		return common.TweetRecord{}, common.NewError(common.KindPersistence, opGetTweet, err)
	}

	return tweet, nil
}

func (d *db) CountTweets(ctx context.Context) (int64, error) {
	res, err := d.db.Execute(ctx, fmt.Sprintf("SELECT COUNT(*) FROM %s", tweetsTable), sqlclient.AsMappings(false))
	if err != nil {
		return 0, common.NewError(common.KindPersistence, opCountTweets, err)
	}

	if len(res.Tuples) == 0 || len(res.Tuples[0]) == 0 {
		return 0, nil
	}

	total, err := asInt64(res.Tuples[0][0])
	if err != nil {
		return 0, common.NewError(common.KindPersistence, opCountTweets, err)
	}

	return total, nil
}

// upsertStatement inserts every column and overwrites all of them on a key conflict.
func upsertStatement(dialect Dialect, table, key string) string {
	columns := common.TweetColumns
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(columns)), ",")
	updates := make([]string, len(columns))

	for i, column := range columns {
		if dialect == DialectSQLite {
			updates[i] = fmt.Sprintf("%s = excluded.%s", column, column)
		} else {
			updates[i] = fmt.Sprintf("%s = VALUES(%s)", column, column)
		}
	}

	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ","), placeholders)

	if dialect == DialectSQLite {
		return fmt.Sprintf("%s ON CONFLICT(%s) DO UPDATE SET %s", insert, key, strings.Join(updates, ","))
	}

	return fmt.Sprintf("%s ON DUPLICATE KEY UPDATE %s", insert, strings.Join(updates, ","))
}

// decodeTweet accepts both typed values and the text protocol strings MySQL returns.
func decodeTweet(row map[string]any) (common.TweetRecord, error) {
	var (
		tweet common.TweetRecord
		err   error
	)

	if tweet.TweetID, err = asInt64(row["tweet_id"]); err != nil {
		return tweet, err
	}

	if tweet.AccountID, err = asInt64(row["account_id"]); err != nil {
		return tweet, err
	}

	favorites, err := asInt64(row["favorites"])
	if err != nil {
		return tweet, err
	}

	retweets, err := asInt64(row["retweets"])
	if err != nil {
		return tweet, err
	}

	tweet.Favorites = int(favorites)
	tweet.Retweets = int(retweets)
	tweet.AccountName = asString(row["account_name"])
	tweet.Username = asString(row["username"])
	tweet.Tweet = asString(row["tweet"])
	tweet.SearchedAt = asString(row["searched_at"])
	tweet.TweetedAt = asString(row["tweeted_at"])

	return tweet, nil
}

func asInt64(v any) (int64, error) {
	switch value := v.(type) {
	case int64:
		return value, nil
	case string:
		return strconv.ParseInt(value, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected integer column type %T", v)
	}
}

func asString(v any) string {
	if v == nil {
		return ""
	}

	if s, ok := v.(string); ok {
		return s
	}

	return fmt.Sprint(v)
}
