package common

import (
	"fmt"
)

// DatetimeFormat is the layout of tweeted_at and searched_at.
const DatetimeFormat = "2006-01-02 15:04:05"

// TweetColumns is the persisted column order of the tweets table.
var TweetColumns = []string{
	"tweet_id",
	"account_id",
	"account_name",
	"username",
	"tweet",
	"favorites",
	"retweets",
	"searched_at",
	"tweeted_at",
}

// TweetRecord is one fetched post, independent of the raw API response shape.
type TweetRecord struct {
	TweetID     int64  `json:"tweet_id"`
	AccountID   int64  `json:"account_id"`
	AccountName string `json:"account_name"`
	Username    string `json:"username"`
	Tweet       string `json:"tweet"`
	Favorites   int    `json:"favorites"`
	Retweets    int    `json:"retweets"`
	SearchedAt  string `json:"searched_at"`
	TweetedAt   string `json:"tweeted_at"`
}

// Values returns the record fields in TweetColumns order.
func (t TweetRecord) Values() []any {
	return []any{
		t.TweetID,
		t.AccountID,
		t.AccountName,
		t.Username,
		t.Tweet,
		t.Favorites,
		t.Retweets,
		t.SearchedAt,
		t.TweetedAt,
	}
}

func (t TweetRecord) String() string {
	return fmt.Sprintf(
		"TweetRecord{ID: %d, Account: %s, Favorites: %d, Retweets: %d, TweetedAt: %s}",
		t.TweetID, t.AccountName, t.Favorites, t.Retweets, t.TweetedAt,
	)
}

// Project maps records into rows ordered by TweetColumns.
func Project(tweets []TweetRecord) [][]any {
	rows := make([][]any, len(tweets))
	for i, tweet := range tweets {
		rows[i] = tweet.Values()
	}

	return rows
}
