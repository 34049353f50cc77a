package tweetfinder

import (
	"fmt"
	"time"

	"github.com/dghubble/go-twitter/twitter"

	"github.com/lueurxax/tweet-keeper/internal/common"
)

const opSummarize = "summarize"

type textField uint8

const (
	fieldText textField = iota + 1
	fieldFullText
)

// rawTweet is a status tagged with the text field it was read from. Compat responses
// carry text, extended ones carry full_text.
type rawTweet struct {
	id         int64
	createdAt  string
	userID     int64
	name       string
	screenName string
	field      textField
	body       string
	favorites  int
	retweets   int
}

func fromStatus(status twitter.Tweet) rawTweet {
	raw := rawTweet{
		id:        status.ID,
		createdAt: status.CreatedAt,
		favorites: status.FavoriteCount,
		retweets:  status.RetweetCount,
	}

	if status.User != nil {
		raw.userID = status.User.ID
		raw.name = status.User.Name
		raw.screenName = status.User.ScreenName
	}

	if status.Text != "" {
		raw.field, raw.body = fieldText, status.Text
	} else {
		raw.field, raw.body = fieldFullText, status.FullText
	}

	return raw
}

// summarize converts statuses into records. searchedAt is shared by the whole batch.
func summarize(statuses []twitter.Tweet, zone *time.Location, searchedAt time.Time) ([]common.TweetRecord, error) {
	searched := searchedAt.Local().Format(common.DatetimeFormat)
	records := make([]common.TweetRecord, 0, len(statuses))

	for _, status := range statuses {
		raw := fromStatus(status)

		tweetedAt, err := time.Parse(time.RubyDate, raw.createdAt)
		if err != nil {
			return nil, common.NewError(common.KindTransport, opSummarize,
				fmt.Errorf("%w: tweet %d created_at %q", ErrInvalidResponse, raw.id, raw.createdAt))
		}

		records = append(records, common.TweetRecord{
			TweetID:     raw.id,
			AccountID:   raw.userID,
			AccountName: raw.screenName,
			Username:    raw.name,
			Tweet:       raw.body,
			Favorites:   raw.favorites,
			Retweets:    raw.retweets,
			SearchedAt:  searched,
			TweetedAt:   tweetedAt.In(zone).Format(common.DatetimeFormat),
		})
	}

	return records, nil
}
