package collector

import (
	"context"

	"github.com/lueurxax/tweet-keeper/internal/common"
	"github.com/lueurxax/tweet-keeper/internal/log"
	"github.com/lueurxax/tweet-keeper/internal/tweetfinder"
)

//go:generate mockgen -source=collector.go -destination=mocks/mock_collector.go -package=mocks

const (
	searchCount = 100

	keywordKey = "keyword"
	foundKey   = "found"
)

type Collector interface {
	// Collect searches recent tweets for keyword and upserts them. It returns the number of stored rows.
	Collect(ctx context.Context, keyword string) (int, error)
}

type finder interface {
	Search(ctx context.Context, keywords tweetfinder.Keywords, params tweetfinder.SearchParams) ([]common.TweetRecord, error)
}

type repo interface {
	UpsertTweets(ctx context.Context, rows [][]any) error
}

type collector struct {
	finder
	repo

	log log.Logger
}

func (c *collector) Collect(ctx context.Context, keyword string) (int, error) {
	logger := c.log.WithField(keywordKey, keyword)

	tweets, err := c.finder.Search(ctx, tweetfinder.Keyword(keyword), tweetfinder.SearchParams{
		ExcludeRetweets: true,
		Count:           searchCount,
	})
	if err != nil {
		return 0, err
	}

	if len(tweets) == 0 {
		logger.Info("no tweets found, nothing to store")
		return 0, nil
	}

	logger.WithField(foundKey, len(tweets)).Debug("tweets found")

	if err = c.repo.UpsertTweets(ctx, common.Project(tweets)); err != nil {
		return 0, err
	}

	return len(tweets), nil
}

func NewCollector(finder finder, repo repo, logger log.Logger) Collector {
	return &collector{
		finder: finder,
		repo:   repo,
		log:    logger,
	}
}
