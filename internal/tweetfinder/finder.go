package tweetfinder

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/dghubble/go-twitter/twitter"

	"github.com/lueurxax/tweet-keeper/internal/common"
	"github.com/lueurxax/tweet-keeper/internal/log"
)

const (
	defaultCount      = 10
	resultRecent      = "recent"
	tweetModeExtended = "extended"

	queryKey   = "query"
	countKey   = "count"
	accountKey = "account"
	statusKey  = "status"

	opSearch       = "search tweets"
	opHomeTimeline = "home timeline"
	opUserTimeline = "user timeline"
)

//go:generate mockgen -source=finder.go -destination=mocks/mock_finder.go -package=mocks

type Finder interface {
	Search(ctx context.Context, keywords Keywords, params SearchParams) ([]common.TweetRecord, error)
	HomeTimeline(ctx context.Context, count int) ([]common.TweetRecord, error)
	UserTimeline(ctx context.Context, account string, count int) ([]common.TweetRecord, error)
}

type finder struct {
	transport http.RoundTripper
	zone      *time.Location
	now       func() time.Time

	log log.Logger
}

func (f *finder) Search(ctx context.Context, keywords Keywords, params SearchParams) ([]common.TweetRecord, error) {
	query, err := BuildQuery(keywords, params)
	if err != nil {
		return nil, err
	}

	count := params.Count
	if count <= 0 {
		count = defaultCount
	}

	logger := f.log.WithField(queryKey, query).WithField(countKey, count)
	logger.Debug("searching")

	search, resp, err := f.client(ctx).Search.Tweets(&twitter.SearchTweetParams{
		Query:           query,
		Count:           count,
		ResultType:      resultRecent,
		TweetMode:       tweetModeExtended,
		IncludeEntities: twitter.Bool(true),
	})
	if err != nil || failed(resp) {
		return nil, f.fail(logger, opSearch, resp, err)
	}

	records, err := summarize(search.Statuses, f.zone, f.now())
	if err != nil {
		logger.WithError(err).Error("invalid search response")
		return nil, err
	}

	logger.WithField("found", len(records)).Debug("tweets found")

	return records, nil
}

func (f *finder) HomeTimeline(ctx context.Context, count int) ([]common.TweetRecord, error) {
	if count <= 0 {
		count = defaultCount
	}

	logger := f.log.WithField(countKey, count)

	tweets, resp, err := f.client(ctx).Timelines.HomeTimeline(&twitter.HomeTimelineParams{Count: count})
	if err != nil || failed(resp) {
		return nil, f.fail(logger, opHomeTimeline, resp, err)
	}

	return summarize(tweets, f.zone, f.now())
}

// UserTimeline reads the timeline of account, a numeric user id or a screen name.
func (f *finder) UserTimeline(ctx context.Context, account string, count int) ([]common.TweetRecord, error) {
	if count <= 0 {
		count = defaultCount
	}

	logger := f.log.WithField(accountKey, account).WithField(countKey, count)

	params := &twitter.UserTimelineParams{Count: count}
	if id, err := strconv.ParseInt(account, 10, 64); err == nil {
		params.UserID = id
	} else {
		params.ScreenName = account
	}

	tweets, resp, err := f.client(ctx).Timelines.UserTimeline(params)
	if err != nil || failed(resp) {
		return nil, f.fail(logger, opUserTimeline, resp, err)
	}

	return summarize(tweets, f.zone, f.now())
}

func (f *finder) client(ctx context.Context) *twitter.Client {
	return twitter.NewClient(&http.Client{Transport: &contextTransport{ctx: ctx, next: f.transport}})
}

func (f *finder) fail(logger log.Logger, op string, resp *http.Response, err error) error {
	if err == nil {
		err = ErrUnexpectedStatus
	}

	kind := common.KindTransport
	if resp != nil && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden) {
		kind = common.KindAuth
	}

	err = withStatus(resp, err)
	logger.WithError(err).Error(op + " failed")

	return common.NewError(kind, op, err)
}

// failed catches non-2xx responses whose empty body go-twitter does not turn into an error.
func failed(resp *http.Response) bool {
	return resp != nil && (resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices)
}

func withStatus(resp *http.Response, err error) error {
	if resp == nil {
		return err
	}

	return fmt.Errorf("%w (%s %d)", err, statusKey, resp.StatusCode)
}

// NewFinder builds the authenticated transport and verifies the credentials before
// returning. A nil base uses http.DefaultTransport.
func NewFinder(cfg Config, base http.RoundTripper, logger log.Logger) (Finder, error) {
	zone, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.Timezone, err)
	}

	if base == nil {
		base = http.DefaultTransport
	}

	transport, mode, err := newAuthTransport(cfg, &timeoutTransport{timeout: cfg.Timeout, next: base})
	if err != nil {
		return nil, err
	}

	if cfg.WaitOnRateLimit {
		transport = newRateLimitTransport(transport, time.Now, logger.WithField("transport", "rate_limit"))
	}

	f := &finder{
		transport: transport,
		zone:      zone,
		now:       time.Now,
		log:       logger,
	}

	name, err := verify(f.client(context.Background()), mode)
	if err != nil {
		logger.WithField("auth", mode.String()).WithError(err).Error("credentials rejected")
		return nil, err
	}

	logger.WithField("auth", mode.String()).WithField(accountKey, name).Info("authenticated")

	return f, nil
}
