package tweetfinder

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/tweet-keeper/internal/common"
)

const (
	namespace       = "tweet_keeper"
	labelOperation  = "operation"
	labelError      = "error"
	labelErrorKind  = "kind"
	operationSearch = "search"
	operationHome   = "home_timeline"
	operationUser   = "user_timeline"
)

type metricMiddleware struct {
	next Finder

	requestsHistogramSeconds *prometheus.HistogramVec
	fetchedTweets            *prometheus.CounterVec
	failures                 *prometheus.CounterVec
}

func (m *metricMiddleware) Search(ctx context.Context, keywords Keywords, params SearchParams) ([]common.TweetRecord, error) {
	st := time.Now()

	data, err := m.next.Search(ctx, keywords, params)

	m.observe(operationSearch, st, len(data), err)

	return data, err
}

func (m *metricMiddleware) HomeTimeline(ctx context.Context, count int) ([]common.TweetRecord, error) {
	st := time.Now()

	data, err := m.next.HomeTimeline(ctx, count)

	m.observe(operationHome, st, len(data), err)

	return data, err
}

func (m *metricMiddleware) UserTimeline(ctx context.Context, account string, count int) ([]common.TweetRecord, error) {
	st := time.Now()

	data, err := m.next.UserTimeline(ctx, account, count)

	m.observe(operationUser, st, len(data), err)

	return data, err
}

func (m *metricMiddleware) observe(operation string, st time.Time, fetched int, err error) {
	m.requestsHistogramSeconds.WithLabelValues(operation, strconv.FormatBool(err != nil)).Observe(time.Since(st).Seconds())
	m.fetchedTweets.WithLabelValues(operation).Add(float64(fetched))

	if err != nil {
		m.failures.WithLabelValues(operation, common.KindOf(err).String()).Inc()
	}
}

func NewMetricMiddleware(registerer prometheus.Registerer, next Finder) Finder {
	requests := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "finder",
		Name:      "requests_seconds",
		Help:      "Finder requests histogram in seconds",
	}, []string{labelOperation, labelError})

	fetched := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "finder",
		Name:      "fetched_tweets_total",
		Help:      "Tweets returned by the finder",
	}, []string{labelOperation})

	failures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "finder",
		Name:      "failures_total",
		Help:      "Finder failures by error kind",
	}, []string{labelOperation, labelErrorKind})

	registerer.MustRegister(requests, fetched, failures)

	return &metricMiddleware{
		next:                     next,
		requestsHistogramSeconds: requests,
		fetchedTweets:            fetched,
		failures:                 failures,
	}
}
