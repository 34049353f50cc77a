package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lueurxax/tweet-keeper/internal/log"
)

//go:generate mockgen -source=metrics.go -destination=mocks/mock_metrics.go -package=mocks

const countLabel = "count"

type repo interface {
	CountTweets(ctx context.Context) (int64, error)
}

// Metrics snapshots the stored tweet total into a gauge.
type Metrics interface {
	Observe(ctx context.Context) error
}

type metrics struct {
	repo
	storedTweets prometheus.Gauge

	log log.Logger
}

func (m *metrics) Observe(ctx context.Context) error {
	count, err := m.repo.CountTweets(ctx)
	if err != nil {
		m.log.WithError(err).Error("count stored tweets")
		return err
	}

	m.log.WithField(countLabel, count).Trace("stored tweets")

	m.storedTweets.Set(float64(count))

	return nil
}

func NewMetrics(registerer prometheus.Registerer, repo repo, logger log.Logger) Metrics {
	storedTweets := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "tweet_keeper",
		Name:      "stored_tweets",
		Help:      "Rows in the tweets table after the last run.",
	})
	registerer.MustRegister(storedTweets)

	return &metrics{storedTweets: storedTweets, repo: repo, log: logger}
}
