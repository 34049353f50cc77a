package metrics

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/tweet-keeper/internal/log"
	"github.com/lueurxax/tweet-keeper/internal/metrics/mocks"
)

func Test_metrics_Observe(t *testing.T) {
	t.Run("sets the gauge", func(t *testing.T) {
		mockrepo := mocks.NewMockrepo(gomock.NewController(t))
		mockrepo.EXPECT().CountTweets(gomock.Any()).Return(int64(42), nil).Times(1)

		registry := prometheus.NewRegistry()
		m := NewMetrics(registry, mockrepo, log.NewLogger(logrus.New()))

		assert.NoError(t, m.Observe(context.Background()))
		assert.Equal(t, float64(42), testutil.ToFloat64(m.(*metrics).storedTweets))

		count, err := testutil.GatherAndCount(registry, "tweet_keeper_stored_tweets")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("count error keeps the gauge", func(t *testing.T) {
		mockrepo := mocks.NewMockrepo(gomock.NewController(t))
		mockrepo.EXPECT().CountTweets(gomock.Any()).Return(int64(0), assert.AnError).Times(1)

		m := NewMetrics(prometheus.NewRegistry(), mockrepo, log.NewLogger(logrus.New()))

		assert.ErrorIs(t, m.Observe(context.Background()), assert.AnError)
		assert.Zero(t, testutil.ToFloat64(m.(*metrics).storedTweets))
	})
}
