package tweetfinder_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lueurxax/tweet-keeper/internal/common"
	"github.com/lueurxax/tweet-keeper/internal/tweetfinder"
	"github.com/lueurxax/tweet-keeper/internal/tweetfinder/mocks"
)

func TestMetricMiddleware(t *testing.T) {
	t.Run("counts fetched tweets per operation", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		next := mocks.NewMockFinder(gomock.NewController(t))
		params := tweetfinder.SearchParams{ExcludeRetweets: true, Count: 100}

		next.EXPECT().Search(gomock.Any(), tweetfinder.Keyword("golang"), params).
			Return([]common.TweetRecord{{TweetID: 1}, {TweetID: 2}}, nil).Times(1)
		next.EXPECT().HomeTimeline(gomock.Any(), 10).Return([]common.TweetRecord{{TweetID: 3}}, nil).Times(1)

		f := tweetfinder.NewMetricMiddleware(registry, next)

		got, err := f.Search(context.Background(), tweetfinder.Keyword("golang"), params)
		require.NoError(t, err)
		assert.Len(t, got, 2)

		_, err = f.HomeTimeline(context.Background(), 10)
		require.NoError(t, err)

		requests, err := testutil.GatherAndCount(registry, "tweet_keeper_finder_requests_seconds")
		require.NoError(t, err)
		assert.Equal(t, 2, requests)

		failures, err := testutil.GatherAndCount(registry, "tweet_keeper_finder_failures_total")
		require.NoError(t, err)
		assert.Zero(t, failures)
	})

	t.Run("failures are labeled with the error kind", func(t *testing.T) {
		registry := prometheus.NewRegistry()
		next := mocks.NewMockFinder(gomock.NewController(t))
		apiErr := common.NewError(common.KindTransport, "user timeline", assert.AnError)

		next.EXPECT().UserTimeline(gomock.Any(), "golang", 5).Return(nil, apiErr).Times(1)

		f := tweetfinder.NewMetricMiddleware(registry, next)

		_, err := f.UserTimeline(context.Background(), "golang", 5)
		assert.ErrorIs(t, err, common.ErrTransport)

		failures, err := registry.Gather()
		require.NoError(t, err)

		var found bool

		for _, family := range failures {
			if family.GetName() != "tweet_keeper_finder_failures_total" {
				continue
			}

			found = true

			require.Len(t, family.GetMetric(), 1)
			assert.Equal(t, float64(1), family.GetMetric()[0].GetCounter().GetValue())
		}

		assert.True(t, found)
	})
}
