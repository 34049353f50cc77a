package main

import (
	"context"
	"flag"
	"fmt"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"

	"github.com/lueurxax/tweet-keeper/internal/common"
	"github.com/lueurxax/tweet-keeper/internal/log"
	"github.com/lueurxax/tweet-keeper/internal/tweetfinder"
)

var version = "dev"

type config struct {
	LoggerLevel logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs    bool         `envconfig:"LOG_TO_ECS" default:"false"`
}

func main() {
	printVersion := flag.Bool("version", false, "print version and exit")
	user := flag.String("user", "", "screen name or numeric id; home timeline when empty")
	count := flag.Int("count", 20, "number of tweets to fetch")
	flag.Parse()

	if *printVersion {
		fmt.Println(version)
		return
	}

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	logger := log.New(log.Config{Level: cfg.LoggerLevel, ToEcs: cfg.LogToEcs})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	finder, err := tweetfinder.NewFinder(tweetfinder.GetConfig(), nil, logger.WithField(log.PkgKey, "tweet_finder"))
	if err != nil {
		logger.WithField("kind", common.KindOf(err)).WithError(err).Fatal("client setup failed")
	}

	var tweets []common.TweetRecord
	if *user == "" {
		tweets, err = finder.HomeTimeline(ctx, *count)
	} else {
		tweets, err = finder.UserTimeline(ctx, *user, *count)
	}

	if err != nil {
		logger.WithField("kind", common.KindOf(err)).WithError(err).Fatal("timeline failed")
	}

	data, err := jsoniter.MarshalToString(tweets)
	if err != nil {
		panic(err)
	}

	fmt.Println(data)
}
