package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/kelseyhightower/envconfig"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"github.com/sirupsen/logrus"

	"github.com/lueurxax/tweet-keeper/internal/collector"
	"github.com/lueurxax/tweet-keeper/internal/common"
	"github.com/lueurxax/tweet-keeper/internal/log"
	"github.com/lueurxax/tweet-keeper/internal/metrics"
	"github.com/lueurxax/tweet-keeper/internal/repo"
	"github.com/lueurxax/tweet-keeper/internal/tweetfinder"
	"github.com/lueurxax/tweet-keeper/pkg/sqlclient"
)

var version = "dev"

var errUsage = errors.New("exactly one keyword is required")

const (
	jobName = "tweet_search"
	kindKey = "kind"
)

type config struct {
	LoggerLevel    logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs       bool         `envconfig:"LOG_TO_ECS" default:"false"`
	DBDriver       string       `envconfig:"DB_DRIVER" default:"mysql"`
	SQLitePath     string       `envconfig:"SQLITE_PATH" default:"tweets.db"`
	PushgatewayURL string       `envconfig:"PUSHGATEWAY_URL"`
}

type args struct {
	printVersion bool
	keyword      string
}

// parseArgs reads the flags and the single keyword. A keyword starting with a dash
// must follow "--".
func parseArgs(name string, arguments []string, output io.Writer) (args, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	var a args

	fs.BoolVar(&a.printVersion, "version", false, "print version and exit")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: %s [-version] [--] <keyword>\n"+
			"use -- before a keyword that starts with a dash\n", name)
		fs.PrintDefaults()
	}

	if err := fs.Parse(arguments); err != nil {
		return a, err
	}

	if a.printVersion {
		return a, nil
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return a, errUsage
	}

	a.keyword = fs.Arg(0)

	return a, nil
}

func main() {
	a, err := parseArgs(os.Args[0], os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}

	if err != nil {
		os.Exit(2)
	}

	if a.printVersion {
		fmt.Println(version)
		return
	}

	keyword := a.keyword

	// init main config
	cfg := new(config)
	if err := envconfig.Process("", cfg); err != nil {
		panic(err)
	}

	logger := log.New(log.Config{Level: cfg.LoggerLevel, ToEcs: cfg.LogToEcs})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dialect, err := repo.ParseDialect(cfg.DBDriver)
	if err != nil {
		panic(err)
	}

	var database sqlclient.Database

	switch dialect {
	case repo.DialectSQLite:
		database = sqlclient.NewSQLite(cfg.SQLitePath)
	default:
		database = sqlclient.NewMySQL(sqlclient.GetConfig())
	}

	st := repo.NewDB(database, dialect, logger.WithField(log.PkgKey, "repo"))

	registry := prometheus.NewRegistry()

	finder, err := tweetfinder.NewFinder(tweetfinder.GetConfig(), nil, logger.WithField(log.PkgKey, "tweet_finder"))
	if err != nil {
		logger.WithField(kindKey, common.KindOf(err)).WithError(err).Fatal("client setup failed")
	}

	c := collector.NewCollector(
		tweetfinder.NewMetricMiddleware(registry, finder),
		st,
		logger.WithField(log.PkgKey, "collector"),
	)

	stored, err := c.Collect(ctx, keyword)

	if cfg.PushgatewayURL != "" {
		if err == nil {
			if obsErr := metrics.NewMetrics(registry, st, logger.WithField(log.PkgKey, "metrics")).Observe(ctx); obsErr != nil {
				logger.WithError(obsErr).Warn("stored tweets gauge not updated")
			}
		}

		if pushErr := push.New(cfg.PushgatewayURL, jobName).Gatherer(registry).Push(); pushErr != nil {
			logger.WithError(pushErr).Warn("metrics push failed")
		}
	}

	if err != nil {
		logger.WithField(kindKey, common.KindOf(err)).WithError(err).Fatal("collect failed")
	}

	logger.Infof("stored %d tweets for %q", stored, keyword)
}
