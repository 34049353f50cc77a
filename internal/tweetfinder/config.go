package tweetfinder

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	BearerToken       string        `envconfig:"BEARER_TOKEN"`
	ConsumerKey       string        `envconfig:"CONSUMER_KEY"`
	ConsumerSecret    string        `envconfig:"CONSUMER_SECRET"`
	AccessToken       string        `envconfig:"ACCESS_TOKEN"`
	AccessTokenSecret string        `envconfig:"ACCESS_TOKEN_SECRET"`
	WaitOnRateLimit   bool          `envconfig:"WAIT_ON_RATE_LIMIT" default:"true"`
	Timezone          string        `envconfig:"TIMEZONE" default:"Asia/Tokyo"`
	Timeout           time.Duration `envconfig:"TIMEOUT" default:"30s"`
}

func (c Config) userContext() bool {
	return c.ConsumerKey != "" && c.ConsumerSecret != "" && c.AccessToken != "" && c.AccessTokenSecret != ""
}

func GetConfig() Config {
	cfg := new(Config)
	if err := envconfig.Process("X", cfg); err != nil {
		panic(err)
	}

	return *cfg
}
