package tweetfinder

import (
	"context"
	"net/http"

	"github.com/dghubble/go-twitter/twitter"
	"github.com/dghubble/oauth1"
	"golang.org/x/oauth2"

	"github.com/lueurxax/tweet-keeper/internal/common"
)

const (
	opVerify          = "verify credentials"
	rateLimitResource = "search"
)

type authMode uint8

const (
	authUser authMode = iota + 1
	authApp
)

func (m authMode) String() string {
	if m == authUser {
		return "oauth1 user context"
	}

	return "app-only bearer"
}

// newAuthTransport signs requests with OAuth 1.0a user credentials when all four are
// present, and with the app-only bearer token otherwise.
func newAuthTransport(cfg Config, base http.RoundTripper) (http.RoundTripper, authMode, error) {
	switch {
	case cfg.userContext():
		ctx := context.WithValue(context.Background(), oauth1.HTTPClient, &http.Client{Transport: base})
		config := oauth1.NewConfig(cfg.ConsumerKey, cfg.ConsumerSecret)
		token := oauth1.NewToken(cfg.AccessToken, cfg.AccessTokenSecret)

		return config.Client(ctx, token).Transport, authUser, nil
	case cfg.BearerToken != "":
		source := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.BearerToken, TokenType: "Bearer"})

		return &oauth2.Transport{Source: source, Base: base}, authApp, nil
	default:
		return nil, 0, common.NewError(common.KindAuth, opVerify, ErrNoCredentials)
	}
}

// verify makes one cheap authenticated call so bad credentials fail at construction.
func verify(client *twitter.Client, mode authMode) (string, error) {
	var (
		resp *http.Response
		err  error
		name string
	)

	if mode == authUser {
		var user *twitter.User

		user, resp, err = client.Accounts.VerifyCredentials(&twitter.AccountVerifyParams{
			IncludeEntities: twitter.Bool(false),
			SkipStatus:      twitter.Bool(true),
		})
		if err == nil && user != nil {
			name = user.ScreenName
		}
	} else {
		_, resp, err = client.RateLimits.Status(&twitter.RateLimitParams{Resources: []string{rateLimitResource}})
	}

	if err != nil || failed(resp) {
		if err == nil {
			err = ErrUnexpectedStatus
		}

		return "", common.NewError(common.KindAuth, opVerify, withStatus(resp, err))
	}

	return name, nil
}
