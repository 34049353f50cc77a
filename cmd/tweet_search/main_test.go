package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseArgs(t *testing.T) {
	t.Run("single keyword", func(t *testing.T) {
		a, err := parseArgs("tweet_search", []string{"golang"}, new(bytes.Buffer))
		require.NoError(t, err)
		assert.Equal(t, "golang", a.keyword)
	})

	t.Run("dash keyword after separator", func(t *testing.T) {
		a, err := parseArgs("tweet_search", []string{"--", "-golang"}, new(bytes.Buffer))
		require.NoError(t, err)
		assert.Equal(t, "-golang", a.keyword)
	})

	t.Run("dash keyword without separator is a flag", func(t *testing.T) {
		out := new(bytes.Buffer)

		_, err := parseArgs("tweet_search", []string{"-golang"}, out)
		assert.Error(t, err)
		assert.Contains(t, out.String(), "use -- before a keyword that starts with a dash")
	})

	t.Run("missing keyword", func(t *testing.T) {
		out := new(bytes.Buffer)

		_, err := parseArgs("tweet_search", nil, out)
		assert.ErrorIs(t, err, errUsage)
		assert.Contains(t, out.String(), "usage: tweet_search [-version] [--] <keyword>")
	})

	t.Run("version", func(t *testing.T) {
		a, err := parseArgs("tweet_search", []string{"-version"}, new(bytes.Buffer))
		require.NoError(t, err)
		assert.True(t, a.printVersion)
	})

	t.Run("help", func(t *testing.T) {
		_, err := parseArgs("tweet_search", []string{"-h"}, new(bytes.Buffer))
		assert.ErrorIs(t, err, flag.ErrHelp)
	})
}
