package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nested formatter puts pkg first", func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger := New(Config{Level: logrus.InfoLevel, Output: buf})

		logger.WithField("keyword", "golang").WithField(PkgKey, "collector").Info("collected")

		out := buf.String()
		require.Contains(t, out, "collected")
		assert.Less(t, bytes.Index(buf.Bytes(), []byte("collector")), bytes.Index(buf.Bytes(), []byte("golang")))
	})

	t.Run("ecs formatter writes json", func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger := New(Config{Level: logrus.InfoLevel, ToEcs: true, Output: buf})

		logger.WithError(errors.New("boom")).Error("search failed")

		assert.Contains(t, buf.String(), `"message":"search failed"`)
		assert.Contains(t, buf.String(), `"error":{"message":"boom"}`)
	})

	t.Run("level filters debug", func(t *testing.T) {
		buf := new(bytes.Buffer)
		logger := New(Config{Level: logrus.InfoLevel, Output: buf})

		logger.Debug("hidden")
		logger.WithFields(map[string]interface{}{"count": 3}).Infof("found %d", 3)

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "found 3")
	})
}
