package tweetfinder

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/lueurxax/tweet-keeper/internal/log"
)

const (
	rateLimitResetHeader = "x-rate-limit-reset"
	maxRateLimitWait     = 16 * time.Minute
	delayKey             = "delay"
)

// rateLimitTransport waits out a 429 until the advertised window reset and replays the
// request once.
type rateLimitTransport struct {
	next http.RoundTripper
	now  func() time.Time

	log log.Logger
}

func (t *rateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.next.RoundTrip(req)
	if err != nil || resp.StatusCode != http.StatusTooManyRequests {
		return resp, err
	}

	delay, ok := t.resetDelay(resp.Header)
	if !ok {
		return resp, nil
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()

	t.log.WithField(delayKey, delay.String()).Warn("rate limit reached, waiting for reset")

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-req.Context().Done():
		return nil, req.Context().Err()
	case <-timer.C:
	}

	return t.next.RoundTrip(req)
}

func (t *rateLimitTransport) resetDelay(header http.Header) (time.Duration, bool) {
	reset, err := strconv.ParseInt(header.Get(rateLimitResetHeader), 10, 64)
	if err != nil {
		return 0, false
	}

	delay := time.Unix(reset, 0).Sub(t.now())
	if delay < 0 {
		delay = 0
	}

	if delay > maxRateLimitWait {
		return 0, false
	}

	return delay, true
}

func newRateLimitTransport(next http.RoundTripper, now func() time.Time, logger log.Logger) http.RoundTripper {
	return &rateLimitTransport{next: next, now: now, log: logger}
}
