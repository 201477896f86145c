package collector

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/loganintech/go-reddit/v2/reddit"

	"github.com/qepting91/usaidwat/internal/domain"
)

// classifyStatus maps a Reddit HTTP status to the error taxonomy.
func classifyStatus(status int, username string, retryAfter time.Duration) error {
	switch {
	case status == http.StatusNotFound:
		return domain.NewError(domain.KindNotFound, "no such user: %s", username)
	case status == http.StatusTooManyRequests:
		err := domain.NewError(domain.KindRateLimited, "reddit is throttling requests for %s", username)
		err.RetryAfter = retryAfter
		return err
	case status >= 500:
		return domain.NewError(domain.KindTransientNetwork, "reddit returned HTTP %d", status)
	default:
		return domain.NewError(domain.KindTransientNetwork, "reddit returned unexpected HTTP %d", status)
	}
}

// classifyErr maps transport and go-reddit errors to the error taxonomy.
// Context cancellation passes through untouched so callers can tell an
// interrupt apart from a network fault.
func classifyErr(err error, username string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	if domain.Kind(err) != 0 {
		return err
	}

	var rateErr *reddit.RateLimitError
	if errors.As(err, &rateErr) {
		wrapped := domain.WrapError(domain.KindRateLimited, err, "reddit is throttling requests for %s", username)
		wrapped.RetryAfter = time.Until(rateErr.Rate.Reset)
		return wrapped
	}

	var apiErr *reddit.ErrorResponse
	if errors.As(err, &apiErr) && apiErr.Response != nil {
		return classifyStatus(apiErr.Response.StatusCode, username, 0)
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return domain.WrapError(domain.KindTransientNetwork, err, "request timed out")
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domain.WrapError(domain.KindTransientNetwork, err, "request timed out")
	}

	return domain.WrapError(domain.KindTransientNetwork, err, "fetching data for %s", username)
}

// retryAfterHeader parses a Retry-After header into a backoff hint.
func retryAfterHeader(resp *http.Response) time.Duration {
	if resp == nil {
		return 0
	}
	secs, err := strconv.Atoi(resp.Header.Get("Retry-After"))
	if err != nil || secs <= 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}
