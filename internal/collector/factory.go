package collector

import (
	"github.com/qepting91/usaidwat/internal/domain"
)

// New selects the comment source implementation for the given mode:
// "api" (authenticated OAuth), "public" (unauthenticated .json endpoints,
// the default), or "mock" (generated data).
func New(mode string, creds domain.Credentials) (domain.CommentSource, error) {
	switch mode {
	case "api":
		return NewAPIClient(creds)
	case "public", "":
		return NewPublicClient(creds.UserAgent)
	case "mock":
		return NewMockClient(), nil
	default:
		return nil, domain.NewError(domain.KindConfiguration,
			"unknown collector mode: %s (use 'api', 'public', or 'mock')", mode)
	}
}
