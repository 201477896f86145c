package collector

import "github.com/qepting91/usaidwat/internal/domain"

// PageResult is what one listing request came back with: the normalized
// comments and the opaque "after" cursor for the next page. An empty After
// marks the end of the stream.
type PageResult struct {
	Comments []domain.Comment
	After    string
}

// NextPage decides whether another page should be fetched after the page
// identified by the cursor `used` returned `page`, given that `fetched`
// comments have been accumulated toward `limit`.
//
// It is pure: all state is passed explicitly. Fetching stops when the limit
// is reached, when the prior page was empty, when the source reports no
// further cursor, or when the source hands back the cursor we just used
// (stall detection, so a misbehaving listing cannot loop forever).
func NextPage(used string, page PageResult, fetched, limit int) (string, bool) {
	if fetched >= limit {
		return "", false
	}
	if len(page.Comments) == 0 {
		return "", false
	}
	if page.After == "" {
		return "", false
	}
	if page.After == used {
		return "", false
	}
	return page.After, true
}

// PageSize returns the size of the next page request: the remaining budget,
// capped at the listing API's maximum.
func PageSize(fetched, limit int) int {
	remaining := limit - fetched
	if remaining > domain.MaxPageSize {
		return domain.MaxPageSize
	}
	if remaining < 0 {
		return 0
	}
	return remaining
}
