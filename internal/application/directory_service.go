package application

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kubaxi/service-funnel/internal/domain/catalog"
)

const (
	// minQueryLen is the minimum query length before the directory is hit;
	// shorter queries get an empty suggestion list with no lookup.
	minQueryLen = 2

	maxSuggestions = 8
)

// DirectoryService resolves partial text to candidate locations for the
// typeahead. Lookup failures degrade to an empty result set, never an error:
// a dead suggestion dropdown must not block the funnel.
type DirectoryService struct {
	repo   catalog.LocationRepository
	logger *zap.Logger
}

// NewDirectoryService creates a new DirectoryService.
func NewDirectoryService(repo catalog.LocationRepository, logger *zap.Logger) *DirectoryService {
	return &DirectoryService{repo: repo, logger: logger}
}

// Search returns location suggestions for the query. Ordering is whatever
// the repository returns; there is no client-side re-ranking.
func (s *DirectoryService) Search(ctx context.Context, query string) []catalog.Location {
	q := strings.TrimSpace(query)
	if utf8.RuneCountInString(q) < minQueryLen {
		return []catalog.Location{}
	}

	locations, err := s.repo.Search(ctx, q, maxSuggestions)
	if err != nil {
		s.logger.Warn("location search failed",
			zap.String("query", q),
			zap.Error(err),
		)
		return []catalog.Location{}
	}
	if locations == nil {
		locations = []catalog.Location{}
	}
	return locations
}
