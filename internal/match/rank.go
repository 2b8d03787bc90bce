package match

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/Dharaneesh-S-S/resume-engine/internal/types"
)

// Rank compares one profile against many job requirements and returns the
// results ordered best-first: descending match percent, then fewer missing
// keywords, then the caller's input order. Individual comparisons are
// independent and run concurrently; the ordering pass happens once after
// all of them complete.
func Rank(ctx context.Context, profile *types.ExtractedProfile, reqs []*types.JobRequirement) ([]types.RankedMatch, error) {
	ranked := make([]types.RankedMatch, len(reqs))

	g, _ := errgroup.WithContext(ctx)
	for i, req := range reqs {
		i, req := i, req
		g.Go(func() error {
			ranked[i] = types.RankedMatch{
				JobIndex:    i,
				MatchResult: Compare(profile, req),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].MatchPercent != ranked[j].MatchPercent {
			return ranked[i].MatchPercent > ranked[j].MatchPercent
		}
		if len(ranked[i].MissingKeywords) != len(ranked[j].MissingKeywords) {
			return len(ranked[i].MissingKeywords) < len(ranked[j].MissingKeywords)
		}
		return ranked[i].JobIndex < ranked[j].JobIndex
	})
	return ranked, nil
}
