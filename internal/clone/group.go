package clone

import (
	"crypto/md5"
	"fmt"
	"sort"
	"strings"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

// Group clusters postings transitively connected by clone pairs using a
// disjoint-set structure. Pairs labelled CloneNone are ignored. Only
// sets with at least two members are emitted; a posting appearing in no
// clone pair never forms a group of its own.
//
// The result is deterministic: members are sorted, groups are ordered by
// id, and running Group twice over the same pairs yields identical
// clusters.
func Group(pairs []model.ClonePair) []model.CloneGroup {
	uf := newUnionFind()
	postings := make(map[string]model.JobPosting)

	for _, p := range pairs {
		if p.CloneType == model.CloneNone {
			continue
		}
		ko, kc := p.Original.Key(), p.Clone.Key()
		uf.union(ko, kc)
		postings[ko] = p.Original
		postings[kc] = p.Clone
	}

	members := make(map[string][]string)
	for key := range postings {
		root := uf.find(key)
		members[root] = append(members[root], key)
	}

	// Average the similarity of the pairs that linked each final group —
	// not a full pairwise recomputation over the whole cluster.
	simSum := make(map[string]float64)
	simCount := make(map[string]int)
	for _, p := range pairs {
		if p.CloneType == model.CloneNone {
			continue
		}
		root := uf.find(p.Original.Key())
		simSum[root] += p.Similarity
		simCount[root]++
	}

	groups := make([]model.CloneGroup, 0, len(members))
	for root, keys := range members {
		if len(keys) < 2 {
			continue
		}
		sort.Strings(keys)

		groups = append(groups, model.CloneGroup{
			ID:                groupID(keys),
			Members:           keys,
			Representative:    representative(keys, postings),
			AverageSimilarity: simSum[root] / float64(simCount[root]),
		})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].ID < groups[j].ID })
	return groups
}

// groupID derives a stable id from the sorted member keys, so the same
// cluster always persists under the same id.
func groupID(sortedKeys []string) string {
	sum := md5.Sum([]byte(strings.Join(sortedKeys, "|")))
	return fmt.Sprintf("%x", sum)
}

// representative picks the earliest-posted member; postings without a
// date lose to dated ones, and ties fall to the lexicographically
// smallest key for determinism.
func representative(sortedKeys []string, postings map[string]model.JobPosting) string {
	rep := sortedKeys[0]
	for _, key := range sortedKeys[1:] {
		cur, cand := postings[rep], postings[key]
		switch {
		case cand.PostedDate == nil:
			// keep rep
		case cur.PostedDate == nil:
			rep = key
		case cand.PostedDate.Before(*cur.PostedDate):
			rep = key
		}
	}
	return rep
}
