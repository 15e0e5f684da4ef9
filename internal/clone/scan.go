package clone

import "github.com/shanmukh-025/AppTrackr-sub003/internal/model"

// Assumed review time a user saves per duplicate that never reaches
// their board. Display-only.
const reviewMinutesPerClone = 5

// Scan runs the full detection pass over an in-memory batch: pairwise
// similarity and classification, transitive grouping, and blacklist
// filtering. Pure CPU-bound computation — no I/O, fresh state per call.
//
// Malformed postings (missing company, position or url) are excluded
// from comparison and counted as skipped; a single bad posting never
// aborts the batch.
func Scan(postings []model.JobPosting, blacklist map[string]struct{}) model.ScanResult {
	valid := make([]model.JobPosting, 0, len(postings))
	skipped := 0
	for _, p := range postings {
		if p.Company == "" || p.Position == "" || p.URL == "" {
			skipped++
			continue
		}
		valid = append(valid, p)
	}

	kept, removed := FilterBlacklisted(valid, blacklist)

	var pairs []model.ClonePair
	for i := 0; i < len(kept); i++ {
		for j := i + 1; j < len(kept); j++ {
			a, b := kept[i], kept[j]
			sim := Similarity(scanText(a), scanText(b))
			t := Classify(sim, a, b)
			if t == model.CloneNone {
				continue
			}
			pairs = append(pairs, model.ClonePair{
				Original:   a,
				Clone:      b,
				Similarity: sim,
				CloneType:  t,
				Flags:      Flags(t, a, b),
			})
		}
	}

	groups := Group(pairs)

	return model.ScanResult{
		Pairs:  pairs,
		Groups: groups,
		Stats: model.ScanStats{
			TotalScanned:            len(postings),
			TotalClones:             len(pairs),
			TotalSkipped:            skipped,
			TotalBlocked:            len(removed),
			EstimatedTimeSavedHours: float64(len(pairs)*reviewMinutesPerClone) / 60,
		},
	}
}

// scanText is the posting text fed to the similarity scorer: the
// description when present, otherwise the position title.
func scanText(p model.JobPosting) string {
	if p.Description != "" {
		return p.Description
	}
	return p.Position
}
