package clone

import "github.com/shanmukh-025/AppTrackr-sub003/internal/model"

// NormalizeCompany lowercases and trims a company name for blacklist and
// same-company comparisons.
func NormalizeCompany(name string) string {
	return normalize(name)
}

// FilterBlacklisted splits postings into those to keep and those whose
// normalised company name appears in the blocked set. Pure membership
// test — bumping blocked_count is the caller's bookkeeping, done only
// when a filtered posting would actually have been suppressed from view.
func FilterBlacklisted(postings []model.JobPosting, blocked map[string]struct{}) (kept, removed []model.JobPosting) {
	for _, p := range postings {
		if _, ok := blocked[normalize(p.Company)]; ok {
			removed = append(removed, p)
			continue
		}
		kept = append(kept, p)
	}
	return kept, removed
}
