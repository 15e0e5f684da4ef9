package clone

import (
	"strings"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

// rule is one entry of the classification ladder. Rules are evaluated
// top-to-bottom and the first match wins — thresholds deliberately
// overlap (0.90 satisfies both the content-clone and scam conditions),
// so the order of cloneRules, not threshold exclusivity, decides the
// label. Keep them sorted most-restrictive first.
type rule struct {
	label model.CloneType
	match func(sim float64, sameCompany, sameTitle bool) bool
}

var cloneRules = []rule{
	{model.CloneExactRepost, func(sim float64, sameCompany, sameTitle bool) bool {
		return sim >= 0.95 && sameCompany && sameTitle
	}},
	{model.CloneContentClone, func(sim float64, sameCompany, _ bool) bool {
		return sim >= 0.85 && !sameCompany
	}},
	{model.CloneRecruiterClone, func(sim float64, sameCompany, sameTitle bool) bool {
		return sim >= 0.70 && sameTitle && !sameCompany
	}},
	{model.CloneScam, func(sim float64, _, _ bool) bool {
		return sim >= 0.90
	}},
}

// Classify assigns a clone-type label to a posting pair given their text
// similarity. Pure and total: any string content, including empty
// company or position fields, is compared as-is.
func Classify(sim float64, a, b model.JobPosting) model.CloneType {
	sameCompany := normalize(a.Company) == normalize(b.Company)
	sameTitle := normalize(a.Position) == normalize(b.Position)

	for _, r := range cloneRules {
		if r.match(sim, sameCompany, sameTitle) {
			return r.label
		}
	}
	return model.CloneNone
}

// Flags derives the human-readable reasons shown next to a clone pair.
func Flags(t model.CloneType, a, b model.JobPosting) []string {
	var flags []string
	if normalize(a.Company) == normalize(b.Company) {
		flags = append(flags, "Same company")
	}
	if normalize(a.Position) == normalize(b.Position) {
		flags = append(flags, "Same title")
	}

	switch t {
	case model.CloneExactRepost:
		flags = append(flags, "Reposted listing")
	case model.CloneContentClone:
		flags = append(flags, "Copied description")
	case model.CloneRecruiterClone:
		flags = append(flags, "Likely recruiter repost")
	case model.CloneScam:
		flags = append(flags, "Suspicious similarity")
	}
	return flags
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
