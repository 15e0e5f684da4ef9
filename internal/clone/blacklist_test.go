package clone_test

import (
	"testing"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/clone"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

func TestFilterBlacklisted(t *testing.T) {
	postings := []model.JobPosting{
		posting("Acme", "Engineer"),
		posting("Shady Corp", "Engineer"),
		posting("Globex", "Engineer"),
	}
	blocked := map[string]struct{}{"shady corp": {}}

	kept, removed := clone.FilterBlacklisted(postings, blocked)
	if len(kept) != 2 || len(removed) != 1 {
		t.Fatalf("kept=%d removed=%d, want 2/1", len(kept), len(removed))
	}
	if removed[0].Company != "Shady Corp" {
		t.Errorf("removed %q, want Shady Corp", removed[0].Company)
	}
}

// Matching is on the normalised (lowercased, trimmed) company name.
func TestFilterBlacklisted_Normalised(t *testing.T) {
	postings := []model.JobPosting{posting("  SHADY corp ", "Engineer")}
	blocked := map[string]struct{}{"shady corp": {}}

	kept, removed := clone.FilterBlacklisted(postings, blocked)
	if len(kept) != 0 || len(removed) != 1 {
		t.Errorf("kept=%d removed=%d, want 0/1", len(kept), len(removed))
	}
}

func TestFilterBlacklisted_EmptyBlacklist(t *testing.T) {
	postings := []model.JobPosting{posting("Acme", "Engineer")}

	kept, removed := clone.FilterBlacklisted(postings, nil)
	if len(kept) != 1 || len(removed) != 0 {
		t.Errorf("kept=%d removed=%d, want 1/0", len(kept), len(removed))
	}
}

func TestNormalizeCompany(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  Acme Inc  ", "acme inc"},
		{"ACME", "acme"},
		{"", ""},
	}
	for _, c := range cases {
		if got := clone.NormalizeCompany(c.in); got != c.want {
			t.Errorf("NormalizeCompany(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
