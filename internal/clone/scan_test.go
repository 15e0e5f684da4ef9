package clone_test

import (
	"testing"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/clone"
	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

const longDescription = "We build resilient distributed systems using Golang, Kubernetes " +
	"and PostgreSQL. You will design services, review code, mentor junior engineers " +
	"and own production reliability end to end."

// ── Scan — end to end ──────────────────────────────────────────────────────

func TestScan_DetectsExactRepost(t *testing.T) {
	a := model.JobPosting{
		ID: "1", Company: "Acme", Position: "Engineer",
		Description: longDescription,
		URL:         "https://jooble.org/jdp/1", Source: model.SourceJooble,
	}
	b := model.JobPosting{
		ID: "2", Company: "Acme", Position: "Engineer",
		Description: longDescription,
		URL:         "https://adzuna.com/details/2", Source: model.SourceAdzuna,
	}

	result := clone.Scan([]model.JobPosting{a, b}, nil)

	if len(result.Pairs) != 1 {
		t.Fatalf("Scan found %d pairs, want 1", len(result.Pairs))
	}
	p := result.Pairs[0]
	if p.CloneType != model.CloneExactRepost {
		t.Errorf("cloneType = %s, want %s", p.CloneType, model.CloneExactRepost)
	}
	if p.Similarity < 0.95 {
		t.Errorf("similarity = %v, want >= 0.95", p.Similarity)
	}
	if len(p.Flags) == 0 {
		t.Error("pair has no presentation flags")
	}

	if len(result.Groups) != 1 {
		t.Fatalf("Scan produced %d groups, want 1", len(result.Groups))
	}
	if len(result.Groups[0].Members) != 2 {
		t.Errorf("group size = %d, want 2", len(result.Groups[0].Members))
	}
}

func TestScan_UnrelatedPostingsProduceNothing(t *testing.T) {
	a := model.JobPosting{
		ID: "1", Company: "Acme", Position: "Engineer",
		Description: "Write Go services for payment processing infrastructure",
		URL:         "https://jooble.org/jdp/1", Source: model.SourceJooble,
	}
	b := model.JobPosting{
		ID: "2", Company: "Globex", Position: "Chef",
		Description: "Prepare seasonal menus and manage kitchen operations daily",
		URL:         "https://adzuna.com/details/2", Source: model.SourceAdzuna,
	}

	result := clone.Scan([]model.JobPosting{a, b}, nil)
	if len(result.Pairs) != 0 || len(result.Groups) != 0 {
		t.Errorf("pairs=%d groups=%d, want 0/0", len(result.Pairs), len(result.Groups))
	}
}

// ── Scan — stats and error handling ────────────────────────────────────────

// Malformed postings are excluded from comparison and counted as
// skipped; they never abort the batch.
func TestScan_SkipsMalformedPostings(t *testing.T) {
	valid := model.JobPosting{
		ID: "1", Company: "Acme", Position: "Engineer",
		Description: longDescription,
		URL:         "https://jooble.org/jdp/1", Source: model.SourceJooble,
	}
	missingCompany := model.JobPosting{
		ID: "2", Position: "Engineer", URL: "https://adzuna.com/2", Source: model.SourceAdzuna,
	}
	missingURL := model.JobPosting{
		ID: "3", Company: "Globex", Position: "Engineer", Source: model.SourceAdzuna,
	}

	result := clone.Scan([]model.JobPosting{valid, missingCompany, missingURL}, nil)
	if result.Stats.TotalSkipped != 2 {
		t.Errorf("TotalSkipped = %d, want 2", result.Stats.TotalSkipped)
	}
	if result.Stats.TotalScanned != 3 {
		t.Errorf("TotalScanned = %d, want 3", result.Stats.TotalScanned)
	}
}

func TestScan_BlacklistSuppressesPostings(t *testing.T) {
	a := model.JobPosting{
		ID: "1", Company: "Shady Corp", Position: "Engineer",
		Description: longDescription,
		URL:         "https://jooble.org/jdp/1", Source: model.SourceJooble,
	}
	b := model.JobPosting{
		ID: "2", Company: "Shady Corp", Position: "Engineer",
		Description: longDescription,
		URL:         "https://adzuna.com/details/2", Source: model.SourceAdzuna,
	}

	result := clone.Scan([]model.JobPosting{a, b}, map[string]struct{}{"shady corp": {}})
	if result.Stats.TotalBlocked != 2 {
		t.Errorf("TotalBlocked = %d, want 2", result.Stats.TotalBlocked)
	}
	if len(result.Pairs) != 0 {
		t.Errorf("pairs = %d, want 0 — blocked postings must not be compared", len(result.Pairs))
	}
}

// One clone at 5 assumed review minutes → 5/60 hours.
func TestScan_TimeSavedEstimate(t *testing.T) {
	a := model.JobPosting{
		ID: "1", Company: "Acme", Position: "Engineer",
		Description: longDescription,
		URL:         "https://jooble.org/jdp/1", Source: model.SourceJooble,
	}
	b := model.JobPosting{
		ID: "2", Company: "Acme", Position: "Engineer",
		Description: longDescription,
		URL:         "https://adzuna.com/details/2", Source: model.SourceAdzuna,
	}

	result := clone.Scan([]model.JobPosting{a, b}, nil)
	want := 5.0 / 60.0
	if result.Stats.EstimatedTimeSavedHours != want {
		t.Errorf("EstimatedTimeSavedHours = %v, want %v", result.Stats.EstimatedTimeSavedHours, want)
	}
}

func TestScan_EmptyBatch(t *testing.T) {
	result := clone.Scan(nil, nil)
	if result.Stats.TotalScanned != 0 || len(result.Pairs) != 0 || len(result.Groups) != 0 {
		t.Errorf("Scan(nil) = %+v, want empty result", result)
	}
}
