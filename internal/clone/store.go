package clone

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

// feedRow mirrors the JSONB payload stored in job_feed.raw_data.
type feedRow struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description"`
	SourceURL   string `json:"sourceUrl"`
	PublishedAt string `json:"publishedAt"`
}

// loadPostings returns every feed entry not already marked DUPLICATE,
// decoded into the scan input shape. Rows whose payload fails to decode
// are skipped, not fatal.
func (s *Service) loadPostings(ctx context.Context) ([]model.JobPosting, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id::text, COALESCE(source, 'unknown'), raw_data
		 FROM job_feed
		 WHERE status <> 'DUPLICATE'`,
	)
	if err != nil {
		return nil, fmt.Errorf("query job_feed: %w", err)
	}
	defer rows.Close()

	var postings []model.JobPosting
	for rows.Next() {
		var (
			id, source string
			raw        []byte
		)
		if err := rows.Scan(&id, &source, &raw); err != nil {
			return nil, fmt.Errorf("scan job_feed: %w", err)
		}

		var fr feedRow
		if err := json.Unmarshal(raw, &fr); err != nil {
			continue
		}

		p := model.JobPosting{
			ID:          id,
			Company:     fr.Company,
			Position:    fr.Title,
			Description: fr.Description,
			URL:         fr.SourceURL,
			Source:      model.Source(source),
		}
		if t, err := time.Parse(time.RFC3339, fr.PublishedAt); err == nil {
			p.PostedDate = &t
		}
		postings = append(postings, p)
	}
	return postings, rows.Err()
}

// loadBlacklist returns the set of blocked company names, normalised for
// membership tests.
func (s *Service) loadBlacklist(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.pool.Query(ctx, `SELECT company_name FROM blacklist`)
	if err != nil {
		return nil, fmt.Errorf("query blacklist: %w", err)
	}
	defer rows.Close()

	blocked := make(map[string]struct{})
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan blacklist: %w", err)
		}
		blocked[normalize(name)] = struct{}{}
	}
	return blocked, rows.Err()
}

// incrementBlocked bumps blocked_count for each company whose postings
// were suppressed during a scan.
func (s *Service) incrementBlocked(ctx context.Context, companies []string) error {
	for _, name := range companies {
		if _, err := s.pool.Exec(ctx,
			`UPDATE blacklist
			 SET blocked_count = blocked_count + 1
			 WHERE LOWER(TRIM(company_name)) = $1`,
			normalize(name),
		); err != nil {
			return fmt.Errorf("increment blocked_count for %q: %w", name, err)
		}
	}
	return nil
}

// saveGroups persists the clusters from a scan and marks every
// non-representative member's feed entry DUPLICATE. keyToFeedID maps
// posting keys back to job_feed ids. Group ids are content-derived, so
// re-inserting the same cluster is a no-op.
func (s *Service) saveGroups(ctx context.Context, groups []model.CloneGroup, keyToFeedID map[string]string) error {
	for _, g := range groups {
		_, err := s.pool.Exec(ctx,
			`INSERT INTO clone_groups (id, representative, avg_similarity, summary, detected_at)
			 SELECT $1, $2, $3, $4, NOW()
			 WHERE NOT EXISTS (
			   SELECT 1 FROM clone_groups WHERE id = $1
			 )`,
			g.ID, g.Representative, g.AverageSimilarity, g.Summary,
		)
		if err != nil {
			return fmt.Errorf("insert clone_groups: %w", err)
		}

		for _, member := range g.Members {
			feedID := keyToFeedID[member]
			_, err := s.pool.Exec(ctx,
				`INSERT INTO clone_group_members (group_id, posting_key, job_feed_id)
				 SELECT $1, $2, $3
				 WHERE NOT EXISTS (
				   SELECT 1 FROM clone_group_members WHERE group_id = $1 AND posting_key = $2
				 )`,
				g.ID, member, feedID,
			)
			if err != nil {
				return fmt.Errorf("insert clone_group_members: %w", err)
			}

			if member == g.Representative || feedID == "" {
				continue
			}
			if _, err := s.pool.Exec(ctx,
				`UPDATE job_feed SET status = 'DUPLICATE' WHERE id = $1`,
				feedID,
			); err != nil {
				return fmt.Errorf("mark duplicate %s: %w", feedID, err)
			}
		}
	}
	return nil
}

// ListGroups returns all persisted clone groups, newest first, with
// their member keys.
func (s *Service) ListGroups(ctx context.Context) ([]model.CloneGroup, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT g.id, g.representative, g.avg_similarity, COALESCE(g.summary, ''),
		        ARRAY_AGG(m.posting_key ORDER BY m.posting_key)
		 FROM clone_groups g
		 JOIN clone_group_members m ON m.group_id = g.id
		 GROUP BY g.id, g.representative, g.avg_similarity, g.summary, g.detected_at
		 ORDER BY g.detected_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query clone_groups: %w", err)
	}
	defer rows.Close()

	groups := make([]model.CloneGroup, 0)
	for rows.Next() {
		var g model.CloneGroup
		if err := rows.Scan(&g.ID, &g.Representative, &g.AverageSimilarity, &g.Summary, &g.Members); err != nil {
			return nil, fmt.Errorf("scan clone_groups: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

// saveDirectURL records a resolved direct application URL on the feed
// entry so the UI can link straight to the company page.
func (s *Service) saveDirectURL(ctx context.Context, feedID, directURL string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE job_feed SET direct_url = $1 WHERE id = $2`,
		directURL, feedID,
	)
	if err != nil {
		return fmt.Errorf("save direct_url for %s: %w", feedID, err)
	}
	return nil
}
