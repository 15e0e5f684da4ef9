// Package model defines shared data structures for the clone service.
package model

import "time"

// Source identifies the aggregator feed a posting was ingested from.
type Source string

const (
	SourceJooble    Source = "jooble"
	SourceAdzuna    Source = "adzuna"
	SourceRemotive  Source = "remotive"
	SourceArbeitnow Source = "arbeitnow"
	SourceTheMuse   Source = "themuse"
	SourceJSearch   Source = "jsearch"
	SourceUnknown   Source = "unknown"
)

// JobPosting is a normalised offer as fetched from an aggregator feed.
// Owned by the persistence layer; the clone service only reads it.
type JobPosting struct {
	ID          string     `json:"id"`
	Company     string     `json:"company"`
	Position    string     `json:"position"`
	Description string     `json:"description,omitempty"`
	URL         string     `json:"url"`
	Source      Source     `json:"source"`
	PostedDate  *time.Time `json:"postedDate,omitempty"`
}

// Key returns the posting identity used for clustering: the source tag
// plus the source-native id, since ids from different boards may collide.
func (p JobPosting) Key() string {
	return string(p.Source) + ":" + p.ID
}

// CloneType labels why two postings are considered duplicates.
type CloneType string

const (
	CloneExactRepost    CloneType = "exact_repost"
	CloneContentClone   CloneType = "content_clone"
	CloneRecruiterClone CloneType = "recruiter_clone"
	CloneScam           CloneType = "scam"
	CloneNone           CloneType = "none"
)

// ClonePair relates two postings judged to be duplicates of each other.
// Created transiently during a scan; not persisted as-is.
type ClonePair struct {
	Original   JobPosting `json:"original"`
	Clone      JobPosting `json:"clone"`
	Similarity float64    `json:"similarity"`
	CloneType  CloneType  `json:"cloneType"`
	Flags      []string   `json:"flags,omitempty"` // presentation hints, derived from the classification
}

// CloneGroup is the transitive closure of clone pairs: every posting that
// is a duplicate of another member, directly or via a chain.
type CloneGroup struct {
	ID                string   `json:"id"`
	Members           []string `json:"members"` // posting keys, sorted
	Representative    string   `json:"representative"`
	AverageSimilarity float64  `json:"averageSimilarity"`
	Summary           string   `json:"summary,omitempty"`
}

// ScanStats summarises one scan cycle for display.
type ScanStats struct {
	TotalScanned            int     `json:"totalScanned"`
	TotalClones             int     `json:"totalClones"`
	TotalSkipped            int     `json:"totalSkipped"`
	TotalBlocked            int     `json:"totalBlocked"`
	EstimatedTimeSavedHours float64 `json:"estimatedTimeSavedHours"`
}

// ScanResult is the full outcome of a clone scan.
type ScanResult struct {
	Pairs  []ClonePair  `json:"clonePairs"`
	Groups []CloneGroup `json:"groups"`
	Stats  ScanStats    `json:"stats"`
}

// BlacklistEntry mirrors a blacklist table row. Owned by the persistence
// layer; the filter only reads a snapshot of the company names.
type BlacklistEntry struct {
	CompanyName  string `json:"companyName"`
	Reason       string `json:"reason,omitempty"`
	BlockedCount int    `json:"blockedCount"`
}

// ResolveMethod records which resolution strategy produced a direct URL.
type ResolveMethod string

const (
	MethodQueryParam      ResolveMethod = "query-param"
	MethodSourceHeuristic ResolveMethod = "source-heuristic"
	MethodRedirectFollow  ResolveMethod = "redirect-follow"
	MethodNone            ResolveMethod = "none"
)

// ResolvedURL is the best-effort direct application URL behind an
// aggregator redirect link. Value is empty when Method is MethodNone.
type ResolvedURL struct {
	Value  string        `json:"value,omitempty"`
	Method ResolveMethod `json:"method"`
}
