// Package notify publishes clone-scan events to Redis for the Gateway
// to forward over SSE.
package notify

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/shanmukh-025/AppTrackr-sub003/internal/model"
)

const channelClonesFound = "EVENT_CLONES_FOUND"

// Publisher sends scan events over Redis pub/sub.
type Publisher struct {
	rdb *redis.Client
}

// NewPublisher constructs a Publisher.
func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

// ClonesFound announces that a scan produced new clone groups. Callers
// treat a publish failure as non-fatal — the groups are already
// persisted and will show up on the next poll.
func (p *Publisher) ClonesFound(ctx context.Context, stats model.ScanStats, groupCount int) error {
	event, _ := json.Marshal(map[string]any{
		"type":        channelClonesFound,
		"groups":      groupCount,
		"clonePairs":  stats.TotalClones,
		"scanned":     stats.TotalScanned,
		"hoursSaved":  stats.EstimatedTimeSavedHours,
	})
	if err := p.rdb.Publish(ctx, channelClonesFound, event).Err(); err != nil {
		return fmt.Errorf("publish %s: %w", channelClonesFound, err)
	}
	return nil
}
