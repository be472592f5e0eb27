// Package filter implements the channel selection predicates.
package filter

import (
	"sort"
	"strings"

	"ymap/internal/channel"
	"ymap/internal/textutil"
)

// Criteria describes the active predicates. Nil slices, an empty keyword,
// and a nil max leave the corresponding predicate inactive. All active
// predicates must match for a record to pass.
type Criteria struct {
	Clusters         []string
	InferredClusters []string
	MinSubscribers   int
	MaxSubscribers   *int
	Categories       []string
	Keyword          string
}

// Values splits a comma-separated argument into folded, non-empty terms.
// Returns nil when nothing usable remains, leaving the predicate inactive.
func Values(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if folded := textutil.Fold(part); folded != "" {
			out = append(out, folded)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// Apply returns the channels matching crit, sorted by coerced subscriber
// count descending. Ties keep their input order. Matches are copies with
// subscribersCount normalized to the coerced integer; the inputs are left
// untouched.
func Apply(channels []channel.Channel, crit Criteria) []channel.Channel {
	keyword := textutil.FoldText(crit.Keyword)

	var matched []channel.Channel
	for _, ch := range channels {
		subscribers := ch.Statistic.SubscribersCount.Int()

		// A record with no cluster label never matches an active
		// cluster filter.
		if len(crit.Clusters) > 0 && !containsFolded(crit.Clusters, ch.ClusterName) {
			continue
		}
		if len(crit.InferredClusters) > 0 && !containsFolded(crit.InferredClusters, ch.InferredClusterName) {
			continue
		}
		if subscribers < crit.MinSubscribers {
			continue
		}
		if crit.MaxSubscribers != nil && subscribers > *crit.MaxSubscribers {
			continue
		}
		if len(crit.Categories) > 0 && !anySubstring(ch.DefinedCategories, crit.Categories) {
			continue
		}
		if keyword != "" && !anyContains(ch.LastVideoTitles, keyword) {
			continue
		}

		match := ch
		match.Statistic.SubscribersCount = channel.CountOf(subscribers)
		matched = append(matched, match)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Statistic.SubscribersCount.Int() > matched[j].Statistic.SubscribersCount.Int()
	})
	return matched
}

// Truncate caps the result list at limit. A limit of zero or below
// disables the cap.
func Truncate(channels []channel.Channel, limit int) []channel.Channel {
	if limit > 0 && len(channels) > limit {
		return channels[:limit]
	}
	return channels
}

// MatchCluster keeps channels whose clusterName equals cluster exactly and
// whose coerced subscriber count is at least minSubscribers. Input order
// is preserved and no normalization copy is made.
func MatchCluster(channels []channel.Channel, cluster string, minSubscribers int) []channel.Channel {
	var matched []channel.Channel
	for _, ch := range channels {
		if ch.ClusterName != cluster {
			continue
		}
		if ch.Statistic.SubscribersCount.Int() < minSubscribers {
			continue
		}
		matched = append(matched, ch)
	}
	return matched
}

func containsFolded(terms []string, value string) bool {
	folded := textutil.Fold(value)
	if folded == "" {
		return false
	}
	for _, term := range terms {
		if term == folded {
			return true
		}
	}
	return false
}

func anySubstring(values channel.StringList, patterns []string) bool {
	for _, value := range values {
		folded := textutil.Fold(value)
		for _, pattern := range patterns {
			if strings.Contains(folded, pattern) {
				return true
			}
		}
	}
	return false
}

func anyContains(values channel.StringList, keyword string) bool {
	for _, value := range values {
		if strings.Contains(textutil.FoldText(value), keyword) {
			return true
		}
	}
	return false
}
