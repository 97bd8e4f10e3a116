package problem

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/limaJavier/counting/pkg/counting"
	"github.com/samber/lo"
)

// tokens splits a comma-separated list, trimming blanks and dropping empty entries.
func tokens(s string) []string {
	return lo.FilterMap(strings.Split(s, ","), func(token string, _ int) (string, bool) {
		token = strings.TrimSpace(token)
		return token, token != ""
	})
}

// ParseIntList parses "6,5,4". An empty string yields nil, which callers treat as absent.
func ParseIntList(s string) ([]uint64, error) {
	var values []uint64
	for _, token := range tokens(s) {
		value, err := strconv.ParseUint(token, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid non-negative integer %q: %w", token, err)
		}
		values = append(values, value)
	}
	return values, nil
}

// ParseNames parses "A,B,C".
func ParseNames(s string) []string {
	return tokens(s)
}

// ParsePair parses "a-b", meaning b may not immediately follow a.
func ParsePair(token string) (counting.Pair, error) {
	parts := strings.Split(strings.TrimSpace(token), "-")
	if len(parts) != 2 {
		return counting.Pair{}, fmt.Errorf("invalid pair %q: expected \"a-b\"", token)
	}

	before, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return counting.Pair{}, fmt.Errorf("invalid pair %q: %w", token, err)
	}
	after, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return counting.Pair{}, fmt.Errorf("invalid pair %q: %w", token, err)
	}
	return counting.Pair{Before: before, After: after}, nil
}

// ParsePairs parses "1-2,2-3".
func ParsePairs(s string) ([]counting.Pair, error) {
	var pairs []counting.Pair
	for _, token := range tokens(s) {
		pair, err := ParsePair(token)
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, nil
}

// ParsePlacement parses "name:slot".
func ParsePlacement(token string) (counting.Placement, error) {
	name, slotStr, ok := strings.Cut(strings.TrimSpace(token), ":")
	name = strings.TrimSpace(name)
	if !ok || name == "" || strings.Contains(slotStr, ":") {
		return counting.Placement{}, fmt.Errorf("invalid placement %q: expected \"name:slot\"", token)
	}

	slot, err := strconv.Atoi(strings.TrimSpace(slotStr))
	if err != nil {
		return counting.Placement{}, fmt.Errorf("invalid placement %q: %w", token, err)
	}
	return counting.Placement{Person: name, Slot: slot}, nil
}

// ParsePlacements parses "A:0,C:1".
func ParsePlacements(s string) ([]counting.Placement, error) {
	var placements []counting.Placement
	for _, token := range tokens(s) {
		placement, err := ParsePlacement(token)
		if err != nil {
			return nil, err
		}
		placements = append(placements, placement)
	}
	return placements, nil
}

// ParseCounts parses symbol multiplicities written as "a=2,b=1".
func ParseCounts(s string) (map[string]uint64, error) {
	counts := make(map[string]uint64)
	for _, token := range tokens(s) {
		symbol, countStr, ok := strings.Cut(token, "=")
		symbol = strings.TrimSpace(symbol)
		if !ok || symbol == "" {
			return nil, fmt.Errorf("invalid count %q: expected \"symbol=count\"", token)
		}
		if _, ok := counts[symbol]; ok {
			return nil, fmt.Errorf("duplicate symbol %q", symbol)
		}

		count, err := strconv.ParseUint(strings.TrimSpace(countStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid count %q: %w", token, err)
		}
		counts[symbol] = count
	}
	return counts, nil
}

// ParseSetSizes parses a JSON object such as {"A":20,"B":25}.
func ParseSetSizes(text string) (map[string]uint64, error) {
	sizes := make(map[string]uint64)
	if strings.TrimSpace(text) == "" {
		return sizes, nil
	}
	if err := json.Unmarshal([]byte(text), &sizes); err != nil {
		return nil, fmt.Errorf("invalid set sizes: %w", err)
	}
	return sizes, nil
}

// ParseIntersections parses a JSON object keyed by comma-separated labels, such as
// {"A,B":8,"A,B,C":3}.
func ParseIntersections(text string) (counting.Intersections, error) {
	raw := make(map[string]uint64)
	if strings.TrimSpace(text) != "" {
		if err := json.Unmarshal([]byte(text), &raw); err != nil {
			return nil, fmt.Errorf("invalid intersections: %w", err)
		}
	}
	return IntersectionsFromKeys(raw)
}

// IntersectionsFromKeys canonicalises "A,B"-style keys. Keys naming the same labels in a
// different order are rejected rather than silently merged.
func IntersectionsFromKeys(raw map[string]uint64) (counting.Intersections, error) {
	intersections := make(counting.Intersections, len(raw))
	origins := make(map[counting.LabelSet]string, len(raw))
	for key, size := range raw {
		labelSet := counting.NewLabelSet(tokens(key)...)
		if labelSet.Len() == 0 {
			return nil, fmt.Errorf("invalid intersection key %q: no labels", key)
		}
		if origin, ok := origins[labelSet]; ok {
			return nil, fmt.Errorf("intersection keys %q and %q name the same sets", origin, key)
		}
		origins[labelSet] = key
		intersections[labelSet] = size
	}
	return intersections, nil
}
