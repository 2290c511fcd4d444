package seed

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
)

// ErrNoProfiles is returned when a seed file yields no usable profile.
var ErrNoProfiles = errors.New("no valid profiles found in seed file")

// groupKey is the attribute recording the heading a profile was listed under.
const groupKey = "batch"

// MapProfiles converts the seed file into alumni profiles in file order.
// Profiles with a blank name are skipped. Ids and createdAt are left to
// the directory service.
func MapProfiles(config DirectoryConfig) ([]domain.Alumni, error) {
	var profiles []domain.Alumni

	for _, groupMap := range config {
		for _, group := range slices.Sorted(maps.Keys(groupMap)) {
			for _, profileMap := range groupMap[group] {
				for _, name := range slices.Sorted(maps.Keys(profileMap)) {
					name = strings.TrimSpace(name)
					if name == "" {
						continue
					}
					a, err := mapProfile(group, name, profileMap[name])
					if err != nil {
						return nil, fmt.Errorf("profile %q: %w", name, err)
					}
					profiles = append(profiles, a)
				}
			}
		}
	}

	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}
	return profiles, nil
}

func mapProfile(group, name string, props ProfileProps) (domain.Alumni, error) {
	a := domain.Alumni{
		Name:    domain.StringPtr(name),
		Company: optional(props.Company),
		Role:    optional(props.Role),
		Timing:  optional(props.Timing),
		Fees:    optional(props.Fees),
		Skills:  props.Skills,
		Certs:   props.Certs,
	}

	extra := make(domain.Attributes, len(props.Extra)+1)
	for k, v := range props.Extra {
		raw, err := json.Marshal(v)
		if err != nil {
			return domain.Alumni{}, fmt.Errorf("attribute %s: %w", k, err)
		}
		extra[k] = raw
	}
	if _, ok := extra[groupKey]; !ok && group != "" {
		raw, _ := json.Marshal(group)
		extra[groupKey] = raw
	}
	if len(extra) > 0 {
		a.Extra = extra
	}
	return a, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
