package directory

import (
	"context"
	"strings"

	"github.com/MrSnakeDoc/alumnet/internal/domain"
	"github.com/MrSnakeDoc/alumnet/internal/store"
)

// ListAlumni returns the whole directory.
func (s *Service) ListAlumni(ctx context.Context) ([]domain.Alumni, error) {
	return store.Read[domain.Alumni](ctx, s.store, store.Alumni)
}

// CreateAlumni stores the caller's profile with a fresh id and createdAt.
// No field is required.
func (s *Service) CreateAlumni(ctx context.Context, a domain.Alumni) (domain.Alumni, error) {
	a.Stamp(s.newID(), s.nowMillis())

	err := store.Update(ctx, s.store, store.Alumni, func(list []domain.Alumni) ([]domain.Alumni, error) {
		return append(list, a), nil
	})
	if err != nil {
		return domain.Alumni{}, err
	}
	return a, nil
}

// SearchAlumni returns the profiles whose name, company or skills contain
// query, ignoring case. Nothing is persisted.
func (s *Service) SearchAlumni(ctx context.Context, query string) ([]domain.Alumni, error) {
	list, err := s.ListAlumni(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterAlumni(list, query), nil
}

// ImportAlumni appends the profiles not already in the directory and returns
// how many were added. Profiles are matched on lower-cased name and company.
func (s *Service) ImportAlumni(ctx context.Context, profiles []domain.Alumni) (int, error) {
	added := 0
	err := store.Update(ctx, s.store, store.Alumni, func(list []domain.Alumni) ([]domain.Alumni, error) {
		seen := make(map[string]bool, len(list)+len(profiles))
		for _, a := range list {
			seen[profileKey(a)] = true
		}

		now := s.nowMillis()
		for _, p := range profiles {
			key := profileKey(p)
			if seen[key] {
				continue
			}
			seen[key] = true
			p.Stamp(s.newID(), now)
			list = append(list, p)
			added++
		}
		return list, nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func profileKey(a domain.Alumni) string {
	return strings.ToLower(strings.TrimSpace(a.DisplayName())) + "\x00" +
		strings.ToLower(strings.TrimSpace(a.CompanyName()))
}
