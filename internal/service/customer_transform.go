package service

import "github.com/unclebandit/formatkit/internal/model"

// TransformCustomers keys the customers by id. Later entries overwrite
// earlier ones with the same id.
func TransformCustomers(customers []model.Customer) map[model.CustomerID]model.CustomerProfile {
	out := make(map[model.CustomerID]model.CustomerProfile, len(customers))
	for _, c := range customers {
		out[c.ID] = c.Profile()
	}
	return out
}

// firstSeenIDs lists the distinct ids in order of first appearance.
func firstSeenIDs(customers []model.Customer) []model.CustomerID {
	seen := make(map[model.CustomerID]struct{}, len(customers))
	ids := make([]model.CustomerID, 0, len(customers))
	for _, c := range customers {
		if _, ok := seen[c.ID]; ok {
			continue
		}
		seen[c.ID] = struct{}{}
		ids = append(ids, c.ID)
	}
	return ids
}
