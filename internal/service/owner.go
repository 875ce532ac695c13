// Package service implements the business logic layer of the application.
package service

import "agora/internal/models"

// owned is satisfied by any model that belongs to a single user.
type owned interface {
	OwnerID() uint
}

// fetchOwned loads a resource and checks it belongs to actingID. An owner
// mismatch returns the same not-found error as a missing resource, so callers
// cannot probe for the existence of other users' data.
func fetchOwned[T owned](resource string, id, actingID uint, fetch func() (T, error)) (T, error) {
	var zero T
	item, err := fetch()
	if err != nil {
		return zero, err
	}
	if item.OwnerID() != actingID {
		return zero, models.NewNotFoundError(resource, id)
	}
	return item, nil
}
