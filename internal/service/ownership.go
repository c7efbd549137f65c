// Package service implements the business logic layer of the application.
package service

import "devconnect/internal/models"

// RequireOwner returns an unauthorized error unless the acting user owns the
// resource. Every mutating operation on owned resources goes through this
// check before touching storage.
func RequireOwner(ownerID, actorID uint) error {
	if ownerID != actorID {
		return models.NewUnauthorizedError("User not authorized")
	}
	return nil
}
