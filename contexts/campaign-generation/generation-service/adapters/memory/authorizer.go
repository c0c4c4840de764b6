package memory

import (
	"context"

	domainerrors "adforge/contexts/campaign-generation/generation-service/domain/errors"
)

// Authorizer is a static ownership table standing in for the project context.
type Authorizer struct {
	Owners map[string]string
}

func (a Authorizer) AuthorizeProjectOwner(_ context.Context, projectID, userID string) error {
	owner, exists := a.Owners[projectID]
	if !exists {
		return domainerrors.ErrProjectNotFound
	}
	if owner != userID {
		return domainerrors.ErrNotProjectOwner
	}
	return nil
}
