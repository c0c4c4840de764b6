package errors

import "errors"

var (
	ErrProjectNotFound    = errors.New("project not found")
	ErrNotProjectOwner    = errors.New("caller does not own the project")
	ErrInvalidProjectData = errors.New("invalid project data")
)
