package entities

import (
	"strings"
	"time"
)

// Project groups generation attempts and campaigns under one owner.
type Project struct {
	ProjectID   string
	OwnerID     string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (p Project) ValidateBasics() bool {
	name := strings.TrimSpace(p.Name)
	return name != "" && len(name) <= 120 && p.OwnerID != ""
}
