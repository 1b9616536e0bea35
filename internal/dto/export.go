package dto

import (
	"time"

	"github.com/balancify/balancify_app/internal/core/domain"
)

// ExportDocument is the one-way backup document: the persisted envelope shape
// plus an export timestamp and version tag. It is written to a downloadable
// file and never read back by this system.
type ExportDocument struct {
	Months     map[string]domain.Month  `json:"months"`
	Budgets    map[string]domain.Budget `json:"budgets"`
	ExportDate time.Time                `json:"exportDate"`
	Version    string                   `json:"version"`
}
