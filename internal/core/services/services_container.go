package services

import (
	"github.com/balancify/balancify_app/internal/core/domain"
	portsrepo "github.com/balancify/balancify_app/internal/core/ports/repositories"
	portssvc "github.com/balancify/balancify_app/internal/core/ports/services"
)

// NewServiceContainer wires all application services over the provided
// repositories and the initial state loaded from durable storage.
func NewServiceContainer(repos portsrepo.RepositoryProvider, initial domain.LedgerState) *portssvc.ServiceContainer {
	ledger := NewLedgerService(repos.StateRepo, initial)
	return &portssvc.ServiceContainer{
		Ledger:    ledger,
		Reporting: NewReportingService(ledger),
	}
}
