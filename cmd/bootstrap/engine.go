package bootstrap

import (
	"circulation-engine/internal/domain/policy"
	"circulation-engine/internal/infra/memstore"
	"circulation-engine/internal/infra/notify"
	"circulation-engine/internal/infra/repo"
	"circulation-engine/internal/pkg/clock"
	"circulation-engine/internal/pkg/config"
	"circulation-engine/internal/usecase/commands"
	"circulation-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

// EngineModule wires the lending engine: policy from config, the in-memory
// stores, the reference collaborators and the command/query services. The
// ledger and queue are plain instances owned by this graph; nothing is
// reachable through package-level state.
var EngineModule = fx.Module("engine",
	fx.Provide(
		clock.NewRealClock,
		NewPolicy,
		memstore.NewLoanStore,
		memstore.NewReservationStore,
		memstore.NewCatalog,
		memstore.NewDirectory,
		repo.NewLoanRepository,
		repo.NewReservationRepository,
		repo.NewLoanViewRepository,
		repo.NewReservationViewRepository,
		notify.NewLogNotifier,
		queries.NewLoanQueries,
		queries.NewReservationQueries,
		commands.NewReservationQueue,
		commands.NewLoanLedger,
		NewItemCatalogPort,
		NewMemberDirectoryPort,
		NewReservationGate,
	),
)

func NewPolicy(cfg config.Config) (policy.Policy, error) {
	return policy.FromConfig(cfg.Policy)
}

func NewItemCatalogPort(c *memstore.Catalog) commands.ItemCatalog {
	return c
}

func NewMemberDirectoryPort(d *memstore.Directory) commands.MemberDirectory {
	return d
}

// NewReservationGate narrows the queue to the slice the ledger consumes.
func NewReservationGate(q commands.ReservationCommands) commands.ReservationGate {
	return q
}
