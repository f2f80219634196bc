package admin

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"github.com/eclinichms/eclinic-admin/internal/repository"
)

// bootstrapItems are the consultation placeholders the clinic app orders
// against when no billable item applies.
var bootstrapItems = []repository.InventoryItem{
	{Name: "SELF REQUEST", Type: "Consultation", Dept: "not_applicable", Quantity: 1, CostPrice: 0},
	{Name: "FREE CONSULTATION", Type: "Consultation", Dept: "not_applicable", Quantity: 1, CostPrice: 0},
}

// Bootstrap inserts the rows the clinic app assumes exist: the consultation
// inventory items, the self-request doctor account and the over-the-counter
// patient. Requires an active superuser; every insert is a no-op when the
// row already exists.
func (s *Service) Bootstrap(ctx context.Context) error {
	superuser, err := s.users.FirstSuperuser(ctx)
	if err != nil {
		return fmt.Errorf("no superuser account found, create one first: %w", err)
	}

	for i := range bootstrapItems {
		if err := s.items.EnsureItem(ctx, &bootstrapItems[i]); err != nil {
			return fmt.Errorf("insert %s item: %w", bootstrapItems[i].Name, err)
		}
	}
	names := lo.Map(bootstrapItems, func(item repository.InventoryItem, _ int) string {
		return item.Name
	})
	s.log.Info().Strs("items", names).Msg("consultation items created")

	if err := s.users.EnsureSelfRequestDoctor(ctx); err != nil {
		return fmt.Errorf("insert self-request doctor: %w", err)
	}
	s.log.Info().Msg("self-request doctor created")

	if err := s.patients.EnsureOTCPatient(ctx, superuser.ID); err != nil {
		return fmt.Errorf("insert OTC patient: %w", err)
	}
	s.log.Info().Msg("OTC patient created")

	return nil
}
