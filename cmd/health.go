package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AKASH-tech234/paceline/internal/invariant"
	"github.com/AKASH-tech234/paceline/internal/pattern"
	"github.com/AKASH-tech234/paceline/internal/policy"
	"github.com/AKASH-tech234/paceline/internal/store"
	"github.com/AKASH-tech234/paceline/internal/taxonomy"
	"github.com/AKASH-tech234/paceline/internal/ui/theme"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Audit stored events against the safety invariants",
	Long: "Replays the stored evidence and decision events through the invariant\n" +
		"monitor and reports any must-be-zero counter that is not zero.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer func() { _ = s.Close() }()

		ctx := cmd.Context()
		repo := s.EventRepo()

		evidence, err := repo.QueryEvidence(ctx, "", store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query evidence: %w", err)
		}
		decisions, err := repo.RecentDecisions(ctx, 0)
		if err != nil {
			return fmt.Errorf("query decisions: %w", err)
		}

		monitor := invariant.NewMonitor()
		auditEvidence(monitor, evidence)
		auditDecisions(monitor, decisions)

		stats := monitor.Stats()
		fmt.Println(theme.Title.Render("Event audit"))
		fmt.Println()
		fmt.Printf("evidence events   %d\n", len(evidence))
		fmt.Printf("decision events   %d\n", len(decisions))
		fmt.Printf("taxonomy checks   %d violations\n", stats.TaxonomyViolations)
		fmt.Printf("gate audit        %d violations\n", stats.GateViolations)
		fmt.Println()

		violations := monitor.CheckInvariants()
		if len(violations) == 0 && stats.GateViolations == 0 {
			fmt.Println(theme.OK.Render("All invariants hold."))
			return nil
		}
		for _, v := range violations {
			fmt.Println(theme.Bad.Render(fmt.Sprintf("VIOLATION %s (count %d): %s", v.Name, v.Count, v.Message)))
		}
		if stats.GateViolations > 0 {
			fmt.Println(theme.Bad.Render(fmt.Sprintf("VIOLATION gate_violations (count %d): decision audit trail is inconsistent", stats.GateViolations)))
		}
		return nil
	},
}

// auditEvidence cross-checks every stored evidence event's categorical pair
// against the taxonomy.
func auditEvidence(monitor *invariant.Monitor, events []store.EvidenceEvent) {
	for _, ev := range events {
		if !taxonomy.ValidPair(taxonomy.Category(ev.Category), ev.PatternID) {
			monitor.RecordTaxonomyViolation()
		}
	}
}

// auditDecisions checks that each stored decision is internally consistent:
// a blocked decision must have downgraded to maintain, an approved increase
// must not have run against a suspected or confirmed pattern, and the gate
// list must carry all five results.
func auditDecisions(monitor *invariant.Monitor, decisions []store.DecisionEvent) {
	for _, d := range decisions {
		if d.BlockingGate != "" && d.FinalAction != string(policy.ActionMaintain) {
			monitor.RecordGateViolation()
			continue
		}
		if len(d.Gates) != len(policy.GateNames()) {
			monitor.RecordGateViolation()
			continue
		}
		if d.BlockingGate == "" && d.FinalAction == string(policy.ActionIncrease) {
			state := pattern.State(d.PatternState)
			if state == pattern.StateSuspected || state == pattern.StateConfirmed {
				monitor.RecordGateViolation()
			}
		}
	}
}
