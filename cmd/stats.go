package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/AKASH-tech234/paceline/internal/store"
	"github.com/AKASH-tech234/paceline/internal/ui/theme"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show tracked pattern state per subject",
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

		snap, err := s.SnapshotRepo().Latest(cmd.Context())
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		if snap == nil || len(snap.Data.Patterns) == 0 {
			fmt.Println(theme.Dim.Render("No tracked patterns yet."))
			return nil
		}

		fmt.Println(theme.Title.Render("Tracked patterns"))
		fmt.Println()
		fmt.Println(theme.Header.Render(fmt.Sprintf("%-12s %-24s %-10s %6s  %s",
			"SUBJECT", "PATTERN", "STATE", "EVENTS", "LAST SEEN")))

		keys := make([]string, 0, len(snap.Data.Patterns))
		for k := range snap.Data.Patterns {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			rec := snap.Data.Patterns[k]
			fmt.Printf("%-12s %-24s %s %6d  %s\n",
				rec.SubjectID,
				rec.PatternName,
				theme.StateStyle(rec.State).Render(fmt.Sprintf("%-10s", rec.State)),
				len(rec.Evidence),
				lastSeen(rec.LastOccurrence),
			)
		}

		if len(snap.Data.Policy) > 0 {
			fmt.Println()
			fmt.Println(theme.Title.Render("Difficulty"))
			fmt.Println()
			subjects := make([]string, 0, len(snap.Data.Policy))
			for id := range snap.Data.Policy {
				subjects = append(subjects, id)
			}
			sort.Strings(subjects)
			for _, id := range subjects {
				sp := snap.Data.Policy[id]
				fmt.Printf("%-12s level %.1f  (%d cycles since change, %d eligible)\n",
					id, sp.Difficulty, sp.CyclesSinceLastChange, sp.ConsecutiveEligible)
			}
		}

		return nil
	},
}

func lastSeen(ts *string) string {
	if ts == nil {
		return theme.Dim.Render("never")
	}
	t, err := time.Parse(time.RFC3339, *ts)
	if err != nil {
		return *ts
	}
	age := time.Since(t)
	switch {
	case age < time.Hour:
		return "just now"
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	}
}
