package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/engine"
	"github.com/AKASH-tech234/paceline/internal/policy"
	"github.com/AKASH-tech234/paceline/internal/store"
	"github.com/AKASH-tech234/paceline/internal/taxonomy"
	"github.com/AKASH-tech234/paceline/internal/ui/theme"
)

// snapshotKeep bounds how many snapshots the replay command retains.
const snapshotKeep = 10

// replayLine is one JSONL entry: a diagnostic event, or a difficulty
// proposal when action is set.
type replayLine struct {
	SubjectID   string  `json:"subject_id"`
	PatternName string  `json:"pattern_name,omitempty"`
	Category    string  `json:"category,omitempty"`
	PatternID   string  `json:"pattern_id,omitempty"`
	ArtifactID  string  `json:"artifact_id,omitempty"`
	RawConf     float64 `json:"raw_confidence,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
	Positive    bool    `json:"positive,omitempty"`

	Action string  `json:"action,omitempty"`
	Target float64 `json:"target,omitempty"`
	Tier   string  `json:"tier,omitempty"`
}

var replayCmd = &cobra.Command{
	Use:   "replay <events.jsonl>",
	Short: "Feed recorded events through the decision pipeline",
	Long: "Reads one JSON object per line. Lines without an action field are\n" +
		"diagnostic events; lines with one are difficulty proposals. State is\n" +
		"loaded from the latest snapshot and saved back when the replay ends.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		artifactPath, _ := cmd.Flags().GetString("artifact")
		decay, _ := cmd.Flags().GetBool("decay")

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

		var model *calibration.Model
		calCfg := calibration.DefaultConfig()
		if artifactPath != "" {
			model, calCfg, err = calibration.LoadArtifact(artifactPath)
			if err != nil {
				return err
			}
		}
		cal := calibration.NewCalibrator(model, calCfg)

		snap, err := s.SnapshotRepo().Latest(ctx)
		if err != nil {
			return fmt.Errorf("load snapshot: %w", err)
		}
		var snapData *store.SnapshotData
		if snap != nil {
			snapData = &snap.Data
		}
		svc := engine.NewService(cal, snapData, s.EventRepo(), engine.DefaultConfig())

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open events file: %w", err)
		}
		defer func() { _ = f.Close() }()

		var processed, decided int
		scanner := bufio.NewScanner(f)
		lineNo := 0
		for scanner.Scan() {
			lineNo++
			raw := scanner.Bytes()
			if len(raw) == 0 {
				continue
			}
			var line replayLine
			if err := json.Unmarshal(raw, &line); err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}

			if line.Action != "" {
				action := policy.Action(line.Action)
				tier := calibration.Tier(line.Tier)
				if !action.Valid() {
					return fmt.Errorf("line %d: unknown action %q", lineNo, line.Action)
				}
				if !tier.Valid() {
					return fmt.Errorf("line %d: unknown tier %q", lineNo, line.Tier)
				}
				decision, err := svc.EvaluateProposal(ctx, engine.Proposal{
					SubjectID:      line.SubjectID,
					Action:         action,
					Target:         line.Target,
					ConfidenceTier: tier,
				})
				if err != nil {
					return fmt.Errorf("line %d: %w", lineNo, err)
				}
				decided++
				printDecision(line.SubjectID, decision)
				continue
			}

			ts, err := parseTimestamp(line.Timestamp)
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			res, err := svc.ProcessEvent(ctx, engine.Event{
				SubjectID:       line.SubjectID,
				PatternName:     line.PatternName,
				Category:        taxonomy.Category(line.Category),
				PatternID:       line.PatternID,
				ArtifactID:      line.ArtifactID,
				RawConfidence:   line.RawConf,
				Timestamp:       ts,
				PositiveOutcome: line.Positive,
			})
			if err != nil {
				return fmt.Errorf("line %d: %w", lineNo, err)
			}
			processed++
			if res.Transition != nil {
				fmt.Printf("%s/%s: %s\n", line.SubjectID, line.PatternName,
					theme.StateStyle(string(res.StateAfter)).Render(
						fmt.Sprintf("%s -> %s", res.Transition.From, res.Transition.To)))
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("read events file: %w", err)
		}

		if decay {
			for _, tr := range svc.RunDecay(time.Now().UTC()) {
				fmt.Printf("%s/%s: %s (%s)\n", tr.SubjectID, tr.PatternName,
					theme.StateStyle(string(tr.To)).Render(
						fmt.Sprintf("%s -> %s", tr.From, tr.To)), tr.Trigger)
			}
		}

		seq, err := s.CurrentSequence(ctx)
		if err != nil {
			return err
		}
		err = s.SnapshotRepo().Save(ctx, &store.Snapshot{
			Sequence:  seq,
			Timestamp: time.Now().UTC(),
			Data:      *svc.SnapshotData(),
		})
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		if err := s.SnapshotRepo().Prune(ctx, snapshotKeep); err != nil {
			return fmt.Errorf("prune snapshots: %w", err)
		}

		fmt.Println()
		fmt.Printf("Replayed %d events, %d proposals.\n", processed, decided)
		return nil
	},
}

func printDecision(subjectID string, d *policy.Decision) {
	if d.Approved() {
		fmt.Printf("%s: %s\n", subjectID, theme.OK.Render(
			fmt.Sprintf("%s approved, target %.1f", d.FinalAction, d.FinalTarget)))
		return
	}
	fmt.Printf("%s: %s\n", subjectID, theme.Warn.Render(
		fmt.Sprintf("%s blocked by %s, holding %.1f", d.ProposedAction, d.BlockingGate, d.FinalTarget)))
}

func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func init() {
	replayCmd.Flags().String("artifact", "", "Path to calibration-model artifact JSON")
	replayCmd.Flags().Bool("decay", false, "Apply temporal decay after the replay")
}
