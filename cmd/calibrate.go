package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AKASH-tech234/paceline/internal/calibration"
	"github.com/AKASH-tech234/paceline/internal/ui/theme"
)

var calibrateCmd = &cobra.Command{
	Use:   "calibrate",
	Short: "Offline calibration tooling",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// evalItem is one labeled prediction in an eval set file.
type evalItem struct {
	Confidence float64 `json:"confidence"`
	Correct    bool    `json:"correct"`
}

var fitReportCmd = &cobra.Command{
	Use:   "fit-report <eval.json>",
	Short: "Report calibration error and recommended tier thresholds",
	Long: "Reads a labeled eval set (a JSON array of {confidence, correct} items),\n" +
		"prints Expected and Maximum Calibration Error, and recommends the highest\n" +
		"tier thresholds that meet the configured accuracy floors.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read eval set: %w", err)
		}
		var items []evalItem
		if err := json.Unmarshal(data, &items); err != nil {
			return fmt.Errorf("parse eval set: %w", err)
		}

		labels := make([]bool, len(items))
		confidences := make([]float64, len(items))
		for i, it := range items {
			labels[i] = it.Correct
			confidences[i] = it.Confidence
		}

		cfg := calibration.DefaultConfig()
		report := calibration.ComputeCalibrationError(labels, confidences, cfg.BinCount)

		fmt.Println(theme.Title.Render("Calibration report"))
		fmt.Println()
		fmt.Printf("samples  %d\n", len(items))
		fmt.Printf("ECE      %.4f\n", report.ECE)
		fmt.Printf("MCE      %.4f\n", report.MCE)
		fmt.Println()
		fmt.Println(theme.Header.Render(fmt.Sprintf("%-14s %6s %10s %10s", "BIN", "COUNT", "MEAN CONF", "ACCURACY")))
		for _, b := range report.Bins {
			if b.Count == 0 {
				continue
			}
			fmt.Printf("[%.2f, %.2f)   %6d %10.3f %10.3f\n",
				b.Lower, b.Upper, b.Count, b.MeanConfidence, b.Accuracy)
		}

		set := calibration.RecommendThresholds(labels, confidences, cfg)
		fmt.Println()
		fmt.Println(theme.Title.Render("Recommended thresholds"))
		fmt.Println()
		if set.InsufficientData {
			fmt.Println(theme.Warn.Render(fmt.Sprintf(
				"Insufficient data: %d samples, need %d.", set.SampleCount, cfg.MinSamples)))
			return nil
		}
		printThreshold("high", set.High, set.HighFound, cfg.MinHighAccuracy)
		printThreshold("medium", set.Medium, set.MediumFound, cfg.MinMediumAccuracy)
		return nil
	},
}

func printThreshold(tier string, value float64, found bool, floor float64) {
	if !found {
		fmt.Printf("%-8s %s\n", tier, theme.Warn.Render(
			fmt.Sprintf("no candidate met the %.0f%% accuracy floor", floor*100)))
		return
	}
	fmt.Printf("%-8s %s\n", tier, theme.OK.Render(fmt.Sprintf("%.2f", value)))
}

var validateArtifactCmd = &cobra.Command{
	Use:   "validate <artifact.json>",
	Short: "Validate a calibration-model artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, _, err := calibration.LoadArtifact(args[0])
		if err != nil {
			return err
		}
		fmt.Printf("Artifact %s is valid: version %s, %d knots, %d samples.\n",
			args[0], model.Version, len(model.Raw), model.SampleCount)
		return nil
	},
}

func init() {
	calibrateCmd.AddCommand(fitReportCmd)
	calibrateCmd.AddCommand(validateArtifactCmd)
}
