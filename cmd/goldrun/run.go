package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	runMethods string
	runNumber  int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Score every gold-standard video with the selected methods",
	Long: `Score every stored gold-standard transcript with each selected method
and persist the results under the given run number.

Examples:
  # Classifier-based methods only
  goldrun run --methods roberta_plain,roberta_valence

  # Add an LLM method for a second run
  goldrun run --run-number 2 --methods llm:v5_all_dimensions:openai`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		methods, err := parseMethods(runMethods)
		if err != nil {
			return err
		}

		tk, err := setup(cmd)
		if err != nil {
			return err
		}
		defer tk.close()

		videos, err := tk.repo.ListGoldVideos(cmd.Context())
		if err != nil {
			return fmt.Errorf("list gold videos: %w", err)
		}
		if len(videos) == 0 {
			return fmt.Errorf("no gold videos stored; seed them with goldrun import")
		}

		var failures int
		for _, v := range videos {
			for _, m := range methods {
				_, err := tk.svc.ScoreTranscript(cmd.Context(), v.VideoID, v.Transcript, m, runNumber)
				if err != nil {
					failures++
					tk.logger.Error("scoring failed, continuing",
						zap.String("video_id", v.VideoID),
						zap.String("method", m.Name()),
						zap.Error(err))
				}
			}
		}

		fmt.Printf("Scored %d videos with %d methods at run %d (%d failures)\n",
			len(videos), len(methods), runNumber, failures)
		if failures > 0 {
			return fmt.Errorf("%d scoring calls failed", failures)
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runMethods, "methods", "roberta_plain,roberta_valence", "comma-separated methods to run")
	runCmd.Flags().IntVar(&runNumber, "run-number", 1, "run number to store scores under")
}
