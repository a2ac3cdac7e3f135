package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	importVideosPath  string
	importRatingsPath string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Seed gold-standard videos and human ratings from CSV",
	Long: `Seed the gold-standard corpus from CSV files. Both files carry a
header row. The videos file has columns video_id,transcript; the
ratings file has columns video_id,dimension,score.

Examples:
  goldrun import --videos gold_videos.csv --ratings gold_ratings.csv
  goldrun import --ratings gold_ratings.csv`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if importVideosPath == "" && importRatingsPath == "" {
			return fmt.Errorf("nothing to import: pass --videos and/or --ratings")
		}

		tk, err := setup(cmd)
		if err != nil {
			return err
		}
		defer tk.close()

		if importVideosPath != "" {
			n, err := importVideos(cmd, tk, importVideosPath)
			if err != nil {
				return fmt.Errorf("import videos: %w", err)
			}
			fmt.Printf("Imported %d gold videos\n", n)
		}

		if importRatingsPath != "" {
			n, err := importRatings(cmd, tk, importRatingsPath)
			if err != nil {
				return fmt.Errorf("import ratings: %w", err)
			}
			fmt.Printf("Imported %d human ratings\n", n)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importVideosPath, "videos", "", "CSV of video_id,transcript rows")
	importCmd.Flags().StringVar(&importRatingsPath, "ratings", "", "CSV of video_id,dimension,score rows")
}

func importVideos(cmd *cobra.Command, tk *toolkit, path string) (int, error) {
	var count int
	err := eachRecord(path, 2, func(line int, rec []string) error {
		if err := tk.repo.UpsertGoldVideo(cmd.Context(), rec[0], rec[1]); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		count++
		return nil
	})
	return count, err
}

func importRatings(cmd *cobra.Command, tk *toolkit, path string) (int, error) {
	var count int
	err := eachRecord(path, 3, func(line int, rec []string) error {
		score, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return fmt.Errorf("line %d: bad score %q: %w", line, rec[2], err)
		}
		if err := tk.repo.UpsertGoldRating(cmd.Context(), rec[0], rec[1], score); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		count++
		return nil
	})
	return count, err
}

// eachRecord streams CSV records past the header row, enforcing the
// expected column count.
func eachRecord(path string, wantCols int, fn func(line int, rec []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = wantCols

	if _, err := r.Read(); err != nil {
		return fmt.Errorf("read header: %w", err)
	}

	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := fn(line, rec); err != nil {
			return err
		}
	}
}
