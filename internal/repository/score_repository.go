package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/peacelens/transcript-scorer/internal/repository/models"
)

// ScoreRepository persists model scores and the human gold standard in
// SQLite.
type ScoreRepository struct {
	db *sql.DB
}

func NewScoreRepository(db *sql.DB) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// EnsureSchema creates the tables if they do not exist yet.
func (r *ScoreRepository) EnsureSchema(ctx context.Context) error {
	const schema = `
	CREATE TABLE IF NOT EXISTS transcript_scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		video_id TEXT NOT NULL,
		method TEXT NOT NULL,
		dimension TEXT NOT NULL,
		score REAL,
		run_number INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL DEFAULT (datetime('now')),
		UNIQUE (video_id, method, dimension, run_number)
	);
	CREATE TABLE IF NOT EXISTS gold_videos (
		video_id TEXT PRIMARY KEY,
		transcript TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS gold_ratings (
		video_id TEXT NOT NULL,
		dimension TEXT NOT NULL,
		human_score REAL NOT NULL,
		PRIMARY KEY (video_id, dimension)
	);
	`
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

// SaveScores upserts one method's scores for a video under runNumber.
// A nil score is stored as NULL, not dropped.
func (r *ScoreRepository) SaveScores(ctx context.Context, videoID, method string, runNumber int, scores map[string]*float64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin SaveScores tx: %w", err)
	}
	defer tx.Rollback()

	const query = `
		INSERT INTO transcript_scores (video_id, method, dimension, score, run_number)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (video_id, method, dimension, run_number)
		DO UPDATE SET score = excluded.score, created_at = datetime('now')
	`
	for dimension, score := range scores {
		var v sql.NullFloat64
		if score != nil {
			v = sql.NullFloat64{Float64: *score, Valid: true}
		}
		if _, err := tx.ExecContext(ctx, query, videoID, method, dimension, v, runNumber); err != nil {
			return fmt.Errorf("insert score %s/%s/%s: %w", videoID, method, dimension, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit SaveScores tx: %w", err)
	}
	return nil
}

// GetScoresByVideo returns the latest stored score per (method,
// dimension) for a video, pivoted method -> dimension -> score.
func (r *ScoreRepository) GetScoresByVideo(ctx context.Context, videoID string) (map[string]map[string]*float64, error) {
	const query = `
		SELECT ts.method, ts.dimension, ts.score
		FROM transcript_scores AS ts
		JOIN (
			SELECT method, dimension, MAX(run_number) AS max_run
			FROM transcript_scores
			WHERE video_id = ?
			GROUP BY method, dimension
		) AS latest
		ON ts.method = latest.method
			AND ts.dimension = latest.dimension
			AND ts.run_number = latest.max_run
		WHERE ts.video_id = ?
		ORDER BY ts.method, ts.dimension
	`

	rows, err := r.db.QueryContext(ctx, query, videoID, videoID)
	if err != nil {
		return nil, fmt.Errorf("query GetScoresByVideo: %w", err)
	}
	defer rows.Close()

	pivot := make(map[string]map[string]*float64)
	for rows.Next() {
		var method, dimension string
		var score sql.NullFloat64
		if err := rows.Scan(&method, &dimension, &score); err != nil {
			return nil, fmt.Errorf("scan GetScoresByVideo row: %w", err)
		}
		if _, ok := pivot[method]; !ok {
			pivot[method] = make(map[string]*float64)
		}
		if score.Valid {
			v := score.Float64
			pivot[method][dimension] = &v
		} else {
			pivot[method][dimension] = nil
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetScoresByVideo: %w", err)
	}
	return pivot, nil
}

// GetMethodGoldPairs joins stored scores with the gold standard for
// one run, one row per (method, dimension, video) pair. Unavailable
// model scores are included with a NULL score so comparison code can
// count them.
func (r *ScoreRepository) GetMethodGoldPairs(ctx context.Context, runNumber int) ([]models.MethodGoldPair, error) {
	const query = `
		SELECT ts.method, ts.dimension, ts.video_id, ts.score, gr.human_score
		FROM transcript_scores AS ts
		JOIN gold_ratings AS gr
			ON gr.video_id = ts.video_id AND gr.dimension = ts.dimension
		WHERE ts.run_number = ?
		ORDER BY ts.method, ts.dimension, ts.video_id
	`

	rows, err := r.db.QueryContext(ctx, query, runNumber)
	if err != nil {
		return nil, fmt.Errorf("query GetMethodGoldPairs: %w", err)
	}
	defer rows.Close()

	var pairs []models.MethodGoldPair
	for rows.Next() {
		var p models.MethodGoldPair
		if err := rows.Scan(&p.Method, &p.Dimension, &p.VideoID, &p.ModelScore, &p.HumanScore); err != nil {
			return nil, fmt.Errorf("scan GetMethodGoldPairs row: %w", err)
		}
		pairs = append(pairs, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate GetMethodGoldPairs: %w", err)
	}
	return pairs, nil
}

// ListGoldVideos returns every gold-standard video with its transcript.
func (r *ScoreRepository) ListGoldVideos(ctx context.Context) ([]models.GoldVideo, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT video_id, transcript FROM gold_videos ORDER BY video_id`)
	if err != nil {
		return nil, fmt.Errorf("query ListGoldVideos: %w", err)
	}
	defer rows.Close()

	var videos []models.GoldVideo
	for rows.Next() {
		var v models.GoldVideo
		if err := rows.Scan(&v.VideoID, &v.Transcript); err != nil {
			return nil, fmt.Errorf("scan ListGoldVideos row: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ListGoldVideos: %w", err)
	}
	return videos, nil
}

// UpsertGoldVideo stores or replaces a gold-standard transcript.
func (r *ScoreRepository) UpsertGoldVideo(ctx context.Context, videoID, transcript string) error {
	const query = `
		INSERT INTO gold_videos (video_id, transcript) VALUES (?, ?)
		ON CONFLICT (video_id) DO UPDATE SET transcript = excluded.transcript
	`
	if _, err := r.db.ExecContext(ctx, query, videoID, transcript); err != nil {
		return fmt.Errorf("upsert gold video %s: %w", videoID, err)
	}
	return nil
}

// UpsertGoldRating stores or replaces one human rating.
func (r *ScoreRepository) UpsertGoldRating(ctx context.Context, videoID, dimension string, humanScore float64) error {
	const query = `
		INSERT INTO gold_ratings (video_id, dimension, human_score) VALUES (?, ?, ?)
		ON CONFLICT (video_id, dimension) DO UPDATE SET human_score = excluded.human_score
	`
	if _, err := r.db.ExecContext(ctx, query, videoID, dimension, humanScore); err != nil {
		return fmt.Errorf("upsert gold rating %s/%s: %w", videoID, dimension, err)
	}
	return nil
}
