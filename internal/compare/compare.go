// Package compare measures each scoring method against the human
// gold standard.
package compare

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/peacelens/transcript-scorer/internal/repository/models"
)

// Metrics summarizes one (method, dimension) cell of the comparison
// table. PearsonR and SpearmanR are NaN when fewer than two complete
// pairs exist or a side has zero variance.
type Metrics struct {
	Method      string
	Dimension   string
	N           int
	Unavailable int
	PearsonR    float64
	SpearmanR   float64
	MAE         float64
	RMSE        float64
}

type pairKey struct {
	method    string
	dimension string
}

// Compute groups gold pairs by method and dimension and computes the
// agreement metrics per group. Pairs whose model score is unavailable
// are excluded from the statistics but counted, so the table stays
// auditable.
func Compute(pairs []models.MethodGoldPair) []Metrics {
	grouped := make(map[pairKey]*Metrics)
	predicted := make(map[pairKey][]float64)
	human := make(map[pairKey][]float64)

	for _, p := range pairs {
		k := pairKey{method: p.Method, dimension: p.Dimension}
		m, ok := grouped[k]
		if !ok {
			m = &Metrics{Method: p.Method, Dimension: p.Dimension}
			grouped[k] = m
		}
		if !p.ModelScore.Valid {
			m.Unavailable++
			continue
		}
		predicted[k] = append(predicted[k], p.ModelScore.Float64)
		human[k] = append(human[k], p.HumanScore)
	}

	out := make([]Metrics, 0, len(grouped))
	for k, m := range grouped {
		pred, gold := predicted[k], human[k]
		m.N = len(pred)
		m.PearsonR = pearson(gold, pred)
		m.SpearmanR = pearson(ranks(gold), ranks(pred))
		m.MAE, m.RMSE = absErrors(gold, pred)
		out = append(out, *m)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Method != out[j].Method {
			return out[i].Method < out[j].Method
		}
		return out[i].Dimension < out[j].Dimension
	})
	return out
}

// BestByDimension picks, per dimension, the method with the highest
// Pearson correlation among cells with at least minSamples complete
// pairs.
func BestByDimension(metrics []Metrics, minSamples int) map[string]Metrics {
	best := make(map[string]Metrics)
	for _, m := range metrics {
		if m.N < minSamples || math.IsNaN(m.PearsonR) {
			continue
		}
		cur, ok := best[m.Dimension]
		if !ok || m.PearsonR > cur.PearsonR {
			best[m.Dimension] = m
		}
	}
	return best
}

func pearson(x, y []float64) float64 {
	if len(x) < 2 || len(x) != len(y) {
		return math.NaN()
	}
	if stat.Variance(x, nil) == 0 || stat.Variance(y, nil) == 0 {
		return math.NaN()
	}
	return stat.Correlation(x, y, nil)
}

// ranks returns average ranks (1-based), with ties sharing the mean of
// their rank positions, matching the usual Spearman convention.
func ranks(values []float64) []float64 {
	n := len(values)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return values[idx[a]] < values[idx[b]] })

	out := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && values[idx[j+1]] == values[idx[i]] {
			j++
		}
		avgRank := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			out[idx[k]] = avgRank
		}
		i = j + 1
	}
	return out
}

func absErrors(gold, pred []float64) (mae, rmse float64) {
	if len(gold) == 0 {
		return math.NaN(), math.NaN()
	}
	var sumAbs, sumSq float64
	for i := range gold {
		d := pred[i] - gold[i]
		sumAbs += math.Abs(d)
		sumSq += d * d
	}
	n := float64(len(gold))
	return sumAbs / n, math.Sqrt(sumSq / n)
}
