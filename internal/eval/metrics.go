package eval

// Aggregator accumulates per-case classification counts across a suite and
// finalizes them into the run's correctness metrics. It is mutated by the
// single evaluation goroutine only; no locking.
type Aggregator struct {
	expectedTotal        int
	expectedHits         int
	listedFalsePositives int
	unexpectedExtras     int
	invalidIDs           int
	returnedTotal        int
	passCases            int
	cases                int
}

// Observe folds one case's classification into the aggregate counters.
// Every case is observed exactly once, in suite order.
func (a *Aggregator) Observe(cls Classification, returnedCount int, passed bool) {
	a.cases++
	a.expectedTotal += len(cls.Hits) + len(cls.Missing)
	a.expectedHits += len(cls.Hits)
	a.listedFalsePositives += len(cls.FalsePositiveHits)
	a.unexpectedExtras += len(cls.ExtrasUnscored)
	a.invalidIDs += len(cls.InvalidIDs)
	a.returnedTotal += returnedCount
	if passed {
		a.passCases++
	}
}

// PenaltyWeights for the two penalized-but-valid categories. A listed decoy
// costs less than an unlabeled extra because the suite author anticipated it.
const (
	falsePositivePenalty   = 0.02
	unexpectedExtraPenalty = 0.05
)

// Summary is the finalized correctness picture of one run.
type Summary struct {
	Cases                int `json:"cases"`
	PassCases            int `json:"pass_cases"`
	ExpectedTotal        int `json:"expected_total"`
	ExpectedHits         int `json:"expected_hits"`
	ListedFalsePositives int `json:"listed_false_positives"`
	UnexpectedExtras     int `json:"unexpected_extras"`
	InvalidIDs           int `json:"invalid_ids"`
	ReturnedTotal        int `json:"returned_total"`

	Recall        float64 `json:"recall"`
	Precision     float64 `json:"precision"`
	F1            float64 `json:"f1"`
	PenaltyPoints float64 `json:"penalty_points"`
	ScoreRaw      float64 `json:"score_raw"`
	Score         float64 `json:"score"`
}

// Finalize computes the derived metrics from the accumulated counters.
//
// Recall and precision are micro-averaged over id counts, on a 0-100 scale.
// An empty expectation set is perfect recall; an empty return set is zero
// precision. The final score is recall minus penalty points, clamped to
// [0,100], unless the candidate claimed even one id that does not exist in
// the dataset, which zeroes the score outright.
func (a *Aggregator) Finalize() Summary {
	s := Summary{
		Cases:                a.cases,
		PassCases:            a.passCases,
		ExpectedTotal:        a.expectedTotal,
		ExpectedHits:         a.expectedHits,
		ListedFalsePositives: a.listedFalsePositives,
		UnexpectedExtras:     a.unexpectedExtras,
		InvalidIDs:           a.invalidIDs,
		ReturnedTotal:        a.returnedTotal,
	}

	if s.ExpectedTotal == 0 {
		s.Recall = 100
	} else {
		s.Recall = float64(s.ExpectedHits) / float64(s.ExpectedTotal) * 100
	}
	if s.ReturnedTotal > 0 {
		s.Precision = float64(s.ExpectedHits) / float64(s.ReturnedTotal) * 100
	}
	if s.Recall+s.Precision > 0 {
		s.F1 = 2 * s.Recall * s.Precision / (s.Recall + s.Precision)
	}

	s.PenaltyPoints = float64(s.ListedFalsePositives)*falsePositivePenalty +
		float64(s.UnexpectedExtras)*unexpectedExtraPenalty
	s.ScoreRaw = s.Recall - s.PenaltyPoints

	if s.InvalidIDs > 0 {
		s.Score = 0
	} else {
		s.Score = clamp(s.ScoreRaw, 0, 100)
	}
	return s
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
