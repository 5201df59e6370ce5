// Package scoring computes interview score aggregates. It has two distinct
// entry points: Summarize, the authoritative batch computation persisted on
// the interview, and PreviewOverall, the lightweight running average shown
// while scores are still being entered. The two intentionally differ in
// subset and rounding handling and must not be unified.
package scoring

import (
	"math"

	"github.com/talentgrid/interview-management-api/internal/models"
)

// QuestionScore is one attached interview question as the engine sees it:
// the recorded score plus the parent question's evaluation flags. A question
// whose parent was deleted evaluates no skills.
type QuestionScore struct {
	Score                   *int
	Skipped                 bool
	EvaluatesTechnical      bool
	EvaluatesProblemSolving bool
	EvaluatesCommunication  bool
}

// Scoreable reports whether the question participates in aggregation:
// it must carry a score and not be skipped.
func (q QuestionScore) Scoreable() bool {
	return q.Score != nil && !q.Skipped
}

// Summary holds the computed aggregate. A nil skill score means no attempted
// question evaluated that skill; it is distinct from a zero score.
type Summary struct {
	Technical      *int
	ProblemSolving *int
	Communication  *int
	Overall        *int
	Recommendation *models.Recommendation
}

// Summarize computes the per-skill, overall and recommendation aggregate
// from the given question set. The second return value is false when no
// scoreable question exists, in which case the caller must treat the call
// as a no-op rather than an error.
//
// A question evaluating several skills contributes its full score to each
// subset independently. Each subset mean is rounded half-up on its own, and
// the overall score is the rounded mean of the rounded skill scores; the
// double rounding is deliberate.
func Summarize(questions []QuestionScore) (Summary, bool) {
	var technical, problemSolving, communication []int
	for _, q := range questions {
		if !q.Scoreable() {
			continue
		}
		if q.EvaluatesTechnical {
			technical = append(technical, *q.Score)
		}
		if q.EvaluatesProblemSolving {
			problemSolving = append(problemSolving, *q.Score)
		}
		if q.EvaluatesCommunication {
			communication = append(communication, *q.Score)
		}
	}

	any := false
	for _, q := range questions {
		if q.Scoreable() {
			any = true
			break
		}
	}
	if !any {
		return Summary{}, false
	}

	summary := Summary{
		Technical:      roundedMean(technical),
		ProblemSolving: roundedMean(problemSolving),
		Communication:  roundedMean(communication),
	}

	var skillScores []int
	for _, s := range []*int{summary.Technical, summary.ProblemSolving, summary.Communication} {
		if s != nil {
			skillScores = append(skillScores, *s)
		}
	}
	summary.Overall = roundedMean(skillScores)

	if summary.Overall != nil {
		rec := RecommendationFor(*summary.Overall)
		summary.Recommendation = &rec
	}

	return summary, true
}

// RecommendationFor maps an overall score to the coarse hiring signal.
func RecommendationFor(overall int) models.Recommendation {
	switch {
	case overall >= 5:
		return models.RecommendationStrongHire
	case overall >= 4:
		return models.RecommendationHire
	case overall >= 3:
		return models.RecommendationConsider
	default:
		return models.RecommendationPass
	}
}

// PreviewOverall is the interactive running average: the plain mean of
// whichever displayed skill scores are currently non-zero, unrounded. It is
// structurally similar to Summarize's overall but not numerically
// interchangeable with it.
func PreviewOverall(technical, problemSolving, communication int) float64 {
	var sum, n int
	for _, s := range []int{technical, problemSolving, communication} {
		if s != 0 {
			sum += s
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

// roundedMean returns the half-up rounded mean of values, or nil for an
// empty slice.
func roundedMean(values []int) *int {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	mean := float64(sum) / float64(len(values))
	rounded := int(math.Floor(mean + 0.5))
	return &rounded
}
