package skills

import (
	"math"
	"sort"
	"strings"
)

// Comparison is the result of matching one skill set against another.
// Matched is the intersection, Missing the job-side difference, Extra the
// resume-side difference; all three are sorted.
type Comparison struct {
	Matched         []string `json:"matched_skills"`
	Missing         []string `json:"missing_skills"`
	Extra           []string `json:"extra_skills"`
	MatchPercentage float64  `json:"match_percentage"`
	TotalRequired   int      `json:"total_required"`
	TotalMatched    int      `json:"total_matched"`
}

// Compare computes the set difference between resume skills and job skills.
// Inputs are lower-cased before comparison. It is totally defined: empty
// inputs produce empty sets and a zero percentage.
func Compare(resumeSkills, jobSkills []string) Comparison {
	resume := toSet(resumeSkills)
	job := toSet(jobSkills)

	var matched, missing, extra []string
	for s := range job {
		if _, ok := resume[s]; ok {
			matched = append(matched, s)
		} else {
			missing = append(missing, s)
		}
	}
	for s := range resume {
		if _, ok := job[s]; !ok {
			extra = append(extra, s)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	sort.Strings(extra)

	var pct float64
	if len(job) > 0 {
		pct = Round2(float64(len(matched)) / float64(len(job)) * 100)
	}

	return Comparison{
		Matched:         emptyNotNil(matched),
		Missing:         emptyNotNil(missing),
		Extra:           emptyNotNil(extra),
		MatchPercentage: pct,
		TotalRequired:   len(job),
		TotalMatched:    len(matched),
	}
}

// Round2 rounds x to two decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func toSet(items []string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, s := range items {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out[s] = struct{}{}
	}
	return out
}

func emptyNotNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
