package migrate

import (
	"fmt"

	"github.com/ariel-frischer/semrel/internal/commit"
)

// Strategy is the recommended way to move a repository onto conventional commits.
type Strategy string

const (
	// StrategyBulk rewrites all legacy messages at once.
	StrategyBulk Strategy = "bulk"
	// StrategyHybrid keeps history and enforces the format from now on.
	StrategyHybrid Strategy = "hybrid"
	// StrategyGradual draws a line in the sand and migrates over time.
	StrategyGradual Strategy = "gradual"
)

// Thresholds used by Recommend and ChooseStrategy.
const (
	gradualLegacyThreshold  = 100
	bulkPatternThreshold    = 10
	customPatternThreshold  = 20
	bulkStrategyLegacyLimit = 50
	hybridConventionalRatio = 0.3
)

// Report summarizes an analyzed history.
type Report struct {
	Total           int       `yaml:"total"`
	Conventional    int       `yaml:"conventional"`
	Legacy          int       `yaml:"legacy"`
	Patterns        []Pattern `yaml:"patterns"`
	Strategy        Strategy  `yaml:"strategy"`
	Recommendations []string  `yaml:"recommendations"`
}

// BuildReport analyzes every commit of a history in one pass.
func BuildReport(commits []commit.Commit) Report {
	conventional, legacy := SplitByConvention(commits)
	r := Report{
		Total:        len(commits),
		Conventional: len(conventional),
		Legacy:       len(legacy),
		Patterns:     Analyze(legacy),
	}
	r.Strategy = ChooseStrategy(r.Legacy, r.Conventional)
	r.Recommendations = Recommend(r)
	return r
}

// Recommend returns every piece of advice that applies to the report. The
// checks are independent and all matching advice is returned.
func Recommend(r Report) []string {
	var recs []string

	if r.Legacy > gradualLegacyThreshold {
		recs = append(recs, fmt.Sprintf(
			"Large history (%d legacy commits): migrate gradually and set a line in the sand instead of rewriting everything",
			r.Legacy))
	}

	if len(r.Patterns) > bulkPatternThreshold {
		recs = append(recs, fmt.Sprintf(
			"%d distinct message patterns: use bulk rule mapping (semrel analyze --rules) to reclassify them",
			len(r.Patterns)))
	}

	if r.Conventional > 0 {
		recs = append(recs, fmt.Sprintf(
			"%d commits already follow the convention: adopt a hybrid strategy and enforce it for new commits",
			r.Conventional))
	}

	for _, p := range r.Patterns {
		if p.Count > customPatternThreshold {
			recs = append(recs, fmt.Sprintf(
				"Pattern %q appears %d times: define custom mapping rules for your most frequent patterns",
				p.Pattern, p.Count))
			break
		}
	}

	return recs
}

// ChooseStrategy picks a migration strategy. The rules are evaluated in
// order and the first match wins.
func ChooseStrategy(legacy, conventional int) Strategy {
	switch {
	case legacy < bulkStrategyLegacyLimit:
		return StrategyBulk
	case float64(conventional) > float64(legacy)*hybridConventionalRatio:
		return StrategyHybrid
	default:
		return StrategyGradual
	}
}
