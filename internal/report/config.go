package report

import "sort"

// DefaultExperiment is the experiment family the reports are built for.
const DefaultExperiment = "quality"

// DefaultEngines is the engine allow-list, in column order.
var DefaultEngines = []string{
	// "Logic_Weighted_Discrete",
	"MLN_Native",
	"MLN_PySAT",
	// "ProbLog",
	"ProbLog_NonCollective",
	"PSL",
	// "Random_Continuous",
	// "Random_Discrete",
	"Tuffy",
}

// DefaultExcludeEngines are dropped from TABLE and RUNTIME_TABLE.
var DefaultExcludeEngines = []string{
	"Random_Continuous",
	"Random_Discrete",
	"ProbLog",
}

// DefaultExcludeExamples are dropped from TABLE and RUNTIME_TABLE.
var DefaultExcludeExamples = []string{
	"friendship",
	"simple-acquaintances",
	"smokers",
	"stance-4forums",
	"trust-prediction",
	"user-modeling",
}

// Config selects the rows and columns of the reports.
type Config struct {
	// Experiment filters the base set (experiment == Experiment).
	Experiment string
	// EngineAllowList gives the FULL_TABLE columns, in order.
	EngineAllowList []string
	// EngineExcludeList is removed from the allow-list for TABLE and RUNTIME_TABLE.
	EngineExcludeList []string
	// ExampleExcludeList rows are dropped from TABLE and RUNTIME_TABLE.
	ExampleExcludeList []string
}

// DefaultConfig returns the compiled-in report configuration.
func DefaultConfig() Config {
	return Config{
		Experiment:         DefaultExperiment,
		EngineAllowList:    append([]string(nil), DefaultEngines...),
		EngineExcludeList:  append([]string(nil), DefaultExcludeEngines...),
		ExampleExcludeList: append([]string(nil), DefaultExcludeExamples...),
	}
}

// TableEngines is the sorted allow-list minus the exclude-list.
func (c Config) TableEngines() []string {
	excluded := toSet(c.EngineExcludeList)
	seen := make(map[string]struct{}, len(c.EngineAllowList))
	var engines []string
	for _, e := range c.EngineAllowList {
		if _, ok := excluded[e]; ok {
			continue
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		engines = append(engines, e)
	}
	sort.Strings(engines)
	return engines
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}
