package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference file names.
var All = map[string][]TestCase{
	"octant":     octantCases,
	"axis":       axisCases,
	"degenerate": degenerateCases,
	"thick":      thickCases,
	"long":       longCases,
}
