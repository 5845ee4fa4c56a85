// Package keywords derives web search query variants from a lead
// discovery request.
package keywords

// Templated variants appended to the raw industry string.
// These track the phrasing procurement teams use in public announcements.
var variantSuffixes = []string{
	"procurement",
	"RFP",
	"supplier search",
	"expansion news",
}

// Expand returns the deduplicated set of search queries for an industry and
// its buying-signal description: the two raw inputs plus the templated
// industry variants. No ordering is guaranteed.
//
// Empty inputs yield degenerate but harmless queries; validation is the
// caller's concern.
func Expand(industry, buyingSignals string) []string {
	base := make([]string, 0, len(variantSuffixes)+2)
	base = append(base, industry, buyingSignals)
	for _, suffix := range variantSuffixes {
		base = append(base, industry+" "+suffix)
	}

	seen := make(map[string]bool, len(base))
	unique := make([]string, 0, len(base))
	for _, keyword := range base {
		if seen[keyword] {
			continue
		}
		seen[keyword] = true
		unique = append(unique, keyword)
	}
	return unique
}
