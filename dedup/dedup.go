// Package dedup collapses near-duplicate leads within a single run.
package dedup

import "github.com/NageshProgrammer/leadequator/core"

// Leads removes duplicates from a lead sequence, preserving order with
// first-occurrence-wins semantics. A lead is a duplicate when its URL or its
// normalized title (trimmed, lowercased) was seen earlier in the sequence.
//
// Title collision beats URL distinctness: two different URLs with the same
// normalized title keep only the first. This deliberately trades recall for
// precision, since syndicated announcements repeat titles across domains.
// Storage-level URL uniqueness remains the authoritative cross-run boundary.
func Leads(leads []*core.Lead) []*core.Lead {
	seenURLs := make(map[string]bool, len(leads))
	seenTitles := make(map[string]bool, len(leads))

	unique := make([]*core.Lead, 0, len(leads))
	for _, lead := range leads {
		normalizedTitle := core.NormalizeTitle(lead.Title)

		if seenURLs[lead.Link] || seenTitles[normalizedTitle] {
			continue
		}

		seenURLs[lead.Link] = true
		seenTitles[normalizedTitle] = true
		unique = append(unique, lead)
	}
	return unique
}
