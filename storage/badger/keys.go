package badger

import (
	"fmt"

	"github.com/NageshProgrammer/leadequator/core"
)

// Key prefixes for different data types
const (
	leadRecordPrefix    = "leadrec"
	leadDomainPrefix    = "leaddom"
	exampleRecordPrefix = "intexrec"
)

// makeLeadKey generates a key for a lead by ID.
func makeLeadKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", leadRecordPrefix, id))
}

// makeLeadDomainKey generates a composite key for the domain index.
// Format: prefix:domain:id
func makeLeadDomainKey(domain string, id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%s:%d", leadDomainPrefix, domain, id))
}

// makePartialLeadDomainKey generates a partial key for domain queries.
// Format: prefix:domain:
func makePartialLeadDomainKey(domain string) []byte {
	return []byte(fmt.Sprintf("%s:%s:", leadDomainPrefix, domain))
}

// makeExampleKey generates a key for an intent example by ID.
func makeExampleKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", exampleRecordPrefix, id))
}
