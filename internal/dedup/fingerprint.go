package dedup

import (
	"fmt"
	"sort"
	"strings"

	"github.com/machinehub/discovery-pipeline/internal/entity"
)

// Scraped-field keys the fingerprint is derived from. The extraction service
// payload is validated against these names before a Success outcome is
// recorded (see scrape.ResultSchema).
const (
	fieldName        = "name"
	fieldMachineType = "machine_type"
	fieldSpecs       = "specs"
)

// FingerprintFor derives the comparison key for a scraped URL: normalized
// name plus key spec tokens. Falls back to the URL's last path segment when
// extraction produced no name, so a fingerprint is always non-empty.
func FingerprintFor(u *entity.DiscoveredURL) entity.Fingerprint {
	fp := entity.Fingerprint{ManufacturerID: u.ManufacturerID}

	if name, ok := u.ScrapedFields[fieldName].(string); ok && strings.TrimSpace(name) != "" {
		fp.Name = strings.TrimSpace(name)
	} else {
		fp.Name = lastPathSegment(u.URL)
	}
	if mt, ok := u.ScrapedFields[fieldMachineType].(string); ok {
		fp.MachineType = strings.TrimSpace(mt)
	} else if u.MachineType != nil {
		fp.MachineType = *u.MachineType
	}

	if specs, ok := u.ScrapedFields[fieldSpecs].(map[string]any); ok {
		tokens := make([]string, 0, len(specs))
		for k, v := range specs {
			tokens = append(tokens, fmt.Sprintf("%s %v", k, v))
		}
		sort.Strings(tokens)
		fp.SpecTokens = tokens
	}
	return fp
}

func lastPathSegment(url string) string {
	trimmed := strings.TrimRight(url, "/")
	if i := strings.LastIndexByte(trimmed, '/'); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return strings.NewReplacer("-", " ", "_", " ").Replace(trimmed)
}
