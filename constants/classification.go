package constants

import "strings"

// Classification is the label assigned by the external URL classifier.
type Classification string

const (
	ClassMachine   Classification = "MACHINE"
	ClassMaterial  Classification = "MATERIAL"
	ClassAccessory Classification = "ACCESSORY"
	ClassPackage   Classification = "PACKAGE"
	ClassService   Classification = "SERVICE"
)

// Classifications holds the allowed values for the ml_classification field.
var Classifications = []string{
	string(ClassMachine),
	string(ClassMaterial),
	string(ClassAccessory),
	string(ClassPackage),
	string(ClassService),
}

// NormalizeClassification maps a classifier response label onto the canonical
// set, case-insensitively. Returns false for labels outside the taxonomy.
func NormalizeClassification(label string) (Classification, bool) {
	c := Classification(strings.ToUpper(strings.TrimSpace(label)))
	for _, known := range Classifications {
		if string(c) == known {
			return c, true
		}
	}
	return "", false
}
