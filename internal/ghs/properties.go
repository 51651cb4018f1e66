package ghs

var (
	handlingPatterns = labelPatterns(
		`precautions?\s+for\s+safe\s+handling`,
		`handling`,
		`(?:conditions?\s+for\s+safe\s+)?storage`,
	)
	physicalStatePatterns = labelPatterns(
		`physical\s+state`,
		`appearance`,
		`form`,
	)
	flashPointPatterns = labelPatterns(
		`flash\s*point`,
	)
)

// ExtractHandlingStorage pulls the safe-handling/storage guidance from
// the section-7 span. Handling and storage captures are joined when both
// are present; labels print this as one block.
func ExtractHandlingStorage(sectionText string) string {
	parts := captureList(sectionText, handlingPatterns)
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0]
	default:
		return parts[0] + "; " + parts[1]
	}
}

// PhysicalProperties holds the section-9 fields used on labels.
type PhysicalProperties struct {
	PhysicalState string
	FlashPoint    string
}

// ExtractPhysicalProperties pulls state/appearance and flash point from
// the section-9 span.
func ExtractPhysicalProperties(sectionText string) PhysicalProperties {
	return PhysicalProperties{
		PhysicalState: captureFirst(sectionText, physicalStatePatterns),
		FlashPoint:    captureFirst(sectionText, flashPointPatterns),
	}
}
