package extraction

import (
	"strings"

	"github.com/jonathan/resume-screener/internal/types"
)

// educationKeywords maps degree keywords (matched as lower-case
// substrings) to the extractor's 0-4 education scale.
var educationKeywords = map[string]types.EducationLevel{
	"phd": types.EducationPhD, "doctorate": types.EducationPhD, "ph.d": types.EducationPhD,
	"master": types.EducationMaster, "masters": types.EducationMaster, "mba": types.EducationMaster,
	"ms": types.EducationMaster, "ma": types.EducationMaster, "m.s": types.EducationMaster, "m.a": types.EducationMaster,
	"bachelor": types.EducationBachelor, "bachelors": types.EducationBachelor, "bs": types.EducationBachelor,
	"ba": types.EducationBachelor, "b.s": types.EducationBachelor, "b.a": types.EducationBachelor,
	"be": types.EducationBachelor, "b.e": types.EducationBachelor,
	"associate": types.EducationCertificate, "diploma": types.EducationCertificate, "certificate": types.EducationCertificate,
	"high school": types.EducationHighSchool, "secondary": types.EducationHighSchool, "graduation": types.EducationHighSchool,
}

// extractEducation scans for every education keyword, keeps the highest
// level found and returns its display label, or NotSpecified when no
// keyword appears.
func extractEducation(text string) string {
	lower := strings.ToLower(text)

	highest := types.EducationLevel(-1)
	for keyword, level := range educationKeywords {
		if strings.Contains(lower, keyword) && level > highest {
			highest = level
		}
	}

	if highest < 0 {
		return types.NotSpecified
	}
	return highest.Label()
}
