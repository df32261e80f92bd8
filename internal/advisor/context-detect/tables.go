// internal/advisor/context-detect/tables.go
package contextdetect

import "career-advisor/internal/models"

// countryRule matches a country by its name or major cities appearing in the
// message text.
type countryRule struct {
	Country  string
	Keywords []string
}

// keywordRule is an ordered (predicate keywords, result) pair. Rules are
// evaluated top to bottom; the first whose keyword set intersects the
// message wins. Table order is a deliberate priority, not alphabetical.
type keywordRule struct {
	Keywords []string
	Result   string
}

var countryRules = []countryRule{
	{Country: "Ghana", Keywords: []string{"ghana", "accra", "kumasi"}},
	{Country: "Nigeria", Keywords: []string{"nigeria", "lagos", "abuja"}},
	{Country: "Kenya", Keywords: []string{"kenya", "nairobi", "mombasa"}},
	{Country: "South Africa", Keywords: []string{"south africa", "johannesburg", "cape town"}},
	{Country: "Rwanda", Keywords: []string{"rwanda", "kigali"}},
	{Country: "Egypt", Keywords: []string{"egypt", "cairo", "alexandria"}},
	{Country: "Ethiopia", Keywords: []string{"ethiopia", "addis ababa"}},
	{Country: "Uganda", Keywords: []string{"uganda", "kampala"}},
	{Country: "Tanzania", Keywords: []string{"tanzania", "dar es salaam"}},
	{Country: "Senegal", Keywords: []string{"senegal", "dakar"}},
}

var sectorRules = []keywordRule{
	{Keywords: []string{"software", "tech", "developer", "programming", "startup"}, Result: "Technology"},
	{Keywords: []string{"fintech", "bank", "finance", "investment", "insurance"}, Result: "Finance"},
	{Keywords: []string{"farm", "agricultur", "crop", "livestock", "agribusiness"}, Result: "Agriculture"},
	{Keywords: []string{"health", "hospital", "medical", "clinic", "pharma"}, Result: "Healthcare"},
	{Keywords: []string{"school", "teacher", "education", "tutoring"}, Result: "Education"},
	{Keywords: []string{"retail", "shop", "commerce", "trade", "import"}, Result: "Retail"},
	{Keywords: []string{"solar", "energy", "power", "electricity", "oil"}, Result: "Energy"},
	{Keywords: []string{"factory", "manufactur", "production"}, Result: "Manufacturing"},
	{Keywords: []string{"tourism", "hotel", "hospitality", "travel"}, Result: "Tourism"},
	{Keywords: []string{"fashion", "music", "film", "design", "creative"}, Result: "Creative"},
}

var roleRules = []keywordRule{
	{Keywords: []string{"software engineer", "developer", "programmer"}, Result: "Software Developer"},
	{Keywords: []string{"data analyst", "data scientist", "data engineer"}, Result: "Data Analyst"},
	{Keywords: []string{"product manager", "project manager"}, Result: "Product Manager"},
	{Keywords: []string{"accountant", "accounting", "auditor"}, Result: "Accountant"},
	{Keywords: []string{"marketer", "marketing", "sales"}, Result: "Marketing Specialist"},
	{Keywords: []string{"designer", "ux", "graphic"}, Result: "Designer"},
	{Keywords: []string{"nurse", "doctor", "physician"}, Result: "Healthcare Professional"},
	{Keywords: []string{"teacher", "lecturer", "tutor"}, Result: "Teacher"},
	{Keywords: []string{"founder", "entrepreneur", "business owner"}, Result: "Entrepreneur"},
}

// intentRule pairs a predicate with the resulting intent. Evaluation order
// matters: business strategy is checked first and wins over the others.
type intentRule struct {
	Match  func(msg string) bool
	Intent models.Intent
}
