// internal/models/dataset.go
package models

// Source identifies where a reference record came from.
type Source struct {
	Organization string `json:"organization"`
	URL          string `json:"url"`
}

// MarketInsight is a current labour/business market observation for a
// country and/or sector.
type MarketInsight struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Year    int    `json:"year"`
	Source  Source `json:"source"`
}

// SalaryRecord is a salary band for a role in a country, in the local
// currency of that country.
type SalaryRecord struct {
	Role      string `json:"role"`
	MinSalary int    `json:"minSalary"`
	MaxSalary int    `json:"maxSalary"`
	Currency  string `json:"currency"`
	Year      int    `json:"year"`
	Source    Source `json:"source"`
}

// SkillDemand is a skill ranked by how many job postings mention it.
type SkillDemand struct {
	Skill              string `json:"skill"`
	DemandLevel        string `json:"demandLevel"`
	PostingsMentioning int    `json:"postingsMentioning"`
	Source             Source `json:"source"`
}

// BusinessEnvironmentRecord describes regulatory/startup conditions for a
// country. Only retrieved for business-strategy questions.
type BusinessEnvironmentRecord struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Year    int    `json:"year"`
	Source  Source `json:"source"`
}

// RetrievedDataset holds everything the retriever could fetch for one
// request. Collections are always non-nil; a failed category is simply
// empty. Country/CountryCurrency are set only when the free-text country
// resolved against the reference store.
type RetrievedDataset struct {
	MarketInsights      []MarketInsight             `json:"marketInsights"`
	SalaryRecords       []SalaryRecord              `json:"salaryRecords"`
	SkillsDemand        []SkillDemand               `json:"skillsDemand"`
	BusinessEnvironment []BusinessEnvironmentRecord `json:"businessEnvironment"`
	Sources             []Source                    `json:"sources"`
	Country             string                      `json:"country,omitempty"`
	CountryCurrency     string                      `json:"countryCurrency,omitempty"`
}

// NewEmptyDataset returns a dataset with empty, non-nil collections.
func NewEmptyDataset() *RetrievedDataset {
	return &RetrievedDataset{
		MarketInsights:      []MarketInsight{},
		SalaryRecords:       []SalaryRecord{},
		SkillsDemand:        []SkillDemand{},
		BusinessEnvironment: []BusinessEnvironmentRecord{},
		Sources:             []Source{},
	}
}

// TotalItems counts retrieved records across all four categories.
func (d *RetrievedDataset) TotalItems() int {
	return len(d.MarketInsights) + len(d.SalaryRecords) + len(d.SkillsDemand) + len(d.BusinessEnvironment)
}

// CollectSources rebuilds the de-duplicated source list from every item.
func (d *RetrievedDataset) CollectSources() {
	seen := make(map[Source]bool)
	sources := []Source{}
	add := func(s Source) {
		if s == (Source{}) || seen[s] {
			return
		}
		seen[s] = true
		sources = append(sources, s)
	}
	for _, m := range d.MarketInsights {
		add(m.Source)
	}
	for _, s := range d.SalaryRecords {
		add(s.Source)
	}
	for _, s := range d.SkillsDemand {
		add(s.Source)
	}
	for _, b := range d.BusinessEnvironment {
		add(b.Source)
	}
	d.Sources = sources
}
