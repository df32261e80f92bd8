// internal/advisor/data-retrieve/config.go
package dataretrieve

import "time"

type Config struct {
	CacheTTL      time.Duration
	SkillsIndex   string
	MarketLimit   int
	SalaryLimit   int
	SkillsLimit   int
	BusinessLimit int
}

func LoadConfig() *Config {
	return &Config{
		CacheTTL:      10 * time.Minute,
		SkillsIndex:   "skills-demand-postings",
		MarketLimit:   5,
		SalaryLimit:   3,
		SkillsLimit:   10,
		BusinessLimit: 5,
	}
}
