// internal/advisor/data-retrieve/search.go
package dataretrieve

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"career-advisor/internal/models"
)

// searchSkillsDemand queries the job-postings index for in-demand skills,
// ranked by how many postings mention them. Only HIGH and CRITICAL demand
// levels are kept.
func (h *Handler) searchSkillsDemand(ctx context.Context, country, sector string) ([]models.SkillDemand, error) {
	if h.esClient == nil {
		return []models.SkillDemand{}, nil
	}

	filters := []map[string]interface{}{
		{"terms": map[string]interface{}{"demand_level": []string{"HIGH", "CRITICAL"}}},
	}
	if country != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"country": strings.ToLower(country)},
		})
	}
	if sector != "" {
		filters = append(filters, map[string]interface{}{
			"term": map[string]interface{}{"sector": strings.ToLower(sector)},
		})
	}

	body := map[string]interface{}{
		"query": map[string]interface{}{
			"bool": map[string]interface{}{"filter": filters},
		},
		"sort": []map[string]interface{}{
			{"postings_mentioning": map[string]string{"order": "desc"}},
		},
		"size": h.config.SkillsLimit,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	res, err := h.esClient.Search(
		h.esClient.Search.WithContext(ctx),
		h.esClient.Search.WithIndex(h.config.SkillsIndex),
		h.esClient.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("elasticsearch: %s", res.Status())
	}

	var sr struct {
		Hits struct {
			Hits []struct {
				Source struct {
					Skill              string `json:"skill"`
					DemandLevel        string `json:"demand_level"`
					PostingsMentioning int    `json:"postings_mentioning"`
					SourceOrg          string `json:"source_org"`
					SourceURL          string `json:"source_url"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return nil, err
	}

	skills := []models.SkillDemand{}
	for _, hit := range sr.Hits.Hits {
		skills = append(skills, models.SkillDemand{
			Skill:              hit.Source.Skill,
			DemandLevel:        hit.Source.DemandLevel,
			PostingsMentioning: hit.Source.PostingsMentioning,
			Source: models.Source{
				Organization: hit.Source.SourceOrg,
				URL:          hit.Source.SourceURL,
			},
		})
	}
	return skills, nil
}
