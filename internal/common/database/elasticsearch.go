// internal/common/database/elasticsearch.go
package database

import (
	"fmt"

	"career-advisor/internal/common/config"

	"github.com/elastic/go-elasticsearch/v8"
)

// NewElasticsearch creates the client for the job-postings search index.
func NewElasticsearch(cfg config.ElasticsearchConfig) (*elasticsearch.Client, error) {
	es, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: cfg.Addresses,
		Username:  cfg.Username,
		Password:  cfg.Password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create elasticsearch client: %w", err)
	}
	return es, nil
}
