// internal/advisor/data-retrieve/handler.go
package dataretrieve

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"career-advisor/internal/models"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
)

const Stage = "data-retrieve"

// Logger interface definition
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	With(fields map[string]interface{}) Logger
}

// Handler fetches the four reference-data categories for a detected
// context. Each category is fetched independently: a failed query leaves
// that category empty and the rest untouched. Execute never returns an
// error; the reply must still be producible with no data at all.
type Handler struct {
	config      *Config
	db          *sql.DB
	esClient    *elasticsearch.Client
	redisClient *redis.Client
	logger      Logger
}

func NewHandler(config *Config, db *sql.DB, esClient *elasticsearch.Client, redisClient *redis.Client, log Logger) *Handler {
	return &Handler{
		config:      config,
		db:          db,
		esClient:    esClient,
		redisClient: redisClient,
		logger:      log.With(map[string]interface{}{"stage": Stage}),
	}
}

// Execute builds the dataset for one request.
func (h *Handler) Execute(ctx context.Context, input *Input) *Output {
	cacheKey := h.buildCacheKey(&input.Context)
	if cached := h.cacheGet(ctx, cacheKey); cached != nil {
		h.logger.Debug("dataset cache hit", map[string]interface{}{"key": cacheKey})
		return &Output{Dataset: cached}
	}

	dataset := models.NewEmptyDataset()

	countryID, countryName, currency := h.resolveCountry(ctx, input.Context.Country)
	if countryID != nil {
		dataset.Country = countryName
		dataset.CountryCurrency = currency
	}
	sectorID, sectorName := h.resolveSector(ctx, input.Context.Sector)

	if countryID != nil || sectorID != nil {
		insights, err := h.fetchMarketInsights(ctx, countryID, sectorID)
		if err != nil {
			h.logger.Warn("market insights fetch failed", map[string]interface{}{"error": err.Error()})
		} else {
			dataset.MarketInsights = insights
		}
	}

	if input.Context.Role != "" && countryID != nil {
		if roleID := h.resolveRole(ctx, input.Context.Role); roleID != nil {
			salaries, err := h.fetchSalaryRecords(ctx, *roleID, *countryID)
			if err != nil {
				h.logger.Warn("salary fetch failed", map[string]interface{}{"error": err.Error()})
			} else {
				dataset.SalaryRecords = salaries
			}
		}
	}

	skills, err := h.searchSkillsDemand(ctx, countryName, sectorName)
	if err != nil {
		h.logger.Warn("skills demand search failed", map[string]interface{}{"error": err.Error()})
	} else {
		dataset.SkillsDemand = skills
	}

	if input.Context.Intent == models.IntentBusinessStrategy && countryID != nil {
		env, err := h.fetchBusinessEnvironment(ctx, *countryID)
		if err != nil {
			h.logger.Warn("business environment fetch failed", map[string]interface{}{"error": err.Error()})
		} else {
			dataset.BusinessEnvironment = env
		}
	}

	dataset.CollectSources()

	h.logger.Info("dataset retrieved", map[string]interface{}{
		"country":    dataset.Country,
		"sector":     sectorName,
		"totalItems": dataset.TotalItems(),
		"sources":    len(dataset.Sources),
	})

	if dataset.TotalItems() > 0 {
		h.cacheSet(ctx, cacheKey, dataset)
	}

	return &Output{Dataset: dataset}
}

func (h *Handler) buildCacheKey(dc *models.DetectedContext) string {
	parts := []string{dc.Country, dc.Sector, dc.Role, string(dc.Intent)}
	return "advice:dataset:" + strings.ToLower(strings.Join(parts, "|"))
}

func (h *Handler) cacheGet(ctx context.Context, key string) *models.RetrievedDataset {
	if h.redisClient == nil {
		return nil
	}
	val, err := h.redisClient.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var ds models.RetrievedDataset
	if err := json.Unmarshal([]byte(val), &ds); err != nil {
		return nil
	}
	return &ds
}

func (h *Handler) cacheSet(ctx context.Context, key string, ds *models.RetrievedDataset) {
	if h.redisClient == nil {
		return
	}
	data, err := json.Marshal(ds)
	if err != nil {
		return
	}
	if err := h.redisClient.Set(ctx, key, data, h.config.CacheTTL).Err(); err != nil {
		h.logger.Debug("dataset cache write failed", map[string]interface{}{"error": err.Error()})
	}
}
