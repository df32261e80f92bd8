// internal/advisor/data-retrieve/queries.go
package dataretrieve

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"career-advisor/internal/models"
)

// resolveCountry maps a free-text country value to its store id, canonical
// name and currency. Exact (case-insensitive) match first, then partial.
// Not resolving is not an error: dependent categories are simply skipped.
func (h *Handler) resolveCountry(ctx context.Context, country string) (*int, string, string) {
	if country == "" {
		return nil, "", ""
	}

	var id int
	var name, currency string
	err := h.db.QueryRowContext(ctx,
		`SELECT id, name, currency_code FROM countries WHERE LOWER(name) = LOWER($1)`,
		country,
	).Scan(&id, &name, &currency)
	if errors.Is(err, sql.ErrNoRows) {
		err = h.db.QueryRowContext(ctx,
			`SELECT id, name, currency_code FROM countries WHERE name ILIKE '%' || $1 || '%' ORDER BY id LIMIT 1`,
			country,
		).Scan(&id, &name, &currency)
	}
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			h.logger.Warn("country lookup failed", map[string]interface{}{"country": country, "error": err.Error()})
		}
		return nil, "", ""
	}
	return &id, name, currency
}

func (h *Handler) resolveSector(ctx context.Context, sector string) (*int, string) {
	if sector == "" {
		return nil, ""
	}

	var id int
	var name string
	err := h.db.QueryRowContext(ctx,
		`SELECT id, name FROM sectors WHERE LOWER(name) = LOWER($1)`,
		sector,
	).Scan(&id, &name)
	if errors.Is(err, sql.ErrNoRows) {
		err = h.db.QueryRowContext(ctx,
			`SELECT id, name FROM sectors WHERE name ILIKE '%' || $1 || '%' ORDER BY id LIMIT 1`,
			sector,
		).Scan(&id, &name)
	}
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			h.logger.Warn("sector lookup failed", map[string]interface{}{"sector": sector, "error": err.Error()})
		}
		return nil, ""
	}
	return &id, name
}

// resolveRole matches the detected role against stored role titles by
// partial match.
func (h *Handler) resolveRole(ctx context.Context, role string) *int {
	var id int
	err := h.db.QueryRowContext(ctx,
		`SELECT id FROM roles WHERE title ILIKE '%' || $1 || '%' ORDER BY id LIMIT 1`,
		role,
	).Scan(&id)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			h.logger.Warn("role lookup failed", map[string]interface{}{"role": role, "error": err.Error()})
		}
		return nil
	}
	return &id
}

// fetchMarketInsights returns current insights filtered by whichever of
// country/sector resolved, newest first.
func (h *Handler) fetchMarketInsights(ctx context.Context, countryID, sectorID *int) ([]models.MarketInsight, error) {
	query := `SELECT title, summary, year, source_org, source_url FROM market_insights WHERE is_current = TRUE`
	args := []interface{}{}

	if countryID != nil {
		args = append(args, *countryID)
		query += fmt.Sprintf(" AND country_id = $%d", len(args))
	}
	if sectorID != nil {
		args = append(args, *sectorID)
		query += fmt.Sprintf(" AND sector_id = $%d", len(args))
	}
	args = append(args, h.config.MarketLimit)
	query += fmt.Sprintf(" ORDER BY year DESC LIMIT $%d", len(args))

	rows, err := h.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	insights := []models.MarketInsight{}
	for rows.Next() {
		var m models.MarketInsight
		if err := rows.Scan(&m.Title, &m.Summary, &m.Year, &m.Source.Organization, &m.Source.URL); err != nil {
			return nil, err
		}
		insights = append(insights, m)
	}
	return insights, rows.Err()
}

func (h *Handler) fetchSalaryRecords(ctx context.Context, roleID, countryID int) ([]models.SalaryRecord, error) {
	query := `SELECT r.title, s.min_salary, s.max_salary, s.currency, s.year, s.source_org, s.source_url
		FROM salary_records s
		JOIN roles r ON r.id = s.role_id
		WHERE s.role_id = $1 AND s.country_id = $2
		ORDER BY s.year DESC LIMIT $3`

	rows, err := h.db.QueryContext(ctx, query, roleID, countryID, h.config.SalaryLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.SalaryRecord{}
	for rows.Next() {
		var s models.SalaryRecord
		if err := rows.Scan(&s.Role, &s.MinSalary, &s.MaxSalary, &s.Currency, &s.Year, &s.Source.Organization, &s.Source.URL); err != nil {
			return nil, err
		}
		records = append(records, s)
	}
	return records, rows.Err()
}

func (h *Handler) fetchBusinessEnvironment(ctx context.Context, countryID int) ([]models.BusinessEnvironmentRecord, error) {
	query := `SELECT title, summary, year, source_org, source_url FROM business_environment
		WHERE country_id = $1 ORDER BY year DESC LIMIT $2`

	rows, err := h.db.QueryContext(ctx, query, countryID, h.config.BusinessLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []models.BusinessEnvironmentRecord{}
	for rows.Next() {
		var b models.BusinessEnvironmentRecord
		if err := rows.Scan(&b.Title, &b.Summary, &b.Year, &b.Source.Organization, &b.Source.URL); err != nil {
			return nil, err
		}
		records = append(records, b)
	}
	return records, rows.Err()
}
