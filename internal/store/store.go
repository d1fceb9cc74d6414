// Package store persists scraped records to Postgres. Writes are
// idempotent upserts: companies key on the jobs URL, postings on the
// (ats_job_id, ats_type) pair, so re-submitting an already-stored record
// refreshes its mutable fields instead of duplicating it.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sucharithmenon/wellfound-scraper/internal/models"
)

const (
	upsertCompanySQL = `
		INSERT INTO job_source_urls (
			url, source_type, company_name, company_identifier, status,
			last_scraped, total_jobs_found, metadata, created_at, updated_at
		) VALUES ($1, $2, $3, $4, 'active', $5, $6, $7::jsonb, NOW(), NOW())
		ON CONFLICT (url) DO UPDATE SET
			company_name = EXCLUDED.company_name,
			total_jobs_found = EXCLUDED.total_jobs_found,
			metadata = EXCLUDED.metadata,
			last_scraped = EXCLUDED.last_scraped,
			updated_at = NOW()`

	upsertJobSQL = `
		INSERT INTO ats_job_postings (
			ats_job_id, ats_type, title, description, location, job_type,
			company_name, company_identifier, apply_url, salary_min, salary_max,
			salary_currency, skills, experience_level, remote_ok,
			posted_date, extraction_timestamp, extraction_success_score,
			quality_grade, source_url, native_data, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13::jsonb,
			$14, $15, $16, $17, $18, $19, $20, $21::jsonb, NOW(), NOW())
		ON CONFLICT (ats_job_id, ats_type) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			location = EXCLUDED.location,
			salary_min = EXCLUDED.salary_min,
			salary_max = EXCLUDED.salary_max,
			extraction_success_score = EXCLUDED.extraction_success_score,
			quality_grade = EXCLUDED.quality_grade,
			native_data = EXCLUDED.native_data,
			updated_at = NOW()`

	listCompaniesSQL = `
		SELECT url, company_name, company_identifier, total_jobs_found
		FROM job_source_urls
		WHERE source_type = $1
		ORDER BY total_jobs_found DESC NULLS LAST
		LIMIT $2`
)

type Store struct {
	pool *pgxpool.Pool
}

func Connect(ctx context.Context, databaseURL string) (*Store, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("store: parse database url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("store: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("store: ping: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() { s.pool.Close() }

// Ping verifies the connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// SaveCompanies upserts a batch and returns how many rows were written.
// A saved count below len(companies) is reported, not retried.
func (s *Store) SaveCompanies(ctx context.Context, companies []models.Company) (int, error) {
	batch := &pgx.Batch{}
	queued := 0
	for i := range companies {
		company := &companies[i]
		if company.JobsURL == "" {
			continue
		}

		metadata, err := companyMetadata(company)
		if err != nil {
			continue
		}
		batch.Queue(upsertCompanySQL,
			company.JobsURL, models.SourceType, company.Name, company.Slug,
			company.ExtractedAt, company.TotalJobs, metadata)
		queued++
	}

	return s.sendBatch(ctx, batch, queued)
}

// SaveJobs upserts a batch of postings and returns the written count.
func (s *Store) SaveJobs(ctx context.Context, jobs []models.Job) (int, error) {
	batch := &pgx.Batch{}
	queued := 0
	for i := range jobs {
		job := &jobs[i]
		if job.ID == "" {
			continue
		}

		skills, err := nullableJSON(job.Skills)
		if err != nil {
			continue
		}
		nativeData, err := nullableJSON(job.NativeData)
		if err != nil {
			continue
		}

		remote := false
		if job.RemoteOK != nil {
			remote = *job.RemoteOK
		}

		batch.Queue(upsertJobSQL,
			job.ID, models.SourceType, job.Title, job.Description, job.Location,
			job.JobType, job.CompanyName, job.CompanySlug, job.ApplyURL,
			job.SalaryMin, job.SalaryMax, job.SalaryCurrency, skills,
			job.ExperienceLevel, remote, job.PostedDate, job.ExtractedAt,
			job.Score, job.Grade, job.SourceURL, nativeData)
		queued++
	}

	return s.sendBatch(ctx, batch, queued)
}

func (s *Store) sendBatch(ctx context.Context, batch *pgx.Batch, queued int) (int, error) {
	if queued == 0 {
		return 0, nil
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()

	saved := 0
	for i := 0; i < queued; i++ {
		tag, err := results.Exec()
		if err != nil {
			return saved, fmt.Errorf("store: batch item %d: %w", i, err)
		}
		if tag.RowsAffected() > 0 {
			saved++
		}
	}
	return saved, nil
}

// CompanyJobURLs returns stored company jobs URLs ordered by job count,
// for re-scraping from the database.
func (s *Store) CompanyJobURLs(ctx context.Context, limit int) ([]models.Company, error) {
	rows, err := s.pool.Query(ctx, listCompaniesSQL, models.SourceType, limit)
	if err != nil {
		return nil, fmt.Errorf("store: list companies: %w", err)
	}
	defer rows.Close()

	var companies []models.Company
	for rows.Next() {
		var (
			company models.Company
			slug    *string
		)
		if err := rows.Scan(&company.JobsURL, &company.Name, &slug, &company.TotalJobs); err != nil {
			return nil, fmt.Errorf("store: scan company: %w", err)
		}
		if slug != nil {
			company.SetSlug(*slug)
		}
		companies = append(companies, company)
	}
	return companies, rows.Err()
}

// Stats summarizes what has been stored so far.
type Stats struct {
	TotalCompanies  int
	TotalJobs       int
	AverageQuality  float64
	QualityRecorded bool
}

func (s *Store) Stats(ctx context.Context) (Stats, error) {
	var stats Stats

	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM job_source_urls WHERE source_type = $1`,
		models.SourceType).Scan(&stats.TotalCompanies)
	if err != nil {
		return stats, fmt.Errorf("store: count companies: %w", err)
	}

	err = s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM ats_job_postings WHERE ats_type = $1`,
		models.SourceType).Scan(&stats.TotalJobs)
	if err != nil {
		return stats, fmt.Errorf("store: count jobs: %w", err)
	}

	var avg *float64
	err = s.pool.QueryRow(ctx,
		`SELECT AVG(extraction_success_score) FROM ats_job_postings
		 WHERE ats_type = $1 AND extraction_success_score IS NOT NULL`,
		models.SourceType).Scan(&avg)
	if err != nil {
		return stats, fmt.Errorf("store: average quality: %w", err)
	}
	if avg != nil {
		stats.AverageQuality = *avg
		stats.QualityRecorded = true
	}

	return stats, nil
}

// companyMetadata serializes the descriptive company fields into the
// jsonb metadata column.
func companyMetadata(company *models.Company) (string, error) {
	metadata := map[string]any{
		"id":          company.ID,
		"slug":        company.Slug,
		"logo":        company.Logo,
		"headline":    company.Headline,
		"description": company.Description,
		"location":    company.Location,
		"companySize": company.CompanySize,
		"companyType": company.CompanyType,
		"funding":     company.Funding,
		"website":     company.Website,
		"twitter":     company.Twitter,
		"linkedin":    company.LinkedIn,
		"badges":      company.Badges,
		"foundedYear": company.FoundedYear,
		"industries":  company.Industries,
		"extractedAt": company.ExtractedAt,
	}
	data, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func nullableJSON(value any) (*string, error) {
	switch v := value.(type) {
	case []string:
		if v == nil {
			return nil, nil
		}
	case map[string]any:
		if v == nil {
			return nil, nil
		}
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	encoded := string(data)
	return &encoded, nil
}
