package schemes

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"sahayak-backend/internal/models"
)

// PostgresSource reads schemes from a locally mirrored registry table. Used
// by deployments that sync the registry into Postgres instead of hitting the
// remote endpoint on every chat.
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(pool *pgxpool.Pool) *PostgresSource {
	return &PostgresSource{pool: pool}
}

func (s *PostgresSource) Schemes(ctx context.Context) ([]models.Scheme, error) {
	query := `SELECT id, name, description, min_age, max_age,
		COALESCE(application_deadline, ''), COALESCE(publish_date, ''),
		required_disability_percentage, applicable_disability_types, COALESCE(publisher, '')
		FROM schemes ORDER BY publish_date DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query schemes: %w", err)
	}
	defer rows.Close()

	var out []models.Scheme
	for rows.Next() {
		var sc models.Scheme
		err := rows.Scan(
			&sc.ID, &sc.Name, &sc.Description, &sc.MinAge, &sc.MaxAge,
			&sc.ApplicationDeadline, &sc.PublishDate,
			&sc.RequiredDisabilityPercentage, &sc.ApplicableDisabilityTypes, &sc.Publisher,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheme row: %w", err)
		}
		if sc.MaxAge == 0 {
			sc.MaxAge = 100
		}
		out = append(out, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read scheme rows: %w", err)
	}
	return out, nil
}
