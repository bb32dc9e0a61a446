package storage

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"strings"

	"foodfinder/search-svc/internal/domain"
	"foodfinder/search-svc/internal/identity"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/*.sql
var Migrations embed.FS

const (
	MigrationsTable   = "schema_migrations_search"
	maxUpsertAttempts = 3
	uniqueViolation   = "23505"
)

const restaurantColumns = `r.id, COALESCE(r.external_id, ''), r.name, r.address, r.latitude, r.longitude,
	COALESCE(r.cuisine_type, 'Various'), COALESCE(r.phone_number, ''), COALESCE(r.opening_hours, ''),
	COALESCE(r.rating, 4.0), COALESCE(r.price_range, '$$'), COALESCE(r.source, 'local_db'),
	r.created_at, r.updated_at`

type PostgresRepository struct {
	DB       *sql.DB
	resolver *identity.Resolver
}

func NewPostgresRepository(db *sql.DB, resolver *identity.Resolver) *PostgresRepository {
	if resolver == nil {
		resolver = identity.NewResolver(identity.DefaultEpsilon)
	}
	return &PostgresRepository{DB: db, resolver: resolver}
}

// FindByDishOrCuisine returns every stored restaurant that has a dish containing
// term or whose cuisine contains term. Matching ignores case. No distance filter
// is applied here.
func (r *PostgresRepository) FindByDishOrCuisine(ctx context.Context, term string) ([]domain.LocalMatch, error) {
	pattern := "%" + escapeLike(strings.TrimSpace(term)) + "%"

	rows, err := r.DB.QueryContext(ctx, `
		SELECT DISTINCT ON (r.id) `+restaurantColumns+`, COALESCE(d.dish_name, '')
		FROM restaurants r
		LEFT JOIN restaurant_dishes d ON d.restaurant_id = r.id AND d.dish_name ILIKE $1
		WHERE d.id IS NOT NULL OR r.cuisine_type ILIKE $1
		ORDER BY r.id, d.confidence_score DESC NULLS LAST`, pattern)
	if err != nil {
		return nil, fmt.Errorf("query restaurants by dish: %w", err)
	}
	defer rows.Close()

	var matches []domain.LocalMatch
	for rows.Next() {
		var match domain.LocalMatch
		dest := append(restaurantDest(&match.Restaurant), &match.DishName)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		matches = append(matches, match)
	}
	return matches, rows.Err()
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]domain.Restaurant, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants r ORDER BY r.created_at`)
	if err != nil {
		return nil, fmt.Errorf("query restaurants: %w", err)
	}
	defer rows.Close()

	var restaurants []domain.Restaurant
	for rows.Next() {
		var rest domain.Restaurant
		if err := rows.Scan(restaurantDest(&rest)...); err != nil {
			return nil, fmt.Errorf("scan restaurant: %w", err)
		}
		restaurants = append(restaurants, rest)
	}
	return restaurants, rows.Err()
}

func (r *PostgresRepository) GetRestaurant(ctx context.Context, id string) (*domain.Restaurant, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrRestaurantNotFound
	}

	rest, err := scanRestaurant(r.DB.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants r WHERE r.id = $1`, id))
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, domain.ErrRestaurantNotFound
	}
	return rest, nil
}

func (r *PostgresRepository) ListDishes(ctx context.Context, restaurantID string) ([]domain.DishAssociation, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, restaurant_id, dish_name, COALESCE(confidence_score, 0.8), created_at
		FROM restaurant_dishes
		WHERE restaurant_id = $1
		ORDER BY confidence_score DESC, dish_name`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("query dishes: %w", err)
	}
	defer rows.Close()

	dishes := []domain.DishAssociation{}
	for rows.Next() {
		var dish domain.DishAssociation
		if err := rows.Scan(&dish.ID, &dish.RestaurantID, &dish.DishName, &dish.Confidence, &dish.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan dish: %w", err)
		}
		dishes = append(dishes, dish)
	}
	return dishes, rows.Err()
}

func (r *PostgresRepository) Stats(ctx context.Context) (domain.StoreStats, error) {
	var stats domain.StoreStats
	err := r.DB.QueryRowContext(ctx, `
		SELECT (SELECT COUNT(*) FROM restaurants), (SELECT COUNT(*) FROM restaurant_dishes)`).
		Scan(&stats.Restaurants, &stats.DishAssociations)
	return stats, err
}

// Upsert stores the candidate under its resolved identity.
func (r *PostgresRepository) Upsert(ctx context.Context, candidate domain.Restaurant) (domain.UpsertResult, error) {
	return r.withRetry(ctx, func(tx *sql.Tx) (domain.UpsertResult, error) {
		return r.upsertTx(ctx, tx, candidate)
	})
}

func (r *PostgresRepository) EnsureDishAssociation(ctx context.Context, restaurantID, dish string, confidence float64) error {
	return ensureDish(ctx, r.DB, restaurantID, dish, confidence)
}

// SaveObservation upserts the candidate and links it to dish in one transaction.
func (r *PostgresRepository) SaveObservation(ctx context.Context, candidate domain.Restaurant, dish string, confidence float64) (domain.UpsertResult, error) {
	return r.withRetry(ctx, func(tx *sql.Tx) (domain.UpsertResult, error) {
		result, err := r.upsertTx(ctx, tx, candidate)
		if err != nil {
			return result, err
		}
		if err := ensureDish(ctx, tx, result.Restaurant.ID, dish, confidence); err != nil {
			return result, err
		}
		return result, nil
	})
}

// withRetry runs fn in a fresh transaction. A unique violation means a
// concurrent writer inserted the same restaurant first, so the whole
// resolution is repeated and ends up as an update.
func (r *PostgresRepository) withRetry(ctx context.Context, fn func(tx *sql.Tx) (domain.UpsertResult, error)) (domain.UpsertResult, error) {
	var lastErr error
	for attempt := 1; attempt <= maxUpsertAttempts; attempt++ {
		result, err := r.inTx(ctx, fn)
		if err == nil {
			return result, nil
		}
		if !isUniqueViolation(err) {
			return domain.UpsertResult{}, err
		}
		lastErr = err
		logrus.WithFields(logrus.Fields{"attempt": attempt, "error": err}).Debug("restaurant upsert conflict, retrying")
	}
	return domain.UpsertResult{}, fmt.Errorf("upsert restaurant after %d attempts: %w", maxUpsertAttempts, lastErr)
}

func (r *PostgresRepository) inTx(ctx context.Context, fn func(tx *sql.Tx) (domain.UpsertResult, error)) (domain.UpsertResult, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := fn(tx)
	if err != nil {
		return domain.UpsertResult{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.UpsertResult{}, fmt.Errorf("commit transaction: %w", err)
	}
	return result, nil
}

func (r *PostgresRepository) upsertTx(ctx context.Context, tx *sql.Tx, candidate domain.Restaurant) (domain.UpsertResult, error) {
	candidate = withDefaults(candidate)

	existing, err := r.resolver.Resolve(ctx, txLookup{tx: tx}, candidate)
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("resolve restaurant identity: %w", err)
	}

	if existing != nil {
		updated, err := scanRestaurant(tx.QueryRowContext(ctx, `
			UPDATE restaurants AS r
			SET rating = $2,
				price_range = $3,
				phone_number = COALESCE(NULLIF($4, ''), r.phone_number),
				opening_hours = COALESCE(NULLIF($5, ''), r.opening_hours),
				external_id = COALESCE(r.external_id, NULLIF($6, '')),
				updated_at = NOW()
			WHERE r.id = $1
			RETURNING `+restaurantColumns,
			existing.ID, candidate.Rating, candidate.PriceRange, candidate.Phone, candidate.Hours, candidate.ExternalID))
		if err != nil {
			return domain.UpsertResult{}, fmt.Errorf("update restaurant: %w", err)
		}
		if updated == nil {
			return domain.UpsertResult{}, fmt.Errorf("update restaurant %s: %w", existing.ID, sql.ErrNoRows)
		}
		return domain.UpsertResult{Restaurant: *updated}, nil
	}

	var created domain.Restaurant
	var inserted bool
	dest := append(restaurantDest(&created), &inserted)
	err = tx.QueryRowContext(ctx, `
		INSERT INTO restaurants AS r (id, external_id, name, address, latitude, longitude,
			cuisine_type, phone_number, opening_hours, rating, price_range, source)
		VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (external_id) DO UPDATE
		SET rating = EXCLUDED.rating,
			price_range = EXCLUDED.price_range,
			phone_number = COALESCE(NULLIF(EXCLUDED.phone_number, ''), r.phone_number),
			opening_hours = COALESCE(NULLIF(EXCLUDED.opening_hours, ''), r.opening_hours),
			updated_at = NOW()
		RETURNING `+restaurantColumns+`, (xmax = 0)`,
		uuid.NewString(), candidate.ExternalID, candidate.Name, candidate.Address,
		candidate.Location.Lat, candidate.Location.Lon, candidate.Cuisine, candidate.Phone,
		candidate.Hours, candidate.Rating, candidate.PriceRange, candidate.Source).
		Scan(dest...)
	if err != nil {
		return domain.UpsertResult{}, fmt.Errorf("insert restaurant: %w", err)
	}

	return domain.UpsertResult{Restaurant: created, Created: inserted}, nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func ensureDish(ctx context.Context, db execer, restaurantID, dish string, confidence float64) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO restaurant_dishes (id, restaurant_id, dish_name, confidence_score)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (restaurant_id, (LOWER(dish_name))) DO NOTHING`,
		uuid.NewString(), restaurantID, strings.TrimSpace(dish), confidence)
	if err != nil {
		return fmt.Errorf("ensure dish association: %w", err)
	}
	return nil
}

// txLookup answers identity queries inside the upsert transaction.
type txLookup struct {
	tx *sql.Tx
}

func (l txLookup) FindByExternalID(ctx context.Context, externalID string) (*domain.Restaurant, error) {
	return scanRestaurant(l.tx.QueryRowContext(ctx,
		`SELECT `+restaurantColumns+` FROM restaurants r WHERE r.external_id = $1`, externalID))
}

func (l txLookup) FindByNameNear(ctx context.Context, name string, at domain.Coordinates, epsilon float64) (*domain.Restaurant, error) {
	return scanRestaurant(l.tx.QueryRowContext(ctx, `
		SELECT `+restaurantColumns+`
		FROM restaurants r
		WHERE r.name = $1 AND ABS(r.latitude - $2) <= $4 AND ABS(r.longitude - $3) <= $4
		ORDER BY r.created_at
		LIMIT 1`, name, at.Lat, at.Lon, epsilon))
}

func restaurantDest(rest *domain.Restaurant) []interface{} {
	return []interface{}{
		&rest.ID, &rest.ExternalID, &rest.Name, &rest.Address, &rest.Location.Lat, &rest.Location.Lon,
		&rest.Cuisine, &rest.Phone, &rest.Hours, &rest.Rating, &rest.PriceRange, &rest.Source,
		&rest.CreatedAt, &rest.UpdatedAt,
	}
}

func scanRestaurant(row *sql.Row) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	if err := row.Scan(restaurantDest(&rest)...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rest, nil
}

func withDefaults(c domain.Restaurant) domain.Restaurant {
	if c.Cuisine == "" {
		c.Cuisine = "Various"
	}
	if c.Rating <= 0 {
		c.Rating = 4.0
	}
	if c.PriceRange == "" {
		c.PriceRange = "$$"
	}
	if c.Source == "" {
		c.Source = domain.SourceLocalDB
	}
	return c
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

func escapeLike(term string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
}
