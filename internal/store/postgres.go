package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore reads buyer profiles from the buyer_profiles table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const buyerColumns = `name, focus, sentiment,
	price, quality, delivery_time, payment_terms, carbon_footprint,
	incoterms`

func scanBuyer(row pgx.Row) (*Buyer, error) {
	b := &Buyer{}
	var paymentTerms *float64
	err := row.Scan(
		&b.Name, &b.Focus, &b.Sentiment,
		&b.Baseline.Price, &b.Baseline.Quality, &b.Baseline.DeliveryTime, &paymentTerms, &b.Baseline.CarbonFootprint,
		&b.Incoterms,
	)
	if err != nil {
		return nil, err
	}
	b.Baseline.PaymentTerms = paymentTermsOrDefault(paymentTerms)
	return b, nil
}

func (s *PostgresStore) GetBuyer(ctx context.Context, name string) (*Buyer, error) {
	b, err := scanBuyer(s.pool.QueryRow(ctx, `
		SELECT `+buyerColumns+`
		FROM buyer_profiles WHERE lower(name) = lower($1)`, name,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get buyer %q: %w", name, err)
	}
	return b, nil
}

func (s *PostgresStore) ListBuyers(ctx context.Context) ([]*Buyer, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+buyerColumns+`
		FROM buyer_profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	defer rows.Close()

	var buyers []*Buyer
	for rows.Next() {
		b, err := scanBuyer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan buyer: %w", err)
		}
		buyers = append(buyers, b)
	}
	return buyers, rows.Err()
}

// UpsertBuyer writes a profile into the directory. Only the seeding tool
// calls it; the service itself never writes.
func (s *PostgresStore) UpsertBuyer(ctx context.Context, b *Buyer) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO buyer_profiles (`+buyerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (name) DO UPDATE SET
			focus = EXCLUDED.focus,
			sentiment = EXCLUDED.sentiment,
			price = EXCLUDED.price,
			quality = EXCLUDED.quality,
			delivery_time = EXCLUDED.delivery_time,
			payment_terms = EXCLUDED.payment_terms,
			carbon_footprint = EXCLUDED.carbon_footprint,
			incoterms = EXCLUDED.incoterms`,
		b.Name, b.Focus, b.Sentiment,
		b.Baseline.Price, b.Baseline.Quality, b.Baseline.DeliveryTime, b.Baseline.PaymentTerms, b.Baseline.CarbonFootprint,
		b.Incoterms,
	)
	if err != nil {
		return fmt.Errorf("upsert buyer %q: %w", b.Name, err)
	}
	return nil
}
