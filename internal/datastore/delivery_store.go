package datastore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aleister1102/discordmsg/internal/models"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

const defaultListLimit = 20

// DeliveryStore journals message deliveries in a SQLite database.
type DeliveryStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewDeliveryStore opens the database at dataSourceName, creating its directory and schema.
func NewDeliveryStore(dataSourceName string, logger zerolog.Logger) (*DeliveryStore, error) {
	logger = logger.With().Str("module", "DeliveryStore").Logger()
	logger.Debug().Str("db_path", dataSourceName).Msg("Initializing delivery database connection")

	dbDir := filepath.Dir(dataSourceName)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		logger.Error().Err(err).Str("directory", dbDir).Msg("Failed to create delivery database directory")
		return nil, fmt.Errorf("failed to create delivery database directory %s: %w", dbDir, err)
	}

	dbInstance, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		logger.Error().Err(err).Str("db_path", dataSourceName).Msg("Failed to open delivery database")
		return nil, fmt.Errorf("sql.Open failed for %s: %w", dataSourceName, err)
	}
	// SQLite allows a single writer.
	dbInstance.SetMaxOpenConns(1)

	store := &DeliveryStore{
		db:     dbInstance,
		logger: logger,
	}

	if err := store.InitSchema(context.Background()); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *DeliveryStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// InitSchema creates the deliveries table if it doesn't already exist.
func (s *DeliveryStore) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS deliveries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		transport TEXT NOT NULL,
		destination TEXT NOT NULL,
		payload TEXT NOT NULL,
		status_code INTEGER NOT NULL DEFAULT 0,
		error TEXT,
		sent_at TEXT NOT NULL
	);
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		s.logger.Error().Err(err).Msg("Failed to initialize schema")
		return err
	}
	s.logger.Debug().Msg("Schema initialized (deliveries table ensured)")
	return nil
}

// RecordDelivery inserts a delivery and returns its row id.
func (s *DeliveryStore) RecordDelivery(ctx context.Context, delivery models.Delivery) (int64, error) {
	if delivery.SentAt.IsZero() {
		delivery.SentAt = time.Now()
	}

	query := `INSERT INTO deliveries (transport, destination, payload, status_code, error, sent_at) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := s.db.ExecContext(ctx, query,
		string(delivery.Transport),
		delivery.Destination,
		delivery.Payload,
		delivery.StatusCode,
		sql.NullString{String: delivery.Error, Valid: delivery.Error != ""},
		delivery.SentAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		s.logger.Error().Err(err).Msg("Failed to record delivery")
		return 0, fmt.Errorf("failed to insert delivery record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get last insert ID: %w", err)
	}
	s.logger.Debug().Int64("db_id", id).Str("transport", string(delivery.Transport)).Int("status_code", delivery.StatusCode).Msg("Recorded delivery")
	return id, nil
}

// ListRecent returns up to limit deliveries, newest first. A non-positive limit uses the default.
func (s *DeliveryStore) ListRecent(ctx context.Context, limit int) ([]models.Delivery, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query := `SELECT id, transport, destination, payload, status_code, error, sent_at FROM deliveries ORDER BY id DESC LIMIT ?`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query deliveries: %w", err)
	}
	defer rows.Close()

	var deliveries []models.Delivery
	for rows.Next() {
		var (
			delivery  models.Delivery
			transport string
			errText   sql.NullString
			sentAt    string
		)
		if err := rows.Scan(&delivery.ID, &transport, &delivery.Destination, &delivery.Payload, &delivery.StatusCode, &errText, &sentAt); err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}

		delivery.Transport = models.DeliveryTransport(transport)
		delivery.Error = errText.String
		if delivery.SentAt, err = time.Parse(time.RFC3339Nano, sentAt); err != nil {
			return nil, fmt.Errorf("failed to parse sent_at of delivery %d: %w", delivery.ID, err)
		}
		deliveries = append(deliveries, delivery)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}
	return deliveries, nil
}
