package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/webaplicationjsx/warehouse-backend/internal/database"
	"github.com/webaplicationjsx/warehouse-backend/internal/model"
)

// RecordRepository is an interface that defines the methods required for schedule, shipment and miscellaneous records.
type RecordRepository interface {
	// AddRecord stores data in the table of the category and returns the stored row.
	AddRecord(ctx context.Context, category model.Category, data json.RawMessage) (record *model.Record, err error)

	// GetAllRecords retrieves every record of the category, newest first.
	GetAllRecords(ctx context.Context, category model.Category) (records []*model.Record, err error)
}

// RecordRepositoryImpl implements the RecordRepository interface.
type RecordRepositoryImpl struct {
	db database.Database
}

// NewRecordRepository creates a new RecordRepositoryImpl instance with the provided database.
func NewRecordRepository(db database.Database) *RecordRepositoryImpl {
	return &RecordRepositoryImpl{
		db: db,
	}
}

func (rr *RecordRepositoryImpl) AddRecord(ctx context.Context, category model.Category, data json.RawMessage) (*model.Record, error) {
	table, err := category.Table()
	if err != nil {
		return nil, fmt.Errorf("failed to add %s record: %w", category, err)
	}

	query := fmt.Sprintf("INSERT INTO %s (data) VALUES ($1::jsonb) RETURNING id, data, created_at", table)

	row, err := rr.db.QueryRowContext(ctx, query, string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to add %s record: %w", category, err)
	}

	var (
		record model.Record
		raw    []byte
	)
	if err := row.Scan(&record.ID, &raw, &record.CreatedAt); err != nil {
		return nil, fmt.Errorf("failed to add %s record: %w", category, err)
	}
	record.Data = raw

	return &record, nil
}

func (rr *RecordRepositoryImpl) GetAllRecords(ctx context.Context, category model.Category) ([]*model.Record, error) {
	table, err := category.Table()
	if err != nil {
		return nil, fmt.Errorf("failed to get all %s records: %w", category, err)
	}

	query := fmt.Sprintf("SELECT id, data, created_at FROM %s ORDER BY created_at DESC, id DESC", table)

	rows, err := rr.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all %s records: %w", category, err)
	}
	defer rows.Close()

	records := make([]*model.Record, 0)
	for rows.Next() {
		var (
			record model.Record
			raw    []byte
		)
		if err := rows.Scan(&record.ID, &raw, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan %s row: %w", category, err)
		}
		record.Data = raw
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error in result set: %w", err)
	}

	return records, nil
}
