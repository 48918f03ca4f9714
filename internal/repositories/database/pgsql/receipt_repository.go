package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/nemo/internal/core/domain"
	portsrepo "github.com/SscSPs/nemo/internal/core/ports/repositories"
	"github.com/SscSPs/nemo/internal/models"
	"github.com/SscSPs/nemo/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxReceiptRepository struct {
	BaseRepository
}

// newPgxReceiptRepository creates a repository for receipts.
func newPgxReceiptRepository(db DBTX) portsrepo.ReceiptRepositoryFacade {
	return &PgxReceiptRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.ReceiptRepositoryFacade = (*PgxReceiptRepository)(nil)

const receiptColumns = `id, transaction_id, image_jpeg, image_pdf, notes`

func scanReceipt(row pgx.Row) (models.Receipt, error) {
	var m models.Receipt
	err := row.Scan(&m.ID, &m.TransactionID, &m.ImageJPEG, &m.ImagePDF, &m.Notes)
	return m, err
}

// SaveReceipt stores the payloads byte for byte; nil payloads are stored as NULL.
func (r *PgxReceiptRepository) SaveReceipt(ctx context.Context, receipt domain.Receipt) (int64, error) {
	m := mapping.ToModelReceipt(receipt)
	var id int64
	err := r.DB.QueryRow(ctx, `
		INSERT INTO receipts (transaction_id, image_jpeg, image_pdf, notes)
		VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		m.TransactionID, m.ImageJPEG, m.ImagePDF, m.Notes,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save receipt for transaction %d: %w", m.TransactionID, translateError(err, models.ReceiptTable, m.TransactionID))
	}
	return id, nil
}

func (r *PgxReceiptRepository) UpdateReceipt(ctx context.Context, receipt domain.Receipt) error {
	m := mapping.ToModelReceipt(receipt)
	tag, err := r.DB.Exec(ctx, `
		UPDATE receipts SET transaction_id = $2, image_jpeg = $3, image_pdf = $4, notes = $5
		WHERE id = $1;`,
		m.ID, m.TransactionID, m.ImageJPEG, m.ImagePDF, m.Notes,
	)
	if err != nil {
		return fmt.Errorf("failed to update receipt %d: %w", m.ID, translateError(err, models.ReceiptTable, m.ID))
	}
	return notFoundIfNone(tag, models.ReceiptTable, m.ID)
}

func (r *PgxReceiptRepository) DeleteReceipt(ctx context.Context, receiptID int64) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM receipts WHERE id = $1;`, receiptID)
	if err != nil {
		return fmt.Errorf("failed to delete receipt %d: %w", receiptID, translateError(err, models.ReceiptTable, receiptID))
	}
	return notFoundIfNone(tag, models.ReceiptTable, receiptID)
}

func (r *PgxReceiptRepository) FindReceiptByID(ctx context.Context, receiptID int64) (*domain.Receipt, error) {
	m, err := scanReceipt(r.DB.QueryRow(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE id = $1;`, receiptID))
	if err != nil {
		return nil, fmt.Errorf("failed to find receipt %d: %w", receiptID, translateError(err, models.ReceiptTable, receiptID))
	}
	d := mapping.ToDomainReceipt(m)
	return &d, nil
}

func (r *PgxReceiptRepository) ListReceiptsByTransaction(ctx context.Context, transactionID int64) ([]domain.Receipt, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+receiptColumns+` FROM receipts WHERE transaction_id = $1 ORDER BY id;`, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query receipts for transaction %d: %w", transactionID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Receipt, error) {
		return scanReceipt(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan receipts: %w", err)
	}
	ds := make([]domain.Receipt, len(ms))
	for i, m := range ms {
		ds[i] = mapping.ToDomainReceipt(m)
	}
	return ds, nil
}
