package mysql

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
)

type receiptRow struct {
	ReceiptID   string    `db:"receipt_id"`
	SessionID   string    `db:"session_id"`
	Username    string    `db:"username"`
	TotalCents  int64     `db:"total_cents"`
	PurchasedAt time.Time `db:"purchased_at"`
}

type receiptLineRow struct {
	ItemID     int    `db:"item_id"`
	Name       string `db:"name"`
	PriceCents int64  `db:"price_cents"`
	Image      string `db:"image"`
}

func NewReceiptRepository(db *sqlx.DB) model.ReceiptRepository {
	return &receiptRepository{db: db}
}

type receiptRepository struct {
	db *sqlx.DB
}

func (r *receiptRepository) Store(receipt *model.Receipt) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return errors.WithStack(err)
	}

	_, err = tx.Exec(
		"INSERT INTO receipt (receipt_id, session_id, username, total_cents, purchased_at) VALUES (?, ?, ?, ?, ?)",
		receipt.ID.String(), receipt.SessionID.String(), receipt.Username, receipt.TotalCents, receipt.PurchasedAt,
	)
	if err != nil {
		_ = tx.Rollback()
		return errors.Wrapf(err, "failed to store receipt %s", receipt.ID)
	}

	for i, line := range receipt.Lines {
		_, err = tx.Exec(
			"INSERT INTO receipt_line (receipt_id, position, item_id, name, price_cents, image) VALUES (?, ?, ?, ?, ?, ?)",
			receipt.ID.String(), i, line.ID, line.Name, line.PriceCents, line.Image,
		)
		if err != nil {
			_ = tx.Rollback()
			return errors.Wrapf(err, "failed to store line %d of receipt %s", i, receipt.ID)
		}
	}

	return errors.WithStack(tx.Commit())
}

func (r *receiptRepository) Find(id uuid.UUID) (*model.Receipt, error) {
	var row receiptRow
	err := r.db.Get(&row, "SELECT receipt_id, session_id, username, total_cents, purchased_at FROM receipt WHERE receipt_id = ?", id.String())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, model.ErrReceiptNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	var lines []receiptLineRow
	err = r.db.Select(&lines, "SELECT item_id, name, price_cents, image FROM receipt_line WHERE receipt_id = ? ORDER BY position", id.String())
	if err != nil {
		return nil, errors.WithStack(err)
	}

	sessionID, err := uuid.Parse(row.SessionID)
	if err != nil {
		return nil, errors.Wrapf(err, "receipt %s has a malformed session id", id)
	}

	receipt := &model.Receipt{
		ID:          id,
		SessionID:   sessionID,
		Username:    row.Username,
		TotalCents:  row.TotalCents,
		PurchasedAt: row.PurchasedAt,
		Lines:       make([]model.CatalogItem, 0, len(lines)),
	}
	for _, line := range lines {
		receipt.Lines = append(receipt.Lines, model.CatalogItem{
			ID:         line.ItemID,
			Name:       line.Name,
			PriceCents: line.PriceCents,
			Image:      line.Image,
		})
	}
	return receipt, nil
}
