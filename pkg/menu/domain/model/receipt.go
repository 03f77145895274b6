package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var ErrReceiptNotFound = errors.New("receipt not found")

type Receipt struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	Username    string
	Lines       []CatalogItem
	TotalCents  int64
	PurchasedAt time.Time
}

func (r Receipt) Confirmation() string {
	return fmt.Sprintf("Acquisto effettuato ✅. Totale pagato: %s %s", FormatPrice(r.TotalCents), CurrencySuffix)
}

type ReceiptRepository interface {
	Store(receipt *Receipt) error
	Find(id uuid.UUID) (*Receipt, error)
}
