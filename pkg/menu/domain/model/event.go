package model

import "github.com/google/uuid"

type AccessGranted struct {
	SessionID uuid.UUID
	Username  string
}

func (e AccessGranted) Type() string { return "AccessGranted" }

type AccessDenied struct {
	SessionID uuid.UUID
	Reason    string
}

func (e AccessDenied) Type() string { return "AccessDenied" }

type ItemAddedToCart struct {
	SessionID  uuid.UUID
	ItemID     int
	PriceCents int64
}

func (e ItemAddedToCart) Type() string { return "ItemAddedToCart" }

type CartCleared struct {
	SessionID    uuid.UUID
	RemovedLines int
}

func (e CartCleared) Type() string { return "CartCleared" }

type PurchaseCompleted struct {
	Receipt Receipt
}

func (e PurchaseCompleted) Type() string { return "PurchaseCompleted" }
