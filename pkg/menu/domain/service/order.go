package service

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
)

var ErrAccessNotGranted = errors.New("access has not been granted to this session")

type Event interface {
	Type() string
}

type EventDispatcher interface {
	Dispatch(event Event) error
}

// OrderService runs the visitor actions against a session owned by the caller.
type OrderService interface {
	Login(session *model.Session, username string, age *int) error
	AddToCart(session *model.Session, itemID int) (model.CatalogItem, error)
	ClearCart(session *model.Session) error
	Purchase(session *model.Session) (*model.Receipt, error)
}

func NewOrderService(catalog *model.Catalog, dispatcher EventDispatcher) OrderService {
	return &orderService{catalog: catalog, dispatcher: dispatcher}
}

type orderService struct {
	catalog    *model.Catalog
	dispatcher EventDispatcher
}

func (s *orderService) Login(session *model.Session, username string, age *int) error {
	if err := session.AttemptLogin(username, age); err != nil {
		_ = s.dispatcher.Dispatch(model.AccessDenied{SessionID: session.ID, Reason: err.Error()})
		return err
	}

	_ = s.dispatcher.Dispatch(model.AccessGranted{SessionID: session.ID, Username: session.Username})
	return nil
}

func (s *orderService) AddToCart(session *model.Session, itemID int) (model.CatalogItem, error) {
	if !session.AccessGranted {
		return model.CatalogItem{}, ErrAccessNotGranted
	}

	item, err := s.catalog.Find(itemID)
	if err != nil {
		return model.CatalogItem{}, err
	}

	session.Cart.Add(item)

	_ = s.dispatcher.Dispatch(model.ItemAddedToCart{SessionID: session.ID, ItemID: item.ID, PriceCents: item.PriceCents})
	return item, nil
}

func (s *orderService) ClearCart(session *model.Session) error {
	if !session.AccessGranted {
		return ErrAccessNotGranted
	}

	removed := session.Cart.Len()
	session.Cart.Clear()

	_ = s.dispatcher.Dispatch(model.CartCleared{SessionID: session.ID, RemovedLines: removed})
	return nil
}

// Purchase never fails for an authenticated session: the receipt is taken from the
// current cart, then the cart and the login are reset together.
func (s *orderService) Purchase(session *model.Session) (*model.Receipt, error) {
	if !session.AccessGranted {
		return nil, ErrAccessNotGranted
	}

	receipt := &model.Receipt{
		ID:          uuid.New(),
		SessionID:   session.ID,
		Username:    session.Username,
		Lines:       session.Cart.Lines(),
		TotalCents:  session.Cart.Total(),
		PurchasedAt: time.Now().UTC(),
	}

	session.Reset()

	_ = s.dispatcher.Dispatch(model.PurchaseCompleted{Receipt: *receipt})
	return receipt, nil
}
