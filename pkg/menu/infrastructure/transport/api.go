package transport

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/service"
)

type loginRequest struct {
	Username string `json:"username"`
	Age      *int   `json:"age"`
}

type cartResponse struct {
	Username      string     `json:"username"`
	AccessGranted bool       `json:"accessGranted"`
	Error         string     `json:"error,omitempty"`
	Items         []ItemView `json:"items"`
	Total         string     `json:"total"`
	TotalCents    int64      `json:"totalCents"`
}

type purchaseResponse struct {
	ReceiptID    string `json:"receiptId"`
	Total        string `json:"total"`
	TotalCents   int64  `json:"totalCents"`
	Confirmation string `json:"confirmation"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) getCatalog(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, itemViews(h.catalog.Items()))
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	var response cartResponse
	err := h.withSession(w, r, func(s *model.Session) error {
		response = newCartResponse(s)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "malformed request body"})
		return
	}

	var response cartResponse
	err := h.withSession(w, r, func(s *model.Session) error {
		err := h.orderService.Login(s, request.Username, request.Age)
		response = newCartResponse(s)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["itemID"])
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid item id"})
		return
	}

	var response cartResponse
	err = h.withSession(w, r, func(s *model.Session) error {
		if _, err := h.orderService.AddToCart(s, itemID); err != nil {
			return err
		}
		response = newCartResponse(s)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	var response cartResponse
	err := h.withSession(w, r, func(s *model.Session) error {
		if err := h.orderService.ClearCart(s); err != nil {
			return err
		}
		response = newCartResponse(s)
		return nil
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) purchase(w http.ResponseWriter, r *http.Request) {
	var receipt *model.Receipt
	err := h.withSession(w, r, func(s *model.Session) error {
		var err error
		receipt, err = h.orderService.Purchase(s)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, purchaseResponse{
		ReceiptID:    receipt.ID.String(),
		Total:        model.FormatPrice(receipt.TotalCents),
		TotalCents:   receipt.TotalCents,
		Confirmation: receipt.Confirmation(),
	})
}

func newCartResponse(s *model.Session) cartResponse {
	return cartResponse{
		Username:      s.Username,
		AccessGranted: s.AccessGranted,
		Error:         s.Error,
		Items:         itemViews(s.Cart.Lines()),
		Total:         model.FormatPrice(s.Cart.Total()),
		TotalCents:    s.Cart.Total(),
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrEmptyUsername), errors.Is(err, model.ErrUnderage):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: model.LoginErrorMessage(err)})
	case errors.Is(err, service.ErrAccessNotGranted):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: err.Error()})
	case errors.Is(err, model.ErrCatalogItemNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		log.WithError(err).Error("Request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	b, err := json.Marshal(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err = w.Write(b); err != nil {
		log.WithField("err", err).Error("write response status")
	}
}
