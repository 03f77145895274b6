package transport

import (
	"embed"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/service"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/metrics"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/session"
)

const (
	sessionCookieName = "menu_session"
	assetsPrefix      = "/immagini/"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type Handler struct {
	orderService service.OrderService
	catalog      *model.Catalog
	sessions     *session.Store
}

type ItemView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	ImageURL string `json:"image"`
}

type PageData struct {
	Username      string
	Age           string
	AccessGranted bool
	Error         string
	Notice        string
	Products      []ItemView
	Cart          []ItemView
	Total         string
}

func Router(orderService service.OrderService, catalog *model.Catalog, sessions *session.Store, assetsDir string) http.Handler {
	handler := &Handler{
		orderService: orderService,
		catalog:      catalog,
		sessions:     sessions,
	}

	r := mux.NewRouter()
	r.Use(metrics.Middleware)
	r.NotFoundHandler = metrics.Middleware(http.NotFoundHandler())
	r.MethodNotAllowedHandler = metrics.Middleware(http.HandlerFunc(methodNotAllowed))

	r.HandleFunc("/", handler.indexPage).Methods(http.MethodGet)
	r.HandleFunc("/login", handler.loginForm).Methods(http.MethodPost)
	r.HandleFunc("/cart/items/{itemID:[0-9]+}", handler.addToCartForm).Methods(http.MethodPost)
	r.HandleFunc("/cart/clear", handler.clearCartForm).Methods(http.MethodPost)
	r.HandleFunc("/purchase", handler.purchaseForm).Methods(http.MethodPost)

	s := r.PathPrefix("/api/v1").Subrouter()
	s.HandleFunc("/catalog", handler.getCatalog).Methods(http.MethodGet)
	s.HandleFunc("/cart", handler.getCart).Methods(http.MethodGet)
	s.HandleFunc("/login", handler.login).Methods(http.MethodPost)
	s.HandleFunc("/cart/items/{itemID:[0-9]+}", handler.addToCart).Methods(http.MethodPost)
	s.HandleFunc("/cart/clear", handler.clearCart).Methods(http.MethodPost)
	s.HandleFunc("/purchase", handler.purchase).Methods(http.MethodPost)

	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	r.PathPrefix(assetsPrefix).Handler(http.StripPrefix(assetsPrefix, http.FileServer(http.Dir(assetsDir))))

	return logMiddleware(r)
}

func (h *Handler) indexPage(w http.ResponseWriter, r *http.Request) {
	var data PageData
	err := h.withSession(w, r, func(s *model.Session) error {
		data = PageData{
			Username:      s.Username,
			AccessGranted: s.AccessGranted,
			Error:         s.Error,
			Notice:        s.Notice,
			Products:      itemViews(h.catalog.Items()),
			Cart:          itemViews(s.Cart.Lines()),
			Total:         model.FormatPrice(s.Cart.Total()),
		}
		if s.Age != nil {
			data.Age = strconv.Itoa(*s.Age)
		}
		s.Notice = ""
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Could not load session")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplate.Execute(w, data); err != nil {
		log.WithError(err).Error("Could not render page")
	}
}

func (h *Handler) loginForm(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	age := parseAge(r.FormValue("age"))

	err := h.withSession(w, r, func(s *model.Session) error {
		return h.orderService.Login(s, username, age)
	})
	h.redirectHome(w, r, err)
}

func (h *Handler) addToCartForm(w http.ResponseWriter, r *http.Request) {
	itemID, err := strconv.Atoi(mux.Vars(r)["itemID"])
	if err != nil {
		http.Error(w, "Invalid item", http.StatusBadRequest)
		return
	}

	err = h.withSession(w, r, func(s *model.Session) error {
		_, err := h.orderService.AddToCart(s, itemID)
		return err
	})
	if errors.Is(err, model.ErrCatalogItemNotFound) {
		http.Error(w, "Item not found", http.StatusNotFound)
		return
	}
	h.redirectHome(w, r, err)
}

func (h *Handler) clearCartForm(w http.ResponseWriter, r *http.Request) {
	err := h.withSession(w, r, h.orderService.ClearCart)
	h.redirectHome(w, r, err)
}

func (h *Handler) purchaseForm(w http.ResponseWriter, r *http.Request) {
	err := h.withSession(w, r, func(s *model.Session) error {
		receipt, err := h.orderService.Purchase(s)
		if err != nil {
			return err
		}
		s.Notice = receipt.Confirmation()
		return nil
	})
	h.redirectHome(w, r, err)
}

// redirectHome sends the browser back to the page. Validation and access errors are
// already reflected in the session, anything else is a server failure.
func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil && !isUserError(err) {
		log.WithError(err).Error("Request failed")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// withSession runs fn on the visitor's session. A missing cookie, or one pointing at a
// session the store no longer holds, starts a new session instead.
func (h *Handler) withSession(w http.ResponseWriter, r *http.Request, fn func(s *model.Session) error) error {
	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if id, err := uuid.Parse(cookie.Value); err == nil {
			err = h.sessions.Do(id, fn)
			if !errors.Is(err, session.ErrSessionNotFound) {
				return err
			}
		}
	}
	return h.sessions.Do(h.startSession(w), fn)
}

func (h *Handler) startSession(w http.ResponseWriter) uuid.UUID {
	id := h.sessions.Create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    id.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	log.WithField("session", id).Debug("Started new session")
	return id
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
}

func isUserError(err error) bool {
	return errors.Is(err, model.ErrEmptyUsername) ||
		errors.Is(err, model.ErrUnderage) ||
		errors.Is(err, service.ErrAccessNotGranted)
}

func parseAge(value string) *int {
	age, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return nil
	}
	return &age
}

func itemViews(items []model.CatalogItem) []ItemView {
	views := make([]ItemView, 0, len(items))
	for _, item := range items {
		views = append(views, ItemView{
			ID:       item.ID,
			Name:     item.Name,
			Price:    model.FormatPrice(item.PriceCents),
			ImageURL: model.AssetURL(item.Image),
		})
	}
	return views
}

func logMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.WithFields(log.Fields{
			"method":     r.Method,
			"url":        r.URL,
			"remoteAddr": r.RemoteAddr,
			"userAgent":  r.UserAgent(),
		}).Info("got a new request")
		h.ServeHTTP(w, r)
	})
}
