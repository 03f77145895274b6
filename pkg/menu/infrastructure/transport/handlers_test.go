package transport

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/model"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/domain/service"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/event"
	"github.com/shishalex/Lavoro-di-Gruppo-Tpsit/pkg/menu/infrastructure/session"
)

func setup(t *testing.T) (*httptest.Server, *http.Client, *session.Store) {
	catalog, err := model.NewCatalog([]model.CatalogItem{
		{ID: 1, Name: "Bucket Tenders + HotWings", PriceCents: 1800, Image: "/immagini/buchet_tender.png"},
		{ID: 2, Name: "Bucket Vegano", PriceCents: 1300, Image: "/immagini/buchet vegano.png"},
	})
	require.NoError(t, err)

	assetsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "buchet vegano.png"), []byte("png"), 0666))

	sessions := session.NewStore()
	orderService := service.NewOrderService(catalog, event.NewDispatcher())
	srv := httptest.NewServer(Router(orderService, catalog, sessions, assetsDir))
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return srv, &http.Client{Jar: jar}, sessions
}

func readBody(t *testing.T, resp *http.Response) string {
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestPageFlow(t *testing.T) {
	srv, client, sessions := setup(t)

	resp, err := client.Get(srv.URL + "/")
	require.NoError(t, err)
	page := readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, page, `action="/login"`)
	assert.NotContains(t, page, "Aggiungi")
	assert.Equal(t, 1, sessions.Len())

	resp, err = client.PostForm(srv.URL+"/login", url.Values{"username": {""}, "age": {"30"}})
	require.NoError(t, err)
	page = readBody(t, resp)
	assert.Contains(t, page, "Inserisci il nome utente.")

	resp, err = client.PostForm(srv.URL+"/login", url.Values{"username": {"Alice"}, "age": {"17"}})
	require.NoError(t, err)
	page = readBody(t, resp)
	assert.Contains(t, page, "Accesso negato: devi essere maggiorenne.")

	resp, err = client.PostForm(srv.URL+"/login", url.Values{"username": {"Alice"}, "age": {"18"}})
	require.NoError(t, err)
	page = readBody(t, resp)
	assert.Contains(t, page, "Aggiungi")
	assert.Contains(t, page, "Nessun prodotto nel carrello.")
	assert.Contains(t, page, `src="immagini/buchet%20vegano.png"`)

	resp, err = client.PostForm(srv.URL+"/cart/items/1", nil)
	require.NoError(t, err)
	readBody(t, resp)
	resp, err = client.PostForm(srv.URL+"/cart/items/2", nil)
	require.NoError(t, err)
	page = readBody(t, resp)
	assert.Contains(t, page, "Totale: 31.00 €")

	resp, err = client.PostForm(srv.URL+"/purchase", nil)
	require.NoError(t, err)
	page = readBody(t, resp)
	assert.Contains(t, page, "Totale pagato: 31.00 €")
	assert.Contains(t, page, `action="/login"`)

	resp, err = client.Get(srv.URL + "/")
	require.NoError(t, err)
	page = readBody(t, resp)
	assert.NotContains(t, page, "Totale pagato")
	assert.Equal(t, 1, sessions.Len())
}

func TestAddUnknownItem(t *testing.T) {
	srv, client, _ := setup(t)

	resp, err := client.PostForm(srv.URL+"/login", url.Values{"username": {"Alice"}, "age": {"18"}})
	require.NoError(t, err)
	readBody(t, resp)

	resp, err = client.PostForm(srv.URL+"/cart/items/6", nil)
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPIFlow(t *testing.T) {
	srv, client, _ := setup(t)

	resp, err := client.Get(srv.URL + "/api/v1/catalog")
	require.NoError(t, err)
	var items []ItemView
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "18.00", items[0].Price)
	assert.Equal(t, "immagini/buchet%20vegano.png", items[1].ImageURL)

	resp, err = client.Post(srv.URL+"/api/v1/cart/items/1", "application/json", nil)
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = client.Post(srv.URL+"/api/v1/login", "application/json", strings.NewReader(`{"username": "Alice"}`))
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "maggiorenne")

	resp, err = client.Post(srv.URL+"/api/v1/login", "application/json", strings.NewReader(`{"username": "Alice", "age": 18}`))
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	for _, id := range []string{"1", "2", "2"} {
		resp, err = client.Post(srv.URL+"/api/v1/cart/items/"+id, "application/json", nil)
		require.NoError(t, err)
		readBody(t, resp)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	resp, err = client.Get(srv.URL + "/api/v1/cart")
	require.NoError(t, err)
	var cart cartResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &cart))
	assert.Len(t, cart.Items, 3)
	assert.Equal(t, "44.00", cart.Total)
	assert.True(t, cart.AccessGranted)

	resp, err = client.Post(srv.URL+"/api/v1/cart/clear", "application/json", nil)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &cart))
	assert.Empty(t, cart.Items)
	assert.Equal(t, int64(0), cart.TotalCents)

	resp, err = client.Post(srv.URL+"/api/v1/cart/items/2", "application/json", nil)
	require.NoError(t, err)
	readBody(t, resp)

	resp, err = client.Post(srv.URL+"/api/v1/purchase", "application/json", nil)
	require.NoError(t, err)
	var purchase purchaseResponse
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &purchase))
	assert.Equal(t, "13.00", purchase.Total)
	assert.Contains(t, purchase.Confirmation, "13.00 €")

	resp, err = client.Get(srv.URL + "/api/v1/cart")
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), &cart))
	assert.False(t, cart.AccessGranted)
	assert.Empty(t, cart.Username)
}

func TestServesAssetsAndMetrics(t *testing.T) {
	srv, client, _ := setup(t)

	resp, err := client.Get(srv.URL + "/immagini/buchet%20vegano.png")
	require.NoError(t, err)
	assert.Equal(t, "png", readBody(t, resp))

	resp, err = client.Get(srv.URL + "/nope")
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	body := readBody(t, resp)
	assert.Contains(t, body, "menuservice_http_requests_total")
	assert.Contains(t, body, `route="unmatched"`)
}

func TestEvictedSessionStartsNewSession(t *testing.T) {
	srv, client, sessions := setup(t)
	serverURL, err := url.Parse(srv.URL)
	require.NoError(t, err)

	resp, err := client.Post(srv.URL+"/api/v1/login", "application/json", strings.NewReader(`{"username": "Alice", "age": 18}`))
	require.NoError(t, err)
	readBody(t, resp)
	require.Len(t, client.Jar.Cookies(serverURL), 1)
	oldCookie := client.Jar.Cookies(serverURL)[0].Value

	require.Equal(t, 1, sessions.Evict(-time.Minute))

	resp, err = client.Post(srv.URL+"/api/v1/cart/items/1", "application/json", nil)
	require.NoError(t, err)
	readBody(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	require.Len(t, client.Jar.Cookies(serverURL), 1)
	assert.NotEqual(t, oldCookie, client.Jar.Cookies(serverURL)[0].Value)
	assert.Equal(t, 1, sessions.Len())

	resp, err = client.PostForm(srv.URL+"/login", url.Values{"username": {"Alice"}, "age": {"18"}})
	require.NoError(t, err)
	assert.Contains(t, readBody(t, resp), "Aggiungi")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestParseAge(t *testing.T) {
	assert.Nil(t, parseAge(""))
	assert.Nil(t, parseAge("diciotto"))
	require.NotNil(t, parseAge(" 18 "))
	assert.Equal(t, 18, *parseAge("18"))
}
