package http_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpin "pratofit/internal/adapters/in/http"
	"pratofit/internal/adapters/out/memory/sessionrepo"
	"pratofit/internal/adapters/out/staticdata"
	"pratofit/internal/adapters/out/whatsapp"
	"pratofit/internal/core/application/usecases/commands"
	"pratofit/internal/core/application/usecases/queries"
	"pratofit/internal/core/ports"
)

type stubLookup struct {
	result ports.AddressLookupResult
	err    error
}

func (s stubLookup) Lookup(context.Context, string) (ports.AddressLookupResult, error) {
	return s.result, s.err
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	catalog, err := staticdata.NewCatalog()
	require.NoError(t, err)
	zones, err := staticdata.NewZoneTable()
	require.NoError(t, err)

	repo := sessionrepo.NewInMemorySessionRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	links := whatsapp.NewLinkBuilder("5583999999999")
	lookup := stubLookup{result: ports.AddressLookupResult{
		Street:       "Rua Dom Pedro II",
		Neighborhood: "Catolé",
		Found:        true,
	}}

	server := httpin.NewServer(
		commands.NewStartSessionCommandHandler(repo),
		commands.NewSelectKitCommandHandler(repo, catalog),
		commands.NewChangeKitCommandHandler(repo),
		commands.NewAddItemCommandHandler(repo, catalog),
		commands.NewAdjustQuantityCommandHandler(repo),
		commands.NewClearCartCommandHandler(repo),
		commands.NewLookupPostalCodeCommandHandler(repo, lookup, zones, logger),
		commands.NewSelectNeighborhoodCommandHandler(repo, zones),
		commands.NewSetFulfillmentModeCommandHandler(repo, zones),
		commands.NewSubmitOrderCommandHandler(repo, staticdata.PickupPoint(), links),
		commands.NewAskAssistantCommandHandler(nil, logger),
		queries.NewGetSessionQueryHandler(repo),
		queries.NewGetCatalogQueryHandler(catalog),
		queries.NewGetZonesQueryHandler(zones, staticdata.PickupPoint()),
	)

	e := echo.New()
	server.RegisterRoutes(e)
	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func startSession(t *testing.T, e *echo.Echo) string {
	t.Helper()

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)

	var created struct {
		SessionID string `json:"sessionId"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.NotEmpty(t, created.SessionID)
	return created.SessionID
}

func TestServer_OrderFlow_Pickup(t *testing.T) {
	e := newTestEcho(t)
	id := startSession(t, e)

	rec := doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/kit", `{"kitId":"unit"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items", `{"itemId":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	var change struct {
		Signal        string `json:"signal"`
		TotalSelected int    `json:"totalSelected"`
		Complete      bool   `json:"complete"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &change))
	assert.Equal(t, "KitCompleted", change.Signal)
	assert.True(t, change.Complete)

	// a second unit must bounce off the full cart
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items", `{"itemId":"2"}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/checkout/mode", `{"mode":"pickup"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/checkout/submit",
		`{"name":"Ana Souza","pickupTime":"12:30","payment":"pix"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var order struct {
		Message string `json:"message"`
		Link    string `json:"link"`
		Total   string `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Contains(t, order.Message, "Ana Souza")
	assert.Contains(t, order.Message, "Unidade Avulsa")
	assert.True(t, strings.HasPrefix(order.Link, "https://wa.me/5583999999999?text="))
	assert.Equal(t, "25.00", order.Total)
}

func TestServer_SubmitOrder_DeliveryViolations(t *testing.T) {
	e := newTestEcho(t)
	id := startSession(t, e)

	rec := doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/kit", `{"kitId":"unit"}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items", `{"itemId":"1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/checkout/submit",
		`{"name":"Ana","payment":"pix"}`)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var response struct {
		Violations []string `json:"violations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Contains(t, response.Violations, "name")
	assert.Contains(t, response.Violations, "street")
	assert.Contains(t, response.Violations, "neighborhood")
}

func TestServer_PostalCodeLookup(t *testing.T) {
	e := newTestEcho(t)
	id := startSession(t, e)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/checkout/postal-code",
		`{"postalCode":"58410-000"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var lookup struct {
		Performed    bool   `json:"performed"`
		Result       string `json:"result"`
		Neighborhood string `json:"neighborhood"`
		Fee          string `json:"fee"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lookup))
	assert.True(t, lookup.Performed)
	assert.Equal(t, "matched", lookup.Result)
	assert.Equal(t, "Catolé", lookup.Neighborhood)
	assert.Equal(t, "7.00", lookup.Fee)
}

func TestServer_ChangeKit_RequiresConfirmation(t *testing.T) {
	e := newTestEcho(t)
	id := startSession(t, e)

	doJSON(t, e, http.MethodPut, "/api/v1/sessions/"+id+"/kit", `{"kitId":"kit5"}`)
	doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/cart/items", `{"itemId":"1"}`)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/kit/change", `{"confirmed":false}`)
	require.Equal(t, http.StatusConflict, rec.Code)

	var confirmation struct {
		ConfirmationRequired bool   `json:"confirmationRequired"`
		Prompt               string `json:"prompt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &confirmation))
	assert.True(t, confirmation.ConfirmationRequired)
	assert.NotEmpty(t, confirmation.Prompt)

	rec = doJSON(t, e, http.MethodPost, "/api/v1/sessions/"+id+"/kit/change", `{"confirmed":true}`)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestServer_GetCatalogAndZones(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/catalog?search=low+carb", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var catalog struct {
		Kits       []struct{ ID string } `json:"kits"`
		Categories []struct {
			Items []struct{ Title string } `json:"items"`
		} `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.Len(t, catalog.Kits, 4)
	require.Len(t, catalog.Categories, 1)
	require.Len(t, catalog.Categories[0].Items, 1)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/zones", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var zones struct {
		Zones  []struct{ Label string } `json:"zones"`
		Pickup struct{ Address string } `json:"pickup"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &zones))
	assert.Len(t, zones.Zones, 3)
	assert.NotEmpty(t, zones.Pickup.Address)
}

func TestServer_SessionErrors(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/v1/sessions/0b9a4b7e-94e4-4f0f-a7b8-7b8d2a3c5f61", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Chat_NoBackend(t *testing.T) {
	e := newTestEcho(t)

	rec := doJSON(t, e, http.MethodPost, "/api/v1/chat", `{"message":"oi","history":[]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var chat struct {
		Reply string `json:"reply"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &chat))
	assert.Contains(t, chat.Reply, "Desculpe")
}
