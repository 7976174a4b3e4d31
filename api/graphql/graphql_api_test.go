package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"inventorypro.GO/core/cache"
	entity "inventorypro.GO/model/entity"
	itemRepo "inventorypro.GO/model/repository/item"
	authService "inventorypro.GO/service/auth"
)

type gqlResponse struct {
	Data   map[string]interface{}
	Errors []struct{ Message string }
}

func newGraphQLServer(t *testing.T) (*echo.Echo, itemRepo.Store, *authService.Service) {
	t.Helper()
	e := echo.New()
	store := itemRepo.NewMemoryStore()

	inputs := []entity.ItemInput{
		{Name: "Mouse", Category: "Electronics", Quantity: 2, MinStock: 1, Price: 10, Supplier: "TechSupply Co"},
		{Name: "Chair", Category: "Furniture", Quantity: 0, MinStock: 5, Price: 250, Supplier: "FurniturePlus"},
		{Name: "Hub", Category: "Electronics", Quantity: 3, MinStock: 8, Price: 5, Supplier: "TechSupply Co"},
	}
	for _, in := range inputs {
		if _, err := store.Create(in); err != nil {
			t.Fatalf("seed %s: %v", in.Name, err)
		}
	}

	auth := authService.NewService(nil, cache.NewCache(), []byte("test-secret"), 0, time.Minute)
	RegisterGraphQLRoutes(e, store, auth)
	return e, store, auth
}

func sessionToken(t *testing.T, auth *authService.Service, email string) string {
	t.Helper()
	_, token, err := auth.Login(context.Background(), email, "password123")
	if err != nil {
		t.Fatalf("login %s: %v", email, err)
	}
	return token
}

func runQuery(t *testing.T, e *echo.Echo, query, token string) gqlResponse {
	t.Helper()
	body, _ := json.Marshal(map[string]interface{}{"query": query})
	req := httptest.NewRequest(http.MethodPost, "/graphql", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /graphql status = %d", rec.Code)
	}
	var resp gqlResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return resp
}

func TestGraphQL_Items(t *testing.T) {
	e, _, _ := newGraphQLServer(t)
	resp := runQuery(t, e, `query { items { name stockStatus totalValue } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	items := resp.Data["items"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("items = %d, want 3", len(items))
	}
	first := items[0].(map[string]interface{})
	if first["name"] != "Mouse" || first["stockStatus"] != "in-stock" {
		t.Errorf("first = %v", first)
	}
	if first["totalValue"].(float64) != 20 {
		t.Errorf("totalValue = %v, want 20", first["totalValue"])
	}
}

func TestGraphQL_ItemsStockFilter(t *testing.T) {
	e, _, _ := newGraphQLServer(t)
	resp := runQuery(t, e, `query { items(stock: "low-stock") { name } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	items := resp.Data["items"].([]interface{})
	if len(items) != 1 || items[0].(map[string]interface{})["name"] != "Hub" {
		t.Errorf("items = %v, want single Hub", items)
	}
}

func TestGraphQL_ItemUnknownIDIsNull(t *testing.T) {
	e, _, _ := newGraphQLServer(t)
	resp := runQuery(t, e, `query { item(id: "nope") { name } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if resp.Data["item"] != nil {
		t.Errorf("item = %v, want null", resp.Data["item"])
	}
}

func TestGraphQL_Summary(t *testing.T) {
	e, _, _ := newGraphQLServer(t)
	resp := runQuery(t, e, `query { summary { totalItems totalValue outOfStockCount } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	s := resp.Data["summary"].(map[string]interface{})
	if s["totalItems"].(float64) != 3 || s["totalValue"].(float64) != 35 {
		t.Errorf("summary = %v", s)
	}
	if s["outOfStockCount"].(float64) != 1 {
		t.Errorf("outOfStockCount = %v, want 1", s["outOfStockCount"])
	}
}

func TestGraphQL_TopByValueDefaultLimit(t *testing.T) {
	e, _, _ := newGraphQLServer(t)
	resp := runQuery(t, e, `query { topByValue { name } }`, "")
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	items := resp.Data["topByValue"].([]interface{})
	if len(items) != 3 {
		t.Fatalf("topByValue = %d, want 3", len(items))
	}
	if items[0].(map[string]interface{})["name"] != "Mouse" {
		t.Errorf("top = %v, want Mouse first", items[0])
	}
}

func TestGraphQL_CreateItemRequiresSession(t *testing.T) {
	e, _, _ := newGraphQLServer(t)
	mutation := `mutation { createItem(input: {name: "Lamp", quantity: 4, minStock: 1, price: 9.99}) { id name } }`

	resp := runQuery(t, e, mutation, "")
	if len(resp.Errors) == 0 {
		t.Fatal("anonymous mutation succeeded, want error")
	}
	if !strings.Contains(resp.Errors[0].Message, "insufficient role") {
		t.Errorf("error = %q", resp.Errors[0].Message)
	}
}

func TestGraphQL_CreateItemAsManager(t *testing.T) {
	e, store, auth := newGraphQLServer(t)
	token := sessionToken(t, auth, "manager@inventorypro.com")
	mutation := `mutation { createItem(input: {name: "Lamp", quantity: 4, minStock: 1, price: 9.99}) { id name stockStatus } }`

	resp := runQuery(t, e, mutation, token)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	created := resp.Data["createItem"].(map[string]interface{})
	if created["name"] != "Lamp" || created["id"] == "" {
		t.Errorf("createItem = %v", created)
	}

	items, _ := store.List()
	if len(items) != 4 {
		t.Errorf("store has %d items, want 4", len(items))
	}
}

func TestGraphQL_DeleteItemAdminOnly(t *testing.T) {
	e, store, auth := newGraphQLServer(t)
	items, _ := store.List()
	target := items[0].ID

	manager := sessionToken(t, auth, "manager@inventorypro.com")
	resp := runQuery(t, e, `mutation { deleteItem(id: "`+target+`") }`, manager)
	if len(resp.Errors) == 0 {
		t.Fatal("manager delete succeeded, want error")
	}

	admin := sessionToken(t, auth, "admin@inventorypro.com")
	resp = runQuery(t, e, `mutation { deleteItem(id: "`+target+`") }`, admin)
	if len(resp.Errors) > 0 {
		t.Fatalf("errors: %v", resp.Errors)
	}
	if resp.Data["deleteItem"] != true {
		t.Errorf("deleteItem = %v, want true", resp.Data["deleteItem"])
	}
}

func TestGraphQL_Playground(t *testing.T) {
	e, _, _ := newGraphQLServer(t)
	req := httptest.NewRequest(http.MethodGet, "/playground", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "GraphQLPlayground.init") {
		t.Error("playground HTML missing init script")
	}
}
