package graphqlserver

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	gql "github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"inventorypro.GO/core/cache"
	"inventorypro.GO/graphql"
	"inventorypro.GO/graphql/registry"
	entity "inventorypro.GO/model/entity"
	itemRepo "inventorypro.GO/model/repository/item"
	"inventorypro.GO/service/query"
	"inventorypro.GO/service/stats"
	"inventorypro.GO/service/stock"
)

var errForbidden = errors.New("insufficient role for this operation")

// RootResolver serves both Query and Mutation over the item store.
type RootResolver struct {
	Store itemRepo.Store
}

// --- GraphQL models (Int is int32 in graphql-go) ---

type Item struct {
	ID          gql.ID
	Name        string
	Description string
	Category    string
	Quantity    int32
	MinStock    int32
	Price       float64
	Supplier    string
	LastUpdated string
	StockStatus string
	TotalValue  float64
}

type Summary struct {
	TotalItems      int32
	TotalQuantity   int32
	TotalValue      float64
	AveragePrice    float64
	InStockCount    int32
	LowStockCount   int32
	OutOfStockCount int32
}

type CategoryShare struct {
	Category   string
	Quantity   int32
	Percentage float64
}

type SupplierMetrics struct {
	Name            string
	TotalItems      int32
	TotalValue      float64
	LowStockCount   int32
	OutOfStockCount int32
	AveragePrice    float64
	Categories      []string
}

func toItem(it entity.InventoryItem) *Item {
	return &Item{
		ID:          gql.ID(it.ID),
		Name:        it.Name,
		Description: it.Description,
		Category:    it.Category,
		Quantity:    int32(it.Quantity),
		MinStock:    int32(it.MinStock),
		Price:       it.Price,
		Supplier:    it.Supplier,
		LastUpdated: it.LastUpdated.Format(time.RFC3339Nano),
		StockStatus: string(stock.ClassifyItem(it)),
		TotalValue:  it.TotalValue(),
	}
}

func toItems(items []entity.InventoryItem) []*Item {
	out := make([]*Item, len(items))
	for i := range items {
		out[i] = toItem(items[i])
	}
	return out
}

// --- Query ---

type ItemsArgs struct {
	Search   *string
	Category *string
	Stock    *string
	Sort     *string
}

func (r *RootResolver) Items(args ItemsArgs) ([]*Item, error) {
	items, err := r.Store.List()
	if err != nil {
		return nil, err
	}
	cfg := query.Config{}
	if args.Search != nil {
		cfg.SearchTerm = *args.Search
	}
	if args.Category != nil {
		cfg.Category = *args.Category
	}
	if args.Stock != nil && *args.Stock != "" {
		st := stock.Status(*args.Stock)
		if !st.Valid() {
			return nil, errors.New("unknown stock filter: " + *args.Stock)
		}
		cfg.Stock = st
	}
	if args.Sort != nil {
		cfg.SortKey = query.SortKey(*args.Sort)
	}
	return toItems(query.Apply(items, cfg)), nil
}

func (r *RootResolver) Item(args struct{ ID gql.ID }) (*Item, error) {
	it, err := r.Store.Get(string(args.ID))
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return toItem(*it), nil
}

type supplierArgs struct {
	Supplier *string
}

func (r *RootResolver) listFor(args supplierArgs) ([]entity.InventoryItem, error) {
	items, err := r.Store.List()
	if err != nil {
		return nil, err
	}
	if args.Supplier == nil || *args.Supplier == "" {
		return items, nil
	}
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.Supplier == *args.Supplier {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *RootResolver) Summary(args supplierArgs) (*Summary, error) {
	items, err := r.listFor(args)
	if err != nil {
		return nil, err
	}
	s := stats.Compute(items)
	return &Summary{
		TotalItems:      int32(s.TotalItems),
		TotalQuantity:   int32(s.TotalQuantity),
		TotalValue:      s.TotalValue,
		AveragePrice:    s.AveragePrice,
		InStockCount:    int32(s.InStockCount),
		LowStockCount:   int32(s.LowStockCount),
		OutOfStockCount: int32(s.OutOfStockCount),
	}, nil
}

func (r *RootResolver) CategoryDistribution(args supplierArgs) ([]*CategoryShare, error) {
	items, err := r.listFor(args)
	if err != nil {
		return nil, err
	}
	dist := stats.CategoryDistribution(items)
	out := make([]*CategoryShare, len(dist))
	for i, d := range dist {
		out[i] = &CategoryShare{Category: d.Category, Quantity: int32(d.Quantity), Percentage: d.Percentage}
	}
	return out, nil
}

func (r *RootResolver) TopByValue(args struct{ Limit int32 }) ([]*Item, error) {
	items, err := r.Store.List()
	if err != nil {
		return nil, err
	}
	return toItems(stats.TopByValue(items, int(args.Limit))), nil
}

func (r *RootResolver) SupplierMetrics() ([]*SupplierMetrics, error) {
	items, err := r.Store.List()
	if err != nil {
		return nil, err
	}
	metrics := stats.BySupplier(items)
	names := stats.Suppliers(items)
	out := make([]*SupplierMetrics, 0, len(names))
	for _, name := range names {
		m := metrics[name]
		out = append(out, &SupplierMetrics{
			Name:            m.Name,
			TotalItems:      int32(m.TotalItems),
			TotalValue:      m.TotalValue,
			LowStockCount:   int32(m.LowStockCount),
			OutOfStockCount: int32(m.OutOfStockCount),
			AveragePrice:    m.AveragePrice,
			Categories:      m.Categories,
		})
	}
	return out, nil
}

func (r *RootResolver) Suppliers() ([]string, error) {
	items, err := r.Store.List()
	if err != nil {
		return nil, err
	}
	return stats.Suppliers(items), nil
}

// ExtensionArgs for extension(name, args).
type ExtensionArgs struct {
	Name string
	Args *string
}

func (r *RootResolver) Extension(ctx context.Context, args ExtensionArgs) (*string, error) {
	var m map[string]interface{}
	if args.Args != nil && *args.Args != "" {
		_ = json.Unmarshal([]byte(*args.Args), &m)
	}
	if m == nil {
		m = make(map[string]interface{})
	}
	out, err := registry.Resolve(ctx, args.Name, m)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(out)
	if err != nil {
		return nil, err
	}
	s := string(b)
	return &s, nil
}

// --- Mutation ---

type ItemInput struct {
	Name        string
	Description *string
	Category    *string
	Quantity    int32
	MinStock    int32
	Price       float64
	Supplier    *string
}

func (in ItemInput) toEntityInput() entity.ItemInput {
	out := entity.ItemInput{
		Name:     in.Name,
		Quantity: int(in.Quantity),
		MinStock: int(in.MinStock),
		Price:    in.Price,
	}
	if in.Description != nil {
		out.Description = *in.Description
	}
	if in.Category != nil {
		out.Category = *in.Category
	}
	if in.Supplier != nil {
		out.Supplier = *in.Supplier
	}
	return out
}

func requireCapability(ctx context.Context, cap entity.Capability) error {
	user := graphql.UserFromContext(ctx)
	if user == nil || !user.Role.Can(cap) {
		return errForbidden
	}
	return nil
}

// Mutations drop cached views derived from the collection (the HTML
// dashboard fragment).
func invalidateViews() {
	cache.GetInstance().InvalidateTags("dashboard")
}

func (r *RootResolver) CreateItem(ctx context.Context, args struct{ Input ItemInput }) (*Item, error) {
	if err := requireCapability(ctx, entity.CapEditItems); err != nil {
		return nil, err
	}
	it, err := r.Store.Create(args.Input.toEntityInput())
	if err != nil {
		return nil, err
	}
	invalidateViews()
	return toItem(*it), nil
}

func (r *RootResolver) UpdateItem(ctx context.Context, args struct {
	ID    gql.ID
	Input ItemInput
}) (*Item, error) {
	if err := requireCapability(ctx, entity.CapEditItems); err != nil {
		return nil, err
	}
	it, err := r.Store.Update(string(args.ID), args.Input.toEntityInput())
	if err != nil {
		return nil, err
	}
	invalidateViews()
	return toItem(*it), nil
}

func (r *RootResolver) DeleteItem(ctx context.Context, args struct{ ID gql.ID }) (bool, error) {
	if err := requireCapability(ctx, entity.CapDeleteItems); err != nil {
		return false, err
	}
	if err := r.Store.Delete(string(args.ID)); err != nil {
		return false, err
	}
	invalidateViews()
	return true, nil
}

// NewSchema parses the schema and returns a graphql-go Schema.
func NewSchema(store itemRepo.Store) (*gql.Schema, error) {
	return gql.ParseSchema(graphql.Schema(), &RootResolver{Store: store}, gql.UseFieldResolvers())
}

// Handler returns an http.Handler for GraphQL (relay format).
func Handler(schema *gql.Schema) *relay.Handler {
	return &relay.Handler{Schema: schema}
}
