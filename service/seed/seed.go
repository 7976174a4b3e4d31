package seed

import (
	"fmt"
	"reflect"
	"time"

	"github.com/mitchellh/mapstructure"

	entity "inventorypro.GO/model/entity"
	"inventorypro.GO/model/repository/item"
)

// Fixture rows are kept as loose maps and decoded through mapstructure
// so the data set reads like the JSON the front ends exchange.
var sampleRows = []map[string]interface{}{
	{
		"name": "Wireless Mouse", "description": "Ergonomic wireless mouse with USB receiver",
		"category": "Electronics", "quantity": 45, "minStock": 10, "price": 29.99,
		"supplier": "TechSupply Co", "lastUpdated": "2024-01-15T10:30:00Z",
	},
	{
		"name": "Mechanical Keyboard", "description": "RGB backlit mechanical keyboard, blue switches",
		"category": "Electronics", "quantity": 8, "minStock": 15, "price": 89.99,
		"supplier": "TechSupply Co", "lastUpdated": "2024-01-14T14:20:00Z",
	},
	{
		"name": "Office Chair", "description": "Adjustable ergonomic office chair with lumbar support",
		"category": "Furniture", "quantity": 0, "minStock": 5, "price": 249.99,
		"supplier": "FurniturePlus", "lastUpdated": "2024-01-13T09:15:00Z",
	},
	{
		"name": "Standing Desk", "description": "Electric height-adjustable standing desk",
		"category": "Furniture", "quantity": 12, "minStock": 3, "price": 599.99,
		"supplier": "FurniturePlus", "lastUpdated": "2024-01-15T16:45:00Z",
	},
	{
		"name": "USB-C Hub", "description": "7-in-1 USB-C hub with HDMI and card reader",
		"category": "Electronics", "quantity": 3, "minStock": 8, "price": 49.99,
		"supplier": "TechSupply Co", "lastUpdated": "2024-01-12T11:00:00Z",
	},
	{
		"name": "Desk Lamp", "description": "LED desk lamp with adjustable brightness",
		"category": "Office Supplies", "quantity": 67, "minStock": 20, "price": 34.99,
		"supplier": "OfficeMart", "lastUpdated": "2024-01-15T08:30:00Z",
	},
	{
		"name": "Notebook Pack", "description": "Pack of 5 ruled notebooks, A5",
		"category": "Office Supplies", "quantity": 150, "minStock": 50, "price": 12.99,
		"supplier": "OfficeMart", "lastUpdated": "2024-01-11T13:20:00Z",
	},
	{
		"name": "Monitor 27\"", "description": "27-inch 4K IPS monitor",
		"category": "Electronics", "quantity": 0, "minStock": 4, "price": 329.99,
		"supplier": "DisplayTech", "lastUpdated": "2024-01-10T15:10:00Z",
	},
	{
		"name": "Webcam HD", "description": "1080p webcam with built-in microphone",
		"category": "Electronics", "quantity": 22, "minStock": 10, "price": 59.99,
		"supplier": "DisplayTech", "lastUpdated": "2024-01-14T10:05:00Z",
	},
	{
		"name": "Whiteboard", "description": "Magnetic dry-erase whiteboard 120x90cm",
		"category": "Office Supplies", "quantity": 6, "minStock": 6, "price": 79.99,
		"supplier": "OfficeMart", "lastUpdated": "2024-01-13T17:40:00Z",
	},
}

func stringToTimeHook() mapstructure.DecodeHookFunc {
	timeType := reflect.TypeOf(time.Time{})
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t != timeType || f.Kind() != reflect.String {
			return data, nil
		}
		return time.Parse(time.RFC3339, data.(string))
	}
}

func floatToIntHook() mapstructure.DecodeHookFunc {
	return func(f, t reflect.Type, data interface{}) (interface{}, error) {
		if t.Kind() != reflect.Int {
			return data, nil
		}
		if v, ok := data.(float64); ok {
			return int(v), nil
		}
		return data, nil
	}
}

var rowDecodeHook = mapstructure.ComposeDecodeHookFunc(
	stringToTimeHook(),
	floatToIntHook(),
)

type row struct {
	Name        string    `mapstructure:"name"`
	Description string    `mapstructure:"description"`
	Category    string    `mapstructure:"category"`
	Quantity    int       `mapstructure:"quantity"`
	MinStock    int       `mapstructure:"minStock"`
	Price       float64   `mapstructure:"price"`
	Supplier    string    `mapstructure:"supplier"`
	LastUpdated time.Time `mapstructure:"lastUpdated"`
}

// Items decodes the sample data set into entities. Ids are left empty;
// the store assigns them on Replace.
func Items() ([]entity.InventoryItem, error) {
	out := make([]entity.InventoryItem, 0, len(sampleRows))
	for i, m := range sampleRows {
		var r row
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			DecodeHook: rowDecodeHook,
			Result:     &r,
		})
		if err != nil {
			return nil, err
		}
		if err := dec.Decode(m); err != nil {
			return nil, fmt.Errorf("seed row %d: %w", i, err)
		}
		out = append(out, entity.InventoryItem{
			Name:        r.Name,
			Description: r.Description,
			Category:    r.Category,
			Quantity:    r.Quantity,
			MinStock:    r.MinStock,
			Price:       r.Price,
			Supplier:    r.Supplier,
			LastUpdated: r.LastUpdated,
		})
	}
	return out, nil
}

// Load replaces the store contents with the sample data set and returns
// the number of items seeded.
func Load(store item.Store) (int, error) {
	items, err := Items()
	if err != nil {
		return 0, err
	}
	if err := store.Replace(items); err != nil {
		return 0, fmt.Errorf("seed: %w", err)
	}
	return len(items), nil
}
