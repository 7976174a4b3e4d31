package item

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"inventorypro.GO/api"
	coreauth "inventorypro.GO/core/auth"
	"inventorypro.GO/core/cache"
	entity "inventorypro.GO/model/entity"
	"inventorypro.GO/service/query"
	"inventorypro.GO/service/stock"
)

func init() {
	api.RegisterModule(RegisterItemRoutes)
}

func RegisterItemRoutes(apiGroup *echo.Group, deps api.Deps) {
	g := apiGroup.Group("/items")

	// GET /api/items?search=&category=&stock=&sort= – filtered, sorted view
	g.GET("", func(c echo.Context) error {
		cfg, err := configFromQuery(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		items, err := deps.Store.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		view := query.Apply(items, cfg)
		return c.JSON(http.StatusOK, echo.Map{
			"items":      view,
			"total":      len(view),
			"categories": query.Categories(items),
		})
	})

	// GET /api/items/:id
	g.GET("/:id", func(c echo.Context) error {
		it, err := deps.Store.Get(c.Param("id"))
		if err != nil {
			return storeError(c, err)
		}
		return c.JSON(http.StatusOK, itemWithStatus(*it))
	})

	// POST /api/items – create (manager+)
	g.POST("", func(c echo.Context) error {
		var input entity.ItemInput
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		it, err := deps.Store.Create(input)
		if err != nil {
			return storeError(c, err)
		}
		invalidateViews()
		return c.JSON(http.StatusCreated, itemWithStatus(*it))
	}, coreauth.RequireCapability(entity.CapEditItems))

	// PUT /api/items/:id – full replacement of mutable fields (manager+)
	g.PUT("/:id", func(c echo.Context) error {
		var input entity.ItemInput
		if err := c.Bind(&input); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		it, err := deps.Store.Update(c.Param("id"), input)
		if err != nil {
			return storeError(c, err)
		}
		invalidateViews()
		return c.JSON(http.StatusOK, itemWithStatus(*it))
	}, coreauth.RequireCapability(entity.CapEditItems))

	// DELETE /api/items/:id – admin only
	g.DELETE("/:id", func(c echo.Context) error {
		if err := deps.Store.Delete(c.Param("id")); err != nil {
			return storeError(c, err)
		}
		invalidateViews()
		return c.NoContent(http.StatusNoContent)
	}, coreauth.RequireCapability(entity.CapDeleteItems))
}

// configFromQuery builds the query config. An unknown stock value is a
// client error; an unknown sort key is pass-through per the query
// contract, so it is forwarded as-is.
func configFromQuery(c echo.Context) (query.Config, error) {
	cfg := query.Config{
		SearchTerm: c.QueryParam("search"),
		Category:   c.QueryParam("category"),
		SortKey:    query.SortKey(c.QueryParam("sort")),
	}
	if s := c.QueryParam("stock"); s != "" {
		st := stock.Status(s)
		if !st.Valid() {
			return cfg, errors.New("unknown stock filter: " + s)
		}
		cfg.Stock = st
	}
	return cfg, nil
}

// itemWithStatus decorates an item with its derived stock status for
// the front ends.
func itemWithStatus(it entity.InventoryItem) echo.Map {
	return echo.Map{
		"id":          it.ID,
		"name":        it.Name,
		"description": it.Description,
		"category":    it.Category,
		"quantity":    it.Quantity,
		"minStock":    it.MinStock,
		"price":       it.Price,
		"supplier":    it.Supplier,
		"lastUpdated": it.LastUpdated,
		"stockStatus": stock.ClassifyItem(it),
	}
}

// invalidateViews drops cached views derived from the collection (the
// HTML dashboard fragment) after a successful mutation.
func invalidateViews() {
	cache.GetInstance().InvalidateTags("dashboard")
}

func storeError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, entity.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, entity.ErrInvalidInput):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
