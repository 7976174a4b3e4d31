package dashboard

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"inventorypro.GO/api"
	coreauth "inventorypro.GO/core/auth"
	entity "inventorypro.GO/model/entity"
	"inventorypro.GO/service/stats"
)

func init() {
	api.RegisterModule(RegisterDashboardRoutes)
}

func RegisterDashboardRoutes(apiGroup *echo.Group, deps api.Deps) {
	g := apiGroup.Group("/dashboard")

	// GET /api/dashboard/summary?supplier= – headline numbers,
	// optionally narrowed to one supplier like the dashboard's filter.
	g.GET("/summary", func(c echo.Context) error {
		items, err := deps.Store.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if s := c.QueryParam("supplier"); s != "" {
			items = filterBySupplier(items, s)
		}
		return c.JSON(http.StatusOK, stats.Compute(items))
	})

	// GET /api/dashboard/categories – quantity share per category
	g.GET("/categories", func(c echo.Context) error {
		items, err := deps.Store.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if s := c.QueryParam("supplier"); s != "" {
			items = filterBySupplier(items, s)
		}
		return c.JSON(http.StatusOK, stats.CategoryDistribution(items))
	})

	// GET /api/dashboard/top?limit=5 – highest-value lines
	g.GET("/top", func(c echo.Context) error {
		limit := 5
		if v := c.QueryParam("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": "limit must be a positive integer"})
			}
			limit = n
		}
		items, err := deps.Store.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, stats.TopByValue(items, limit))
	})

	// GET /api/dashboard/suppliers – per-supplier metrics (analytics view)
	g.GET("/suppliers", func(c echo.Context) error {
		items, err := deps.Store.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		metrics := stats.BySupplier(items)
		// stable response order for the clients
		ordered := make([]stats.SupplierMetrics, 0, len(metrics))
		for _, name := range stats.Suppliers(items) {
			ordered = append(ordered, metrics[name])
		}
		return c.JSON(http.StatusOK, ordered)
	}, coreauth.RequireCapability(entity.CapViewAnalytics))

	// GET /api/dashboard/suppliers/:name – one supplier's metrics
	g.GET("/suppliers/:name", func(c echo.Context) error {
		items, err := deps.Store.List()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		name := c.Param("name")
		m, ok := stats.BySupplier(items)[name]
		if !ok {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "unknown supplier: " + name})
		}
		return c.JSON(http.StatusOK, m)
	}, coreauth.RequireCapability(entity.CapViewAnalytics))
}

func filterBySupplier(items []entity.InventoryItem, supplier string) []entity.InventoryItem {
	out := make([]entity.InventoryItem, 0, len(items))
	for _, it := range items {
		if it.Supplier == supplier {
			out = append(out, it)
		}
	}
	return out
}
