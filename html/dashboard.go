package html

import (
	"html/template"
	"io"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"inventorypro.GO/core/cache"
	itemRepo "inventorypro.GO/model/repository/item"
	"inventorypro.GO/service/stats"
)

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

type dashboardView struct {
	AppName    string
	Summary    stats.Summary
	Categories []stats.CategoryShare
	Top        []topRow
}

type topRow struct {
	Name  string
	Value float64
}

// RegisterDashboardHTMLRoutes registers the read-only HTML dashboard.
// The view model is cached for 30s; staleness is fine for a wall display.
func RegisterDashboardHTMLRoutes(e *echo.Echo, store itemRepo.Store, appName string) {
	c := cache.GetInstance()
	e.GET("/dashboard", func(ctx echo.Context) error {
		if v, ok := c.Get("html:dashboard"); ok {
			return ctx.Render(http.StatusOK, "dashboard.html", v)
		}

		items, err := store.List()
		if err != nil {
			log.Println("dashboard: list items:", err)
			return ctx.String(http.StatusInternalServerError, "Error loading inventory")
		}
		view := dashboardView{
			AppName:    appName,
			Summary:    stats.Compute(items),
			Categories: stats.CategoryDistribution(items),
		}
		for _, it := range stats.TopByValue(items, 5) {
			view.Top = append(view.Top, topRow{Name: it.Name, Value: it.TotalValue()})
		}
		c.Set("html:dashboard", view, 30, []string{"dashboard"})
		return ctx.Render(http.StatusOK, "dashboard.html", view)
	})
}
