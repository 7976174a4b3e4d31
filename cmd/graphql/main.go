// Standalone GraphQL server — run with: go run ./cmd/graphql
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"inventorypro.GO/api"
	graphqlApi "inventorypro.GO/api/graphql"
	"inventorypro.GO/config"
	itemRepo "inventorypro.GO/model/repository/item"
	"inventorypro.GO/service/seed"
)

func main() {
	_ = godotenv.Load()
	config.LoadAppConfig()

	// In-memory store seeded with the sample set; set GQL_DB=1 to serve
	// the database instead.
	var store itemRepo.Store
	if os.Getenv("GQL_DB") != "" {
		db, err := config.NewDB()
		if err != nil {
			log.Fatal("db:", err)
		}
		gs, err := itemRepo.NewGormStore(db)
		if err != nil {
			log.Fatal("store:", err)
		}
		store = gs
	} else {
		ms := itemRepo.NewMemoryStore()
		if _, err := seed.Load(ms); err != nil {
			log.Fatal("seed:", err)
		}
		store = ms
	}

	e := echo.New()
	graphqlApi.RegisterGraphQLRoutes(e, store, nil)
	api.ApplyRoutes(e, api.Deps{Store: store})

	// ASCII banner on start (random font each run)
	gqlFonts := []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "univers", "doom", "larry3d", "puffy", "rectangles", "bigchief", "cosmic"}
	fig := figure.NewFigure("InventoryPro GQL ->", gqlFonts[rand.Intn(len(gqlFonts))], true)
	fig.Print()
	fmt.Println("Standalone GraphQL server")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("GraphQL at http://localhost:%s/graphql  Playground at http://localhost:%s/playground", port, port)
	e.Logger.Fatal(e.Start(":" + port))
}
