package public

import (
	"net/http"
	"testing"
	"time"

	"github.com/storefront-next/internal/http/response"
	"github.com/storefront-next/internal/models"
)

type catalogTestProduct struct {
	ID   uint   `json:"id"`
	Slug string `json:"slug"`
}

func seedCatalog(t *testing.T, env *publicTestEnv) (models.Category, models.Category) {
	t.Helper()
	audio := env.seedCategory(t, "audio", "Audio")
	home := env.seedCategory(t, "home", "Home")
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	env.seedProduct(t, models.Product{
		CategoryID: audio.ID, Slug: "headphones", Name: "Wireless Headphones", Description: "Noise cancelling",
		Price: models.RequireMoney("80.00"), OriginalPrice: models.NewNullMoney(models.RequireMoney("100.00")),
		Stock: 5, Rating: 3.5, IsFeatured: true, CreatedAt: base,
	})
	env.seedProduct(t, models.Product{
		CategoryID: home.ID, Slug: "lamp", Name: "Desk Lamp", Description: "Warm light",
		Price: models.RequireMoney("25.00"), Stock: 0, Rating: 4.5, CreatedAt: base.Add(time.Hour),
	})
	env.seedProduct(t, models.Product{
		CategoryID: audio.ID, Slug: "speaker", Name: "Mini Speaker", Description: "Portable audio",
		Price: models.RequireMoney("40.00"), Stock: 3, Rating: 2.0, CreatedAt: base.Add(2 * time.Hour),
	})
	return audio, home
}

func catalogSlugs(items []catalogTestProduct) []string {
	slugs := make([]string, 0, len(items))
	for _, item := range items {
		slugs = append(slugs, item.Slug)
	}
	return slugs
}

func TestGetProductsNewestFirstWithConditions(t *testing.T) {
	env := setupPublicTestEnv(t, "public_products")
	audio, _ := seedCatalog(t, env)

	resp := env.do(t, http.MethodGet, "/api/v1/public/products", 0, nil)
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("status want 0 got %d msg=%s", resp.StatusCode, resp.Msg)
	}
	var all []catalogTestProduct
	decodeData(t, resp, &all)
	if got := catalogSlugs(all); len(got) != 3 || got[0] != "speaker" || got[2] != "headphones" {
		t.Fatalf("unexpected order: %v", got)
	}

	resp = env.do(t, http.MethodGet, "/api/v1/public/products?category_id="+itoa(audio.ID)+"&max_price=50", 0, nil)
	var filtered []catalogTestProduct
	decodeData(t, resp, &filtered)
	if got := catalogSlugs(filtered); len(got) != 1 || got[0] != "speaker" {
		t.Fatalf("unexpected filtered products: %v", got)
	}
}

func TestGetProductsRejectsMalformedQuery(t *testing.T) {
	env := setupPublicTestEnv(t, "public_products_bad")
	for _, query := range []string{"category_id=abc", "max_price=cheap", "min_rating=7", "featured=maybe"} {
		resp := env.do(t, http.MethodGet, "/api/v1/public/products?"+query, 0, nil)
		if resp.StatusCode != response.CodeBadRequest {
			t.Fatalf("query %s status want 400 got %d", query, resp.StatusCode)
		}
	}
}

func TestGetFeaturedAndCategories(t *testing.T) {
	env := setupPublicTestEnv(t, "public_featured")
	seedCatalog(t, env)

	var featured []catalogTestProduct
	decodeData(t, env.do(t, http.MethodGet, "/api/v1/public/products/featured", 0, nil), &featured)
	if len(featured) != 1 || featured[0].Slug != "headphones" {
		t.Fatalf("unexpected featured: %v", catalogSlugs(featured))
	}

	var categories []models.Category
	decodeData(t, env.do(t, http.MethodGet, "/api/v1/public/categories", 0, nil), &categories)
	if len(categories) != 2 || categories[0].Name != "Audio" {
		t.Fatalf("unexpected categories: %+v", categories)
	}
}

func TestGetProductBySlugDetail(t *testing.T) {
	env := setupPublicTestEnv(t, "public_detail")
	seedCatalog(t, env)

	resp := env.do(t, http.MethodGet, "/api/v1/public/products/headphones", 0, nil)
	if resp.StatusCode != response.CodeOK {
		t.Fatalf("status want 0 got %d", resp.StatusCode)
	}
	var detail struct {
		Product         catalogTestProduct `json:"product"`
		DiscountPercent *int               `json:"discount_percent"`
		Stars           struct {
			Full  int `json:"full"`
			Half  int `json:"half"`
			Empty int `json:"empty"`
		} `json:"stars"`
		InStock bool `json:"in_stock"`
	}
	decodeData(t, resp, &detail)
	if detail.DiscountPercent == nil || *detail.DiscountPercent != 20 {
		t.Fatalf("discount want 20 got %v", detail.DiscountPercent)
	}
	if detail.Stars.Full != 3 || detail.Stars.Half != 1 || detail.Stars.Empty != 1 || !detail.InStock {
		t.Fatalf("unexpected detail: %+v", detail)
	}

	missing := env.do(t, http.MethodGet, "/api/v1/public/products/nope", 0, nil)
	if missing.StatusCode != response.CodeNotFound {
		t.Fatalf("missing status want 404 got %d", missing.StatusCode)
	}
}

func TestFilterCatalog(t *testing.T) {
	env := setupPublicTestEnv(t, "public_filter")
	seedCatalog(t, env)

	var result struct {
		Products []catalogTestProduct `json:"products"`
		Empty    bool                 `json:"empty"`
	}
	decodeData(t, env.do(t, http.MethodGet, "/api/v1/public/catalog?filter=rating&value=4,3", 0, nil), &result)
	if len(result.Products) != 2 || result.Empty {
		t.Fatalf("rating filter want 2 products got %v", catalogSlugs(result.Products))
	}

	decodeData(t, env.do(t, http.MethodGet, "/api/v1/public/catalog?filter=search&value=AUDIO", 0, nil), &result)
	if got := catalogSlugs(result.Products); len(got) != 1 || got[0] != "speaker" {
		t.Fatalf("search filter unexpected: %v", got)
	}

	decodeData(t, env.do(t, http.MethodGet, "/api/v1/public/catalog?filter=price&value=10", 0, nil), &result)
	if !result.Empty || len(result.Products) != 0 {
		t.Fatalf("price filter should be empty: %+v", result)
	}

	bad := env.do(t, http.MethodGet, "/api/v1/public/catalog?filter=color&value=red", 0, nil)
	if bad.StatusCode != response.CodeBadRequest {
		t.Fatalf("unknown filter status want 400 got %d", bad.StatusCode)
	}
}
