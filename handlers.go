package solestore

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kmwangi/solestore/catalog"
)

// categoryListing is the JSON shape of a catalog page.
type categoryListing struct {
	Category catalog.Category  `json:"category"`
	Facet    string            `json:"facet,omitempty"`
	Facets   []string          `json:"facets,omitempty"`
	Count    int               `json:"count"`
	Products []catalog.Product `json:"products"`
}

func (a *App) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (a *App) handleCategories(c echo.Context) error {
	type categoryInfo struct {
		Category catalog.Category `json:"category"`
		Facets   []string         `json:"facets,omitempty"`
	}
	var out []categoryInfo
	for _, cat := range catalog.Categories() {
		out = append(out, categoryInfo{Category: cat, Facets: catalog.Facets(cat)})
	}
	return c.JSON(http.StatusOK, out)
}

func (a *App) handleCatalog(c echo.Context) error {
	cat, products, facet, err := a.categoryProducts(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categoryListing{
		Category: cat,
		Facet:    facet,
		Facets:   catalog.Facets(cat),
		Count:    len(products),
		Products: products,
	})
}

func (a *App) handleCatalogPage(c echo.Context) error {
	cat, products, facet, err := a.categoryProducts(c)
	if err != nil {
		return err
	}
	return Render(c, a.Views.Catalog(cat, products, catalog.Facets(cat), facet))
}

// categoryProducts runs the read pipeline for one request: cached
// resolve+validate, then facet filtering.
func (a *App) categoryProducts(c echo.Context) (catalog.Category, []catalog.Product, string, error) {
	cat, ok := catalog.ParseCategory(c.Param("category"))
	if !ok {
		return "", nil, "", echo.NewHTTPError(http.StatusNotFound, "unknown category")
	}
	facet := c.QueryParam("facet")
	products := catalog.FilterByFacet(a.Cache.Get(cat), facet)
	return cat, products, facet, nil
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	he, ok := err.(*echo.HTTPError)
	if ok && he.Code == http.StatusNotFound && a.Views.NotFound != nil {
		_ = RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		c.Logger().Errorf("server error: %v", err)
		if a.Views.ServerError != nil {
			_ = RenderStatus(c, code, a.Views.ServerError())
			return
		}
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
