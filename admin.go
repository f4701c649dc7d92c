package solestore

import (
	"crypto/subtle"
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kmwangi/solestore/catalog"
)

func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		if a.Views.AdminLogin != nil {
			return Render(c, a.Views.AdminLogin(false, CsrfToken(c)))
		}
		return echo.NewHTTPError(http.StatusUnauthorized, "login required")
	}
	return a.renderAdminDashboard(c, c.QueryParam("msg"))
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Allow(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	pass := c.FormValue("password")
	if subtle.ConstantTimeCompare([]byte(pass), []byte(a.Config.AdminPassword)) == 1 {
		if err := setAdminSession(c); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if a.Views.AdminLogin != nil {
		return Render(c, a.Views.AdminLogin(true, CsrfToken(c)))
	}
	return echo.NewHTTPError(http.StatusUnauthorized, "wrong password")
}

func handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleImageList(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	images, err := a.Store.ListImages()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, images)
}

func (a *App) handleImageUpdate(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}
	if _, err := a.Store.GetImage(id); err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "image not found")
		}
		return err
	}
	price := 0
	if v := strings.TrimSpace(c.FormValue("price")); v != "" {
		price, err = strconv.Atoi(v)
		if err != nil || price < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "price must be a non-negative integer")
		}
	}
	err = a.Store.UpdateImage(id,
		strings.TrimSpace(c.FormValue("name")),
		price,
		strings.TrimSpace(c.FormValue("description")),
		strings.TrimSpace(c.FormValue("subcategory")),
	)
	if err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.NoContent(http.StatusNoContent)
}

// handleCuratedSave upserts an authoritative product row. Once a
// category has curated rows they supersede legacy images and filesystem
// inference entirely.
func (a *App) handleCuratedSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	cat, ok := catalog.ParseCategory(c.FormValue("category"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown category")
	}
	name := strings.TrimSpace(c.FormValue("name"))
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "name is required")
	}
	price, err := strconv.Atoi(strings.TrimSpace(c.FormValue("price")))
	if err != nil || price <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "price must be a positive integer")
	}
	image := strings.TrimSpace(c.FormValue("image"))
	if image == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "image is required")
	}
	id := strings.TrimSpace(c.FormValue("id"))
	if id == "" {
		id = catalog.Slugify(name)
	}
	gender := catalog.Gender(c.FormValue("gender"))
	if gender != catalog.Unisex {
		gender = catalog.Men
	}
	tags := FilterEmpty(strings.Split(c.FormValue("tags"), ","))

	p := catalog.Product{
		ID:          id,
		Name:        name,
		Description: strings.TrimSpace(c.FormValue("description")),
		Price:       price,
		Image:       image,
		Category:    cat,
		Tags:        tags,
		Gender:      gender,
		Featured:    c.FormValue("featured") != "",
	}
	if err := a.Store.SaveCuratedProduct(p, strings.TrimSpace(c.FormValue("subcategory"))); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.JSON(http.StatusOK, p)
}

func (a *App) handleCuratedDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := a.Store.DeleteCuratedProduct(c.Param("id")); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.NoContent(http.StatusNoContent)
}

func (a *App) renderAdminDashboard(c echo.Context, msg string) error {
	images, err := a.Store.ListImages()
	if err != nil {
		return err
	}
	if a.Views.AdminDashboard != nil {
		return Render(c, a.Views.AdminDashboard(images, msg, CsrfToken(c)))
	}
	return c.JSON(http.StatusOK, map[string]any{"images": images, "message": msg})
}
