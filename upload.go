package solestore

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kmwangi/solestore/catalog"
	"github.com/kmwangi/solestore/imaging"
	"github.com/kmwangi/solestore/storage"
)

const maxUploadSize = 10 << 20 // 10MB

var allowedUploadExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadResult is the JSON response for a successful admin upload.
type UploadResult struct {
	ID               int64   `json:"id"`
	URL              string  `json:"url"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	Width            int     `json:"width"`
	Height           int     `json:"height"`
	Format           string  `json:"format"`
	OriginalSize     int     `json:"original_size"`
	OptimizedSize    int     `json:"optimized_size"`
	CompressionRatio float64 `json:"compression_ratio"`
}

// uploadInput carries the validated request fields into the publish
// stage.
type uploadInput struct {
	Category    catalog.Category
	Subcategory string
	Filename    string
	Name        string
	Price       int
	Description string
}

// handleImageUpload runs the admin upload pipeline: validate the
// request, optimize, thumbnail, then publish both variants and write
// the image record.
func (a *App) handleImageUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if a.Publisher == nil {
		return echo.NewHTTPError(http.StatusServiceUnavailable, "object storage is not configured")
	}

	cat, ok := catalog.ParseCategory(c.FormValue("category"))
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "category selection is required")
	}

	file, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no image file provided")
	}
	if file.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusBadRequest, "file too large (max 10MB)")
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedUploadExts[ext] {
		return echo.NewHTTPError(http.StatusBadRequest, "unsupported file type (want jpg, jpeg, png or webp)")
	}

	price := 0
	if v := strings.TrimSpace(c.FormValue("price")); v != "" {
		if price, err = strconv.Atoi(v); err != nil || price < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "price must be a non-negative integer")
		}
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()
	raw, err := io.ReadAll(src)
	if err != nil {
		return err
	}

	optimize := c.FormValue("optimize") != "false"
	format := imaging.Format(c.FormValue("format"))

	primary, err := a.optimizeUpload(raw, optimize, format)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image: "+err.Error())
	}
	thumb, err := imaging.CreateThumbnail(raw, 0)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image: "+err.Error())
	}

	res, err := a.publishUpload(c.Request().Context(), uploadInput{
		Category:    cat,
		Subcategory: strings.TrimSpace(c.FormValue("subcategory")),
		Filename:    file.Filename,
		Name:        strings.TrimSpace(c.FormValue("name")),
		Price:       price,
		Description: strings.TrimSpace(c.FormValue("description")),
	}, primary, thumb)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// publishUpload pushes both image variants to object storage, then
// writes the metadata record. Any failure after the first publish
// deletes the already-published objects so the bucket doesn't
// accumulate orphans.
func (a *App) publishUpload(ctx context.Context, in uploadInput, primary, thumb imaging.Result) (UploadResult, error) {
	base := strings.TrimSuffix(in.Filename, filepath.Ext(in.Filename))
	key := storage.ObjectKey(string(in.Category), in.Subcategory, base, imaging.Ext(primary.Format))
	thumbKey := storage.ThumbKey(key)

	url, err := a.Publisher.Publish(ctx, key, primary.Buffer, imaging.ContentType(primary.Format))
	if err != nil {
		return UploadResult{}, err
	}
	thumbURL, err := a.Publisher.Publish(ctx, thumbKey, thumb.Buffer, imaging.ContentType(thumb.Format))
	if err != nil {
		a.removeOrphans(ctx, key)
		return UploadResult{}, err
	}

	id, err := a.Store.SaveImage(catalog.StoredImage{
		Category:     in.Category,
		Subcategory:  in.Subcategory,
		Filename:     in.Filename,
		URL:          url,
		StoragePath:  key,
		ThumbnailURL: thumbURL,
		Name:         in.Name,
		Price:        in.Price,
		Description:  in.Description,
		FileSize:     int64(primary.Size),
		MimeType:     imaging.ContentType(primary.Format),
		Width:        primary.Width,
		Height:       primary.Height,
	})
	if err != nil {
		a.removeOrphans(ctx, key, thumbKey)
		return UploadResult{}, err
	}

	a.Cache.Invalidate()
	return UploadResult{
		ID:               id,
		URL:              url,
		ThumbnailURL:     thumbURL,
		Width:            primary.Width,
		Height:           primary.Height,
		Format:           string(primary.Format),
		OriginalSize:     primary.OriginalSize,
		OptimizedSize:    primary.Size,
		CompressionRatio: primary.CompressionRatio,
	}, nil
}

// optimizeUpload applies the optimization gate: small inputs and
// optimize=false uploads pass through unmodified, keeping their original
// encoding.
func (a *App) optimizeUpload(raw []byte, optimize bool, format imaging.Format) (imaging.Result, error) {
	if optimize && imaging.ShouldOptimize(raw, 0) {
		return imaging.Optimize(raw, imaging.Options{Format: format})
	}
	w, h, err := imaging.Dimensions(raw)
	if err != nil {
		return imaging.Result{}, err
	}
	return imaging.Result{
		Buffer:       raw,
		Width:        w,
		Height:       h,
		Format:       sniffFormat(raw),
		Size:         len(raw),
		OriginalSize: len(raw),
	}, nil
}

func sniffFormat(raw []byte) imaging.Format {
	switch http.DetectContentType(raw) {
	case "image/png":
		return imaging.FormatPNG
	case "image/webp":
		return imaging.FormatWebP
	default:
		return imaging.FormatJPEG
	}
}

// handleImageDelete removes a legacy image record together with both of
// its published objects. Storage errors abort the delete so the record
// stays visible for a retry.
func (a *App) handleImageDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid image id")
	}
	rec, err := a.Store.GetImage(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return echo.NewHTTPError(http.StatusNotFound, "image not found")
		}
		return err
	}

	if a.Publisher != nil && rec.StoragePath != "" {
		ctx := c.Request().Context()
		if err := a.Publisher.Delete(ctx, rec.StoragePath); err != nil {
			return err
		}
		if err := a.Publisher.Delete(ctx, storage.ThumbKey(rec.StoragePath)); err != nil {
			return err
		}
	}

	if err := a.Store.DeleteImage(id); err != nil {
		return err
	}
	a.Cache.Invalidate()
	return c.NoContent(http.StatusNoContent)
}

// removeOrphans best-effort deletes objects published earlier in a
// failed upload.
func (a *App) removeOrphans(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := a.Publisher.Delete(ctx, key); err != nil {
			a.Echo.Logger.Warnf("remove orphaned upload %s: %v", key, err)
		}
	}
}
