package server

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/texcomp/canvas"
	"github.com/gogpu/texcomp/internal/imageio"
	"github.com/gogpu/texcomp/internal/wire"
	"github.com/gogpu/texcomp/pattern"
	"github.com/gogpu/texcomp/text"
	"github.com/gogpu/texcomp/zone"
)

// multipartMemory is the part of a multipart body kept in memory; the rest
// spills to temporary files.
const multipartMemory = 8 << 20

const (
	defaultPreviewHeight = 512
	maxPreviewHeight     = 4096
	defaultQRSize        = 400
	maxQRSize            = 2048
)

func (s *Server) health(c *gin.Context) {
	b := s.base.Bounds()
	c.JSON(http.StatusOK, gin.H{
		"status":     "ok",
		"base":       gin.H{"width": b.Dx(), "height": b.Dy()},
		"patterns":   pattern.Names(),
		"zones":      zone.Zones(),
		"placements": text.Placements(),
	})
}

// composite renders the multipart form field "request" (a wire document).
// Image references in the document name other file fields of the form.
func (s *Server) composite(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.limits.Bytes)
	if err := c.Request.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			abort(c, http.StatusRequestEntityTooLarge, err)
			return
		}
		abort(c, http.StatusBadRequest, err)
		return
	}

	doc, err := wire.Decode(strings.NewReader(c.Request.FormValue("request")))
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	req, recipe, err := wire.Build(doc, s.base, s.formImage(c))
	if err != nil {
		if errors.Is(err, imageio.ErrTooManyPixels) {
			abort(c, http.StatusRequestEntityTooLarge, err)
			return
		}
		abort(c, http.StatusBadRequest, err)
		return
	}
	out, err := s.comp.Render(recipe, req)
	if err != nil {
		abort(c, http.StatusInternalServerError, err)
		return
	}
	writePNG(c, out)
}

// formImage resolves image references against the uploaded files.
func (s *Server) formImage(c *gin.Context) wire.Loader {
	return func(field string) (image.Image, error) {
		fh, err := c.FormFile(field)
		if err != nil {
			return nil, fmt.Errorf("form file %q: %w", field, err)
		}
		f, err := fh.Open()
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return imageio.DecodeLimit(f, s.limits.Pixels)
	}
}

// patternPreview renders a pattern across a square canvas of the
// requested height. Colours are a comma-separated list.
func (s *Server) patternPreview(c *gin.Context) {
	height, err := intQuery(c, "height", defaultPreviewHeight, maxPreviewHeight)
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	var colors []color.NRGBA
	for _, v := range strings.Split(c.Query("colors"), ",") {
		if strings.TrimSpace(v) == "" {
			continue
		}
		col, err := wire.ParseColor(v)
		if err != nil {
			abort(c, http.StatusBadRequest, err)
			return
		}
		colors = append(colors, col)
	}

	tile, ok := pattern.Generate(pattern.Spec{Name: pattern.Name(c.Param("name")), Colors: colors}, height)
	if !ok {
		abort(c, http.StatusNotFound, fmt.Errorf("no pattern %q for %d colours", c.Param("name"), len(colors)))
		return
	}
	dc := canvas.New(height, height)
	pattern.Fill(dc, tile)
	writePNG(c, dc.Image())
}

func (s *Server) qr(c *gin.Context) {
	size, err := intQuery(c, "size", defaultQRSize, maxQRSize)
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	img, err := imageio.QR(c.Query("text"), size)
	if err != nil {
		abort(c, http.StatusBadRequest, err)
		return
	}
	writePNG(c, img)
}

func intQuery(c *gin.Context, key string, def, limit int) (int, error) {
	s := c.Query(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 || n > limit {
		return 0, fmt.Errorf("%s must be between 1 and %d", key, limit)
	}
	return n, nil
}

func writePNG(c *gin.Context, img image.Image) {
	var buf bytes.Buffer
	if err := imageio.EncodePNG(&buf, img); err != nil {
		abort(c, http.StatusInternalServerError, err)
		return
	}
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}

func abort(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
