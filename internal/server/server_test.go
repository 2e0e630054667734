package server

import (
	"bytes"
	"encoding/json"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/gogpu/texcomp"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func uniform(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

// testPixelLimit admits every image the tests upload except the oversized
// ones.
const testPixelLimit = 1 << 20

func newTestServer(maxUpload int64) http.Handler {
	return New(texcomp.New(), uniform(128, 128, color.White), Limits{Bytes: maxUpload, Pixels: testPixelLimit}).Handler()
}

// multipartBody builds a composite form with the given request document and
// PNG files.
func multipartBody(t *testing.T, doc string, files map[string]image.Image) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	if err := mw.WriteField("request", doc); err != nil {
		t.Fatal(err)
	}
	for field, img := range files {
		fw, err := mw.CreateFormFile(field, field+".png")
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(fw, img); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return &body, mw.FormDataContentType()
}

func decodePNG(t *testing.T, rec *httptest.ResponseRecorder) image.Image {
	t.Helper()
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("Content-Type = %q, want image/png (body %s)", ct, rec.Body.String())
	}
	img, err := png.Decode(rec.Body)
	if err != nil {
		t.Fatal(err)
	}
	return img
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(1<<20).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var got struct {
		Status string `json:"status"`
		Base   struct {
			Width int `json:"width"`
		} `json:"base"`
		Zones []string `json:"zones"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Status != "ok" || got.Base.Width != 128 || len(got.Zones) != 4 {
		t.Errorf("health = %+v", got)
	}
}

func TestComposite(t *testing.T) {
	gray := color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	body, ct := multipartBody(t, `{"upload": "upload", "logo": {"image": "logo", "zone": "footbed"}}`,
		map[string]image.Image{
			"upload": uniform(4, 4, gray),
			"logo":   uniform(4, 4, color.Black),
		})
	req := httptest.NewRequest(http.MethodPost, "/api/composite", body)
	req.Header.Set("Content-Type", ct)
	rec := httptest.NewRecorder()
	newTestServer(1<<20).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	img := decodePNG(t, rec)
	if b := img.Bounds(); b.Dx() != 128 || b.Dy() != 128 {
		t.Errorf("bounds = %v, want base size", b)
	}
	if got := color.NRGBAModel.Convert(img.At(64, 10)).(color.NRGBA); got != gray {
		t.Errorf("pixel = %v, want upload multiplied over white %v", got, gray)
	}
}

func TestCompositeErrors(t *testing.T) {
	tests := []struct {
		name   string
		doc    string
		files  map[string]image.Image
		limit  int64
		status int
	}{
		{"bad json", `{"tint":`, nil, 1 << 20, http.StatusBadRequest},
		{"unknown field", `{"sparkle": 1}`, nil, 1 << 20, http.StatusBadRequest},
		{"missing file", `{"upload": "upload"}`, nil, 1 << 20, http.StatusBadRequest},
		{"two decorations", `{"tint": "red", "pattern": {"name": "dots", "colors": ["red"]}}`, nil, 1 << 20, http.StatusBadRequest},
		{"too large", `{"upload": "upload"}`, map[string]image.Image{"upload": noise(64, 64)}, 512, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartBody(t, tt.doc, tt.files)
			req := httptest.NewRequest(http.MethodPost, "/api/composite", body)
			req.Header.Set("Content-Type", ct)
			rec := httptest.NewRecorder()
			newTestServer(tt.limit).ServeHTTP(rec, req)
			if rec.Code != tt.status {
				t.Errorf("status = %d, want %d (%s)", rec.Code, tt.status, rec.Body.String())
			}
		})
	}
}

func TestCompositeRejectsHugeDimensions(t *testing.T) {
	// All-zero pixels compress to a few kilobytes, far under the byte cap.
	huge := image.NewGray(image.Rect(0, 0, 3000, 3000))
	for _, doc := range []string{
		`{"upload": "img"}`,
		`{"tint": "red", "logo": {"image": "img", "zone": "calf"}}`,
	} {
		body, ct := multipartBody(t, doc, map[string]image.Image{"img": huge})
		if body.Len() > 1<<20 {
			t.Fatalf("body is %d bytes, want under the 1 MiB cap", body.Len())
		}
		req := httptest.NewRequest(http.MethodPost, "/api/composite", body)
		req.Header.Set("Content-Type", ct)
		rec := httptest.NewRecorder()
		newTestServer(1<<20).ServeHTTP(rec, req)
		if rec.Code != http.StatusRequestEntityTooLarge {
			t.Errorf("%s: status = %d, want %d (%s)", doc, rec.Code, http.StatusRequestEntityTooLarge, rec.Body.String())
		}
	}
}

// noise returns an image that does not compress well.
func noise(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	seed := uint32(1)
	for i := range img.Pix {
		seed = seed*1664525 + 1013904223
		img.Pix[i] = uint8(seed >> 24)
	}
	return img
}

func TestPatternPreview(t *testing.T) {
	rec := httptest.NewRecorder()
	url := "/api/patterns/checkerboard?colors=red,%2300ff00&height=200"
	newTestServer(1<<20).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	img := decodePNG(t, rec)
	if b := img.Bounds(); b.Dx() != 200 {
		t.Errorf("bounds = %v, want 200 wide", b)
	}
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, color.NRGBA{R: 255, A: 255}},
		{50, 0, color.NRGBA{G: 255, A: 255}},
		{150, 150, color.NRGBA{R: 255, A: 255}},
	}
	for _, tt := range tests {
		if got := color.NRGBAModel.Convert(img.At(tt.x, tt.y)).(color.NRGBA); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestPatternPreviewErrors(t *testing.T) {
	tests := []struct {
		url    string
		status int
	}{
		{"/api/patterns/plaid?colors=red", http.StatusNotFound},
		{"/api/patterns/dots", http.StatusNotFound},
		{"/api/patterns/dots?colors=red,nope", http.StatusBadRequest},
		{"/api/patterns/custom1?colors=red&height=0", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		newTestServer(1<<20).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
		if rec.Code != tt.status {
			t.Errorf("GET %s = %d, want %d", tt.url, rec.Code, tt.status)
		}
	}
}

func TestQR(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(1<<20).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr?text=TEAM&size=128", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if b := decodePNG(t, rec).Bounds(); b.Dx() != 128 {
		t.Errorf("bounds = %v, want 128 wide", b)
	}

	rec = httptest.NewRecorder()
	newTestServer(1<<20).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/qr", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty text status = %d, want 400", rec.Code)
	}
}
