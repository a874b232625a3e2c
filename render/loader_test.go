package render

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestAssetPath(t *testing.T) {
	cases := []struct {
		base, ref, want string
	}{
		{"/images", "../images/tiles.png", "/images/tiles.png"},
		{"/images/", "tiles.png", "/images/tiles.png"},
		{"assets", `..\art\bg.png`, "assets/bg.png"},
		{"http://localhost:8000/images", "a/b/c.png", "http://localhost:8000/images/c.png"},
	}
	for _, c := range cases {
		if got := AssetPath(c.base, c.ref); got != c.want {
			t.Errorf("AssetPath(%q, %q) = %q, want %q", c.base, c.ref, got, c.want)
		}
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.NRGBA{R: 0xff, A: 0xff})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "tiles.png"))

	l := FileLoader{BasePath: dir}
	img, err := l.LoadImage(context.Background(), "../somewhere/else/tiles.png")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	if _, err := l.LoadImage(context.Background(), "missing.png"); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestHTTPLoader(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "bg.png"))
	srv := httptest.NewServer(http.StripPrefix("/images/", http.FileServer(http.Dir(dir))))
	defer srv.Close()

	l := HTTPLoader{BaseURL: srv.URL + "/images"}
	if _, err := l.LoadImage(context.Background(), "../images/bg.png"); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if _, err := l.LoadImage(context.Background(), "nope.png"); err == nil {
		t.Fatalf("expected error for 404")
	}
}

type countingLoader struct {
	calls int
}

func (c *countingLoader) LoadImage(ctx context.Context, ref string) (image.Image, error) {
	c.calls++
	return image.NewNRGBA(image.Rect(0, 0, 1, 1)), nil
}

func TestCachedLoader(t *testing.T) {
	next := &countingLoader{}
	l := NewCachedLoader(next)
	ctx := context.Background()
	a, err := l.LoadImage(ctx, "../images/tiles.png")
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	b, _ := l.LoadImage(ctx, "tiles.png")
	if a != b {
		t.Fatalf("same file name should share the cached image")
	}
	if next.calls != 1 {
		t.Fatalf("calls = %d, want 1", next.calls)
	}
	if _, err := l.LoadImage(ctx, ""); err == nil {
		t.Fatalf("empty reference should fail")
	}
}
