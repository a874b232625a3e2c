package tiled

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/map", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"classes": [{"id": 1, "name": "booth", "type": "class"}],
			"maps": [{"width": 3, "height": 1, "tilewidth": 8, "tileheight": 8}]}`))
	})
	mux.HandleFunc("/single.json", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"width": 4, "height": 2, "tilewidth": 8, "tileheight": 8}`))
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"classes": [], "maps": []}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	t.Run("bundle", func(t *testing.T) {
		b, err := Fetch(context.Background(), srv.Client(), srv.URL+"/map", false)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if len(b.Classes) != 1 || len(b.Maps) != 1 || b.Maps[0].Width != 3 {
			t.Fatalf("bundle = %+v", b)
		}
	})

	t.Run("single", func(t *testing.T) {
		b, err := Fetch(context.Background(), srv.Client(), srv.URL+"/single.json", true)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if len(b.Classes) != 0 || len(b.Maps) != 1 || b.Maps[0].PixelWidth() != 32 {
			t.Fatalf("bundle = %+v", b)
		}
	})

	t.Run("no maps", func(t *testing.T) {
		b, err := Fetch(context.Background(), srv.Client(), srv.URL+"/empty", false)
		if err != nil {
			t.Fatalf("Fetch: %v", err)
		}
		if _, err := b.First(); !errors.Is(err, ErrNoMaps) {
			t.Fatalf("First err = %v, want ErrNoMaps", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		if _, err := Fetch(context.Background(), srv.Client(), srv.URL+"/nope", false); err == nil {
			t.Fatalf("expected error for 404")
		}
	})
}
