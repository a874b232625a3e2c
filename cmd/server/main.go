package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/milk9111/poimap/config"
	"github.com/milk9111/poimap/server"
)

func main() {
	configPath := flag.String("config", "", "server yaml config (defaults are embedded)")
	addr := flag.String("addr", "", "listen address, overrides the config")
	flag.Parse()

	cfg, err := config.LoadServer(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if *addr != "" {
		cfg.Addr = *addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bundles := server.NewBundleService(cfg)
	if cfg.Watch {
		w, err := config.WatchTree(cfg.TiledDir, config.WithDebounce(cfg.WatchDebounce))
		if err != nil {
			log.Printf("watch disabled: %v", err)
		} else {
			defer w.Close()
			go bundles.Watch(ctx, w)
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.Routes(cfg, bundles),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("serving %s on %s", cfg.TiledDir, cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
