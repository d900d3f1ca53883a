package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"booksite/booksite"

	"github.com/spf13/afero"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fs := afero.NewOsFs()
	site := booksite.NewSite(fs, afero.NewBasePathFs(fs, booksite.Env("ASSETS")))

	if err := site.Load(); err != nil {
		log.Fatalf("Failed to load site: %v", err)
	}

	go func() {
		if err := site.Watch(ctx); err != nil {
			log.Printf("Config watcher stopped: %v", err)
		}
	}()

	port := booksite.Env("PORT")
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      site.Handler(os.Stdout),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		fmt.Printf("running on :%s\n", port)
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("HTTP server error: %v\n", err)
			stop()
		}
	}()

	<-ctx.Done()

	fmt.Println("\nShutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v\n", err)
	}
}
