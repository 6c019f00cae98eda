package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/devnullvoid/shoptui/pkg/mockcatalog"
)

func main() {
	var port int
	var modeFlag string
	var delay time.Duration

	flag.IntVar(&port, "port", 8080, "Port to listen on")
	flag.StringVar(&modeFlag, "mode", string(mockcatalog.ModeOK), "Answer mode: ok, empty, fail or malformed")
	flag.DurationVar(&delay, "delay", 0, "Delay before answering /products")
	flag.Parse()

	mode, err := mockcatalog.ParseMode(modeFlag)
	if err != nil {
		log.Fatal(err)
	}

	state := mockcatalog.NewMockState()
	state.SetMode(mode)
	state.SetDelay(delay)

	router := mockcatalog.NewRouter(state)
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Printf("%s %s (request %s)", r.Method, r.URL.Path, r.Header.Get("X-Request-ID"))
			next.ServeHTTP(w, r)
		})
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Printf("Mock catalog listening on http://localhost:%d/products (mode=%s, delay=%s)", port, mode, delay)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
