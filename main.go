package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"time"

	"github.com/dmallory42/super-fpl-sub001/controller"
	"github.com/dmallory42/super-fpl-sub001/platforms/fpl"
	"github.com/dmallory42/super-fpl-sub001/store"
	"github.com/dmallory42/super-fpl-sub001/web"
	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	clock := clock.New()
	store := store.New(clock)

	fplClient, err := fpl.New()
	if err != nil {
		log.Fatalf("error creating fpl client: %v", err)
	}

	ctrl, err := controller.New(clock, fplClient, store)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	// Warm the bootstrap cache before serving. A failure here is not fatal,
	// the first request will retry.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := ctrl.UpdateData(ctx); err != nil {
		log.Printf("error loading initial data: %v", err)
	}
	cancel()

	server, err := web.NewServer(portNum, ctrl)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Setup a job that refreshes the FPL bootstrap data so prices and
	// predictions stay current. Hourly unless overridden.
	frequency := time.Hour
	if f := os.Getenv("UPDATE_FREQUENCY"); f != "" {
		frequency, err = time.ParseDuration(f)
		if err != nil {
			log.Fatalf("error parsing update frequency: %v", err)
		}
	}
	wg.Add(1)
	go ctrl.RunPeriodicDataUpdates(frequency, shutdown, wg)

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
