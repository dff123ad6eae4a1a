package main

import (
	"context"
	"fmt"
	"time"
)

// background runs fn in its own goroutine. Shutdown waits for it, and a
// panic is logged instead of taking the server down.
func (app *application) background(fn func()) {
	app.wg.Add(1)

	go func() {
		defer app.wg.Done()
		defer func() {
			if err := recover(); err != nil {
				app.logger.Errorw("background task panicked", "error", fmt.Sprint(err))
			}
		}()

		fn()
	}()
}

// warmPlacesEvery keeps the places cache filled so map requests rarely wait
// on the geodata service.
func (app *application) warmPlacesEvery(interval time.Duration, done <-chan struct{}) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Run once immediately
		app.warmPlaces()

		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				app.warmPlaces()
			}
		}
	}()
}

func (app *application) warmPlaces() {
	ctx, cancel := context.WithTimeout(context.Background(), app.config.places.timeout+5*time.Second)
	defer cancel()

	all, err := app.places.List(ctx, "")
	if err != nil {
		app.logger.Errorf("Error warming places cache: %v", err)
		return
	}
	app.logger.Infof("Places cache holds %d places at %s", len(all), time.Now().Format(time.RFC1123))
}
