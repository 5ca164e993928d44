package main

import (
	"context"
	"os"

	bookingservice "bookmycar/internal/booking-service"
	"bookmycar/internal/config"
	"bookmycar/internal/mylogger"
)

func main() {
	cfg := config.New()
	mylog := mylogger.New(cfg.Log.Level)

	if err := bookingservice.Execute(context.Background(), mylog, cfg); err != nil {
		mylog.Error("service stopped with error", err)
		os.Exit(1)
	}
}
