package runner

import (
	"context"
	"flag"
	"os"
	"strconv"
)

type Runner interface {
	Run(context.Context) error
	Close(context.Context) error
}

type Config struct {
	Addr        string
	Debug       bool
	Seed        bool
	EventBuffer int
}

func ParseConfig() *Config {
	cfg := Config{}

	flag.StringVar(&cfg.Addr, "addr", envString("POSTWIRE_ADDR", ":8080"), "listen address")
	flag.BoolVar(&cfg.Debug, "debug", envBool("POSTWIRE_DEBUG"), "enable debug logging")
	flag.BoolVar(&cfg.Seed, "seed", false, "load the demo dataset on startup")
	flag.IntVar(&cfg.EventBuffer, "event-buffer", 16, "per-subscriber event buffer size")

	flag.Parse()

	return &cfg
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func envBool(key string) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return false
	}

	return v
}
