package cmd

import "time"

// Config carries the runtime configuration loaded from the environment.
type Config struct {
	HTTPPort       string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBSslMode      string
	DeliveredAfter time.Duration
}
