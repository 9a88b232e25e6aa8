package cmd

import "time"

type Config struct {
	HTTPPort        string
	DBHost          string
	DBPort          string
	DBUser          string
	DBPassword      string
	DBName          string
	DBSslMode       string
	CacheCapacity   int
	CacheTTL        time.Duration
	CleanupSchedule string
	Retention       time.Duration
}
