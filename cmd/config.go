package cmd

import (
	"fmt"
	"time"
)

const (
	DefaultHTTPPort                = "8080"
	DefaultDestinationLocationName = "Austin"
	DefaultRequestTimeout          = 10 * time.Second
	DefaultOrderStatusTopic        = "order.status.changed"
	DefaultOutboxBatchSize         = 100
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// DestinationLocationName is the branch that fulfils orders of every other branch.
	DestinationLocationName string
	RequestTimeout          time.Duration

	// KafkaHost is a comma separated broker list. When empty, relayed events are only logged.
	KafkaHost             string
	KafkaOrderStatusTopic string
	OutboxSchedule        string
	OutboxBatchSize       int
}

// DSN builds the libpq connection string for the GORM postgres driver.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

// WithDefaults fills the optional settings left empty in the environment.
func (c Config) WithDefaults() Config {
	if c.HTTPPort == "" {
		c.HTTPPort = DefaultHTTPPort
	}
	if c.DBSslMode == "" {
		c.DBSslMode = "disable"
	}
	if c.DestinationLocationName == "" {
		c.DestinationLocationName = DefaultDestinationLocationName
	}
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = DefaultRequestTimeout
	}
	if c.KafkaOrderStatusTopic == "" {
		c.KafkaOrderStatusTopic = DefaultOrderStatusTopic
	}
	if c.OutboxBatchSize <= 0 {
		c.OutboxBatchSize = DefaultOutboxBatchSize
	}
	return c
}
