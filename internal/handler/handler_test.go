package handler

import (
	"os"
	"testing"

	"listing-service/pkg/config"
	"listing-service/prometheus"
)

func TestMain(m *testing.M) {
	prometheus.InitMetrics(&config.Config{
		Metrics: config.MetricsConfig{Prefix: "test"},
	})
	os.Exit(m.Run())
}
