package server

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

type Config struct {
	Listen        string
	CatalogURL    string
	StorageURI    string
	MetricsListen string
	Debug         bool
}

var cfg Config

var CMD = &cobra.Command{
	Use:   "server",
	Short: "start the gateway http server",
	Run: func(cmd *cobra.Command, args []string) {
		Main(cfg)
	},
}

func init() {
	_ = godotenv.Load()

	CMD.Flags().StringVar(&cfg.Listen, "listen", envOr("GATEWAY_LISTEN", ":5000"), "Address to serve the public API on")
	CMD.Flags().StringVar(&cfg.CatalogURL, "catalog", envOr("GATEWAY_CATALOG_URL", "http://localhost:5001"), "Base URL of the catalog service")
	CMD.Flags().StringVar(&cfg.StorageURI, "storage-uri", envOr("GATEWAY_STORAGE_URI", "memory://"), "Rate limit counter storage (memory:// or redis://...)")
	CMD.Flags().StringVar(&cfg.MetricsListen, "metrics-listen", envOr("GATEWAY_METRICS_LISTEN", ":27667"), "Address for /healthz and /metrics")
	CMD.Flags().BoolVar(&cfg.Debug, "debug", envOr("GATEWAY_DEBUG", "") == "true", "Debug mode, surfaces errors instead of masking them")
}

func envOr(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
