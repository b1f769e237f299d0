package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "eisodos",
	Short:        "micro-benchmark driver comparing environment builds of the same target suite",
	SilenceUsage: true,
}

func StringEnv(key string, def string) string {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return value
}

func IntEnv(key string, def int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return def
	}
	return parsed
}

func main() {
	cobra.OnInitialize(func() {
		// Missing .env is fine, environment variables still apply.
		_ = godotenv.Load()
	})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
