package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mpfechner/movie-manager-cli/internal/util"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// Version is set at build time
	Version = "dev"

	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "movies",
		Short: "Personal movie collection manager",
		Long: `movies maintains a personal movie collection per user profile.

Titles are enriched via the OMDb API on add, stored in a shared SQLite
database, and can be listed, fuzzy-searched, sorted, filtered, updated,
deleted, summarized and exported to a static HTML page. Destructive
commands resolve approximate titles with a confidence score and always
ask for confirmation before touching the store.`,
		Version: Version,
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./movies.yaml)")
	rootCmd.PersistentFlags().String("db", "movies.db", "collection database file")
	rootCmd.PersistentFlags().StringP("user", "u", "", "active user profile")
	rootCmd.PersistentFlags().String("api-key", "", "OMDb API key")
	rootCmd.PersistentFlags().Bool("test-mode", false, "use fixture metadata instead of the OMDb API")
	rootCmd.PersistentFlags().Bool("audit", false, "write a JSONL audit log of mutations")
	rootCmd.PersistentFlags().String("audit-dir", "artifacts", "directory for audit logs")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "quiet output (errors only)")

	// Bind flags to viper
	viper.BindPFlag("db", rootCmd.PersistentFlags().Lookup("db"))
	viper.BindPFlag("user", rootCmd.PersistentFlags().Lookup("user"))
	viper.BindPFlag("api-key", rootCmd.PersistentFlags().Lookup("api-key"))
	viper.BindPFlag("test-mode", rootCmd.PersistentFlags().Lookup("test-mode"))
	viper.BindPFlag("audit", rootCmd.PersistentFlags().Lookup("audit"))
	viper.BindPFlag("audit-dir", rootCmd.PersistentFlags().Lookup("audit-dir"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

func initConfig() {
	// Local .env keeps the OMDb API key out of shell history
	godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("movies")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MOVIES")
	viper.AutomaticEnv()
	viper.BindEnv("api-key", "OMDB_API_KEY", "MOVIES_API_KEY")

	if err := viper.ReadInConfig(); err == nil && !viper.GetBool("quiet") {
		util.DebugLog("Using config file: %s", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
