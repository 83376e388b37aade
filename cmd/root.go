package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/curator/internal/config"
	"github.com/zjrosen/curator/internal/log"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "curator",
	Short:   "A registry for declarative asset spec records",
	Long:    `Curator loads asset spec documents from configured directories into an in-memory registry and lets you inspect, validate, and manage the registered records.`,
	Version: version,
	RunE:    runSummary,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/curator/config.yaml)")
	rootCmd.PersistentFlags().StringSliceP("dir", "d", nil,
		"spec directory to scan (repeatable)")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging")

	// Bind flags to viper
	_ = viper.BindPFlag("spec_dirs", rootCmd.PersistentFlags().Lookup("dir"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("spec_dirs", defaults.SpecDirs)
	viper.SetDefault("log_file", defaults.LogFile)
	viper.SetDefault("cache.enabled", defaults.Cache.Enabled)
	viper.SetDefault("cache.ttl", defaults.Cache.TTL)
	viper.SetDefault("watch.debounce", defaults.Watch.Debounce)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .curator/config.yaml (current directory)
		// 2. ~/.config/curator/config.yaml (user config)
		if _, err := os.Stat(".curator/config.yaml"); err == nil {
			viper.SetConfigFile(".curator/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "curator"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - continue with defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "warning: reading config: %v\n", err)
		}
	}

	_ = viper.Unmarshal(&cfg)

	if os.Getenv("CURATOR_DEBUG") != "" {
		cfg.Debug = true
	}
	initLogging()
	log.Debug(log.CatConfig, "configuration loaded",
		"file", viper.ConfigFileUsed(), "dirs", cfg.SpecDirs)
}

// initLogging sets up the file logger when debug is enabled.
func initLogging() {
	if !cfg.Debug {
		return
	}
	if _, err := log.Init(cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "warning: opening log file: %v\n", err)
		return
	}
	log.SetMinLevel(log.LevelDebug)
}

// runSummary loads the configured spec directories and prints a summary of
// the registry contents.
func runSummary(cmd *cobra.Command, args []string) error {
	mgr, _, err := buildManager()
	if err != nil {
		return err
	}

	counts := make(map[string]int)
	for _, handle := range mgr.Handles() {
		obj, err := mgr.GetObjectCopyByHandle(handle)
		if err != nil {
			continue
		}
		counts[obj.GetClassKey()]++
	}

	fmt.Printf("%d spec(s) registered from %v\n", mgr.NumObjects(), cfg.SpecDirs)
	for key, n := range counts {
		fmt.Printf("  %-10s %d\n", key, n)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
