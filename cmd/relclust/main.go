package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	debug   bool
	trace   bool
	version = "dev"
)

var rootCmd = &cobra.Command{
	Use:     "relclust",
	Short:   "Reliability-oriented clustering of uncertain graphs",
	Long:    `relclust partitions an uncertain graph around k centers, maximising estimated connection probability under a Monte-Carlo possible-worlds model.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file overriding flag defaults")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "debug-level logging")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "trace-level logging (implies --debug)")

	rootCmd.AddCommand(clusterCmd)
}

// Commands are defined in separate files:
// - clusterCmd in cluster_cmd.go

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
