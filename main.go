package main

import (
	"fmt"
	"os"

	sr "github.com/crocdb/gateway/server"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "crocdb-gateway",
	Short: "Public query gateway for the crocdb catalog",
}

func init() {
	rootCmd.AddCommand(sr.CMD)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
