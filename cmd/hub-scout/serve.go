// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/awacke1/hub-scout/internal/catalog"
	"github.com/awacke1/hub-scout/internal/web"
	"github.com/awacke1/hub-scout/pkg/types"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the interactive hub browser",
	Long: `Serve starts a local web UI: a search form over the hub catalog, the
rendered result list with links, the aggregate report for each result
set, and a metadata pane per item.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	serverCfg := types.ServerConfig{
		Addr:         viper.GetString("server.addr"),
		DefaultQuery: viper.GetString("server.default_query"),
		DefaultKind:  types.Kind(viper.GetString("server.default_kind")),
	}
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		serverCfg.Addr = addr
	}

	client := catalog.New(catalogConfig(cmd))
	return web.New(client, serverCfg).ListenAndServe()
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from config, :8080)")
	serveCmd.Flags().Int("limit", 0, "maximum number of results per search (0 = config default)")

	rootCmd.AddCommand(serveCmd)
}
