package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"serpent/internal/astcache"
	"serpent/internal/config"
)

var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the on-disk tree cache",
}

var cachePutCmd = &cobra.Command{
	Use:   "put <unit.mp>...",
	Short: "Store unit files in the cache, keyed by their source",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := requireCache(cmd)
		if err != nil {
			return err
		}
		for _, p := range args {
			u, err := astcache.ReadFile(p)
			if err != nil {
				return fmt.Errorf("%s: %w", p, err)
			}
			if err := cache.Put(u); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "cached %d unit(s) in %s\n", len(args), cache.Dir())
		return nil
	},
}

var cacheCleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop every cached unit",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cache, err := requireCache(cmd)
		if err != nil {
			return err
		}
		return cache.DropAll()
	},
}

func init() {
	cacheCmd.AddCommand(cachePutCmd)
	cacheCmd.AddCommand(cacheCleanCmd)
}

func requireCache(cmd *cobra.Command) (*astcache.DiskCache, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if !cfg.Cache.Enabled {
		return nil, fmt.Errorf("cache is disabled in %s", config.FileName)
	}
	return openCache(cfg)
}
