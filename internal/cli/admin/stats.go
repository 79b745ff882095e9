package admin

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/config"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/knowledge"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/service"
)

// StatsCmd returns the stats command
func StatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show knowledge base statistics",
		RunE:  runStats,
	}
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	store, err := knowledge.NewStore(cfg.KnowledgeDir)
	if err != nil {
		return fmt.Errorf("failed to open knowledge store: %w", err)
	}

	svc, err := service.NewRetrievalService(store)
	if err != nil {
		return fmt.Errorf("failed to build retrieval index: %w", err)
	}

	stats := svc.Stats(context.Background())
	fmt.Printf("knowledge dir:  %s\n", cfg.KnowledgeDir)
	fmt.Printf("total items:    %d\n", stats.TotalItems)
	fmt.Printf("indexed docs:   %d\n", stats.DocumentCount)

	categories := make([]string, 0, len(stats.PerCategory))
	for category := range stats.PerCategory {
		categories = append(categories, string(category))
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Printf("  %s: %d items\n", category, stats.PerCategory[domain.Category(category)])
	}
	return nil
}
