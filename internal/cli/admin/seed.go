package admin

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/config"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/domain"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/knowledge"
	"github.com/DADDY2260/AI-UNITY-GENERATOR/internal/service"
)

type seedBatch struct {
	category    domain.Category
	subcategory domain.Subcategory
	items       []string
}

// seedBatches holds the extended knowledge that goes beyond the built-in
// defaults: enemy AI, level design, storytelling, and deeper Unity topics.
var seedBatches = []seedBatch{
	{
		category:    "game_design",
		subcategory: "enemy_ai_patterns",
		items: []string{
			"Patrol AI moves between predefined waypoints and switches to chase mode when player is detected",
			"Boss AI uses multiple attack phases based on remaining health percentage",
			"Stealth AI hides from the player and sets up ambushes when the player is vulnerable",
			"Swarm AI coordinates multiple enemies to surround and overwhelm the player",
			"Ranged AI maintains distance while attacking and seeks cover when threatened",
			"Aggressive AI charges directly at the player and uses close-combat attacks",
			"Defensive AI prioritizes survival and retreats when health is low",
			"Support AI heals or buffs other enemies rather than attacking directly",
			"Sniper AI takes precise shots from long distances and relocates after each shot",
			"Tank AI absorbs damage and protects weaker enemies while dealing heavy damage",
		},
	},
	{
		category:    "game_design",
		subcategory: "level_design",
		items: []string{
			"Hub areas provide safe zones where players can rest, upgrade, and plan their next move",
			"Linear progression guides players through a clear path while allowing for exploration",
			"Open world design gives players freedom to explore and discover content at their own pace",
			"Metroidvania-style backtracking rewards players with new abilities that unlock previous areas",
			"Procedural generation creates unique levels each time while maintaining core gameplay elements",
			"Vertical level design uses height differences to create interesting movement and combat scenarios",
			"Environmental storytelling reveals narrative through level details rather than explicit dialogue",
			"Checkpoint systems reduce frustration by allowing players to restart from strategic points",
			"Secret areas reward exploration and provide optional challenges or rewards",
			"Dynamic environments change during gameplay to create evolving challenges",
		},
	},
	{
		category:    "game_design",
		subcategory: "storytelling",
		items: []string{
			"Environmental storytelling reveals plot through level design, objects, and atmosphere",
			"Character development through dialogue choices that affect relationships and story outcomes",
			"Multiple endings based on player decisions create replayability and consequence",
			"Flashback sequences reveal character backstory and motivation without exposition",
			"Unreliable narrator creates mystery and forces players to question what they know",
			"Parallel storylines follow different characters whose paths eventually converge",
			"Time manipulation allows players to experience the same events from different perspectives",
			"Moral choices with no clear right answer create meaningful player decisions",
			"Collectible lore items expand the world without interrupting gameplay flow",
			"Dynamic storytelling adapts the narrative based on player behavior and choices",
		},
	},
	{
		category:    "game_design",
		subcategory: "game_mechanics",
		items: []string{
			"Combo systems reward skilled play by chaining attacks for increased damage",
			"Resource management creates strategic depth through limited health, ammo, or energy",
			"Skill trees allow players to customize their character build and playstyle",
			"Crafting systems let players create items from collected materials",
			"Stealth mechanics reward careful planning and patience over direct confrontation",
			"Physics-based gameplay creates emergent behavior and realistic interactions",
			"Time manipulation allows players to slow, stop, or reverse time for strategic advantage",
			"Multiplayer mechanics encourage cooperation, competition, or both",
			"Progression systems provide long-term goals and sense of achievement",
			"Risk-reward mechanics make players choose between safety and greater rewards",
		},
	},
	{
		category:    "unity_specific",
		subcategory: "camera_systems",
		items: []string{
			"Cinemachine provides advanced camera controls with virtual cameras and brain system",
			"Follow camera smoothly tracks the player with configurable damping and offset",
			"Camera shake adds impact to explosions, hits, and dramatic moments",
			"Multiple camera angles can be switched between for different gameplay situations",
			"Camera collision detection prevents the camera from clipping through walls",
			"Smooth camera transitions create cinematic effects between scenes",
			"Camera zoom can be used for dramatic effect or gameplay mechanics",
			"Split-screen cameras allow multiple players to see their own view",
			"Camera filters and post-processing create mood and atmosphere",
			"Dynamic camera positioning adapts to the environment and player actions",
		},
	},
	{
		category:    "unity_specific",
		subcategory: "lighting",
		items: []string{
			"Global illumination creates realistic lighting that bounces off surfaces naturally",
			"Dynamic lighting can change during gameplay to affect atmosphere and gameplay",
			"Light probes capture lighting information for moving objects",
			"Shadow mapping creates realistic shadows that enhance depth perception",
			"Volumetric lighting creates atmospheric effects like fog and dust",
			"Light cookies project patterns or textures through lights for dramatic effects",
			"Light layers allow different lights to affect specific objects or layers",
			"Real-time lighting provides immediate visual feedback for dynamic scenes",
			"Baked lighting improves performance for static environments",
			"Light intensity and color can be animated for dramatic effects",
		},
	},
	{
		category:    "unity_specific",
		subcategory: "textures",
		items: []string{
			"PBR (Physically Based Rendering) textures create realistic material appearance",
			"Texture atlasing combines multiple textures into one image to improve performance",
			"Normal maps add surface detail without increasing polygon count",
			"Specular maps control how shiny or rough a surface appears",
			"Emission maps make parts of textures glow for effects like neon or fire",
			"Detail textures add fine surface detail when viewed up close",
			"Texture streaming loads high-resolution textures only when needed",
			"Mipmaps provide different resolution versions for distance-based rendering",
			"Texture compression reduces file size while maintaining visual quality",
			"Procedural textures can be generated in real-time for infinite variety",
		},
	},
}

// SeedCmd returns the seed command
func SeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the knowledge base with extended game design and Unity knowledge",
		RunE:  runSeed,
	}
}

func runSeed(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

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

	var stats *domain.KnowledgeStats
	for _, batch := range seedBatches {
		stats, err = svc.AddKnowledge(ctx, batch.category, batch.subcategory, batch.items)
		if err != nil {
			return fmt.Errorf("failed to seed %s/%s: %w", batch.category, batch.subcategory, err)
		}
		fmt.Printf("seeded %s/%s (%d items)\n", batch.category, batch.subcategory, len(batch.items))
	}

	fmt.Printf("\nknowledge base: %d items total\n", stats.TotalItems)
	for category, count := range stats.PerCategory {
		fmt.Printf("  %s: %d items\n", category, count)
	}
	return nil
}
