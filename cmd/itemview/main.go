// Package main provides itemview, which loads the item catalogue, equips the
// configured character, and prints each item's derived view and the
// character's derived stats.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/arpg/internal/config"
	"github.com/cory-johannsen/arpg/internal/game/character"
	"github.com/cory-johannsen/arpg/internal/game/item"
	"github.com/cory-johannsen/arpg/internal/game/stat"
	"github.com/cory-johannsen/arpg/internal/observability"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	itemsDir := flag.String("items-dir", "", "override content.items_dir")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *itemsDir != "" {
		cfg.Content.ItemsDir = *itemsDir
	}

	logger, err := observability.NewLogger(cfg.Logging, "itemview")
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	catalogue := item.NewCatalogue(logger)
	if err := catalogue.LoadDir(cfg.Content.ItemsDir); err != nil {
		logger.Fatal("loading item catalogue", zap.Error(err))
	}

	player, err := character.Build(cfg.Player.BaseStats)
	if err != nil {
		logger.Fatal("building player", zap.Error(err))
	}

	var items []*item.Item
	for _, def := range catalogue.All() {
		it, err := catalogue.Build(def.ID)
		if err != nil {
			logger.Fatal("building item", zap.String("id", def.ID), zap.Error(err))
		}
		items = append(items, it)
		player.Pickup(it)
		if def.Equipped {
			player.Equip(it.ID)
			logger.Debug("item equipped", zap.String("id", def.ID), zap.String("item_id", it.ID.String()))
		}
	}

	out := os.Stdout
	for _, it := range items {
		writePresentation(out, it.Present(player.BaseStats))
		fmt.Fprintln(out)
	}
	writeStats(out, "Player", player.DerivedStats())

	logger.Info("itemview complete",
		zap.Int("items", len(items)),
		zap.Int("equipped", len(player.Equipment())),
		zap.Duration("elapsed", time.Since(start)),
	)
}

func writePresentation(w io.Writer, p item.Presentation) {
	if p.Name != "" {
		fmt.Fprintf(w, "%s (%s)\n", p.Name, p.Rarity)
	}
	fmt.Fprintf(w, "%s", p.Base)
	if p.Name == "" {
		fmt.Fprintf(w, " (%s)", p.Rarity)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, p.Class)

	if p.Damage != nil {
		mark := ""
		if p.Damage.IsModified {
			mark = " *"
		}
		fmt.Fprintf(w, "Damage: %d-%d%s\n", p.Damage.Min, p.Damage.Max, mark)
	}
	if len(p.Requirements) > 0 {
		parts := make([]string, 0, len(p.Requirements))
		for _, r := range p.Requirements {
			s := fmt.Sprintf("%s %d", r.Requirement.Kind, r.Requirement.Amount)
			if !r.IsMet {
				s += " (unmet)"
			}
			parts = append(parts, s)
		}
		fmt.Fprintf(w, "Requires %s\n", strings.Join(parts, ", "))
	}
	for _, m := range p.Modifiers {
		fmt.Fprintln(w, m)
	}
}

func writeStats(w io.Writer, title string, b stat.Block) {
	fmt.Fprintln(w, title)
	for _, s := range b.Stats() {
		fmt.Fprintf(w, "  %s: %d\n", s.Kind, s.Value)
	}
}
