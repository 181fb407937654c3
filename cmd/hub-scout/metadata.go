// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/awacke1/hub-scout/internal/catalog"
	"github.com/awacke1/hub-scout/pkg/types"
)

var metadataCmd = &cobra.Command{
	Use:   "metadata <id>",
	Short: "Look up the metadata card for a single catalog item",
	Long: `Metadata fetches the descriptive record for one item: author, revision,
downloads, likes, and tags. With --card the item's README is printed
instead. An unknown id is reported as such, distinct from the hub
being unreachable.`,
	Args: cobra.ExactArgs(1),
	RunE: runMetadata,
}

func runMetadata(cmd *cobra.Command, args []string) error {
	kindFlag, _ := cmd.Flags().GetString("type")
	kind, err := types.ParseKind(kindFlag)
	if err != nil {
		return err
	}
	id := args[0]

	client := catalog.New(catalogConfig(cmd))
	ctx := context.Background()

	if wantCard, _ := cmd.Flags().GetBool("card"); wantCard {
		card, err := client.Card(ctx, id, kind)
		if errors.Is(err, catalog.ErrNotFound) {
			return fmt.Errorf("no README card for %s %q", kind.Singular(), id)
		}
		if err != nil {
			return err
		}
		fmt.Print(card)
		return nil
	}

	card, err := client.Metadata(ctx, id, kind)
	if errors.Is(err, catalog.ErrNotFound) {
		return fmt.Errorf("no %s named %q on the hub", kind.Singular(), id)
	}
	if err != nil {
		return err
	}

	if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(card)
	}

	fmt.Printf("ID:            %s\n", card.ID)
	fmt.Printf("Kind:          %s\n", card.Kind.Singular())
	if card.Author != "" {
		fmt.Printf("Author:        %s\n", card.Author)
	}
	if card.Downloads != nil {
		fmt.Printf("Downloads:     %d\n", *card.Downloads)
	}
	fmt.Printf("Likes:         %d\n", card.Likes)
	if card.LastModified != "" {
		fmt.Printf("Last modified: %s\n", card.LastModified)
	}
	if card.SHA != "" {
		fmt.Printf("Revision:      %s\n", card.SHA)
	}
	if len(card.Tags) > 0 {
		fmt.Printf("Tags:          %v\n", card.Tags)
	}
	return nil
}

func init() {
	metadataCmd.Flags().String("type", "models", "item category: models, datasets, or spaces")
	metadataCmd.Flags().Bool("card", false, "print the item's README card instead of metadata")
	metadataCmd.Flags().Bool("json", false, "output metadata as JSON")

	rootCmd.AddCommand(metadataCmd)
}
