package main

import (
	"encoding/json"
	"strings"

	"github.com/spf13/cobra"
)

var askCmd = &cobra.Command{
	Use:   "ask [utterance]",
	Short: "Resolve a single utterance and print the dispatch result as JSON",
	Example: `  assistant ask "what time is it"
  assistant ask -u alice "play some lofi beats"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	a, err := newApp(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	profile, err := a.profiles.GetProfile(ctx, userID)
	if err != nil {
		return err
	}

	result, err := a.assistant.Resolve(ctx, userID, strings.Join(args, " "), profile)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
