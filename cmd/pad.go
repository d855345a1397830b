package cmd

import (
	"fmt"

	"leftpad/internal/pad"
	"leftpad/internal/parse"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var padCmd = &cobra.Command{
	Use:   "pad [text...]",
	Short: "Left-pad each argument and print it on its own line",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetLength := cfg.Config.Length
		if cmd.Flags().Changed("length") {
			if length < 0 {
				return errors.Errorf("length must not be negative: %d", length)
			}
			targetLength = length
		}

		fillInput := cfg.Config.Fill
		if cmd.Flags().Changed("fill") {
			fillInput = fill
		}

		fillChar, err := parse.Fill(fillInput)
		if err != nil {
			log.Error().Err(err).Msg("invalid fill")
			return err
		}

		log.Debug().Int("length", targetLength).Str("fill", string(fillChar)).Int("inputs", len(args)).Msg("padding")

		out := cmd.OutOrStdout()
		for _, arg := range args {
			fmt.Fprintln(out, pad.Left(arg, targetLength, fillChar))
		}

		return nil
	},
}
