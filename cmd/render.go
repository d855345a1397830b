package cmd

import (
	"fmt"

	"leftpad/internal/parse"
	"leftpad/internal/templater"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render key=value...",
	Short: "Render a template with padded placeholders",
	Long: `Render a template with padded placeholders.

Placeholders:
  {name}        the value as is
  {name:10}     left-padded to 10 bytes with the default fill
  {name:10:*}   left-padded to 10 bytes with "*"
  {name:10:}    same as {name:10}
  {num:#3}      a number with its integer part zero-padded to 3 digits`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tmpl := cfg.Config.Template
		if cmd.Flags().Changed("template") {
			tmpl = template
		}
		if tmpl == "" {
			return errors.New("no template given, use --template or set template in the config")
		}

		fillInput := cfg.Config.Fill
		if cmd.Flags().Changed("fill") {
			fillInput = renderFill
		}

		fillChar, err := parse.Fill(fillInput)
		if err != nil {
			return err
		}

		values, err := parse.Assignments(args)
		if err != nil {
			return err
		}

		for _, name := range templater.Names(tmpl) {
			if _, ok := values[name]; !ok {
				log.Warn().Str("placeholder", name).Msg("no value given, placeholder left as is")
			}
		}

		out, err := templater.New(values, fillChar).ExecTemplate(tmpl)
		if err != nil {
			log.Error().Err(err).Str("template", tmpl).Msg("could not render template")
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}
