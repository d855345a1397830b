package cmd

var (
	configPath string

	length int
	fill   string

	template   string
	renderFill string
)

func initRootFlags() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"specifies the path to your config directory",
	)
}

func initPadFlags() {
	padCmd.Flags().IntVarP(
		&length,
		"length",
		"l",
		0,
		"specifies the minimum length in bytes. default: config length",
	)
	padCmd.Flags().StringVarP(
		&fill,
		"fill",
		"f",
		"",
		`specifies the fill character, e.g. "*", "\t" or "★". default: space`,
	)
}

func initRenderFlags() {
	renderCmd.Flags().StringVarP(
		&template,
		"template",
		"t",
		"",
		"specifies the template, e.g. \"{name:10} Ch. {num:#3}\". default: config template",
	)
	renderCmd.Flags().StringVarP(
		&renderFill,
		"fill",
		"f",
		"",
		"specifies the fill for placeholders without one. default: space",
	)
}
