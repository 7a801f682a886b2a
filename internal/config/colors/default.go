package colors

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme {
	return &ColorScheme{
		Preset: "default",

		Accent: "#874BFD",

		Create: "#5FD75F",
		Edit:   "#5F87D7",
		Delete: "#FF0000",

		ColumnBorder:   "#5F87D7",
		CardBorder:     "#585858",
		SelectedBorder: "#D75FD7",
		Overdue:        "#FF5F5F",

		Title:  "#D75FD7",
		Subtle: "#808080",
		Normal: "#D0D0D0",

		ErrorFg: "#FF0000",

		StatusBarBg:   "#874BFD", // matches accent
		StatusBarText: "#D0D0D0",
	}
}
