package colors

// Kanagawa Wave palette
var palette = struct {
	sumiInk4, sumiInk6                  string
	oniViolet, springGreen, crystalBlue string
	peachRed, samuraiRed, waveAqua2     string
	fujiGray, fujiWhite, waveBlue2      string
}{
	sumiInk4:    "#2A2A37",
	sumiInk6:    "#54546D",
	oniViolet:   "#957FB8",
	springGreen: "#98BB6C",
	crystalBlue: "#7E9CD8",
	peachRed:    "#FF5D62",
	samuraiRed:  "#E82424",
	waveAqua2:   "#7AA89F",
	fujiGray:    "#727169",
	fujiWhite:   "#DCD7BA",
	waveBlue2:   "#2D4F67",
}

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Create: palette.springGreen,
		Edit:   palette.crystalBlue,
		Delete: palette.peachRed,

		ColumnBorder:   palette.sumiInk6,
		CardBorder:     palette.sumiInk4,
		SelectedBorder: palette.waveAqua2,
		Overdue:        palette.peachRed,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		ErrorFg: palette.samuraiRed,

		StatusBarBg:   palette.waveBlue2,
		StatusBarText: palette.fujiWhite,
	}
}
