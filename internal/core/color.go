package core

// Color is a cell foreground colour. Values index a fixed table of ANSI 256
// colour codes; ColorDefault leaves the terminal's own foreground alone.
type Color uint8

const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray

	numColors
)

// Roles shared by the games.
const (
	ColorFrame   = ColorGray       // grid lines, ground, road edges
	ColorShield  = ColorBrightCyan // player while invulnerable
	ColorReward  = ColorBrightYellow
	ColorInfoHUD = ColorBrightCyan
)

var colorTable = [numColors]struct {
	name, code string
}{
	ColorDefault:       {"default", ""},
	ColorRed:           {"red", "1"},
	ColorGreen:         {"green", "2"},
	ColorYellow:        {"yellow", "3"},
	ColorBlue:          {"blue", "4"},
	ColorMagenta:       {"magenta", "5"},
	ColorCyan:          {"cyan", "6"},
	ColorWhite:         {"white", "7"},
	ColorBrightRed:     {"bright-red", "9"},
	ColorBrightGreen:   {"bright-green", "10"},
	ColorBrightYellow:  {"bright-yellow", "11"},
	ColorBrightBlue:    {"bright-blue", "12"},
	ColorBrightMagenta: {"bright-magenta", "13"},
	ColorBrightCyan:    {"bright-cyan", "14"},
	ColorBrightWhite:   {"bright-white", "15"},
	ColorOrange:        {"orange", "208"},
	ColorGray:          {"gray", "245"},
}

// Colors lists every colour that has an ANSI code, ColorDefault excluded.
func Colors() []Color {
	out := make([]Color, 0, numColors-1)
	for c := ColorDefault + 1; c < numColors; c++ {
		out = append(out, c)
	}
	return out
}

// Code returns the ANSI 256 colour code, or "" for ColorDefault and
// unknown values.
func (c Color) Code() string {
	if c >= numColors {
		return ""
	}
	return colorTable[c].code
}

func (c Color) String() string {
	if c >= numColors {
		return "unknown"
	}
	return colorTable[c].name
}
