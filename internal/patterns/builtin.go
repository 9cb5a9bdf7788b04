package patterns

var (
	Glider = FromRows("glider",
		".X.",
		"..X",
		"XXX",
	)

	Blinker = FromRows("blinker",
		"XXX",
	)

	Block = FromRows("block",
		"XX",
		"XX",
	)

	Pulsar = FromRows("pulsar",
		"..XXX...XXX..",
		".............",
		"X....X.X....X",
		"X....X.X....X",
		"X....X.X....X",
		"..XXX...XXX..",
		".............",
		"..XXX...XXX..",
		"X....X.X....X",
		"X....X.X....X",
		"X....X.X....X",
		".............",
		"..XXX...XXX..",
	)

	Pentadecathlon = FromRows("pentadecathlon",
		"..X....X..",
		"XX.XXXX.XX",
		"..X....X..",
	)
)

func init() {
	for _, p := range []Pattern{Glider, Blinker, Block, Pulsar, Pentadecathlon} {
		Register(p.Name, p)
	}
}
