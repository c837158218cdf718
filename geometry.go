package glcd

// Panel geometry.
const (
	Rows        = 64
	Columns     = 128
	Pages       = Rows / 8
	Units       = 2
	UnitColumns = Columns / Units
)

// Compile time geometry checks: the array length goes negative when violated.
var (
	_ [1 - Rows%8]struct{}
	_ [1 - Columns%Units]struct{}
)
