package piece

import "github.com/vovakirdan/tetra/internal/core"

// KickTable holds the five SRS offsets for each orientation. A rotation from
// a to b tries table[a][i] - table[b][i] for i = 0..4, in order.
type KickTable [4][5]core.Vec2

// HalfKickTable holds the two 180-degree offsets for each orientation.
type HalfKickTable [4][2]core.Vec2

// KickSource supplies kick tables for a pose. The board engine consumes these
// tables and never computes offsets itself.
type KickSource interface {
	Kicks(p Piece) KickTable
	Kicks180(p Piece) HalfKickTable
}

// Offset data in screen coordinates (Y grows downward), i.e. the guideline
// tables with the Y sign flipped.
var (
	jlstzKicks = KickTable{
		North: {{}, {}, {}, {}, {}},
		East:  {{}, {X: 1}, {X: 1, Y: 1}, {Y: -2}, {X: 1, Y: -2}},
		South: {{}, {}, {}, {}, {}},
		West:  {{}, {X: -1}, {X: -1, Y: 1}, {Y: -2}, {X: -1, Y: -2}},
	}

	iKicks = KickTable{
		North: {{}, {X: -1}, {X: 2}, {X: -1}, {X: 2}},
		East:  {{X: -1}, {}, {}, {Y: -1}, {Y: 2}},
		South: {{X: -1, Y: -1}, {X: 1, Y: -1}, {X: -2, Y: -1}, {X: 1}, {X: -2}},
		West:  {{Y: -1}, {Y: -1}, {Y: -1}, {Y: 1}, {Y: -2}},
	}

	oKicks = KickTable{
		North: {{}, {}, {}, {}, {}},
		East:  {{Y: 1}, {Y: 1}, {Y: 1}, {Y: 1}, {Y: 1}},
		South: {{X: -1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: 1}},
		West:  {{X: -1}, {X: -1}, {X: -1}, {X: -1}, {X: -1}},
	}

	// Second candidate: N->S kicks up, S->N down, E->W right, W->E left.
	jlstzKicks180 = HalfKickTable{
		North: {{}, {}},
		East:  {{}, {X: 1}},
		South: {{}, {Y: 1}},
		West:  {{}, {}},
	}

	// First column re-centers the I like its quarter-turn table does.
	iKicks180 = HalfKickTable{
		North: {{}, {}},
		East:  {{X: -1}, {}},
		South: {{X: -1, Y: -1}, {X: -1}},
		West:  {{Y: -1}, {Y: -1}},
	}

	oKicks180 = HalfKickTable{
		North: {{}, {}},
		East:  {{Y: 1}, {Y: 1}},
		South: {{X: -1, Y: 1}, {X: -1, Y: 1}},
		West:  {{X: -1}, {X: -1}},
	}
)

type srs struct{}

// SRS is the default kick source: Super Rotation System offsets plus a
// two-candidate 180 rule.
var SRS KickSource = srs{}

func (srs) Kicks(p Piece) KickTable {
	switch p.Color {
	case I:
		return iKicks
	case O:
		return oKicks
	default:
		return jlstzKicks
	}
}

func (srs) Kicks180(p Piece) HalfKickTable {
	switch p.Color {
	case I:
		return iKicks180
	case O:
		return oKicks180
	default:
		return jlstzKicks180
	}
}
