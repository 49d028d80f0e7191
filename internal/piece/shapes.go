package piece

import "github.com/vovakirdan/tetra/internal/core"

// northShapes holds the spawn-orientation mino offsets relative to the
// rotation center. Y grows downward, so a negative Y sits above the center.
var northShapes = map[Color][4]core.Vec2{
	I: {{X: -1}, {}, {X: 1}, {X: 2}},
	J: {{X: -1, Y: -1}, {X: -1}, {}, {X: 1}},
	L: {{X: -1}, {}, {X: 1}, {X: 1, Y: -1}},
	O: {{}, {X: 1}, {Y: -1}, {X: 1, Y: -1}},
	S: {{X: -1}, {}, {Y: -1}, {X: 1, Y: -1}},
	T: {{X: -1}, {}, {X: 1}, {Y: -1}},
	Z: {{X: -1, Y: -1}, {Y: -1}, {}, {X: 1}},
}

// shapes[color][rotation] is filled from northShapes by rotating about the
// origin. Non-piece colors keep four copies of the origin.
var shapes [Garbage + 1][4][4]core.Vec2

func init() {
	for c, north := range northShapes {
		cur := north
		for d := North; d <= West; d++ {
			shapes[c][d] = cur
			for i, m := range cur {
				cur[i] = rotateCW(m)
			}
		}
	}
}

// rotateCW turns an offset a quarter clockwise in screen coordinates.
func rotateCW(v core.Vec2) core.Vec2 {
	return core.Vec2{X: -v.Y, Y: v.X}
}

// Offsets returns the mino offsets of color c in orientation d.
func Offsets(c Color, d Direction) [4]core.Vec2 {
	if int(c) >= len(shapes) {
		return [4]core.Vec2{}
	}
	return shapes[c][d&3]
}
