package base

import "fmt"

// Pixel is a packed ARGB value (alpha in the high byte).
type Pixel uint32

// Transparent marks a buffer entry that is not part of any piece.
const Transparent Pixel = 0

func PackPixel(r, g, b, a uint8) Pixel {
	if a == 0 {
		return Transparent
	}
	return Pixel(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

func (p Pixel) RGBA() (r, g, b, a uint8) {
	return uint8(p >> 16), uint8(p >> 8), uint8(p), uint8(p >> 24)
}

func (p Pixel) Opaque() bool {
	return p != Transparent
}

type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Directions in N/E/S/W order, handy for ranging over neighbour slots.
var Directions = [4]Direction{North, East, South, West}

func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Offset returns the grid step (dcol, drow) for the direction.
func (d Direction) Offset() (int, int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	default:
		return -1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("direction(%d)", uint8(d))
	}
}

type GameStatus uint8

const (
	Solved      GameStatus = 11
	InvalidGame GameStatus = 88
	Pass        GameStatus = 99
)

func (gs GameStatus) String() string {
	switch gs {
	case Solved:
		return "solved"
	case Pass:
		return "pass"
	default:
		return "invalid"
	}
}
