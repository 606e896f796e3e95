package core

// Neighbor directions in the order returned by TorusNeighbors.
const (
	Left = iota
	Top
	Right
	Bottom
)

// TorusNeighbors returns the row-major indices of the four cells adjacent to
// index on a size×size torus, ordered left, top, right, bottom. Moving off
// any edge wraps to the opposite edge of the same row or column.
func TorusNeighbors(index, size int) [4]int {
	bottomLeft := size*size - size
	var n [4]int

	if index%size == 0 {
		n[Left] = index + size - 1
	} else {
		n[Left] = index - 1
	}
	if index < size {
		n[Top] = index + bottomLeft
	} else {
		n[Top] = index - size
	}
	if index%size == size-1 {
		n[Right] = index + 1 - size
	} else {
		n[Right] = index + 1
	}
	if index >= bottomLeft {
		n[Bottom] = index - bottomLeft
	} else {
		n[Bottom] = index + size
	}
	return n
}

// Wrap applies toroidal wrapping to the provided coordinates on a w×h grid.
func Wrap(x, y, w, h int) (int, int) {
	x = (x%w + w) % w
	y = (y%h + h) % h
	return x, y
}
