package types

// ColorArray is a dense array indexed by Color, the Go generics
// equivalent of the teacher's fixed-size "[ColorLength]Foo" convention
// and the original engine's enum_map.rs.
type ColorArray[T any] [ColorLength]T

// Get returns the value for c.
func (a *ColorArray[T]) Get(c Color) T { return a[c] }

// Set stores v for c.
func (a *ColorArray[T]) Set(c Color, v T) { a[c] = v }

// PieceKindArray is a dense array indexed by PieceKind.
type PieceKindArray[T any] [PieceKindLength]T

// Get returns the value for pk.
func (a *PieceKindArray[T]) Get(pk PieceKind) T { return a[pk] }

// Set stores v for pk.
func (a *PieceKindArray[T]) Set(pk PieceKind, v T) { a[pk] = v }

// ColoredPieceArray is a dense array indexed by ColoredPiece (10 values).
type ColoredPieceArray[T any] [int(ColorLength) * int(PieceKindLength)]T

// Get returns the value for cp.
func (a *ColoredPieceArray[T]) Get(cp ColoredPiece) T { return a[cp] }

// Set stores v for cp.
func (a *ColoredPieceArray[T]) Set(cp ColoredPiece, v T) { a[cp] = v }
