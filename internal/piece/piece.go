// Package piece declares the chess piece, type, and color representation
// shared by every other core package.
package piece

// Color is a side in the game: White or Black.
type Color uint8

const (
	White Color = iota
	Black
	NColor // number of colors
)

// Other returns the opposing color.
func (c Color) Other() Color {
	return c ^ 1
}

// String returns "w" or "b", the FEN side-to-move token.
func (c Color) String() string {
	if c == White {
		return "w"
	}
	return "b"
}

// NewColor parses a FEN side-to-move token.
func NewColor(s string) Color {
	if s == "w" {
		return White
	}
	return Black
}

// Type is a kind of chess piece, color-independent.
type Type uint8

const (
	NoType Type = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NType // number of piece types, including NoType
)

// String returns the uppercase (white-style) letter for the piece type.
func (t Type) String() string {
	switch t {
	case Pawn:
		return "P"
	case Knight:
		return "N"
	case Bishop:
		return "B"
	case Rook:
		return "R"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return ""
	}
}

// Piece is a colored chess piece.
// Format: MSB [color 1 bit][type 3 bits] LSB
type Piece uint8

// N is one past the highest value a Piece can hold, sized for a dense
// array indexed directly by Piece (including unused color/type
// combinations like NoPiece's high bits).
const N = 16

const (
	NoPiece Piece = 0

	WhitePawn   = Piece(White)<<3 | Piece(Pawn)
	WhiteKnight = Piece(White)<<3 | Piece(Knight)
	WhiteBishop = Piece(White)<<3 | Piece(Bishop)
	WhiteRook   = Piece(White)<<3 | Piece(Rook)
	WhiteQueen  = Piece(White)<<3 | Piece(Queen)
	WhiteKing   = Piece(White)<<3 | Piece(King)

	BlackPawn   = Piece(Black)<<3 | Piece(Pawn)
	BlackKnight = Piece(Black)<<3 | Piece(Knight)
	BlackBishop = Piece(Black)<<3 | Piece(Bishop)
	BlackRook   = Piece(Black)<<3 | Piece(Rook)
	BlackQueen  = Piece(Black)<<3 | Piece(Queen)
	BlackKing   = Piece(Black)<<3 | Piece(King)
)

// New creates a Piece from a type and color.
func New(t Type, c Color) Piece {
	return Piece(c)<<3 | Piece(t)
}

// Type returns the piece's type.
func (p Piece) Type() Type {
	return Type(p & 0b111)
}

// Color returns the piece's color. Only meaningful if p != NoPiece.
func (p Piece) Color() Color {
	return Color(p >> 3)
}

// String returns the FEN letter for the piece: uppercase for white,
// lowercase for black.
func (p Piece) String() string {
	if p == NoPiece {
		return "."
	}
	s := p.Type().String()
	if p.Color() == Black {
		return string(s[0] + ('a' - 'A'))
	}
	return s
}

// NewFromString parses a single FEN piece letter.
func NewFromString(id string) Piece {
	switch id {
	case "K":
		return WhiteKing
	case "Q":
		return WhiteQueen
	case "R":
		return WhiteRook
	case "N":
		return WhiteKnight
	case "B":
		return WhiteBishop
	case "P":
		return WhitePawn
	case "k":
		return BlackKing
	case "q":
		return BlackQueen
	case "r":
		return BlackRook
	case "n":
		return BlackKnight
	case "b":
		return BlackBishop
	case "p":
		return BlackPawn
	default:
		return NoPiece
	}
}

// Value returns the standard centipawn-equivalent material value of the
// piece type. King has no material value; it is never traded.
func (t Type) Value() int {
	switch t {
	case Pawn:
		return 100
	case Knight:
		return 320
	case Bishop:
		return 330
	case Rook:
		return 500
	case Queen:
		return 900
	default:
		return 0
	}
}
