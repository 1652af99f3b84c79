package sequence

// Sentinel is the zero-width marker that anchors the cursor at boundaries
// where no other text exists.
const Sentinel = "\u200b"

// Kind tags a segment as a text run or a token.
type Kind uint8

const (
	KindText Kind = iota
	KindToken
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindToken:
		return "token"
	default:
		return "unknown"
	}
}

// ID is a generation-checked handle to a segment of one Container.
// The zero ID refers to nothing; IDs of removed segments never resolve
// again, and IDs minted by one Container never resolve in another.
//
// Layout: owner (20 bits) | generation (20 bits) | slot+1 (24 bits).
type ID uint64

const (
	slotBits  = 24
	genBits   = 20
	ownerBits = 20

	slotMask  = 1<<slotBits - 1
	genMask   = 1<<genBits - 1
	ownerMask = 1<<ownerBits - 1

	// maxGen is the last generation a slot is issued with; the slot is
	// retired afterwards.
	maxGen = genMask
)

func makeID(owner uint32, slot int, gen uint32) ID {
	return ID(uint64(owner&ownerMask)<<(slotBits+genBits) |
		uint64(gen&genMask)<<slotBits |
		uint64(uint32(slot+1)&slotMask))
}

func (id ID) slot() int     { return int(uint64(id)&slotMask) - 1 }
func (id ID) gen() uint32   { return uint32(uint64(id)>>slotBits) & genMask }
func (id ID) owner() uint32 { return uint32(uint64(id)>>(slotBits+genBits)) & ownerMask }

// Token is the payload of a token segment.
type Token struct {
	// Key identifies the token across containers (drag and drop moves).
	Key   string
	Text  string
	Attrs map[string]string

	Classes   []string
	Selected  bool
	Readonly  bool
	Draggable bool
}

// Clone returns a deep copy of t.
func (t Token) Clone() Token {
	out := t
	if t.Attrs != nil {
		out.Attrs = make(map[string]string, len(t.Attrs))
		for k, v := range t.Attrs {
			out.Attrs[k] = v
		}
	}
	out.Classes = append([]string(nil), t.Classes...)
	return out
}

// HasClass reports whether the token carries class name.
func (t Token) HasClass(name string) bool {
	for _, c := range t.Classes {
		if c == name {
			return true
		}
	}
	return false
}

// Piece is a segment that is not yet part of a Container.
type Piece struct {
	Kind  Kind
	Text  string
	Token Token
}

func TextPiece(s string) Piece { return Piece{Kind: KindText, Text: s} }

func TokenPiece(t Token) Piece { return Piece{Kind: KindToken, Text: t.Text, Token: t} }

// Segment is a read-only snapshot of one element of the sequence.
type Segment struct {
	ID    ID
	Kind  Kind
	Text  string
	Token Token
}

// Point addresses a position inside a segment. For text runs Offset is a
// rune offset in [0, len]; for tokens it is always 0 (before the token).
type Point struct {
	ID     ID
	Offset int
}

// Selection is the cursor (collapsed) or a range between Anchor and Focus.
// Focus is the end that moves when the selection is extended.
type Selection struct {
	Anchor Point
	Focus  Point
}

func (s Selection) Collapsed() bool { return s.Anchor == s.Focus }

// Direction is a horizontal cursor direction.
type Direction uint8

const (
	Left Direction = iota
	Right
)

// Run is a maximal block of adjacent text segments, First..Last inclusive.
type Run struct {
	First ID
	Last  ID
}
