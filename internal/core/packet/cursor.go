package packet

// Cursor is a monotonically advancing read position into a Buffer's current
// view, offset 0 being the logical start. Parsers bounds-check
// pos+size against the view before reading and advance only on success.
//
// A cursor does not survive AdjustHead: after any resize a fresh cursor must
// be taken and headers re-parsed.
type Cursor struct {
	pos int
}

// Pos returns the current offset from the buffer's logical start.
func (c *Cursor) Pos() int { return c.pos }

// Advance moves the cursor forward by n bytes. Callers must have
// bounds-checked n against the buffer view first.
func (c *Cursor) Advance(n int) { c.pos += n }

// Fits reports whether n more bytes fit between the cursor and the end of
// view.
func (c *Cursor) Fits(view []byte, n int) bool { return c.pos+n <= len(view) }
