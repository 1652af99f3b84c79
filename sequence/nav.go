package sequence

// Handle names a segment together with the container that owns it, the
// way a host hands a hit-tested node back to the model.
type Handle struct {
	C  *Container
	ID ID
}

// ContainerOf returns the container owning h, or nil when h is detached or
// stale.
func ContainerOf(h Handle) *Container {
	if h.C == nil || !h.C.Contains(h.ID) {
		return nil
	}
	return h.C
}

// TokenContaining returns h.ID when it is a live token, zero otherwise.
func TokenContaining(h Handle) ID {
	c := ContainerOf(h)
	if c == nil || !c.IsToken(h.ID) {
		return 0
	}
	return h.ID
}

// PrevToken returns the nearest token before id, skipping text.
func (c *Container) PrevToken(id ID) ID {
	for p := c.Prev(id); p != 0; p = c.Prev(p) {
		if c.IsToken(p) {
			return p
		}
	}
	return 0
}

// NextToken returns the nearest token after id, skipping text.
func (c *Container) NextToken(id ID) ID {
	for n := c.Next(id); n != 0; n = c.Next(n) {
		if c.IsToken(n) {
			return n
		}
	}
	return 0
}

func (c *Container) FirstToken() ID {
	for id := c.head; id != 0; id = c.Next(id) {
		if c.IsToken(id) {
			return id
		}
	}
	return 0
}

func (c *Container) LastToken() ID {
	for id := c.tail; id != 0; id = c.Prev(id) {
		if c.IsToken(id) {
			return id
		}
	}
	return 0
}

func (c *Container) HasTokens() bool { return c.FirstToken() != 0 }

// TokenLeftOfSelection returns the token immediately left of the selection,
// looking past sentinel-only text. Any printable text in between yields
// zero.
func (c *Container) TokenLeftOfSelection() ID {
	if !c.hasSel {
		return 0
	}
	a, f := c.sel.Anchor.ID, c.sel.Focus.ID
	from := c.Prev(f)
	if a != f && c.Compare(a, f) < 0 {
		from = c.Prev(a)
	}
	return c.scanToken(from, c.Prev)
}

// TokenRightOfSelection mirrors TokenLeftOfSelection, starting after the
// later of the two selection points.
func (c *Container) TokenRightOfSelection() ID {
	if !c.hasSel {
		return 0
	}
	a, f := c.sel.Anchor.ID, c.sel.Focus.ID
	from := c.Next(f)
	if a != f && c.Compare(f, a) < 0 {
		from = c.Next(a)
	}
	return c.scanToken(from, c.Next)
}

func (c *Container) scanToken(id ID, step func(ID) ID) ID {
	for ; id != 0; id = step(id) {
		if c.IsToken(id) {
			return id
		}
		if !IsBlank(c.TextOf(id)) {
			return 0
		}
	}
	return 0
}
