package house

// House is the assembled product: an ordered list of part labels in build-step order.
type House struct {
	Parts []string
}

// Len returns the number of parts.
func (h *House) Len() int { return len(h.Parts) }

// Documentation is the byproduct built in lockstep with a House, one page per part.
type Documentation struct {
	Pages []string
}

// Len returns the number of pages.
func (d *Documentation) Len() int { return len(d.Pages) }
