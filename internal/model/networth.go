package model

// NetWorth aggregates a household's cash, investments and owned properties.
//
// Cash exists only as an intra-year clearing value: the engine sweeps it into
// investments at the end of every simulated year. It may go negative for one
// intra-year step when a purchase exceeds available investments; the same
// year's sweep reconciles it.
type NetWorth struct {
	Cash        float64
	Investments float64
	Properties  []Property
}

// Total computes cash + investments + sum of (gross value - debt) over all owned
// properties. No side effects. Gross values are static over time; only
// buy/sell events change the property set.
func (n *NetWorth) Total() float64 {
	total := n.Cash + n.Investments
	for _, p := range n.Properties {
		total += p.Equity()
	}
	return total
}

// Property returns the owned property with the given name, or nil.
func (n *NetWorth) Property(name string) *Property {
	for i := range n.Properties {
		if n.Properties[i].Name == name {
			return &n.Properties[i]
		}
	}
	return nil
}

// RemoveProperty drops the property with the given name. Removing a name that
// is not owned is a no-op.
func (n *NetWorth) RemoveProperty(name string) {
	kept := n.Properties[:0]
	for _, p := range n.Properties {
		if p.Name != name {
			kept = append(kept, p)
		}
	}
	n.Properties = kept
}

// Clone returns a deep copy. Properties have value semantics, so copying the
// slice is enough. Callers handing the same initial state to several
// simulations must clone per run to avoid cross-run mutation.
func (n *NetWorth) Clone() *NetWorth {
	out := &NetWorth{
		Cash:        n.Cash,
		Investments: n.Investments,
	}
	if n.Properties != nil {
		out.Properties = make([]Property, len(n.Properties))
		copy(out.Properties, n.Properties)
	}
	return out
}
