package entity

// Item is a collectible object lying on the map
type Item struct {
	Base
	grants    string
	collected bool
}

// NewItem creates an item that grants the given inventory key when collected
func NewItem(s Spawn, grants string) *Item {
	s.Kind = KindItem
	return &Item{Base: NewBase(s), grants: grants}
}

// Collect marks the item as picked up. It returns true only the first time.
func (i *Item) Collect() bool {
	if i.collected {
		return false
	}
	i.collected = true
	return true
}

func (i *Item) Collected() bool { return i.collected }
func (i *Item) Grants() string  { return i.grants }
func (i *Item) Scannable() bool { return !i.collected }
func (i *Item) Blocking() bool  { return !i.collected }
func (i *Item) Visible() bool   { return !i.collected }
