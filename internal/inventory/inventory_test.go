package inventory

import (
	"testing"
	"testing/fstest"
)

func TestAddItemKnownAndUnknown(t *testing.T) {
	inv := NewDefault()

	if inv.HasItem(ItemKey) {
		t.Fatal("New inventory should be empty")
	}
	if !inv.AddItem(ItemKey) {
		t.Fatal("AddItem(cle) should succeed")
	}
	if !inv.HasItem(ItemKey) {
		t.Error("Expected cle to be held")
	}
	if inv.AddItem("epee") {
		t.Error("AddItem of an unknown item should return false")
	}
	if inv.HasItem("epee") {
		t.Error("Unknown item should not be held")
	}
	if inv.IsEmpty() {
		t.Error("Inventory holding cle should not be empty")
	}
}

func TestClearResetsEverything(t *testing.T) {
	inv := NewDefault()
	inv.AddItem(ItemKey)
	inv.AddItem(ItemLetter)
	inv.AddItem(ItemChest)

	inv.Clear()
	if !inv.IsEmpty() {
		t.Error("Expected empty inventory after Clear")
	}
	if got := len(inv.Items()); got != 3 {
		t.Errorf("Items should stay registered, got %d slots", got)
	}
	if !inv.AddItem(ItemKey) {
		t.Error("Cleared items can be picked up again")
	}
}

func TestOnChange(t *testing.T) {
	inv := NewDefault()
	calls := 0
	var lastHeld int
	inv.OnChange = func() {
		calls++
		lastHeld = 0
		for _, s := range inv.Items() { // Callback may read the inventory
			if s.Held {
				lastHeld++
			}
		}
	}

	inv.AddItem(ItemKey)
	inv.AddItem(ItemKey) // Already held, no change
	inv.AddItem("epee")  // Unknown, no change
	if calls != 1 || lastHeld != 1 {
		t.Errorf("Expected 1 notification with 1 held, got %d with %d", calls, lastHeld)
	}

	inv.Clear()
	if calls != 2 || lastHeld != 0 {
		t.Errorf("Expected Clear to notify with nothing held, got %d with %d", calls, lastHeld)
	}
}

func TestItemsKeepRegistrationOrder(t *testing.T) {
	inv := NewDefault()
	inv.AddItem(ItemLetter)

	items := inv.Items()
	if len(items) != 3 {
		t.Fatalf("Expected 3 slots, got %d", len(items))
	}
	want := []string{ItemKey, ItemLetter, ItemChest}
	for i, slot := range items {
		if slot.Item.Name != want[i] {
			t.Errorf("Slot %d is %s, want %s", i, slot.Item.Name, want[i])
		}
	}
	if items[0].Held || !items[1].Held {
		t.Error("Held flags do not match")
	}
}

func TestRegisterTwiceKeepsFlag(t *testing.T) {
	inv := NewDefault()
	inv.AddItem(ItemKey)
	inv.RegisterItem(&Item{Name: ItemKey, DisplayName: "Clé dorée", Icon: "cle"})

	items := inv.Items()
	if len(items) != 3 || items[0].Item.DisplayName != "Clé dorée" || !items[0].Held {
		t.Errorf("Re-registering should replace the definition only, got %+v", items[0])
	}
}

func TestLoadItems(t *testing.T) {
	fsys := fstest.MapFS{
		"items.yaml": {Data: []byte(`
items:
  - name: cle
    display_name: Clé mystérieuse
    icon: cle
    shown: true
  - name: coffre
    display_name: Coffre magique
    icon: coffre
`)},
	}

	items, err := LoadItems(fsys, "items.yaml")
	if err != nil {
		t.Fatalf("LoadItems returned error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Name != ItemKey || items[0].DisplayName != "Clé mystérieuse" || !items[0].Shown {
		t.Errorf("Unexpected first item %+v", items[0])
	}
	if items[1].Shown {
		t.Error("shown should default to false")
	}

	inv := New(items...)
	if !inv.AddItem(ItemChest) || inv.AddItem(ItemLetter) {
		t.Error("Only loaded items should be accepted")
	}

	if _, err := LoadItems(fsys, "missing.yaml"); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestParseItemsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no name", "items:\n  - icon: cle\n"},
		{"duplicate", "items:\n  - name: cle\n  - name: cle\n"},
		{"bad yaml", "items: [\n"},
	}
	for _, tt := range tests {
		if _, err := ParseItems([]byte(tt.data), tt.name); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}
