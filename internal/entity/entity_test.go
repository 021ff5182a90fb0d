package entity

import (
	"testing"

	"chosenoffset.com/discoverme/internal/core/collision"
)

func TestItemCollectIsMonotonic(t *testing.T) {
	item := NewItem(Spawn{ID: "cle", Name: "Clé", X: 10, Y: 10, Width: 50, Height: 50}, "cle")

	if !item.Scannable() || !item.Blocking() || !item.Visible() {
		t.Fatal("Fresh item should be scannable, blocking and visible")
	}
	if !item.Collect() {
		t.Fatal("First Collect should return true")
	}
	if item.Collect() {
		t.Error("Second Collect should return false")
	}
	if !item.Collected() {
		t.Error("Item should stay collected")
	}
	if item.Scannable() || item.Blocking() || item.Visible() {
		t.Error("Collected item should not scan, block or draw")
	}
	if item.Kind() != KindItem {
		t.Errorf("Expected kind %s, got %s", KindItem, item.Kind())
	}
}

func TestChestLifecycle(t *testing.T) {
	chest := NewChest(Spawn{ID: "coffre", Width: 80, Height: 80}, "cle", "coffre", 8, 6)

	if chest.Opened() {
		t.Fatal("Chest should start closed")
	}

	// Ticking a closed chest does nothing
	chest.Tick()
	if chest.Frame() != 0 || chest.State() != ChestClosed {
		t.Fatalf("Closed chest animated: frame %d state %s", chest.Frame(), chest.State())
	}

	if !chest.Open() {
		t.Fatal("First Open should return true")
	}
	if chest.Open() {
		t.Error("Second Open should return false")
	}
	if !chest.Opened() || chest.State() != ChestOpening {
		t.Fatalf("Expected opening, got %s", chest.State())
	}
	if !chest.Blocking() {
		t.Error("Chest should block while its animation plays")
	}

	for i := 0; i < 8*6; i++ {
		chest.Tick()
	}

	if chest.State() != ChestOpen {
		t.Fatalf("Expected open after animation, got %s", chest.State())
	}
	if chest.Frame() != 7 {
		t.Errorf("Expected last frame 7, got %d", chest.Frame())
	}
	if !chest.Hidden() || chest.Visible() || chest.Blocking() {
		t.Error("Opened chest should be hidden and non-blocking")
	}
	if !chest.Scannable() {
		t.Error("Opened chest should remain scannable")
	}
}

func TestNearCornerAndCentre(t *testing.T) {
	player := collision.NewRect(488, 254, 48, 68)

	corner := NewItem(Spawn{ID: "cle", X: 488 + 79, Y: 254 - 79, Width: 50, Height: 50,
		Proximity: Proximity{Threshold: 80}}, "cle")
	if !corner.Near(player) {
		t.Error("Expected item within 80px to be near")
	}
	corner.Translate(1, 0)
	if corner.Near(player) {
		t.Error("Expected item at exactly 80px to be out of range")
	}

	// Player centre is (512, 288); an 80x80 chest centred 99px right is near.
	chest := NewChest(Spawn{ID: "coffre", X: 512 + 99 - 40, Y: 288 - 40, Width: 80, Height: 80,
		Proximity: Proximity{Threshold: 100, Centered: true}}, "cle", "coffre", 8, 6)
	if !chest.Near(player) {
		t.Error("Expected chest centre within 100px to be near")
	}
	chest.Translate(2, 0)
	if chest.Near(player) {
		t.Error("Expected chest centre 101px away to be out of range")
	}
}

func TestScaledBounds(t *testing.T) {
	rabbit := NewNPC(Spawn{ID: "lapin", X: 490, Y: 490, Width: 170, Height: 148, Scale: 0.5}, NPCOptions{})
	b := rabbit.Bounds()
	if b.Width != 85 || b.Height != 74 {
		t.Errorf("Expected 85x74, got %vx%v", b.Width, b.Height)
	}
	if rabbit.Rect().Width != 170 {
		t.Errorf("Rect should stay unscaled, got %v", rabbit.Rect().Width)
	}
}

func TestNPCBreathing(t *testing.T) {
	oldman := NewNPC(Spawn{ID: "oldman", Width: 59, Height: 59},
		NPCOptions{Behaviour: BehaviourBreathing, AnimationSpeed: 2})

	var offsets []float64
	for i := 0; i < 16; i++ {
		oldman.Tick()
		if i%2 == 1 {
			offsets = append(offsets, oldman.BreathingOffset())
		}
	}

	want := []float64{1, 2, 3, 2, 1, 0, 1, 2}
	for i := range want {
		if offsets[i] != want[i] {
			t.Fatalf("Breathing offsets %v, want %v", offsets, want)
		}
	}

	if oldman.DrawRect().Y != oldman.Bounds().Y+oldman.BreathingOffset() {
		t.Error("DrawRect should include the breathing offset")
	}
}

func TestNPCPatrol(t *testing.T) {
	pattern := []Direction{DirDown, DirRight, DirUp, DirLeft}
	rabbit := NewNPC(Spawn{ID: "lapin", X: 100, Y: 100, Width: 10, Height: 10}, NPCOptions{
		Behaviour:        BehaviourPatrol,
		AnimationSpeed:   10,
		Frames:           4,
		Pattern:          pattern,
		StepsBetweenMove: 3,
		Step:             48,
	})

	for i := 0; i < 3; i++ {
		rabbit.Tick()
	}
	x, y := rabbit.Position()
	if x != 100 || y != 148 {
		t.Fatalf("Expected (100, 148) after first step, got (%v, %v)", x, y)
	}
	if rabbit.SpriteName() != "lapin_down" {
		t.Errorf("Expected lapin_down, got %s", rabbit.SpriteName())
	}

	// Full cycle returns to the start
	for i := 0; i < 9; i++ {
		rabbit.Tick()
	}
	x, y = rabbit.Position()
	if x != 100 || y != 100 {
		t.Errorf("Expected patrol to loop back to (100, 100), got (%v, %v)", x, y)
	}
	if rabbit.Facing() != DirLeft {
		t.Errorf("Expected facing left, got %s", rabbit.Facing())
	}
}

func TestPatrolWithoutPatternFallsBackToStatic(t *testing.T) {
	npc := NewNPC(Spawn{ID: "x"}, NPCOptions{Behaviour: BehaviourPatrol})
	if npc.Behaviour() != BehaviourStatic {
		t.Errorf("Expected static, got %s", npc.Behaviour())
	}
}

func TestPlayerCentredAndWalkCycle(t *testing.T) {
	p := NewPlayer(1024, 576, 48, 68, 4, 9)
	b := p.Bounds()
	if b.X != 488 || b.Y != 254 {
		t.Fatalf("Expected player at (488, 254), got (%v, %v)", b.X, b.Y)
	}

	for i := 0; i < 9; i++ {
		p.Tick()
	}
	if p.Frame() != 0 {
		t.Error("Idle player should not animate")
	}

	p.Moving = true
	for i := 0; i < 9; i++ {
		p.Tick()
	}
	if p.Frame() != 1 {
		t.Errorf("Expected frame 1, got %d", p.Frame())
	}

	p.Facing = DirLeft
	p.Character = CharacterMasculine
	if p.SpriteName() != "player_masculin_left" {
		t.Errorf("Unexpected sprite %s", p.SpriteName())
	}

	p.Reset()
	if p.Moving || p.Frame() != 0 || p.Facing != DirDown {
		t.Error("Reset should restore spawn pose")
	}
}

func TestParseDirections(t *testing.T) {
	dirs, err := ParseDirections([]string{"up", "down", "left", "right"})
	if err != nil {
		t.Fatalf("ParseDirections returned error: %v", err)
	}
	if dirs[0] != DirUp || dirs[3] != DirRight {
		t.Errorf("Unexpected directions %v", dirs)
	}
	if _, err := ParseDirections([]string{"north"}); err == nil {
		t.Error("Expected error for unknown direction")
	}
}
