package menu

import (
	"image"
	"testing"

	"chosenoffset.com/discoverme/data"
	"chosenoffset.com/discoverme/internal/content"
	"chosenoffset.com/discoverme/internal/entity"
	"chosenoffset.com/discoverme/internal/overlay"
	"chosenoffset.com/discoverme/internal/render"
	"chosenoffset.com/discoverme/internal/render/rendertest"
)

type fakePages map[string]overlay.Content

func (p fakePages) Page(name string) (overlay.Content, bool) {
	c, ok := p[name]
	return c, ok
}

func newTestMenu() (*MainMenu, *rendertest.Input, *rendertest.Renderer) {
	in := rendertest.NewInput()
	r := &rendertest.Renderer{}
	pages := fakePages{PageAbout: {Title: "À propos", Message: "Un jeu."}}
	return NewMainMenu(r, in, pages, 1024, 576), in, r
}

// tick runs one Update with the input state, then clears the edges
func tick(m *MainMenu, in *rendertest.Input) (bool, Selection) {
	ok, sel := m.Update()
	in.EndTick()
	in.Mouse = false
	return ok, sel
}

func TestKeyboardFlow(t *testing.T) {
	m, in, _ := newTestMenu()

	in.Press(render.KeyEnter)
	if ok, _ := tick(m, in); ok {
		t.Fatal("JOUER should open character selection, not start")
	}
	if m.Screen() != ScreenCharacter {
		t.Fatalf("Expected character screen, got %v", m.Screen())
	}

	in.Press(render.KeyDown)
	tick(m, in)
	if m.Selected() != 1 {
		t.Fatalf("Expected Masculin highlighted, got %d", m.Selected())
	}

	in.Press(render.KeyEnter)
	ok, sel := tick(m, in)
	if !ok || sel.Character != entity.CharacterMasculine {
		t.Fatalf("Expected masculine selection, got %v %+v", ok, sel)
	}
	if m.Screen() != ScreenMain {
		t.Error("Menu should be back on the main screen after starting")
	}
}

func TestNavigationWraps(t *testing.T) {
	m, in, _ := newTestMenu()
	in.Press(render.KeyUp)
	tick(m, in)
	if m.Selected() != 2 {
		t.Errorf("Expected wrap to MAKING OF, got %d", m.Selected())
	}
}

func TestClickFlow(t *testing.T) {
	m, in, _ := newTestMenu()

	in.Click(image.Pt(500, 280)) // JOUER
	tick(m, in)
	if m.Screen() != ScreenCharacter {
		t.Fatalf("Click on JOUER should open character selection")
	}

	in.JustTouches = []image.Point{{500, 280}} // Féminin
	ok, sel := tick(m, in)
	if !ok || sel.Character != entity.CharacterFeminine {
		t.Errorf("Expected feminine selection from a tap, got %v %+v", ok, sel)
	}
}

func TestPages(t *testing.T) {
	m, in, r := newTestMenu()

	in.Press(render.KeyDown)
	tick(m, in)
	in.Press(render.KeyEnter)
	tick(m, in)
	if m.Screen() != ScreenPage {
		t.Fatalf("Expected page screen, got %v", m.Screen())
	}

	m.Draw(rendertest.NewImage(1024, 576))
	found := false
	for _, text := range r.Texts {
		if text == "Un jeu." {
			found = true
		}
	}
	if !found {
		t.Errorf("Expected the page message among %q", r.Texts)
	}

	in.Press(render.KeyEscape)
	tick(m, in)
	if m.Screen() != ScreenMain {
		t.Error("Escape should return to the main screen")
	}

	// A page missing from the source keeps the main screen
	in.Press(render.KeyUp)
	tick(m, in)
	in.Press(render.KeyEnter)
	tick(m, in)
	if m.Screen() != ScreenMain {
		t.Error("Unknown page should not open")
	}
}

func TestEmbeddedPagesExist(t *testing.T) {
	d, err := content.LoadDialogues(data.FS(), data.DialoguesFile)
	if err != nil {
		t.Fatalf("LoadDialogues returned error: %v", err)
	}
	for _, name := range []string{PageAbout, PageMakingOf} {
		if _, ok := d.Page(name); !ok {
			t.Errorf("Page %q missing from embedded dialogues", name)
		}
	}
}

func newTestEnding() (*EndingScreen, *rendertest.Input) {
	in := rendertest.NewInput()
	ending := content.Ending{
		Title: "Merci",
		Buttons: []content.EndingButton{
			{Label: "Rejouer", Action: EndingReplay},
			{Label: "Mon CV", Action: EndingResume},
			{Label: "Appelez-moi", Action: EndingPhone},
			{Label: "Me contacter", Action: EndingContact},
		},
	}
	e := NewEndingScreen(&rendertest.Renderer{}, in, ending, 1024, 576)
	e.Reset()
	return e, in
}

func endingTick(e *EndingScreen, in *rendertest.Input) string {
	action := e.Update()
	in.EndTick()
	in.Mouse = false
	return action
}

func TestEndingWaitsForCurtain(t *testing.T) {
	e, in := newTestEnding()
	for i := 0; i < curtainFrames; i++ {
		in.Press(render.KeyEnter)
		if action := endingTick(e, in); action != "" {
			t.Fatalf("Frame %d returned %q during the curtain", i, action)
		}
	}
	in.Press(render.KeyEnter)
	if action := endingTick(e, in); action != EndingReplay {
		t.Errorf("Expected replay, got %q", action)
	}
}

func TestEndingButtons(t *testing.T) {
	e, in := newTestEnding()
	for i := 0; i < curtainFrames; i++ {
		endingTick(e, in)
	}

	in.Click(image.Pt(350, 450))
	if action := endingTick(e, in); action != EndingResume {
		t.Errorf("Expected resume from a click, got %q", action)
	}

	in.Press(render.KeyRight)
	endingTick(e, in)
	in.Press(render.KeyEnter)
	if action := endingTick(e, in); action != EndingPhone {
		t.Errorf("Expected phone, got %q", action)
	}
}
