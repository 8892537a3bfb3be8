package registry

import (
	"testing"

	"github.com/vovakirdan/tui-catch/internal/sketch"
)

type fakeGame struct {
	id   string
	best int
}

func (g *fakeGame) ID() string { return g.id }

func (g *fakeGame) Title() string { return "Fake " + g.id }

func (g *fakeGame) Sketch() *sketch.Sketch { return sketch.New(nil) }

func (g *fakeGame) Result() Result { return Result{Score: g.best} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-fake", func(env Env) Game {
		return &fakeGame{id: "zz-fake", best: env.BestScore}
	})

	if !Exists("zz-fake") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz-fake", Env{BestScore: 7})
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.Result().Score != 7 {
		t.Errorf("factory did not receive env, got %d", g.Result().Score)
	}

	found := false
	for _, info := range List() {
		if info.ID == "zz-fake" {
			found = true
			if info.Title != "Fake zz-fake" {
				t.Errorf("title = %q", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() should include the registered game")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", Env{}); err == nil {
		t.Error("Create() of an unknown id should fail")
	}
	if Exists("does-not-exist") {
		t.Error("Exists() should be false for unknown ids")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	f := func(env Env) Game { return &fakeGame{id: "zz-dup"} }
	Register("zz-dup", f)

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz-dup", f)
}

func TestListSorted(t *testing.T) {
	Register("zz-b", func(env Env) Game { return &fakeGame{id: "zz-b"} })
	Register("zz-a", func(env Env) Game { return &fakeGame{id: "zz-a"} })

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Fatalf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}
}
