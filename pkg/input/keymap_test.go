package input

import (
	"testing"

	"github.com/eiannone/keyboard"

	"github.com/trytobebee/termsnake/pkg/game"
)

func TestAzertyTranslate(t *testing.T) {
	tests := []struct {
		in   KeyInput
		want game.Command
	}{
		{KeyInput{Char: 'z'}, game.CmdUp},
		{KeyInput{Char: 's'}, game.CmdDown},
		{KeyInput{Char: 'q'}, game.CmdLeft},
		{KeyInput{Char: 'd'}, game.CmdRight},
		{KeyInput{Char: 'D'}, game.CmdRight},
		{KeyInput{Char: 'p'}, game.CmdPause},
		{KeyInput{Char: 'a'}, game.CmdQuit},
		{KeyInput{Special: SpecialUp}, game.CmdUp},
		{KeyInput{Special: SpecialLeft}, game.CmdLeft},
		{KeyInput{Special: SpecialInterrupt}, game.CmdQuit},
	}

	for _, tt := range tests {
		got, ok := Azerty.Translate(tt.in)
		if !ok || got != tt.want {
			t.Errorf("Translate(%+v) = %v, %v; want %v", tt.in, got, ok, tt.want)
		}
	}

	if _, ok := Azerty.Translate(KeyInput{Char: 'k'}); ok {
		t.Error("unknown key should not translate")
	}
}

func TestQwertyTranslate(t *testing.T) {
	if cmd, _ := Qwerty.Translate(KeyInput{Char: 'a'}); cmd != game.CmdLeft {
		t.Errorf("qwerty 'a' should steer left, got %v", cmd)
	}
	if cmd, _ := Qwerty.Translate(KeyInput{Char: 'x'}); cmd != game.CmdQuit {
		t.Errorf("qwerty 'x' should quit, got %v", cmd)
	}
}

func TestLookupKeymap(t *testing.T) {
	for name, want := range map[string]string{"": "azerty", "azerty": "azerty", "qwerty": "qwerty"} {
		m, err := LookupKeymap(name)
		if err != nil || m.Name != want {
			t.Errorf("LookupKeymap(%q) = %s, %v", name, m.Name, err)
		}
	}
	if _, err := LookupKeymap("dvorak"); err == nil {
		t.Error("unknown key map should fail")
	}
}

func TestQueuePollSkipsUnknownKeys(t *testing.T) {
	q := newQueue(Azerty)
	if _, ok := q.Poll(); ok {
		t.Fatal("empty queue should report no key")
	}

	q.push(KeyInput{Char: 'k'})
	q.push(KeyInput{Char: 'z'})
	q.push(KeyInput{Char: 'a'})

	if cmd, ok := q.Poll(); !ok || cmd != game.CmdUp {
		t.Errorf("expected CmdUp, got %v %v", cmd, ok)
	}
	if cmd, ok := q.Poll(); !ok || cmd != game.CmdQuit {
		t.Errorf("expected CmdQuit, got %v %v", cmd, ok)
	}
	if _, ok := q.Poll(); ok {
		t.Error("queue should be drained")
	}
}

func TestQueueDropsWhenFull(t *testing.T) {
	q := newQueue(Azerty)
	for i := 0; i < cap(q.events)+5; i++ {
		q.push(KeyInput{Char: 'z'})
	}
	if len(q.events) != cap(q.events) {
		t.Errorf("expected a full queue of %d, got %d", cap(q.events), len(q.events))
	}
}

func TestFromKeyboard(t *testing.T) {
	if in := fromKeyboard(0, keyboard.KeyArrowDown); in.Special != SpecialDown {
		t.Errorf("arrow down not mapped: %+v", in)
	}
	if in := fromKeyboard(0, keyboard.KeyCtrlC); in.Special != SpecialInterrupt {
		t.Errorf("ctrl-c not mapped: %+v", in)
	}
	if in := fromKeyboard('p', 0); in.Char != 'p' || in.Special != SpecialNone {
		t.Errorf("char not passed through: %+v", in)
	}
}
