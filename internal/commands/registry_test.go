package commands

import "testing"

func TestRegistry_Aliases(t *testing.T) {
	for alias, name := range map[string]string{
		"ls":   "list",
		"add":  "create",
		"done": "complete",
		"rm":   "delete",
	} {
		cmd, ok := DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolves to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestRegistry_AllUniqueAndSorted(t *testing.T) {
	all := DefaultRegistry.All()

	want := []string{"complete", "create", "delete", "help", "init", "list", "update", "version"}
	if len(all) != len(want) {
		t.Fatalf("expected %d commands, got %d", len(want), len(all))
	}
	for i, cmd := range all {
		if cmd.Name() != want[i] {
			t.Errorf("position %d: expected %q, got %q", i, want[i], cmd.Name())
		}
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(&ListCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Register(&ListCmd{})
	if err == nil || err.Error() != "command name already registered: list" {
		t.Errorf("expected duplicate name error, got %v", err)
	}

	// A clash on an alias registers nothing.
	r = NewRegistry()
	if err := r.Register(&DeleteCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := r.Register(&removeCmd{}); err == nil {
		t.Fatal("expected alias clash error")
	}
	if _, ok := r.Find("remove"); ok {
		t.Error("expected remove not to be registered after alias clash")
	}
}

// removeCmd reuses the rm alias under a different name.
type removeCmd struct{ DeleteCmd }

func (c *removeCmd) Name() string { return "remove" }
