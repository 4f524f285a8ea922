package main

import "testing"

func TestRandomSecret(t *testing.T) {
	a := randomSecret()
	b := randomSecret()
	if len(a) != 64 {
		t.Errorf("secret length = %d, want 64 hex chars", len(a))
	}
	if string(a) == string(b) {
		t.Error("consecutive secrets must differ")
	}
}

func TestMigrateCommandTree(t *testing.T) {
	cmd := migrateCmd()
	subs := map[string]bool{}
	for _, c := range cmd.Commands() {
		subs[c.Name()] = true
	}
	if !subs["up"] || !subs["status"] {
		t.Errorf("migrate must expose up and status, got %v", subs)
	}
}
