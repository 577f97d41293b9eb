package list

import "testing"

func TestCmdShape(t *testing.T) {
	cmd := Cmd()
	if cmd.Use != "list [distro] [version-tag]" {
		t.Fatalf("unexpected use: %q", cmd.Use)
	}
	if len(cmd.Aliases) != 1 || cmd.Aliases[0] != "ls" {
		t.Fatalf("aliases = %v", cmd.Aliases)
	}
	for _, name := range []string{"image-name", "image-tag"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Fatalf("missing flag %q", name)
		}
	}
}
