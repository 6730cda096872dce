package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/renato0307/bancada/internal/domain"
)

const (
	formatJSON  = "json"
	formatTable = "table"
	formatTree  = "tree"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// writeTree prints one row per visible node, indented by depth
func writeTree(w io.Writer, tree *domain.Tree) {
	fmt.Fprintln(w, tree.Root)
	for _, row := range tree.Flatten() {
		indent := strings.Repeat("  ", row.Depth+1)
		marker := "  "
		if row.Entry.IsDir() {
			marker = "▸ "
			if row.Expanded {
				marker = "▾ "
			}
		}
		suffix := ""
		if row.Err != nil {
			suffix = fmt.Sprintf("  [%v]", row.Err)
		}
		fmt.Fprintf(w, "%s%s%s%s\n", indent, marker, row.Entry.Name, suffix)
	}
}

// writeStatus prints the branch and the three sections of a snapshot
func writeStatus(w io.Writer, snapshot *domain.GitStatusSnapshot) {
	fmt.Fprintf(w, "On branch %s\n", snapshot.Branch)
	if snapshot.IsClean() {
		fmt.Fprintln(w, "Nothing to commit, working tree clean")
		return
	}

	sections := []struct {
		title string
		files []domain.FileStatus
	}{
		{"Staged changes", snapshot.Staged},
		{"Unstaged changes", snapshot.Unstaged},
		{"Untracked files", snapshot.Untracked},
	}
	for _, section := range sections {
		if len(section.files) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", section.title)
		for _, f := range section.files {
			if f.OrigPath != "" {
				fmt.Fprintf(w, "  %s %s -> %s\n", f.Kind.Badge(), f.OrigPath, f.Path)
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", f.Kind.Badge(), f.Path)
		}
	}
}
