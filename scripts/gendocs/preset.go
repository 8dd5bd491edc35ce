package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/lintpreset/pkg/flatconfig"
	"github.com/leapstack-labs/lintpreset/pkg/preset"
)

// generatePresetDocs writes the fragment reference of the default preset.
func generatePresetDocs(outDir string) error {
	log.Printf("Generating preset docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	w := NewMarkdownWriter()
	w.Frontmatter("Preset Reference", "Fragments of the default configuration")
	w.GeneratedMarker()

	w.Header(1, "Preset Reference")
	w.Paragraph("The preset is an ordered list of fragments. For each file, every matching fragment is applied in order and later fragments win per rule and per setting key. Global ignores are checked first.")

	w.Header(2, "Formatter Options")
	defaults := preset.DefaultFormatOptions().ToMap()
	var optRows [][]string
	for _, key := range []string{"printWidth", "tabWidth", "singleQuote", "trailingComma", "arrowParens", "semi", "endOfLine"} {
		optRows = append(optRows, []string{InlineCode(key), InlineCode(fmt.Sprint(defaults[key]))})
	}
	w.Table([]string{"Option", "Default"}, optRows)

	w.Header(2, "Global Ignores")
	var ignores []string
	for _, p := range preset.Default.GlobalIgnores() {
		ignores = append(ignores, InlineCode(p))
	}
	w.BulletList(ignores)

	w.Header(2, "Fragments")
	for i, f := range preset.Default.Fragments() {
		writeFragmentDoc(w, i+1, f)
	}

	log.Printf("  Generated index.md")
	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

func writeFragmentDoc(w *MarkdownWriter, n int, f flatconfig.Fragment) {
	w.Header(3, fmt.Sprintf("%d. %s", n, f.Name))

	if f.IsGlobalIgnore() {
		w.Paragraph("Global ignore fragment.")
		return
	}

	files := "all files"
	if len(f.Files) > 0 {
		files = inlineList(f.Files)
	}
	w.Line("**Files:** " + files)
	w.Newline()
	if len(f.Ignores) > 0 {
		w.Line("**Ignores:** " + inlineList(f.Ignores))
		w.Newline()
	}
	if names := f.PluginNames(); len(names) > 0 {
		w.Line("**Plugins:** " + inlineList(names))
		w.Newline()
	}

	if len(f.Settings) > 0 {
		w.Header(4, "Settings")
		w.CodeBlock("json", formatJSON(f.Settings))
	}

	if len(f.Rules) > 0 {
		w.Header(4, fmt.Sprintf("Rules (%d)", len(f.Rules)))
		rows := make([][]string, 0, len(f.Rules))
		for _, r := range f.Rules {
			opts := ""
			if r.Options != nil {
				opts = InlineCode(compactJSON(r.Options))
			}
			rows = append(rows, []string{InlineCode(r.Name), r.Severity.String(), opts})
		}
		w.Table([]string{"Rule", "Severity", "Options"}, rows)
	}
}

func inlineList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = InlineCode(item)
	}
	return strings.Join(quoted, ", ")
}

func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(b)
}
