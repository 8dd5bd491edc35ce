package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/leapstack-labs/lintpreset/pkg/lint"
	_ "github.com/leapstack-labs/lintpreset/pkg/lint/plugins"
)

// groupDescriptions provides human-readable descriptions for rule groups.
var groupDescriptions = map[string]string{
	"possible-problems": "Rules that catch code that is likely wrong.",
	"suggestions":       "Rules that suggest clearer or safer ways of writing code.",
	"layout":            "Formatting rules. The formatter bridge turns the stylistic ones off.",
	"types":             "Rules about type annotations and type-level constructs.",
	"hooks":             "Rules about the hooks usage contract.",
	"accessibility":     "Rules about accessible markup.",
}

// generateRulesDocs writes an index page and one page per plugin.
func generateRulesDocs(outDir string) error {
	log.Printf("Generating rules docs to %s", outDir)

	if err := os.MkdirAll(outDir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	providers := lint.Providers()
	if err := generateRulesIndex(outDir, providers); err != nil {
		return err
	}
	log.Printf("  Generated index.md")

	for _, p := range providers {
		if err := generatePluginPage(outDir, p); err != nil {
			return fmt.Errorf("failed to generate page for %s: %w", p.Name(), err)
		}
		log.Printf("  Generated %s.md", pageName(p.Name()))
	}
	return nil
}

func generateRulesIndex(outDir string, providers []lint.RuleSetProvider) error {
	w := NewMarkdownWriter()
	w.Frontmatter("Rules", "Rules shipped by the preset's plugins")
	w.GeneratedMarker()

	w.Header(1, "Rules")
	w.Paragraph(fmt.Sprintf("The preset composes %d plugins shipping %d rules. Severities below are each plugin's recommended setting; the preset's fragments may override them.",
		len(providers), lint.Count()))

	var rows [][]string
	for _, p := range providers {
		rules := p.Rules()
		link := fmt.Sprintf("[%s](/rules/%s)", InlineCode(p.Name()), pageName(p.Name()))
		prefix := p.Prefix()
		if prefix == "" {
			prefix = "(none)"
		} else {
			prefix = InlineCode(prefix + "/")
		}
		rows = append(rows, []string{link, prefix, fmt.Sprintf("%d", len(rules)), fmt.Sprintf("%d", len(p.Recommended()))})
	}
	w.Table([]string{"Plugin", "Prefix", "Rules", "Recommended"}, rows)

	w.Header(2, "Groups")
	var groups [][]string
	for _, g := range sortedGroups() {
		groups = append(groups, []string{InlineCode(g), groupDescriptions[g]})
	}
	w.Table([]string{"Group", "Description"}, groups)

	return os.WriteFile(filepath.Join(outDir, "index.md"), w.Bytes(), 0600)
}

func generatePluginPage(outDir string, p lint.RuleSetProvider) error {
	w := NewMarkdownWriter()
	w.Frontmatter(p.Name(), fmt.Sprintf("Rules of the %s plugin", p.Name()))
	w.GeneratedMarker()
	w.Header(1, p.Name())

	byGroup := make(map[string][]lint.RuleDef)
	var order []string
	for _, def := range p.Rules() {
		if _, ok := byGroup[def.Group]; !ok {
			order = append(order, def.Group)
		}
		byGroup[def.Group] = append(byGroup[def.Group], def)
	}

	for _, group := range order {
		w.Header(2, capitalizeFirst(strings.ReplaceAll(group, "-", " ")))
		if desc := groupDescriptions[group]; desc != "" {
			w.Paragraph(desc)
		}
		for _, def := range byGroup[group] {
			writeRuleDoc(w, lint.GetRuleInfo(p, def), def)
		}
	}

	return os.WriteFile(filepath.Join(outDir, pageName(p.Name())+".md"), w.Bytes(), 0600)
}

// writeRuleDoc writes detailed documentation for a single rule.
func writeRuleDoc(w *MarkdownWriter, info lint.RuleInfo, def lint.RuleDef) {
	w.Line(fmt.Sprintf("### %s {#%s}", info.Name, def.ID))
	w.Newline()

	w.Line(fmt.Sprintf("**Recommended:** %s", InlineCode(info.Recommended.String())))
	w.Newline()
	w.Paragraph(cleanDescription(info.Description))

	var flags []string
	if info.Fixable {
		flags = append(flags, "Auto-fixable")
	}
	if info.Stylistic {
		flags = append(flags, "Stylistic: turned off by the formatter bridge")
	}
	if len(flags) > 0 {
		w.BulletList(flags)
	}

	if def.Options != nil {
		w.Header(4, "Recommended Options")
		w.CodeBlock("json", formatJSON(def.Options))
	}

	w.Line("---")
	w.Newline()
}

// pageName turns a plugin name into a file name: "@typescript-eslint" -> "typescript-eslint".
func pageName(name string) string {
	return strings.TrimPrefix(strings.ReplaceAll(name, "/", "-"), "@")
}

func sortedGroups() []string {
	return []string{"possible-problems", "suggestions", "layout", "types", "hooks", "accessibility"}
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
