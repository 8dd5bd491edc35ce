package glob_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/lintpreset/pkg/glob"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr error
		negated bool
	}{
		{name: "double star", raw: "**/node_modules/**"},
		{name: "braces", raw: "**/*.{js,jsx,ts,tsx}"},
		{name: "negated", raw: "!.github", negated: true},
		{name: "anchored", raw: "/dist/**"},
		{name: "empty", raw: "", wantErr: glob.ErrEmptyPattern},
		{name: "bare negation", raw: "!", wantErr: glob.ErrEmptyPattern},
		{name: "backslash", raw: `src\**\*.js`, wantErr: glob.ErrBackslash},
		{name: "unclosed brace", raw: "**/*.{js,ts", wantErr: glob.ErrSyntax},
		{name: "unclosed class", raw: "src/[ab", wantErr: glob.ErrSyntax},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := glob.Compile(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.negated, p.Negated())
			assert.Equal(t, tt.raw, p.String())
		})
	}
}

func TestPattern_Match(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*.{js,mjs,cjs}", "index.js", true},
		{"**/*.{js,mjs,cjs}", "src/lib/util.mjs", true},
		{"**/*.{js,mjs,cjs}", "src/App.tsx", false},
		{"**/*.{ts,tsx}", "src/App.tsx", true},
		{"**/*.ts", "src/App.tsx", false},
		{"**/*.d.ts", "types/global.d.ts", true},
		{"**/*.d.ts", "src/App.ts", false},
		{"*.js", "src/index.js", false},
		{"src/*.js", "src/index.js", true},
		{"src/*.js", "src/lib/index.js", false},
		{"**/node_modules/**", "node_modules/pkg/index.js", true},
		{"**/node_modules/**", "packages/a/node_modules/pkg/index.js", true},
		{"**/.*", ".eslintrc.js", true},
		{"**/.*", "src/.env", true},
		{"**/.*", "src/env.ts", false},
		{"**/*.min.js", "public/vendor/jquery.min.js", true},
		{"/dist/**", "dist/main.js", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			p := glob.MustCompile(tt.pattern)
			assert.Equal(t, tt.want, p.Match(tt.path))
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		root string
		path string
		want string
	}{
		{name: "plain", path: "src/App.tsx", want: "src/App.tsx"},
		{name: "dot prefix", path: "./src/App.tsx", want: "src/App.tsx"},
		{name: "backslashes", path: `src\components\Button.tsx`, want: "src/components/Button.tsx"},
		{name: "absolute under root", root: "/repo", path: "/repo/src/App.tsx", want: "src/App.tsx"},
		{name: "root itself", root: "/repo", path: "/repo", want: ""},
		{name: "outside root", root: "/repo", path: "/other/x.js", want: "../other/x.js"},
		{name: "trailing slash", path: "dist/", want: "dist"},
		{name: "empty", path: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, glob.Normalize(tt.root, tt.path))
		})
	}
}

func TestEscapes(t *testing.T) {
	assert.True(t, glob.Escapes(".."))
	assert.True(t, glob.Escapes("../x.js"))
	assert.False(t, glob.Escapes("..x/y.js"))
	assert.False(t, glob.Escapes("src/x.js"))
}

func TestList_Ignored(t *testing.T) {
	defaults := []string{
		"**/node_modules/**",
		"**/dist/**",
		"**/build/**",
		"**/.next/**",
		"**/coverage/**",
		"**/*.min.js",
		"**/.*",
		"!.github",
	}

	tests := []struct {
		name     string
		patterns []string
		path     string
		want     bool
	}{
		{name: "negation re-includes file", patterns: []string{"dist/**", "!dist/keep.js"}, path: "dist/keep.js", want: false},
		{name: "sibling stays ignored", patterns: []string{"dist/**", "!dist/keep.js"}, path: "dist/other.js", want: true},
		{name: "later pattern re-ignores", patterns: []string{"dist/**", "!dist/keep.js", "dist/keep.js"}, path: "dist/keep.js", want: true},
		{name: "directory pattern covers descendants", patterns: []string{"generated"}, path: "generated/a/b.ts", want: true},
		{name: "no patterns", patterns: nil, path: "src/App.tsx", want: false},
		{name: "dependency dir", patterns: defaults, path: "node_modules/some-package/index.js", want: true},
		{name: "build output", patterns: defaults, path: "build/app.js", want: true},
		{name: "bundler output", patterns: defaults, path: "dist/main.js", want: true},
		{name: "framework cache", patterns: defaults, path: ".next/static/chunks/main.js", want: true},
		{name: "coverage", patterns: defaults, path: "coverage/lcov-report/index.html", want: true},
		{name: "minified", patterns: defaults, path: "public/vendor.min.js", want: true},
		{name: "dotfile", patterns: defaults, path: ".eslintrc.js", want: true},
		{name: "nested dotfile", patterns: defaults, path: "src/.env", want: true},
		{name: "ci directory exception", patterns: defaults, path: ".github/workflows/ci.yml", want: false},
		{name: "source file", patterns: defaults, path: "src/App.tsx", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := glob.MustList(tt.patterns...)
			assert.Equal(t, tt.want, l.Ignored(tt.path))
		})
	}
}

func TestList_Explain(t *testing.T) {
	l := glob.MustList("**/.*", "!.github")
	assert.Equal(t, "!.github", l.Explain(".github/workflows/ci.yml"))
	assert.Equal(t, "**/.*", l.Explain(".vscode/settings.json"))
	assert.Equal(t, "", l.Explain("src/App.tsx"))
}

func TestList_Append(t *testing.T) {
	a := glob.MustList("dist/**")
	b := glob.MustList("!dist/keep.js")

	joined := a.Append(b)
	assert.Equal(t, 2, joined.Len())
	assert.Equal(t, []string{"dist/**", "!dist/keep.js"}, joined.Patterns())
	assert.False(t, joined.Ignored("dist/keep.js"))
	// The receivers are untouched.
	assert.True(t, a.Ignored("dist/keep.js"))
	assert.Equal(t, 1, b.Len())
}

func TestNewList_InvalidPattern(t *testing.T) {
	_, err := glob.NewList("dist/**", "")
	require.ErrorIs(t, err, glob.ErrEmptyPattern)
}

func TestList_Selects(t *testing.T) {
	l := glob.MustList("**/*.ts", "!**/*.d.ts")

	assert.True(t, l.Selects("src/index.ts"))
	assert.False(t, l.Selects("types/global.d.ts"))
	assert.False(t, l.Selects("src/index.js"))
	assert.False(t, glob.List{}.Selects("src/index.ts"))
}
