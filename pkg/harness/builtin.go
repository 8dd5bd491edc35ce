package harness

// Built-in suite names.
const (
	SuiteConfiguration  = "configuration"
	SuiteReact          = "react"
	SuiteTypeScript     = "typescript"
	SuitePrettier       = "prettier"
	SuiteAccessibility  = "accessibility"
	SuiteIgnorePatterns = "ignore-patterns"
)

func ptr[T any](v T) *T { return &v }

// BuiltinSuites returns the self-test suites shipped with the preset.
func BuiltinSuites() []Suite {
	return []Suite{
		configurationSuite(),
		reactSuite(),
		typescriptSuite(),
		prettierSuite(),
		accessibilitySuite(),
		ignorePatternsSuite(),
	}
}

// Builtin returns the scenarios of every built-in suite.
func Builtin() []Scenario {
	return Flatten(BuiltinSuites()...)
}

func configurationSuite() Suite {
	return Suite{Name: SuiteConfiguration, Scenarios: []Scenario{
		{
			Name:          "configuration resolves for a component file",
			Path:          "test.tsx",
			ExpectIgnored: ptr(false),
			ExpectRules:   map[string]string{"prettier/prettier": "error"},
		},
		{
			Name: "javascript baseline",
			Path: "src/index.js",
			ExpectRules: map[string]string{
				"no-var":       "error",
				"prefer-const": "error",
				"no-console":   "warn",
				"no-debugger":  "error",
			},
		},
		{
			Name:        "import ordering",
			Path:        "src/main.ts",
			ExpectRules: map[string]string{"import/order": "error"},
		},
		{
			Name:         "non-source files get no language rules",
			Path:         "README.md",
			ExpectAbsent: []string{"no-var", "react/jsx-key"},
		},
		{
			Name:       "invalid syntax is rejected",
			Path:       "src/broken.js",
			Source:     "const = ;\n",
			ExpectPass: ptr(false),
		},
	}}
}

func reactSuite() Suite {
	return Suite{Name: SuiteReact, Scenarios: []Scenario{
		{
			Name: "valid component",
			Path: "UserCard.tsx",
			Source: `import React from 'react'

interface Props {
  name: string
  age?: number
}

export const UserCard = ({ name, age }: Props) => {
  return (
    <div>
      <h1>{name}</h1>
      {age && <p>Age: {age}</p>}
    </div>
  )
}
`,
			ExpectPass: ptr(true),
			ExpectRules: map[string]string{
				"react/react-in-jsx-scope": "off",
				"react/prop-types":         "off",
			},
		},
		{
			Name: "components must self-close",
			Path: "BadComponent.tsx",
			Source: `export const BadComponent = () => {
  return <div><br></br></div>
}
`,
			ExpectRules: map[string]string{"react/self-closing-comp": "error"},
		},
		{
			Name: "hook dependencies are checked",
			Path: "BadHook.tsx",
			Source: `import { useEffect, useState } from 'react'

export const BadHook = () => {
  const [count, setCount] = useState(0)

  useEffect(() => {
    setCount(count + 1)
  }, [])

  return <div>{count}</div>
}
`,
			ExpectRules: map[string]string{
				"react-hooks/rules-of-hooks":                "error",
				"react-hooks/exhaustive-deps":               "warn",
				"react-hooks-extra/no-unnecessary-use-memo": "warn",
			},
		},
		{
			Name: "react version is detected",
			Path: "src/App.jsx",
			ExpectRules: map[string]string{
				"react/jsx-key":        "error",
				"react/no-deprecated":  "warn",
				"react/jsx-uses-react": "off",
			},
		},
	}}
}

func typescriptSuite() Suite {
	return Suite{Name: SuiteTypeScript, Scenarios: []Scenario{
		{
			Name: "valid typescript",
			Path: "user.ts",
			Source: `interface User {
  name: string
  age: number
}

export const createUser = (name: string, age: number): User => ({ name, age })
`,
			ExpectPass:  ptr(true),
			ExpectRules: map[string]string{"@typescript-eslint/consistent-type-imports": "error"},
		},
		{
			Name:        "any is a warning",
			Path:        "any-usage.ts",
			Source:      "export const parse = (data: any) => data\n",
			ExpectRules: map[string]string{"@typescript-eslint/no-explicit-any": "warn"},
		},
		{
			Name:   "unused variables fail",
			Path:   "unused-var.ts",
			Source: "const unused = 1\nexport const used = 2\n",
			ExpectRules: map[string]string{
				"@typescript-eslint/no-unused-vars": "error",
				"no-unused-vars":                    "off",
			},
		},
		{
			Name: "declaration files relax unused checks",
			Path: "types/env.d.ts",
			ExpectRules: map[string]string{
				"@typescript-eslint/no-unused-vars": "off",
				"no-var":                            "off",
			},
		},
		{
			Name:         "javascript files get no typescript rules",
			Path:         "src/util.js",
			ExpectAbsent: []string{"@typescript-eslint/no-explicit-any", "@typescript-eslint/no-unused-vars"},
		},
	}}
}

func prettierSuite() Suite {
	return Suite{Name: SuitePrettier, Scenarios: []Scenario{
		{
			Name:        "formatted code",
			Path:        "formatted.js",
			Source:      "const obj = { name: 'test' }\nconsole.log(obj)\n",
			ExpectPass:  ptr(true),
			ExpectRules: map[string]string{"prettier/prettier": "error"},
		},
		{
			Name:   "formatter owns layout rules",
			Path:   "bad-formatted.js",
			Source: `const   obj={name:"test"};console.log(obj)`,
			ExpectRules: map[string]string{
				"prettier/prettier":       "error",
				"curly":                   "off",
				"no-unexpected-multiline": "off",
			},
		},
		{
			Name: "formatter overrides framework layout rules",
			Path: "src/Layout.tsx",
			ExpectRules: map[string]string{
				"react/jsx-indent":          "off",
				"react/jsx-wrap-multilines": "off",
			},
		},
	}}
}

func accessibilitySuite() Suite {
	return Suite{Name: SuiteAccessibility, Scenarios: []Scenario{
		{
			Name:        "image with alt text",
			Path:        "good-image.tsx",
			Source:      "export const Logo = () => <img src=\"/logo.png\" alt=\"Company logo\" />\n",
			ExpectPass:  ptr(true),
			ExpectRules: map[string]string{"jsx-a11y/alt-text": "warn"},
		},
		{
			Name:        "image without alt text warns",
			Path:        "bad-image.tsx",
			Source:      "export const Logo = () => <img src=\"/logo.png\" />\n",
			ExpectRules: map[string]string{"jsx-a11y/alt-text": "warn"},
		},
		{
			Name: "button with aria label",
			Path: "accessible-button.tsx",
			Source: `export const CloseButton = ({ onClose }: { onClose: () => void }) => (
  <button onClick={onClose} aria-label="Close">
    x
  </button>
)
`,
			ExpectPass: ptr(true),
			ExpectRules: map[string]string{
				"jsx-a11y/aria-props":                   "warn",
				"jsx-a11y/aria-proptypes":               "warn",
				"jsx-a11y/role-has-required-aria-props": "warn",
			},
		},
	}}
}

func ignorePatternsSuite() Suite {
	ignored := []string{
		"node_modules/some-package/index.js",
		"dist/main.js",
		"build/app.js",
		".next/static/chunks/main.js",
		"coverage/lcov-report/index.html",
		"public/vendor/jquery.min.js",
		".env.local",
	}
	kept := []string{
		".github/workflows/ci.yml",
		"src/App.tsx",
	}

	var scenarios []Scenario
	for _, p := range ignored {
		scenarios = append(scenarios, Scenario{Name: p + " is ignored", Path: p, ExpectIgnored: ptr(true)})
	}
	for _, p := range kept {
		scenarios = append(scenarios, Scenario{Name: p + " is linted", Path: p, ExpectIgnored: ptr(false)})
	}
	return Suite{Name: SuiteIgnorePatterns, Scenarios: scenarios}
}
