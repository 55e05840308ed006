// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"strings"
)

// GenerateCSS renders theme colors as site CSS variables plus base element styles
func GenerateCSS(colors *Colors) string {
	var b strings.Builder

	b.WriteString(":root {\n")
	vars := []struct{ name, value string }{
		{"primary", colors.Primary},
		{"primary-contrast", colors.PrimaryContrast},
		{"secondary", colors.Secondary},
		{"bg", colors.Background},
		{"surface", colors.Surface},
		{"text", colors.Text},
		{"text-muted", colors.TextMuted},
		{"border", colors.Border},
		{"success", colors.Success},
		{"error", colors.Error},
		{"warning", colors.Warning},
		{"info", colors.Info},
	}
	for _, v := range vars {
		fmt.Fprintf(&b, "  --color-%s: %s;\n", v.name, v.value)
	}
	b.WriteString("  --color-accent: var(--color-primary);\n")
	b.WriteString("  --color-accent-contrast: var(--color-primary-contrast);\n")
	b.WriteString("}\n")

	b.WriteString(baseStyles)
	return b.String()
}

// baseStyles only references variables so it is shared by light and dark themes
const baseStyles = `
body {
  background-color: var(--color-bg);
  color: var(--color-text);
}

a { color: var(--color-primary); }

button, .btn {
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
  border: none;
}

.card, .surface {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
}

input:focus, textarea:focus, select:focus {
  outline: 2px solid var(--color-primary);
}

.text-muted { color: var(--color-text-muted); }
.success { color: var(--color-success); }
.error, .danger { color: var(--color-error); }
.warning { color: var(--color-warning); }
.info { color: var(--color-info); }
`
