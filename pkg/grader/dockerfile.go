package grader

import (
	"strings"
)

// Directive is one parsed Dockerfile instruction.
type Directive struct {
	// Cmd is the upper-cased instruction name, e.g. "FROM", "COPY".
	Cmd string
	// Flags are the leading --flag tokens, e.g. "--from=builder".
	Flags []string
	// Args are the remaining tokens.
	Args []string
	// Raw is the full joined line.
	Raw string
}

// parseDockerfile splits Dockerfile content into an ordered directive list.
// Comments are stripped and backslash continuations joined; this is a
// line-level scan, not a BuildKit AST, which is all the structural lab
// checks need.
func parseDockerfile(content string) []Directive {
	var directives []Directive
	var pending strings.Builder

	flush := func() {
		line := strings.TrimSpace(pending.String())
		pending.Reset()
		if line == "" {
			return
		}
		tokens := strings.Fields(line)
		d := Directive{
			Cmd: strings.ToUpper(tokens[0]),
			Raw: line,
		}
		for _, tok := range tokens[1:] {
			if strings.HasPrefix(tok, "--") && len(d.Args) == 0 {
				d.Flags = append(d.Flags, tok)
			} else {
				d.Args = append(d.Args, tok)
			}
		}
		directives = append(directives, d)
	}

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if strings.HasSuffix(trimmed, "\\") {
			pending.WriteString(strings.TrimSuffix(trimmed, "\\"))
			pending.WriteString(" ")
			continue
		}
		pending.WriteString(trimmed)
		flush()
	}
	flush()

	return directives
}

// stageAlias returns the AS alias of a FROM directive, or "".
func stageAlias(d Directive) string {
	for i := 0; i < len(d.Args)-1; i++ {
		if strings.EqualFold(d.Args[i], "AS") {
			return d.Args[i+1]
		}
	}
	return ""
}

// copyFromRef returns the --from reference of a COPY directive, or "".
func copyFromRef(d Directive) string {
	for _, flag := range d.Flags {
		if strings.HasPrefix(flag, "--from=") {
			return strings.TrimPrefix(flag, "--from=")
		}
	}
	return ""
}

// isBroadSourceCopy reports whether a COPY pulls in the whole build context
// (e.g. "COPY . ." or "COPY ./ /app"), as opposed to a targeted file copy.
func isBroadSourceCopy(d Directive) bool {
	if d.Cmd != "COPY" || copyFromRef(d) != "" || len(d.Args) < 2 {
		return false
	}
	src := d.Args[0]
	return src == "." || src == "./" || src == "./."
}

// isManifestCopy reports whether a COPY brings in a dependency manifest.
func isManifestCopy(d Directive) bool {
	if d.Cmd != "COPY" || copyFromRef(d) != "" {
		return false
	}
	for _, arg := range d.Args {
		base := arg[strings.LastIndex(arg, "/")+1:]
		switch base {
		case "requirements.txt", "package.json", "go.mod", "Pipfile", "pyproject.toml":
			return true
		}
	}
	return false
}

// isDependencyInstall reports whether a RUN installs dependencies from a
// manifest.
func isDependencyInstall(d Directive) bool {
	if d.Cmd != "RUN" {
		return false
	}
	raw := strings.ToLower(d.Raw)
	return strings.Contains(raw, "pip install") ||
		strings.Contains(raw, "pip3 install") ||
		strings.Contains(raw, "npm ci") ||
		strings.Contains(raw, "npm install")
}
