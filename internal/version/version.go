package version

import "github.com/fatih/color"

// Version information for the fretboard CLI.
// These variables can be overridden at build time via -ldflags.

var (
	versionMajorColor = color.New(color.FgYellow, color.Bold)
	versionMinorColor = color.New(color.FgGreen, color.Bold)
	versionPatchColor = color.New(color.FgBlue, color.Bold)

	// Version is the semantic version of the CLI.
	Version = "0.3.0"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Colored renders Version with each numeric component in its own colour.
// Anything that is not a plain MAJOR.MINOR.PATCH[-suffix] is returned as is.
func Colored(v string) string {
	var parts [3]string
	rest := v
	for i := 0; i < 3; i++ {
		end := len(rest)
		for j := 0; j < len(rest); j++ {
			if rest[j] == '.' && i < 2 || rest[j] == '-' && i == 2 {
				end = j
				break
			}
		}
		parts[i] = rest[:end]
		if parts[i] == "" {
			return v
		}
		rest = rest[end:]
		if i < 2 {
			if rest == "" {
				return v
			}
			rest = rest[1:]
		}
	}
	return versionMajorColor.Sprint(parts[0]) + "." +
		versionMinorColor.Sprint(parts[1]) + "." +
		versionPatchColor.Sprint(parts[2]) + rest
}
