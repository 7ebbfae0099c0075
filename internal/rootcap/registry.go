package rootcap

import (
	"fmt"

	"github.com/labelpath/cli/internal/naming"
)

// Names lists the capability names understood by FromNames, in the order
// used when no resolver order is configured.
var Names = []string{"fixed", "git", "markers"}

// FromNames builds the capability chain for a configured resolver order.
// fixedRoots and markerFiles parameterize the respective capabilities.
func FromNames(names []string, fixedRoots, markerFiles []string) ([]naming.Capability, error) {
	if len(names) == 0 {
		names = Names
	}
	caps := make([]naming.Capability, 0, len(names))
	for _, name := range names {
		switch name {
		case "git":
			caps = append(caps, Git{})
		case "markers":
			caps = append(caps, Markers{Files: markerFiles})
		case "fixed":
			caps = append(caps, Fixed{Roots: fixedRoots})
		default:
			return nil, fmt.Errorf("unknown root resolver %q", name)
		}
	}
	return caps, nil
}
