package iacinit

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/iacinit/pkg/errors"
	"github.com/arthur-debert/iacinit/pkg/render"
)

var varName = regexp.MustCompile(`^\w+$`)

// parseVars turns repeated name=value flags into variables. The value may
// contain '=' and may be empty; the last occurrence of a name wins.
func parseVars(flags []string) (render.Vars, error) {
	vars := make(render.Vars, len(flags))
	for _, f := range flags {
		name, value, ok := strings.Cut(f, "=")
		name = strings.TrimSpace(name)
		if !ok || !varName.MatchString(name) {
			return nil, errors.Newf(errors.ErrInvalidInput, MsgErrInvalidVar, f)
		}
		vars[name] = value
	}
	return vars, nil
}
