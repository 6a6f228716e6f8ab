package resolver

import (
	"regexp"
	"strings"

	"github.com/wuyifannppp/poco-agent/pkg/services"
)

// tokenPattern matches ${TOKEN} references in string values.
var tokenPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Substitute walks a JSON-shaped value and expands every ${TOKEN} occurrence
// in string leaves against the env map. Maps and slices are walked
// element-wise; non-string scalars pass through unchanged. Token forms:
//
//	${env:NAME}       lookup NAME, no default allowed
//	${NAME:-DEFAULT}  lookup NAME, literal DEFAULT when absent
//	${NAME}           lookup NAME
//
// A lookup miss without a default fails with EnvVarNotFoundError.
func Substitute(value any, envMap map[string]string) (any, error) {
	switch v := value.(type) {
	case string:
		return substituteString(v, envMap)
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			resolved, err := Substitute(item, envMap)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			resolved, err := Substitute(item, envMap)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil
	default:
		return value, nil
	}
}

// substituteString splices every token match in place, leaving surrounding
// characters intact. Multiple tokens per string are supported.
func substituteString(s string, envMap map[string]string) (string, error) {
	var substErr error
	out := tokenPattern.ReplaceAllStringFunc(s, func(match string) string {
		if substErr != nil {
			return match
		}
		token := match[2 : len(match)-1]
		resolved, err := resolveToken(token, envMap)
		if err != nil {
			substErr = err
			return match
		}
		return resolved
	})
	if substErr != nil {
		return "", substErr
	}
	return out, nil
}

func resolveToken(token string, envMap map[string]string) (string, error) {
	if name, ok := strings.CutPrefix(token, "env:"); ok {
		if v, found := envMap[name]; found {
			return v, nil
		}
		return "", &services.EnvVarNotFoundError{Name: name}
	}

	if name, def, ok := strings.Cut(token, ":-"); ok {
		if v, found := envMap[name]; found {
			return v, nil
		}
		return def, nil
	}

	if v, found := envMap[token]; found {
		return v, nil
	}
	return "", &services.EnvVarNotFoundError{Name: token}
}
