package cli

import (
	"fmt"
	"strings"
)

type namer interface {
	Name() string
}

// providerName returns a lower-cased provider name for metrics and logs,
// deriving it from the type when the provider does not name itself.
func providerName(provider any) string {
	if n, ok := provider.(namer); ok && n.Name() != "" {
		return strings.ToLower(n.Name())
	}
	if provider != nil {
		return strings.ToLower(fmt.Sprintf("%T", provider))
	}
	return "provider"
}
