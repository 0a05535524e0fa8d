package report

import (
	"github.com/Natwar589/chatkit-implementation/internal/constants"
)

// Variable describes one fixed configuration variable the frontend reads.
// The set is known at build time and never discovered at runtime.
type Variable struct {
	Name        string
	Description string
	Default     string
	// DefaultApplies marks variables where the frontend falls back to a
	// built-in default when the variable is unset.
	DefaultApplies bool
}

// Known returns the fixed set of configuration variables, in report order.
func Known() []Variable {
	return []Variable{
		{
			Name:           constants.VarChatKitAPIURL,
			Description:    "Base URL the ChatKit client posts chat requests to",
			Default:        "/chatkit",
			DefaultApplies: true,
		},
		{
			Name:           constants.VarFactsAPIURL,
			Description:    "Base URL for the facts widget API",
			Default:        "/facts",
			DefaultApplies: true,
		},
		{
			Name:        constants.VarChatKitDomainKey,
			Description: "Domain allowlist key issued for hosted ChatKit deployments",
		},
		{
			Name:           constants.VarBackendURL,
			Description:    "Backend origin the dev server proxies API requests to",
			Default:        "http://127.0.0.1:8000",
			DefaultApplies: true,
		},
	}
}
