package constants

// File Names
const (
	EnvFileName        = ".env"
	EnvExampleFileName = ".env.example"
	AppConfigFileName  = "envcheck.toml"
)

// Configuration variable names checked by the reporter.
// These are fixed at build time; the frontend reads them via Vite.
const (
	VarChatKitAPIURL    = "VITE_CHATKIT_API_URL"
	VarFactsAPIURL      = "VITE_FACTS_API_URL"
	VarChatKitDomainKey = "VITE_CHATKIT_API_DOMAIN_KEY"
	VarBackendURL       = "VITE_BACKEND_URL"
)
