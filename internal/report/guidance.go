package report

// Static guidance blocks. These are fixed text, never computed from the
// inspected state.

var localGuidance = []string{
	"",
	"Local development:",
	"  Without a {{_File_}}.env{{|-|}} file the frontend falls back to its built-in defaults:",
	"    {{_Var_}}VITE_CHATKIT_API_URL{{|-|}} defaults to {{_Default_}}/chatkit{{|-|}}",
	"    {{_Var_}}VITE_FACTS_API_URL{{|-|}} defaults to {{_Default_}}/facts{{|-|}}",
	"    {{_Var_}}VITE_BACKEND_URL{{|-|}} defaults to {{_Default_}}http://127.0.0.1:8000{{|-|}}",
	"  The dev server proxies /chatkit and /facts to {{_Var_}}VITE_BACKEND_URL{{|-|}},",
	"  so only the backend needs to be running locally.",
}

var productionGuidance = []string{
	"",
	"Production deployment:",
	"  1. Set {{_Var_}}VITE_CHATKIT_API_URL{{|-|}} and {{_Var_}}VITE_FACTS_API_URL{{|-|}} to the public backend URLs.",
	"  2. Register the frontend domain with the ChatKit dashboard and set",
	"     {{_Var_}}VITE_CHATKIT_API_DOMAIN_KEY{{|-|}} to the issued key.",
	"  3. Rebuild the frontend so the values are baked into the bundle.",
}

var startGuidance = []string{
	"",
	"To start the frontend:",
	"  {{_UserCommand_}}npm install{{|-|}}",
	"  {{_UserCommand_}}npm run dev{{|-|}}",
}
