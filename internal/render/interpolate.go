package render

import "strings"

// Placeholder tokens recognized in template greeting and body text.
const (
	TokenClientName = "clientName"
	TokenAgentName  = "agentName"
)

// Fallback strings substituted for empty variables. Preview and outgoing
// email deliberately differ: the preview is shown to staff while they
// type, the send-context fallback denotes an internal default.
const (
	PreviewClientFallback = "[client name]"
	PreviewAgentFallback  = "[agent name]"
	SendClientFallback    = "[Client]"
	SendAgentFallback     = "[Agent]"
)

// Interpolate replaces every {{token}} occurrence in text with its value.
// Replacement is literal and non-recursive; a token that never appears is
// a no-op.
func Interpolate(text string, vars map[string]string) string {
	for token, value := range vars {
		text = strings.ReplaceAll(text, "{{"+token+"}}", value)
	}
	return text
}

// Vars carries the caller-supplied variables for one render.
type Vars struct {
	ClientName string
	AgentName  string
}

func (v Vars) resolve(clientFallback, agentFallback string) map[string]string {
	client := v.ClientName
	if client == "" {
		client = clientFallback
	}
	agent := v.AgentName
	if agent == "" {
		agent = agentFallback
	}
	return map[string]string{TokenClientName: client, TokenAgentName: agent}
}
