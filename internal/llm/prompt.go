package llm

import (
	"encoding/json"
	"fmt"
)

// PromptContext carries the operational data embedded into the system
// prompt. Values arrive as free-form JSON from the caller and are
// rendered verbatim as descriptive text.
type PromptContext struct {
	KPIs            any
	Alerts          any
	Recommendations any
}

// ContextFromMap picks the known sections out of a request context map.
func ContextFromMap(m map[string]any) PromptContext {
	if m == nil {
		return PromptContext{}
	}
	return PromptContext{
		KPIs:            m["kpis"],
		Alerts:          m["alerts"],
		Recommendations: m["recommendations"],
	}
}

// BuildSystemPrompt composes the refinery assistant system prompt with
// the caller-supplied context sections.
func BuildSystemPrompt(pc PromptContext) string {
	return fmt.Sprintf(
		"You are a refinery operations assistant. Explain KPIs, alerts, forecasts, and "+
			"recommendations clearly for engineers and leadership."+
			"\nKPIs: %s"+
			"\nAlerts: %s"+
			"\nRecommendations: %s"+
			"\nKeep responses concise, actionable, and data-driven.",
		renderSection(pc.KPIs),
		renderSection(pc.Alerts),
		renderSection(pc.Recommendations),
	)
}

func renderSection(v any) string {
	if v == nil {
		return "none"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
