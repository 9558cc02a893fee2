package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/medcalc/pkg/domain"
)

// GraphOverlay contains validation data to visualize on the graph.
type GraphOverlay struct {
	Unresolved    []string
	PostProcessed []string
}

// GenerateMermaid produces a Mermaid flowchart of the catalog wiring: each
// calculator slug points to the implementation it dispatches to, and to its
// post-processor when one is registered.
// Shapes:
// - Calculator: [Rectangle]
// - Implementation: [[Subroutine]]
// - Post-processor: {{Hexagon}}
func GenerateMermaid(defs []domain.CalculatorDefinition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	post := map[string]bool{}
	if overlay != nil {
		for _, slug := range overlay.PostProcessed {
			post[slug] = true
		}
	}

	seenImpl := map[string]bool{}
	for _, def := range defs {
		calcID := "calc_" + sanitizeMermaidID(def.Slug)
		label := strings.ReplaceAll(def.Name, "\"", "'")
		fmt.Fprintf(&sb, "    %s[\"%s <br/> %s\"]\n", calcID, def.Slug, label)

		impl := def.ModulePath + "." + def.FunctionName
		implID := "impl_" + sanitizeMermaidID(impl)
		if !seenImpl[implID] {
			seenImpl[implID] = true
			fmt.Fprintf(&sb, "    %s[[\"%s\"]]\n", implID, impl)
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", calcID, implID)

		if post[def.Slug] {
			postID := "post_" + sanitizeMermaidID(def.Slug)
			fmt.Fprintf(&sb, "    %s{{\"post-processor\"}}\n", postID)
			fmt.Fprintf(&sb, "    %s -.-> %s\n", calcID, postID)
		}
	}

	if overlay != nil && len(overlay.Unresolved) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds
		sb.WriteString("    classDef unresolved fill:#fee2e2,stroke:#b91c1c,stroke-width:2px,color:#000;\n")
		for _, slug := range overlay.Unresolved {
			fmt.Fprintf(&sb, "    class calc_%s unresolved;\n", sanitizeMermaidID(slug))
		}
	}

	return sb.String()
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return s
}
