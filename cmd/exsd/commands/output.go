package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.trai.ch/exsd/internal/core/domain"
)

// emit writes v as indented JSON when --json is set and calls text otherwise.
func (c *CLI) emit(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	out := cmd.OutOrStdout()
	if c.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	text(out)
	return nil
}

func printDefinition(w io.Writer, def *domain.ExtensionPointDefinition) {
	_, _ = fmt.Fprintf(w, "point:    %s\n", def.Point())
	if def.Name != "" {
		_, _ = fmt.Fprintf(w, "name:     %s\n", def.Name)
	}
	for _, include := range def.Includes {
		_, _ = fmt.Fprintf(w, "include:  %s\n", include)
	}
	if def.Extension != nil {
		_, _ = fmt.Fprintln(w, "extension:")
		printElement(w, def.Extension, "  ")
	}
	if len(def.Elements) > 0 {
		_, _ = fmt.Fprintln(w, "elements:")
	}
	for i := range def.Elements {
		printElement(w, &def.Elements[i], "  ")
	}
}

func printElement(w io.Writer, el *domain.ElementDefinition, indent string) {
	line := indent + el.Name
	if el.Type != nil {
		line += " : " + *el.Type
	}
	if el.Deprecated {
		line += " (deprecated)"
	}
	_, _ = fmt.Fprintln(w, line)

	for _, ref := range el.ElementRefs {
		_, _ = fmt.Fprintf(w, "%s  ref %s %s\n", indent, ref.Ref, occurs(ref))
	}
	for i := range el.Attributes {
		_, _ = fmt.Fprintf(w, "%s  @%s\n", indent, describeAttribute(&el.Attributes[i]))
	}
}

func occurs(ref domain.ElementRefDefinition) string {
	upper := "*"
	if !ref.IsUnbounded() {
		upper = strconv.Itoa(int(ref.MaxOccurs))
	}
	return "[" + strconv.Itoa(int(ref.MinOccurs)) + ".." + upper + "]"
}

func describeAttribute(attr *domain.AttributeDefinition) string {
	var details []string
	if attr.Type != nil {
		details = append(details, *attr.Type)
	}
	if attr.SimpleBaseType != nil {
		details = append(details, *attr.SimpleBaseType)
	}
	if attr.Use != nil {
		details = append(details, *attr.Use)
	}
	if attr.Kind != nil {
		details = append(details, "kind="+*attr.Kind)
	}
	if attr.BasedOn != nil {
		details = append(details, "basedOn="+*attr.BasedOn)
	}
	if len(attr.SimpleEnumeration) > 0 {
		details = append(details, "one of "+strings.Join(attr.SimpleEnumeration, "|"))
	}
	if attr.Deprecated {
		details = append(details, "deprecated")
	}
	if len(details) == 0 {
		return attr.Name
	}
	return attr.Name + " (" + strings.Join(details, ", ") + ")"
}
