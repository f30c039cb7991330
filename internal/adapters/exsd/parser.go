// Package exsd parses extension-point schema documents into the domain model.
package exsd

import (
	"io"
	"strconv"

	"go.trai.ch/exsd/internal/core/domain"
	"go.trai.ch/exsd/internal/core/ports"
	"go.trai.ch/zerr"
)

// appInfo matches both spellings found in EXSD files.
const appInfo = "appinfo|appInfo"

var _ ports.SchemaParser = (*Parser)(nil)

// Parser implements ports.SchemaParser.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an EXSD document from r.
func (p *Parser) Parse(r io.Reader) (*domain.ExtensionPointDefinition, error) {
	return Parse(r)
}

// Parse reads an EXSD document from r and builds its definition.
func Parse(r io.Reader) (*domain.ExtensionPointDefinition, error) {
	root, err := parseDocument(r)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrMalformedSchema.Error())
	}
	if root.name != "schema" {
		return nil, zerr.With(domain.ErrMalformedSchema, "root", root.name)
	}
	return parseDefinition(root)
}

func parseDefinition(schema *node) (*domain.ExtensionPointDefinition, error) {
	meta := schema.first("annotation", appInfo, "meta.schema")
	if meta == nil {
		return nil, domain.ErrMissingMetaSchema
	}
	plugin, ok := meta.attr("plugin")
	if !ok {
		return nil, zerr.With(domain.ErrMissingMetaSchema, "attribute", "plugin")
	}
	id, ok := meta.attr("id")
	if !ok {
		return nil, zerr.With(domain.ErrMissingMetaSchema, "attribute", "id")
	}
	name, ok := meta.attr("name")
	if !ok {
		return nil, zerr.With(domain.ErrMissingMetaSchema, "attribute", "name")
	}

	def := &domain.ExtensionPointDefinition{Plugin: plugin, ID: id, Name: name}

	for _, include := range schema.selectPath("include") {
		if location, ok := include.attr("schemaLocation"); ok {
			def.Includes = append(def.Includes, location)
		}
	}

	for _, el := range schema.selectPath("element") {
		elName, ok := el.attr("name")
		if !ok {
			continue
		}
		if elName == "extension" {
			if def.Extension == nil {
				ext := parseElement(el, elName)
				def.Extension = &ext
			}
			continue
		}
		def.Elements = append(def.Elements, parseElement(el, elName))
	}

	return def, nil
}

func parseElement(el *node, name string) domain.ElementDefinition {
	def := domain.ElementDefinition{
		Name: name,
		Type: el.optionalAttr("type"),
	}
	if meta := el.first("annotation", appInfo, "meta.element"); meta != nil {
		def.Deprecated = meta.boolAttr("deprecated")
	}
	for _, complexType := range el.selectPath("complexType") {
		for _, ref := range complexType.descendants("element") {
			if r, ok := parseElementRef(ref); ok {
				def.ElementRefs = append(def.ElementRefs, r)
			}
		}
	}
	for _, attr := range el.selectPath("complexType", "attribute") {
		if a, ok := parseAttribute(attr); ok {
			def.Attributes = append(def.Attributes, a)
		}
	}
	return def
}

func parseElementRef(el *node) (domain.ElementRefDefinition, bool) {
	ref, ok := el.attr("ref")
	if !ok {
		return domain.ElementRefDefinition{}, false
	}
	r := domain.ElementRefDefinition{Ref: ref, MinOccurs: 1, MaxOccurs: 1}
	if v, ok := el.attr("minOccurs"); ok {
		if n, ok := parseInt32(v); ok {
			r.MinOccurs = n
		}
	}
	if v, ok := el.attr("maxOccurs"); ok {
		r.MaxOccurs = domain.Unbounded
		if n, ok := parseInt32(v); ok {
			r.MaxOccurs = n
		}
	}
	return r, true
}

func parseAttribute(el *node) (domain.AttributeDefinition, bool) {
	name, ok := el.attr("name")
	if !ok {
		return domain.AttributeDefinition{}, false
	}
	a := domain.AttributeDefinition{
		Name:  name,
		Type:  el.optionalAttr("type"),
		Use:   el.optionalAttr("use"),
		Value: el.optionalAttr("value"),
	}
	if meta := el.first("annotation", appInfo, "meta.attribute"); meta != nil {
		a.Kind = meta.optionalAttr("kind")
		a.BasedOn = meta.optionalAttr("basedOn")
		a.Deprecated = meta.boolAttr("deprecated")
	}
	if restriction := el.first("simpleType", "restriction"); restriction != nil {
		a.SimpleBaseType = restriction.optionalAttr("base")
		a.SimpleEnumeration = []string{}
		for _, enum := range restriction.selectPath("enumeration") {
			if v, ok := enum.attr("value"); ok {
				a.SimpleEnumeration = append(a.SimpleEnumeration, v)
			}
		}
	}
	return a, true
}

func parseInt32(s string) (int32, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}
