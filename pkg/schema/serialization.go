package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ErrUnsupportedDocument is returned when a schema document does not have
// the expected shape.
var ErrUnsupportedDocument = errors.New("unsupported schema document")

// ParseYAML reads a schema document. The document is a mapping from variable
// name to either a type name, a list of allowed values, or a descriptor:
//
//	NODE_ENV: [development, test, production]
//	DEBUG: boolean
//	PORT:
//	  type: number
//	  default: 3000
//	API_KEY:
//	  type: string
//	  nullable: true
//	  secret: true
//	  description: Upstream API credential
//
// Mapping order is kept as declaration order.
func ParseYAML(data []byte) (Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if doc.Kind == 0 {
		return Schema{}, nil
	}
	return fromNode(&doc)
}

// ParseJSON reads a schema document written as a JSON object.
// It accepts the same shapes as ParseYAML and keeps key order.
func ParseJSON(data []byte) (Schema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	node, err := jsonNode(dec)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrUnsupportedDocument, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: invalid JSON: trailing data after top-level value", ErrUnsupportedDocument)
	}
	return fromNode(node)
}

// jsonNode reads one JSON value from dec into the equivalent YAML node.
// Strings are tagged explicitly so that "true" or "3000" stay strings.
func jsonNode(dec *json.Decoder) (*yaml.Node, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key must be a string")
				}
				val, err := jsonNode(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}, val)
			}
			_, err := dec.Token()
			return node, err
		case '[':
			node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for dec.More() {
				item, err := jsonNode(dec)
				if err != nil {
					return nil, err
				}
				node.Content = append(node.Content, item)
			}
			_, err := dec.Token()
			return node, err
		default:
			return nil, fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}, nil
	case json.Number:
		tag := "!!int"
		if _, err := v.Int64(); err != nil {
			tag = "!!float"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: v.String()}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(v)}, nil
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

// UnmarshalYAML lets a Schema be embedded in larger YAML documents.
func (s *Schema) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := fromNode(node)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// UnmarshalJSON lets a Schema be embedded in larger JSON documents.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if s == nil {
		return fmt.Errorf("schema: UnmarshalJSON on nil pointer")
	}
	if string(data) == "null" {
		*s = nil
		return nil
	}
	parsed, err := ParseJSON(data)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func fromNode(node *yaml.Node) (Schema, error) {
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return Schema{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: top level must be a mapping (line %d)", ErrUnsupportedDocument, node.Line)
	}

	result := make(Schema, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value
		spec, err := specFromNode(node.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", name, err)
		}
		result = append(result, Var(name, spec))
	}
	return result, nil
}

func specFromNode(node *yaml.Node) (Spec, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return Kind(node.Value), nil
	case yaml.SequenceNode:
		return enumFromNode(node)
	case yaml.MappingNode:
		return descriptorFromNode(node)
	case yaml.AliasNode:
		return specFromNode(node.Alias)
	default:
		return nil, fmt.Errorf("%w: unexpected node at line %d", ErrUnsupportedDocument, node.Line)
	}
}

func enumFromNode(node *yaml.Node) (Enum, error) {
	values := make(Enum, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%w: enum values must be scalars (line %d)", ErrUnsupportedDocument, item.Line)
		}
		values = append(values, item.Value)
	}
	return values, nil
}

func descriptorFromNode(node *yaml.Node) (Spec, error) {
	var d Descriptor
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]

		var err error
		switch key {
		case "type":
			var t string
			err = val.Decode(&t)
			d.Type = Kind(t)
		case "required":
			err = val.Decode(&d.Required)
		case "nullable":
			err = val.Decode(&d.Nullable)
		case "secret":
			err = val.Decode(&d.Secret)
		case "description":
			err = val.Decode(&d.Description)
		case "default":
			var raw any
			err = val.Decode(&raw)
			d.Default = ValueOf(raw)
		case "values", "enum":
			// Long-form enums carry no other options.
			if val.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("%w: %s must be a list (line %d)", ErrUnsupportedDocument, key, val.Line)
			}
			return enumFromNode(val)
		default:
			return nil, fmt.Errorf("%w: unknown key %q (line %d)", ErrUnsupportedDocument, key, node.Content[i].Line)
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
	}
	return d, nil
}
