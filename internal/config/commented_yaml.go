package config

import (
	"bytes"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// MarshalCommented renders the configuration as YAML with each field's
// "comment" tag placed above its key
func (c *Config) MarshalCommented() ([]byte, error) {
	node, err := commentedNode(reflect.ValueOf(*c))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString("# charthub configuration\n")
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

// commentedNode builds a yaml.Node for structs of scalars
func commentedNode(val reflect.Value) (*yaml.Node, error) {
	switch val.Kind() {
	case reflect.Struct:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		typ := val.Type()
		for i := 0; i < typ.NumField(); i++ {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			name := strings.Split(field.Tag.Get("yaml"), ",")[0]
			if name == "" || name == "-" {
				continue
			}

			child, err := commentedNode(val.Field(i))
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", field.Name, err)
			}
			key := &yaml.Node{
				Kind:        yaml.ScalarNode,
				Tag:         "!!str",
				Value:       name,
				HeadComment: field.Tag.Get("comment"),
			}
			node.Content = append(node.Content, key, child)
		}
		return node, nil
	case reflect.String:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val.String()}, nil
	case reflect.Int, reflect.Int64:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(val.Int(), 10)}, nil
	case reflect.Bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(val.Bool())}, nil
	default:
		var node yaml.Node
		if err := node.Encode(val.Interface()); err != nil {
			return nil, fmt.Errorf("failed to encode value: %w", err)
		}
		return &node, nil
	}
}

// CommentFor returns the comment tag for a dotted yaml path such as
// "hub.timeout", or "" when the path is unknown
func CommentFor(path string) string {
	typ := reflect.TypeOf(Config{})
	var comment string
	for _, part := range strings.Split(path, ".") {
		if typ.Kind() != reflect.Struct {
			return ""
		}
		found := false
		for i := 0; i < typ.NumField(); i++ {
			f := typ.Field(i)
			if strings.Split(f.Tag.Get("yaml"), ",")[0] == part {
				comment = f.Tag.Get("comment")
				typ = f.Type
				found = true
				break
			}
		}
		if !found {
			return ""
		}
	}
	return comment
}
