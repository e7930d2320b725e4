package gateway

import (
	"fmt"

	"google.golang.org/genai"
)

// verifySchema walks the decoded reply against the declared schema and
// reports the first required field that is absent. Only presence is checked;
// value typing is left to the typed decode that follows.
func verifySchema(value any, schema *genai.Schema) error {
	return verifyAt(value, schema, "$")
}

func verifyAt(value any, schema *genai.Schema, path string) error {
	if schema == nil {
		return nil
	}

	switch schema.Type {
	case genai.TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return fmt.Errorf("%s: expected object", path)
		}
		for _, field := range schema.Required {
			child, present := obj[field]
			if !present || child == nil {
				return fmt.Errorf("%s: missing required field %q", path, field)
			}
			if sub, ok := schema.Properties[field]; ok {
				if err := verifyAt(child, sub, path+"."+field); err != nil {
					return err
				}
			}
		}

	case genai.TypeArray:
		items, ok := value.([]any)
		if !ok {
			return fmt.Errorf("%s: expected array", path)
		}
		if schema.Items == nil || schema.Items.Type != genai.TypeObject {
			return nil
		}
		for i, item := range items {
			if err := verifyAt(item, schema.Items, fmt.Sprintf("%s[%d]", path, i)); err != nil {
				return err
			}
		}
	}

	return nil
}
