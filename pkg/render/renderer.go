package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strconv"

	"github.com/vango-dev/wcbridge/pkg/vdom"
)

// RenderToString renders a tree to HTML. Component nodes are expanded.
func RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a tree as HTML to w.
func RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return renderNode(w, vdom.Expand(node), false)
}

func renderNode(w io.Writer, node *vdom.VNode, rawText bool) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case vdom.KindElement:
		return renderElement(w, node)
	case vdom.KindText:
		text := node.Text
		if !rawText {
			text = escapeText(text)
		}
		_, err := io.WriteString(w, text)
		return err
	case vdom.KindRaw:
		_, err := io.WriteString(w, node.Text)
		return err
	case vdom.KindFragment:
		for _, c := range node.Children {
			if err := renderNode(w, c, rawText); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("render: unexpected node kind %s", node.Kind)
	}
}

func renderElement(w io.Writer, node *vdom.VNode) error {
	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := renderAttributes(w, node.Props); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if voidElements[node.Tag] {
		return nil
	}

	raw := rawTextElements[node.Tag]
	for _, c := range node.Children {
		if err := renderNode(w, c, raw); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "</%s>", node.Tag)
	return err
}

// renderAttributes writes props in sorted order. Handlers and nil values
// are skipped; structured values are written as JSON.
func renderAttributes(w io.Writer, props vdom.Props) error {
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := props[key]
		if value == nil || isHandler(value) {
			continue
		}
		name := key
		if name == "className" {
			name = "class"
		}

		if b, ok := value.(bool); ok && booleanAttrs[name] {
			if b {
				if _, err := fmt.Fprintf(w, " %s", name); err != nil {
					return err
				}
			}
			continue
		}

		str, err := attrString(value)
		if err != nil {
			return fmt.Errorf("render: attribute %q: %w", name, err)
		}
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(str)); err != nil {
			return err
		}
	}
	return nil
}

func isHandler(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Func
}

func attrString(v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case int64:
		return strconv.FormatInt(x, 10), nil
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64), nil
	case fmt.Stringer:
		return x.String(), nil
	case map[string]any, []any:
		b, err := json.Marshal(x)
		return string(b), err
	default:
		return fmt.Sprint(x), nil
	}
}
