package marketplace

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	jmespath "github.com/jmespath-community/go-jmespath"
)

// envelope extracts list items and error messages from response bodies.
type envelope struct {
	listPath string
	list     jmespath.JMESPath
	msg      jmespath.JMESPath
}

func newEnvelope(listPath, messagePath string) (envelope, error) {
	listPath = strings.TrimSpace(listPath)
	if listPath == "" {
		listPath = defaultListPath
	}
	messagePath = strings.TrimSpace(messagePath)
	if messagePath == "" {
		messagePath = defaultMessagePath
	}
	list, err := jmespath.Compile(listPath)
	if err != nil {
		return envelope{}, fmt.Errorf("invalid list items path %q: %w", listPath, err)
	}
	msg, err := jmespath.Compile(messagePath)
	if err != nil {
		return envelope{}, fmt.Errorf("invalid error message path %q: %w", messagePath, err)
	}
	return envelope{listPath: listPath, list: list, msg: msg}, nil
}

// decodeDocument keeps numbers as json.Number so int64 ids survive a
// round trip through the generic document.
func decodeDocument(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// items returns the raw list elements. A bare JSON array is taken as-is;
// an object is searched with the list path. A missing list is empty.
func (e envelope) items(body []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var arr []json.RawMessage
		if err := json.Unmarshal(trimmed, &arr); err != nil {
			return nil, err
		}
		return arr, nil
	}

	doc, err := decodeDocument(trimmed)
	if err != nil {
		return nil, err
	}
	found, err := e.list.Search(doc)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}
	arr, ok := found.([]any)
	if !ok {
		return nil, fmt.Errorf("list items path %q did not select an array", e.listPath)
	}
	out := make([]json.RawMessage, 0, len(arr))
	for _, item := range arr {
		raw, err := json.Marshal(item)
		if err != nil {
			return nil, err
		}
		out = append(out, raw)
	}
	return out, nil
}

// message extracts a user-displayable message from an error body, or "".
// Arrays of messages are joined with "; ".
func (e envelope) message(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}
	doc, err := decodeDocument(trimmed)
	if err != nil {
		return ""
	}
	found, err := e.msg.Search(doc)
	if err != nil {
		return ""
	}
	switch v := found.(type) {
	case string:
		return strings.TrimSpace(v)
	case []any:
		parts := make([]string, 0, len(v))
		for _, p := range v {
			if s, ok := p.(string); ok && strings.TrimSpace(s) != "" {
				parts = append(parts, strings.TrimSpace(s))
			}
		}
		return strings.Join(parts, "; ")
	default:
		return ""
	}
}
