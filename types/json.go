package types

import (
	"fmt"
	"io"

	"github.com/goccy/go-json"

	"github.com/gstoney/mcproto/codec"
	"github.com/gstoney/mcproto/wire"
)

// JSON is a value carried as a JSON document inside a String.
type JSON[T any] struct {
	V T
}

// JSONValue holds an arbitrary JSON document.
type JSONValue = JSON[any]

// Component is a chat text component.
type Component = JSON[TextComponent]

func (v JSON[T]) Encode(w io.Writer) error {
	b, err := json.Marshal(v.V)
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return wire.WriteString(w, string(b))
}

func (v *JSON[T]) Decode(r codec.Reader) error {
	s, err := wire.ReadString(r)
	if err != nil {
		return shortRead(err)
	}

	var t T
	if err := json.Unmarshal([]byte(s), &t); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	v.V = t
	return nil
}

// TextComponent is the structured text shown in chat, disconnect screens
// and the server list.
type TextComponent struct {
	Text          string          `json:"text"`
	Translate     string          `json:"translate,omitempty"`
	Color         string          `json:"color,omitempty"`
	Bold          bool            `json:"bold,omitempty"`
	Italic        bool            `json:"italic,omitempty"`
	Underlined    bool            `json:"underlined,omitempty"`
	Strikethrough bool            `json:"strikethrough,omitempty"`
	Obfuscated    bool            `json:"obfuscated,omitempty"`
	Extra         []TextComponent `json:"extra,omitempty"`
}

// Text returns a component holding plain text.
func Text(s string) Component {
	return Component{V: TextComponent{Text: s}}
}

type textComponent TextComponent

// UnmarshalJSON also accepts the bare string form of a component.
func (c *TextComponent) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*c = TextComponent{Text: s}
		return nil
	}

	var t textComponent
	if err := json.Unmarshal(b, &t); err != nil {
		return err
	}
	*c = TextComponent(t)
	return nil
}

// String flattens the component and its extras to plain text.
func (c TextComponent) String() string {
	s := c.Text
	for _, e := range c.Extra {
		s += e.String()
	}
	return s
}
