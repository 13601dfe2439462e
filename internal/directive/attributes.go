package directive

import (
	"encoding/xml"
	"fmt"
	"strings"
)

// AttributeParser decodes the text of a single <embed-code> element into its
// attributes, failing if the text is not a well-formed element of that name.
type AttributeParser func(text string) (map[string]string, error)

type element struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
}

// XMLAttributes is the default AttributeParser. It also accepts the legacy
// processing-instruction form <?embed-code ...?>.
func XMLAttributes(text string) (map[string]string, error) {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, LegacyMarker) {
		end := strings.Index(text, "?>")
		if end < 0 {
			return nil, fmt.Errorf("unterminated processing instruction")
		}
		text = Marker + text[len(LegacyMarker):end] + "/>"
	}

	var root element
	if err := xml.Unmarshal([]byte(text), &root); err != nil {
		return nil, err
	}
	if root.XMLName.Local != Tag {
		return nil, fmt.Errorf("unexpected element <%s>, want <%s>", root.XMLName.Local, Tag)
	}

	attrs := make(map[string]string, len(root.Attrs))
	for _, a := range root.Attrs {
		attrs[a.Name.Local] = a.Value
	}
	return attrs, nil
}
