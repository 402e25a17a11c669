package meta

import "strings"

// DocTag is one `@name text` line from a doc block.
type DocTag struct {
	Name string `json:"name"`
	Text string `json:"text,omitempty"`
}

// DocsSnapshot captures a member's documentation at extraction time.
// Later edits to the source cannot change an already-built snapshot.
type DocsSnapshot struct {
	Text string   `json:"text"`
	Tags []DocTag `json:"tags"`
}

// ToValue encodes the snapshot as a literal, tags first.
func (d DocsSnapshot) ToValue() Value {
	tags := make([]Value, len(d.Tags))
	for i, tag := range d.Tags {
		fields := []ValueField{{Name: "name", Value: StringValue(tag.Name)}}
		if tag.Text != "" {
			fields = append(fields, ValueField{Name: "text", Value: StringValue(tag.Text)})
		}
		tags[i] = ObjectValue(fields...)
	}
	return ObjectValue(
		ValueField{Name: "tags", Value: ArrayValue(tags...)},
		ValueField{Name: "text", Value: StringValue(d.Text)},
	)
}

// ParseDocBlock turns raw `/** ... */` text into a docs snapshot.
// Lines before the first `@tag` form the text; each tag takes the rest
// of its line plus any untagged continuation lines that follow it.
func ParseDocBlock(raw string) DocsSnapshot {
	snapshot := DocsSnapshot{Tags: []DocTag{}}
	if raw == "" {
		return snapshot
	}

	body := strings.TrimSpace(raw)
	body = strings.TrimPrefix(body, "/**")
	body = strings.TrimSuffix(body, "*/")

	var textLines []string
	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimPrefix(line, "*")
		line = strings.TrimSpace(line)

		if tag, ok := parseTagLine(line); ok {
			snapshot.Tags = append(snapshot.Tags, tag)
			continue
		}
		if n := len(snapshot.Tags); n != 0 {
			// Continuation of the preceding tag.
			if line != "" {
				last := &snapshot.Tags[n-1]
				if last.Text == "" {
					last.Text = line
				} else {
					last.Text += "\n" + line
				}
			}
			continue
		}
		textLines = append(textLines, line)
	}

	snapshot.Text = strings.TrimSpace(strings.Join(textLines, "\n"))
	return snapshot
}

// parseTagLine recognizes `@name rest-of-line`.
func parseTagLine(line string) (DocTag, bool) {
	if !strings.HasPrefix(line, "@") || len(line) < 2 {
		return DocTag{}, false
	}
	rest := line[1:]
	if rest[0] == ' ' || rest[0] == '\t' {
		return DocTag{}, false
	}
	name := rest
	text := ""
	if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
		name = rest[:idx]
		text = strings.TrimSpace(rest[idx+1:])
	}
	return DocTag{Name: name, Text: text}, true
}
