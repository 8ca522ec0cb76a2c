package markdown

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document is a Markdown text with optional YAML frontmatter.
type Document struct {
	Frontmatter map[string]any
	Body        string
}

// ParseFile reads a Markdown file and splits frontmatter from body.
func ParseFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, err
	}
	defer f.Close()
	return Parse(f)
}

// Parse splits r into YAML frontmatter and body. Frontmatter must start on
// the first line and is delimited by lines containing only "---".
func Parse(r io.Reader) (Document, error) {
	br := bufio.NewReader(r)
	doc := Document{Frontmatter: map[string]any{}}

	peek, err := br.Peek(3)
	if err != nil && !errors.Is(err, io.EOF) {
		return Document{}, err
	}
	if string(peek) == "---" {
		if _, err := br.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
			return Document{}, err
		}
		var fm strings.Builder
		for {
			l, err := br.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				return Document{}, err
			}
			if strings.TrimSpace(l) == "---" {
				break
			}
			fm.WriteString(l)
			if errors.Is(err, io.EOF) {
				break
			}
		}
		if err := yaml.Unmarshal([]byte(fm.String()), &doc.Frontmatter); err != nil {
			return Document{}, fmt.Errorf("frontmatter: %w", err)
		}
		if doc.Frontmatter == nil {
			doc.Frontmatter = map[string]any{}
		}
	}

	body, err := io.ReadAll(br)
	if err != nil {
		return Document{}, err
	}
	doc.Body = string(body)
	return doc, nil
}

// String returns a frontmatter value as a trimmed string, or "".
func (d Document) String(key string) string {
	v, ok := d.Frontmatter[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// Heading returns the text of the first "# " heading in the body, or "".
func (d Document) Heading() string {
	for _, l := range strings.Split(d.Body, "\n") {
		l = strings.TrimSpace(l)
		if strings.HasPrefix(l, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(l, "# "))
		}
	}
	return ""
}
