// Package content reads stickering definitions from the frontmatter of
// Markdown docs, so tutorial pages can declare the masks they embed.
package content

import (
	"bytes"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	stickering "github.com/SeamusWaldron/gocube_stickering"
	"github.com/SeamusWaldron/gocube_stickering/internal/notation"
	"github.com/SeamusWaldron/gocube_stickering/internal/storage"
)

// ErrInvalidDocument is returned for malformed frontmatter.
var ErrInvalidDocument = errors.New("content: invalid document")

const frontmatterDelimiter = "---"

// Document is a parsed Markdown page.
type Document struct {
	Title       string       `yaml:"title"`
	Stickerings []Definition `yaml:"stickerings"`
	Body        string       `yaml:"-"`
}

// Definition is one stickering declared by a page:
//
//	stickerings:
//	  - name: f2l-pair
//	    default: dim
//	    setup: "y"
//	    alg: "R U R'"
//	    pieces:
//	      solved: [DF, DR, DB, DL, D]
//	      permuted: UFR, FR
//
// Piece lists may be YAML sequences or comma separated strings. Options are
// applied in the order written.
type Definition struct {
	Name    string      `yaml:"name"`
	Default string      `yaml:"default"`
	Setup   string      `yaml:"setup"`
	Alg     string      `yaml:"alg"`
	Pieces  Assignments `yaml:"pieces"`

	// Source is the slash-separated path of the page, relative to the
	// scanned directory.
	Source string `yaml:"-"`
}

// Assignments keeps the option mapping of a definition in document order.
type Assignments stickering.Custom

// UnmarshalYAML walks the mapping node directly; decoding into a Go map
// would lose the order that decides which option wins.
func (a *Assignments) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Wrapf(ErrInvalidDocument, "line %d: pieces must be a mapping of option to pieces", node.Line)
	}

	out := make(Assignments, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]
		option, err := stickering.ParseOption(key.Value)
		if err != nil {
			return errors.Wrapf(err, "line %d", key.Line)
		}

		var pieces []stickering.Piece
		switch value.Kind {
		case yaml.ScalarNode:
			pieces = stickering.ParsePieces(value.Value)
		case yaml.SequenceNode:
			for _, item := range value.Content {
				if item.Kind != yaml.ScalarNode {
					return errors.Wrapf(ErrInvalidDocument, "line %d: piece names must be strings", item.Line)
				}
				pieces = append(pieces, stickering.ParsePieces(item.Value)...)
			}
		default:
			return errors.Wrapf(ErrInvalidDocument, "line %d: pieces for %s must be a list", value.Line, option)
		}
		out = append(out, stickering.Entry{Option: option, Pieces: pieces})
	}

	*a = out
	return nil
}

// ParseDocument splits the YAML frontmatter from the body. A document
// without frontmatter has no stickerings.
func ParseDocument(content []byte) (*Document, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))
	text := strings.ReplaceAll(string(content), "\r\n", "\n")

	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return &Document{Body: text}, nil
	}

	rest := text[len(frontmatterDelimiter)+1:]
	var front, body string
	switch {
	case strings.HasPrefix(rest, frontmatterDelimiter+"\n"):
		body = rest[len(frontmatterDelimiter)+1:]
	default:
		end := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
		if end < 0 {
			if !strings.HasSuffix(rest, "\n"+frontmatterDelimiter) {
				return nil, errors.Wrap(ErrInvalidDocument, "unterminated frontmatter")
			}
			end = len(rest) - len(frontmatterDelimiter) - 1
			front, body = rest[:end], ""
		} else {
			front, body = rest[:end], rest[end+len(frontmatterDelimiter)+2:]
		}
	}

	doc := &Document{}
	if err := yaml.Unmarshal([]byte(front), doc); err != nil {
		if errors.Is(err, ErrInvalidDocument) || errors.Is(err, stickering.ErrUnknownOption) {
			return nil, errors.Wrap(err, "frontmatter")
		}
		return nil, errors.Wrapf(ErrInvalidDocument, "frontmatter: %v", err)
	}
	doc.Body = body

	for i, def := range doc.Stickerings {
		if def.Name == "" {
			return nil, errors.Wrapf(ErrInvalidDocument, "stickering %d has no name", i+1)
		}
	}
	return doc, nil
}

// Build produces the facelet mask of the definition: the stickering with
// its setup alg applied. fallback is used when the definition names no
// default option.
func (d Definition) Build(fallback stickering.Option) (stickering.OrbitsMask, error) {
	def := fallback
	if d.Default != "" {
		o, err := stickering.ParseOption(d.Default)
		if err != nil {
			return stickering.OrbitsMask{}, errors.Wrapf(err, "%s: default", d.Name)
		}
		def = o
	}

	mask, err := stickering.Build(stickering.Custom(d.Pieces), stickering.WithDefault(def))
	if err != nil {
		return stickering.OrbitsMask{}, errors.Wrapf(err, "%s", d.Name)
	}

	if d.Alg != "" {
		if _, err := notation.Parse(d.Alg); err != nil {
			return stickering.OrbitsMask{}, errors.Wrapf(err, "%s: alg", d.Name)
		}
	}

	om, err := stickering.ApplySetup(mask, d.Setup)
	if err != nil {
		return stickering.OrbitsMask{}, errors.Wrapf(err, "%s", d.Name)
	}
	return om, nil
}

// Preset builds the storage record of the definition.
func (d Definition) Preset(fallback stickering.Option) (storage.Preset, error) {
	om, err := d.Build(fallback)
	if err != nil {
		return storage.Preset{}, err
	}
	return storage.NewPreset(d.Name, om, d.Setup, d.Alg, d.Source)
}
