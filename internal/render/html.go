package render

import (
	_ "embed"
	"encoding/json"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/SeamusWaldron/gocube_stickering/internal/storage"
)

//go:embed page.html
var pageTemplate string

var page = template.Must(template.New("page").Parse(pageTemplate))

// DefaultScriptURL is the cubing.js twisty module.
const DefaultScriptURL = "https://cdn.cubing.net/v0/js/cubing/twisty"

// PageOptions configures the HTML page.
type PageOptions struct {
	Title     string
	ScriptURL string
}

// Player is one twisty-player element on the page.
type Player struct {
	ID     string
	Name   string
	Alg    string
	Setup  string
	Mask   string // serialized mask; empty when the facelet form is used
	Source string
}

// pageData is the template input.
type pageData struct {
	Title        string
	ScriptURL    string
	Players      []Player
	FaceletMasks template.JS
}

var nonIdent = regexp.MustCompile(`[^a-z0-9]+`)

// playerID derives a DOM id from the preset name.
func playerID(name string, i int) string {
	slug := strings.Trim(nonIdent.ReplaceAllString(strings.ToLower(name), "-"), "-")
	if slug == "" {
		slug = "preset"
	}
	return "stickering-" + strconv.Itoa(i) + "-" + slug
}

// WritePage renders one twisty-player per preset. Compact masks go in the
// element attribute; facelet masks are assigned from a script block.
func WritePage(w io.Writer, presets []storage.Preset, opts PageOptions) error {
	if opts.Title == "" {
		opts.Title = "Stickerings"
	}
	if opts.ScriptURL == "" {
		opts.ScriptURL = DefaultScriptURL
	}

	data := pageData{Title: opts.Title, ScriptURL: opts.ScriptURL}
	facelets := make(map[string]json.RawMessage)

	for i, p := range presets {
		player := Player{ID: playerID(p.Name, i), Name: p.Name}
		if p.Alg != nil {
			player.Alg = *p.Alg
		}
		if p.SetupAlg != nil {
			player.Setup = *p.SetupAlg
		}
		if p.Source != nil {
			player.Source = *p.Source
		}

		if p.Compact() {
			player.Mask = p.Mask
		} else {
			om, err := p.Orbits()
			if err != nil {
				return err
			}
			raw, err := json.Marshal(om)
			if err != nil {
				return errors.Wrapf(err, "marshaling mask of %s", p.Name)
			}
			facelets[player.ID] = raw
		}
		data.Players = append(data.Players, player)
	}

	masksJSON, err := json.Marshal(facelets)
	if err != nil {
		return errors.Wrap(err, "marshaling facelet masks")
	}
	data.FaceletMasks = template.JS(masksJSON)

	if err := page.Execute(w, data); err != nil {
		return errors.Wrap(err, "executing page template")
	}
	return nil
}

// WritePageFile renders the page to path.
func WritePageFile(path string, presets []storage.Preset, opts PageOptions) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating page file")
	}
	defer f.Close()

	return WritePage(f, presets, opts)
}
