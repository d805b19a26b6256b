package catalog

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/milk9111/spriteviewer/anim"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrDuplicateType is returned when the list document names a type twice.
var ErrDuplicateType = errors.New("duplicate sprite type")

// Catalog holds every sprite type loaded from a data directory. It is
// read-only once Load returns.
type Catalog struct {
	names []string
	types map[string]*anim.SpriteType
}

// Load reads the type list document at listFile and every sprite type it
// names. Each type lives in a directory of the same name next to the list,
// described by <name>.xml or <name>.yaml. Any error fails the whole load.
func Load(fsys fs.FS, listFile string) (*Catalog, error) {
	data, err := fs.ReadFile(fsys, listFile)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", listFile, err)
	}
	var list typeListDoc
	if err := decodeDoc(listFile, data, &list); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal %s: %w", listFile, err)
	}
	list.clean()

	root := path.Dir(listFile)
	c := &Catalog{
		names: make([]string, 0, len(list.Names)),
		types: make(map[string]*anim.SpriteType, len(list.Names)),
	}
	for _, name := range list.Names {
		if _, ok := c.types[name]; ok {
			return nil, fmt.Errorf("catalog: %s: %q: %w", listFile, name, ErrDuplicateType)
		}
		st, err := loadType(fsys, root, name)
		if err != nil {
			return nil, err
		}
		c.names = append(c.names, name)
		c.types[name] = st
	}
	return c, nil
}

func loadType(fsys fs.FS, root, name string) (*anim.SpriteType, error) {
	dir := path.Join(root, name)
	docPath, err := findTypeDoc(fsys, dir, name)
	if err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(fsys, docPath)
	if err != nil {
		return nil, fmt.Errorf("catalog: load %s: %w", docPath, err)
	}
	var doc typeDoc
	if err := decodeDoc(docPath, data, &doc); err != nil {
		return nil, fmt.Errorf("catalog: unmarshal %s: %w", docPath, err)
	}
	doc.clean()

	def := anim.TypeDef{
		Name:   name,
		Width:  doc.Width,
		Height: doc.Height,
		Images: make([]anim.ImageDef, 0, len(doc.Images)),
		States: make([]anim.StateDef, 0, len(doc.Animations)),
	}
	for _, im := range doc.Images {
		img, err := decodeImage(fsys, path.Join(dir, im.FileName))
		if err != nil {
			return nil, err
		}
		def.Images = append(def.Images, anim.ImageDef{ID: im.ID, Image: img})
	}
	for _, st := range doc.Animations {
		poses := make([]anim.Pose, 0, len(st.Sequence))
		for _, p := range st.Sequence {
			poses = append(poses, anim.Pose{ImageID: p.ImageID, DurationMs: p.Duration})
		}
		def.States = append(def.States, anim.StateDef{Name: st.State, Poses: poses})
	}

	t, err := anim.NewSpriteType(def)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", docPath, err)
	}
	return t, nil
}

var typeDocExts = []string{".xml", ".yaml", ".yml"}

func findTypeDoc(fsys fs.FS, dir, name string) (string, error) {
	for _, ext := range typeDocExts {
		p := path.Join(dir, name+ext)
		if _, err := fs.Stat(fsys, p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("catalog: no %s.xml or %s.yaml in %s: %w", name, name, dir, fs.ErrNotExist)
}

func decodeImage(fsys fs.FS, p string) (image.Image, error) {
	b, err := fs.ReadFile(fsys, p)
	if err != nil {
		return nil, fmt.Errorf("catalog: load image %s: %w", p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("catalog: decode image %s: %w", p, err)
	}
	return img, nil
}

// Names returns the sprite type names in list order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *Catalog) Type(name string) (*anim.SpriteType, bool) {
	t, ok := c.types[name]
	return t, ok
}

func (c *Catalog) Len() int { return len(c.names) }
