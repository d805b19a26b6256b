package catalog

import (
	"encoding/xml"
	"fmt"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// typeListDoc is the list of sprite type names, e.g. sprite_type_list.xml.
type typeListDoc struct {
	XMLName xml.Name `xml:"sprite_type_list" yaml:"-"`
	Names   []string `xml:"sprite_type" yaml:"sprite_types"`
}

// typeDoc describes one sprite type, e.g. box_man/box_man.xml.
type typeDoc struct {
	XMLName    xml.Name       `xml:"sprite_type" yaml:"-"`
	Width      int            `xml:"width" yaml:"width"`
	Height     int            `xml:"height" yaml:"height"`
	Images     []imageDoc     `xml:"images_list>image_file" yaml:"images"`
	Animations []animStateDoc `xml:"animations_list>animation_state" yaml:"animations"`
}

type imageDoc struct {
	ID       int    `xml:"id,attr" yaml:"id"`
	FileName string `xml:"file_name,attr" yaml:"file"`
}

type animStateDoc struct {
	State    string    `xml:"state" yaml:"state"`
	Sequence []poseDoc `xml:"animation_sequence>pose" yaml:"sequence"`
}

type poseDoc struct {
	ImageID  int `xml:"image_id,attr" yaml:"image_id"`
	Duration int `xml:"duration,attr" yaml:"duration"`
}

type docFormat int

const (
	formatUnknown docFormat = iota
	formatXML
	formatYAML
)

func formatOf(name string) docFormat {
	switch strings.ToLower(path.Ext(name)) {
	case ".xml":
		return formatXML
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatUnknown
}

func decodeDoc(name string, data []byte, out any) error {
	switch formatOf(name) {
	case formatXML:
		return xml.Unmarshal(data, out)
	case formatYAML:
		return yaml.Unmarshal(data, out)
	}
	return fmt.Errorf("unsupported document type %q", path.Ext(name))
}

// clean trims authoring whitespace from names and drops blank list entries.
func (d *typeListDoc) clean() {
	names := d.Names[:0]
	for _, n := range d.Names {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	d.Names = names
}

func (d *typeDoc) clean() {
	for i := range d.Images {
		d.Images[i].FileName = strings.TrimSpace(d.Images[i].FileName)
	}
	for i := range d.Animations {
		d.Animations[i].State = strings.TrimSpace(d.Animations[i].State)
	}
}
