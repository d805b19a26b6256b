package main

import (
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// buildSelectionPanel builds the left panel: the sprite type list above the
// animation state list.
func buildSelectionPanel(
	fontFace *text.Face,
	typeNames []string,
	onTypeSelected func(name string),
	onStateSelected func(name string),
) (*widget.Container, *widget.List, *widget.List) {
	panel := widget.NewContainer(
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(180, 400),
		),
		widget.ContainerOpts.BackgroundImage(solidNineSlice(panelColor)),
		widget.ContainerOpts.Layout(
			widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Spacing(8),
				widget.RowLayoutOpts.Padding(&widget.Insets{Top: 8, Bottom: 8, Left: 8, Right: 8}),
			),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Sprite Type Selection", fontFace, labelColor),
	))
	typeList := newNameList(typeNames, onTypeSelected)
	typeList.GetWidget().MinHeight = 150
	panel.AddChild(typeList)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("Animation State", fontFace, labelColor),
	))
	stateList := newNameList(nil, onStateSelected)
	stateList.GetWidget().MinHeight = 150
	stateList.GetWidget().Disabled = true
	panel.AddChild(stateList)

	return panel, typeList, stateList
}

func newNameList(names []string, onSelected func(name string)) *widget.List {
	return widget.NewList(
		widget.ListOpts.Entries(nameEntries(names)),
		widget.ListOpts.EntryLabelFunc(func(e any) string {
			if name, ok := e.(string); ok {
				return name
			}
			return ""
		}),
		widget.ListOpts.EntrySelectedHandler(func(args *widget.ListEntrySelectedEventArgs) {
			if onSelected == nil {
				return
			}
			if name, ok := args.Entry.(string); ok {
				onSelected(name)
			}
		}),
	)
}

func nameEntries(names []string) []any {
	entries := make([]any, 0, len(names))
	for _, n := range names {
		entries = append(entries, n)
	}
	return entries
}
