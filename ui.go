package main

import (
	"bytes"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// viewerUI holds the widgets the game updates after building the UI.
type viewerUI struct {
	typeList    *widget.List
	stateList   *widget.List
	speedLabel  *widget.Text
	pauseBanner *widget.Container
}

// buildViewerUI wires every widget to the viewer's commands.
func buildViewerUI(v *viewer) (*ebitenui.UI, *viewerUI) {
	ui := &ebitenui.UI{}

	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("Failed to load font: " + err.Error())
	}
	var fontFace text.Face = &text.GoTextFace{Source: s, Size: 14}
	ui.PrimaryTheme = newViewerTheme(&fontFace)

	leftPanel, typeList, stateList := buildSelectionPanel(
		&fontFace,
		v.typeNames(),
		func(name string) { _ = v.selectType(name) },
		func(name string) { _ = v.selectState(name) },
	)
	toolbar, speedLabel := buildToolBar(ui.PrimaryTheme, &fontFace, []toolbarButton{
		{label: "Start", onClick: v.play},
		{label: "Stop", onClick: v.pause},
		{label: "Speed Up", onClick: v.speedUp},
		{label: "Slow Down", onClick: v.slowDown},
	})
	pauseBanner := newPauseBanner(v.play)

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	leftPanel.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionStart,
		VerticalPosition:   widget.AnchorLayoutPositionCenter,
		StretchVertical:    true,
	}
	toolbar.GetWidget().LayoutData = widget.AnchorLayoutData{
		HorizontalPosition: widget.AnchorLayoutPositionCenter,
		VerticalPosition:   widget.AnchorLayoutPositionStart,
	}
	root.AddChild(leftPanel)
	root.AddChild(toolbar)
	root.AddChild(pauseBanner)
	ui.Container = root

	return ui, &viewerUI{
		typeList:    typeList,
		stateList:   stateList,
		speedLabel:  speedLabel,
		pauseBanner: pauseBanner,
	}
}

func (u *viewerUI) setTypes(names []string) {
	u.typeList.SetEntries(nameEntries(names))
}

// setStates fills the state list; an empty list is disabled.
func (u *viewerUI) setStates(names []string) {
	u.stateList.SetEntries(nameEntries(names))
	u.stateList.GetWidget().Disabled = len(names) == 0
}

func (u *viewerUI) setSpeed(scale float64) {
	u.speedLabel.Label = speedText(scale)
}

func (u *viewerUI) setPaused(paused bool) {
	vis := widget.Visibility_Hide
	if paused {
		vis = widget.Visibility_Show
	}
	if u.pauseBanner.GetWidget().Visibility != vis {
		u.pauseBanner.GetWidget().Visibility = vis
	}
}
