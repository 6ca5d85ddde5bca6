// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"

	"cogentcore.org/retained/events"
	"cogentcore.org/retained/math32"
	"cogentcore.org/retained/raster"
	"cogentcore.org/retained/scene"
	"cogentcore.org/retained/widgets"
	"github.com/jinzhu/copier"
)

var (
	pressedShade = color.NRGBA{0, 0, 0, 64}
	thumbShade   = color.NRGBA{0, 0, 0, 128}
)

// player builds the scene of a document over a [raster.Canvas] and
// plays its steps, writing one trace line per draw and widget event.
type player struct {
	doc *document
	out io.Writer

	// dir is the directory relative snapshot paths are in.
	dir string

	// clips also traces the clip calls the manager makes on the host.
	clips bool

	canvas *raster.Canvas
	m      *scene.Manager
	queue  events.Queue

	nodes map[string]scene.Node
}

func newPlayer(doc *document, out io.Writer) (*player, error) {
	p := &player{doc: doc, out: out, nodes: map[string]scene.Node{}}
	p.canvas = raster.NewCanvas(doc.Size[0], doc.Size[1])
	p.canvas.DPIX, p.canvas.DPIY = doc.DPI, doc.DPI
	p.m = scene.NewManager(p)
	p.m.SetBounds(p.canvas.Bounds())
	for _, ld := range doc.Layers {
		if err := p.buildLayer(ld); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *player) PushClip(region math32.Box2) {
	if p.clips {
		p.printf("clip %v", region)
	}
	p.canvas.PushClip(region)
}

func (p *player) PopClip() {
	if p.clips {
		p.printf("unclip")
	}
	p.canvas.PopClip()
}

func (p *player) DPI() (x, y float32) {
	return p.canvas.DPI()
}

func (p *player) printf(format string, a ...any) {
	fmt.Fprintf(p.out, format+"\n", a...)
}

func (p *player) register(name string, n scene.Node) error {
	if name == "" {
		return nil
	}
	if _, has := p.nodes[name]; has {
		return fmt.Errorf("scenetrace: duplicate name %q", name)
	}
	p.nodes[name] = n
	return nil
}

func (p *player) buildLayer(ld layerDoc) error {
	l := p.m.CreateLayerAbove(nil)
	if err := p.register(ld.Name, l); err != nil {
		return err
	}
	if len(ld.Opaque) > 0 {
		b, err := toBox(ld.Opaque)
		if err != nil {
			return err
		}
		l.SetOpaqueArea(b)
	}
	clr, err := parseColor(ld.Color)
	if err != nil {
		return err
	}
	l.SetVisible(!ld.Hidden)
	l.SetDrawCallback(func(e *scene.Element, area *math32.Box2) {
		p.traceDraw(ld.Name, area)
		b := clipArea(e.Bounds(), area)
		if l == p.m.BottomLayer() {
			p.canvas.Clear(b)
		}
		if clr != nil {
			p.canvas.Fill(b, clr)
		}
	})
	for _, ed := range ld.Elements {
		if err := p.build(l.AsElement(), nil, ed); err != nil {
			return err
		}
	}
	return nil
}

// build adds the element to the parent, or as a cell of the grid if
// it is non-nil, and then its children.
func (p *player) build(parent *scene.Element, grid *widgets.Grid, ed elementDoc) error {
	n, err := p.newNode(ed)
	if err != nil {
		return err
	}
	if err := p.register(ed.Name, n); err != nil {
		return err
	}
	e := n.AsElement()
	if len(ed.Box) > 0 {
		b, err := toBox(ed.Box)
		if err != nil {
			return err
		}
		setBox(e, b)
	}
	clr, err := parseColor(ed.Color)
	if err != nil {
		return err
	}
	e.SetClipToBounds(ed.Clip).SetVisible(!ed.Hidden).SetEnabled(!ed.Disabled)
	e.SetDrawCallback(p.drawFunc(n, ed.Name, clr))
	if grid != nil {
		grid.AddCell(n)
	} else {
		parent.AddChild(n)
	}
	g, _ := n.(*widgets.Grid)
	for _, kd := range ed.Children {
		if err := p.build(e, g, kd); err != nil {
			return err
		}
	}
	return nil
}

func setBox(e *scene.Element, b math32.Box2) {
	e.SetArrangeCallback(func(e *scene.Element) {
		e.SetBoundsDots(b)
	})
}

// newNode makes the node of the kind of the element, with the
// callbacks that trace its events.
func (p *player) newNode(ed elementDoc) (scene.Node, error) {
	lo, hi := float32(0), float32(1)
	switch len(ed.Range) {
	case 0:
	case 2:
		lo, hi = ed.Range[0], ed.Range[1]
	default:
		return nil, fmt.Errorf("scenetrace: range %v of %q needs 2 numbers", ed.Range, ed.Name)
	}
	name := ed.Name
	switch ed.Kind {
	case "", "element":
		return scene.NewElement(), nil
	case "control":
		c := scene.NewControl()
		c.On(events.Push, func(in *events.Input) { p.printf("push %s %v", name, in.ID) })
		c.On(events.Release, func(in *events.Input) { p.printf("release %s %v", name, in.ID) })
		return c, nil
	case "button":
		return widgets.NewButton().OnClick(func(bt *widgets.Button) {
			p.printf("click %s", name)
		}), nil
	case "slider":
		sr := widgets.NewSlider().SetRange(lo, hi).SetStep(ed.Step)
		if ed.Vertical != nil && *ed.Vertical {
			sr.SetDim(math32.Y)
		}
		return sr.OnChange(func(sr *widgets.Slider) {
			p.printf("change %s %g", name, sr.Value)
		}), nil
	case "scrollbar":
		sb := widgets.NewScrollbar().SetRange(lo, hi).SetPageStep(ed.Step)
		if ed.Visible > 0 {
			sb.SetVisiblePercent(ed.Visible)
		}
		if ed.Vertical != nil && !*ed.Vertical {
			sb.SetDim(math32.X)
		}
		return sb.OnScroll(func(sb *widgets.Scrollbar) {
			p.printf("scroll %s %g", name, sb.Value)
		}), nil
	case "knob":
		return widgets.NewKnob().SetRange(lo, hi).OnChange(func(kb *widgets.Knob) {
			p.printf("turn %s %g %gdeg", name, kb.Value, math32.RadToDeg(kb.Angle()))
		}), nil
	case "grid":
		return widgets.NewGrid(ed.Cols).SetGap(ed.Gap), nil
	}
	return nil, fmt.Errorf("scenetrace: unknown kind %q of %q", ed.Kind, ed.Name)
}

func (p *player) traceDraw(name string, area *math32.Box2) {
	if area == nil {
		p.printf("draw %s", name)
		return
	}
	p.printf("draw %s %v", name, *area)
}

// clipArea returns the part of the box within the area, if any.
func clipArea(b math32.Box2, area *math32.Box2) math32.Box2 {
	if area == nil {
		return b
	}
	return b.Intersect(*area)
}

func (p *player) drawFunc(n scene.Node, name string, clr color.Color) scene.DrawFunc {
	return func(e *scene.Element, area *math32.Box2) {
		p.traceDraw(name, area)
		fill := func(b math32.Box2, c color.Color) {
			p.canvas.Fill(clipArea(b, area), c)
		}
		if clr != nil {
			fill(e.Bounds(), clr)
		}
		switch w := n.(type) {
		case *widgets.Button:
			if w.State() == widgets.ButtonEngaged {
				fill(e.Bounds(), pressedShade)
			}
		case *widgets.Slider:
			fill(w.ThumbBounds(), thumbShade)
		case *widgets.Scrollbar:
			fill(w.ThumbBounds(), thumbShade)
		}
	}
}

// run draws the whole scene and plays every step. The debug flags of
// the document are turned on for the manager of the player only.
func (p *player) run() error {
	db, err := debugSettings(&p.doc.Debug)
	if err != nil {
		return err
	}
	p.m.SetDebugSettings(db)

	p.m.UpdateEverything()
	p.present()
	for i, s := range p.doc.Steps {
		if err := p.play(s); err != nil {
			return fmt.Errorf("scenetrace: step %d: %w", i+1, err)
		}
	}
	return nil
}

// debugSettings returns a copy of [scene.DebugSettings] with the
// flags that are set in the document turned on.
func debugSettings(flags *debugFlags) (*scene.DebugSettingsData, error) {
	db := *scene.DebugSettings
	if err := copier.CopyWithOption(&db, flags, copier.Option{IgnoreEmpty: true}); err != nil {
		return nil, err
	}
	return &db, nil
}

// present traces the region redrawn since the last call.
func (p *player) present() {
	if r := p.m.TakeRedrawnRegion(); !r.IsEmpty() {
		p.printf("present %v", r)
	}
}

// send routes a raw event through the queue.
func (p *player) send(ev events.Raw) {
	p.queue.Send(ev)
	if p.m.ProcessQueue(&p.queue) {
		p.present()
	}
}

func (p *player) node(name string) (scene.Node, error) {
	n, ok := p.nodes[name]
	if !ok {
		return nil, fmt.Errorf("no element named %q", name)
	}
	return n, nil
}

func (p *player) play(s step) error {
	switch {
	case s.Point != nil:
		if len(s.Point.At) != 2 {
			return fmt.Errorf("point %v needs 2 numbers", s.Point.At)
		}
		p.send(events.Raw{ID: s.Point.ID, Kind: events.RawPoint, Point: math32.Vec2(s.Point.At[0], s.Point.At[1])})
	case s.Down != nil:
		p.send(events.Raw{ID: *s.Down, Kind: events.RawDown})
	case s.Up != nil:
		p.send(events.Raw{ID: *s.Up, Kind: events.RawUp})
	case s.Show != "", s.Hide != "":
		n, err := p.node(s.Show + s.Hide)
		if err != nil {
			return err
		}
		n.AsElement().SetVisible(s.Show != "").UpdateAfterModify()
		p.present()
	case s.Enable != "", s.Disable != "":
		n, err := p.node(s.Enable + s.Disable)
		if err != nil {
			return err
		}
		n.AsElement().SetEnabled(s.Enable != "")
		p.present()
	case s.Move != nil:
		n, err := p.node(s.Move.Name)
		if err != nil {
			return err
		}
		b, err := toBox(s.Move.Box)
		if err != nil {
			return err
		}
		setBox(n.AsElement(), b)
		n.AsElement().UpdateAfterModify()
		p.present()
	case s.Remove != "":
		n, err := p.node(s.Remove)
		if err != nil {
			return err
		}
		delete(p.nodes, s.Remove)
		if l, ok := n.(*scene.Layer); ok {
			p.m.RemoveLayer(l)
		} else {
			n.AsElement().Parent().RemoveChild(n)
		}
		p.present()
	case s.Snapshot != "":
		fn := s.Snapshot
		if !filepath.IsAbs(fn) {
			fn = filepath.Join(p.dir, fn)
		}
		if err := raster.Save(p.canvas.Image, fn); err != nil {
			return err
		}
		slog.Info("saved snapshot", "file", fn)
	default:
		return fmt.Errorf("empty step")
	}
	return nil
}
