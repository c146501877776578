package app

import (
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/justyntemme/tabstrip"
	"github.com/justyntemme/tabstrip/internal/config"
	"github.com/justyntemme/tabstrip/internal/debug"
	"github.com/justyntemme/tabstrip/internal/store"
)

// msgKind discriminates the messages the bar produces.
type msgKind int

const (
	msgSelect msgKind = iota
	msgClose
	msgReorder
)

type message struct {
	kind     msgKind
	id       string
	from, to int
}

type Orchestrator struct {
	window  *app.Window
	store   *store.DB
	config  *config.Manager
	hotkeys *config.HotkeyMatcher

	theme  *material.Theme
	styles tabstrip.Styles
	bar    *tabstrip.Bar[string, message]

	addBtn     widget.Clickable
	tabIcon    *widget.Icon
	tabCounter int
	debug      bool

	// storeEvents hands store responses to the frame loop. The bar is
	// only touched from the window goroutine.
	storeEvents chan store.Response
}

func NewOrchestrator(debugMode bool) *Orchestrator {
	o := &Orchestrator{
		window:      new(app.Window),
		store:       store.NewDB(),
		config:      config.NewManager(),
		debug:       debugMode,
		storeEvents: make(chan store.Response, 10),
	}
	o.tabIcon, _ = widget.NewIcon(icons.ActionDescription)
	return o
}

func (o *Orchestrator) Run() error {
	if o.debug {
		log.Println("Starting tabdemo in DEBUG mode")
		debug.EnableAll()
	}

	if err := o.config.Load(); err != nil {
		log.Printf("Config load failed, using defaults: %v", err)
	}
	cfg := o.config.Get()
	o.hotkeys = config.NewHotkeyMatcher(cfg.Hotkeys)

	o.theme = material.NewTheme()
	o.styles = tabstrip.DefaultStyles()
	if cfg.UI.Theme == "dark" {
		o.styles = darkStyles()
		o.theme.Palette = darkPalette(o.theme.Palette)
	}

	o.bar = tabstrip.New[string, message](cfg.Bar.ToBar(), nil, tabstrip.Callbacks[string, message]{
		Select:  func(id string) message { return message{kind: msgSelect, id: id} },
		Close:   func(id string) message { return message{kind: msgClose, id: id} },
		Reorder: func(from, to int) message { return message{kind: msgReorder, from: from, to: to} },
	})

	// Init DB
	configDir, _ := os.UserConfigDir()
	if err := o.store.Open(filepath.Join(configDir, "tabdemo", "session.db")); err != nil {
		log.Printf("Failed to open DB: %v", err)
	}
	defer o.store.Close()

	go o.store.Start()
	go o.processEvents()

	if cfg.Session.RestoreOnStart {
		o.store.RequestChan <- store.Request{Op: store.FetchSession}
	} else {
		o.seedTabs()
	}

	// Event loop
	var ops op.Ops
	for {
		switch e := o.window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			o.drainStoreEvents()
			o.handleHotkeys(gtx)
			o.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}

func (o *Orchestrator) layout(gtx layout.Context) layout.Dimensions {
	return layout.Flex{Axis: layout.Vertical}.Layout(gtx,
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{Axis: layout.Horizontal, Alignment: layout.Middle}.Layout(gtx,
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					dims, msgs := o.bar.Layout(gtx, o.theme, o.styles)
					for _, m := range msgs {
						o.handleMessage(m)
					}
					return dims
				}),
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					btn := material.Button(o.theme, &o.addBtn, "+")
					btn.Inset = layout.UniformInset(unit.Dp(6))
					if o.addBtn.Clicked(gtx) {
						o.newTab()
					}
					return layout.UniformInset(unit.Dp(2)).Layout(gtx, btn.Layout)
				}),
			)
		}),
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			title := "No tab selected"
			if id, ok := o.bar.ActiveID(); ok {
				for _, t := range o.bar.Tabs() {
					if t.ID == id {
						title = t.Label.Text
					}
				}
			}
			return layout.Center.Layout(gtx, material.H5(o.theme, title).Layout)
		}),
	)
}

func (o *Orchestrator) handleHotkeys(gtx layout.Context) {
	for _, f := range o.hotkeys.Filters(nil) {
		for {
			ev, ok := gtx.Event(f)
			if !ok {
				break
			}
			e, ok := ev.(key.Event)
			if !ok || e.State != key.Press {
				continue
			}
			switch {
			case o.hotkeys.NewTab.Matches(e):
				o.newTab()
			case o.hotkeys.CloseTab.Matches(e):
				if id, ok := o.bar.ActiveID(); ok {
					o.closeTab(id)
				}
			case o.hotkeys.NextTab.Matches(e):
				o.stepTab(1)
			case o.hotkeys.PrevTab.Matches(e):
				o.stepTab(-1)
			default:
				direct := []config.Hotkey{
					o.hotkeys.Tab1, o.hotkeys.Tab2, o.hotkeys.Tab3,
					o.hotkeys.Tab4, o.hotkeys.Tab5, o.hotkeys.Tab6,
				}
				for i, h := range direct {
					if h.Matches(e) && i < o.bar.Len() {
						o.bar.SetActive(o.bar.Tabs()[i].ID)
						o.window.Invalidate()
					}
				}
			}
		}
	}
}

func (o *Orchestrator) handleMessage(m message) {
	switch m.kind {
	case msgSelect:
		debug.Log(debug.APP, "select %s", m.id)
		o.bar.SetActive(m.id)
		o.saveSession()
	case msgClose:
		o.closeTab(m.id)
	case msgReorder:
		debug.Log(debug.APP, "reorder %d -> %d", m.from, m.to)
		o.saveSession()
	}
	o.window.Invalidate()
}

func (o *Orchestrator) newTab() {
	o.tabCounter++
	id := fmt.Sprintf("tab-%d", o.tabCounter)
	title := fmt.Sprintf("Tab %d", o.tabCounter)
	o.bar.Push(tabstrip.Tab[string]{
		ID:      id,
		Label:   tabstrip.IconTextLabel(o.tabIcon, title),
		Tooltip: title,
	})
	o.bar.SetActive(id)
	debug.Log(debug.APP, "new tab %s", id)
	o.saveSession()
	o.window.Invalidate()
}

func (o *Orchestrator) closeTab(id string) {
	// Activate a neighbor before removing the active tab
	if active, ok := o.bar.ActiveID(); ok && active == id {
		tabs := o.bar.Tabs()
		for i, t := range tabs {
			if t.ID == id {
				switch {
				case i+1 < len(tabs):
					o.bar.SetActive(tabs[i+1].ID)
				case i > 0:
					o.bar.SetActive(tabs[i-1].ID)
				default:
					o.bar.ClearActive()
				}
				break
			}
		}
	}
	if o.bar.Remove(id) {
		debug.Log(debug.APP, "closed tab %s", id)
		o.saveSession()
	}
	o.window.Invalidate()
}

func (o *Orchestrator) stepTab(delta int) {
	n := o.bar.Len()
	if n == 0 {
		return
	}
	i := o.bar.ActiveIndex()
	if i < 0 {
		i = 0
	} else {
		i = ((i+delta)%n + n) % n
	}
	o.bar.SetActive(o.bar.Tabs()[i].ID)
	o.window.Invalidate()
}

func (o *Orchestrator) seedTabs() {
	for i := 0; i < 3; i++ {
		o.newTab()
	}
}

func (o *Orchestrator) saveSession() {
	tabs := o.bar.Tabs()
	out := make([]store.SessionTab, len(tabs))
	for i, t := range tabs {
		out[i] = store.SessionTab{ID: t.ID, Title: t.Label.Text, Tooltip: t.Tooltip}
	}
	active, _ := o.bar.ActiveID()
	o.store.RequestChan <- store.Request{Op: store.SaveSession, Tabs: out, Active: active}
}

func (o *Orchestrator) processEvents() {
	for resp := range o.store.ResponseChan {
		o.storeEvents <- resp
		o.window.Invalidate()
	}
}

func (o *Orchestrator) drainStoreEvents() {
	for {
		select {
		case resp := <-o.storeEvents:
			o.handleStoreResponse(resp)
		default:
			return
		}
	}
}

func (o *Orchestrator) handleStoreResponse(resp store.Response) {
	if resp.Err != nil {
		log.Printf("Store Error: %v", resp.Err)
		return
	}

	switch resp.Op {
	case store.FetchSession:
		if len(resp.Tabs) == 0 {
			o.seedTabs()
			break
		}
		for _, t := range resp.Tabs {
			o.bar.Push(tabstrip.Tab[string]{
				ID:      t.ID,
				Label:   tabstrip.IconTextLabel(o.tabIcon, t.Title),
				Tooltip: t.Tooltip,
			})
			// Keep the counter ahead of restored IDs
			var n int
			if _, err := fmt.Sscanf(t.ID, "tab-%d", &n); err == nil && n > o.tabCounter {
				o.tabCounter = n
			}
		}
		if resp.Active != "" {
			o.bar.SetActive(resp.Active)
		} else if len(resp.Tabs) > 0 {
			o.bar.SetActive(resp.Tabs[0].ID)
		}
		debug.Log(debug.APP, "restored %d tabs", len(resp.Tabs))
	}
}

func darkPalette(p material.Palette) material.Palette {
	p.Bg = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
	p.Fg = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
	return p
}

func darkStyles() tabstrip.Styles {
	st := tabstrip.DefaultStyles()
	st.Bar = color.NRGBA{R: 40, G: 40, B: 40, A: 255}
	st.Thumb = color.NRGBA{R: 120, G: 120, B: 120, A: 200}
	st.Tab = func(s tabstrip.Status) tabstrip.TabStyle {
		t := tabstrip.TabStyle{
			Background:   color.NRGBA{R: 40, G: 40, B: 40, A: 255},
			Text:         color.NRGBA{R: 170, G: 170, B: 170, A: 255},
			Icon:         color.NRGBA{R: 170, G: 170, B: 170, A: 255},
			CloseHover:   color.NRGBA{R: 80, G: 80, B: 80, A: 255},
			CornerRadius: 4,
		}
		switch s {
		case tabstrip.StatusActive, tabstrip.StatusDragging:
			t.Background = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
			t.Text = color.NRGBA{R: 100, G: 181, B: 246, A: 255}
			t.Icon = t.Text
		case tabstrip.StatusHovered:
			t.Background = color.NRGBA{R: 52, G: 52, B: 52, A: 255}
			t.Text = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
		}
		return t
	}
	return st
}

func Main(debugMode bool) {
	go func() {
		o := NewOrchestrator(debugMode)
		if err := o.Run(); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}
