package scene

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/internal/assets"
	"model-viewer/internal/config"
	"model-viewer/internal/hud"
	"model-viewer/internal/input"
	"model-viewer/internal/layout"
	"model-viewer/internal/logger"
	"model-viewer/internal/physics"
	"model-viewer/internal/pick"
	"model-viewer/internal/ui"
)

const (
	cameraFovy = 75
	cameraZ    = 10
	// maxLoadsPerFrame bounds GPU uploads per frame so a large gallery fills in without stalling input.
	maxLoadsPerFrame = 2
)

var keyBindings = []struct {
	code int32
	name string
	key  input.Key
}{
	{rl.KeyW, "w", input.KeyForward},
	{rl.KeyS, "s", input.KeyBack},
	{rl.KeyA, "a", input.KeyLeft},
	{rl.KeyD, "d", input.KeyRight},
}

// Scene is the rendering side of the viewer. It turns raylib input into World events, steps the
// World once per frame, uploads models as the loader reports them and draws the 3D view and overlay.
// All methods run on the raylib main thread.
type Scene struct {
	Camera rl.Camera3D

	cfg      config.Config
	log      *logger.Logger
	world    *physics.World
	cam      *physics.Pose
	lighting *Lighting
	events   <-chan assets.Event

	grid    layout.Grid
	objects []*Object
	byBody  map[*physics.Body]*Object
	failed  int
	// inspected is the last object picked; the inspector shows it until it settles.
	inspected *Object

	overlay   *ui.Engine
	toggle    *ui.Button
	inspector *ui.Inspector
	hud       *hud.HUD
	nodes     []*ui.Node
}

// New returns a scene driven by cfg that takes models from events. No GPU work happens until the first frame.
func New(cfg config.Config, log *logger.Logger, events <-chan assets.Event) *Scene {
	s := &Scene{
		cfg:      cfg,
		log:      log,
		cam:      physics.NewPose(mgl32.Vec3{0, 0, cameraZ}, mgl32.Vec3{}),
		lighting: NewLighting(cfg.Lights),
		events:   events,
		byBody:   make(map[*physics.Body]*Object),
		overlay:  ui.New(),
		hud:      hud.New(),
	}
	s.world = physics.NewWorld(cfg.Tuning(), s.cam)
	s.world.SetMode(cfg.StartMode())
	s.Camera.Fovy = cameraFovy
	s.Camera.Projection = rl.CameraPerspective
	s.syncCamera()

	s.overlay.SetStylesheet(ui.DefaultStylesheet())
	s.toggle = ui.NewButton("toggle", "mode", s.world.Mode().Label(), func() {
		m := s.world.ToggleMode()
		s.log.Infof("Movement mode: %s", m)
	})
	s.inspector = ui.NewInspector()
	s.hud.SetShowFPS(cfg.HUD.ShowFPS)
	s.hud.SetShowMemAlloc(cfg.HUD.ShowMemAlloc)
	return s
}

// World returns the simulation state.
func (s *Scene) World() *physics.World {
	return s.world
}

// HUD returns the overlay counters.
func (s *Scene) HUD() *hud.HUD {
	return s.hud
}

// Overlay returns the UI engine, e.g. to load a custom stylesheet.
func (s *Scene) Overlay() *ui.Engine {
	return s.overlay
}

// Models returns the names of the loaded models in load order.
func (s *Scene) Models() []string {
	names := make([]string, len(s.objects))
	for i, o := range s.objects {
		names[i] = o.Name
	}
	return names
}

// Update runs once per frame: apply loader results, sample input (keyboard only when not
// captured by the console), then step the world.
func (s *Scene) Update(keyboardCaptured bool) {
	s.drainEvents()
	s.sampleKeys(keyboardCaptured)
	s.samplePointer()
	s.world.Step()
	s.syncCamera()
	for _, o := range s.objects {
		o.sync()
	}
	s.toggle.SetText(s.world.Mode().Label())
}

func (s *Scene) sampleKeys(captured bool) {
	if captured {
		s.world.Input.ReleaseAll()
		return
	}
	for _, b := range keyBindings {
		down := rl.IsKeyDown(b.code)
		if down == s.world.Input.Pressed(b.key) {
			continue
		}
		if down {
			s.world.KeyDown(b.name)
		} else {
			s.world.KeyUp(b.name)
		}
	}
}

func (s *Scene) samplePointer() {
	mouse := rl.GetMousePosition()
	x, y := mouse.X, mouse.Y
	s.overlay.SetPointer(x, y)

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) && !s.toggle.Click(x, y) {
		hit := s.pickAt(x, y)
		s.world.PointerDown(x, y, hit)
		if hit != nil {
			s.inspected = s.byBody[hit]
		}
	}
	if s.world.Input.Dragging() {
		s.world.PointerMove(x, y)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && s.world.Input.Dragging() {
		s.world.PointerUp()
	}
	// raylib reports wheel-up as positive; the world expects positive for scroll down.
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		s.world.Wheel(-wheel)
	}
}

// pickAt returns the body under the window pixel (x, y), or nil.
func (s *Scene) pickAt(x, y float32) *physics.Body {
	ndc := pick.NDC(x, y, float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight()))
	n, ok := pick.Pick(ndc, s)
	if !ok {
		return nil
	}
	obj, ok := n.(*Object)
	if !ok {
		return nil
	}
	return obj.Body
}

// CastNDC casts a ray from the camera through ndc against every mesh of every model.
func (s *Scene) CastNDC(ndc mgl32.Vec2) []pick.Hit {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	px := (ndc[0] + 1) / 2 * w
	py := (1 - ndc[1]) / 2 * h
	ray := rl.GetScreenToWorldRay(rl.NewVector2(px, py), s.Camera)
	var hits []pick.Hit
	for _, o := range s.objects {
		hits = o.cast(ray, hits)
	}
	return hits
}

// syncCamera points the raylib camera along the pose: forward is -Z and up is +Y, both rotated by the tilt.
func (s *Scene) syncCamera() {
	pos, rot := s.cam.Position(), s.cam.Rotation()
	q := mgl32.AnglesToQuat(rot[0], rot[1], rot[2], mgl32.XYZ)
	target := pos.Add(q.Rotate(mgl32.Vec3{0, 0, -1}))
	up := q.Rotate(mgl32.Vec3{0, 1, 0})
	s.Camera.Position = rl.NewVector3(pos[0], pos[1], pos[2])
	s.Camera.Target = rl.NewVector3(target[0], target[1], target[2])
	s.Camera.Up = rl.NewVector3(up[0], up[1], up[2])
}

// drainEvents applies loader results without blocking.
func (s *Scene) drainEvents() {
	loads := 0
	for s.events != nil && loads < maxLoadsPerFrame {
		select {
		case ev, ok := <-s.events:
			if !ok {
				s.events = nil
				s.log.Infof("Loaded %d of %d model(s)", len(s.objects), s.grid.Count)
				return
			}
			if ev.Kind == assets.EventReady {
				loads++
			}
			s.apply(ev)
		default:
			return
		}
	}
}

func (s *Scene) apply(ev assets.Event) {
	switch ev.Kind {
	case assets.EventListed:
		s.grid = ev.Grid
		w, h := ev.Grid.Size()
		s.lighting.SetArea(w, h)
	case assets.EventFailed:
		s.failed++
	case assets.EventReady:
		idle := layout.IdleSpeed(ev.Asset.Cell.Index, s.cfg.Spin.Seed, s.cfg.Spin.IdleMin, s.cfg.Spin.IdleMax)
		obj, err := loadObject(ev.Path, ev.Asset.Name, ev.Asset.Cell, s.cfg.Layout.FitSize, idle)
		if err != nil {
			s.failed++
			s.log.Errorf("Error loading model %s: %v", ev.Asset.Name, err)
			return
		}
		s.lighting.Attach(obj.model)
		obj.Light = s.lighting.AddPointLight()
		s.world.Add(obj.Body)
		s.world.BindLight(obj.Body, obj.Light)
		s.objects = append(s.objects, obj)
		s.byBody[obj.Body] = obj
		s.log.Debugf("Loaded %s at cell %d,%d", obj.Name, ev.Asset.Cell.Row, ev.Asset.Cell.Col)
	}
}

// Draw renders the models, then the overlay. Call after ClearBackground.
func (s *Scene) Draw() {
	rl.BeginMode3D(s.Camera)
	s.lighting.Apply(s.cam.Position())
	for _, o := range s.objects {
		o.draw()
	}
	rl.EndMode3D()
	s.drawOverlay()
}

func (s *Scene) drawOverlay() {
	s.nodes = append(s.nodes[:0], s.toggle.Node)
	visible := s.inspected != nil && s.inspected.Body.Motion() != physics.MotionIdle
	var sel ui.Selection
	if visible {
		sel = s.selection(s.inspected)
	}
	s.nodes = s.inspector.AppendNodes(s.nodes, visible, sel)
	s.overlay.SetNodes(s.nodes)
	s.hud.DrawBoxes(s.overlay.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())))

	s.hud.Status = fmt.Sprintf("Models: %d/%d  Speed: %.3f", len(s.objects), s.grid.Count, s.world.Motion.Speed())
	if s.failed > 0 {
		s.hud.Status += fmt.Sprintf("  Failed: %d", s.failed)
	}
	s.hud.Draw()
}

func (s *Scene) selection(o *Object) ui.Selection {
	xf := o.Body.Transform()
	spin, _ := s.world.SpinOf(o.Body)
	return ui.Selection{
		Name:     o.Name,
		Motion:   o.Body.Motion().String(),
		Position: xf.Position(),
		Rotation: xf.Rotation(),
		Spin:     spin,
	}
}

// Unload frees every model and the shader. Call before the window closes.
func (s *Scene) Unload() {
	for _, o := range s.objects {
		o.unload()
	}
	s.objects = nil
	s.lighting.Unload()
}
