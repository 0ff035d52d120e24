package scene

import (
	"fmt"
	"unsafe"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/internal/layout"
	"model-viewer/internal/physics"
	"model-viewer/internal/pick"
)

// Object is one loaded model: the GPU model, its simulation body and the point light that follows it.
// It is a top-level pick node; its meshes are Parts.
type Object struct {
	Name   string
	Body   *physics.Body
	Light  *physics.Pose
	model  rl.Model
	center mgl32.Vec3
	scale  float32
	parts  []*Part
}

// Part is one mesh of an Object. Rays hit parts; picking walks up to the Object.
type Part struct {
	obj  *Object
	mesh int
}

func (o *Object) Parent() pick.Node { return nil }
func (p *Part) Parent() pick.Node   { return p.obj }

// loadObject decodes path and fits the model into cell: centered on its bounding box,
// scaled so its largest side is fitSize, turned a quarter turn to face the camera.
func loadObject(path, name string, cell layout.Cell, fitSize, idleSpeed float32) (*Object, error) {
	model := rl.LoadModel(path)
	if !rl.IsModelValid(model) || model.MeshCount == 0 {
		rl.UnloadModel(model)
		return nil, fmt.Errorf("scene: %s: no meshes", name)
	}
	box := rl.GetModelBoundingBox(model)
	lo := mgl32.Vec3{box.Min.X, box.Min.Y, box.Min.Z}
	hi := mgl32.Vec3{box.Max.X, box.Max.Y, box.Max.Z}

	o := &Object{
		Name:   name,
		model:  model,
		center: lo.Add(hi).Mul(0.5),
		scale:  layout.FitScale(hi.Sub(lo), fitSize),
	}
	pose := physics.NewPose(cell.Center, mgl32.Vec3{0, -math32.Pi / 2, 0})
	o.Body = physics.NewBody(name, pose, idleSpeed)
	for i := range meshesOf(model) {
		o.parts = append(o.parts, &Part{obj: o, mesh: i})
	}
	o.sync()
	return o, nil
}

// sync copies the body's pose into the model transform:
// recenter, scale, rotate (XYZ), then move to the body position.
func (o *Object) sync() {
	xf := o.Body.Transform()
	pos, rot := xf.Position(), xf.Rotation()
	m := rl.MatrixMultiply(rl.MatrixTranslate(-o.center[0], -o.center[1], -o.center[2]), rl.MatrixScale(o.scale, o.scale, o.scale))
	m = rl.MatrixMultiply(m, rl.MatrixRotateXYZ(rl.NewVector3(rot[0], rot[1], rot[2])))
	m = rl.MatrixMultiply(m, rl.MatrixTranslate(pos[0], pos[1], pos[2]))
	o.model.Transform = m
}

// cast appends the hits of ray against every mesh of o.
func (o *Object) cast(ray rl.Ray, hits []pick.Hit) []pick.Hit {
	meshes := meshesOf(o.model)
	for _, p := range o.parts {
		c := rl.GetRayCollisionMesh(ray, meshes[p.mesh], o.model.Transform)
		if c.Hit {
			hits = append(hits, pick.Hit{Node: p, Distance: c.Distance})
		}
	}
	return hits
}

func (o *Object) draw() {
	rl.DrawModel(o.model, rl.Vector3{}, 1, rl.White)
}

func (o *Object) unload() {
	rl.UnloadModel(o.model)
}

func meshesOf(m rl.Model) []rl.Mesh {
	if m.Meshes == nil || m.MeshCount <= 0 {
		return nil
	}
	return unsafe.Slice(m.Meshes, m.MeshCount)
}

func materialsOf(m rl.Model) []rl.Material {
	if m.Materials == nil || m.MaterialCount <= 0 {
		return nil
	}
	return unsafe.Slice(m.Materials, m.MaterialCount)
}
