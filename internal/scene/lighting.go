package scene

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"

	"model-viewer/internal/config"
	"model-viewer/internal/physics"
)

// maxPointLights must match MAX_LIGHTS in litFS. Lights past it are not shaded.
const maxPointLights = 64

// areaDistance is how far in front of the grid plane the area light sits, facing -Z.
const areaDistance = 5

// Lighting owns the lit shader shared by every model material: an ambient term, one
// rectangular area light in front of the grid and a colored point light per model.
// GPU resources are created on first use so that New can run before the window exists.
type Lighting struct {
	cfg    config.LightsConfig
	shader rl.Shader
	loaded bool
	locs   lightLocs

	lights     []*physics.Pose
	posBuf     []float32
	areaCenter [3]float32
	areaSize   [2]float32
}

type lightLocs struct {
	viewPos, ambient                       int32
	count, pos, color, intensity, lightRng int32
	areaCenter, areaSize, areaIntensity    int32
}

// NewLighting returns lighting for cfg with an empty area light.
func NewLighting(cfg config.LightsConfig) *Lighting {
	return &Lighting{cfg: cfg}
}

func (l *Lighting) ensure() bool {
	if l.loaded {
		return rl.IsShaderValid(l.shader)
	}
	l.loaded = true
	l.shader = rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(l.shader) {
		return false
	}
	loc := func(name string) int32 { return rl.GetShaderLocation(l.shader, name) }
	l.locs = lightLocs{
		viewPos:       loc("viewPos"),
		ambient:       loc("ambient"),
		count:         loc("lightCount"),
		pos:           loc("lightPos"),
		color:         loc("lightColor"),
		intensity:     loc("lightIntensity"),
		lightRng:      loc("lightRange"),
		areaCenter:    loc("areaCenter"),
		areaSize:      loc("areaSize"),
		areaIntensity: loc("areaIntensity"),
	}
	return true
}

// AddPointLight returns a new point light pose. The world binds it to a body.
func (l *Lighting) AddPointLight() *physics.Pose {
	p := physics.NewPose(mgl32.Vec3{}, mgl32.Vec3{})
	l.lights = append(l.lights, p)
	return p
}

// SetArea sizes the front area light to cover a grid of the given size, scaled by 1.5.
func (l *Lighting) SetArea(width, height float32) {
	l.areaCenter = [3]float32{0, 0, areaDistance}
	l.areaSize = [2]float32{width * 1.5, height * 1.5}
}

// Attach makes every material of model use the lit shader.
func (l *Lighting) Attach(model rl.Model) {
	if !l.ensure() {
		return
	}
	mats := materialsOf(model)
	for i := range mats {
		mats[i].Shader = l.shader
	}
}

// Apply uploads this frame's uniforms. Call once per frame before drawing models.
func (l *Lighting) Apply(viewPos mgl32.Vec3) {
	if !l.ensure() {
		return
	}
	n := min(len(l.lights), maxPointLights)
	l.posBuf = l.posBuf[:0]
	for _, p := range l.lights[:n] {
		v := p.Position()
		l.posBuf = append(l.posBuf, v[0], v[1], v[2])
	}
	view := [3]float32{viewPos[0], viewPos[1], viewPos[2]}
	col := hexRGB(l.cfg.Color)
	setVec3(l.shader, l.locs.viewPos, view)
	setFloat(l.shader, l.locs.ambient, l.cfg.Ambient)
	if l.locs.count >= 0 {
		rl.SetShaderValue(l.shader, l.locs.count, []float32{float32(n)}, rl.ShaderUniformFloat)
	}
	if n > 0 && l.locs.pos >= 0 {
		rl.SetShaderValueV(l.shader, l.locs.pos, l.posBuf, rl.ShaderUniformVec3, int32(n))
	}
	setVec3(l.shader, l.locs.color, col)
	setFloat(l.shader, l.locs.intensity, l.cfg.Intensity)
	setFloat(l.shader, l.locs.lightRng, l.cfg.Range)
	setVec3(l.shader, l.locs.areaCenter, l.areaCenter)
	if l.locs.areaSize >= 0 {
		rl.SetShaderValue(l.shader, l.locs.areaSize, l.areaSize[:], rl.ShaderUniformVec2)
	}
	setFloat(l.shader, l.locs.areaIntensity, l.cfg.AreaIntensity)
}

// Unload frees the shader.
func (l *Lighting) Unload() {
	if l.loaded && rl.IsShaderValid(l.shader) {
		rl.UnloadShader(l.shader)
	}
	l.loaded = false
}

func setVec3(s rl.Shader, loc int32, v [3]float32) {
	if loc >= 0 {
		rl.SetShaderValue(s, loc, v[:], rl.ShaderUniformVec3)
	}
}

func setFloat(s rl.Shader, loc int32, v float32) {
	if loc >= 0 {
		rl.SetShaderValue(s, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}

// hexRGB splits 0xRRGGBB into 0..1 channels.
func hexRGB(c uint32) [3]float32 {
	return [3]float32{
		float32(c>>16&0xff) / 255,
		float32(c>>8&0xff) / 255,
		float32(c&0xff) / 255,
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	litFS = `#version 330
#define MAX_LIGHTS 64
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform float ambient;
uniform float lightCount;
uniform vec3 lightPos[MAX_LIGHTS];
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float lightRange;
uniform vec3 areaCenter;
uniform vec2 areaSize;
uniform float areaIntensity;
out vec4 finalColor;
void main() {
  vec4 base = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  vec3 light = vec3(ambient);

  // Rect area light facing -Z: light from the closest point of the rectangle.
  vec2 halfSize = areaSize * 0.5;
  vec3 q = vec3(clamp(fragPosition.xy, areaCenter.xy - halfSize, areaCenter.xy + halfSize), areaCenter.z);
  if (fragPosition.z < areaCenter.z) {
    vec3 La = normalize(q - fragPosition);
    light += vec3(max(dot(N, La), 0.0) * areaIntensity);
  }

  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (float(i) >= lightCount) break;
    vec3 d = lightPos[i] - fragPosition;
    float dist = length(d);
    vec3 L = d / max(dist, 0.0001);
    float atten = lightRange > 0.0 ? pow(clamp(1.0 - dist / lightRange, 0.0, 1.0), 2.0) : 1.0;
    float diff = max(dot(N, L), 0.0);
    float spec = pow(max(dot(N, normalize(L + V)), 0.0), 32.0) * 0.25;
    light += lightColor * lightIntensity * atten * (diff + spec);
  }
  finalColor = vec4(base.rgb * light, base.a);
}
`
)
