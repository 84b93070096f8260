package scene

import (
	"fmt"
	"io"

	"github.com/mravel/pathtracer/pkg/core"
	"github.com/mravel/pathtracer/pkg/geometry"
	"github.com/mravel/pathtracer/pkg/material"
	"github.com/mravel/pathtracer/pkg/renderer"
)

// Entity/material/texture type codes, in the variants' declared order:
// start=0, then each variant, end=last+1.
const (
	entityTypeSphere = iota + 1
	entityTypeRectXY
	entityTypeRectXZ
	entityTypeRectYZ
	entityTypeBox
	entityTypeFlipNormals
)

const (
	materialTypeDiffuse = iota + 1
	materialTypeMetal
	materialTypeDielectric
	materialTypeDiffuseLight
)

const (
	textureTypeSolid = iota + 1
	textureTypeChecker
	textureTypeNoise
	textureTypeImage
)

// ImageLoader resolves an Image texture's scene-file name to decoded
// pixel data. Load's caller supplies one (typically backed by disk and
// image.Decode); tests can supply a fake.
type ImageLoader func(name string) (*material.Image, error)

// Load parses a scene text file: one Camera record followed by any
// number of Entity records, each optionally carrying a Material and
// (within the material) a Texture, per the declared whitespace-token
// grammar. A malformed or truncated file is a fatal scene-file error,
// returned rather than panicking.
func Load(r io.Reader, width, height int, loadImage ImageLoader) (*Scene, error) {
	tr := newTokenReader(r)

	cam, err := parseCamera(tr, width, height)
	if err != nil {
		return nil, fmt.Errorf("scene: parsing camera: %w", err)
	}

	perlin := core.NewPerlin(core.NewRNG(1, 1))
	s := New(cam)
	for {
		tag, ok := tr.next()
		if !ok {
			break
		}
		if tag != "Entity" {
			return nil, fmt.Errorf("scene: expected Entity record, got %q", tag)
		}
		entity, err := parseEntity(tr, perlin, loadImage)
		if err != nil {
			return nil, fmt.Errorf("scene: parsing entity: %w", err)
		}
		s.Entities.Add(entity)
	}
	if err := tr.err(); err != nil {
		return nil, fmt.Errorf("scene: reading scene file: %w", err)
	}
	return s, nil
}

func parseCamera(tr *tokenReader, width, height int) (*renderer.Camera, error) {
	tag, err := tr.word()
	if err != nil {
		return nil, err
	}
	if tag != "Camera" {
		return nil, fmt.Errorf("expected Camera record, got %q", tag)
	}

	distance, err := tr.float()
	if err != nil {
		return nil, err
	}
	fov, err := tr.float()
	if err != nil {
		return nil, err
	}
	aperture, err := tr.float()
	if err != nil {
		return nil, err
	}
	focusDistance, err := tr.float()
	if err != nil {
		return nil, err
	}
	pitch, err := tr.float()
	if err != nil {
		return nil, err
	}
	yaw, err := tr.float()
	if err != nil {
		return nil, err
	}
	lookAt, err := tr.vec3()
	if err != nil {
		return nil, err
	}

	aspect := float64(width) / float64(height)
	return renderer.NewCamera(lookAt, yaw, pitch, distance, aperture, focusDistance, fov, aspect), nil
}

func parseEntity(tr *tokenReader, perlin *core.Perlin, loadImage ImageLoader) (core.Entity, error) {
	entityType, err := tr.uint32()
	if err != nil {
		return nil, err
	}

	switch entityType {
	case entityTypeSphere:
		center, err := tr.vec3()
		if err != nil {
			return nil, err
		}
		radius, err := tr.float()
		if err != nil {
			return nil, err
		}
		sphere := geometry.NewSphere(center, radius, nil)
		if mat, present, err := maybeParseMaterial(tr, perlin, loadImage); err != nil {
			return nil, err
		} else if present {
			sphere.Material = mat
		}
		return sphere, nil

	case entityTypeRectXY, entityTypeRectXZ, entityTypeRectYZ:
		axis := map[uint32]geometry.RectAxis{
			entityTypeRectXY: geometry.RectXY,
			entityTypeRectXZ: geometry.RectXZ,
			entityTypeRectYZ: geometry.RectYZ,
		}[entityType]
		center, err := tr.vec3()
		if err != nil {
			return nil, err
		}
		width, err := tr.float()
		if err != nil {
			return nil, err
		}
		height, err := tr.float()
		if err != nil {
			return nil, err
		}
		rect := geometry.NewRect(axis, center, width, height, nil)
		if mat, present, err := maybeParseMaterial(tr, perlin, loadImage); err != nil {
			return nil, err
		} else if present {
			rect.Material = mat
		}
		return rect, nil

	case entityTypeBox:
		center, err := tr.vec3()
		if err != nil {
			return nil, err
		}
		width, err := tr.float()
		if err != nil {
			return nil, err
		}
		height, err := tr.float()
		if err != nil {
			return nil, err
		}
		depth, err := tr.float()
		if err != nil {
			return nil, err
		}
		var mat core.Material
		if m, present, err := maybeParseMaterial(tr, perlin, loadImage); err != nil {
			return nil, err
		} else if present {
			mat = m
		}
		return geometry.NewBox(center, width, height, depth, mat), nil

	case entityTypeFlipNormals:
		tag, err := tr.word()
		if err != nil {
			return nil, err
		}
		if tag != "Entity" {
			return nil, fmt.Errorf("expected nested Entity record for FlipNormals, got %q", tag)
		}
		inner, err := parseEntity(tr, perlin, loadImage)
		if err != nil {
			return nil, err
		}
		return geometry.NewFlipNormals(inner), nil
	}

	return nil, fmt.Errorf("unknown entity type code %d", entityType)
}

// maybeParseMaterial reads an optional "Material ..." record. Scene
// files omit the tag entirely when an entity has no material.
func maybeParseMaterial(tr *tokenReader, perlin *core.Perlin, loadImage ImageLoader) (core.Material, bool, error) {
	tag, ok := tr.peekWord()
	if !ok || tag != "Material" {
		return nil, false, nil
	}
	tr.next() // consume "Material"

	matType, err := tr.uint32()
	if err != nil {
		return nil, false, err
	}

	var mat core.Material
	switch matType {
	case materialTypeDiffuse:
		mat = material.NewLambertian(nil)
	case materialTypeMetal:
		fuzziness, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		mat = material.NewMetal(nil, fuzziness)
	case materialTypeDielectric:
		ri, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		mat = material.NewDielectric(ri, nil)
	case materialTypeDiffuseLight:
		power, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		mat = material.NewDiffuseLight(nil, power)
	default:
		return nil, false, fmt.Errorf("unknown material type code %d", matType)
	}

	if tex, present, err := maybeParseTexture(tr, perlin, loadImage); err != nil {
		return nil, false, err
	} else if present {
		attachTexture(mat, tex)
	} else {
		attachTexture(mat, material.NewSolid(core.Vec3{X: 1, Y: 1, Z: 1}))
	}
	return mat, true, nil
}

// attachTexture fills in the texture a just-parsed material is missing;
// every material variant is constructed with a nil texture above so this
// is the single place that wires the optional Texture record in.
func attachTexture(mat core.Material, tex core.Texture) {
	switch m := mat.(type) {
	case *material.Lambertian:
		m.Albedo = tex
	case *material.Metal:
		m.Albedo = tex
	case *material.Dielectric:
		m.Albedo = tex
	case *material.DiffuseLight:
		m.Emission = tex
	}
}

func maybeParseTexture(tr *tokenReader, perlin *core.Perlin, loadImage ImageLoader) (core.Texture, bool, error) {
	tag, ok := tr.peekWord()
	if !ok || tag != "Texture" {
		return nil, false, nil
	}
	tr.next() // consume "Texture"

	texType, err := tr.uint32()
	if err != nil {
		return nil, false, err
	}

	switch texType {
	case textureTypeSolid:
		color, err := tr.vec3()
		if err != nil {
			return nil, false, err
		}
		return material.NewSolid(color), true, nil

	case textureTypeChecker:
		frequency, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		odd, err := tr.vec3()
		if err != nil {
			return nil, false, err
		}
		even, err := tr.vec3()
		if err != nil {
			return nil, false, err
		}
		return material.NewChecker(frequency, material.NewSolid(odd), material.NewSolid(even)), true, nil

	case textureTypeNoise:
		color, err := tr.vec3()
		if err != nil {
			return nil, false, err
		}
		noiseType, err := tr.uint32()
		if err != nil {
			return nil, false, err
		}
		amplitude, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		frequency, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		ampMul, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		freqMul, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		offset, err := tr.vec3()
		if err != nil {
			return nil, false, err
		}
		depth, err := tr.int()
		if err != nil {
			return nil, false, err
		}
		marbleAmp, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		marbleFreq, err := tr.float()
		if err != nil {
			return nil, false, err
		}
		return material.NewNoise(perlin, color, material.NoiseMode(noiseType), amplitude, frequency, ampMul, freqMul, offset, depth, marbleAmp, marbleFreq), true, nil

	case textureTypeImage:
		name, err := tr.word()
		if err != nil {
			return nil, false, err
		}
		if loadImage == nil {
			return nil, false, fmt.Errorf("scene: Image texture %q requires an ImageLoader", name)
		}
		img, err := loadImage(name)
		if err != nil {
			return nil, false, fmt.Errorf("scene: loading image %q: %w", name, err)
		}
		return img, true, nil
	}

	return nil, false, fmt.Errorf("unknown texture type code %d", texType)
}

// Save writes s in the scene text format: a Camera record followed by
// one Entity record per entity.
func Save(w io.Writer, s *Scene) error {
	if _, err := fmt.Fprintf(w, "Camera %s\n", serializeCamera(s.Camera)); err != nil {
		return err
	}
	for _, e := range s.Entities.Entities {
		if err := writeEntity(w, e); err != nil {
			return err
		}
	}
	return nil
}

func serializeCamera(c *renderer.Camera) string {
	return fmt.Sprintf("%g %g %g %g %g %g %s",
		c.Distance, c.FOV, c.Aperture, c.FocusDistance, c.PitchDegrees, c.YawDegrees, serializeVec3(c.LookAt))
}

func serializeVec3(v core.Vec3) string {
	return fmt.Sprintf("%g %g %g", v.X, v.Y, v.Z)
}

func writeEntity(w io.Writer, e core.Entity) error {
	switch v := e.(type) {
	case *geometry.Sphere:
		if _, err := fmt.Fprintf(w, "Entity %d %s %g", entityTypeSphere, serializeVec3(v.Center), v.Radius); err != nil {
			return err
		}
		return finishEntityLine(w, v.Material)

	case *geometry.Rect:
		code, err := rectTypeCode(v.Axis)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "Entity %d %s %g %g", code, serializeVec3(v.Center), v.Width, v.Height); err != nil {
			return err
		}
		return finishEntityLine(w, v.Material)

	case *geometry.Box:
		if _, err := fmt.Fprintf(w, "Entity %d %s %g %g %g", entityTypeBox, serializeVec3(v.Center), v.Width, v.Height, v.Depth); err != nil {
			return err
		}
		return finishEntityLine(w, v.Material)

	case *geometry.FlipNormals:
		if _, err := fmt.Fprintf(w, "Entity %d ", entityTypeFlipNormals); err != nil {
			return err
		}
		return writeEntity(w, v.Inner)
	}
	return fmt.Errorf("scene: cannot serialize entity of type %T", e)
}

func rectTypeCode(axis geometry.RectAxis) (int, error) {
	switch axis {
	case geometry.RectXY:
		return entityTypeRectXY, nil
	case geometry.RectXZ:
		return entityTypeRectXZ, nil
	case geometry.RectYZ:
		return entityTypeRectYZ, nil
	}
	return 0, fmt.Errorf("scene: unknown rect axis %v", axis)
}

func finishEntityLine(w io.Writer, mat core.Material) error {
	if mat == nil {
		_, err := fmt.Fprint(w, "\n")
		return err
	}
	if _, err := fmt.Fprint(w, " "); err != nil {
		return err
	}
	if err := writeMaterial(w, mat); err != nil {
		return err
	}
	_, err := fmt.Fprint(w, "\n")
	return err
}

func writeMaterial(w io.Writer, mat core.Material) error {
	switch m := mat.(type) {
	case *material.Lambertian:
		if _, err := fmt.Fprintf(w, "Material %d", materialTypeDiffuse); err != nil {
			return err
		}
		return finishMaterialLine(w, m.Albedo)
	case *material.Metal:
		if _, err := fmt.Fprintf(w, "Material %d %g", materialTypeMetal, m.Fuzziness); err != nil {
			return err
		}
		return finishMaterialLine(w, m.Albedo)
	case *material.Dielectric:
		if _, err := fmt.Fprintf(w, "Material %d %g", materialTypeDielectric, m.RefractiveIndex); err != nil {
			return err
		}
		return finishMaterialLine(w, m.Albedo)
	case *material.DiffuseLight:
		if _, err := fmt.Fprintf(w, "Material %d %g", materialTypeDiffuseLight, m.Power); err != nil {
			return err
		}
		return finishMaterialLine(w, m.Emission)
	}
	return fmt.Errorf("scene: cannot serialize material of type %T", mat)
}

func finishMaterialLine(w io.Writer, tex core.Texture) error {
	if tex == nil {
		return nil
	}
	if _, err := fmt.Fprint(w, " "); err != nil {
		return err
	}
	return writeTexture(w, tex)
}

func writeTexture(w io.Writer, tex core.Texture) error {
	switch t := tex.(type) {
	case *material.Solid:
		_, err := fmt.Fprintf(w, "Texture %d %s", textureTypeSolid, serializeVec3(t.Color))
		return err
	case *material.Checker:
		odd, ok1 := t.Odd.(*material.Solid)
		even, ok2 := t.Even.(*material.Solid)
		if !ok1 || !ok2 {
			return fmt.Errorf("scene: Checker sub-textures must be Solid to serialize")
		}
		_, err := fmt.Fprintf(w, "Texture %d %g %s %s", textureTypeChecker, t.Frequency, serializeVec3(odd.Color), serializeVec3(even.Color))
		return err
	case *material.Noise:
		_, err := fmt.Fprintf(w, "Texture %d %s %d %g %g %g %g %s %d %g %g",
			textureTypeNoise, serializeVec3(t.Color), int(t.Mode), t.Amplitude, t.Frequency, t.AmpMul, t.FreqMul,
			serializeVec3(t.Offset), t.Depth, t.MarbleAmp, t.MarbleFreq)
		return err
	case *material.Image:
		if t.Name == "" {
			return fmt.Errorf("scene: Image texture has no source name to serialize")
		}
		_, err := fmt.Fprintf(w, "Texture %d %s", textureTypeImage, t.Name)
		return err
	}
	return fmt.Errorf("scene: cannot serialize texture of type %T", tex)
}
