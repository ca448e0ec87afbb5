package scene

import (
	"fmt"
	"slices"
	"strings"

	"github.com/df07/go-portable-raytracer/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier used on the command line
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // One-line description
}

// Constructor builds a scene, applying optional camera overrides
type Constructor func(cameraOverrides ...geometry.CameraConfig) (*Scene, error)

type registryEntry struct {
	info SceneInfo
	ctor Constructor
}

var registry = []registryEntry{
	{
		info: SceneInfo{ID: "default", Name: "Default Scene", Description: "Diffuse sphere resting on a large ground sphere"},
		ctor: NewDefaultScene,
	},
	{
		info: SceneInfo{ID: "materials", Name: "Materials", Description: "Diffuse, metal, glass and hollow glass spheres side by side"},
		ctor: NewMaterialsScene,
	},
	{
		info: SceneInfo{ID: "cornell-box", Name: "Cornell Box", Description: "Cornell box with two rotated blocks"},
		ctor: NewCornellScene,
	},
	{
		info: SceneInfo{ID: "sphere-grid", Name: "Sphere Grid", Description: "20x20 grid of rainbow-colored metallic spheres"},
		ctor: NewSphereGridScene,
	},
	{
		info: SceneInfo{ID: "random-spheres", Name: "Random Spheres", Description: "Field of moving spheres with motion blur and depth of field"},
		ctor: NewRandomSpheresScene,
	},
	{
		info: SceneInfo{ID: "triangle-mesh", Name: "Triangle Meshes", Description: "Box, pyramid and icosahedron meshes on a pedestal"},
		ctor: NewTriangleMeshScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(registry))
	for i, entry := range registry {
		scenes[i] = entry.info
	}
	slices.SortFunc(scenes, func(a, b SceneInfo) int {
		return strings.Compare(a.ID, b.ID)
	})
	return scenes
}

// SceneIDs returns the IDs of the built-in scenes, sorted
func SceneIDs() []string {
	scenes := ListScenes()
	ids := make([]string, len(scenes))
	for i, s := range scenes {
		ids[i] = s.ID
	}
	return ids
}

// ByName builds the scene with the given ID. The ID match is case-insensitive.
func ByName(id string, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	for _, entry := range registry {
		if strings.EqualFold(entry.info.ID, id) {
			return entry.ctor(cameraOverrides...)
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, id, strings.Join(SceneIDs(), ", "))
}
