package assets

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/automoto/boltrunner/assets/animations"
	"github.com/automoto/boltrunner/config"
	"gopkg.in/yaml.v3"
)

// PoseFile is the layout of the pose definition file.
type PoseFile struct {
	Poses map[string]PoseDef `yaml:"poses"`
}

// PoseDef is either a list of frames or a mirror of another pose. Loop
// defaults to true.
type PoseDef struct {
	Loop   *bool      `yaml:"loop,omitempty"`
	Mirror string     `yaml:"mirror,omitempty"`
	Frames []FrameDef `yaml:"frames,omitempty"`
}

// FrameDef names a frame image inside the asset FS and its duration in seconds.
type FrameDef struct {
	Image    string  `yaml:"image"`
	Duration float64 `yaml:"duration"`
}

// Poses holds one timeline per player pose.
type Poses map[config.PoseID]*animations.Timeline

func ParsePoseFile(data []byte) (*PoseFile, error) {
	var pf PoseFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse pose file: %w", err)
	}
	return &pf, nil
}

func (d PoseDef) loop() bool {
	return d.Loop == nil || *d.Loop
}

// BuildPoses turns pose definitions into timelines. Every pose in
// config.PoseToName must be defined. Mirrored poses are flipped copies of
// their source with the flip baked in.
func BuildPoses(pf *PoseFile, images *ImageLoader, opts ...animations.Option) (Poses, error) {
	for name := range pf.Poses {
		if _, ok := config.PoseFromName(name); !ok {
			return nil, fmt.Errorf("unknown pose %q", name)
		}
	}

	poses := make(Poses, len(config.PoseToName))
	ids := make([]config.PoseID, 0, len(config.PoseToName))
	for id := range config.PoseToName {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// frame lists first so mirrors can copy them
	for _, id := range ids {
		def, ok := pf.Poses[id.String()]
		if !ok {
			return nil, fmt.Errorf("pose %s is not defined", id)
		}
		if def.Mirror != "" {
			continue
		}
		tl, err := buildFrames(def, images, opts...)
		if err != nil {
			return nil, fmt.Errorf("pose %s: %w", id, err)
		}
		poses[id] = tl
	}

	for _, id := range ids {
		def := pf.Poses[id.String()]
		if def.Mirror == "" {
			continue
		}
		if len(def.Frames) > 0 {
			return nil, fmt.Errorf("pose %s has both frames and a mirror", id)
		}
		srcID, ok := config.PoseFromName(def.Mirror)
		if !ok {
			return nil, fmt.Errorf("pose %s mirrors unknown pose %q", id, def.Mirror)
		}
		if pf.Poses[def.Mirror].Mirror != "" {
			return nil, fmt.Errorf("pose %s mirrors %s which is itself a mirror", id, srcID)
		}
		tl := poses[srcID].Copy()
		tl.Flip(true, false)
		tl.MakeTransformsPermanent()
		tl.SetLoop(def.loop())
		poses[id] = tl
	}

	return poses, nil
}

func buildFrames(def PoseDef, images *ImageLoader, opts ...animations.Option) (*animations.Timeline, error) {
	if len(def.Frames) == 0 {
		return nil, fmt.Errorf("no frames: %w", animations.ErrInvalidFrame)
	}
	frames := make([]animations.Frame, 0, len(def.Frames))
	for _, f := range def.Frames {
		img, err := images.LoadImage(f.Image)
		if err != nil {
			return nil, err
		}
		frames = append(frames, animations.Frame{Image: img, Duration: f.Duration})
	}
	opts = append(opts[:len(opts):len(opts)], animations.WithLoop(def.loop()))
	return animations.New(frames, opts...)
}

// LoadPoses reads the pose file at posePath in fsys and builds every pose.
func LoadPoses(fsys fs.FS, posePath string, opts ...animations.Option) (Poses, error) {
	data, err := fs.ReadFile(fsys, posePath)
	if err != nil {
		return nil, fmt.Errorf("read pose file %s: %w", posePath, err)
	}
	pf, err := ParsePoseFile(data)
	if err != nil {
		return nil, err
	}
	return BuildPoses(pf, NewImageLoader(fsys), opts...)
}

// MustLoadPlayerPoses builds the player's timelines from the embedded assets.
func MustLoadPlayerPoses() Poses {
	pf, err := ParsePoseFile(mustReadAnimationFile(config.Animation.File))
	if err != nil {
		panic(err)
	}
	poses, err := BuildPoses(pf, imageLoader)
	if err != nil {
		panic(fmt.Sprintf("Failed to build player poses: %v", err))
	}
	return poses
}

func mustReadAnimationFile(name string) []byte {
	data, err := animationFS.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("Failed to read %s: %v", name, err))
	}
	return data
}
