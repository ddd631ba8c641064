package formats

import (
	"github.com/cloudcalvin/HillVacuum/pkg/anim"
)

// TextureAnimation binds a texture name to its default animation in the
// animations section of a document or an .anms exchange file.
type TextureAnimation struct {
	Texture   string
	Animation *anim.Animation
}

// Animation wire layout: a kind tag (0 none, 1 list, 2 atlas), then the
// variant payload. The none tag encodes an absent brush override.

func (w *writer) appendAnimation(a *anim.Animation) error {
	if a == nil {
		w.u8(uint8(anim.KindNone))
		return nil
	}

	w.u8(uint8(a.Kind()))
	switch a.Kind() {
	case anim.KindList:
		frames := a.List().Frames
		w.u32(uint32(len(frames)))
		for _, f := range frames {
			if err := w.str(f.Texture); err != nil {
				return err
			}
			w.f32(f.Duration)
		}
	case anim.KindAtlas:
		atlas := a.Atlas()
		if err := w.str(atlas.Texture); err != nil {
			return err
		}
		w.u32(atlas.Rows)
		w.u32(atlas.Cols)
		if atlas.Timing.IsUniform() {
			w.u8(0)
			w.f32(atlas.Timing.Uniform())
		} else {
			w.u8(1)
			ds := atlas.Timing.PerFrame()
			w.u32(uint32(len(ds)))
			for _, d := range ds {
				w.f32(d)
			}
		}
	}
	return nil
}

func (r *reader) animation() (*anim.Animation, error) {
	tag, err := r.u8("animation kind")
	if err != nil {
		return nil, err
	}

	switch anim.Kind(tag) {
	case anim.KindNone:
		return nil, nil

	case anim.KindList:
		n, err := r.u32("frame count")
		if err != nil {
			return nil, err
		}
		frames := make([]anim.Frame, 0, n)
		for i := uint32(0); i < n; i++ {
			texture, err := r.str("frame texture")
			if err != nil {
				return nil, err
			}
			duration, err := r.f32("frame duration")
			if err != nil {
				return nil, err
			}
			frames = append(frames, anim.Frame{Texture: texture, Duration: duration})
		}
		return anim.NewList(frames...), nil

	case anim.KindAtlas:
		texture, err := r.str("atlas texture")
		if err != nil {
			return nil, err
		}
		rows, err := r.u32("atlas rows")
		if err != nil {
			return nil, err
		}
		cols, err := r.u32("atlas cols")
		if err != nil {
			return nil, err
		}
		timingTag, err := r.u8("atlas timing kind")
		if err != nil {
			return nil, err
		}

		var timing anim.Timing
		switch timingTag {
		case 0:
			d, err := r.f32("atlas cell duration")
			if err != nil {
				return nil, err
			}
			timing = anim.UniformTiming(d)
		case 1:
			n, err := r.u32("atlas duration count")
			if err != nil {
				return nil, err
			}
			ds := make([]float32, 0, n)
			for i := uint32(0); i < n; i++ {
				d, err := r.f32("atlas cell duration")
				if err != nil {
					return nil, err
				}
				ds = append(ds, d)
			}
			timing = anim.PerFrameTiming(ds)
		default:
			return nil, r.failf("unknown atlas timing kind %d", timingTag)
		}
		return anim.NewAtlas(texture, rows, cols, timing), nil

	default:
		return nil, r.failf("unknown animation kind %d", tag)
	}
}

func (w *writer) appendTextureAnimation(ta TextureAnimation) error {
	if err := w.str(ta.Texture); err != nil {
		return err
	}
	return w.appendAnimation(ta.Animation)
}

func (r *reader) textureAnimation() (TextureAnimation, error) {
	texture, err := r.str("texture name")
	if err != nil {
		return TextureAnimation{}, err
	}
	a, err := r.animation()
	if err != nil {
		return TextureAnimation{}, err
	}
	return TextureAnimation{Texture: texture, Animation: a}, nil
}
