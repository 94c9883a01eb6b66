package cmd

import (
	"github.com/alexiusacademia/goflex/internal/config"
	"github.com/alexiusacademia/goflex/internal/section"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// sliceFlags are the slice inputs shared by the slice, brace, sweep and
// rotation commands. Flags override the configuration file; brace flags
// apply to every brace of the configuration.
type sliceFlags struct {
	file string

	span       float64
	thickness  float64
	topModulus float64

	count        int
	breadth      float64
	planWidth    float64
	angle        float64
	tilt         float64
	bottomHeight float64
	middleHeight float64
	topHeight    float64
	bottomShape  string
	middleShape  string
	topShape     string
	braceModulus float64
	material     string
}

var braceFlagNames = []string{
	"count", "breadth", "plan-width", "angle", "tilt",
	"bottom-height", "middle-height", "top-height",
	"bottom-shape", "middle-shape", "top-shape",
	"brace-modulus", "material",
}

func (f *sliceFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.file, "file", "f", "", "Slice configuration file (yaml or json)")

	// Slice geometry
	fs.Float64Var(&f.span, "span", config.DefaultSpan, "Available span / top layer width (mm)")
	fs.Float64VarP(&f.thickness, "thickness", "t", config.DefaultTopThickness, "Top layer thickness (mm)")
	fs.Float64Var(&f.topModulus, "top-modulus", config.DefaultTopModulus, "Top (reference) modulus (kN/mm²)")

	// Brace breadth
	fs.IntVarP(&f.count, "count", "n", config.DefaultBraceCount, "Number of identical braces")
	fs.Float64Var(&f.breadth, "breadth", 0, "Intercept breadth b, entered directly (mm)")
	fs.Float64Var(&f.planWidth, "plan-width", config.DefaultPlanWidth, "Brace plan width (mm)")
	fs.Float64Var(&f.angle, "angle", 90, "Brace inclination φ from the span (degrees)")
	fs.Float64Var(&f.tilt, "tilt", 0, "Brace tilt from the perpendicular (degrees, 0 to 89.9)")

	// Segments
	fs.Float64Var(&f.bottomHeight, "bottom-height", config.DefaultBottomHeight, "Bottom segment height (mm)")
	fs.Float64Var(&f.middleHeight, "middle-height", config.DefaultMiddleHeight, "Middle segment height (mm)")
	fs.Float64Var(&f.topHeight, "top-height", config.DefaultTopHeight, "Top segment height (mm)")
	fs.StringVar(&f.bottomShape, "bottom-shape", "rectangle", "Bottom segment shape")
	fs.StringVar(&f.middleShape, "middle-shape", "rectangle", "Middle segment shape")
	fs.StringVar(&f.topShape, "top-shape", config.DefaultTopShape, "Top segment shape (rectangle, triangle, parabolic, none)")
	fs.Float64Var(&f.braceModulus, "brace-modulus", config.DefaultBraceModulus, "Brace modulus for all segments (kN/mm²)")
	fs.StringVar(&f.material, "material", "", "NSCP material for all segments (steel, concrete, concrete:<f'c>)")

	cmd.MarkFlagsMutuallyExclusive("breadth", "angle", "tilt")
	cmd.MarkFlagsMutuallyExclusive("breadth", "plan-width")
	cmd.MarkFlagsMutuallyExclusive("brace-modulus", "material")
}

// load builds the configuration from the file (or defaults) and the flags
func (f *sliceFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if f.file != "" {
		var err error
		if cfg, err = config.Load(f.file); err != nil {
			return nil, err
		}
		logger.Info("Loaded slice configuration",
			zap.String("file", f.file),
			zap.Int("braces", cfg.BraceCount()))
	}

	changed := cmd.Flags().Changed

	if changed("span") {
		cfg.Span = f.span
	}
	if changed("thickness") {
		cfg.TopThickness = f.thickness
	}
	if changed("top-modulus") {
		cfg.TopModulus = f.topModulus
	}

	// a zero breadth in a file means "not given", on the command line it is an error
	if changed("breadth") && !(f.breadth > 0) {
		return nil, &section.InputError{Param: "brace breadth b"}
	}

	anyBrace := false
	for _, name := range braceFlagNames {
		if changed(name) {
			anyBrace = true
			break
		}
	}
	if !anyBrace {
		return cfg, nil
	}
	if len(cfg.Braces) == 0 {
		cfg.Braces = config.DefaultConfig().Braces[:1]
	}

	for i := range cfg.Braces {
		b := &cfg.Braces[i]

		if changed("count") {
			b.Count = f.count
		}
		if changed("breadth") {
			b.Breadth, b.PlanWidth, b.Angle, b.Tilt = f.breadth, 0, nil, nil
		}
		if changed("plan-width") {
			b.PlanWidth, b.Breadth = f.planWidth, 0
		}
		if changed("angle") {
			angle := f.angle
			b.Angle, b.Tilt, b.Breadth = &angle, nil, 0
		}
		if changed("tilt") {
			tilt := f.tilt
			b.Tilt, b.Angle, b.Breadth = &tilt, nil, 0
		}

		segments := []struct {
			seg    *config.SegmentConfig
			height string
			shape  string
			h      float64
			s      string
		}{
			{&b.Bottom, "bottom-height", "bottom-shape", f.bottomHeight, f.bottomShape},
			{&b.Middle, "middle-height", "middle-shape", f.middleHeight, f.middleShape},
			{&b.Top, "top-height", "top-shape", f.topHeight, f.topShape},
		}
		for _, s := range segments {
			if changed(s.height) {
				s.seg.Height = s.h
			}
			if changed(s.shape) {
				s.seg.Shape = s.s
			}
			if changed("brace-modulus") {
				s.seg.Modulus, s.seg.Material = f.braceModulus, ""
			}
			if changed("material") {
				s.seg.Material, s.seg.Modulus = f.material, 0
			}
		}
	}

	return cfg, cfg.Validate()
}
