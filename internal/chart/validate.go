// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

// Validate checks the configuration for everything that would otherwise
// surface as a renderer failure, and assigns each dataset its ColorIndex.
// The first problem found is returned.
func (c *Configuration) Validate() error {
	if !c.Type.Valid() {
		_, err := ParseType(string(c.Type))
		return err
	}

	scaleX, scaleY := c.scaleTypes()
	if _, err := ParseScaleType("x", string(scaleX)); err != nil {
		return err
	}
	if _, err := ParseScaleType("y", string(scaleY)); err != nil {
		return err
	}

	if len(c.Data.Datasets) == 0 {
		return reject(ErrNoDatasets, "chart has no datasets")
	}

	for i := range c.Data.Datasets {
		ds := &c.Data.Datasets[i]
		ds.ColorIndex = PaletteIndex(i)

		if err := c.validateDataset(i, ds); err != nil {
			return err
		}
	}
	return nil
}

// scaleTypes returns the declared axis types. The x type only governs
// scatter and bubble charts; other charts keep a category x axis.
func (c *Configuration) scaleTypes() (x, y ScaleType) {
	if s := c.Options.Scales; s != nil {
		if s.X != nil {
			x = s.X.Type
		}
		if s.Y != nil {
			y = s.Y.Type
		}
	}
	return x, y
}

// LogX reports whether the x axis should be drawn logarithmically.
func (c *Configuration) LogX() bool {
	x, _ := c.scaleTypes()
	return x.Log() && c.Type.XY()
}

// LogY reports whether the value axis should be drawn logarithmically.
func (c *Configuration) LogY() bool {
	_, y := c.scaleTypes()
	return y.Log() && !c.Type.Radial()
}

func (c *Configuration) validateDataset(i int, ds *Dataset) error {
	objects := 0
	for j, p := range ds.Data {
		if !p.finite() {
			return reject(ErrInvalidNumber, "dataset %d (%q) value %d is not a finite number", i, ds.Label, j+1)
		}
		if p.Object {
			objects++
			if p.R < 0 {
				return reject(ErrInvalidNumber, "dataset %d (%q) value %d has a negative radius", i, ds.Label, j+1)
			}
		}
	}

	switch {
	case objects == 0:
		if len(ds.Data) != len(c.Data.Labels) {
			return reject(ErrLengthMismatch,
				"dataset %d (%q) has %d values but there are %d labels", i, ds.Label, len(ds.Data), len(c.Data.Labels))
		}
	case objects != len(ds.Data):
		return reject(ErrInvalidNumber,
			"dataset %d (%q) mixes bare numbers and {x, y} points", i, ds.Label)
	case !c.Type.XY():
		return reject(ErrInvalidNumber,
			"dataset %d (%q) uses {x, y} points, which %s charts do not accept", i, ds.Label, c.Type)
	}

	for j, p := range ds.Data {
		if c.LogY() && p.Y <= 0 {
			return reject(ErrNonPositiveLogValue,
				"dataset %d (%q) value %d is %g but the y axis is logarithmic", i, ds.Label, j+1, p.Y)
		}
		if c.LogX() && p.Object && p.X <= 0 {
			return reject(ErrNonPositiveLogValue,
				"dataset %d (%q) point %d has x %g but the x axis is logarithmic", i, ds.Label, j+1, p.X)
		}
	}

	for _, list := range []Colors{ds.BackgroundColor, ds.BorderColor} {
		for _, s := range list {
			if _, err := ParseColor(s); err != nil {
				return reject(ErrInvalidColor, "dataset %d (%q): invalid color %q", i, ds.Label, s)
			}
		}
	}

	if ds.BorderWidth < 0 {
		return reject(ErrInvalidNumber, "dataset %d (%q) has a negative border width", i, ds.Label)
	}

	return nil
}
