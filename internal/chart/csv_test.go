// Plotwright - Chart Rendering Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/plotwright

package chart

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func csvRequest(count string) CSVRequest {
	return CSVRequest{DatasetCount: Some(count)}
}

func TestTranslateCSV_ExampleRoundTrip(t *testing.T) {
	t.Parallel()

	cfg, err := TranslateCSV(csvRequest("2"), "2018,2019\nA\n1,2\nB\n3,4")
	if err != nil {
		t.Fatalf("TranslateCSV() error = %v", err)
	}

	if cfg.Type != TypeLine {
		t.Errorf("Type = %q, want default %q", cfg.Type, TypeLine)
	}
	if got := strings.Join(cfg.Data.Labels, ","); got != "2018,2019" {
		t.Errorf("Labels = %v, want [2018 2019]", cfg.Data.Labels)
	}
	if len(cfg.Data.Datasets) != 2 {
		t.Fatalf("len(Datasets) = %d, want 2", len(cfg.Data.Datasets))
	}

	want := []struct {
		label string
		data  []float64
	}{
		{"A", []float64{1, 2}},
		{"B", []float64{3, 4}},
	}
	for i, w := range want {
		ds := cfg.Data.Datasets[i]
		if ds.Label != w.label {
			t.Errorf("dataset %d label = %q, want %q", i, ds.Label, w.label)
		}
		for j, v := range w.data {
			if ds.Data[j].Y != v || ds.Data[j].Object {
				t.Errorf("dataset %d value %d = %+v, want bare %v", i, j, ds.Data[j], v)
			}
		}
		if ds.ColorIndex != i {
			t.Errorf("dataset %d ColorIndex = %d, want %d", i, ds.ColorIndex, i)
		}
		if c, _ := ds.BackgroundColor.At(0); c != Palette[i] {
			t.Errorf("dataset %d background = %q, want %q", i, c, Palette[i])
		}
		if c, _ := ds.BorderColor.At(0); c != Palette[i] {
			t.Errorf("dataset %d border = %q, want %q", i, c, Palette[i])
		}
		if ds.BorderWidth != 1 {
			t.Errorf("dataset %d border width = %v, want 1", i, ds.BorderWidth)
		}
	}

	if cfg.Options.Plugins != nil {
		t.Errorf("Plugins = %+v, want nil without a title", cfg.Options.Plugins)
	}
	if cfg.Options.Scales != nil {
		t.Errorf("Scales = %+v, want nil without axis headers", cfg.Options.Scales)
	}
}

func TestTranslateCSV_PreservesOrder(t *testing.T) {
	t.Parallel()

	for _, count := range []int{1, 3, 7, 10} {
		t.Run(fmt.Sprintf("%d datasets", count), func(t *testing.T) {
			t.Parallel()

			labels := []string{"q1", "q2", "q3"}
			var b strings.Builder
			b.WriteString(strings.Join(labels, ","))
			for i := 0; i < count; i++ {
				fmt.Fprintf(&b, "\nseries-%d\n%d, %d ,%d", i, i, i*10, i*100)
			}

			cfg, err := TranslateCSV(csvRequest(fmt.Sprint(count)), b.String())
			if err != nil {
				t.Fatalf("TranslateCSV() error = %v", err)
			}
			if len(cfg.Data.Datasets) != count {
				t.Fatalf("len(Datasets) = %d, want %d", len(cfg.Data.Datasets), count)
			}
			for i, label := range labels {
				if cfg.Data.Labels[i] != label {
					t.Errorf("label %d = %q, want %q", i, cfg.Data.Labels[i], label)
				}
			}
			for i, ds := range cfg.Data.Datasets {
				if ds.Label != fmt.Sprintf("series-%d", i) {
					t.Errorf("dataset %d label = %q", i, ds.Label)
				}
				if ds.Data[2].Y != float64(i*100) {
					t.Errorf("dataset %d third value = %v, want %d", i, ds.Data[2].Y, i*100)
				}
			}
		})
	}
}

func TestTranslateCSV_PaletteCycles(t *testing.T) {
	t.Parallel()

	const count = 16
	var b strings.Builder
	b.WriteString("x")
	for i := 0; i < count; i++ {
		// Content varies per dataset and must not influence color.
		fmt.Fprintf(&b, "\nd%d\n%d", i, (i*37)%11)
	}

	cfg, err := TranslateCSV(csvRequest(fmt.Sprint(count)), b.String())
	if err != nil {
		t.Fatalf("TranslateCSV() error = %v", err)
	}
	for i, ds := range cfg.Data.Datasets {
		if ds.ColorIndex != i%7 {
			t.Errorf("dataset %d ColorIndex = %d, want %d", i, ds.ColorIndex, i%7)
		}
		if c, _ := ds.BackgroundColor.At(0); c != Palette[i%7] {
			t.Errorf("dataset %d color = %q, want %q", i, c, Palette[i%7])
		}
	}
}

func TestTranslateCSV_ChartTypes(t *testing.T) {
	t.Parallel()

	for _, typ := range Types {
		cfg, err := TranslateCSV(CSVRequest{ChartType: Some(string(typ)), DatasetCount: Some("1")}, "a,b\nS\n1,2")
		if err != nil {
			t.Errorf("chart type %q: unexpected error %v", typ, err)
			continue
		}
		if cfg.Type != typ {
			t.Errorf("Type = %q, want %q", cfg.Type, typ)
		}
	}

	for _, bad := range []string{"Bar", "LINE", "polararea", "area", "", " pie"} {
		_, err := TranslateCSV(CSVRequest{ChartType: Some(bad), DatasetCount: Some("1")}, "a\nS\n1")
		if !errors.Is(err, ErrUnknownChartType) {
			t.Errorf("chart type %q: error = %v, want ErrUnknownChartType", bad, err)
		}
	}
}

func TestTranslateCSV_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CSVRequest
		body    string
		want    error
		wantMsg string
	}{
		{
			name: "missing dataset count with empty body",
			req:  CSVRequest{},
			body: "",
			want: ErrMissingDatasetCount,
		},
		{
			name: "unknown type checked before dataset count",
			req:  CSVRequest{ChartType: Some("area")},
			body: "",
			want: ErrUnknownChartType,
		},
		{
			name: "non-numeric dataset count",
			req:  csvRequest("abc"),
			body: "a\nS\n1",
			want: ErrInvalidDatasetCount,
		},
		{
			name: "zero dataset count",
			req:  csvRequest("0"),
			body: "a",
			want: ErrInvalidDatasetCount,
		},
		{
			name: "negative dataset count",
			req:  csvRequest("-1"),
			body: "a\nS\n1",
			want: ErrInvalidDatasetCount,
		},
		{
			name: "empty dataset count",
			req:  csvRequest(""),
			body: "a\nS\n1",
			want: ErrInvalidDatasetCount,
		},
		{
			name: "unknown x scale",
			req:  CSVRequest{DatasetCount: Some("1"), ScaleXType: Some("time")},
			body: "a\nS\n1",
			want: ErrUnknownScaleType,
		},
		{
			name: "unknown y scale",
			req:  CSVRequest{DatasetCount: Some("1"), ScaleYType: Some("Logarithmic")},
			body: "a\nS\n1",
			want: ErrUnknownScaleType,
		},
		{
			name:    "body too short",
			req:     csvRequest("2"),
			body:    "a,b\nA\n1,2\nB",
			want:    ErrInsufficientLines,
			wantMsg: "body has 4 lines",
		},
		{
			name: "huge dataset count",
			req:  csvRequest("9223372036854775807"),
			body: "a\nS\n1",
			want: ErrInsufficientLines,
		},
		{
			name:    "value count mismatch",
			req:     csvRequest("1"),
			body:    "a,b,c\nS\n1,2",
			want:    ErrLengthMismatch,
			wantMsg: `dataset 0 ("S") has 2 values but there are 3 labels`,
		},
		{
			name:    "non-numeric value",
			req:     csvRequest("1"),
			body:    "a,b\nS\n1,two",
			want:    ErrInvalidNumber,
			wantMsg: `value 2 ("two")`,
		},
		{
			name: "NaN value",
			req:  csvRequest("1"),
			body: "a\nS\nNaN",
			want: ErrInvalidNumber,
		},
		{
			name: "zero on logarithmic y",
			req:  CSVRequest{DatasetCount: Some("1"), ScaleYType: Some("logarithmic")},
			body: "a,b\nS\n0,10",
			want: ErrNonPositiveLogValue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg, err := TranslateCSV(tt.req, tt.body)
			if cfg != nil {
				t.Errorf("expected no configuration on error, got %+v", cfg)
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error %T is not a *ValidationError", err)
			}
			if tt.wantMsg != "" && !strings.Contains(verr.Message, tt.wantMsg) {
				t.Errorf("message = %q, want it to contain %q", verr.Message, tt.wantMsg)
			}
		})
	}
}

func TestTranslateCSV_LineCountCheckedBeforeParsing(t *testing.T) {
	t.Parallel()

	// Garbage on every present line: the short body must be reported,
	// not the bad values.
	for count := 1; count <= 5; count++ {
		lines := make([]string, 2*count) // one short of 1+2*count
		for i := range lines {
			lines[i] = "not,numbers"
		}
		_, err := TranslateCSV(csvRequest(fmt.Sprint(count)), strings.Join(lines, "\n"))
		if !errors.Is(err, ErrInsufficientLines) {
			t.Errorf("count %d: error = %v, want ErrInsufficientLines", count, err)
		}
	}
}

func TestTranslateCSV_FirstMismatchWins(t *testing.T) {
	t.Parallel()

	body := "a,b\nok\n1,2\nshort\n1\nworse\nx\nlong\n1,2,3"
	_, err := TranslateCSV(csvRequest("4"), body)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("error = %v, want ErrLengthMismatch", err)
	}
	if !strings.Contains(err.Error(), `dataset 1 ("short")`) {
		t.Errorf("error = %q, want it to name dataset 1", err)
	}
}

func TestTranslateCSV_TrimsAndTolerates(t *testing.T) {
	t.Parallel()

	cfg, err := TranslateCSV(csvRequest(" 1 "), " a , b \r\n  Sales \r\n 1.5 , -2e3 \r\n")
	if err != nil {
		t.Fatalf("TranslateCSV() error = %v", err)
	}
	if cfg.Data.Labels[0] != "a" || cfg.Data.Labels[1] != "b" {
		t.Errorf("Labels = %q, want trimmed", cfg.Data.Labels)
	}
	ds := cfg.Data.Datasets[0]
	if ds.Label != "Sales" {
		t.Errorf("Label = %q, want Sales", ds.Label)
	}
	if ds.Data[0].Y != 1.5 || ds.Data[1].Y != -2000 {
		t.Errorf("Data = %+v, want [1.5 -2000]", ds.Data)
	}
}

func TestTranslateCSV_StylingBlocks(t *testing.T) {
	t.Parallel()

	t.Run("title and labels present", func(t *testing.T) {
		t.Parallel()

		req := CSVRequest{
			DatasetCount: Some("1"),
			Title:        Some("Revenue"),
			XAxisLabel:   Some("Year"),
			YAxisLabel:   Some("EUR"),
			ScaleYType:   Some("logarithmic"),
		}
		cfg, err := TranslateCSV(req, "2018\nA\n5")
		if err != nil {
			t.Fatalf("TranslateCSV() error = %v", err)
		}
		if cfg.Options.Plugins == nil || cfg.Options.Plugins.Title == nil {
			t.Fatal("expected title block")
		}
		if title := cfg.Options.Plugins.Title; !title.Display || title.Text != "Revenue" {
			t.Errorf("Title = %+v", title)
		}
		scales := cfg.Options.Scales
		if scales == nil || scales.X == nil || scales.Y == nil {
			t.Fatalf("Scales = %+v, want both axes", scales)
		}
		if scales.X.Title == nil || scales.X.Title.Text != "Year" {
			t.Errorf("X title = %+v, want Year", scales.X.Title)
		}
		if scales.X.Type != "" {
			t.Errorf("X type = %q, want unset", scales.X.Type)
		}
		if scales.Y.Type != ScaleLogarithmic || scales.Y.Title.Text != "EUR" {
			t.Errorf("Y axis = %+v", scales.Y)
		}
	})

	t.Run("empty title differs from no title", func(t *testing.T) {
		t.Parallel()

		cfg, err := TranslateCSV(CSVRequest{DatasetCount: Some("1"), Title: Some("")}, "a\nS\n1")
		if err != nil {
			t.Fatalf("TranslateCSV() error = %v", err)
		}
		if cfg.Options.Plugins == nil || cfg.Options.Plugins.Title == nil {
			t.Fatal("expected an empty title block for a present empty title")
		}
		if cfg.Options.Plugins.Title.Text != "" {
			t.Errorf("Title text = %q, want empty", cfg.Options.Plugins.Title.Text)
		}
	})

	t.Run("only y label", func(t *testing.T) {
		t.Parallel()

		cfg, err := TranslateCSV(CSVRequest{DatasetCount: Some("1"), YAxisLabel: Some("ms")}, "a\nS\n1")
		if err != nil {
			t.Fatalf("TranslateCSV() error = %v", err)
		}
		if cfg.Options.Scales == nil || cfg.Options.Scales.X != nil || cfg.Options.Scales.Y == nil {
			t.Fatalf("Scales = %+v, want only y", cfg.Options.Scales)
		}
	})
}
