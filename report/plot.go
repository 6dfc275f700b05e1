package report

import (
	"errors"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotComposition saves amino acid composition as a bar chart. The
// image format is chosen from the file extension.
func PlotComposition(comp []AminoAcid, fn string) error {
	if len(comp) == 0 {
		return errors.New("empty composition")
	}

	p := plot.New()
	p.Title.Text = "Amino acid composition"
	p.Y.Label.Text = "frequency"

	values := make(plotter.Values, len(comp))
	names := make([]string, len(comp))
	for i, aa := range comp {
		values[i] = aa.Frequency
		names[i] = aa.Name
	}

	bars, err := plotter.NewBarChart(values, vg.Points(12))
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	p.Add(bars)
	p.NominalX(names...)

	log.Debugf("Saving composition plot to %s", fn)
	return p.Save(8*vg.Inch, 4*vg.Inch, fn)
}
