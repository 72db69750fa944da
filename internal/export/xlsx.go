package export

import (
	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// WriteXLSX writes a workbook with a Districts sheet and a Markers sheet.
func WriteXLSX(path string, cl CityLayers) error {
	f := xlsx.NewFile()

	districts, err := f.AddSheet("Districts")
	if err != nil {
		return eris.Wrap(err, "xlsx: add districts sheet")
	}
	addRow(districts, "key", "label", "classification", "fill_color", "vertices")
	for _, p := range cl.Polygons {
		row := districts.AddRow()
		row.AddCell().SetString(p.Key)
		row.AddCell().SetString(p.Label)
		row.AddCell().SetString(p.Classification.String())
		row.AddCell().SetString(p.Style.FillColor)
		vertices := 0
		if p.Geometry != nil {
			vertices = p.Geometry.NumCoords()
		}
		row.AddCell().SetInt(vertices)
	}

	markers, err := f.AddSheet("Markers")
	if err != nil {
		return eris.Wrap(err, "xlsx: add markers sheet")
	}
	addRow(markers, "id", "title", "lat", "lng")
	for _, m := range cl.Markers {
		row := markers.AddRow()
		row.AddCell().SetString(m.Key)
		row.AddCell().SetString(m.Title)
		row.AddCell().SetFloat(m.Position.Lat)
		row.AddCell().SetFloat(m.Position.Lng)
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "xlsx: save %s", path)
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values ...string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
